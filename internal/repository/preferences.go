// Package repository maps persisted keys to typed records.
//
// Each repository owns exactly one store key. Loads fall back to the
// documented defaults when the key is absent or unreadable, so callers
// always get a usable record.
package repository

import (
	"context"
	"fmt"

	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/store"
)

// PreferencesRepository persists the user's job matching profile.
type PreferencesRepository struct {
	store store.Store
}

// NewPreferencesRepository creates a repository over the given store.
func NewPreferencesRepository(s store.Store) *PreferencesRepository {
	return &PreferencesRepository{store: s}
}

// Load returns the stored preferences, or the defaults when nothing
// usable is stored. The second return reports whether a stored record
// was found - match filtering only applies a threshold when one was.
func (r *PreferencesRepository) Load(ctx context.Context) (models.Preferences, bool, error) {
	prefs := models.DefaultPreferences()
	ok, err := store.GetJSON(ctx, r.store, store.KeyPreferences, &prefs)
	if err != nil {
		return models.DefaultPreferences(), false, fmt.Errorf("load preferences: %w", err)
	}
	if !ok {
		return models.DefaultPreferences(), false, nil
	}
	if prefs.PreferredLocations == nil {
		prefs.PreferredLocations = []string{}
	}
	if prefs.PreferredModes == nil {
		prefs.PreferredModes = []string{}
	}
	return prefs, true, nil
}

// Save overwrites the stored preferences wholesale.
func (r *PreferencesRepository) Save(ctx context.Context, prefs models.Preferences) error {
	if err := store.SetJSON(ctx, r.store, store.KeyPreferences, prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
