// Package store provides the key-value persistence layer.
//
// Every persisted record in careerdesk lives under a string key as a JSON
// blob. Scoring stays pure; only this package touches storage.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is the key-value storage seam. Implementations: DB (sqlite/postgres)
// and Memory (tests).
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the raw value, overwriting any previous one.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Persisted key names. Kept in one place so repositories never collide.
const (
	KeyPreferences  = "jobTrackerPreferences"
	KeySavedJobIDs  = "saved-job-ids"
	KeyJobStatus    = "jobTrackerStatus"
	KeyResumeData   = "rb_resume_data"
	KeyResumeTmpl   = "rb_template"
	KeyResumeAccent = "rb_accent"
	KeyJDHistory    = "jd-analysis-history"
	KeyProofLinks   = "rb_proof_links"
	KeyDigestPrefix = "digest-"  // digest-YYYY-MM-DD
	KeyStepPrefix   = "rb_step_" // rb_step_N_artifact
)

// GetJSON loads the value under key into dest.
// Returns false and leaves dest untouched when the key is absent or the
// stored value does not decode - corrupt entries fall back to the caller's
// default, they are never surfaced as errors.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON marshals value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
