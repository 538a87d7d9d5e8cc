package repository

import (
	"context"
	"fmt"

	"github.com/blockedby/careerdesk-os/internal/store"
)

// SavedJobsRepository keeps the user's shortlist of job ids.
type SavedJobsRepository struct {
	store store.Store
}

// NewSavedJobsRepository creates a repository over the given store.
func NewSavedJobsRepository(s store.Store) *SavedJobsRepository {
	return &SavedJobsRepository{store: s}
}

func (r *SavedJobsRepository) load(ctx context.Context) ([]int, error) {
	ids := []int{}
	if _, err := store.GetJSON(ctx, r.store, store.KeySavedJobIDs, &ids); err != nil {
		return nil, fmt.Errorf("load saved jobs: %w", err)
	}
	return ids, nil
}

// IDs returns the saved job ids in insertion order.
func (r *SavedJobsRepository) IDs(ctx context.Context) ([]int, error) {
	return r.load(ctx)
}

// IsSaved reports whether the job is on the shortlist.
func (r *SavedJobsRepository) IsSaved(ctx context.Context, jobID int) (bool, error) {
	ids, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == jobID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle adds the job to the shortlist or removes it, returning the new
// saved state.
func (r *SavedJobsRepository) Toggle(ctx context.Context, jobID int) (bool, error) {
	ids, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	next := make([]int, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == jobID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, jobID)
	}

	if err := store.SetJSON(ctx, r.store, store.KeySavedJobIDs, next); err != nil {
		return false, fmt.Errorf("save saved jobs: %w", err)
	}
	return !removed, nil
}
