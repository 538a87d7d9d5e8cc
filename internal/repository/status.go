package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/store"
)

// StatusRepository tracks application status per job. Jobs without an
// entry are implicitly "Not Applied".
type StatusRepository struct {
	store store.Store
	now   func() time.Time
}

// NewStatusRepository creates a repository over the given store.
// A nil clock defaults to time.Now.
func NewStatusRepository(s store.Store, now func() time.Time) *StatusRepository {
	if now == nil {
		now = time.Now
	}
	return &StatusRepository{store: s, now: now}
}

// StatusUpdate pairs a job with its latest recorded status change.
type StatusUpdate struct {
	JobID int                `json:"jobId"`
	Entry models.StatusEntry `json:"entry"`
}

func (r *StatusRepository) load(ctx context.Context) (map[int]models.StatusEntry, error) {
	statuses := map[int]models.StatusEntry{}
	if _, err := store.GetJSON(ctx, r.store, store.KeyJobStatus, &statuses); err != nil {
		return nil, fmt.Errorf("load statuses: %w", err)
	}
	return statuses, nil
}

// Get returns the recorded status for a job, defaulting to "Not Applied".
func (r *StatusRepository) Get(ctx context.Context, jobID int) (models.StatusEntry, error) {
	statuses, err := r.load(ctx)
	if err != nil {
		return models.StatusEntry{}, err
	}
	if entry, ok := statuses[jobID]; ok {
		return entry, nil
	}
	return models.StatusEntry{Status: models.StatusNotApplied}, nil
}

// All returns every recorded status keyed by job id.
func (r *StatusRepository) All(ctx context.Context) (map[int]models.StatusEntry, error) {
	return r.load(ctx)
}

// SetStatus records a status change for a job, stamped with the
// repository clock. Setting "Not Applied" keeps an explicit entry so the
// change date survives.
func (r *StatusRepository) SetStatus(ctx context.Context, jobID int, status models.ApplicationStatus) (models.StatusEntry, error) {
	if !status.IsValid() {
		return models.StatusEntry{}, fmt.Errorf("invalid status %q", status)
	}
	statuses, err := r.load(ctx)
	if err != nil {
		return models.StatusEntry{}, err
	}
	entry := models.StatusEntry{
		Status: status,
		Date:   r.now().Format(time.RFC3339),
	}
	statuses[jobID] = entry
	if err := store.SetJSON(ctx, r.store, store.KeyJobStatus, statuses); err != nil {
		return models.StatusEntry{}, fmt.Errorf("save statuses: %w", err)
	}
	return entry, nil
}

// RecentUpdates returns recorded status changes, most recent first.
// Ties keep a stable job-id order.
func (r *StatusRepository) RecentUpdates(ctx context.Context) ([]StatusUpdate, error) {
	statuses, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	updates := make([]StatusUpdate, 0, len(statuses))
	for id, entry := range statuses {
		updates = append(updates, StatusUpdate{JobID: id, Entry: entry})
	}
	sort.SliceStable(updates, func(i, j int) bool {
		if updates[i].Entry.Date != updates[j].Entry.Date {
			return updates[i].Entry.Date > updates[j].Entry.Date
		}
		return updates[i].JobID < updates[j].JobID
	})
	return updates, nil
}
