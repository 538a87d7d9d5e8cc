// Package digest builds the cached daily job shortlist.
package digest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blockedby/careerdesk-os/internal/logger"
	"github.com/blockedby/careerdesk-os/internal/match"
	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/repository"
	"github.com/blockedby/careerdesk-os/internal/store"
)

// Publisher is notified when a new digest is generated. Serving a cached
// digest does not notify.
type Publisher interface {
	DigestGenerated(ctx context.Context, d models.Digest) error
}

// Builder computes and caches one digest per calendar date.
type Builder struct {
	store     store.Store
	prefs     *repository.PreferencesRepository
	jobs      []models.Job
	now       func() time.Time
	size      int
	publisher Publisher
}

// NewBuilder creates a digest builder. A nil clock defaults to time.Now;
// size caps the shortlist length; publisher may be nil.
func NewBuilder(s store.Store, prefs *repository.PreferencesRepository, jobs []models.Job, now func() time.Time, size int, pub Publisher) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{
		store:     s,
		prefs:     prefs,
		jobs:      jobs,
		now:       now,
		size:      size,
		publisher: pub,
	}
}

// dateKey is the store key for one calendar date, local time.
func dateKey(t time.Time) string {
	return store.KeyDigestPrefix + t.Format("2006-01-02")
}

// Today returns the digest for the current date, computing and caching
// it on first call. Repeat calls on the same date return the stored
// digest unchanged.
func (b *Builder) Today(ctx context.Context) (models.Digest, error) {
	now := b.now()
	key := dateKey(now)

	var cached models.Digest
	ok, err := store.GetJSON(ctx, b.store, key, &cached)
	if err != nil {
		return models.Digest{}, fmt.Errorf("load digest: %w", err)
	}
	if ok {
		return cached, nil
	}
	return b.generate(ctx, now)
}

// Refresh discards the current date's digest and recomputes it. Other
// dates are never touched.
func (b *Builder) Refresh(ctx context.Context) (models.Digest, error) {
	return b.generate(ctx, b.now())
}

func (b *Builder) generate(ctx context.Context, now time.Time) (models.Digest, error) {
	prefs, _, err := b.prefs.Load(ctx)
	if err != nil {
		return models.Digest{}, fmt.Errorf("digest preferences: %w", err)
	}

	entries := make([]models.DigestEntry, 0, len(b.jobs))
	for _, job := range b.jobs {
		score := match.Score(job, prefs)
		if score < prefs.MinMatchScore {
			continue
		}
		entries = append(entries, models.DigestEntry{
			JobID:         job.ID,
			Title:         job.Title,
			Company:       job.Company,
			Location:      job.Location,
			Mode:          job.Mode,
			Source:        job.Source,
			Score:         score,
			PostedDaysAgo: job.PostedDaysAgo,
			ApplyURL:      job.ApplyURL,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PostedDaysAgo < entries[j].PostedDaysAgo
	})
	if len(entries) > b.size {
		entries = entries[:b.size]
	}

	digest := models.Digest{
		Date:    now.Format("2006-01-02"),
		Entries: entries,
	}
	if err := store.SetJSON(ctx, b.store, dateKey(now), digest); err != nil {
		return models.Digest{}, fmt.Errorf("save digest: %w", err)
	}

	if b.publisher != nil {
		// the digest is already persisted; a failed notification is not
		// worth failing the request over
		if err := b.publisher.DigestGenerated(ctx, digest); err != nil {
			logger.Get().Warn().Err(err).Str("date", digest.Date).Msg("digest publish failed")
		}
	}
	return digest, nil
}
