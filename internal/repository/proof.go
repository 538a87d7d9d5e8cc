package repository

import (
	"context"
	"fmt"

	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/store"
)

// TotalProofSteps is the number of build steps gated by artifact keys.
const TotalProofSteps = 9

// ProofRepository persists the submission links and per-step build
// artifacts behind the proof-of-work tracker.
type ProofRepository struct {
	store store.Store
}

func NewProofRepository(s store.Store) *ProofRepository {
	return &ProofRepository{store: s}
}

func stepArtifactKey(step int) string {
	return fmt.Sprintf("%s%d_artifact", store.KeyStepPrefix, step)
}

// Links returns the stored submission links. Missing or corrupt storage
// reads as empty links.
func (r *ProofRepository) Links(ctx context.Context) (models.ArtifactLinks, error) {
	var links models.ArtifactLinks
	if _, err := store.GetJSON(ctx, r.store, store.KeyProofLinks, &links); err != nil {
		return models.ArtifactLinks{}, fmt.Errorf("load proof links: %w", err)
	}
	return links, nil
}

// SaveLinks overwrites the submission links wholesale.
func (r *ProofRepository) SaveLinks(ctx context.Context, links models.ArtifactLinks) error {
	if err := store.SetJSON(ctx, r.store, store.KeyProofLinks, links); err != nil {
		return fmt.Errorf("save proof links: %w", err)
	}
	return nil
}

// StepArtifact returns the artifact recorded for a step and whether one
// exists. Steps are numbered from 1.
func (r *ProofRepository) StepArtifact(ctx context.Context, step int) (string, bool, error) {
	raw, ok, err := r.store.Get(ctx, stepArtifactKey(step))
	if err != nil {
		return "", false, fmt.Errorf("load step artifact: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return string(raw), true, nil
}

// SetStepArtifact records the artifact for a step; a non-empty artifact
// marks the step completed.
func (r *ProofRepository) SetStepArtifact(ctx context.Context, step int, artifact string) error {
	if step < 1 || step > TotalProofSteps {
		return fmt.Errorf("step %d out of range", step)
	}
	if artifact == "" {
		if err := r.store.Delete(ctx, stepArtifactKey(step)); err != nil {
			return fmt.Errorf("clear step artifact: %w", err)
		}
		return nil
	}
	if err := r.store.Set(ctx, stepArtifactKey(step), []byte(artifact)); err != nil {
		return fmt.Errorf("save step artifact: %w", err)
	}
	return nil
}

// CompletedSteps counts the steps that have a recorded artifact.
func (r *ProofRepository) CompletedSteps(ctx context.Context) (int, error) {
	count := 0
	for step := 1; step <= TotalProofSteps; step++ {
		_, ok, err := r.StepArtifact(ctx, step)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// ShipStatus derives the submission state from the stored links and step
// completion.
func (r *ProofRepository) ShipStatus(ctx context.Context) (models.ShipStatus, error) {
	links, err := r.Links(ctx)
	if err != nil {
		return "", err
	}
	completed, err := r.CompletedSteps(ctx)
	if err != nil {
		return "", err
	}
	return models.ShipStatusFor(links, completed, TotalProofSteps), nil
}
