package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/store"
)

func TestProofRepository_LinksDefaultEmpty(t *testing.T) {
	repo := NewProofRepository(store.NewMemory())

	links, err := repo.Links(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ArtifactLinks{}, links)
}

func TestProofRepository_LinksRoundTrip(t *testing.T) {
	repo := NewProofRepository(store.NewMemory())
	ctx := context.Background()

	saved := models.ArtifactLinks{
		Lovable:  "https://lovable.dev/projects/x",
		Github:   "https://github.com/x/y",
		Deployed: "https://x.lovable.app",
	}
	require.NoError(t, repo.SaveLinks(ctx, saved))

	got, err := repo.Links(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestProofRepository_StepArtifacts(t *testing.T) {
	repo := NewProofRepository(store.NewMemory())
	ctx := context.Background()

	count, err := repo.CompletedSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.SetStepArtifact(ctx, 1, "https://example.com/one"))
	require.NoError(t, repo.SetStepArtifact(ctx, 3, "https://example.com/three"))

	artifact, ok, err := repo.StepArtifact(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/three", artifact)

	_, ok, err = repo.StepArtifact(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	count, err = repo.CompletedSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// An empty artifact clears the step.
	require.NoError(t, repo.SetStepArtifact(ctx, 3, ""))
	count, err = repo.CompletedSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProofRepository_StepOutOfRange(t *testing.T) {
	repo := NewProofRepository(store.NewMemory())

	assert.Error(t, repo.SetStepArtifact(context.Background(), 0, "x"))
	assert.Error(t, repo.SetStepArtifact(context.Background(), TotalProofSteps+1, "x"))
}

func TestProofRepository_ShipStatus(t *testing.T) {
	repo := NewProofRepository(store.NewMemory())
	ctx := context.Background()

	status, err := repo.ShipStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ShipNotStarted, status)

	require.NoError(t, repo.SetStepArtifact(ctx, 1, "done"))
	status, err = repo.ShipStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ShipInProgress, status)

	for step := 2; step <= TotalProofSteps; step++ {
		require.NoError(t, repo.SetStepArtifact(ctx, step, "done"))
	}
	require.NoError(t, repo.SaveLinks(ctx, models.ArtifactLinks{
		Lovable:  "https://lovable.dev/projects/x",
		Github:   "https://github.com/x/y",
		Deployed: "https://x.lovable.app",
	}))

	status, err = repo.ShipStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ShipShipped, status)
}
