package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockedby/careerdesk-os/internal/jd"
	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/store"
)

func testAnalysis(id, jdText string) models.AnalysisResult {
	return models.AnalysisResult{
		ID:                 id,
		CreatedAt:          testTime.Format(time.RFC3339),
		UpdatedAt:          testTime.Format(time.RFC3339),
		JDText:             jdText,
		ExtractedSkills:    map[string][]string{"Web": {"React"}},
		Plan:               []models.DayPlan{},
		Checklist:          []models.ChecklistRound{},
		Questions:          []string{},
		BaseScore:          55,
		FinalScore:         55,
		SkillConfidenceMap: map[string]models.SkillConfidence{"React": models.ConfidencePractice},
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(store.NewMemory(), fixedClock(testTime))

	require.NoError(t, repo.Save(ctx, testAnalysis("a1", "react role")))
	require.NoError(t, repo.Save(ctx, testAnalysis("a2", "node role")))

	results, dropped, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, results, 2)
	assert.Equal(t, "a2", results[0].ID)
	assert.Equal(t, "a1", results[1].ID)
}

func TestHistory_RepeatAnalysesKept(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(store.NewMemory(), fixedClock(testTime))

	require.NoError(t, repo.Save(ctx, testAnalysis("a1", "same jd")))
	require.NoError(t, repo.Save(ctx, testAnalysis("a2", "same jd")))

	results, _, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestHistory_DropsUnidentifiableEntries(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	blob := []byte(`[
		{"id": "ok", "jdText": "react", "createdAt": "2026-01-01T00:00:00Z"},
		{"jdText": "missing id"},
		{"id": "no-text"}
	]`)
	require.NoError(t, mem.Set(ctx, store.KeyJDHistory, blob))

	results, dropped, err := NewHistoryRepository(mem, fixedClock(testTime)).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dropped)
	require.Len(t, results, 1)
	assert.Equal(t, "ok", results[0].ID)
}

func TestHistory_BackfillsLegacyFields(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	blob := []byte(`[{
		"id": "legacy",
		"jdText": "some jd",
		"createdAt": "2025-12-01T09:00:00Z",
		"readinessScore": 70
	}]`)
	require.NoError(t, mem.Set(ctx, store.KeyJDHistory, blob))

	results, dropped, err := NewHistoryRepository(mem, fixedClock(testTime)).Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "", got.Company)
	assert.Equal(t, "", got.Role)
	assert.Equal(t, "2025-12-01T09:00:00Z", got.UpdatedAt)
	assert.Equal(t, 70, got.BaseScore)
	assert.Equal(t, 70, got.FinalScore)
	assert.Equal(t, map[string][]string{jd.GeneralCategory: {jd.GeneralSkill}}, got.ExtractedSkills)
	assert.NotNil(t, got.SkillConfidenceMap)
	assert.Empty(t, got.SkillConfidenceMap)
	assert.Empty(t, got.Plan)
	assert.Empty(t, got.Checklist)
	assert.Empty(t, got.Questions)
}

func TestHistory_UpdateConfidence(t *testing.T) {
	ctx := context.Background()
	later := testTime.Add(2 * time.Hour)
	mem := store.NewMemory()

	writer := NewHistoryRepository(mem, fixedClock(testTime))
	require.NoError(t, writer.Save(ctx, testAnalysis("a1", "react role")))

	updater := NewHistoryRepository(mem, fixedClock(later))
	got, err := updater.UpdateConfidence(ctx, "a1", "React", models.ConfidenceKnow)
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceKnow, got.SkillConfidenceMap["React"])
	assert.Equal(t, later.Format(time.RFC3339), got.UpdatedAt)
	assert.Equal(t, testTime.Format(time.RFC3339), got.CreatedAt)

	// change persisted
	stored, err := updater.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceKnow, stored.SkillConfidenceMap["React"])
}

func TestHistory_UpdateConfidenceUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(store.NewMemory(), fixedClock(testTime))

	_, err := repo.UpdateConfidence(ctx, "ghost", "React", models.ConfidenceKnow)
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

func TestHistory_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(store.NewMemory(), fixedClock(testTime))

	require.NoError(t, repo.Save(ctx, testAnalysis("a1", "react role")))

	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}
