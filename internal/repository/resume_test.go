package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/store"
)

func TestResume_EmptyWhenMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewResumeRepository(store.NewMemory())

	resume, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.EmptyResume(), resume)
}

func TestResume_EmptyWhenCorrupt(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.Set(ctx, store.KeyResumeData, []byte("][")))

	resume, err := NewResumeRepository(mem).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.EmptyResume(), resume)
}

func TestResume_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewResumeRepository(store.NewMemory())

	sample := models.SampleResume()
	require.NoError(t, repo.Save(ctx, sample))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestResume_MigratesLegacyFlatSkills(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	legacy := []byte(`{
		"personal": {"name": "Arjun Mehta"},
		"summary": "Full-stack developer.",
		"education": [],
		"experience": [],
		"projects": [
			{"id": "p1", "title": "DevConnect", "description": "Chat app", "techStack": "React, Node.js, PostgreSQL"}
		],
		"skills": "React, SQL",
		"links": {"github": "", "linkedin": ""}
	}`)
	require.NoError(t, mem.Set(ctx, store.KeyResumeData, legacy))

	resume, err := NewResumeRepository(mem).Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "SQL"}, resume.Skills.Technical)
	assert.Empty(t, resume.Skills.Soft)
	assert.Empty(t, resume.Skills.Tools)
	require.Len(t, resume.Projects, 1)
	assert.Equal(t, []string{"React", "Node.js", "PostgreSQL"}, resume.Projects[0].TechStack)
	// nothing else lost in the upgrade
	assert.Equal(t, "Arjun Mehta", resume.Personal.Name)
	assert.Equal(t, "Full-stack developer.", resume.Summary)
}

func TestResume_MigrationIsOneWay(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	repo := NewResumeRepository(mem)

	require.NoError(t, mem.Set(ctx, store.KeyResumeData, []byte(`{"skills": "Go"}`)))
	resume, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, resume))

	// the rewritten blob decodes as the current shape directly
	raw, ok, err := mem.Get(ctx, store.KeyResumeData)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"technical":["Go"]`)
}

func TestResume_TemplateDefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewResumeRepository(store.NewMemory())

	tmpl, err := repo.Template(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TemplateClassic, tmpl)

	assert.Error(t, repo.SetTemplate(ctx, models.ResumeTemplate("brutalist")))

	require.NoError(t, repo.SetTemplate(ctx, models.TemplateModern))
	tmpl, err = repo.Template(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TemplateModern, tmpl)
}

func TestResume_AccentDefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewResumeRepository(store.NewMemory())

	accent, err := repo.Accent(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AccentBlue, accent)

	assert.Error(t, repo.SetAccent(ctx, models.ResumeAccent("chartreuse")))

	require.NoError(t, repo.SetAccent(ctx, models.AccentViolet))
	accent, err = repo.Accent(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AccentViolet, accent)
}
