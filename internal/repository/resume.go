package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/store"
)

// ResumeRepository persists the resume document plus its template and
// accent selections.
type ResumeRepository struct {
	store store.Store
}

// NewResumeRepository creates a repository over the given store.
func NewResumeRepository(s store.Store) *ResumeRepository {
	return &ResumeRepository{store: s}
}

// storedResume tolerates the legacy persisted shape: skills as one flat
// comma-separated string and project techStack as a string.
type storedResume struct {
	Personal   models.PersonalInfo `json:"personal"`
	Summary    string              `json:"summary"`
	Education  []models.Education  `json:"education"`
	Experience []models.Experience `json:"experience"`
	Projects   []storedProject     `json:"projects"`
	Skills     json.RawMessage     `json:"skills"`
	Links      models.ResumeLinks  `json:"links"`
}

type storedProject struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TechStack   json.RawMessage `json:"techStack"`
	LiveURL     string          `json:"liveUrl,omitempty"`
	GithubURL   string          `json:"githubUrl,omitempty"`
}

// Load returns the stored resume, upgrading legacy shapes in place.
// Missing or unreadable blobs fall back to the empty resume.
func (r *ResumeRepository) Load(ctx context.Context) (models.ResumeData, error) {
	raw, ok, err := r.store.Get(ctx, store.KeyResumeData)
	if err != nil {
		return models.EmptyResume(), fmt.Errorf("load resume: %w", err)
	}
	if !ok {
		return models.EmptyResume(), nil
	}

	var stored storedResume
	if err := json.Unmarshal(raw, &stored); err != nil {
		return models.EmptyResume(), nil
	}

	resume := models.ResumeData{
		Personal:   stored.Personal,
		Summary:    stored.Summary,
		Education:  stored.Education,
		Experience: stored.Experience,
		Skills:     migrateSkills(stored.Skills),
		Links:      stored.Links,
	}
	if resume.Education == nil {
		resume.Education = []models.Education{}
	}
	if resume.Experience == nil {
		resume.Experience = []models.Experience{}
	}
	resume.Projects = make([]models.Project, 0, len(stored.Projects))
	for _, p := range stored.Projects {
		resume.Projects = append(resume.Projects, models.Project{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			TechStack:   migrateStringList(p.TechStack),
			LiveURL:     p.LiveURL,
			GithubURL:   p.GithubURL,
		})
	}
	return resume, nil
}

// Save overwrites the stored resume wholesale, in the current shape.
func (r *ResumeRepository) Save(ctx context.Context, resume models.ResumeData) error {
	if err := store.SetJSON(ctx, r.store, store.KeyResumeData, resume); err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	return nil
}

// Template returns the stored template, defaulting to classic.
func (r *ResumeRepository) Template(ctx context.Context) (models.ResumeTemplate, error) {
	var tmpl models.ResumeTemplate
	ok, err := store.GetJSON(ctx, r.store, store.KeyResumeTmpl, &tmpl)
	if err != nil {
		return models.TemplateClassic, fmt.Errorf("load template: %w", err)
	}
	if !ok || !tmpl.IsValid() {
		return models.TemplateClassic, nil
	}
	return tmpl, nil
}

// SetTemplate stores the template selection.
func (r *ResumeRepository) SetTemplate(ctx context.Context, tmpl models.ResumeTemplate) error {
	if !tmpl.IsValid() {
		return fmt.Errorf("invalid template %q", tmpl)
	}
	if err := store.SetJSON(ctx, r.store, store.KeyResumeTmpl, tmpl); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}

// Accent returns the stored accent color, defaulting to blue.
func (r *ResumeRepository) Accent(ctx context.Context) (models.ResumeAccent, error) {
	var accent models.ResumeAccent
	ok, err := store.GetJSON(ctx, r.store, store.KeyResumeAccent, &accent)
	if err != nil {
		return models.AccentBlue, fmt.Errorf("load accent: %w", err)
	}
	if !ok || !accent.IsValid() {
		return models.AccentBlue, nil
	}
	return accent, nil
}

// SetAccent stores the accent selection.
func (r *ResumeRepository) SetAccent(ctx context.Context, accent models.ResumeAccent) error {
	if !accent.IsValid() {
		return fmt.Errorf("invalid accent %q", accent)
	}
	if err := store.SetJSON(ctx, r.store, store.KeyResumeAccent, accent); err != nil {
		return fmt.Errorf("save accent: %w", err)
	}
	return nil
}

// migrateSkills upgrades the legacy flat skills string into the
// categorized shape, keeping every skill under the technical bucket.
func migrateSkills(raw json.RawMessage) models.CategorizedSkills {
	empty := models.CategorizedSkills{
		Technical: []string{},
		Soft:      []string{},
		Tools:     []string{},
	}
	if len(raw) == 0 {
		return empty
	}

	var skills models.CategorizedSkills
	if err := json.Unmarshal(raw, &skills); err == nil {
		if skills.Technical == nil {
			skills.Technical = []string{}
		}
		if skills.Soft == nil {
			skills.Soft = []string{}
		}
		if skills.Tools == nil {
			skills.Tools = []string{}
		}
		return skills
	}

	var flat string
	if err := json.Unmarshal(raw, &flat); err == nil {
		empty.Technical = splitTrimmed(flat)
	}
	return empty
}

// migrateStringList upgrades a legacy comma-separated string into a
// string slice; current-shape arrays pass through.
func migrateStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		return list
	}
	var flat string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return splitTrimmed(flat)
	}
	return []string{}
}

// splitTrimmed splits on commas, trims, and drops empties, preserving
// the original casing.
func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
