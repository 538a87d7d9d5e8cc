package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blockedby/careerdesk-os/internal/jd"
	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/store"
)

// ErrAnalysisNotFound is returned when an analysis id has no stored entry.
var ErrAnalysisNotFound = errors.New("analysis not found")

// HistoryRepository persists the JD analysis history, newest first.
// History is append-only apart from confidence updates; repeat analyses
// of the same JD are kept as separate entries.
type HistoryRepository struct {
	store store.Store
	now   func() time.Time
}

// NewHistoryRepository creates a repository over the given store.
// A nil clock defaults to time.Now.
func NewHistoryRepository(s store.Store, now func() time.Time) *HistoryRepository {
	if now == nil {
		now = time.Now
	}
	return &HistoryRepository{store: s, now: now}
}

// storedAnalysis tolerates entries written by older versions: scores
// under a single readinessScore field, absent confidence maps, absent
// company/role/updatedAt.
type storedAnalysis struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText"`

	ExtractedSkills map[string][]string     `json:"extractedSkills"`
	Plan            []models.DayPlan        `json:"plan"`
	Checklist       []models.ChecklistRound `json:"checklist"`
	Questions       []string                `json:"questions"`

	BaseScore      *int `json:"baseScore"`
	FinalScore     *int `json:"finalScore"`
	ReadinessScore int  `json:"readinessScore"`

	SkillConfidenceMap map[string]models.SkillConfidence `json:"skillConfidenceMap"`

	CompanyIntel *models.CompanyIntel `json:"companyIntel"`
	RoundMapping []models.RoundStage  `json:"roundMapping"`
}

// Load returns every loadable analysis, newest first, plus the count of
// entries dropped for failing minimal validation (missing id or JD text).
// Dropped entries are not rewritten; they simply stop being served.
func (r *HistoryRepository) Load(ctx context.Context) ([]models.AnalysisResult, int, error) {
	var stored []storedAnalysis
	if _, err := store.GetJSON(ctx, r.store, store.KeyJDHistory, &stored); err != nil {
		return nil, 0, fmt.Errorf("load history: %w", err)
	}

	results := make([]models.AnalysisResult, 0, len(stored))
	dropped := 0
	for _, s := range stored {
		if s.ID == "" || s.JDText == "" {
			dropped++
			continue
		}
		results = append(results, upgradeAnalysis(s))
	}
	return results, dropped, nil
}

// Get returns one analysis by id.
func (r *HistoryRepository) Get(ctx context.Context, id string) (models.AnalysisResult, error) {
	results, _, err := r.Load(ctx)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	for _, res := range results {
		if res.ID == id {
			return res, nil
		}
	}
	return models.AnalysisResult{}, ErrAnalysisNotFound
}

// Save prepends the analysis so history stays newest first.
func (r *HistoryRepository) Save(ctx context.Context, result models.AnalysisResult) error {
	var stored []json.RawMessage
	if _, err := store.GetJSON(ctx, r.store, store.KeyJDHistory, &stored); err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	stored = append([]json.RawMessage{raw}, stored...)

	if err := store.SetJSON(ctx, r.store, store.KeyJDHistory, stored); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// UpdateConfidence sets one skill's confidence on a stored analysis and
// bumps its updatedAt stamp. The generated content stays untouched.
func (r *HistoryRepository) UpdateConfidence(ctx context.Context, id, skill string, conf models.SkillConfidence) (models.AnalysisResult, error) {
	var stored []storedAnalysis
	if _, err := store.GetJSON(ctx, r.store, store.KeyJDHistory, &stored); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("load history: %w", err)
	}

	for i := range stored {
		if stored[i].ID != id {
			continue
		}
		if stored[i].SkillConfidenceMap == nil {
			stored[i].SkillConfidenceMap = map[string]models.SkillConfidence{}
		}
		stored[i].SkillConfidenceMap[skill] = conf
		stored[i].UpdatedAt = r.now().Format(time.RFC3339)

		if err := store.SetJSON(ctx, r.store, store.KeyJDHistory, stored); err != nil {
			return models.AnalysisResult{}, fmt.Errorf("save history: %w", err)
		}
		return upgradeAnalysis(stored[i]), nil
	}
	return models.AnalysisResult{}, ErrAnalysisNotFound
}

// upgradeAnalysis backfills fields absent from older stored shapes.
func upgradeAnalysis(s storedAnalysis) models.AnalysisResult {
	res := models.AnalysisResult{
		ID:                 s.ID,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		Company:            s.Company,
		Role:               s.Role,
		JDText:             s.JDText,
		ExtractedSkills:    s.ExtractedSkills,
		Plan:               s.Plan,
		Checklist:          s.Checklist,
		Questions:          s.Questions,
		SkillConfidenceMap: s.SkillConfidenceMap,
		CompanyIntel:       s.CompanyIntel,
		RoundMapping:       s.RoundMapping,
	}

	if res.UpdatedAt == "" {
		res.UpdatedAt = res.CreatedAt
	}
	if s.BaseScore != nil {
		res.BaseScore = *s.BaseScore
	} else {
		res.BaseScore = s.ReadinessScore
	}
	if s.FinalScore != nil {
		res.FinalScore = *s.FinalScore
	} else {
		res.FinalScore = res.BaseScore
	}
	if len(res.ExtractedSkills) == 0 {
		res.ExtractedSkills = map[string][]string{jd.GeneralCategory: {jd.GeneralSkill}}
	}
	if res.SkillConfidenceMap == nil {
		res.SkillConfidenceMap = map[string]models.SkillConfidence{}
	}
	if res.Plan == nil {
		res.Plan = []models.DayPlan{}
	}
	if res.Checklist == nil {
		res.Checklist = []models.ChecklistRound{}
	}
	if res.Questions == nil {
		res.Questions = []string{}
	}
	return res
}
