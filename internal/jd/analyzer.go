package jd

import (
	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/google/uuid"
)

// Analyze runs the whole pipeline over one job description and assembles
// an AnalysisResult. Generated content is immutable after this point; only
// the confidence map may change later.
func (a *Analyzer) Analyze(company, role, jdText string) models.AnalysisResult {
	skills := a.ExtractSkills(jdText)
	score := ReadinessScore(company, role, jdText, skills)
	intel := GenerateCompanyIntel(company, jdText)

	confidence := make(map[string]models.SkillConfidence)
	for _, s := range a.OrderedSkills(skills) {
		confidence[s] = models.ConfidencePractice
	}

	now := a.now()
	return models.AnalysisResult{
		ID:                 uuid.NewString(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Company:            company,
		Role:               role,
		JDText:             jdText,
		ExtractedSkills:    skills,
		Plan:               GeneratePlan(skills),
		Checklist:          GenerateChecklist(skills),
		Questions:          a.GenerateQuestions(skills),
		BaseScore:          score,
		FinalScore:         score,
		SkillConfidenceMap: confidence,
		CompanyIntel:       intel,
		RoundMapping:       GenerateRoundMapping(intel),
	}
}
