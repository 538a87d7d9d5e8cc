// Package ats computes the resume completeness score and bullet hints.
//
// "ATS" is a completeness heuristic against a fixed checklist; it is not
// validated against any real applicant tracking system.
package ats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blockedby/careerdesk-os/internal/models"
)

// Result is the ATS score plus improvement suggestions, ordered by the
// rule table. Suggestions are only emitted for rules that did not fire.
type Result struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// summaryVerbs is the action-verb list scanned in the summary.
// Treat as configuration: extend it for domain-specific openers instead of
// patching call sites.
var summaryVerbs = []string{
	"built", "led", "designed", "improved", "developed", "implemented",
	"created", "optimized", "automated", "managed", "launched", "delivered",
	"engineered", "architected", "reduced", "increased", "scaled",
	"migrated", "integrated", "deployed",
}

var summaryVerbRe = regexp.MustCompile(`(?i)\b(` + strings.Join(summaryVerbs, "|") + `)\b`)

// Score evaluates the resume against the additive rule table.
// Each rule is checked independently; the sum is clamped to 100.
func Score(resume models.ResumeData) Result {
	score := 0
	var suggestions []string

	if strings.TrimSpace(resume.Personal.Name) != "" {
		score += 10
	} else {
		suggestions = append(suggestions, "Add your full name (+10 points)")
	}

	if strings.TrimSpace(resume.Personal.Email) != "" {
		score += 10
	} else {
		suggestions = append(suggestions, "Add your email address (+10 points)")
	}

	if strings.TrimSpace(resume.Personal.Phone) != "" {
		score += 5
	} else {
		suggestions = append(suggestions, "Add your phone number (+5 points)")
	}

	hasSummary := len(resume.Summary) > 50
	if hasSummary {
		score += 10
	} else {
		suggestions = append(suggestions, "Add a professional summary with 50+ characters (+10 points)")
	}

	if summaryVerbRe.MatchString(resume.Summary) {
		score += 10
	} else if strings.TrimSpace(resume.Summary) != "" {
		suggestions = append(suggestions, "Use action verbs in your summary — e.g. built, led, designed (+10 points)")
	} else {
		suggestions = append(suggestions, "Write a summary that uses action verbs like built or designed (+10 points)")
	}

	if hasExperienceWithDescription(resume.Experience) {
		score += 15
	} else {
		suggestions = append(suggestions, "Add at least 1 experience entry with description (+15 points)")
	}

	if len(resume.Education) >= 1 {
		score += 10
	} else {
		suggestions = append(suggestions, "Add at least 1 education entry (+10 points)")
	}

	skillCount := len(resume.Skills.Flatten())
	if skillCount >= 5 {
		score += 10
	} else {
		suggestions = append(suggestions, fmt.Sprintf("Add at least 5 skills — you have %d (+10 points)", skillCount))
	}

	if len(resume.Projects) >= 1 {
		score += 10
	} else {
		suggestions = append(suggestions, "Add at least 1 project (+10 points)")
	}

	if strings.TrimSpace(resume.Links.Linkedin) != "" {
		score += 5
	} else {
		suggestions = append(suggestions, "Add your LinkedIn profile (+5 points)")
	}

	if strings.TrimSpace(resume.Links.Github) != "" {
		score += 5
	} else {
		suggestions = append(suggestions, "Add your GitHub profile (+5 points)")
	}

	if score > 100 {
		score = 100
	}

	return Result{Score: score, Suggestions: suggestions}
}

func hasExperienceWithDescription(entries []models.Experience) bool {
	for _, e := range entries {
		if strings.TrimSpace(e.Description) != "" {
			return true
		}
	}
	return false
}
