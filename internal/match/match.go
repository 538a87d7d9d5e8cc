// Package match scores how well a job posting fits the user's preferences.
package match

import (
	"strings"

	"github.com/blockedby/careerdesk-os/internal/models"
)

// Rule weights. Raw maximum sums to exactly 100, so the clamp below is a
// safety net rather than a normal path.
const (
	pointsTitleKeyword = 25
	pointsDescKeyword  = 15
	pointsLocation     = 15
	pointsMode         = 10
	pointsExperience   = 10
	pointsSkillOverlap = 15
	pointsFreshPosting = 5
	pointsLinkedIn     = 5
)

// Score computes the 0-100 match score between a job and preferences.
// Pure: every rule is evaluated independently, hits are summed, the total
// is clamped to 100.
func Score(job models.Job, prefs models.Preferences) int {
	score := 0

	keywords := models.SplitCSV(prefs.RoleKeywords)
	userSkills := models.SplitCSV(prefs.Skills)
	titleLower := strings.ToLower(job.Title)
	descLower := strings.ToLower(job.Description)

	if anySubstring(titleLower, keywords) {
		score += pointsTitleKeyword
	}
	if anySubstring(descLower, keywords) {
		score += pointsDescKeyword
	}
	if contains(prefs.PreferredLocations, job.Location) {
		score += pointsLocation
	}
	if contains(prefs.PreferredModes, string(job.Mode)) {
		score += pointsMode
	}
	if prefs.ExperienceLevel != "" && job.Experience == prefs.ExperienceLevel {
		score += pointsExperience
	}
	if skillOverlap(userSkills, job.Skills) {
		score += pointsSkillOverlap
	}
	if job.PostedDaysAgo <= 2 {
		score += pointsFreshPosting
	}
	if job.Source == models.SourceLinkedIn {
		score += pointsLinkedIn
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Tier is the display tier for a score.
type Tier string

// Tier constants.
const (
	TierHigh    Tier = "high"
	TierGood    Tier = "good"
	TierNeutral Tier = "neutral"
	TierLow     Tier = "low"
)

// TierFor maps a score to its display tier.
func TierFor(score int) Tier {
	switch {
	case score >= 80:
		return TierHigh
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierNeutral
	default:
		return TierLow
	}
}

// anySubstring reports whether any needle occurs in haystack.
// Needles are already lower-cased by SplitCSV.
func anySubstring(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// contains is an exact membership test.
func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// skillOverlap reports whether any user skill equals any job skill,
// case-insensitively.
func skillOverlap(userSkills []string, jobSkills []string) bool {
	if len(userSkills) == 0 || len(jobSkills) == 0 {
		return false
	}
	jobLower := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		jobLower[strings.ToLower(s)] = true
	}
	for _, s := range userSkills {
		if jobLower[s] {
			return true
		}
	}
	return false
}
