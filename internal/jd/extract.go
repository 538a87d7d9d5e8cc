package jd

import "strings"

// Analyzer runs skill extraction against a fixed table set.
type Analyzer struct {
	tables Tables
	now    NowFunc
}

// NowFunc supplies timestamps, injectable for tests.
type NowFunc func() string

// NewAnalyzer creates an analyzer over the given tables.
func NewAnalyzer(tables Tables, now NowFunc) *Analyzer {
	return &Analyzer{tables: tables, now: now}
}

// ExtractSkills scans the JD text for every category keyword
// (case-insensitive substring match) and returns display-cased skills
// grouped by category. Returns the General fallback when nothing matches -
// never an empty map.
func (a *Analyzer) ExtractSkills(jdText string) map[string][]string {
	lower := strings.ToLower(jdText)
	result := make(map[string][]string)

	for _, cat := range a.tables.Categories {
		var found []string
		seen := map[string]bool{}
		for _, kw := range cat.Keywords {
			if !strings.Contains(lower, kw.Match) {
				continue
			}
			key := strings.ToLower(kw.Display)
			if seen[key] {
				continue
			}
			seen[key] = true
			found = append(found, kw.Display)
		}
		if len(found) > 0 {
			result[cat.Name] = found
		}
	}

	if len(result) == 0 {
		result[GeneralCategory] = []string{GeneralSkill}
	}
	return result
}

// CategoryOrder returns the configured category names in scan order, with
// General last. Callers use it to render the map deterministically.
func (a *Analyzer) CategoryOrder() []string {
	names := make([]string, 0, len(a.tables.Categories)+1)
	for _, c := range a.tables.Categories {
		names = append(names, c.Name)
	}
	return append(names, GeneralCategory)
}

// ReadinessScore estimates interview preparedness from signal density.
// Base 35, +5 per matched non-General category (max +30), +10 each for a
// named company, a named role, and a substantial JD, clamped to 100.
func ReadinessScore(company, role, jdText string, skills map[string][]string) int {
	score := 35

	categories := 0
	for name := range skills {
		if name != GeneralCategory {
			categories++
		}
	}
	bonus := categories * 5
	if bonus > 30 {
		bonus = 30
	}
	score += bonus

	if strings.TrimSpace(company) != "" {
		score += 10
	}
	if strings.TrimSpace(role) != "" {
		score += 10
	}
	if len(jdText) > 800 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// allSkills flattens the extracted map into one list.
func allSkills(skills map[string][]string) []string {
	var out []string
	for _, list := range skills {
		out = append(out, list...)
	}
	return out
}

// hasSkill reports whether any extracted skill contains kw,
// case-insensitively.
func hasSkill(skills []string, kw string) bool {
	kwLower := strings.ToLower(kw)
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), kwLower) {
			return true
		}
	}
	return false
}
