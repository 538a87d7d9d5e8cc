package ats

import (
	"regexp"
	"strings"
)

// bulletVerbs is the opener list for bullet hints. Shares intent with
// summaryVerbs but is kept separate: a bullet is judged only by its first
// word. Extend it as configuration; "worked" is deliberately absent, weak
// openers should be flagged.
var bulletVerbs = map[string]bool{
	"built": true, "developed": true, "designed": true, "implemented": true,
	"led": true, "improved": true, "created": true, "optimized": true,
	"automated": true, "managed": true, "deployed": true, "integrated": true,
	"architected": true, "launched": true, "reduced": true, "increased": true,
	"established": true, "maintained": true, "configured": true, "migrated": true,
	"refactored": true, "scaled": true, "collaborated": true, "delivered": true,
	"engineered": true, "streamlined": true, "resolved": true,
}

// metricRe detects measurable impact: percentages, Nx multipliers, Nk
// magnitudes, N+ counts, dollar amounts, or a count of a known unit.
var metricRe = regexp.MustCompile(`(?i)\d+%|\d+x|\d+k|\d+\+|\$\d+|\d+ (users|requests|clients|customers|projects|months|years|teams|endpoints|pages)`)

var nonLetterRe = regexp.MustCompile(`[^a-z]`)

// BulletHint flags what a resume bullet is missing.
type BulletHint struct {
	NeedsVerb   bool `json:"needsVerb"`
	NeedsMetric bool `json:"needsMetric"`
}

// AnalyzeBullet inspects one bullet line. Blank input clears both flags so
// callers can suppress rendering.
func AnalyzeBullet(text string) BulletHint {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return BulletHint{}
	}

	first := strings.Fields(trimmed)[0]
	first = nonLetterRe.ReplaceAllString(strings.ToLower(first), "")

	return BulletHint{
		NeedsVerb:   !bulletVerbs[first],
		NeedsMetric: !metricRe.MatchString(trimmed),
	}
}
