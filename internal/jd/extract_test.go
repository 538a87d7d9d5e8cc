package jd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC).Format(time.RFC3339)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultTables(), func() string { return fixedNow })
}

func TestExtractSkills_TwoCategories(t *testing.T) {
	a := testAnalyzer()

	got := a.ExtractSkills("React, AWS")

	assert.Equal(t, map[string][]string{
		"Web":          {"React"},
		"Cloud/DevOps": {"AWS"},
	}, got)
}

func TestExtractSkills_NoMatchFallsBackToGeneral(t *testing.T) {
	a := testAnalyzer()

	got := a.ExtractSkills("we want a friendly pirate")

	assert.Equal(t, map[string][]string{
		GeneralCategory: {GeneralSkill},
	}, got)
}

func TestExtractSkills_DisplayCasingDeduplicates(t *testing.T) {
	a := testAnalyzer()

	// nodejs and node.js both map to Node.js, listed once
	got := a.ExtractSkills("nodejs or node.js experience")

	assert.Equal(t, []string{"Node.js"}, got["Web"])
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	a := testAnalyzer()

	got := a.ExtractSkills("STRONG KUBERNETES AND DOCKER SKILLS")

	assert.ElementsMatch(t, []string{"Docker", "Kubernetes"}, got["Cloud/DevOps"])
}

func TestOrderedSkills_FollowsTableOrder(t *testing.T) {
	a := testAnalyzer()

	skills := a.ExtractSkills("java and react with sql on aws")
	ordered := a.OrderedSkills(skills)

	// Languages before Web before Data before Cloud/DevOps
	assert.Equal(t, []string{"Java", "React", "SQL", "AWS"}, ordered)
}

func TestReadinessScore(t *testing.T) {
	a := testAnalyzer()
	longJD := make([]byte, 801)
	for i := range longJD {
		longJD[i] = 'x'
	}

	tests := []struct {
		name    string
		company string
		role    string
		jdText  string
		want    int
	}{
		{
			name:   "bare general analysis scores the base",
			jdText: "nothing matches here at all, pirate",
			want:   35,
		},
		{
			name:   "one category adds five",
			jdText: "react",
			want:   40,
		},
		{
			name:    "company and role add ten each",
			company: "Acme",
			role:    "SDE",
			jdText:  "react",
			want:    60,
		},
		{
			name:   "long jd adds ten",
			jdText: string(longJD),
			want:   45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := a.ExtractSkills(tt.jdText)
			got := ReadinessScore(tt.company, tt.role, tt.jdText, skills)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadinessScore_CategoryBonusCaps(t *testing.T) {
	a := testAnalyzer()
	jd := "dsa java react sql aws selenium" // all six categories
	skills := a.ExtractSkills(jd)
	require.Len(t, skills, 6)

	// 35 + 30 cap (6*5 == 30, not above) = 65
	assert.Equal(t, 65, ReadinessScore("", "", jd, skills))
}

func TestReadinessScore_Clamped(t *testing.T) {
	a := testAnalyzer()
	long := "dsa java react sql aws selenium " + string(make([]byte, 800))
	skills := a.ExtractSkills(long)

	got := ReadinessScore("Acme", "SDE", long, skills)
	assert.LessOrEqual(t, got, 100)
	assert.Equal(t, 95, got) // 35+30+10+10+10
}

func TestLoadTablesFile_Invalid(t *testing.T) {
	_, err := LoadTablesFile("/does/not/exist.yaml")
	assert.Error(t, err)
}
