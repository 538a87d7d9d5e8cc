package jd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChecklist_FixedTitles(t *testing.T) {
	rounds := GenerateChecklist(map[string][]string{GeneralCategory: {GeneralSkill}})

	require.Len(t, rounds, 4)
	assert.Equal(t, "Round 1 — Aptitude & Basics", rounds[0].Title)
	assert.Equal(t, "Round 2 — DSA & Core CS", rounds[1].Title)
	assert.Equal(t, "Round 3 — Technical Interview", rounds[2].Title)
	assert.Equal(t, "Round 4 — HR & Managerial", rounds[3].Title)
}

func TestGenerateChecklist_PadsShortRounds(t *testing.T) {
	rounds := GenerateChecklist(map[string][]string{GeneralCategory: {GeneralSkill}})

	// no skills detected: base lists get filler appended
	assert.Contains(t, rounds[1].Items, "Practice 2 hard-level coding problems")
	assert.Contains(t, rounds[2].Items, "Review system design basics")
}

func TestGenerateChecklist_SkillConditionalItems(t *testing.T) {
	skills := map[string][]string{
		"Core CS": {"OOP", "DBMS"},
		"Web":     {"React", "Node.js"},
		"Data":    {"SQL"},
	}
	rounds := GenerateChecklist(skills)

	assert.Contains(t, rounds[1].Items, "Revise OOP principles: encapsulation, inheritance, polymorphism")
	assert.Contains(t, rounds[1].Items, "Review normalization, joins, and indexing")
	assert.Contains(t, rounds[2].Items, "Review component lifecycle and state management")
	assert.Contains(t, rounds[2].Items, "Review REST API design and middleware patterns")
}

func TestGenerateChecklist_TruncatesToEight(t *testing.T) {
	// every round-3 condition fires
	skills := map[string][]string{
		"Web":          {"React", "Node.js"},
		"Data":         {"SQL", "MongoDB"},
		"Cloud/DevOps": {"Docker", "AWS"},
		"Languages":    {"Python", "Java"},
	}
	rounds := GenerateChecklist(skills)

	assert.LessOrEqual(t, len(rounds[1].Items), 8)
	assert.LessOrEqual(t, len(rounds[2].Items), 8)
	assert.Len(t, rounds[2].Items, 8)
}

func TestGeneratePlan_SevenDayShape(t *testing.T) {
	plan := GeneratePlan(map[string][]string{GeneralCategory: {GeneralSkill}})

	require.Len(t, plan, 5) // Day 1–2 and 3–4 are combined slots
	assert.Equal(t, "Day 1–2", plan[0].Day)
	assert.Equal(t, "Day 7", plan[4].Day)
	for _, d := range plan {
		assert.Len(t, d.Tasks, 5)
	}
}

func TestGeneratePlan_SkillConditionalTasks(t *testing.T) {
	tests := []struct {
		name     string
		skills   map[string][]string
		dayIndex int
		want     string
	}{
		{
			name:     "java preferred over python",
			skills:   map[string][]string{"Languages": {"Java", "Python"}},
			dayIndex: 1,
			want:     "Practice coding in Java",
		},
		{
			name:     "python when no java",
			skills:   map[string][]string{"Languages": {"Python"}},
			dayIndex: 1,
			want:     "Practice coding in Python",
		},
		{
			name:     "generic language fallback",
			skills:   map[string][]string{GeneralCategory: {GeneralSkill}},
			dayIndex: 1,
			want:     "Practice in your preferred language",
		},
		{
			name:     "networks task",
			skills:   map[string][]string{"Core CS": {"Networks"}},
			dayIndex: 0,
			want:     "Networks: OSI layers, TCP vs UDP",
		},
		{
			name:     "sql interview task",
			skills:   map[string][]string{"Data": {"SQL"}},
			dayIndex: 3,
			want:     "Practice SQL query-based interview questions",
		},
		{
			name:     "devops talking points",
			skills:   map[string][]string{"Cloud/DevOps": {"Docker"}},
			dayIndex: 3,
			want:     "Prepare DevOps/cloud interview talking points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := GeneratePlan(tt.skills)
			assert.Contains(t, plan[tt.dayIndex].Tasks, tt.want)
		})
	}
}

func TestGenerateQuestions_CapAndOrder(t *testing.T) {
	a := testAnalyzer()
	skills := a.ExtractSkills("dsa oop sql react node.js docker aws")

	qs := a.GenerateQuestions(skills)

	require.Len(t, qs, 10)
	// detection order: Core CS first, so DSA questions lead
	assert.Equal(t, "How would you optimize search in a sorted array?", qs[0])
}

func TestGenerateQuestions_Deduplicated(t *testing.T) {
	a := testAnalyzer()
	qs := a.GenerateQuestions(map[string][]string{
		"Core CS": {"DSA"},
		"Extra":   {"DSA"}, // same skill listed twice
	})

	seen := map[string]bool{}
	for _, q := range qs {
		assert.False(t, seen[q], "question %q repeated", q)
		seen[q] = true
	}
}

func TestGenerateQuestions_GeneralBackfill(t *testing.T) {
	a := testAnalyzer()
	qs := a.GenerateQuestions(map[string][]string{"Web": {"GraphQL"}})

	// one GraphQL question, then backfill from the General bank
	require.NotEmpty(t, qs)
	assert.Equal(t, "How does GraphQL differ from REST? What are its trade-offs?", qs[0])
	assert.Contains(t, qs, "Describe a project you've built from scratch.")
	assert.Equal(t, 6, len(qs)) // 1 + 5 general, banks exhausted, no padding
}

func TestGenerateQuestions_GeneralOnly(t *testing.T) {
	a := testAnalyzer()
	qs := a.GenerateQuestions(map[string][]string{GeneralCategory: {GeneralSkill}})

	assert.Len(t, qs, 5)
}
