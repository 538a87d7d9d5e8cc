package match

import (
	"testing"

	"github.com/blockedby/careerdesk-os/internal/models"
)

func sampleJob() models.Job {
	return models.Job{
		ID:            1,
		Title:         "Backend Engineer — Go",
		Company:       "Flipkart",
		Location:      "Bangalore",
		Mode:          models.ModeHybrid,
		Experience:    "1-3 years",
		Skills:        []string{"Go", "PostgreSQL", "Kafka"},
		PostedDaysAgo: 1,
		Source:        models.SourceLinkedIn,
		Description:   "Build high-throughput backend services in Go.",
	}
}

// all eight rules firing must land on exactly 100
func TestScore_AllRulesFire(t *testing.T) {
	job := sampleJob()
	prefs := models.Preferences{
		RoleKeywords:       "backend",
		PreferredLocations: []string{"Bangalore"},
		PreferredModes:     []string{"Hybrid"},
		ExperienceLevel:    "1-3 years",
		Skills:             "go, react",
	}

	if got := Score(job, prefs); got != 100 {
		t.Errorf("Score() = %d, want exactly 100", got)
	}
}

func TestScore_EmptyPreferences(t *testing.T) {
	job := sampleJob()
	prefs := models.DefaultPreferences()

	// only freshness (+5) and LinkedIn (+5) can fire without preferences
	if got := Score(job, prefs); got != 10 {
		t.Errorf("Score() = %d, want 10", got)
	}
}

func TestScore_Rules(t *testing.T) {
	base := models.Job{
		Title:         "Data Analyst",
		Location:      "Pune",
		Mode:          models.ModeOnsite,
		Experience:    "0-1 years",
		Skills:        []string{"SQL"},
		PostedDaysAgo: 9,
		Source:        models.SourceNaukri,
		Description:   "Analyze dashboards.",
	}

	tests := []struct {
		name  string
		job   models.Job
		prefs models.Preferences
		want  int
	}{
		{
			name:  "title keyword substring match",
			job:   base,
			prefs: models.Preferences{RoleKeywords: "analyst"},
			want:  25,
		},
		{
			name:  "description keyword only",
			job:   base,
			prefs: models.Preferences{RoleKeywords: "dashboards"},
			want:  15,
		},
		{
			name:  "location exact match",
			job:   base,
			prefs: models.Preferences{PreferredLocations: []string{"Pune"}},
			want:  15,
		},
		{
			name:  "mode exact match",
			job:   base,
			prefs: models.Preferences{PreferredModes: []string{"Onsite"}},
			want:  10,
		},
		{
			name:  "experience level match",
			job:   base,
			prefs: models.Preferences{ExperienceLevel: "0-1 years"},
			want:  10,
		},
		{
			name:  "experience empty means no points",
			job:   base,
			prefs: models.Preferences{ExperienceLevel: ""},
			want:  0,
		},
		{
			name:  "skill overlap is exact not substring",
			job:   base,
			prefs: models.Preferences{Skills: "sql"},
			want:  15,
		},
		{
			name:  "partial skill token does not overlap",
			job:   base,
			prefs: models.Preferences{Skills: "sq"},
			want:  0,
		},
		{
			name:  "keyword casing is normalized",
			job:   base,
			prefs: models.Preferences{RoleKeywords: " ANALYST "},
			want:  25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.job, tt.prefs); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	jobs, err := models.LoadJobs()
	if err != nil {
		t.Fatalf("LoadJobs() error = %v", err)
	}
	prefs := models.Preferences{
		RoleKeywords:       "engineer, developer, backend, data",
		PreferredLocations: []string{"Bangalore", "Pune", "Chennai"},
		PreferredModes:     []string{"Remote", "Hybrid", "Onsite"},
		ExperienceLevel:    "1-3 years",
		Skills:             "go, react, python, sql, docker",
	}
	for _, j := range jobs {
		got := Score(j, prefs)
		if got < 0 || got > 100 {
			t.Errorf("job %d: Score() = %d, out of [0,100]", j.ID, got)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{100, TierHigh},
		{80, TierHigh},
		{79, TierGood},
		{60, TierGood},
		{59, TierNeutral},
		{40, TierNeutral},
		{39, TierLow},
		{0, TierLow},
	}
	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
