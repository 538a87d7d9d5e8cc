package models

// SkillConfidence is the user's self-assessed confidence for one skill.
type SkillConfidence string

// SkillConfidence constants. New skills default to "practice".
const (
	ConfidenceKnow     SkillConfidence = "know"
	ConfidencePractice SkillConfidence = "practice"
)

// ChecklistRound is one interview round with its preparation items.
type ChecklistRound struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// DayPlan is one slot of the 7-day study plan.
type DayPlan struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// CompanyIntel is the heuristic company classification.
type CompanyIntel struct {
	Size     string `json:"size"` // Enterprise, Mid-size, Startup
	Industry string `json:"industry"`
}

// RoundStage is one step of the expected interview sequence.
type RoundStage struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AnalysisResult is one saved job-description analysis.
// Generated content is immutable at creation; only the confidence map and
// the updatedAt stamp change afterwards.
type AnalysisResult struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText"`

	ExtractedSkills map[string][]string `json:"extractedSkills"`
	Plan            []DayPlan           `json:"plan"`
	Checklist       []ChecklistRound    `json:"checklist"`
	Questions       []string            `json:"questions"`

	BaseScore  int `json:"baseScore"`
	FinalScore int `json:"finalScore"`

	SkillConfidenceMap map[string]SkillConfidence `json:"skillConfidenceMap"`

	CompanyIntel *CompanyIntel `json:"companyIntel,omitempty"`
	RoundMapping []RoundStage  `json:"roundMapping,omitempty"`
}

// DigestEntry is one line of a daily digest.
type DigestEntry struct {
	JobID         int       `json:"jobId"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	Mode          WorkMode  `json:"mode"`
	Source        JobSource `json:"source"`
	Score         int       `json:"score"`
	PostedDaysAgo int       `json:"postedDaysAgo"`
	ApplyURL      string    `json:"applyUrl"`
}

// Digest is the cached shortlist for one calendar date.
type Digest struct {
	Date    string        `json:"date"` // YYYY-MM-DD, local time
	Entries []DigestEntry `json:"entries"`
}
