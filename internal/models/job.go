// Package models defines the persisted record shapes shared across services.
package models

// WorkMode is how a job is worked.
type WorkMode string

// WorkMode constants.
const (
	ModeRemote WorkMode = "Remote"
	ModeHybrid WorkMode = "Hybrid"
	ModeOnsite WorkMode = "Onsite"
)

// JobSource is the board a job was posted on.
type JobSource string

// JobSource constants.
const (
	SourceLinkedIn JobSource = "LinkedIn"
	SourceNaukri   JobSource = "Naukri"
	SourceIndeed   JobSource = "Indeed"
)

// Job represents a job posting. Fixture data - never created or mutated
// by the engine.
type Job struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	Mode          WorkMode  `json:"mode"`
	Experience    string    `json:"experience"`
	SalaryRange   string    `json:"salaryRange"`
	Skills        []string  `json:"skills"`
	PostedDaysAgo int       `json:"postedDaysAgo"`
	Source        JobSource `json:"source"`
	ApplyURL      string    `json:"applyUrl"`
	Description   string    `json:"description"`
}

// ApplicationStatus tracks where a job sits in the user's pipeline.
type ApplicationStatus string

// ApplicationStatus constants.
const (
	StatusNotApplied ApplicationStatus = "Not Applied"
	StatusApplied    ApplicationStatus = "Applied"
	StatusRejected   ApplicationStatus = "Rejected"
	StatusSelected   ApplicationStatus = "Selected"
)

// AllStatuses lists every application status in display order.
var AllStatuses = []ApplicationStatus{StatusNotApplied, StatusApplied, StatusRejected, StatusSelected}

// IsValid checks the status against the closed set.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusNotApplied, StatusApplied, StatusRejected, StatusSelected:
		return true
	}
	return false
}

// StatusEntry records the latest status change for one job.
type StatusEntry struct {
	Status ApplicationStatus `json:"status"`
	Date   string            `json:"date"` // RFC 3339
}
