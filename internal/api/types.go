package api

import (
	"github.com/blockedby/careerdesk-os/internal/ats"
	"github.com/blockedby/careerdesk-os/internal/match"
	"github.com/blockedby/careerdesk-os/internal/models"
)

// ============================================================================
// Common Types
// ============================================================================

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status" example:"ok" description:"Health status"`
	Version string `json:"version" example:"dev" description:"Application version"`
}

// ============================================================================
// Jobs Types
// ============================================================================

// JobView is a job plus its per-user computed state.
type JobView struct {
	models.Job
	Score  int                      `json:"score" description:"Match score against stored preferences, 0-100"`
	Tier   match.Tier               `json:"tier" description:"Score display tier: high, good, neutral, low"`
	Status models.ApplicationStatus `json:"status" description:"Application status, defaults to Not Applied"`
	Saved  bool                     `json:"saved" description:"Whether the job is on the shortlist"`
}

// JobsListResponse contains the filtered, sorted job list.
type JobsListResponse struct {
	Jobs  []JobView `json:"jobs" description:"Jobs matching the active filters"`
	Total int       `json:"total" description:"Number of jobs returned"`
}

// JobsMetaResponse lists the distinct filter values present in the dataset.
type JobsMetaResponse struct {
	Locations   []string                   `json:"locations" description:"Distinct job locations, sorted"`
	Experiences []string                   `json:"experiences" description:"Distinct experience bands, dataset order"`
	Statuses    []models.ApplicationStatus `json:"statuses" description:"Application statuses in display order"`
}

// JobStatusUpdateRequest contains the request body for a status change.
type JobStatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required" description:"New application status"`
}

// JobStatusUpdateResponse echoes the recorded status entry.
type JobStatusUpdateResponse struct {
	JobID  int                      `json:"jobId" description:"Job identifier"`
	Status models.ApplicationStatus `json:"status" description:"Recorded status"`
	Date   string                   `json:"date" description:"Status change timestamp, RFC 3339"`
}

// JobSaveResponse reports the shortlist state after a toggle.
type JobSaveResponse struct {
	JobID int  `json:"jobId" description:"Job identifier"`
	Saved bool `json:"saved" description:"Shortlist state after the toggle"`
}

// ============================================================================
// Resume Types
// ============================================================================

// ResumeScoreResponse is the ATS evaluation of the stored resume.
type ResumeScoreResponse struct {
	Score       int      `json:"score" description:"ATS score, 0-100"`
	Suggestions []string `json:"suggestions" description:"Improvements in rule order, empty when complete"`
}

// ResumeTextResponse is the plain-text export of the stored resume.
type ResumeTextResponse struct {
	Text string `json:"text" description:"Section-ordered plain-text resume"`
}

// BulletHintsRequest carries bullet lines to evaluate.
type BulletHintsRequest struct {
	Bullets []string `json:"bullets" validate:"required" description:"Bullet lines to evaluate"`
}

// BulletHintsResponse returns one hint per submitted bullet, same order.
type BulletHintsResponse struct {
	Hints []ats.BulletHint `json:"hints" description:"Hints aligned with the submitted bullets"`
}

// TemplateRequest selects the preview template.
type TemplateRequest struct {
	Template models.ResumeTemplate `json:"template" validate:"required,oneof=classic modern minimal" description:"Template name"`
}

// TemplateResponse is the stored template selection.
type TemplateResponse struct {
	Template models.ResumeTemplate `json:"template" description:"Selected template"`
}

// AccentRequest selects the preview accent color.
type AccentRequest struct {
	Accent models.ResumeAccent `json:"accent" validate:"required,oneof=blue emerald violet rose" description:"Accent name"`
}

// AccentResponse is the stored accent selection.
type AccentResponse struct {
	Accent models.ResumeAccent `json:"accent" description:"Selected accent"`
}

// ============================================================================
// Analysis Types
// ============================================================================

// AnalyzeRequest is the input for a new JD analysis.
type AnalyzeRequest struct {
	Company string `json:"company" description:"Company name, optional"`
	Role    string `json:"role" description:"Role title, optional"`
	JDText  string `json:"jdText" validate:"required" description:"Raw job description text"`
}

// AnalysesListResponse is the saved analysis history, newest first.
type AnalysesListResponse struct {
	Analyses []models.AnalysisResult `json:"analyses" description:"Saved analyses, newest first"`
	Dropped  int                     `json:"dropped" description:"Entries that could not be loaded"`
}

// ConfidenceUpdateRequest flips one skill's confidence on an analysis.
type ConfidenceUpdateRequest struct {
	Skill      string                 `json:"skill" validate:"required" description:"Skill name as extracted"`
	Confidence models.SkillConfidence `json:"confidence" validate:"required,oneof=know practice" description:"New confidence"`
}

// ============================================================================
// Proof Types
// ============================================================================

// ProofResponse is the submission tracker state.
type ProofResponse struct {
	Links          models.ArtifactLinks `json:"links" description:"Entered submission links"`
	CompletedSteps int                  `json:"completedSteps" description:"Build steps with a recorded artifact"`
	TotalSteps     int                  `json:"totalSteps" description:"Total build steps"`
	Status         models.ShipStatus    `json:"status" description:"Derived state: Not Started, In Progress, Shipped"`
	SubmissionText string               `json:"submissionText" description:"Plain-text submission for clipboard use"`
}

// ProofLinksRequest replaces the submission links.
type ProofLinksRequest struct {
	Links models.ArtifactLinks `json:"links" description:"Submission links; non-empty values must be http(s) URLs"`
}

// StepArtifactRequest records the artifact proving a build step.
type StepArtifactRequest struct {
	Artifact string `json:"artifact" description:"Artifact reference; empty clears the step"`
}

// StepArtifactResponse reports a step's completion state.
type StepArtifactResponse struct {
	Step      int  `json:"step" description:"Step number, 1-based"`
	Completed bool `json:"completed" description:"Whether the step has an artifact"`
}

// ============================================================================
// Digest Types
// ============================================================================

// DigestResponse is the day's digest plus its rendered text form.
type DigestResponse struct {
	Digest models.Digest `json:"digest" description:"Shortlist for the current date"`
	Text   string        `json:"text" description:"Plain-text rendering for clipboard or email"`
}
