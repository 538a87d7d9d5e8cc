package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-fuego/fuego"

	"github.com/blockedby/careerdesk-os/internal/ats"
	"github.com/blockedby/careerdesk-os/internal/logger"
	"github.com/blockedby/careerdesk-os/internal/match"
	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/pipeline"
	"github.com/blockedby/careerdesk-os/internal/render"
	"github.com/blockedby/careerdesk-os/internal/repository"
	"github.com/blockedby/careerdesk-os/internal/web"
)

// ============================================================================
// Health
// ============================================================================

func (s *Server) healthCheck(_ fuego.ContextNoBody) (HealthResponse, error) {
	return HealthResponse{
		Status:  "ok",
		Version: "dev",
	}, nil
}

// ============================================================================
// Jobs Handlers
// ============================================================================

func (s *Server) listJobs(c fuego.ContextNoBody) (JobsListResponse, error) {
	filters := pipeline.DefaultFilters()
	filters.Keyword = c.QueryParam("q")
	filters.Location = queryOrAll(c, "location")
	filters.Mode = queryOrAll(c, "mode")
	filters.Experience = queryOrAll(c, "experience")
	filters.Source = queryOrAll(c, "source")
	filters.Status = queryOrAll(c, "status")

	if sortParam := c.QueryParam("sort"); sortParam != "" {
		key := pipeline.SortKey(sortParam)
		if !key.IsValid() {
			return JobsListResponse{}, fuego.BadRequestError{Detail: "Invalid sort key"}
		}
		filters.Sort = key
	}

	ctx := c.Context()

	prefs, hasPrefs, err := s.deps.Prefs.Load(ctx)
	if err != nil {
		return JobsListResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	statuses, err := s.deps.Statuses.All(ctx)
	if err != nil {
		return JobsListResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	savedIDs, err := s.deps.Saved.IDs(ctx)
	if err != nil {
		return JobsListResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}

	jobs := s.deps.Jobs
	if c.QueryParam("saved") == "true" {
		jobs = onlySaved(jobs, savedIDs)
	}

	scores := make(map[int]int, len(jobs))
	for _, job := range jobs {
		scores[job.ID] = match.Score(job, prefs)
	}

	filtered := pipeline.Apply(jobs, filters, pipeline.Input{
		Scores:         scores,
		Statuses:       statuses,
		HasPreferences: hasPrefs,
		MinMatchScore:  prefs.MinMatchScore,
	})

	saved := make(map[int]bool, len(savedIDs))
	for _, id := range savedIDs {
		saved[id] = true
	}

	views := make([]JobView, 0, len(filtered))
	for _, job := range filtered {
		views = append(views, JobView{
			Job:    job,
			Score:  scores[job.ID],
			Tier:   match.TierFor(scores[job.ID]),
			Status: statusFor(job.ID, statuses),
			Saved:  saved[job.ID],
		})
	}

	return JobsListResponse{Jobs: views, Total: len(views)}, nil
}

func (s *Server) jobsMeta(_ fuego.ContextNoBody) (JobsMetaResponse, error) {
	return JobsMetaResponse{
		Locations:   models.Locations(s.deps.Jobs),
		Experiences: models.Experiences(s.deps.Jobs),
		Statuses:    models.AllStatuses,
	}, nil
}

func (s *Server) getJob(c fuego.ContextNoBody) (JobView, error) {
	job, err := s.findJob(c.PathParam("id"))
	if err != nil {
		return JobView{}, err
	}

	ctx := c.Context()
	prefs, _, err := s.deps.Prefs.Load(ctx)
	if err != nil {
		return JobView{}, fuego.InternalServerError{Detail: err.Error()}
	}
	entry, err := s.deps.Statuses.Get(ctx, job.ID)
	if err != nil {
		return JobView{}, fuego.InternalServerError{Detail: err.Error()}
	}
	isSaved, err := s.deps.Saved.IsSaved(ctx, job.ID)
	if err != nil {
		return JobView{}, fuego.InternalServerError{Detail: err.Error()}
	}

	score := match.Score(job, prefs)
	return JobView{
		Job:    job,
		Score:  score,
		Tier:   match.TierFor(score),
		Status: entry.Status,
		Saved:  isSaved,
	}, nil
}

func (s *Server) updateJobStatus(c fuego.ContextWithBody[JobStatusUpdateRequest]) (JobStatusUpdateResponse, error) {
	job, err := s.findJob(c.PathParam("id"))
	if err != nil {
		return JobStatusUpdateResponse{}, err
	}

	body, err := c.Body()
	if err != nil {
		return JobStatusUpdateResponse{}, fuego.BadRequestError{Detail: err.Error()}
	}
	if !body.Status.IsValid() {
		return JobStatusUpdateResponse{}, fuego.BadRequestError{Detail: "Invalid status"}
	}

	entry, err := s.deps.Statuses.SetStatus(c.Context(), job.ID, body.Status)
	if err != nil {
		return JobStatusUpdateResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}

	if s.deps.Hub != nil {
		s.deps.Hub.Broadcast(web.JobStatusEvent(job.ID, entry))
	}
	if err := s.deps.Events.JobStatusChanged(c.Context(), job.ID, entry); err != nil {
		logger.Get().Warn().Err(err).Int("job_id", job.ID).Msg("status event publish failed")
	}

	return JobStatusUpdateResponse{
		JobID:  job.ID,
		Status: entry.Status,
		Date:   entry.Date,
	}, nil
}

func (s *Server) toggleSaved(c fuego.ContextNoBody) (JobSaveResponse, error) {
	job, err := s.findJob(c.PathParam("id"))
	if err != nil {
		return JobSaveResponse{}, err
	}

	saved, err := s.deps.Saved.Toggle(c.Context(), job.ID)
	if err != nil {
		return JobSaveResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return JobSaveResponse{JobID: job.ID, Saved: saved}, nil
}

// ============================================================================
// Preferences Handlers
// ============================================================================

func (s *Server) getPreferences(c fuego.ContextNoBody) (models.Preferences, error) {
	prefs, _, err := s.deps.Prefs.Load(c.Context())
	if err != nil {
		return models.Preferences{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return prefs, nil
}

func (s *Server) putPreferences(c fuego.ContextWithBody[models.Preferences]) (models.Preferences, error) {
	body, err := c.Body()
	if err != nil {
		return models.Preferences{}, fuego.BadRequestError{Detail: err.Error()}
	}
	if body.MinMatchScore < 0 || body.MinMatchScore > 100 {
		return models.Preferences{}, fuego.BadRequestError{Detail: "Minimum match score must be between 0 and 100"}
	}
	if body.PreferredLocations == nil {
		body.PreferredLocations = []string{}
	}
	if body.PreferredModes == nil {
		body.PreferredModes = []string{}
	}

	if err := s.deps.Prefs.Save(c.Context(), body); err != nil {
		return models.Preferences{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return body, nil
}

// ============================================================================
// Resume Handlers
// ============================================================================

func (s *Server) getResume(c fuego.ContextNoBody) (models.ResumeData, error) {
	resume, err := s.deps.Resume.Load(c.Context())
	if err != nil {
		return models.ResumeData{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return resume, nil
}

func (s *Server) putResume(c fuego.ContextWithBody[models.ResumeData]) (models.ResumeData, error) {
	body, err := c.Body()
	if err != nil {
		return models.ResumeData{}, fuego.BadRequestError{Detail: err.Error()}
	}
	if err := s.deps.Resume.Save(c.Context(), body); err != nil {
		return models.ResumeData{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return body, nil
}

func (s *Server) getResumeScore(c fuego.ContextNoBody) (ResumeScoreResponse, error) {
	resume, err := s.deps.Resume.Load(c.Context())
	if err != nil {
		return ResumeScoreResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}

	result := ats.Score(resume)
	suggestions := result.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return ResumeScoreResponse{Score: result.Score, Suggestions: suggestions}, nil
}

func (s *Server) getResumeText(c fuego.ContextNoBody) (ResumeTextResponse, error) {
	resume, err := s.deps.Resume.Load(c.Context())
	if err != nil {
		return ResumeTextResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return ResumeTextResponse{Text: render.ResumeText(resume)}, nil
}

func (s *Server) bulletHints(c fuego.ContextWithBody[BulletHintsRequest]) (BulletHintsResponse, error) {
	body, err := c.Body()
	if err != nil {
		return BulletHintsResponse{}, fuego.BadRequestError{Detail: err.Error()}
	}

	hints := make([]ats.BulletHint, 0, len(body.Bullets))
	for _, bullet := range body.Bullets {
		hints = append(hints, ats.AnalyzeBullet(bullet))
	}
	return BulletHintsResponse{Hints: hints}, nil
}

func (s *Server) getTemplate(c fuego.ContextNoBody) (TemplateResponse, error) {
	tmpl, err := s.deps.Resume.Template(c.Context())
	if err != nil {
		return TemplateResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return TemplateResponse{Template: tmpl}, nil
}

func (s *Server) putTemplate(c fuego.ContextWithBody[TemplateRequest]) (TemplateResponse, error) {
	body, err := c.Body()
	if err != nil {
		return TemplateResponse{}, fuego.BadRequestError{Detail: err.Error()}
	}
	if !body.Template.IsValid() {
		return TemplateResponse{}, fuego.BadRequestError{Detail: "Invalid template"}
	}

	if err := s.deps.Resume.SetTemplate(c.Context(), body.Template); err != nil {
		return TemplateResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return TemplateResponse{Template: body.Template}, nil
}

func (s *Server) getAccent(c fuego.ContextNoBody) (AccentResponse, error) {
	accent, err := s.deps.Resume.Accent(c.Context())
	if err != nil {
		return AccentResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return AccentResponse{Accent: accent}, nil
}

func (s *Server) putAccent(c fuego.ContextWithBody[AccentRequest]) (AccentResponse, error) {
	body, err := c.Body()
	if err != nil {
		return AccentResponse{}, fuego.BadRequestError{Detail: err.Error()}
	}
	if !body.Accent.IsValid() {
		return AccentResponse{}, fuego.BadRequestError{Detail: "Invalid accent"}
	}

	if err := s.deps.Resume.SetAccent(c.Context(), body.Accent); err != nil {
		return AccentResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return AccentResponse{Accent: body.Accent}, nil
}

// ============================================================================
// Analysis Handlers
// ============================================================================

func (s *Server) createAnalysis(c fuego.ContextWithBody[AnalyzeRequest]) (models.AnalysisResult, error) {
	if !s.limiter.Allow() {
		return models.AnalysisResult{}, fuego.HTTPError{
			Status: http.StatusTooManyRequests,
			Title:  "Too Many Requests",
			Detail: "Analysis rate limit exceeded, try again shortly",
		}
	}

	body, err := c.Body()
	if err != nil {
		return models.AnalysisResult{}, fuego.BadRequestError{Detail: err.Error()}
	}
	if strings.TrimSpace(body.JDText) == "" {
		return models.AnalysisResult{}, fuego.BadRequestError{Detail: "Job description text is required"}
	}

	result := s.deps.Analyzer.Analyze(body.Company, body.Role, body.JDText)
	if err := s.deps.History.Save(c.Context(), result); err != nil {
		return models.AnalysisResult{}, fuego.InternalServerError{Detail: err.Error()}
	}

	if err := s.deps.Events.AnalysisCreated(c.Context(), result); err != nil {
		logger.Get().Warn().Err(err).Str("analysis_id", result.ID).Msg("analysis event publish failed")
	}

	return result, nil
}

func (s *Server) listAnalyses(c fuego.ContextNoBody) (AnalysesListResponse, error) {
	analyses, dropped, err := s.deps.History.Load(c.Context())
	if err != nil {
		return AnalysesListResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return AnalysesListResponse{Analyses: analyses, Dropped: dropped}, nil
}

func (s *Server) getAnalysis(c fuego.ContextNoBody) (models.AnalysisResult, error) {
	result, err := s.deps.History.Get(c.Context(), c.PathParam("id"))
	if errors.Is(err, repository.ErrAnalysisNotFound) {
		return models.AnalysisResult{}, fuego.NotFoundError{Detail: "Analysis not found"}
	}
	if err != nil {
		return models.AnalysisResult{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return result, nil
}

func (s *Server) updateConfidence(c fuego.ContextWithBody[ConfidenceUpdateRequest]) (models.AnalysisResult, error) {
	body, err := c.Body()
	if err != nil {
		return models.AnalysisResult{}, fuego.BadRequestError{Detail: err.Error()}
	}
	if strings.TrimSpace(body.Skill) == "" {
		return models.AnalysisResult{}, fuego.BadRequestError{Detail: "Skill is required"}
	}
	if body.Confidence != models.ConfidenceKnow && body.Confidence != models.ConfidencePractice {
		return models.AnalysisResult{}, fuego.BadRequestError{Detail: "Confidence must be 'know' or 'practice'"}
	}

	result, err := s.deps.History.UpdateConfidence(c.Context(), c.PathParam("id"), body.Skill, body.Confidence)
	if errors.Is(err, repository.ErrAnalysisNotFound) {
		return models.AnalysisResult{}, fuego.NotFoundError{Detail: "Analysis not found"}
	}
	if err != nil {
		return models.AnalysisResult{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return result, nil
}

// ============================================================================
// Proof Handlers
// ============================================================================

func (s *Server) getProof(c fuego.ContextNoBody) (ProofResponse, error) {
	ctx := c.Context()

	links, err := s.deps.Proof.Links(ctx)
	if err != nil {
		return ProofResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	completed, err := s.deps.Proof.CompletedSteps(ctx)
	if err != nil {
		return ProofResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}

	return ProofResponse{
		Links:          links,
		CompletedSteps: completed,
		TotalSteps:     repository.TotalProofSteps,
		Status:         models.ShipStatusFor(links, completed, repository.TotalProofSteps),
		SubmissionText: render.SubmissionText(links),
	}, nil
}

func (s *Server) putProofLinks(c fuego.ContextWithBody[ProofLinksRequest]) (ProofResponse, error) {
	body, err := c.Body()
	if err != nil {
		return ProofResponse{}, fuego.BadRequestError{Detail: err.Error()}
	}
	for _, link := range []string{body.Links.Lovable, body.Links.Github, body.Links.Deployed} {
		if link != "" && !models.IsValidSubmissionURL(link) {
			return ProofResponse{}, fuego.BadRequestError{Detail: "Links must be valid http(s) URLs"}
		}
	}

	if err := s.deps.Proof.SaveLinks(c.Context(), body.Links); err != nil {
		return ProofResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}

	completed, err := s.deps.Proof.CompletedSteps(c.Context())
	if err != nil {
		return ProofResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return ProofResponse{
		Links:          body.Links,
		CompletedSteps: completed,
		TotalSteps:     repository.TotalProofSteps,
		Status:         models.ShipStatusFor(body.Links, completed, repository.TotalProofSteps),
		SubmissionText: render.SubmissionText(body.Links),
	}, nil
}

func (s *Server) putStepArtifact(c fuego.ContextWithBody[StepArtifactRequest]) (StepArtifactResponse, error) {
	step, err := strconv.Atoi(c.PathParam("step"))
	if err != nil || step < 1 || step > repository.TotalProofSteps {
		return StepArtifactResponse{}, fuego.BadRequestError{Detail: "Invalid step number"}
	}

	body, err := c.Body()
	if err != nil {
		return StepArtifactResponse{}, fuego.BadRequestError{Detail: err.Error()}
	}

	if err := s.deps.Proof.SetStepArtifact(c.Context(), step, body.Artifact); err != nil {
		return StepArtifactResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return StepArtifactResponse{Step: step, Completed: body.Artifact != ""}, nil
}

// ============================================================================
// Digest Handlers
// ============================================================================

func (s *Server) getDigest(c fuego.ContextNoBody) (DigestResponse, error) {
	d, err := s.deps.Digest.Today(c.Context())
	if err != nil {
		return DigestResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return DigestResponse{Digest: d, Text: render.DigestText(d)}, nil
}

func (s *Server) refreshDigest(c fuego.ContextNoBody) (DigestResponse, error) {
	d, err := s.deps.Digest.Refresh(c.Context())
	if err != nil {
		return DigestResponse{}, fuego.InternalServerError{Detail: err.Error()}
	}
	return DigestResponse{Digest: d, Text: render.DigestText(d)}, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (s *Server) findJob(idParam string) (models.Job, error) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return models.Job{}, fuego.BadRequestError{Detail: "Invalid job ID"}
	}
	for _, job := range s.deps.Jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return models.Job{}, fuego.NotFoundError{Detail: "Job not found"}
}

func queryOrAll(c fuego.ContextNoBody, name string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return pipeline.FilterAll
}

func statusFor(jobID int, statuses map[int]models.StatusEntry) models.ApplicationStatus {
	if entry, ok := statuses[jobID]; ok {
		return entry.Status
	}
	return models.StatusNotApplied
}

func onlySaved(jobs []models.Job, savedIDs []int) []models.Job {
	saved := make(map[int]bool, len(savedIDs))
	for _, id := range savedIDs {
		saved[id] = true
	}
	out := make([]models.Job, 0, len(savedIDs))
	for _, job := range jobs {
		if saved[job.ID] {
			out = append(out, job)
		}
	}
	return out
}
