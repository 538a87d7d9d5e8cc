// Package api provides the REST API over the careerdesk engine.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-fuego/fuego"
	"github.com/go-fuego/fuego/option"
	"golang.org/x/time/rate"

	"github.com/blockedby/careerdesk-os/internal/digest"
	"github.com/blockedby/careerdesk-os/internal/jd"
	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/publisher"
	"github.com/blockedby/careerdesk-os/internal/repository"
)

// HubBroadcaster defines the interface for WebSocket broadcasting.
type HubBroadcaster interface {
	Broadcast(message []byte)
}

// Server represents the Fuego API server.
type Server struct {
	fuego   *fuego.Server
	deps    *Dependencies
	port    int
	limiter *rate.Limiter
}

// Dependencies contains all service dependencies. Hub and Events may be
// nil; everything else is required.
type Dependencies struct {
	Jobs     []models.Job
	Prefs    *repository.PreferencesRepository
	Statuses *repository.StatusRepository
	Saved    *repository.SavedJobsRepository
	Resume   *repository.ResumeRepository
	History  *repository.HistoryRepository
	Analyzer *jd.Analyzer
	Digest   *digest.Builder
	Proof    *repository.ProofRepository
	Hub      HubBroadcaster
	Events   *publisher.Events
}

// Config holds API server configuration.
type Config struct {
	Port         int
	Title        string
	Description  string
	Version      string
	AnalyzeRPS   float64
	AnalyzeBurst int
}

// NewServer creates a new Fuego API server.
func NewServer(cfg *Config, deps *Dependencies) *Server {
	s := fuego.NewServer(
		fuego.WithAddr(fmt.Sprintf(":%d", cfg.Port)),
		fuego.WithEngineOptions(
			fuego.WithOpenAPIConfig(fuego.OpenAPIConfig{
				PrettyFormatJSON: true,
				JSONFilePath:     "openapi.json",
				SwaggerURL:       "/docs",
				SpecURL:          "/openapi.json",
				UIHandler: func(specURL string) http.Handler {
					return ScalarHandler(specURL, cfg.Title, cfg.Description)
				},
			}),
		),
	)

	// Set OpenAPI info
	s.OpenAPI.Description().Info.Title = cfg.Title
	s.OpenAPI.Description().Info.Description = cfg.Description
	s.OpenAPI.Description().Info.Version = cfg.Version

	// Add Chi middleware (Fuego is net/http compatible)
	fuego.Use(s, middleware.RequestID)
	fuego.Use(s, middleware.RealIP)
	fuego.Use(s, middleware.Logger)
	fuego.Use(s, middleware.Recoverer)

	rps := cfg.AnalyzeRPS
	if rps <= 0 {
		rps = 2.0
	}
	burst := cfg.AnalyzeBurst
	if burst <= 0 {
		burst = 5
	}

	srv := &Server{
		fuego:   s,
		deps:    deps,
		port:    cfg.Port,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) registerRoutes() {
	// Health check
	fuego.Get(s.fuego, "/health", s.healthCheck,
		option.Summary("Health Check"),
		option.Description("Returns the health status of the API"),
		option.Tags("System"),
	)

	// Jobs API
	jobsGroup := fuego.Group(s.fuego, "/api/v1/jobs",
		option.Tags("Jobs"),
	)

	fuego.Get(jobsGroup, "/", s.listJobs,
		option.Summary("List Jobs"),
		option.Description("Returns the job list filtered, scored, and sorted"),
		option.Query("q", "Keyword matched against title or company"),
		option.Query("location", "Exact location, or 'all'"),
		option.Query("mode", "Work mode (Remote, Hybrid, Onsite), or 'all'"),
		option.Query("experience", "Experience band, or 'all'"),
		option.Query("source", "Job board (LinkedIn, Naukri, Indeed), or 'all'"),
		option.Query("status", "Application status, or 'all'"),
		option.Query("sort", "Sort key: latest, oldest, company, match, salary"),
		option.Query("saved", "Set to 'true' to restrict to the shortlist"),
	)

	fuego.Get(jobsGroup, "/meta", s.jobsMeta,
		option.Summary("Filter Values"),
		option.Description("Returns the distinct filter values present in the dataset"),
	)

	fuego.Get(jobsGroup, "/{id}", s.getJob,
		option.Summary("Get Job"),
		option.Description("Returns a single job with its computed state"),
	)

	fuego.Patch(jobsGroup, "/{id}/status", s.updateJobStatus,
		option.Summary("Update Application Status"),
		option.Description("Records an application status change for a job"),
	)

	fuego.Post(jobsGroup, "/{id}/save", s.toggleSaved,
		option.Summary("Toggle Saved"),
		option.Description("Adds the job to the shortlist or removes it"),
	)

	// Preferences API
	prefsGroup := fuego.Group(s.fuego, "/api/v1/preferences",
		option.Tags("Preferences"),
	)

	fuego.Get(prefsGroup, "/", s.getPreferences,
		option.Summary("Get Preferences"),
		option.Description("Returns the stored matching profile, or the defaults"),
	)

	fuego.Put(prefsGroup, "/", s.putPreferences,
		option.Summary("Save Preferences"),
		option.Description("Overwrites the matching profile wholesale"),
	)

	// Resume API
	resumeGroup := fuego.Group(s.fuego, "/api/v1/resume",
		option.Tags("Resume"),
	)

	fuego.Get(resumeGroup, "/", s.getResume,
		option.Summary("Get Resume"),
		option.Description("Returns the stored resume, upgrading legacy shapes"),
	)

	fuego.Put(resumeGroup, "/", s.putResume,
		option.Summary("Save Resume"),
		option.Description("Overwrites the stored resume wholesale"),
	)

	fuego.Get(resumeGroup, "/score", s.getResumeScore,
		option.Summary("ATS Score"),
		option.Description("Evaluates the stored resume against the ATS rule table"),
	)

	fuego.Get(resumeGroup, "/text", s.getResumeText,
		option.Summary("Plain-Text Resume"),
		option.Description("Renders the stored resume as plain text"),
	)

	fuego.Post(resumeGroup, "/bullet-hints", s.bulletHints,
		option.Summary("Bullet Hints"),
		option.Description("Flags bullets missing an action verb or a metric"),
	)

	fuego.Get(resumeGroup, "/template", s.getTemplate,
		option.Summary("Get Template"),
		option.Description("Returns the selected preview template"),
	)

	fuego.Put(resumeGroup, "/template", s.putTemplate,
		option.Summary("Set Template"),
		option.Description("Selects the preview template"),
	)

	fuego.Get(resumeGroup, "/accent", s.getAccent,
		option.Summary("Get Accent"),
		option.Description("Returns the selected accent color"),
	)

	fuego.Put(resumeGroup, "/accent", s.putAccent,
		option.Summary("Set Accent"),
		option.Description("Selects the accent color"),
	)

	// Analyses API
	analysesGroup := fuego.Group(s.fuego, "/api/v1/analyses",
		option.Tags("Analyses"),
	)

	fuego.Post(analysesGroup, "/", s.createAnalysis,
		option.Summary("Analyze Job Description"),
		option.Description("Runs skill extraction and plan generation over a JD and saves the result"),
	)

	fuego.Get(analysesGroup, "/", s.listAnalyses,
		option.Summary("List Analyses"),
		option.Description("Returns the analysis history, newest first"),
	)

	fuego.Get(analysesGroup, "/{id}", s.getAnalysis,
		option.Summary("Get Analysis"),
		option.Description("Returns a single analysis by id"),
	)

	fuego.Patch(analysesGroup, "/{id}/confidence", s.updateConfidence,
		option.Summary("Update Skill Confidence"),
		option.Description("Sets one skill's confidence on a saved analysis"),
	)

	// Digest API
	digestGroup := fuego.Group(s.fuego, "/api/v1/digest",
		option.Tags("Digest"),
	)

	fuego.Get(digestGroup, "/", s.getDigest,
		option.Summary("Today's Digest"),
		option.Description("Returns the cached daily shortlist, generating it on first call"),
	)

	fuego.Post(digestGroup, "/refresh", s.refreshDigest,
		option.Summary("Refresh Digest"),
		option.Description("Discards and recomputes the current date's digest"),
	)

	// Proof API
	proofGroup := fuego.Group(s.fuego, "/api/v1/proof",
		option.Tags("Proof"),
	)

	fuego.Get(proofGroup, "/", s.getProof,
		option.Summary("Submission State"),
		option.Description("Returns the proof-of-work tracker state and submission text"),
	)

	fuego.Put(proofGroup, "/links", s.putProofLinks,
		option.Summary("Save Submission Links"),
		option.Description("Replaces the submission links; non-empty values must be http(s) URLs"),
	)

	fuego.Put(proofGroup, "/steps/{step}", s.putStepArtifact,
		option.Summary("Record Step Artifact"),
		option.Description("Records or clears the artifact proving a build step"),
	)
}

// Start starts the API server.
func (s *Server) Start() error {
	return s.fuego.Run()
}

// Stop gracefully stops the server.
func (s *Server) Stop(_ context.Context) error {
	// Fuego uses net/http server internally
	return nil
}

// Mux returns the underlying ServeMux for mounting additional routes.
func (s *Server) Mux() *http.ServeMux {
	return s.fuego.Mux
}
