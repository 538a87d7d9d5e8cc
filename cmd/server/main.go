package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/blockedby/careerdesk-os/internal/api"
	"github.com/blockedby/careerdesk-os/internal/config"
	"github.com/blockedby/careerdesk-os/internal/digest"
	"github.com/blockedby/careerdesk-os/internal/jd"
	"github.com/blockedby/careerdesk-os/internal/logger"
	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/nats"
	"github.com/blockedby/careerdesk-os/internal/publisher"
	"github.com/blockedby/careerdesk-os/internal/repository"
	"github.com/blockedby/careerdesk-os/internal/store"
	"github.com/blockedby/careerdesk-os/internal/web"
)

// digestNotifier fans a generated digest out to WebSocket clients and the
// event broker.
type digestNotifier struct {
	hub    *web.Hub
	events *publisher.Events
}

func (n *digestNotifier) DigestGenerated(ctx context.Context, d models.Digest) error {
	n.hub.Broadcast(web.DigestGeneratedEvent(d))
	return n.events.DigestGenerated(ctx, d)
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel, cfg.LogFile)
	log := logger.Get()
	log.Info().Msg("starting careerdesk server")

	// 3. Setup context with graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		cancel()
	}()

	// 4. Setup resources
	// Store
	db, err := store.Open(ctx, cfg.StoreURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer db.Close()
	log.Info().Str("store", cfg.StoreURL).Msg("store opened")

	// Job fixtures
	jobs, err := models.LoadJobs()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load job fixtures")
	}
	log.Info().Int("jobs", len(jobs)).Msg("job fixtures loaded")

	// Skill tables
	tables := jd.DefaultTables()
	if cfg.SkillsFile != "" {
		tables, err = jd.LoadTablesFile(cfg.SkillsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.SkillsFile).Msg("failed to load skill tables")
		}
		log.Info().Str("file", cfg.SkillsFile).Msg("skill tables loaded")
	}
	analyzer := jd.NewAnalyzer(tables, func() string {
		return time.Now().UTC().Format(time.RFC3339)
	})

	// NATS (optional)
	var events *publisher.Events
	if cfg.NatsURL != "" {
		natsClient, err := nats.New(ctx, cfg.NatsURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to nats")
		}
		defer natsClient.Close()
		events = publisher.New(natsClient)
		log.Info().Str("url", cfg.NatsURL).Msg("connected to nats")
	} else {
		log.Info().Msg("nats disabled, events will not be published")
	}

	// Repositories
	prefsRepo := repository.NewPreferencesRepository(db)
	statusRepo := repository.NewStatusRepository(db, time.Now)
	savedRepo := repository.NewSavedJobsRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	historyRepo := repository.NewHistoryRepository(db, time.Now)
	proofRepo := repository.NewProofRepository(db)

	// WebSocket hub + web server
	hub := web.NewHub()
	go hub.Run()

	webSrv := web.NewServer(&web.Config{Port: cfg.WebPort}, hub)
	go func() {
		if err := webSrv.Start(); err != nil {
			log.Error().Err(err).Msg("web server stopped")
			cancel()
		}
	}()
	log.Info().Int("port", cfg.WebPort).Msg("web server started")

	// Digest builder
	builder := digest.NewBuilder(db, prefsRepo, jobs, time.Now, cfg.DigestSize, &digestNotifier{
		hub:    hub,
		events: events,
	})

	// API server
	apiSrv := api.NewServer(&api.Config{
		Port:         cfg.APIPort,
		Title:        "CareerDesk API",
		Description:  "Job application tracker and resume builder API",
		Version:      "1.0.0",
		AnalyzeRPS:   cfg.AnalyzeRPS,
		AnalyzeBurst: cfg.AnalyzeBurst,
	}, &api.Dependencies{
		Jobs:     jobs,
		Prefs:    prefsRepo,
		Statuses: statusRepo,
		Saved:    savedRepo,
		Resume:   resumeRepo,
		History:  historyRepo,
		Analyzer: analyzer,
		Digest:   builder,
		Proof:    proofRepo,
		Hub:      hub,
		Events:   events,
	})

	go func() {
		if err := apiSrv.Start(); err != nil {
			log.Error().Err(err).Msg("api server stopped")
			cancel()
		}
	}()
	log.Info().Int("port", cfg.APIPort).Msg("api server started")

	// Wait for shutdown
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := webSrv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("web server shutdown failed")
	}
	if err := apiSrv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("api server shutdown failed")
	}

	log.Info().Msg("shutdown complete")
}
