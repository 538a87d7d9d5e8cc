package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/blockedby/careerdesk-os/internal/config"
	"github.com/blockedby/careerdesk-os/internal/digest"
	"github.com/blockedby/careerdesk-os/internal/logger"
	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/render"
	"github.com/blockedby/careerdesk-os/internal/repository"
	"github.com/blockedby/careerdesk-os/internal/store"
)

func main() {
	refresh := flag.Bool("refresh", false, "recompute today's digest even if one is cached")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, cfg.LogFile)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.Open(ctx, cfg.StoreURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	jobs, err := models.LoadJobs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load job fixtures: %v\n", err)
		os.Exit(1)
	}

	prefsRepo := repository.NewPreferencesRepository(db)
	builder := digest.NewBuilder(db, prefsRepo, jobs, time.Now, cfg.DigestSize, nil)

	var d models.Digest
	if *refresh {
		d, err = builder.Refresh(ctx)
	} else {
		d, err = builder.Today(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build digest: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(render.DigestText(d))
}
