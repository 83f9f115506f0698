package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/linguago/linguago/internal/api"
	"github.com/linguago/linguago/internal/config"
	"github.com/linguago/linguago/internal/delivery/cli"
	"github.com/linguago/linguago/internal/infra/sqlite"
	"github.com/linguago/linguago/internal/logger"
	"github.com/linguago/linguago/internal/repository"
	"github.com/linguago/linguago/internal/service"
	"github.com/linguago/linguago/internal/session"
)

func main() {
	// A .env file is optional; the config has defaults for everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the preference store, catalog, api client and services.
	store, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	courseRepo, err := repository.NewCourseRepository(cfg.Catalog.Path)
	if err != nil {
		log.Fatal(err)
	}

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, zl, store)
	auth := service.NewAuthService(client, store)
	sess := session.New(auth)

	handler := cli.NewHandler(os.Stdin, os.Stdout, zl, sess, auth, courseRepo)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
