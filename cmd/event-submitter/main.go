package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"eventSubmitter/internal/composer"
	"eventSubmitter/internal/config"
	"eventSubmitter/internal/lib/logger/handlers/slogpretty"
	"eventSubmitter/internal/presenter"
	"eventSubmitter/internal/remote"
	"eventSubmitter/internal/screen"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		eventName    = flag.String("name", "", "event display name (required)")
		companyID    = flag.String("company", "", "owning company id (required)")
		tableLayouts = flag.String("layouts", "", "comma-separated table layout ids")
		categories   = flag.String("categories", "", "comma-separated category ids")
		clubCards    = flag.String("club-cards", "", "comma-separated club card ids")
		genres       = flag.String("genres", "", "comma-separated genre ids")
	)
	flag.Parse()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting event submitter", slog.String("env", cfg.Env))

	ctrl := screen.NewController(
		log,
		composer.New(cfg.Client.StartOffset, cfg.Client.Duration),
		remote.NewClient(cfg.Client, log),
		presenter.New(os.Stdout),
	)

	form := composer.Form{
		EventName:    *eventName,
		CompanyID:    *companyID,
		TableLayouts: splitIDs(*tableLayouts),
		Categories:   splitIDs(*categories),
		ClubCardIDs:  splitIDs(*clubCards),
		EventGenre:   splitIDs(*genres),
	}

	// the submission runs off the main goroutine, the way a UI event
	// loop would hand it off
	done := make(chan error, 1)
	go func() {
		done <- ctrl.Submit(context.Background(), form)
	}()

	if err := <-done; err != nil {
		os.Exit(1)
	}
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}

	return ids
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stderr)

	return slog.New(h)
}
