package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kirillkom/biocheck-converter/internal/bootstrap"
	"github.com/kirillkom/biocheck-converter/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	report, runErr := app.ConvertUC.Run(ctx)
	if err := app.Close(); err != nil {
		app.Logger.Warn("metrics_flush_failed", "error", err)
	}
	if runErr != nil {
		app.Logger.Error("conversion_failed", "error", runErr)
		stop()
		os.Exit(mapErrorToExitCode(runErr))
	}

	for _, lang := range report.Languages {
		app.Logger.Info("generated",
			"language", lang.Language,
			"path", lang.Output.Path,
			"profile_questions", lang.ProfileQuestions,
			"assessment_questions", lang.AssessmentQuestions,
		)
	}
	app.Logger.Info("conversion_completed", "files", len(report.Languages))
}
