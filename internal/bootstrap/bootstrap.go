package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kirillkom/biocheck-converter/internal/config"
	"github.com/kirillkom/biocheck-converter/internal/core/ports"
	"github.com/kirillkom/biocheck-converter/internal/core/usecase"
	"github.com/kirillkom/biocheck-converter/internal/infrastructure/export/xlsx"
	"github.com/kirillkom/biocheck-converter/internal/infrastructure/schema/openapi"
	"github.com/kirillkom/biocheck-converter/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/biocheck-converter/internal/observability/logging"
	"github.com/kirillkom/biocheck-converter/internal/observability/metrics"
)

const serviceName = "biocheck-converter"

type App struct {
	Config config.Config
	RunID  string
	Logger *slog.Logger

	ConvertUC ports.QuestionnaireConverter

	metrics *metrics.ConverterMetrics
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	runID := uuid.NewString()
	logger := logging.WithRun(logging.NewJSONLogger(serviceName, cfg.LogLevel), runID)

	storage, err := localfs.New(cfg.InputPath, cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	m := metrics.NewConverterMetrics(serviceName)
	opts := []usecase.ConvertOption{
		usecase.WithLogger(logger),
		usecase.WithRunID(runID),
		usecase.WithRecorder(m),
	}

	if cfg.ValidateOutput {
		validator, err := openapi.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("init schema validator: %w", err)
		}
		opts = append(opts, usecase.WithValidator(validator))
	}
	if cfg.XLSXExportPath != "" {
		opts = append(opts, usecase.WithWorkbookExporter(xlsx.NewExporter(cfg.XLSXExportPath)))
	}

	return &App{
		Config:    cfg,
		RunID:     runID,
		Logger:    logger,
		ConvertUC: usecase.NewConvertUseCase(storage, storage, opts...),
		metrics:   m,
	}, nil
}

// Close flushes run metrics when a textfile destination is configured.
func (a *App) Close() error {
	if a.Config.MetricsTextfile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.Config.MetricsTextfile); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
