package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
	"github.com/kirillkom/biocheck-converter/internal/core/ports"
)

type ConvertUseCase struct {
	loader    ports.SourceLoader
	writer    ports.DocumentWriter
	validator ports.DocumentValidator
	exporter  ports.WorkbookExporter
	recorder  ports.ConversionRecorder
	logger    *slog.Logger
	runID     string
	languages []domain.Language
}

type ConvertOption func(*ConvertUseCase)

// WithValidator validates every encoded file before it is written.
func WithValidator(validator ports.DocumentValidator) ConvertOption {
	return func(uc *ConvertUseCase) { uc.validator = validator }
}

func WithWorkbookExporter(exporter ports.WorkbookExporter) ConvertOption {
	return func(uc *ConvertUseCase) { uc.exporter = exporter }
}

func WithRecorder(recorder ports.ConversionRecorder) ConvertOption {
	return func(uc *ConvertUseCase) { uc.recorder = recorder }
}

func WithLogger(logger *slog.Logger) ConvertOption {
	return func(uc *ConvertUseCase) { uc.logger = logger }
}

func WithRunID(runID string) ConvertOption {
	return func(uc *ConvertUseCase) { uc.runID = runID }
}

func NewConvertUseCase(loader ports.SourceLoader, writer ports.DocumentWriter, opts ...ConvertOption) *ConvertUseCase {
	uc := &ConvertUseCase{
		loader:    loader,
		writer:    writer,
		logger:    slog.Default(),
		languages: domain.SupportedLanguages,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run converts the source into every supported language. The first failure
// aborts the run; files written before it are kept.
func (uc *ConvertUseCase) Run(ctx context.Context) (report *domain.RunReport, err error) {
	started := time.Now()
	if uc.recorder != nil {
		defer func() { uc.recorder.ObserveRun(time.Since(started), err) }()
	}

	src, err := uc.loader.LoadSource(ctx)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("source_loaded",
		"version", src.Version,
		"categories", len(src.Categories),
		"questions", countSourceQuestions(src),
	)

	report = &domain.RunReport{RunID: uc.runID}
	docs := make([]*domain.OutputDocument, 0, len(uc.languages))
	for _, lang := range uc.languages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, written, err := uc.convertLanguage(ctx, src, lang)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", lang, err)
		}
		docs = append(docs, doc)
		report.Languages = append(report.Languages, domain.LanguageReport{
			Language:            lang,
			ProfileQuestions:    len(doc.FarmProfile.Questions),
			AssessmentQuestions: doc.Assessment.TotalQuestions,
			FocusAreas:          len(doc.Assessment.FocusAreas),
			Output:              written,
		})
	}

	if uc.exporter != nil {
		path, err := uc.exporter.ExportWorkbook(ctx, docs)
		if err != nil {
			return nil, fmt.Errorf("export workbook: %w", err)
		}
		report.WorkbookPath = path
		uc.logger.Info("workbook_exported", "path", path)
	}

	return report, nil
}

func (uc *ConvertUseCase) convertLanguage(ctx context.Context, src *domain.SourceDocument, lang domain.Language) (*domain.OutputDocument, domain.WriteResult, error) {
	doc, err := AssembleDocument(src, lang)
	if err != nil {
		return nil, domain.WriteResult{}, err
	}
	uc.logger.Info("language_converted",
		"language", lang,
		"profile_questions", len(doc.FarmProfile.Questions),
		"assessment_questions", doc.Assessment.TotalQuestions,
		"focus_areas", len(doc.Assessment.FocusAreas),
	)

	data, err := EncodeDocument(doc)
	if err != nil {
		return nil, domain.WriteResult{}, err
	}
	if uc.validator != nil {
		if err := uc.validator.ValidateDocument(ctx, data); err != nil {
			return nil, domain.WriteResult{}, err
		}
	}

	written, err := uc.writer.WriteDocument(ctx, lang.FileName(), data)
	if err != nil {
		return nil, domain.WriteResult{}, err
	}
	attrs := []any{"language", lang, "path", written.Path, "size", humanize.Bytes(uint64(written.Bytes))}
	if written.BackupPath != "" {
		attrs = append(attrs, "backup", written.BackupPath)
	}
	uc.logger.Info("file_written", attrs...)

	if uc.recorder != nil {
		uc.recorder.ObserveDocument(doc, written)
	}
	return doc, written, nil
}

// EncodeDocument renders a questions file with two-space indentation,
// unescaped non-ASCII and HTML characters and no trailing newline.
func EncodeDocument(doc *domain.OutputDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode %s document: %w", doc.Language, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func countSourceQuestions(src *domain.SourceDocument) int {
	total := 0
	for _, category := range src.Categories {
		total += len(category.Questions)
	}
	return total
}
