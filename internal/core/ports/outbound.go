package ports

import (
	"context"
	"time"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

// SourceLoader reads the source questionnaire.
type SourceLoader interface {
	LoadSource(ctx context.Context) (*domain.SourceDocument, error)
}

// DocumentWriter persists an encoded questions file, backing up any file it replaces.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, name string, data []byte) (domain.WriteResult, error)
}

// DocumentValidator checks an encoded questions file against the output schema.
type DocumentValidator interface {
	ValidateDocument(ctx context.Context, data []byte) error
}

// WorkbookExporter writes a review workbook of all generated languages.
type WorkbookExporter interface {
	ExportWorkbook(ctx context.Context, docs []*domain.OutputDocument) (string, error)
}

// ConversionRecorder records run metrics.
type ConversionRecorder interface {
	ObserveDocument(doc *domain.OutputDocument, written domain.WriteResult)
	ObserveRun(duration time.Duration, err error)
}
