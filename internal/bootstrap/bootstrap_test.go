package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kirillkom/biocheck-converter/internal/config"
	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

const sourceFixture = `{
  "version": "4.0",
  "source": "Biocheck.Gent BV",
  "categories": [
    {"id": "farm_information", "name": {"en": "Farm profile", "vi": "Hồ sơ trang trại"}, "description": "",
     "questions": [{"id": "Q1", "question": {"en": "Farm type?"}, "answer_type": "single_choice", "required": true,
       "options": [{"id": "breeding", "label": {"en": "Breeding"}}]}]},
    {"id": "maintenance", "name": {"en": "Maintenance"}, "description": "",
     "questions": [{"id": "Q40", "question": {"en": "Are fences repaired?", "id": "Apakah pagar diperbaiki?"},
       "answer_type": "single_choice", "options": [{"id": "yes", "label": {"en": "Yes"}, "score": 10}, {"id": "no", "label": {"en": "No"}}]}]}
  ],
  "glossary": {"AI/AO": {"en": "All in, all out"}}
}`

func TestAppRunsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "source.json")
	if err := os.WriteFile(input, []byte(sourceFixture), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	cfg := config.Config{
		InputPath:       input,
		OutputDir:       filepath.Join(dir, "out"),
		LogLevel:        "error",
		ValidateOutput:  true,
		XLSXExportPath:  filepath.Join(dir, "out", "review.xlsx"),
		MetricsTextfile: filepath.Join(dir, "converter.prom"),
	}

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	report, err := app.ConvertUC.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if report.RunID != app.RunID {
		t.Fatalf("expected report run id %q, got %q", app.RunID, report.RunID)
	}
	for _, lang := range domain.SupportedLanguages {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, lang.FileName())); err != nil {
			t.Fatalf("expected %s written: %v", lang.FileName(), err)
		}
	}
	if report.WorkbookPath != cfg.XLSXExportPath {
		t.Fatalf("expected workbook at %q, got %q", cfg.XLSXExportPath, report.WorkbookPath)
	}
	prom, err := os.ReadFile(cfg.MetricsTextfile)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(prom), `biocheck_converter_questions{block="assessment",language="vt",service="biocheck-converter"} 1`) {
		t.Fatalf("expected assessment gauge in metrics, got:\n%s", prom)
	}
}

func TestAppFailsOnMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{InputPath: filepath.Join(dir, "missing.json"), OutputDir: dir, LogLevel: "error"}

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = app.ConvertUC.Run(context.Background())
	if !domain.IsKind(err, domain.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}
