package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

const defaultSheet = "Sheet1"

var (
	profileHeader = []any{"Number", "ID", "Text", "Type", "Required", "Options", "Farm type detection"}

	assessmentHeader = []any{
		"Number", "ID", "Focus area", "Section", "Text", "Type", "Required",
		"Options", "Skip logic", "Farm types", "Risk priority", "Trigger threshold", "Diseases",
	}
)

// Exporter writes a review workbook with a profile and an assessment sheet
// per language.
type Exporter struct {
	path string
}

func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

func (e *Exporter) ExportWorkbook(_ context.Context, docs []*domain.OutputDocument) (string, error) {
	if len(docs) == 0 {
		return "", fmt.Errorf("export workbook: no documents")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("create header style: %w", err)
	}

	for _, doc := range docs {
		if err := writeProfileSheet(f, doc, headerStyle); err != nil {
			return "", err
		}
		if err := writeAssessmentSheet(f, doc, headerStyle); err != nil {
			return "", err
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return "", fmt.Errorf("remove default sheet: %w", err)
	}
	f.SetActiveSheet(0)

	if dir := filepath.Dir(e.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create workbook dir: %w", err)
		}
	}
	if err := f.SaveAs(e.path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return e.path, nil
}

func ProfileSheetName(lang domain.Language) string {
	return "profile_" + string(lang)
}

func AssessmentSheetName(lang domain.Language) string {
	return "assessment_" + string(lang)
}

func writeProfileSheet(f *excelize.File, doc *domain.OutputDocument, headerStyle int) error {
	sheet := ProfileSheetName(doc.Language)
	rows := make([][]any, 0, len(doc.FarmProfile.Questions))
	for _, q := range doc.FarmProfile.Questions {
		options := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, opt.Value+": "+opt.Text)
		}
		rows = append(rows, []any{q.Number, q.ID, q.Text, q.Type, q.Required, strings.Join(options, "\n"), q.FarmTypeDetection})
	}
	return writeSheet(f, sheet, profileHeader, rows, headerStyle)
}

func writeAssessmentSheet(f *excelize.File, doc *domain.OutputDocument, headerStyle int) error {
	sheet := AssessmentSheetName(doc.Language)
	rows := make([][]any, 0, doc.Assessment.TotalQuestions)
	for _, area := range doc.Assessment.FocusAreas {
		for _, q := range area.Questions {
			options := make([]string, 0, len(q.Options))
			for _, opt := range q.Options {
				options = append(options, fmt.Sprintf("%s: %s (%d)", opt.Value, opt.Text, opt.Score))
			}
			skip := ""
			if q.ConditionalLogic != nil {
				skip = fmt.Sprintf("%s -> %s", q.ConditionalLogic.IfAnswer, q.ConditionalLogic.Target)
			}
			farmTypes := make([]string, 0, len(q.FarmTypeRelevance))
			for _, ft := range q.FarmTypeRelevance {
				farmTypes = append(farmTypes, string(ft))
			}
			row := []any{
				q.Number, q.ID, q.FocusArea, q.Section, q.Text, q.Type, q.Required,
				strings.Join(options, "\n"), skip, strings.Join(farmTypes, ", "),
			}
			if ra := q.RiskAssessment; ra != nil {
				row = append(row, ra.Priority, ra.TriggerScoreThreshold, strings.Join(ra.DiseasesAffected, ", "))
			}
			rows = append(rows, row)
		}
	}
	return writeSheet(f, sheet, assessmentHeader, rows, headerStyle)
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
