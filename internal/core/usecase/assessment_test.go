package usecase

import (
	"fmt"
	"testing"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

func category(id string, questions int) domain.SourceCategory {
	c := domain.SourceCategory{ID: id, Name: domain.Text(id)}
	for i := 0; i < questions; i++ {
		c.Questions = append(c.Questions, domain.SourceQuestion{
			ID:         fmt.Sprintf("%s_Q%d", id, i+1),
			Question:   domain.Text("Question"),
			AnswerType: "single_choice",
		})
	}
	return c
}

func TestConvertAssessmentEndToEndSample(t *testing.T) {
	src := decodeSource(t, endToEndSource)

	assessment, err := ConvertAssessment(src, domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("ConvertAssessment() error = %v", err)
	}
	if assessment.TotalQuestions != 3 {
		t.Fatalf("expected 3 assessment questions, got %d", assessment.TotalQuestions)
	}
	if len(assessment.FocusAreas) != 4 {
		t.Fatalf("expected 4 focus areas, got %d", len(assessment.FocusAreas))
	}

	area := assessment.FocusAreas[2]
	if area.Number != 3 || area.TotalQuestions != 3 || area.EstimatedTimeMinutes != 1 {
		t.Fatalf("unexpected focus area 3 %+v", area)
	}
	if area.Category != domain.InternalBiosecurity || area.Name != "Production Management" {
		t.Fatalf("unexpected focus area metadata %q / %q", area.Category, area.Name)
	}
	for i, q := range area.Questions {
		if q.Number != i+1 || q.Section != "F" || q.FocusArea != 3 {
			t.Fatalf("question %d: unexpected number/section/focus area %+v", i, q)
		}
	}

	first := area.Questions[0]
	if first.ID != "q10" || first.ConditionalLogic == nil || first.ConditionalLogic.Target != "q12" || first.ConditionalLogic.IfAnswer != "no" {
		t.Fatalf("unexpected first question %+v", first)
	}
	if first.RiskAssessment == nil || first.RiskAssessment.TriggerScoreThreshold != 50 {
		t.Fatalf("unexpected risk assessment %+v", first.RiskAssessment)
	}

	for _, n := range []int{0, 1, 3} {
		empty := assessment.FocusAreas[n]
		if empty.TotalQuestions != 0 || empty.EstimatedTimeMinutes != 1 || empty.Questions == nil {
			t.Fatalf("unexpected empty focus area %+v", empty)
		}
	}
}

func TestConvertAssessmentNumbersAcrossFocusAreas(t *testing.T) {
	src := &domain.SourceDocument{Categories: []domain.SourceCategory{
		category("maintenance", 2),
		category(domain.FarmInformationCategoryID, 5),
		category("visitor_management", 3),
		category("breeding_animal_supply", 4),
		category("disease_management", 1),
		category("cleaning_disinfection", 2),
		category("unknown_category", 6),
	}}

	assessment, err := ConvertAssessment(src, domain.LanguageIndonesian)
	if err != nil {
		t.Fatalf("ConvertAssessment() error = %v", err)
	}

	next := 1
	for _, area := range assessment.FocusAreas {
		for _, q := range area.Questions {
			if q.Number != next {
				t.Fatalf("question %s numbered %d, want %d", q.ID, q.Number, next)
			}
			next++
		}
	}
	if assessment.TotalQuestions != next-1 || assessment.TotalQuestions != 12 {
		t.Fatalf("expected 12 questions, got total=%d counted=%d", assessment.TotalQuestions, next-1)
	}

	fa1 := assessment.FocusAreas[0]
	if fa1.TotalQuestions != 4 || fa1.EstimatedTimeMinutes != 1 {
		t.Fatalf("unexpected focus area 1 %+v", fa1)
	}
	if fa1.Questions[0].Number != 1 || fa1.Questions[0].Section != "A" {
		t.Fatalf("breeding supply should start numbering in section A, got %+v", fa1.Questions[0])
	}

	fa4 := assessment.FocusAreas[3]
	if fa4.Questions[0].ID != "maintenance_q1" || fa4.Questions[0].Section != "J" {
		t.Fatalf("expected maintenance first in source order with section J, got %+v", fa4.Questions[0])
	}
	if fa4.Questions[2].ID != "cleaning_disinfection_q1" || fa4.Questions[2].Section != "K" {
		t.Fatalf("expected cleaning_disinfection second with section K, got %+v", fa4.Questions[2])
	}
	if fa4.Questions[3].Number != 12 {
		t.Fatalf("expected last question numbered 12, got %d", fa4.Questions[3].Number)
	}
}

func TestConvertAssessmentExcludesFarmInformation(t *testing.T) {
	src := decodeSource(t, endToEndSource)

	assessment, err := ConvertAssessment(src, domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("ConvertAssessment() error = %v", err)
	}
	for _, area := range assessment.FocusAreas {
		for _, q := range area.Questions {
			if q.ID == "q1" || q.ID == "q2" {
				t.Fatalf("farm information question %s leaked into focus area %d", q.ID, area.Number)
			}
		}
	}
	if got := assessment.FocusAreas[0].TotalQuestions; got != 0 {
		t.Fatalf("expected focus area 1 empty, got %d", got)
	}
}

func TestConvertAssessmentSectionsAndEstimatedTime(t *testing.T) {
	src := &domain.SourceDocument{Categories: []domain.SourceCategory{
		category("feed_water_supply", 9),
		category("visitor_management", 1),
		category("equipment_vehicles", 2),
	}}

	assessment, err := ConvertAssessment(src, domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("ConvertAssessment() error = %v", err)
	}
	fa2 := assessment.FocusAreas[1]
	if fa2.EstimatedTimeMinutes != 3 {
		t.Fatalf("expected 12/4 = 3 minutes, got %d", fa2.EstimatedTimeMinutes)
	}
	sections := map[string]string{}
	for _, q := range fa2.Questions {
		sections[q.ID] = q.Section
	}
	if sections["feed_water_supply_q9"] != "C" || sections["visitor_management_q1"] != "D" || sections["equipment_vehicles_q2"] != "E" {
		t.Fatalf("unexpected sections %v", sections)
	}
}

func TestSectionLetterOverflow(t *testing.T) {
	meta := focusAreas[1]
	if got := meta.sectionLetter(1); got != "B" {
		t.Fatalf("sectionLetter(1) = %q, want B", got)
	}
	if got := meta.sectionLetter(2); got != "A" {
		t.Fatalf("sectionLetter(2) = %q, want overflow letter A", got)
	}
	if got := focusAreas[4].sectionLetter(5); got != "A" {
		t.Fatalf("sectionLetter(5) = %q, want overflow letter A", got)
	}
}

func TestFocusAreaOf(t *testing.T) {
	if n, ok := FocusAreaOf("vermin_control"); !ok || n != 3 {
		t.Fatalf("FocusAreaOf(vermin_control) = %d, %v", n, ok)
	}
	if _, ok := FocusAreaOf("poultry_housing"); ok {
		t.Fatal("unexpected classification for unknown category")
	}
}
