package usecase

import (
	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

const questionsPerMinute = 4

// ConvertAssessment converts every classified category into the four focus
// areas. Question numbers run across all focus areas starting at 1.
func ConvertAssessment(src *domain.SourceDocument, lang domain.Language) (domain.Assessment, error) {
	assessment := domain.Assessment{
		FocusAreas: make([]domain.FocusArea, 0, focusAreaCount),
	}

	next := 1
	for number := 1; number <= focusAreaCount; number++ {
		area, after, err := convertFocusArea(src, lang, number, next)
		if err != nil {
			return domain.Assessment{}, err
		}
		assessment.FocusAreas = append(assessment.FocusAreas, area)
		next = after
	}
	assessment.TotalQuestions = next - 1

	return assessment, nil
}

// convertFocusArea numbers questions from next and returns the number the
// following focus area starts at.
func convertFocusArea(src *domain.SourceDocument, lang domain.Language, number, next int) (domain.FocusArea, int, error) {
	meta := focusAreas[number]
	area := domain.FocusArea{
		Number:      number,
		Name:        meta.name.Resolve(lang),
		Description: meta.description.Resolve(lang),
		Category:    meta.category,
		Sections:    append([]string(nil), meta.sections...),
		Questions:   []domain.Question{},
	}

	sectionIndex := 0
	for _, category := range src.Categories {
		if fa, ok := FocusAreaOf(category.ID); !ok || fa != number {
			continue
		}
		if category.ID == domain.FarmInformationCategoryID {
			continue
		}

		section := meta.sectionLetter(sectionIndex)
		for _, q := range category.Questions {
			converted, err := convertQuestion(q, lang, next, number, section)
			if err != nil {
				return domain.FocusArea{}, next, err
			}
			area.Questions = append(area.Questions, converted)
			next++
		}
		sectionIndex++
	}

	area.TotalQuestions = len(area.Questions)
	area.EstimatedTimeMinutes = max(1, area.TotalQuestions/questionsPerMinute)
	return area, next, nil
}
