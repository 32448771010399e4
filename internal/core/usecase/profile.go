package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

const (
	profileIDPrefix = "pre_"
	// farmTypeQuestionID is compared against the source id as written,
	// so "q1" does not qualify.
	farmTypeQuestionID = "Q1"
)

var profileNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

func profileNumber(index int) string {
	if index < len(profileNumerals) {
		return profileNumerals[index]
	}
	return strconv.Itoa(index + 1)
}

// ConvertFarmProfile builds the farm profile block from the farm_information category.
func ConvertFarmProfile(src *domain.SourceDocument, lang domain.Language) (domain.FarmProfile, error) {
	category, ok := src.Category(domain.FarmInformationCategoryID)
	if !ok {
		return domain.FarmProfile{}, domain.WrapError(
			domain.ErrMissingCategory,
			"convert farm profile",
			fmt.Errorf("category %q not found", domain.FarmInformationCategoryID),
		)
	}

	profile := domain.FarmProfile{
		Title:          category.Name.Resolve(lang),
		Description:    category.Description.Resolve(lang),
		TotalQuestions: len(category.Questions),
		Questions:      make([]domain.ProfileQuestion, 0, len(category.Questions)),
	}

	for idx, q := range category.Questions {
		converted := domain.ProfileQuestion{
			Number:            profileNumber(idx),
			ID:                profileIDPrefix + strings.ToLower(q.ID),
			Text:              q.Question.Resolve(lang),
			Type:              normalizeAnswerType(q.AnswerType),
			Required:          q.Required,
			Validation:        q.Validation,
			ConditionalLogic:  convertConditionalLogic(q.ConditionalLogic),
			FarmTypeRelevance: allFarmTypes(),
			FarmTypeDetection: q.ID == farmTypeQuestionID,
		}
		if q.Options != nil {
			converted.Options = make([]domain.ProfileOption, 0, len(q.Options))
			for _, opt := range q.Options {
				converted.Options = append(converted.Options, domain.ProfileOption{
					Value: opt.ID,
					Text:  opt.Label.Resolve(lang),
				})
			}
		}
		profile.Questions = append(profile.Questions, converted)
	}

	return profile, nil
}
