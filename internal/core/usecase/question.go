package usecase

import (
	"bytes"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

const (
	scoreScale       = 10
	skipActionPrefix = "skip_to_"
	defaultPriority  = "medium"
)

var answerTypes = map[string]string{
	"single_choice": "single_choice",
	"multi_choice":  "multiple_choice",
	"number_input":  "numeric",
	"text_input":    "text",
}

// normalizeAnswerType maps source answer types to output types. Unknown
// types are emitted verbatim.
func normalizeAnswerType(answerType string) string {
	if normalized, ok := answerTypes[answerType]; ok {
		return normalized
	}
	return answerType
}

// convertConditionalLogic keeps only the first skip action in document order;
// other branches are dropped.
func convertConditionalLogic(logic *orderedmap.OrderedMap[string, string]) *domain.ConditionalSkip {
	if logic == nil {
		return nil
	}
	for pair := logic.Oldest(); pair != nil; pair = pair.Next() {
		if !strings.HasPrefix(pair.Value, skipActionPrefix) {
			continue
		}
		return &domain.ConditionalSkip{
			IfAnswer: pair.Key,
			Then:     "skip_to",
			Target:   strings.ToLower(strings.TrimPrefix(pair.Value, skipActionPrefix)),
		}
	}
	return nil
}

type relevanceRule struct {
	keywords []string
	adds     []domain.FarmType
}

var relevanceRules = []relevanceRule{
	{
		keywords: []string{"breeding", "sow", "gilt", "boar", "farrowing", "suckling"},
		adds:     []domain.FarmType{domain.FarmTypeBreeding, domain.FarmTypeFarrowToFinish},
	},
	{
		keywords: []string{"slaughter", "finishing", "piglet"},
		adds:     []domain.FarmType{domain.FarmTypeFinishing, domain.FarmTypeFarrowToFinish},
	},
	{
		keywords: []string{"weaned", "nursery"},
		adds:     []domain.FarmType{domain.FarmTypeNursery, domain.FarmTypeFarrowToFinish},
	},
}

// inferFarmTypeRelevance matches keywords anywhere in the serialized question.
// Without a match the question is relevant to every farm type.
func inferFarmTypeRelevance(q domain.SourceQuestion) ([]domain.FarmType, error) {
	raw, err := q.Raw()
	if err != nil {
		return nil, fmt.Errorf("serialize question %s: %w", q.ID, err)
	}
	blob := bytes.ToLower(raw)

	matched := make(map[domain.FarmType]bool, len(domain.AllFarmTypes))
	for _, rule := range relevanceRules {
		for _, keyword := range rule.keywords {
			if bytes.Contains(blob, []byte(keyword)) {
				for _, farmType := range rule.adds {
					matched[farmType] = true
				}
				break
			}
		}
	}
	if len(matched) == 0 {
		return allFarmTypes(), nil
	}

	out := make([]domain.FarmType, 0, len(matched))
	for _, farmType := range domain.AllFarmTypes {
		if matched[farmType] {
			out = append(out, farmType)
		}
	}
	return out, nil
}

func allFarmTypes() []domain.FarmType {
	return append([]domain.FarmType(nil), domain.AllFarmTypes...)
}

func rescaleScore(score *int) int {
	if score == nil {
		return 0
	}
	return *score * scoreScale
}

// convertQuestion maps one assessment question into the output shape.
func convertQuestion(q domain.SourceQuestion, lang domain.Language, number, focusArea int, section string) (domain.Question, error) {
	relevance, err := inferFarmTypeRelevance(q)
	if err != nil {
		return domain.Question{}, err
	}

	out := domain.Question{
		Number:            number,
		ID:                strings.ToLower(q.ID),
		Section:           section,
		FocusArea:         focusArea,
		Text:              q.Question.Resolve(lang),
		Type:              normalizeAnswerType(q.AnswerType),
		Required:          q.Required,
		Validation:        q.Validation,
		ConditionalLogic:  convertConditionalLogic(q.ConditionalLogic),
		FarmTypeRelevance: relevance,
	}

	if q.Options != nil {
		out.Options = make([]domain.Option, 0, len(q.Options))
		for _, opt := range q.Options {
			out.Options = append(out.Options, domain.Option{
				Value: opt.ID,
				Text:  opt.Label.Resolve(lang),
				Score: rescaleScore(opt.Score),
			})
		}
	}

	if ra := q.RiskAssessment; ra != nil {
		priority := ra.Priority
		if priority == "" {
			priority = defaultPriority
		}
		diseases := append([]string{}, ra.DiseasesAffected...)
		out.RiskAssessment = &domain.RiskAssessment{
			RiskDescription:       ra.RiskDescription.Resolve(lang),
			Recommendation:        ra.Recommendation.Resolve(lang),
			Priority:              priority,
			TriggerScoreThreshold: rescaleScore(ra.TriggerScore),
			DiseasesAffected:      diseases,
		}
	}

	return out, nil
}
