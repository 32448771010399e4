package domain

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FarmInformationCategoryID identifies the category converted into the farm
// profile instead of the assessment.
const FarmInformationCategoryID = "farm_information"

type SourceDocument struct {
	Version    string                                        `json:"version,omitempty"`
	Source     string                                        `json:"source,omitempty"`
	Categories []SourceCategory                              `json:"categories"`
	Glossary   *orderedmap.OrderedMap[string, LocalizedText] `json:"glossary,omitempty"`
}

// Category returns the category with the given id, if any.
func (d *SourceDocument) Category(id string) (*SourceCategory, bool) {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i], true
		}
	}
	return nil, false
}

type SourceCategory struct {
	ID          string           `json:"id"`
	Name        LocalizedText    `json:"name"`
	Description LocalizedText    `json:"description"`
	Questions   []SourceQuestion `json:"questions"`
}

type SourceQuestion struct {
	ID               string                                 `json:"id"`
	Question         LocalizedText                          `json:"question"`
	AnswerType       string                                 `json:"answer_type"`
	Required         bool                                   `json:"required,omitempty"`
	Options          []SourceOption                         `json:"options,omitempty"`
	Validation       json.RawMessage                        `json:"validation,omitempty"`
	ConditionalLogic *orderedmap.OrderedMap[string, string] `json:"conditional_logic,omitempty"`
	RiskAssessment   *SourceRiskAssessment                  `json:"risk_assessment,omitempty"`

	// raw keeps the record exactly as it appeared in the source file.
	raw json.RawMessage
}

func (q *SourceQuestion) UnmarshalJSON(data []byte) error {
	type plain SourceQuestion
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*q = SourceQuestion(decoded)
	q.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Raw returns the source JSON of the question. Questions built in code are
// marshalled on demand.
func (q SourceQuestion) Raw() ([]byte, error) {
	if len(q.raw) > 0 {
		return q.raw, nil
	}
	type plain SourceQuestion
	return json.Marshal(plain(q))
}

type SourceOption struct {
	ID    string        `json:"id"`
	Label LocalizedText `json:"label"`
	Score *int          `json:"score,omitempty"`
}

type SourceRiskAssessment struct {
	RiskDescription  LocalizedText `json:"risk_description"`
	Recommendation   LocalizedText `json:"recommendation"`
	Priority         string        `json:"priority,omitempty"`
	TriggerScore     *int          `json:"trigger_score,omitempty"`
	DiseasesAffected []string      `json:"diseases_affected,omitempty"`
}
