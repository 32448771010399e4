package domain

import (
	"bytes"
	"encoding/json"
)

// FarmType tags which production systems a question applies to.
type FarmType string

const (
	FarmTypeBreeding       FarmType = "breeding"
	FarmTypeFinishing      FarmType = "finishing"
	FarmTypeNursery        FarmType = "nursery"
	FarmTypeFarrowToFinish FarmType = "farrow_to_finish"
)

// AllFarmTypes is the universal relevance set in canonical order.
var AllFarmTypes = []FarmType{FarmTypeBreeding, FarmTypeFinishing, FarmTypeNursery, FarmTypeFarrowToFinish}

type BiosecurityCategory string

const (
	ExternalBiosecurity BiosecurityCategory = "external_biosecurity"
	InternalBiosecurity BiosecurityCategory = "internal_biosecurity"
)

type OutputDocument struct {
	Language     Language    `json:"language"`
	LanguageName string      `json:"language_name"`
	Version      string      `json:"version"`
	Source       string      `json:"source"`
	Glossary     Glossary    `json:"glossary"`
	FarmProfile  FarmProfile `json:"farm_profile"`
	Assessment   Assessment  `json:"assessment"`
}

// Glossary keeps the term order of the source document when encoded.
type Glossary []GlossaryEntry

type GlossaryEntry struct {
	Term       string
	Definition string
}

func (g Glossary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		term, err := marshalUnescaped(entry.Term)
		if err != nil {
			return nil, err
		}
		definition, err := marshalUnescaped(entry.Definition)
		if err != nil {
			return nil, err
		}
		buf.Write(term)
		buf.WriteByte(':')
		buf.Write(definition)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

type FarmProfile struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	TotalQuestions int               `json:"total_questions"`
	Questions      []ProfileQuestion `json:"questions"`
}

type ProfileQuestion struct {
	Number            string           `json:"number"`
	ID                string           `json:"id"`
	Text              string           `json:"text"`
	Type              string           `json:"type"`
	Required          bool             `json:"required"`
	Options           []ProfileOption  `json:"options,omitzero"`
	Validation        json.RawMessage  `json:"validation,omitempty"`
	ConditionalLogic  *ConditionalSkip `json:"conditional_logic,omitempty"`
	FarmTypeRelevance []FarmType       `json:"farm_type_relevance"`
	FarmTypeDetection bool             `json:"farm_type_detection,omitempty"`
}

type ProfileOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

type Assessment struct {
	TotalQuestions int         `json:"total_questions"`
	FocusAreas     []FocusArea `json:"focus_areas"`
}

type FocusArea struct {
	Number               int                 `json:"number"`
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	Category             BiosecurityCategory `json:"category"`
	Sections             []string            `json:"sections"`
	Questions            []Question          `json:"questions"`
	TotalQuestions       int                 `json:"total_questions"`
	EstimatedTimeMinutes int                 `json:"estimated_time_minutes"`
}

type Question struct {
	Number            int              `json:"number"`
	ID                string           `json:"id"`
	Section           string           `json:"section"`
	FocusArea         int              `json:"focus_area"`
	Text              string           `json:"text"`
	Type              string           `json:"type"`
	Required          bool             `json:"required"`
	Options           []Option         `json:"options,omitzero"`
	Validation        json.RawMessage  `json:"validation,omitempty"`
	ConditionalLogic  *ConditionalSkip `json:"conditional_logic,omitempty"`
	FarmTypeRelevance []FarmType       `json:"farm_type_relevance"`
	RiskAssessment    *RiskAssessment  `json:"risk_assessment,omitempty"`
}

type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// ConditionalSkip jumps to Target when the answer equals IfAnswer.
type ConditionalSkip struct {
	IfAnswer string `json:"if_answer"`
	Then     string `json:"then"`
	Target   string `json:"target"`
}

type RiskAssessment struct {
	RiskDescription       string   `json:"risk_description"`
	Recommendation        string   `json:"recommendation"`
	Priority              string   `json:"priority"`
	TriggerScoreThreshold int      `json:"trigger_score_threshold"`
	DiseasesAffected      []string `json:"diseases_affected"`
}
