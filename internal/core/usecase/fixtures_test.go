package usecase

import (
	"encoding/json"
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

func decodeSource(t *testing.T, raw string) *domain.SourceDocument {
	t.Helper()
	var doc domain.SourceDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode source: %v", err)
	}
	return &doc
}

func decodeQuestion(t *testing.T, raw string) domain.SourceQuestion {
	t.Helper()
	var q domain.SourceQuestion
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	return q
}

func decodeLogic(t *testing.T, raw string) *orderedmap.OrderedMap[string, string] {
	t.Helper()
	logic := orderedmap.New[string, string]()
	if err := json.Unmarshal([]byte(raw), logic); err != nil {
		t.Fatalf("decode conditional logic: %v", err)
	}
	return logic
}

func intPtr(v int) *int {
	return &v
}

// endToEndSource has one farm_information category with two questions and one
// disease_management category with three.
const endToEndSource = `{
  "version": "4.0",
  "source": "Biocheck.Gent BV",
  "categories": [
    {
      "id": "farm_information",
      "name": {"en": "Farm profile", "id": "Profil peternakan", "vi": "Hồ sơ trang trại"},
      "description": {"en": "About your farm"},
      "questions": [
        {"id": "Q1", "question": {"en": "What type of farm?", "vi": "Loại trang trại?"}, "answer_type": "single_choice", "required": true,
         "options": [{"id": "breeding", "label": {"en": "Breeding"}}, {"id": "finishing", "label": {"en": "Finishing"}}]},
        {"id": "Q2", "question": {"en": "Number of pigs"}, "answer_type": "number_input", "validation": {"min": 0}}
      ]
    },
    {
      "id": "disease_management",
      "name": {"en": "Disease management"},
      "description": {"en": ""},
      "questions": [
        {"id": "Q10", "question": {"en": "Are sick animals isolated?", "id": "Apakah hewan sakit diisolasi?", "vi": "Có cách ly động vật ốm?"},
         "answer_type": "single_choice", "required": true,
         "options": [{"id": "yes", "label": {"en": "Yes", "vi": "Có"}, "score": 10}, {"id": "no", "label": {"en": "No", "vi": "Không"}, "score": 0}],
         "conditional_logic": {"yes": "continue", "no": "skip_to_Q12"},
         "risk_assessment": {"risk_description": {"en": "Spread within herd"}, "recommendation": {"en": "Use sick pens"}, "priority": "high", "trigger_score": 5, "diseases_affected": ["ASF", "PRRS"]}},
        {"id": "Q11", "question": {"en": "Are weaned piglets vaccinated?"}, "answer_type": "multi_choice",
         "options": [{"id": "a", "label": {"en": "PCV2"}, "score": 7}, {"id": "b", "label": {"en": "None"}}]},
        {"id": "Q12", "question": {"en": "Other remarks"}, "answer_type": "text_input"}
      ]
    }
  ],
  "glossary": {"PRRS": {"en": "Porcine reproductive and respiratory syndrome", "vi": "Hội chứng rối loạn hô hấp và sinh sản"}, "AI/AO": "All in, all out"}
}`
