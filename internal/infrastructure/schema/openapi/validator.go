package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

//go:embed questions_file.yaml
var questionsFileSchema []byte

const rootSchema = "QuestionsFile"

// Validator checks generated questions files against the embedded
// OpenAPI component schema.
type Validator struct {
	schema *openapi3.Schema
}

func New(ctx context.Context) (*Validator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(questionsFileSchema)
	if err != nil {
		return nil, fmt.Errorf("load questions file schema: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate questions file schema: %w", err)
	}
	ref, ok := doc.Components.Schemas[rootSchema]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema %s not defined", rootSchema)
	}
	return &Validator{schema: ref.Value}, nil
}

func (v *Validator) ValidateDocument(_ context.Context, data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return domain.WrapError(domain.ErrSchemaViolation, "validate document", err)
	}
	if err := v.schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return domain.WrapError(domain.ErrSchemaViolation, "validate document", err)
	}
	return nil
}
