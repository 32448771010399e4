package ports

import (
	"context"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

// QuestionnaireConverter is the inbound contract for one conversion run.
type QuestionnaireConverter interface {
	Run(ctx context.Context) (*domain.RunReport, error)
}
