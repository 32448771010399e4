package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound       = errors.New("input not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingCategory     = errors.New("missing category")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrSchemaViolation     = errors.New("schema violation")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
