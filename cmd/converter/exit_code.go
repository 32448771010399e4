package main

import (
	"context"
	"errors"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

const (
	exitFailure        = 1
	exitInputNotFound  = 2
	exitInvalidInput   = 3
	exitSchemaMismatch = 4
	exitInterrupted    = 130
)

func mapErrorToExitCode(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInputNotFound):
		return exitInputNotFound
	case domain.IsKind(err, domain.ErrInvalidInput), domain.IsKind(err, domain.ErrMissingCategory):
		return exitInvalidInput
	case domain.IsKind(err, domain.ErrSchemaViolation):
		return exitSchemaMismatch
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		return exitFailure
	}
}
