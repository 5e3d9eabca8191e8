package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/domain/catalog"
	"github.com/rpggio/artvault/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, catalog.ErrRecordNotFound):
		return &APIError{Code: "RECORD_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_records for current indices"}
	case errors.Is(err, catalog.ErrInvalidInput), errors.Is(err, art.ErrInvalidInput), errors.Is(err, art.ErrUnknownKind):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, repository.ErrUnsupported):
		return &APIError{Code: "UNSUPPORTED", Message: "the catalog has no backing store", RecoveryHint: "Configure a file or sqlite storage backend"}
	case errors.Is(err, repository.ErrPersistence):
		return &APIError{Code: "PERSISTENCE_FAILED", Message: err.Error()}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
