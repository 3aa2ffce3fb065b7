package server

import (
	"errors"
	"fmt"

	"github.com/grzetich/ai-developer-tools-mcp/internal/errortypes"
)

// Failure codes surfaced to the MCP collaborator. Every failure crossing
// the dispatch boundary becomes a short prefixed text message carrying one
// of these codes; stack traces and internal details stay in the log.
const (
	FailureCodeInvalidArgument  = "INVALID_ARGUMENT"
	FailureCodeUnknownTool      = "UNKNOWN_TOOL"
	FailureCodeUnknownOperation = "UNKNOWN_OPERATION"
	FailureCodeInternal         = "INTERNAL_ERROR"
)

// FailureCode maps an error to its collaborator-visible code.
func FailureCode(err error) string {
	switch errortypes.TypeOf(err) {
	case errortypes.ErrorTypeValidation:
		return FailureCodeInvalidArgument
	case errortypes.ErrorTypeUnknownTool:
		return FailureCodeUnknownTool
	case errortypes.ErrorTypeUnknownOperation:
		return FailureCodeUnknownOperation
	default:
		return FailureCodeInternal
	}
}

// failureResult converts a caught failure into the uniform structured
// failure returned to the collaborator: a code-prefixed human-readable
// message. The transport turns a non-nil handler error into an
// error-flagged tool result.
func failureResult(err error) error {
	var appErr *errortypes.AppError
	message := err.Error()
	if errors.As(err, &appErr) {
		message = appErr.Error()
	}
	return fmt.Errorf("%s: %s", FailureCode(err), message)
}
