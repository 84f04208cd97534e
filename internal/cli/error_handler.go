package cli

import (
	"fmt"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/validation"
)

// RecoveryHint is shown when the username in --url is rejected. It is the
// command-line form of choosing "Continue with Default User".
const RecoveryHint = "Re-run with --continue-default to ignore the username in the URL and continue with the stored or default user."

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	eh.logIfNeeded(operation, err)

	// Handle AppError types
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	// Bare validation errors from the validation package
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	return err
}

// HandleIdentity reports a failure to resolve the username at startup.
// Rejected URL usernames carry the recovery hint.
func (eh *ErrorHandler) HandleIdentity(err error) error {
	if err == nil {
		return nil
	}
	if eh.IsValidationError(err) {
		return &IdentityError{Message: errors.GetUserMessage(err), Hint: RecoveryHint, Cause: err}
	}
	return eh.Handle("resolve username", err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if errors.IsValidation(err) {
		return true
	}
	return validation.IsValidationError(err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsStorage(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

func (eh *ErrorHandler) logIfNeeded(operation string, err error) {
	if errors.ShouldLogError(err) {
		logging.Debugf("%s failed [%s]: %v\n", operation, errors.GetErrorCode(err), err)
	}
}

// IdentityError is returned when the username given in the URL is invalid
type IdentityError struct {
	Message string
	Hint    string
	Cause   error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("invalid username: %s\n%s", e.Message, e.Hint)
}

func (e *IdentityError) Unwrap() error {
	return e.Cause
}
