package validation

import (
	"todo-tracker/internal/config"
)

// TaskValidator provides validation for task creation input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator that uses configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title. Leading and trailing whitespace is
// ignored; a title that is empty after trimming is rejected.
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, 1, tv.validator.getTitleMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateDescription validates an optional task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	trimmed := tv.validator.TrimAndValidateString(description)
	if tv.validator.IsValidDescriptionLength(trimmed) {
		return nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidLengthError("description", trimmed, 0, tv.validator.getDescriptionMaxLength())
	return validationError
}

// ValidateTaskForCreation validates both fields, collecting every problem
func (tv *TaskValidator) ValidateTaskForCreation(title, description string) error {
	validationError := NewValidationError()

	if err := tv.ValidateTitle(title); err != nil {
		if titleErr, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleErr.Errors...)
		}
	}
	if err := tv.ValidateDescription(description); err != nil {
		if descErr, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, descErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
