package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"todo-tracker/internal/config"
)

// usernamePattern is the complete character set a username may use
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsValidUsername reports whether s is a well-formed username: non-empty,
// free of whitespace, and made only of ASCII letters, digits, '-' and '_'.
func IsValidUsername(s string) bool {
	if s == "" || ContainsWhitespace(s) {
		return false
	}
	return usernamePattern.MatchString(s)
}

// ContainsWhitespace reports whether s contains any Unicode whitespace
func ContainsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string's rune count is within the specified
// range. A max of 0 or less leaves the length unbounded.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && (max <= 0 || length <= max)
}

// IsValidTitleLength checks a task title against the configured maximum
func (v *Validator) IsValidTitleLength(title string) bool {
	return v.IsValidStringLength(title, 1, v.getTitleMaxLength())
}

// IsValidDescriptionLength checks a task description against the configured maximum
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, 0, v.getDescriptionMaxLength())
}

// IsValidUsername is the method form of the package-level IsValidUsername
func (v *Validator) IsValidUsername(s string) bool {
	return IsValidUsername(s)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getTitleMaxLength returns configured maximum title length or default; 0 is no limit
func (v *Validator) getTitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return config.DefaultTitleMaxLength
}

// getDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return config.DefaultDescriptionMaxLength
}
