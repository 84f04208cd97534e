package validation

// User-facing reasons for a rejected username. The whitespace and
// character-set cases are reported separately.
const (
	MessageUsernameRequired   = "Username cannot be empty."
	MessageUsernameWhitespace = "Username cannot contain spaces. Please use kebab-case, camelCase, snake_case, or any format without spaces."
	MessageUsernameCharacters = "Username must contain only alphanumeric characters, hyphens, and underscores."
)

// UsernameValidator validates usernames
type UsernameValidator struct {
	validator *Validator
}

// NewUsernameValidator creates a new username validator
func NewUsernameValidator() *UsernameValidator {
	return &UsernameValidator{
		validator: NewValidator(),
	}
}

// ValidateUsername returns a *ValidationError describing why username is
// not acceptable, or nil if it is. Whitespace is checked before the
// character set so that "john doe" reports the whitespace problem.
func (uv *UsernameValidator) ValidateUsername(username string) error {
	if uv.validator.IsValidUsername(username) {
		return nil
	}

	validationError := NewValidationError()
	switch {
	case username == "":
		validationError.AddError("username", ErrorTypeRequired, MessageUsernameRequired, username)
	case ContainsWhitespace(username):
		validationError.AddWhitespaceError("username", username, MessageUsernameWhitespace)
	default:
		validationError.AddInvalidCharacterError("username", username, MessageUsernameCharacters)
	}
	return validationError
}
