package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameValidator_ValidateUsername(t *testing.T) {
	validator := NewUsernameValidator()

	tests := []struct {
		name            string
		input           string
		expectedType    ValidationErrorType
		expectedMessage string
	}{
		{"valid kebab-case", "john-doe", "", ""},
		{"valid snake_case", "jane_doe_2", "", ""},
		{"empty", "", ErrorTypeRequired, MessageUsernameRequired},
		{"space", "john doe", ErrorTypeWhitespace, MessageUsernameWhitespace},
		{"tab", "john\tdoe", ErrorTypeWhitespace, MessageUsernameWhitespace},
		{"space and bad characters", "john @doe", ErrorTypeWhitespace, MessageUsernameWhitespace},
		{"punctuation", "john!", ErrorTypeInvalidCharacter, MessageUsernameCharacters},
		{"unicode letter", "zoë", ErrorTypeInvalidCharacter, MessageUsernameCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateUsername(tt.input)
			if tt.expectedType == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, "username", ve.Errors[0].Field)
			assert.Equal(t, tt.expectedType, ve.FirstType())
			assert.Equal(t, tt.expectedMessage, ve.GetUserFriendlyMessage())
		})
	}
}

func TestUsernameValidator_MessagesAreDistinct(t *testing.T) {
	assert.NotEqual(t, MessageUsernameWhitespace, MessageUsernameCharacters)
	assert.Contains(t, MessageUsernameWhitespace, "spaces")
	assert.Contains(t, MessageUsernameCharacters, "alphanumeric")
}
