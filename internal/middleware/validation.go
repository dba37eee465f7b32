package middleware

import (
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ValidateText validates free-text input. Blank text is allowed here: the
// dialogue engine treats it as a silent no-op.
func ValidateText(text string) error {
	if len(text) > 2000 {
		return errors.New("text exceeds maximum length")
	}
	if !utf8.ValidString(text) {
		return errors.New("text must be valid UTF-8")
	}
	return nil
}

// ValidateSessionID validates a session ID.
func ValidateSessionID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid session ID format")
	}
	return nil
}

// ValidateTopic validates a topic tag's shape. Membership in the active
// taxonomy is checked by the dialogue engine.
func ValidateTopic(tag string) error {
	if len(tag) == 0 {
		return errors.New("topic cannot be empty")
	}
	if len(tag) > 32 {
		return errors.New("topic exceeds maximum length")
	}
	return nil
}
