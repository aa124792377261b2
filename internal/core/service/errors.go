package service

import (
	"errors"
	"strings"
)

// ValidationError collects the human-readable messages rendered back into the
// form that produced a rejected submission.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

var (
	ErrInvalidCredentials = NewValidationError("Invalid username / password")
	ErrUsernameTaken      = NewValidationError("Username is already taken")
)
