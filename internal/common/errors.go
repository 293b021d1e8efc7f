// Package common provides shared utilities and types used across the
// application.
package common

import (
	"errors"
	"fmt"
)

// Input adapter errors. These surface before the normalization engine runs;
// the engine itself has no fatal error path.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrEmptyFile      = errors.New("file is empty")
	ErrNoHeader       = errors.New("csv file has no header row")
	ErrMissingColumns = errors.New("missing required columns")
)

// UserError represents an error whose message should be shown to the user
// verbatim.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
