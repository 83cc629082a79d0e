package models

import (
	"fmt"

	"github.com/dmitrijs2005/lifelog/internal/common"
)

// ValidationError reports a single invalid field. It matches
// common.ErrValidation under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
