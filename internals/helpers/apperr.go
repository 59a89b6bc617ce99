package helper

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and services. Controllers map
// them to HTTP statuses; anything else is treated as a store error (500).
var (
	// ErrNotFound covers both "no such record" and "record belongs to
	// another church" — the two are indistinguishable on purpose.
	ErrNotFound = errors.New("record not found")

	ErrInvalidTransition = errors.New("invalid status transition")

	ErrUnknownCurriculum = errors.New("unknown curriculum")
)

// ValidationErr is a domain-level validation failure (as opposed to
// schema validation handled by validator.v10 at the DTO edge).
type ValidationErr struct {
	Field string
	Msg   string
}

func (e *ValidationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func NewValidationErr(field, msg string) error {
	return &ValidationErr{Field: field, Msg: msg}
}

func IsValidationErr(err error) bool {
	var ve *ValidationErr
	return errors.As(err, &ve)
}
