package referrer

import (
	"errors"
	"fmt"
)

var (
	ErrNameRequired      = errors.New("referrer name is required")
	ErrReferrerNotFound  = errors.New("referrer not found")
	ErrGenerateID        = errors.New("error generating referrer ID")
	ErrDatabaseOperation = errors.New("database operation error")
)

type ReferrerError struct {
	Err        error
	Code       string
	ReferrerID string
	Details    string
}

func (e *ReferrerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReferrerError) Unwrap() error {
	return e.Err
}

func NewReferrerError(err error, code string, referrerID string, details string) *ReferrerError {
	return &ReferrerError{
		Err:        err,
		Code:       code,
		ReferrerID: referrerID,
		Details:    details,
	}
}
