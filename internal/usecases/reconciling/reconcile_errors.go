package reconciling

import (
	"errors"
	"fmt"
)

var (
	ErrReferrerNotFound  = errors.New("referrer not found")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrPersistence       = errors.New("error persisting reconciled stats")
	ErrFetchReferrers    = errors.New("error fetching referrers from database")
)

// ReconcileError carrega o código de API junto do erro base
type ReconcileError struct {
	Err        error
	Code       string
	ReferrerID string
	Details    string
}

func (e *ReconcileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}

func NewReconcileError(err error, code string, referrerID string, details string) *ReconcileError {
	return &ReconcileError{
		Err:        err,
		Code:       code,
		ReferrerID: referrerID,
		Details:    details,
	}
}

// IsNotFound indica que o influenciador não existe
func IsNotFound(err error) bool {
	return errors.Is(err, ErrReferrerNotFound)
}
