package services

import (
	"errors"

	"github.com/rashed77/hotel-ledger/internal/validation"
)

// ValidationError carries per-field violations for a rejected input. Nothing
// is persisted when one is returned.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string { return "validation_failed" }

func errIfInvalid(v validation.Violations) error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}

var (
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrVoucherNotFound = errors.New("voucher_not_found")
)
