package services

import (
	"time"

	"github.com/rashed77/hotel-ledger/internal/models"
	"github.com/rashed77/hotel-ledger/internal/store"
	"github.com/rashed77/hotel-ledger/internal/validation"
)

type PaymentInput struct {
	BookingID uint    `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Note      string  `json:"note"`
}

// PaymentTracker records payments and derives paid/remaining balances per
// booking.
//
// StrictBookingRefs controls the orphan-payment policy: the historical
// behavior accepts payments against any booking id without checking it
// exists, which is kept as the default. Enabling strict mode rejects unknown
// ids with ErrBookingNotFound.
type PaymentTracker struct {
	Ledger            *store.Ledger
	Bookings          *BookingService
	StrictBookingRefs bool
}

func NewPaymentTracker(l *store.Ledger, bookings *BookingService, strict bool) *PaymentTracker {
	return &PaymentTracker{Ledger: l, Bookings: bookings, StrictBookingRefs: strict}
}

func (t *PaymentTracker) RecordPayment(in PaymentInput) (*models.Payment, error) {
	v := validation.Violations{}
	validation.NonNegativeFloat("amount", in.Amount, v)
	validation.OneOf("method", in.Method, models.PaymentMethods, v)
	if err := errIfInvalid(v); err != nil {
		return nil, err
	}
	if t.StrictBookingRefs {
		if _, err := t.Bookings.GetBooking(in.BookingID); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	p := models.Payment{
		BookingID: in.BookingID,
		Amount:    in.Amount,
		Method:    in.Method,
		Date:      now,
		Note:      in.Note,
		CreatedAt: now,
	}
	if _, err := store.Insert(t.Ledger, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *PaymentTracker) ListPayments() ([]models.Payment, error) {
	return store.ListAll[models.Payment](t.Ledger)
}

// PaidToDate sums every payment recorded against the booking; zero when none
// exist (including for unknown booking ids).
func (t *PaymentTracker) PaidToDate(bookingID uint) (float64, error) {
	payments, err := t.ListPayments()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range payments {
		if p.BookingID == bookingID {
			sum += p.Amount
		}
	}
	return sum, nil
}

// RemainingBalance is the booking's total selling price minus paid-to-date.
// Overpayment yields a negative balance, reported as-is.
func (t *PaymentTracker) RemainingBalance(bookingID uint) (float64, error) {
	b, err := t.Bookings.GetBooking(bookingID)
	if err != nil {
		return 0, err
	}
	paid, err := t.PaidToDate(bookingID)
	if err != nil {
		return 0, err
	}
	return b.TotalSelling - paid, nil
}
