package services

import (
	"errors"
	"testing"

	"github.com/rashed77/hotel-ledger/internal/models"
)

func TestPaidToDateAndRemainingBalance(t *testing.T) {
	l := setupServiceTestLedger(t)
	bookings := NewBookingService(l)
	tracker := NewPaymentTracker(l, bookings, false)

	b := mustCreateBooking(t, bookings, BookingInput{
		ClientName: "Ahmed Salem", Hotel: "Grand Plaza", RoomType: "Double",
		Rooms: 2, Nights: 3, PurchasePrice: 50, SellingPrice: 80,
	})

	for _, amount := range []float64{100, 50} {
		if _, err := tracker.RecordPayment(PaymentInput{BookingID: b.ID, Amount: amount, Method: models.MethodCash}); err != nil {
			t.Fatalf("record %v: %v", amount, err)
		}
	}

	paid, err := tracker.PaidToDate(b.ID)
	if err != nil {
		t.Fatalf("paid: %v", err)
	}
	if paid != 150 {
		t.Fatalf("expected paid 150 got %v", paid)
	}
	remaining, err := tracker.RemainingBalance(b.ID)
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if remaining != 330 {
		t.Fatalf("expected remaining 330 got %v", remaining)
	}
}

func TestPaidToDateZeroWithoutPayments(t *testing.T) {
	l := setupServiceTestLedger(t)
	tracker := NewPaymentTracker(l, NewBookingService(l), false)
	paid, err := tracker.PaidToDate(42)
	if err != nil {
		t.Fatalf("paid: %v", err)
	}
	if paid != 0 {
		t.Fatalf("expected 0 got %v", paid)
	}
}

func TestOverpaymentYieldsNegativeBalance(t *testing.T) {
	l := setupServiceTestLedger(t)
	bookings := NewBookingService(l)
	tracker := NewPaymentTracker(l, bookings, false)
	b := mustCreateBooking(t, bookings, BookingInput{ClientName: "C", Rooms: 1, Nights: 1, SellingPrice: 100})

	if _, err := tracker.RecordPayment(PaymentInput{BookingID: b.ID, Amount: 130, Method: models.MethodBankTransfer}); err != nil {
		t.Fatalf("record: %v", err)
	}
	remaining, err := tracker.RemainingBalance(b.ID)
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if remaining != -30 {
		t.Fatalf("expected -30 got %v", remaining)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	l := setupServiceTestLedger(t)
	tracker := NewPaymentTracker(l, NewBookingService(l), false)

	_, err := tracker.RecordPayment(PaymentInput{BookingID: 1, Amount: -10, Method: "Barter"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	v := violationsOf(t, err)
	if v["amount"] == "" || v["method"] == "" {
		t.Fatalf("expected amount and method violations: %v", v)
	}
	payments, perr := tracker.ListPayments()
	if perr != nil {
		t.Fatalf("list: %v", perr)
	}
	if len(payments) != 0 {
		t.Fatal("rejected payment must not be persisted")
	}
}

func TestOrphanPaymentPolicy(t *testing.T) {
	l := setupServiceTestLedger(t)
	bookings := NewBookingService(l)

	// default: payments against unknown bookings are accepted
	lax := NewPaymentTracker(l, bookings, false)
	if _, err := lax.RecordPayment(PaymentInput{BookingID: 999, Amount: 25, Method: models.MethodCard}); err != nil {
		t.Fatalf("lax tracker rejected orphan payment: %v", err)
	}

	// strict mode requires the booking to exist
	strict := NewPaymentTracker(l, bookings, true)
	if _, err := strict.RecordPayment(PaymentInput{BookingID: 999, Amount: 25, Method: models.MethodCard}); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound got %v", err)
	}
	b := mustCreateBooking(t, bookings, BookingInput{ClientName: "C", Rooms: 1, Nights: 1, SellingPrice: 10})
	if _, err := strict.RecordPayment(PaymentInput{BookingID: b.ID, Amount: 5, Method: models.MethodCash}); err != nil {
		t.Fatalf("strict tracker rejected valid payment: %v", err)
	}
}
