package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rashed77/hotel-ledger/internal/models"
	"github.com/rashed77/hotel-ledger/internal/store"
)

func setupServiceTestLedger(t *testing.T) *store.Ledger {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(db)
}

// mustCreateBooking inserts a booking through the engine and fails the test on error.
func mustCreateBooking(t *testing.T, svc *BookingService, in BookingInput) *models.Booking {
	t.Helper()
	b, err := svc.CreateBooking(in)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

func violationsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError got %T (%v)", err, err)
	}
	return ve.Violations
}
