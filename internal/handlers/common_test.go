package handlers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rashed77/hotel-ledger/internal/models"
	"github.com/rashed77/hotel-ledger/internal/services"
	"github.com/rashed77/hotel-ledger/internal/store"
)

type testEnv struct {
	Bookings  *BookingHandler
	Employees *EmployeeHandler
	Payments  *PaymentHandler
	Vouchers  *VoucherHandler
	Summary   *SummaryHandler
}

func setupHandlerTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	l := store.New(db)
	bookingSvc := services.NewBookingService(l)
	tracker := services.NewPaymentTracker(l, bookingSvc, false)
	return &testEnv{
		Bookings:  NewBookingHandler(bookingSvc),
		Employees: NewEmployeeHandler(services.NewEmployeeService(l)),
		Payments:  NewPaymentHandler(tracker),
		Vouchers:  NewVoucherHandler(services.NewVoucherService(l, bookingSvc, tracker)),
		Summary:   NewSummaryHandler(services.NewSummaryService(l)),
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}
