package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rashed77/hotel-ledger/internal/models"
)

func createTestBooking(t *testing.T, env *testEnv) models.Booking {
	t.Helper()
	body := `{"client_name":"Ahmed","hotel":"H","room_type":"Double","rooms":2,"nights":3,"purchase_price":50,"selling_price":80}`
	w := httptest.NewRecorder()
	env.Bookings.Create(w, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking fixture: %d %s", w.Code, w.Body.String())
	}
	var b models.Booking
	decodeBody(t, w, &b)
	return b
}

func TestPaymentRecordAndBalance(t *testing.T) {
	env := setupHandlerTestEnv(t)
	b := createTestBooking(t, env)

	for _, amount := range []int{100, 50} {
		body := fmt.Sprintf(`{"booking_id":%d,"amount":%d,"method":"Cash","note":"installment"}`, b.ID, amount)
		w := httptest.NewRecorder()
		env.Payments.Create(w, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
		}
	}

	balW := httptest.NewRecorder()
	env.Payments.Balance(balW, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/payments/balance?booking_id=%d", b.ID), nil))
	if balW.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", balW.Code, balW.Body.String())
	}
	var bal struct {
		BookingID uint    `json:"booking_id"`
		Paid      float64 `json:"paid"`
		Remaining float64 `json:"remaining"`
	}
	decodeBody(t, balW, &bal)
	if bal.Paid != 150 || bal.Remaining != 330 {
		t.Fatalf("unexpected balance: %+v", bal)
	}
}

func TestPaymentBalanceUnknownBooking(t *testing.T) {
	env := setupHandlerTestEnv(t)
	w := httptest.NewRecorder()
	env.Payments.Balance(w, httptest.NewRequest(http.MethodGet, "/payments/balance?booking_id=77", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestPaymentBalanceBadQuery(t *testing.T) {
	env := setupHandlerTestEnv(t)
	w := httptest.NewRecorder()
	env.Payments.Balance(w, httptest.NewRequest(http.MethodGet, "/payments/balance?booking_id=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestPaymentRejectsUnknownMethod(t *testing.T) {
	env := setupHandlerTestEnv(t)
	b := createTestBooking(t, env)
	body := fmt.Sprintf(`{"booking_id":%d,"amount":10,"method":"Cheque"}`, b.ID)
	w := httptest.NewRecorder()
	env.Payments.Create(w, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}
