package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rashed77/hotel-ledger/internal/httpx"
	"github.com/rashed77/hotel-ledger/internal/services"
)

type PaymentHandler struct {
	Svc *services.PaymentTracker
}

func NewPaymentHandler(svc *services.PaymentTracker) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// Create: POST /payments
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	p, err := h.Svc.RecordPayment(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

// List: GET /payments
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Svc.ListPayments()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": payments, "total": len(payments)})
}

// Balance: GET /payments/balance?booking_id=N
func (h *PaymentHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("booking_id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_booking_id", nil)
		return
	}
	paid, err := h.Svc.PaidToDate(uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	remaining, err := h.Svc.RemainingBalance(uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"booking_id": uint(id),
		"paid":       paid,
		"remaining":  remaining,
	})
}
