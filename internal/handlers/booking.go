package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rashed77/hotel-ledger/internal/httpx"
	"github.com/rashed77/hotel-ledger/internal/services"
)

type BookingHandler struct {
	Svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// Create: POST /bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	b, err := h.Svc.CreateBooking(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// List: GET /bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Svc.ListBookings()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": bookings, "total": len(bookings)})
}
