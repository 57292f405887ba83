package handlers

import (
	"errors"
	"net/http"

	"github.com/rashed77/hotel-ledger/internal/httpx"
	"github.com/rashed77/hotel-ledger/internal/services"
	"github.com/rashed77/hotel-ledger/internal/store"
)

// writeServiceError maps service/store errors to HTTP responses. Validation
// failures carry the field violations as details.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", ve.Violations)
		return
	}
	if errors.Is(err, services.ErrBookingNotFound) || errors.Is(err, services.ErrVoucherNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var se *store.StorageError
	if errors.As(err, &se) {
		httpx.JSONError(w, http.StatusInternalServerError, "storage_error", nil)
		return
	}
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}
