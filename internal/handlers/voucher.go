package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rashed77/hotel-ledger/internal/httpx"
	"github.com/rashed77/hotel-ledger/internal/services"
)

type VoucherHandler struct {
	Svc *services.VoucherService
}

func NewVoucherHandler(svc *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{Svc: svc}
}

// Create: POST /vouchers
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingID uint `json:"booking_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	vo, err := h.Svc.GenerateVoucher(req.BookingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, vo)
}

// List: GET /vouchers
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.Svc.ListVouchers()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": vouchers, "total": len(vouchers)})
}

// Document: GET /vouchers/document?id=N – serves the archived HTML artifact.
func (h *VoucherHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	vo, err := h.Svc.GetVoucher(uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, werr := w.Write([]byte(vo.Document)); werr != nil {
		_ = werr
	}
}
