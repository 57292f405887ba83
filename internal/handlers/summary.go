package handlers

import (
	"net/http"

	"github.com/rashed77/hotel-ledger/internal/httpx"
	"github.com/rashed77/hotel-ledger/internal/services"
)

type SummaryHandler struct {
	Svc *services.SummaryService
}

func NewSummaryHandler(svc *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{Svc: svc}
}

// Portfolio: GET /summary
func (h *SummaryHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Svc.Portfolio()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sum)
}

// Employees: GET /summary/employees
func (h *SummaryHandler) Employees(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Svc.EmployeeLiabilities()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": groups, "total": len(groups)})
}

// Dashboard: GET /dashboard
func (h *SummaryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Dashboard()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
