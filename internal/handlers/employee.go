package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rashed77/hotel-ledger/internal/httpx"
	"github.com/rashed77/hotel-ledger/internal/services"
)

type EmployeeHandler struct {
	Svc *services.EmployeeService
}

func NewEmployeeHandler(svc *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Svc: svc}
}

// Create: POST /employees
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	e, err := h.Svc.AddEmployee(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, e)
}

// List: GET /employees
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Svc.ListEmployees()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": employees, "total": len(employees)})
}
