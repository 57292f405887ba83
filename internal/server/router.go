package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/rashed77/hotel-ledger/internal/config"
	"github.com/rashed77/hotel-ledger/internal/handlers"
	"github.com/rashed77/hotel-ledger/internal/httpx"
	"github.com/rashed77/hotel-ledger/internal/services"
	"github.com/rashed77/hotel-ledger/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	ledger := store.New(db)
	bookingSvc := services.NewBookingService(ledger)
	employeeSvc := services.NewEmployeeService(ledger)
	tracker := services.NewPaymentTracker(ledger, bookingSvc, cfg.StrictBookingRefs)
	voucherSvc := services.NewVoucherService(ledger, bookingSvc, tracker)
	summarySvc := services.NewSummaryService(ledger)

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – detailed errors stay out of the body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	bh := handlers.NewBookingHandler(bookingSvc)
	mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			bh.List(w, r)
		case http.MethodPost:
			bh.Create(w, r)
		default:
			methodNotAllowed(w, "GET,POST")
		}
	})

	eh := handlers.NewEmployeeHandler(employeeSvc)
	mux.HandleFunc("/employees", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			eh.List(w, r)
		case http.MethodPost:
			eh.Create(w, r)
		default:
			methodNotAllowed(w, "GET,POST")
		}
	})

	ph := handlers.NewPaymentHandler(tracker)
	mux.HandleFunc("/payments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			ph.List(w, r)
		case http.MethodPost:
			ph.Create(w, r)
		default:
			methodNotAllowed(w, "GET,POST")
		}
	})
	mux.HandleFunc("/payments/balance", requireGet(ph.Balance))

	vh := handlers.NewVoucherHandler(voucherSvc)
	mux.HandleFunc("/vouchers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			vh.List(w, r)
		case http.MethodPost:
			vh.Create(w, r)
		default:
			methodNotAllowed(w, "GET,POST")
		}
	})
	mux.HandleFunc("/vouchers/document", requireGet(vh.Document))

	sh := handlers.NewSummaryHandler(summarySvc)
	mux.HandleFunc("/summary", requireGet(sh.Portfolio))
	mux.HandleFunc("/summary/employees", requireGet(sh.Employees))
	mux.HandleFunc("/dashboard", requireGet(sh.Dashboard))

	// OpenAPI spec
	mux.HandleFunc("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		http.ServeFile(w, r, "openapi.yaml")
	})

	return withRecover(mux)
}

func requireGet(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, "GET")
			return
		}
		next(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
