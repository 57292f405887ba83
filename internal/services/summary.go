package services

import (
	"sort"

	"github.com/rashed77/hotel-ledger/internal/models"
	"github.com/rashed77/hotel-ledger/internal/store"
)

// PortfolioSummary is the whole-ledger financial rollup.
type PortfolioSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	TotalProfit  float64 `json:"total_profit"`
}

// EmployeeLiability aggregates the bookings assigned to one employee.
// Grouping is by exact employee_responsible string; no case or whitespace
// normalization is applied.
type EmployeeLiability struct {
	Employee      string  `json:"employee"`
	TotalSelling  float64 `json:"total_selling"`
	TotalProfit   float64 `json:"total_profit"`
	BookingsCount int     `json:"bookings_count"`
}

// DashboardStats is the quick-overview block: record counts plus the sum of
// all recorded payment amounts.
type DashboardStats struct {
	BookingCount  int     `json:"booking_count"`
	EmployeeCount int     `json:"employee_count"`
	PaymentCount  int     `json:"payment_count"`
	TotalPaid     float64 `json:"total_paid"`
}

// SummaryService computes rollups over the full ledger. It holds no state of
// its own; every call re-reads the tables.
type SummaryService struct {
	Ledger *store.Ledger
}

func NewSummaryService(l *store.Ledger) *SummaryService { return &SummaryService{Ledger: l} }

// Portfolio sums revenue, cost and profit across all bookings; all zeros on
// an empty ledger. TotalProfit always equals TotalRevenue - TotalCosts since
// each booking's profit is derived the same way.
func (s *SummaryService) Portfolio() (PortfolioSummary, error) {
	var out PortfolioSummary
	bookings, err := store.ListAll[models.Booking](s.Ledger)
	if err != nil {
		return out, err
	}
	for _, b := range bookings {
		out.TotalRevenue += b.TotalSelling
		out.TotalCosts += b.TotalCost
		out.TotalProfit += b.Profit
	}
	return out, nil
}

// EmployeeLiabilities groups bookings by responsible employee. Groups are
// sorted by employee key so the output is deterministic.
func (s *SummaryService) EmployeeLiabilities() ([]EmployeeLiability, error) {
	bookings, err := store.ListAll[models.Booking](s.Ledger)
	if err != nil {
		return nil, err
	}
	byEmployee := map[string]*EmployeeLiability{}
	for _, b := range bookings {
		g, ok := byEmployee[b.EmployeeResponsible]
		if !ok {
			g = &EmployeeLiability{Employee: b.EmployeeResponsible}
			byEmployee[b.EmployeeResponsible] = g
		}
		g.TotalSelling += b.TotalSelling
		g.TotalProfit += b.Profit
		g.BookingsCount++
	}
	out := make([]EmployeeLiability, 0, len(byEmployee))
	for _, g := range byEmployee {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Employee < out[j].Employee })
	return out, nil
}

// Dashboard returns the quick-overview counters.
func (s *SummaryService) Dashboard() (DashboardStats, error) {
	var out DashboardStats
	bookings, err := store.ListAll[models.Booking](s.Ledger)
	if err != nil {
		return out, err
	}
	employees, err := store.ListAll[models.Employee](s.Ledger)
	if err != nil {
		return out, err
	}
	payments, err := store.ListAll[models.Payment](s.Ledger)
	if err != nil {
		return out, err
	}
	out.BookingCount = len(bookings)
	out.EmployeeCount = len(employees)
	out.PaymentCount = len(payments)
	for _, p := range payments {
		out.TotalPaid += p.Amount
	}
	return out, nil
}
