package services

import (
	"time"

	"github.com/rashed77/hotel-ledger/internal/models"
	"github.com/rashed77/hotel-ledger/internal/store"
	"github.com/rashed77/hotel-ledger/internal/validation"
)

// BookingInput collects the raw fields for a new booking. Prices are per room
// per night.
type BookingInput struct {
	Company             string  `json:"company"`
	ClientName          string  `json:"client_name"`
	Hotel               string  `json:"hotel"`
	RoomType            string  `json:"room_type"`
	Rooms               int     `json:"rooms"`
	Nights              int     `json:"nights"`
	PurchasePrice       float64 `json:"purchase_price"`
	SellingPrice        float64 `json:"selling_price"`
	EmployeeResponsible string  `json:"employee_responsible"`
}

// BookingService validates bookings and derives their financials before
// appending them to the ledger.
type BookingService struct {
	Ledger *store.Ledger
}

func NewBookingService(l *store.Ledger) *BookingService { return &BookingService{Ledger: l} }

// CreateBooking rejects out-of-range inputs, computes total cost, total
// selling and profit, and persists the booking. Selling below cost is allowed;
// profit simply comes out negative.
func (s *BookingService) CreateBooking(in BookingInput) (*models.Booking, error) {
	v := validation.Violations{}
	validation.MinInt("rooms", in.Rooms, 1, v)
	validation.MinInt("nights", in.Nights, 1, v)
	validation.NonNegativeFloat("purchase_price", in.PurchasePrice, v)
	validation.NonNegativeFloat("selling_price", in.SellingPrice, v)
	if err := errIfInvalid(v); err != nil {
		return nil, err
	}

	rn := float64(in.Rooms) * float64(in.Nights)
	b := models.Booking{
		Company:             in.Company,
		ClientName:          in.ClientName,
		Hotel:               in.Hotel,
		RoomType:            in.RoomType,
		Rooms:               in.Rooms,
		Nights:              in.Nights,
		PurchasePrice:       in.PurchasePrice,
		SellingPrice:        in.SellingPrice,
		TotalCost:           rn * in.PurchasePrice,
		TotalSelling:        rn * in.SellingPrice,
		EmployeeResponsible: in.EmployeeResponsible,
		CreatedAt:           time.Now().UTC(),
	}
	b.Profit = b.TotalSelling - b.TotalCost

	if _, err := store.Insert(s.Ledger, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BookingService) ListBookings() ([]models.Booking, error) {
	return store.ListAll[models.Booking](s.Ledger)
}

// GetBooking scans the ledger for the booking with the given id. The ledger
// contract is insert/list only, so lookup is a scan; tables here are small.
func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	bookings, err := s.ListBookings()
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}
