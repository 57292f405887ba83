package models

import "time"

// Booking is a reservation with its financials computed at creation time.
// TotalCost, TotalSelling and Profit are derived from Rooms/Nights/prices by
// the booking service and never mutated afterwards; the ledger exposes no
// update path for them.
type Booking struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Company             string    `json:"company"` // empty for individual clients
	ClientName          string    `json:"client_name"`
	Hotel               string    `json:"hotel"`
	RoomType            string    `json:"room_type"`
	Rooms               int       `gorm:"not null" json:"rooms"`
	Nights              int       `gorm:"not null" json:"nights"`
	PurchasePrice       float64   `json:"purchase_price"` // per room per night
	SellingPrice        float64   `json:"selling_price"`  // per room per night
	TotalCost           float64   `json:"total_cost"`
	TotalSelling        float64   `json:"total_selling"`
	Profit              float64   `json:"profit"` // may be negative
	EmployeeResponsible string    `json:"employee_responsible"`
	CreatedAt           time.Time `json:"created_at"`
}

func (b Booking) RecordID() uint { return b.ID }
