package models

import "time"

// VoucherTypeBooking tags vouchers generated from a booking's financial state.
const VoucherTypeBooking = "booking_voucher"

// Voucher is an archived point-in-time snapshot of a booking's financials.
// Amount freezes the booking's total selling price at generation time and
// Document holds the fully rendered printable artifact; neither is touched
// when the booking or its payments change later.
type Voucher struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"index;not null" json:"booking_id"`
	Type      string    `gorm:"not null" json:"type"`
	Reference string    `gorm:"uniqueIndex" json:"reference"`
	Amount    float64   `json:"amount"`
	Document  string    `json:"-"` // rendered HTML, served separately
	CreatedAt time.Time `json:"created_at"`
}

func (v Voucher) RecordID() uint { return v.ID }
