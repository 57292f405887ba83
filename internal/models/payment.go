package models

import "time"

// Payment methods accepted by the back office.
const (
	MethodCash         = "Cash"
	MethodBankTransfer = "Bank Transfer"
	MethodCard         = "Card"
	MethodOther        = "Other"
)

// PaymentMethods lists the accepted values in display order.
var PaymentMethods = []string{MethodCash, MethodBankTransfer, MethodCard, MethodOther}

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Payment recorded against a booking. BookingID is a plain reference with no
// DB-level foreign key; whether it must point at an existing booking is a
// service-level policy.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"index;not null" json:"booking_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Method    string    `gorm:"not null" json:"method"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Payment) RecordID() uint { return p.ID }
