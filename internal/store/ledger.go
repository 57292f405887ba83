// Package store implements the append-only ledger backing the back office.
// Every entity kind supports exactly two operations: single-row insert and
// full-table retrieval in insertion order. There is deliberately no update or
// delete; corrections happen by appending new records (e.g. a fresh voucher).
package store

import (
	"gorm.io/gorm"

	"github.com/rashed77/hotel-ledger/internal/models"
)

// Kind enumerates the entity kinds held by the ledger. Values double as the
// underlying table names.
type Kind string

const (
	KindBooking  Kind = "bookings"
	KindEmployee Kind = "employees"
	KindPayment  Kind = "payments"
	KindVoucher  Kind = "vouchers"
)

// Entity restricts the generic ledger operations to the persisted kinds.
type Entity interface {
	models.Booking | models.Employee | models.Payment | models.Voucher
}

// Ledger wraps the database handle. Services receive a *Ledger explicitly;
// there is no package-level connection.
type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger { return &Ledger{db: db} }

// Insert persists rec as a single atomic row and returns the identity the
// database assigned to it. Identities are monotonically increasing per kind
// (autoincrement), which holds under concurrent inserts too.
func Insert[T Entity](l *Ledger, rec *T) (uint, error) {
	if err := l.db.Create(rec).Error; err != nil {
		return 0, &StorageError{Op: "insert", Kind: kindOf[T](), Err: err}
	}
	return any(*rec).(models.Record).RecordID(), nil
}

// ListAll returns every record of the kind in insertion order.
func ListAll[T Entity](l *Ledger) ([]T, error) {
	out := []T{}
	if err := l.db.Order("id").Find(&out).Error; err != nil {
		return nil, &StorageError{Op: "list", Kind: kindOf[T](), Err: err}
	}
	return out, nil
}

func kindOf[T Entity]() Kind {
	var zero T
	switch any(zero).(type) {
	case models.Booking:
		return KindBooking
	case models.Employee:
		return KindEmployee
	case models.Payment:
		return KindPayment
	default:
		return KindVoucher
	}
}
