package models

// Record is implemented by every persisted entity and exposes the
// database-assigned identity.
type Record interface {
	RecordID() uint
}

// All returns one zero value per entity kind, in migration order.
func All() []interface{} {
	return []interface{}{&Booking{}, &Employee{}, &Payment{}, &Voucher{}}
}
