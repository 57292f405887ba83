package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/rashed77/hotel-ledger/internal/models"
	"github.com/rashed77/hotel-ledger/internal/store"
	"github.com/rashed77/hotel-ledger/internal/view"
)

// VoucherService generates and archives printable booking vouchers. Each
// voucher freezes the booking's total selling price and paid-to-date at
// generation time; later payments never touch a voucher that already exists.
type VoucherService struct {
	Ledger   *store.Ledger
	Bookings *BookingService
	Payments *PaymentTracker
}

func NewVoucherService(l *store.Ledger, b *BookingService, p *PaymentTracker) *VoucherService {
	return &VoucherService{Ledger: l, Bookings: b, Payments: p}
}

// GenerateVoucher renders and archives a voucher for the booking. Returns
// ErrBookingNotFound for unknown ids; a booking may accumulate any number of
// vouchers.
func (s *VoucherService) GenerateVoucher(bookingID uint) (*models.Voucher, error) {
	b, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	paid, err := s.Payments.PaidToDate(bookingID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ref := uuid.NewString()
	doc, err := view.RenderVoucher(view.VoucherData{
		Reference:    ref,
		Company:      b.Company,
		ClientName:   b.ClientName,
		Hotel:        b.Hotel,
		RoomType:     b.RoomType,
		Rooms:        b.Rooms,
		Nights:       b.Nights,
		TotalSelling: b.TotalSelling,
		Paid:         paid,
		Remaining:    b.TotalSelling - paid,
		GeneratedAt:  now,
	})
	if err != nil {
		return nil, err
	}
	vo := models.Voucher{
		BookingID: b.ID,
		Type:      models.VoucherTypeBooking,
		Reference: ref,
		Amount:    b.TotalSelling,
		Document:  doc,
		CreatedAt: now,
	}
	if _, err := store.Insert(s.Ledger, &vo); err != nil {
		return nil, err
	}
	return &vo, nil
}

func (s *VoucherService) ListVouchers() ([]models.Voucher, error) {
	return store.ListAll[models.Voucher](s.Ledger)
}

// GetVoucher returns the archived voucher, including its rendered document.
func (s *VoucherService) GetVoucher(id uint) (*models.Voucher, error) {
	vouchers, err := s.ListVouchers()
	if err != nil {
		return nil, err
	}
	for i := range vouchers {
		if vouchers[i].ID == id {
			return &vouchers[i], nil
		}
	}
	return nil, ErrVoucherNotFound
}
