package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/rashed77/hotel-ledger/internal/models"
)

// seed inserts a small demo dataset when the ledger is empty. Derived booking
// fields are precomputed here the same way the booking service computes them.
func seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Booking{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	now := time.Now().UTC()
	bookings := []models.Booking{
		{Company: "Al Noor Travel", ClientName: "Ahmed Salem", Hotel: "Grand Plaza", RoomType: "Double",
			Rooms: 2, Nights: 3, PurchasePrice: 50, SellingPrice: 80,
			TotalCost: 300, TotalSelling: 480, Profit: 180,
			EmployeeResponsible: "Alice", CreatedAt: now},
		{ClientName: "Mona Khaled", Hotel: "Sea View", RoomType: "Single",
			Rooms: 1, Nights: 2, PurchasePrice: 40, SellingPrice: 65,
			TotalCost: 80, TotalSelling: 130, Profit: 50,
			EmployeeResponsible: "Alice", CreatedAt: now},
	}
	for i := range bookings {
		db.Create(&bookings[i])
	}
	db.Create(&models.Employee{Name: "Alice", JobTitle: "Booking agent", Salary: 900, Advance: 100, CreatedAt: now})
	db.Create(&models.Payment{BookingID: bookings[0].ID, Amount: 100, Method: models.MethodCash, Date: now, Note: "deposit", CreatedAt: now})
}
