package models

import "time"

// Employee of the agency. Advance tracks the running savings/loan balance
// held against the employee.
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	JobTitle  string    `json:"job_title"`
	Salary    float64   `json:"salary"`
	Advance   float64   `json:"advance"`
	CreatedAt time.Time `json:"created_at"`
}

func (e Employee) RecordID() uint { return e.ID }
