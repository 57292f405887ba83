package services

import (
	"time"

	"github.com/rashed77/hotel-ledger/internal/models"
	"github.com/rashed77/hotel-ledger/internal/store"
	"github.com/rashed77/hotel-ledger/internal/validation"
)

type EmployeeInput struct {
	Name     string  `json:"name"`
	JobTitle string  `json:"job_title"`
	Salary   float64 `json:"salary"`
	Advance  float64 `json:"advance"`
}

type EmployeeService struct {
	Ledger *store.Ledger
}

func NewEmployeeService(l *store.Ledger) *EmployeeService { return &EmployeeService{Ledger: l} }

func (s *EmployeeService) AddEmployee(in EmployeeInput) (*models.Employee, error) {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.NonNegativeFloat("salary", in.Salary, v)
	validation.NonNegativeFloat("advance", in.Advance, v)
	if err := errIfInvalid(v); err != nil {
		return nil, err
	}
	e := models.Employee{
		Name:      in.Name,
		JobTitle:  in.JobTitle,
		Salary:    in.Salary,
		Advance:   in.Advance,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := store.Insert(s.Ledger, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EmployeeService) ListEmployees() ([]models.Employee, error) {
	return store.ListAll[models.Employee](s.Ledger)
}
