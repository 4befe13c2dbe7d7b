package model

import "time"

// Allocations splits the monthly salary across investment and spending buckets.
type Allocations struct {
	Crypto   float64 `json:"crypto"`
	MF       float64 `json:"mf"`
	Expenses float64 `json:"expenses"`
}

// UserProfile is the single-row user profile. The system is single-user:
// the profile is created on first read.
type UserProfile struct {
	ID            string      `json:"id"`
	Name          *string     `json:"name"`
	Designation   *string     `json:"designation"`
	MonthlySalary *float64    `json:"monthly_salary"`
	Allocations   Allocations `json:"allocations"`
	Currency      string      `json:"currency"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
