package model

import "time"

// Category represents an expense category with its monthly spending limit.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MonthlyLimit float64   `json:"monthly_limit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
