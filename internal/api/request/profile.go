package request

// UpdateProfileRequest is the payload for editing the user profile.
// Allocations must sum to the monthly salary when a salary is set.
type UpdateProfileRequest struct {
	Name          *string  `json:"name"`
	Designation   *string  `json:"designation"`
	MonthlySalary *float64 `json:"monthly_salary"`
	Allocations   struct {
		Crypto   float64 `json:"crypto"`
		MF       float64 `json:"mf"`
		Expenses float64 `json:"expenses"`
	} `json:"allocations"`
	Currency string `json:"currency"`
}

// LoginRequest carries the PIN for session authentication.
type LoginRequest struct {
	PIN string `json:"pin"`
}
