package model

import "time"

// MonthlyStats summarises one calendar month of spending against the profile
// limits, with simple run-rate projections.
type MonthlyStats struct {
	TotalExpense      float64            `json:"totalExpense"`
	MonthlyLimit      float64            `json:"monthlyLimit"`
	PercentageUsed    float64            `json:"percentageUsed"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`

	MonthlySalary        float64 `json:"monthlySalary"`
	InvestmentAllocation float64 `json:"investmentAllocation"`
	SalaryRemaining      float64 `json:"salaryRemaining"`

	DaysRemaining  int `json:"daysRemaining"`
	DaysUsed       int `json:"daysUsed"`
	LastDayOfMonth int `json:"lastDayOfMonth"`

	AverageDailyExpense     float64 `json:"averageDailyExpense"`
	ProjectedMonthlyExpense float64 `json:"projectedMonthlyExpense"`

	Month     string    `json:"month"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// DailyTotal is one day's expense total in the 7-day spending trend.
type DailyTotal struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// CategoryLimitStat compares one category's spend for the month against its
// configured monthly limit.
type CategoryLimitStat struct {
	Category       string  `json:"category"`
	MonthlyLimit   float64 `json:"monthly_limit"`
	Spent          float64 `json:"spent"`
	Remaining      float64 `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
}
