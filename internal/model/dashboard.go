package model

// DashboardSummary holds the overall portfolio totals and both net worth
// variants. Net worth "with expenses" subtracts the current calendar month's
// expense total from the current portfolio value.
type DashboardSummary struct {
	TotalInvested           float64 `json:"total_invested"`
	TotalCurrent            float64 `json:"total_current"`
	TotalGain               float64 `json:"total_gain"`
	TotalReturnPercentage   float64 `json:"total_return_percentage"`
	MonthlyExpense          float64 `json:"monthly_expense"`
	NetWorthWithExpenses    float64 `json:"net_worth_with_expenses"`
	NetWorthWithoutExpenses float64 `json:"net_worth_without_expenses"`
}

// FundBreakdownItem is a per-fund line in the dashboard breakdown.
type FundBreakdownItem struct {
	Name             string  `json:"name"`
	Invested         float64 `json:"invested"`
	Current          float64 `json:"current"`
	Gain             float64 `json:"gain"`
	ReturnPercentage float64 `json:"return_percentage"`
}

// CryptoBreakdownItem is a per-token line in the dashboard breakdown.
type CryptoBreakdownItem struct {
	Token            string  `json:"token"`
	Name             string  `json:"name"`
	Quantity         float64 `json:"quantity"`
	Invested         float64 `json:"invested"`
	Current          float64 `json:"current"`
	Gain             float64 `json:"gain"`
	ReturnPercentage float64 `json:"return_percentage"`
	CurrentPrice     float64 `json:"current_price"`
}

// FundClassStats aggregates the mutual fund asset class.
type FundClassStats struct {
	TotalInvested    float64             `json:"total_invested"`
	TotalCurrent     float64             `json:"total_current"`
	TotalGain        float64             `json:"total_gain"`
	ReturnPercentage float64             `json:"return_percentage"`
	Breakdown        []FundBreakdownItem `json:"breakdown"`
}

// CryptoClassStats aggregates the crypto asset class.
type CryptoClassStats struct {
	TotalInvested    float64               `json:"total_invested"`
	TotalCurrent     float64               `json:"total_current"`
	TotalGain        float64               `json:"total_gain"`
	ReturnPercentage float64               `json:"return_percentage"`
	Breakdown        []CryptoBreakdownItem `json:"breakdown"`
}

// AllocationSlice is one asset class's share of the current portfolio value.
type AllocationSlice struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// AssetAllocation is the portfolio split across asset classes.
type AssetAllocation struct {
	MutualFunds AllocationSlice `json:"mutual_funds"`
	Crypto      AllocationSlice `json:"crypto"`
}

// ProfileSummary is the slice of the user profile shown on the dashboard.
type ProfileSummary struct {
	Salary               float64 `json:"salary"`
	ExpenseLimit         float64 `json:"expense_limit"`
	InvestmentAllocation float64 `json:"investment_allocation"`
}

// DashboardStats is the full dashboard payload, recomputed on every request
// from current holding and expense state.
type DashboardStats struct {
	Summary         DashboardSummary `json:"summary"`
	MutualFunds     FundClassStats   `json:"mutual_funds"`
	Crypto          CryptoClassStats `json:"crypto"`
	AssetAllocation AssetAllocation  `json:"asset_allocation"`
	Profile         ProfileSummary   `json:"profile"`
}

// TrendPoint is one month in the growth trend. Investment value is the
// current snapshot for every month: no historical valuation ledger exists,
// so past months cannot be revalued. Known precision limitation.
type TrendPoint struct {
	Month       string  `json:"month"`
	Investments float64 `json:"investments"`
	Expenses    float64 `json:"expenses"`
}
