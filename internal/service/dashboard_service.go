package service

import (
	"time"

	"fintrack/internal/model"
	"fintrack/internal/repository"
	"fintrack/internal/valuation"
)

// DashboardService assembles the portfolio overview: class aggregates,
// asset allocation, net worth, and the monthly growth trend. Everything is
// recomputed from current holding and expense state on each request.
type DashboardService struct {
	fundService   *FundService
	cryptoService *CryptoService
	expenseRepo   *repository.ExpenseRepository
	profileRepo   *repository.ProfileRepository
}

// NewDashboardService creates a new DashboardService with the provided dependencies.
func NewDashboardService(
	fundService *FundService,
	cryptoService *CryptoService,
	expenseRepo *repository.ExpenseRepository,
	profileRepo *repository.ProfileRepository,
) *DashboardService {
	return &DashboardService{
		fundService:   fundService,
		cryptoService: cryptoService,
		expenseRepo:   expenseRepo,
		profileRepo:   profileRepo,
	}
}

// GetStats computes the full dashboard payload. The holding listings it
// consumes refresh quotes opportunistically, so the figures reflect prices
// no older than the cache TTL when the sources are reachable.
func (s *DashboardService) GetStats() (model.DashboardStats, error) {
	funds, err := s.fundService.GetAllFunds()
	if err != nil {
		return model.DashboardStats{}, err
	}
	holdings, err := s.cryptoService.GetAllHoldings()
	if err != nil {
		return model.DashboardStats{}, err
	}

	fundStats := aggregateFunds(funds)
	cryptoStats := aggregateCrypto(holdings)

	totalInvested := fundStats.TotalInvested + cryptoStats.TotalInvested
	totalCurrent := fundStats.TotalCurrent + cryptoStats.TotalCurrent
	totalGain := totalCurrent - totalInvested

	monthStart, monthEnd := repository.MonthBounds(time.Now().UTC())
	monthlyExpense, err := s.expenseRepo.SumByDateRange(monthStart, monthEnd)
	if err != nil {
		return model.DashboardStats{}, err
	}

	netWith, netWithout := valuation.NetWorth(totalCurrent, monthlyExpense)

	profile, err := s.profileRepo.GetOrCreateProfile()
	if err != nil {
		return model.DashboardStats{}, err
	}

	var salary float64
	if profile.MonthlySalary != nil {
		salary = *profile.MonthlySalary
	}

	return model.DashboardStats{
		Summary: model.DashboardSummary{
			TotalInvested:           valuation.Round2(totalInvested),
			TotalCurrent:            valuation.Round2(totalCurrent),
			TotalGain:               valuation.Round2(totalGain),
			TotalReturnPercentage:   valuation.ReturnPercentage(totalGain, totalInvested),
			MonthlyExpense:          valuation.Round2(monthlyExpense),
			NetWorthWithExpenses:    valuation.Round2(netWith),
			NetWorthWithoutExpenses: valuation.Round2(netWithout),
		},
		MutualFunds: fundStats,
		Crypto:      cryptoStats,
		AssetAllocation: model.AssetAllocation{
			MutualFunds: model.AllocationSlice{
				Amount:     valuation.Round2(fundStats.TotalCurrent),
				Percentage: valuation.AllocationPercentage(fundStats.TotalCurrent, totalCurrent),
			},
			Crypto: model.AllocationSlice{
				Amount:     valuation.Round2(cryptoStats.TotalCurrent),
				Percentage: valuation.AllocationPercentage(cryptoStats.TotalCurrent, totalCurrent),
			},
		},
		Profile: model.ProfileSummary{
			Salary:               salary,
			ExpenseLimit:         profile.Allocations.Expenses,
			InvestmentAllocation: profile.Allocations.Crypto + profile.Allocations.MF,
		},
	}, nil
}

// MonthlyTrend returns one point per month for the trailing window, newest
// last. Expense totals are exact per month; the investment value is the
// current portfolio snapshot for every month, since no historical valuation
// ledger exists to revalue past months.
func (s *DashboardService) MonthlyTrend(months int) ([]model.TrendPoint, error) {
	funds, err := s.fundService.GetAllFunds()
	if err != nil {
		return nil, err
	}
	holdings, err := s.cryptoService.GetAllHoldings()
	if err != nil {
		return nil, err
	}

	var totalCurrent float64
	for _, fund := range funds {
		totalCurrent += fund.CurrentValue
	}
	for _, holding := range holdings {
		totalCurrent += holding.CurrentValue
	}
	totalCurrent = valuation.Round2(totalCurrent)

	// Anchor at the first of the month so stepping back from a day 29-31
	// never normalizes into the wrong month.
	now := time.Now().UTC()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		start, end := repository.MonthBounds(anchor.AddDate(0, -i, 0))

		expenses, err := s.expenseRepo.SumByDateRange(start, end)
		if err != nil {
			return nil, err
		}

		points = append(points, model.TrendPoint{
			Month:       start.Format("Jan 2006"),
			Investments: totalCurrent,
			Expenses:    valuation.Round2(expenses),
		})
	}

	return points, nil
}

func aggregateFunds(funds []model.MutualFundResponse) model.FundClassStats {
	stats := model.FundClassStats{Breakdown: []model.FundBreakdownItem{}}
	for _, fund := range funds {
		stats.TotalInvested += fund.InvestedAmount
		stats.TotalCurrent += fund.CurrentValue
		stats.Breakdown = append(stats.Breakdown, model.FundBreakdownItem{
			Name:             fund.FundName,
			Invested:         valuation.Round2(fund.InvestedAmount),
			Current:          fund.CurrentValue,
			Gain:             fund.Gain,
			ReturnPercentage: fund.ReturnPercentage,
		})
	}
	stats.TotalInvested = valuation.Round2(stats.TotalInvested)
	stats.TotalCurrent = valuation.Round2(stats.TotalCurrent)
	stats.TotalGain = valuation.Round2(stats.TotalCurrent - stats.TotalInvested)
	stats.ReturnPercentage = valuation.ReturnPercentage(stats.TotalGain, stats.TotalInvested)
	return stats
}

func aggregateCrypto(holdings []model.CryptoHoldingResponse) model.CryptoClassStats {
	stats := model.CryptoClassStats{Breakdown: []model.CryptoBreakdownItem{}}
	for _, holding := range holdings {
		stats.TotalInvested += holding.InvestedAmount
		stats.TotalCurrent += holding.CurrentValue
		stats.Breakdown = append(stats.Breakdown, model.CryptoBreakdownItem{
			Token:            holding.TokenSymbol,
			Name:             holding.TokenName,
			Quantity:         holding.Quantity,
			Invested:         valuation.Round2(holding.InvestedAmount),
			Current:          holding.CurrentValue,
			Gain:             holding.Gain,
			ReturnPercentage: holding.ReturnPercentage,
			CurrentPrice:     holding.CurrentPrice,
		})
	}
	stats.TotalInvested = valuation.Round2(stats.TotalInvested)
	stats.TotalCurrent = valuation.Round2(stats.TotalCurrent)
	stats.TotalGain = valuation.Round2(stats.TotalCurrent - stats.TotalInvested)
	stats.ReturnPercentage = valuation.ReturnPercentage(stats.TotalGain, stats.TotalInvested)
	return stats
}
