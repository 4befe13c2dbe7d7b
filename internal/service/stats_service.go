package service

import (
	"time"

	"fintrack/internal/model"
	"fintrack/internal/repository"
	"fintrack/internal/valuation"
)

// StatsService computes expense statistics: month summaries with run-rate
// projections, the 7-day spending trend, per-day calendar totals, and
// category limit usage.
type StatsService struct {
	expenseRepo  *repository.ExpenseRepository
	categoryRepo *repository.CategoryRepository
	profileRepo  *repository.ProfileRepository

	now func() time.Time
}

// NewStatsService creates a new StatsService with the provided repository dependencies.
func NewStatsService(
	expenseRepo *repository.ExpenseRepository,
	categoryRepo *repository.CategoryRepository,
	profileRepo *repository.ProfileRepository,
) *StatsService {
	return &StatsService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// MonthStats summarises the current calendar month: total spend against the
// profile's expense allocation, a per-category breakdown, day counters, and
// a simple run-rate projection of the month's final spend.
func (s *StatsService) MonthStats() (model.MonthlyStats, error) {
	now := s.now()
	start, end := repository.MonthBounds(now)

	total, err := s.expenseRepo.SumByDateRange(start, end)
	if err != nil {
		return model.MonthlyStats{}, err
	}

	breakdown, err := s.expenseRepo.CategoryTotalsByDateRange(start, end)
	if err != nil {
		return model.MonthlyStats{}, err
	}

	profile, err := s.profileRepo.GetOrCreateProfile()
	if err != nil {
		return model.MonthlyStats{}, err
	}

	var salary float64
	if profile.MonthlySalary != nil {
		salary = *profile.MonthlySalary
	}
	limit := profile.Allocations.Expenses

	lastDay := start.AddDate(0, 1, -1).Day()
	daysUsed := now.Day()
	daysRemaining := lastDay - daysUsed

	avgDaily := total / float64(daysUsed)

	stats := model.MonthlyStats{
		TotalExpense:      valuation.Round2(total),
		MonthlyLimit:      limit,
		PercentageUsed:    valuation.AllocationPercentage(total, limit),
		CategoryBreakdown: breakdown,

		MonthlySalary:        salary,
		InvestmentAllocation: profile.Allocations.Crypto + profile.Allocations.MF,
		SalaryRemaining:      valuation.Round2(salary - total),

		DaysRemaining:  daysRemaining,
		DaysUsed:       daysUsed,
		LastDayOfMonth: lastDay,

		AverageDailyExpense:     valuation.Round2(avgDaily),
		ProjectedMonthlyExpense: valuation.Round2(avgDaily * float64(lastDay)),

		Month:     start.Format("January 2006"),
		StartDate: start,
		EndDate:   end,
	}

	return stats, nil
}

// WeeklyTrend returns the last seven days of expense totals, oldest first.
// Days with no expenses appear with a zero amount.
func (s *StatsService) WeeklyTrend() ([]model.DailyTotal, error) {
	now := s.now()
	windowStart, _ := repository.DayBounds(now.AddDate(0, 0, -6))
	_, windowEnd := repository.DayBounds(now)

	totals, err := s.expenseRepo.DailyTotalsByDateRange(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	trend := make([]model.DailyTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		trend = append(trend, model.DailyTotal{
			Date:   day,
			Amount: valuation.Round2(totals[day]),
		})
	}

	return trend, nil
}

// CalendarTotals returns the per-day expense totals for the month containing
// the given time, keyed by "2006-01-02". Days with no expenses are absent.
func (s *StatsService) CalendarTotals(month time.Time) (map[string]float64, error) {
	start, end := repository.MonthBounds(month)
	return s.expenseRepo.DailyTotalsByDateRange(start, end)
}

// CategoryLimits compares each category's spend for the current month
// against its configured monthly limit.
func (s *StatsService) CategoryLimits() ([]model.CategoryLimitStat, error) {
	start, end := repository.MonthBounds(s.now())

	spent, err := s.expenseRepo.CategoryTotalsByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAllCategories()
	if err != nil {
		return nil, err
	}

	stats := make([]model.CategoryLimitStat, 0, len(categories))
	for _, category := range categories {
		used := spent[category.Name]
		stats = append(stats, model.CategoryLimitStat{
			Category:       category.Name,
			MonthlyLimit:   category.MonthlyLimit,
			Spent:          valuation.Round2(used),
			Remaining:      valuation.Round2(category.MonthlyLimit - used),
			PercentageUsed: valuation.AllocationPercentage(used, category.MonthlyLimit),
		})
	}

	return stats, nil
}
