package service_test

import (
	"testing"
	"time"

	"fintrack/internal/api/request"
	"fintrack/internal/testutil"
)

// TestDashboardService_GetStats tests the portfolio overview math.
//
// WHY: The dashboard is pure arithmetic over stored valuations; the class
// totals, the allocation split, and both net worth variants must agree with
// the rows underneath.
func TestDashboardService_GetStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	// 100 units at NAV 300 = 30000 current against 20000 invested.
	testutil.NewFund().WithInvested(20000, 100).WithNAV(300).Build(t, db)
	// 0.5 BTC at 40000 = 20000 current against 10000 invested.
	testutil.NewHolding().WithQuantity(0.5).WithInvested(10000).WithPrice(40000).Build(t, db)
	// 8000 spent this month.
	testutil.NewExpense().WithAmount(8000).WithDate(time.Now().UTC()).Build(t, db)

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats() returned unexpected error: %v", err)
	}

	summary := stats.Summary
	if summary.TotalInvested != 30000 {
		t.Errorf("Expected total invested 30000, got %v", summary.TotalInvested)
	}
	if summary.TotalCurrent != 50000 {
		t.Errorf("Expected total current 50000, got %v", summary.TotalCurrent)
	}
	if summary.TotalGain != 20000 {
		t.Errorf("Expected total gain 20000, got %v", summary.TotalGain)
	}
	if summary.TotalReturnPercentage != 66.67 {
		t.Errorf("Expected return 66.67, got %v", summary.TotalReturnPercentage)
	}
	if summary.MonthlyExpense != 8000 {
		t.Errorf("Expected monthly expense 8000, got %v", summary.MonthlyExpense)
	}
	if summary.NetWorthWithExpenses != 42000 {
		t.Errorf("Expected net worth with expenses 42000, got %v", summary.NetWorthWithExpenses)
	}
	if summary.NetWorthWithoutExpenses != 50000 {
		t.Errorf("Expected net worth without expenses 50000, got %v", summary.NetWorthWithoutExpenses)
	}

	if stats.MutualFunds.TotalCurrent != 30000 {
		t.Errorf("Expected fund class current 30000, got %v", stats.MutualFunds.TotalCurrent)
	}
	if stats.Crypto.TotalCurrent != 20000 {
		t.Errorf("Expected crypto class current 20000, got %v", stats.Crypto.TotalCurrent)
	}
	if len(stats.MutualFunds.Breakdown) != 1 || len(stats.Crypto.Breakdown) != 1 {
		t.Errorf("Expected one breakdown row per class, got %d and %d",
			len(stats.MutualFunds.Breakdown), len(stats.Crypto.Breakdown))
	}

	if stats.AssetAllocation.MutualFunds.Percentage != 60 {
		t.Errorf("Expected 60%% mutual funds, got %v", stats.AssetAllocation.MutualFunds.Percentage)
	}
	if stats.AssetAllocation.Crypto.Percentage != 40 {
		t.Errorf("Expected 40%% crypto, got %v", stats.AssetAllocation.Crypto.Percentage)
	}
}

// TestDashboardService_GetStats_Empty tests the zero-holdings dashboard.
func TestDashboardService_GetStats_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats() returned unexpected error: %v", err)
	}

	if stats.Summary.TotalCurrent != 0 || stats.Summary.TotalReturnPercentage != 0 {
		t.Errorf("Expected zeroed summary, got %+v", stats.Summary)
	}
	if stats.AssetAllocation.Crypto.Percentage != 0 {
		t.Errorf("Expected 0%% allocation on an empty portfolio, got %v", stats.AssetAllocation.Crypto.Percentage)
	}
	if stats.MutualFunds.Breakdown == nil || stats.Crypto.Breakdown == nil {
		t.Error("Expected empty, non-nil breakdown slices")
	}
}

// TestDashboardService_GetStats_Profile tests the profile summary slice.
func TestDashboardService_GetStats_Profile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)
	profileSvc := testutil.NewTestProfileService(t, db)

	req := request.UpdateProfileRequest{MonthlySalary: ptr(100000.0)}
	req.Allocations.Crypto = 20000
	req.Allocations.MF = 30000
	req.Allocations.Expenses = 50000
	if _, err := profileSvc.UpdateProfile(req); err != nil {
		t.Fatalf("UpdateProfile() returned unexpected error: %v", err)
	}

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats() returned unexpected error: %v", err)
	}

	if stats.Profile.Salary != 100000 {
		t.Errorf("Expected salary 100000, got %v", stats.Profile.Salary)
	}
	if stats.Profile.ExpenseLimit != 50000 {
		t.Errorf("Expected expense limit 50000, got %v", stats.Profile.ExpenseLimit)
	}
	if stats.Profile.InvestmentAllocation != 50000 {
		t.Errorf("Expected investment allocation 50000, got %v", stats.Profile.InvestmentAllocation)
	}
}

// TestDashboardService_MonthlyTrend tests the trailing trend window.
//
// WHY: Each month's expenses are exact sums; the investment figure is the
// current snapshot for every point, and the window must run oldest first.
func TestDashboardService_MonthlyTrend(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	now := time.Now().UTC()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	testutil.NewFund().WithInvested(10000, 100).WithNAV(120).Build(t, db)
	testutil.NewExpense().WithAmount(5000).WithDate(now).Build(t, db)
	testutil.NewExpense().WithAmount(3000).WithDate(lastMonth).Build(t, db)

	points, err := svc.MonthlyTrend(3)
	if err != nil {
		t.Fatalf("MonthlyTrend() returned unexpected error: %v", err)
	}

	if len(points) != 3 {
		t.Fatalf("Expected 3 trend points, got %d", len(points))
	}

	last := points[2]
	if last.Month != now.Format("Jan 2006") {
		t.Errorf("Expected the last point to be the current month, got %q", last.Month)
	}
	if last.Expenses != 5000 {
		t.Errorf("Expected 5000 expenses for the current month, got %v", last.Expenses)
	}
	if points[1].Expenses != 3000 {
		t.Errorf("Expected 3000 expenses for last month, got %v", points[1].Expenses)
	}
	if points[0].Expenses != 0 {
		t.Errorf("Expected zero expenses two months back, got %v", points[0].Expenses)
	}

	for _, point := range points {
		if point.Investments != 12000 {
			t.Errorf("%s: expected snapshot investments 12000, got %v", point.Month, point.Investments)
		}
	}
}
