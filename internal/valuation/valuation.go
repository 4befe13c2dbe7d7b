// Package valuation holds the pure derivation math that turns (quantity,
// cost basis, current quote) into investor-facing numbers. Nothing here is
// ever stored: callers invoke these functions wherever a holding or a
// portfolio total is serialized, so the figures are always consistent with
// the latest quote.
package valuation

import "math"

// Metrics are the derived figures for a single holding.
type Metrics struct {
	CurrentValue     float64
	Gain             float64
	ReturnPercentage float64
	AvgCost          float64
}

// Compute derives the valuation metrics for one holding. Zero quantity
// yields a zero average cost and zero invested amount yields a zero return
// percentage; neither is a division error. ReturnPercentage is rounded to
// two decimal places for display; CurrentValue and Gain are left unrounded
// so aggregation does not compound rounding error.
func Compute(quantity, investedAmount, currentQuote float64) Metrics {
	currentValue := quantity * currentQuote
	gain := currentValue - investedAmount

	var avgCost float64
	if quantity > 0 {
		avgCost = investedAmount / quantity
	}

	return Metrics{
		CurrentValue:     currentValue,
		Gain:             gain,
		ReturnPercentage: ReturnPercentage(gain, investedAmount),
		AvgCost:          avgCost,
	}
}

// ReturnPercentage computes gain/invested×100 rounded to two decimal places,
// or 0 when nothing was invested. The result is always finite.
func ReturnPercentage(gain, investedAmount float64) float64 {
	if investedAmount <= 0 {
		return 0
	}
	return Round2(gain / investedAmount * 100)
}

// AllocationPercentage computes one asset class's share of the overall
// current value, rounded to two decimal places, or 0 when the overall value
// is zero.
func AllocationPercentage(classCurrent, overallCurrent float64) float64 {
	if overallCurrent <= 0 {
		return 0
	}
	return Round2(classCurrent / overallCurrent * 100)
}

// NetWorth returns both net worth variants: with the current month's
// expenses subtracted from the portfolio value, and without.
func NetWorth(totalCurrent, monthlyExpense float64) (withExpenses, withoutExpenses float64) {
	return totalCurrent - monthlyExpense, totalCurrent
}

// Round2 rounds to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
