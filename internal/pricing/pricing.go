// Package pricing holds the margin and profitability calculations shared by
// the product, inventory, and insights services. All functions are pure:
// they never error and never touch storage. Guarding against out-of-range
// inputs (negative prices, margin of 100) is the caller's responsibility.
package pricing

import "math"

// TotalCost returns the full unit cost: purchase price plus additional costs
// (shipping, taxes, commissions, other).
func TotalCost(purchasePrice, additionalCosts float64) float64 {
	return purchasePrice + additionalCosts
}

// RealMargin returns the margin percentage actually obtained at the given
// sale price. A non-positive sale price yields 0. The result is negative
// when the product sells at a loss.
func RealMargin(salePrice, totalCost float64) float64 {
	if salePrice <= 0 {
		return 0
	}
	return (salePrice - totalCost) / salePrice * 100
}

// IdealPrice returns the sale price that yields the desired margin
// percentage. desiredMargin must be below 100; at exactly 100 the result is
// +Inf.
func IdealPrice(totalCost, desiredMargin float64) float64 {
	return totalCost / (1 - desiredMargin/100)
}

// ExpectedProfit returns the projected profit for selling quantity units
func ExpectedProfit(salePrice, totalCost float64, quantity int) float64 {
	return (salePrice - totalCost) * float64(quantity)
}

// TotalRevenue returns the gross revenue for selling quantity units
func TotalRevenue(salePrice float64, quantity int) float64 {
	return salePrice * float64(quantity)
}

// ProfitPerUnit returns unit profit, negative when selling at a loss
func ProfitPerUnit(salePrice, totalCost float64) float64 {
	return salePrice - totalCost
}

// BreakEven returns the minimum number of units to sell to reach profitGoal.
// When the unit profit is zero or negative the goal is unreachable and the
// result is +Inf.
func BreakEven(profitGoal, salePrice, totalCost float64) float64 {
	profitPerUnit := salePrice - totalCost
	if profitPerUnit <= 0 {
		return math.Inf(1)
	}
	return math.Ceil(profitGoal / profitPerUnit)
}

// RequiredRevenue returns the revenue needed to reach profitGoal selling
// quantity units at the given unit cost.
func RequiredRevenue(profitGoal float64, quantity int, totalCost float64) float64 {
	return profitGoal + float64(quantity)*totalCost
}

// SimulationResult bundles every projection for one simulated scenario
type SimulationResult struct {
	RealMargin      float64 `json:"real_margin"`
	ProfitPerUnit   float64 `json:"profit_per_unit"`
	ExpectedProfit  float64 `json:"expected_profit"`
	TotalRevenue    float64 `json:"total_revenue"`
	BreakEven       float64 `json:"-"`
	BreakEvenUnits  *int    `json:"break_even_units"`
	GoalReachable   bool    `json:"goal_reachable"`
	RequiredRevenue float64 `json:"required_revenue"`
}

// Simulate computes the full projection set for one scenario. profitGoal is
// optional; when nil the break-even and required-revenue fields stay zero.
func Simulate(salePrice, totalCost float64, quantity int, profitGoal *float64) SimulationResult {
	result := SimulationResult{
		RealMargin:     RealMargin(salePrice, totalCost),
		ProfitPerUnit:  ProfitPerUnit(salePrice, totalCost),
		ExpectedProfit: ExpectedProfit(salePrice, totalCost, quantity),
		TotalRevenue:   TotalRevenue(salePrice, quantity),
		GoalReachable:  true,
	}

	if profitGoal != nil {
		result.BreakEven = BreakEven(*profitGoal, salePrice, totalCost)
		result.RequiredRevenue = RequiredRevenue(*profitGoal, quantity, totalCost)

		// +Inf does not survive JSON; expose it as a null unit count with
		// the reachable flag cleared.
		if math.IsInf(result.BreakEven, 1) {
			result.GoalReachable = false
		} else {
			units := int(result.BreakEven)
			result.BreakEvenUnits = &units
		}
	}

	return result
}
