// Package report computes derived per-project figures that are never
// stored: budget variance and percent of budget spent.
package report

import "math"

// BudgetVariance returns planned minus actual spend. Positive means
// under budget.
func BudgetVariance(planned, actual float64) float64 {
	return planned - actual
}

// PercentSpent returns the share of the planned budget consumed,
// rounded to one decimal place. When the planned budget is zero the
// figure is undefined; the second return value is false and callers
// should render "N/A" rather than a number.
func PercentSpent(planned, actual float64) (float64, bool) {
	if planned == 0 {
		return 0, false
	}
	pct := actual / planned * 100
	return math.Round(pct*10) / 10, true
}
