package environment

import "math"

// TiMonth converts an annual inflation index, in percent, into the
// equivalent monthly compounded rate.
func TiMonth(annualIPCPercent float64) float64 {
	return math.Pow(1+annualIPCPercent/100, 1.0/MonthsPerYear) - 1
}

// AnnualSavings returns the future value of twelve monthly savings deposits
// compounded at monthlyRate. A zero rate yields the limiting value of twelve
// plain deposits.
func (c *Calculator) AnnualSavings(monthlySavings, monthlyRate float64) float64 {
	if monthlyRate == 0 {
		return monthlySavings * MonthsPerYear
	}
	return monthlySavings * (math.Pow(1+monthlyRate, MonthsPerYear) - 1) / monthlyRate
}
