package environment

import "math"

// YoungTree returns how many young trees absorb avoidedEmissionsTons of CO2
// in a year. The count is floored.
func (c *Calculator) YoungTree(avoidedEmissionsTons float64) int {
	return treeCount(avoidedEmissionsTons, c.ds.YoungTree)
}

// OldTree returns how many mature trees absorb avoidedEmissionsTons of CO2
// in a year. The count is floored.
func (c *Calculator) OldTree(avoidedEmissionsTons float64) int {
	return treeCount(avoidedEmissionsTons, c.ds.OldTree)
}

// treeCount floors tons*1000/absorptionKg. Results outside the int range,
// including +Inf and -Inf, saturate at math.MaxInt and math.MinInt; NaN
// counts as zero trees.
func treeCount(tons, absorptionKg float64) int {
	n := math.Floor(tons * KgPerTon / absorptionKg)
	switch {
	case math.IsNaN(n):
		return 0
	case n >= math.MaxInt:
		return math.MaxInt
	case n <= math.MinInt:
		return math.MinInt
	default:
		return int(n)
	}
}
