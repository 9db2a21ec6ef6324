// Package greenops turns avoided CO2 into relatable tree equivalencies and
// formats the figures for display.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyYoungTrees counts young trees absorbing the same CO2 in a year.
	EquivalencyYoungTrees EquivalencyType = iota

	// EquivalencyOldTrees counts mature trees absorbing the same CO2 in a year.
	EquivalencyOldTrees
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyYoungTrees:
		return "YoungTrees"
	case EquivalencyOldTrees:
		return "OldTrees"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is an avoided CO2 mass with its unit.
type CarbonInput struct {
	Value float64 `json:"value"`

	// Unit is one of g, kg, t, lb, optionally suffixed with CO2e.
	Unit string `json:"unit"`
}

// TreeCounter converts avoided tons of CO2 into tree counts.
// *environment.Calculator satisfies it.
type TreeCounter interface {
	YoungTree(avoidedEmissionsTons float64) int
	OldTree(avoidedEmissionsTons float64) int
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          int             `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input in kilograms of CO2.
	InputKg float64 `json:"input_kg"`

	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to the yearly absorption of ~444 young trees or ~148 old trees".
	DisplayText string `json:"display_text"`

	// CompactText is the short form, e.g. "(≈ 444 young, 148 old trees)".
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
