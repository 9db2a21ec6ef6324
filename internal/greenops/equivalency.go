package greenops

import "fmt"

// Calculate normalizes input to kilograms and expresses it as the number of
// young and old trees counter says absorb it in a year.
//
// Normalization errors are returned with an empty output. Inputs below
// MinEquivalencyThresholdKg, or too small for counter to reach a single
// tree, yield an empty output carrying InputKg and no error.
func Calculate(input CarbonInput, counter TreeCounter) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	young, old := counter.YoungTree(kg/TonsToKg), counter.OldTree(kg/TonsToKg)
	if young <= 0 && old <= 0 {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}
	return Describe(kg, young, old), nil
}

// Describe builds the display output for already counted trees.
func Describe(inputKg float64, young, old int) EquivalencyOutput {
	youngFormatted := formatCount(young)
	oldFormatted := formatCount(old)

	return EquivalencyOutput{
		InputKg: inputKg,
		Results: []EquivalencyResult{
			{
				Type:           EquivalencyYoungTrees,
				Value:          young,
				FormattedValue: youngFormatted,
				Label:          "young trees",
			},
			{
				Type:           EquivalencyOldTrees,
				Value:          old,
				FormattedValue: oldFormatted,
				Label:          "old trees",
			},
		},
		DisplayText: fmt.Sprintf("Equivalent to the yearly absorption of ~%s young trees or ~%s old trees",
			youngFormatted, oldFormatted),
		CompactText: fmt.Sprintf("(≈ %s young, %s old trees)", youngFormatted, oldFormatted),
	}
}
