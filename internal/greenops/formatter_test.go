package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{123, "123"},
		{1234, "1,234"},
		{444, "444"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{"round to integer", 18248.56, 0, "18,249"},
		{"two decimals with separator", 431589.2370132, 2, "431,589.24"},
		{"small value", 0.5, 1, "0.5"},
		{"zero", 0, 2, "0.00"},
		{"negative", -1234.56, 2, "-1,234.56"},
		{"negative rounding to zero drops sign", -0.001, 2, "0.00"},
		{"rounds across thousand", 999.999, 2, "1,000.00"},
		{"four decimals", 4.4482751, 4, "4.4483"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	tests := []struct {
		n    float64
		want string
	}{
		{0, "0"},
		{1234, "1,234"},
		{999999, "999,999"},
		{1000000, "~1.0 million"},
		{5200000, "~5.2 million"},
		{1500000000, "~1.5 billion"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLarge(tt.n))
		})
	}
}

func BenchmarkFormatFloat(b *testing.B) {
	for b.Loop() {
		FormatFloat(431589.2370132, 2)
	}
}
