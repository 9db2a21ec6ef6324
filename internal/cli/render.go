package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/evsavings/internal/greenops"
	"github.com/rshade/evsavings/internal/hydrogen"
)

// Report rendering constants.
const (
	reportBoxWidth   = 64
	reportLabelWidth = 32

	// consumptionDecimals keeps per-km consumption readable regardless of the
	// configured precision.
	consumptionDecimals = 4
)

// boxBorderColor returns the lipgloss.Color used for report box borders.
func boxBorderColor() lipgloss.Color { return lipgloss.Color("240") }

// boxTitleColor returns the Lip Gloss color used for report box titles.
func boxTitleColor() lipgloss.Color { return lipgloss.Color("39") }

// savingsColor returns the color of the equivalency line.
func savingsColor() lipgloss.Color { return lipgloss.Color("42") }

// reportRow is one labelled figure of a report section.
type reportRow struct {
	label string
	value string
}

// reportSection groups rows under a heading.
type reportSection struct {
	title string
	rows  []reportRow
}

// comparisonSections lays out a comparison report.
func comparisonSections(r CompareReport, precision int) []reportSection {
	c := r.Comparison
	num := func(v float64) string { return greenops.FormatFloat(v, precision) }
	fine := func(v float64) string { return greenops.FormatFloat(v, max(precision, consumptionDecimals)) }

	return []reportSection{
		{
			title: "INPUTS",
			rows: []reportRow{
				{"Fuel", c.Scenario.FuelType},
				{"Nominal energy", num(c.Scenario.NominalEnergy) + " kWh"},
				{"Autonomy", num(c.Scenario.Autonomy) + " km"},
				{"Annual distance", num(c.AnnualDistance) + " km"},
				{"Fuel price", num(c.FuelPrice) + " /L"},
				{"Energy price", num(c.EnergyPrice) + " /kWh"},
				{"IPC", num(c.Scenario.IPC) + " %"},
				{"Monthly rate", fine(c.MonthlyRate)},
			},
		},
		{
			title: "PER KILOMETER",
			rows: []reportRow{
				{"Electrical consumption", fine(c.ElectricalConsumption) + " kWh/km"},
				{"Combustion equivalent", fine(c.CombustionConsumption) + " kWh/km"},
				{"Fuel consumption", fine(c.FuelConsumption) + " L/km"},
				{"Fuel efficiency", num(c.FuelEfficiency) + " km/L"},
				{"Electrical cost", num(c.ElectricalCostKm) + " /km"},
				{"Fuel cost", num(c.FuelCostKm) + " /km"},
				{"Energy", num(c.EnergyKm) + " J/km"},
				{"Emissions", num(c.EmisionKm) + " gCO2/km"},
			},
		},
		{
			title: "SAVINGS",
			rows: []reportRow{
				{"Saved energy", num(c.SavedEnergy) + " kWh/yr"},
				{"Avoided emissions", fine(c.AvoidedEmissions) + " tCO2/yr"},
				{"Monthly savings", num(c.MonthlySavings)},
				{"Annual savings", num(c.AnnualSavings)},
				{"Young trees", greenops.FormatNumber(int64(c.YoungTrees))},
				{"Old trees", greenops.FormatNumber(int64(c.OldTrees))},
			},
		},
	}
}

// hydrogenSections lays out a hydrogen production report.
func hydrogenSections(p hydrogen.Production, precision int) []reportSection {
	num := func(v float64) string { return greenops.FormatFloat(v, max(precision, consumptionDecimals)) }

	return []reportSection{{
		title: "HYDROGEN PRODUCTION",
		rows: []reportRow{
			{"Nominal energy", num(p.NominalEnergy) + " kWh"},
			{"Cylinder energy", num(p.CylinderEnergy) + " kWh"},
			{"Low pressure energy", num(p.LowPressureEnergy) + " kWh"},
			{"Electrolysis energy", num(p.EnergyConsumed) + " kWh"},
			{"Hydrogen mass", num(p.HydrogenMass) + " kg"},
			{"Water required", num(p.WaterLiters) + " L"},
		},
	}}
}

// RenderComparison writes a comparison report, styled when w is a terminal.
func RenderComparison(w io.Writer, r CompareReport, precision int) error {
	title := "EV vs " + strings.ToUpper(r.Comparison.Scenario.FuelType)
	footer := ""
	if !r.Equivalency.IsEmpty {
		footer = r.Equivalency.DisplayText
	}
	return renderReport(w, title, comparisonSections(r, precision), footer)
}

// RenderHydrogen writes a hydrogen production report.
func RenderHydrogen(w io.Writer, p hydrogen.Production, precision int) error {
	return renderReport(w, "HYDROGEN", hydrogenSections(p, precision), "")
}

func renderReport(w io.Writer, title string, sections []reportSection, footer string) error {
	if isWriterTerminal(w) {
		return renderStyledReport(w, title, sections, footer)
	}
	return renderPlainReport(w, title, sections, footer)
}

// renderStyledReport writes a bordered Lip Gloss box.
func renderStyledReport(w io.Writer, title string, sections []reportSection, footer string) error {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(boxTitleColor())
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	labelStyle := lipgloss.NewStyle().Width(reportLabelWidth)
	footerStyle := lipgloss.NewStyle().Italic(true).Foreground(savingsColor())
	borderStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(boxBorderColor()).
		Padding(0, 1).
		Width(reportBoxWidth)

	var content strings.Builder
	content.WriteString(titleStyle.Render(title))
	content.WriteString("\n")

	for _, s := range sections {
		content.WriteString("\n")
		content.WriteString(sectionStyle.Render(s.title))
		content.WriteString("\n")
		for _, row := range s.rows {
			content.WriteString(labelStyle.Render(row.label))
			content.WriteString(row.value)
			content.WriteString("\n")
		}
	}

	if footer != "" {
		content.WriteString("\n")
		content.WriteString(footerStyle.Render(footer))
	}

	_, err := fmt.Fprintln(w, borderStyle.Render(strings.TrimRight(content.String(), "\n")))
	return err
}

// renderPlainReport writes the report as aligned plain text.
func renderPlainReport(w io.Writer, title string, sections []reportSection, footer string) error {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(title)))
	b.WriteString("\n")

	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(s.title)
		b.WriteString("\n")
		for _, row := range s.rows {
			fmt.Fprintf(&b, "  %-*s %s\n", reportLabelWidth, row.label+":", row.value)
		}
	}

	if footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
