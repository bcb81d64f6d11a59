package export

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/couchcryptid/thermo-data-service/internal/thermo"
)

// PropertyTable renders a molar property sweep for one species: heat
// capacity, enthalpy relative to the formation reference, entropy and
// absolute enthalpy at each requested temperature. Species without a model
// fail with thermo.ErrNoThermoModel; a temperature outside the validity
// bounds fails with the evaluator's OutOfRangeError.
func PropertyTable(sp *thermo.Species, temps []float64) (string, error) {
	if sp.Model == nil {
		return "", thermo.ErrNoThermoModel
	}

	tw := table.NewWriter()
	tw.SetTitle("%s (moles)", sp.Name)
	tw.AppendHeader(table.Row{"T", "Cp", "H-H298", "S", "H"})
	tw.AppendHeader(table.Row{"K", "J/mol-K", "kJ/mol", "J/mol-K", "kJ/mol"})

	for _, T := range temps {
		props, err := sp.Evaluate(T)
		if err != nil {
			return "", fmt.Errorf("tabulate %s at %g K: %w", sp.Name, T, err)
		}
		hKJ := props.HMolar / 1000
		hh298 := hKJ - sp.FormationEnthalpy/1000
		tw.AppendRow(table.Row{
			formatTemp(T),
			formatProp(props.CpMolar),
			formatProp(hh298),
			formatProp(props.SMolar),
			formatProp(hKJ),
		})
	}

	configs := make([]table.ColumnConfig, 5)
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight}
	}
	tw.SetColumnConfigs(configs)
	return tw.Render(), nil
}

func formatTemp(T float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", T), "0"), ".")
}

// formatProp fixes three decimals and normalizes negative zero.
func formatProp(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}
