package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/thermo-data-service/internal/export"
)

func newTableCommand(ctx *commandContext) *cobra.Command {
	var tempsFlag string

	cmd := &cobra.Command{
		Use:   "table NAME",
		Short: "Tabulate molar Cp, H and S over a temperature sweep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			entry, err := cat.Species(args[0])
			if err != nil {
				return err
			}

			temps := ctx.temperatures()
			if tempsFlag != "" {
				if temps, err = parseTempList(tempsFlag); err != nil {
					return err
				}
			}

			rendered, err := export.PropertyTable(entry.Species, temps)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&tempsFlag, "temps", "", "comma-separated temperatures in K (default from config)")
	return cmd
}

func parseTempList(raw string) ([]float64, error) {
	fields := strings.Split(raw, ",")
	temps := make([]float64, 0, len(fields))
	for _, f := range fields {
		T, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature %q", f)
		}
		temps = append(temps, T)
	}
	return temps, nil
}
