package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

func newSpeciesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "species",
		Short: "List and inspect database species",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newSpeciesListCommand(ctx))
	cmd.AddCommand(newSpeciesShowCommand(ctx))
	return cmd
}

func newSpeciesListCommand(ctx *commandContext) *cobra.Command {
	var categoryFlag string
	var prefixFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List species names by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}

			categories := thermoinp.Categories
			if categoryFlag != "" {
				categories = []thermoinp.Category{thermoinp.Category(categoryFlag)}
			}
			for _, category := range categories {
				names := cat.Names(category)
				if prefixFlag != "" {
					filtered := names[:0:0]
					for _, name := range names {
						if strings.HasPrefix(name, prefixFlag) {
							filtered = append(filtered, name)
						}
					}
					names = filtered
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", category, len(names))
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "restrict to one category (gas_products, condensed_products, reactants)")
	cmd.Flags().StringVar(&prefixFlag, "prefix", "", "restrict to names starting with a prefix")
	return cmd
}

func newSpeciesShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one species' record and derived constants",
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

			out := cmd.OutOrStdout()
			sp := entry.Species
			fmt.Fprintf(out, "Name:         %s\n", sp.Name)
			fmt.Fprintf(out, "Category:     %s\n", entry.Category)
			if sp.Comments != "" {
				fmt.Fprintf(out, "Comments:     %s\n", sp.Comments)
			}
			fmt.Fprintf(out, "Reference:    %s\n", sp.RefCode)
			fmt.Fprintf(out, "Formula:      %s\n", formatFormula(sp.Formula))
			fmt.Fprintf(out, "Phase:        %d\n", sp.Phase)
			fmt.Fprintf(out, "Molar mass:   %g kg/mol\n", sp.MolarMass)
			fmt.Fprintf(out, "Gas constant: %g J/kg-K\n", sp.GasConstant)
			if sp.HasFormation {
				fmt.Fprintf(out, "Formation enthalpy: %g J/mol\n", sp.FormationEnthalpy)
			} else {
				fmt.Fprintf(out, "Assigned enthalpy:  %g at %g K\n", sp.AssignedEnthalpy, sp.ReferenceTemperature)
			}
			if sp.Model != nil {
				tmin, tmax := sp.Model.Bounds()
				fmt.Fprintf(out, "Validity:     %g-%g K over %d intervals\n",
					tmin, tmax, len(sp.Model.Intervals()))
			}
			return nil
		},
	}
	return cmd
}

func formatFormula(formula []thermoinp.ElementCount) string {
	parts := make([]string, len(formula))
	for i, ec := range formula {
		parts[i] = fmt.Sprintf("%s:%g", ec.Symbol, ec.Atoms)
	}
	return strings.Join(parts, " ")
}
