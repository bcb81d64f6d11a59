package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/thermo-data-service/internal/catalog"
	"github.com/couchcryptid/thermo-data-service/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export NAME...",
		Short: "Serialize species as XML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			entries := make([]*catalog.Entry, 0, len(args))
			for _, name := range args {
				entry, err := cat.Species(name)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
			}

			if outFlag == "" {
				return export.WriteXML(cmd.OutOrStdout(), entries)
			}
			f, err := os.Create(outFlag)
			if err != nil {
				return fmt.Errorf("create %s: %w", outFlag, err)
			}
			defer f.Close()
			return export.WriteXML(f, entries)
		},
	}

	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
