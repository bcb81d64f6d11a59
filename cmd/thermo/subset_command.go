package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSubsetCommand(ctx *commandContext) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "subset NAME...",
		Short: "Write a reduced database containing only the named species",
		Long: `Subset emits a new database file in the source format, keeping only the
named species. Section markers and the leading temperature-range line are
preserved so the result can be read back like the full database.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			text, err := cat.Subset(args...)
			if err != nil {
				return err
			}

			if outFlag == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			if err := os.WriteFile(outFlag, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outFlag, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
