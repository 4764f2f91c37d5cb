package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifespan-backend/internal/lifecalc"
)

func newFactorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "List accepted factor codes and their adjustments",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.baseline()
			if err != nil {
				return err
			}
			catalog := lifecalc.Catalog()

			if opts.output == outputJSON {
				return opts.writeJSON(struct {
					Dimensions []lifecalc.CatalogDimension `json:"dimensions"`
					Countries  []string                    `json:"countries"`
				}{catalog, table.CountryCodes()})
			}

			for _, dim := range catalog {
				suffix := ""
				if dim.Legacy {
					suffix = " (legacy)"
				}
				fmt.Fprintf(opts.out, "%s [%s]%s\n", dim.Dimension, dim.Group, suffix)
				for _, code := range dim.Codes {
					fmt.Fprintf(opts.out, "  %-16s %+5.1f  %s\n", code.Code, code.Delta, code.Label)
				}
			}
			fmt.Fprintf(opts.out, "countries: %s\n", strings.Join(table.CountryCodes(), ", "))
			return nil
		},
	}
}
