package main

import (
	"fmt"
	"text/tabwriter"

	"careerpath/internal/core/recommend"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the career domains the engine scores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			domains := recommend.Default().Domains()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), domains)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DOMAIN\tKEYWORDS\tREASON")
			for _, d := range domains {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", d.Name, len(d.Keywords), d.BaseReason)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}
