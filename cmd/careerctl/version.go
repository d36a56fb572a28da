package main

import (
	"careerpath/internal/core/recommend"
	"careerpath/internal/core/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and engine versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), struct {
				version.BuildInfo
				Engine string `json:"engine"`
			}{version.Info(), recommend.Version})
		},
	}
}
