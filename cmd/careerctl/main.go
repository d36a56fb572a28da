// Command careerctl runs the recommendation engine offline and manages schemas
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"careerpath/internal/platform/config/raw"
	"careerpath/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "careerctl",
		Short:         "CareerPath command line",
		Long:          "Score questionnaires against the career catalog, list domains and ensure storage schemas.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newCatalogCmd(), newMigrateCmd(), newVersionCmd())
	return root
}

func main() {
	_, _ = raw.LoadDotenv()
	logger.Init(logger.FromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
