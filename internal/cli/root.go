// Package cli contains the myllmmodel commands.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "myllmmodel",
	Short: "myllmmodel.com landing page and prompt analyzer",
	Long: `myllmmodel serves the myllmmodel.com landing page: model highlights, a
model comparator, a demo playground, a prompt library with a quality
analyzer, and pricing.

Running 'myllmmodel' without arguments starts the web server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")
}
