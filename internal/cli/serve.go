package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixbrock/myllmmodel/internal/app"
	"github.com/felixbrock/myllmmodel/internal/persistence"
	"github.com/spf13/cobra"
)

var (
	envFiles []string
	port     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides GOPORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := app.LoadConfig(envFiles...)

	if err != nil {
		return err
	}

	if port != "" {
		config.Port = port
	}

	slog.SetDefault(app.NewLogger(config, os.Stderr))

	a, err := newApp(config)

	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Start(ctx)
}

func newApp(config app.Config) (*app.App, error) {
	catalog, err := persistence.NewCatalog()

	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &app.App{
		ModelRepo:   persistence.ModelRepo{Models: catalog.Models},
		PromptRepo:  persistence.PromptRepo{Prompts: catalog.Prompts},
		PricingRepo: persistence.PricingRepo{Tiers: catalog.Pricing},
		RunRepo:     persistence.RunRepo{Response: persistence.CannedResponse},
		Config:      config,
	}, nil
}
