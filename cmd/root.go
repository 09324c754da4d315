package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/khrees2412/autodoc/internal/app"
	"github.com/spf13/cobra"
)

// application is closed by Execute once the command returns
var application *app.App

var rootCmd = &cobra.Command{
	Use:   "autodoc",
	Short: "Generate resumes, cover letters and portfolios from the terminal",
	Long: `Autodoc collects your details through guided forms, sends them to a
generation service and renders the returned document for preview and PDF export.
Run without a subcommand to open the interactive TUI.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		serviceURL, _ := cmd.Flags().GetString("service-url")

		a, err := app.NewApp(cmd.Context(), app.WithServiceURL(serviceURL))
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		application = a

		cmd.SetContext(app.WithApp(cmd.Context(), a))
		return nil
	},
	RunE: runTUI,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	if application != nil {
		application.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("service-url", "", "Generation service base URL (overrides config)")
}
