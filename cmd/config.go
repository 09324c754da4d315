package cmd

import (
	"fmt"

	"github.com/khrees2412/autodoc/internal/app"
	"github.com/khrees2412/autodoc/internal/config"
	"github.com/khrees2412/autodoc/internal/preview"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Require(cmd.Context())
		if err != nil {
			return err
		}
		cfg := a.Config

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Configuration"))
		row := func(label, value string) {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(label), valueStyle.Render(value))
		}
		row("Config File:", config.GetConfigPath())
		row("Service URL:", cfg.ServiceURL)
		row("Request Timeout:", cfg.RequestTimeout.String())
		row("Output Dir:", cfg.OutputDir)
		if cfg.ChromePath != "" {
			row("Chrome Path:", cfg.ChromePath)
		} else {
			row("Chrome Path:", "auto-detect")
		}
		row("Print Timeout:", cfg.PrintTimeout.String())
		row("Log File:", cfg.LogFile)
		row("Default Template:", a.DefaultStyle().Label())
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  autodoc config set --key service_url --value http://127.0.0.1:8000
  autodoc config set --key request_timeout --value 90s
  autodoc config set --key default_style --value 3
  autodoc config set --key output_dir --value ~/Documents`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("%w: both --key and --value are required", app.ErrInvalidArgument)
		}
		if !config.IsValidKey(key) {
			return fmt.Errorf("%w %q: must be one of %v", app.ErrInvalidKey, key, config.ValidKeys)
		}
		if key == "default_style" {
			var n int
			if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
				return fmt.Errorf("%w: default_style must be 1, 2 or 3", app.ErrInvalidArgument)
			}
			if _, err := preview.ParseStyle(n); err != nil {
				return fmt.Errorf("%w: %w", app.ErrInvalidArgument, err)
			}
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("update config: %w", err)
		}
		cmd.Printf("✓ Configuration updated: %s\n", key)

		// Reload config
		if err := config.Initialize(); err != nil {
			cmd.PrintErrf("Warning: could not reload config: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
