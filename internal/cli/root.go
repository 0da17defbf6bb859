// Package cli implements the zenvhub command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zenv-lang/zenvhub"
	"github.com/zenv-lang/zenvhub/client"
	"github.com/zenv-lang/zenvhub/internal/config"
	"github.com/zenv-lang/zenvhub/internal/logger"
)

var (
	// Global flags
	cfgFile      string
	serverURL    string
	outputFormat string

	// Shared state set during PersistentPreRun
	cfg       *config.Config
	app       *zenvhub.App
	formatter Formatter
)

// rootCmd is the base command for zenvhub.
var rootCmd = &cobra.Command{
	Use:   "zenvhub",
	Short: "Zenv Hub client — browse packages, badges, downloads, and server health",
	Long: `Zenvhub is the client for the Zenv Hub package-hosting service.
It lists published packages and badges, downloads package artifacts,
generates badge URLs, and shows live server health.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags
		if serverURL != "" {
			cfg.BaseURL = serverURL
		}
		if outputFormat != "" {
			cfg.OutputFormat = outputFormat
		}

		log, err := logger.New(cfg)
		if err != nil {
			// Logging is best-effort for an interactive tool.
			log = zap.NewNop()
		}

		httpClient := client.NewClient(client.WithTimeout(cfg.Timeout))
		app = zenvhub.NewWithClient(cfg.BaseURL, httpClient, log)
		formatter = NewFormatter(cfg.OutputFormat)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// SetApp allows tests to inject a preconfigured app.
func SetApp(a *zenvhub.App) {
	app = a
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.zenv/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "hub server URL (overrides config and ZENV_HUB_URL)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml")
}
