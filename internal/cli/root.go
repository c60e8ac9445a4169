package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RavuAlHemio/icingcake/internal/config"
	"github.com/RavuAlHemio/icingcake/internal/constants"
	"github.com/RavuAlHemio/icingcake/internal/icinga"
)

// Version is set during build
var Version = "dev"

// Global flags
var (
	configPath string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "icingcake",
	Short: "A filter-building front end for the Icinga2 API",
	Long: `icingcake lets you compose host and service filter queries for the
Icinga2 API and run them. It supports:
  - An interactive TUI filter builder (browse)
  - A one-shot query command for scripting (query)
  - An HTTP gateway exposing filtered queries as JSON (serve)`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// bare invocation launches the TUI
		return browseCmd.RunE(cmd, args)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("icingcake version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile, "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.SetVersionTemplate("icingcake version {{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig loads the configuration from the --config path
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newIcingaClient builds an Icinga client from the configuration
func newIcingaClient(cfg *config.Config) *icinga.Client {
	return icinga.NewClient(icinga.ClientConfig{
		BaseURL:            cfg.Icinga.BaseURL,
		Username:           cfg.Icinga.Username,
		Password:           cfg.Icinga.Password,
		Timeout:            cfg.IcingaTimeout(),
		InsecureSkipVerify: cfg.Icinga.InsecureSkipVerify,
	})
}
