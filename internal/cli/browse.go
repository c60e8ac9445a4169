package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/RavuAlHemio/icingcake/internal/history"
	"github.com/RavuAlHemio/icingcake/internal/tui"
)

// browseCmd launches the interactive filter builder
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive filter builder",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if verbose {
			log.Printf("using Icinga API at %s", cfg.Icinga.BaseURL)
		}

		var hist *history.Store
		if !cfg.History.Disabled {
			hist, err = history.NewStore(cfg.History.Path)
			if err != nil {
				// history is best effort; run without it
				log.Printf("opening query history: %v", err)
			} else {
				defer func() { _ = hist.Close() }()
			}
		}

		if err := tui.Run(newIcingaClient(cfg), hist); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	},
}
