package cli

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/RavuAlHemio/icingcake/internal/constants"
	"github.com/RavuAlHemio/icingcake/internal/history"
)

var historyLimit int

// historyCmd shows recently executed queries
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently executed queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.History.Disabled {
			return fmt.Errorf("query history is disabled in the configuration")
		}

		store, err := history.NewStore(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("opening query history: %w", err)
		}
		defer func() { _ = store.Close() }()

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return fmt.Errorf("reading query history: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tOBJTYPE\tROWS\tRESULT\tFILTER")
		for _, e := range entries {
			result := "ok"
			if !e.Success {
				result = "error"
			}
			filterExpr := e.Filter
			if filterExpr == "" {
				filterExpr = "(all objects)"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				e.ExecutedAt.Local().Format(time.DateTime), e.ObjType, e.RowCount, result, filterExpr)
		}
		if err := w.Flush(); err != nil {
			log.Printf("writing history: %v", err)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", constants.DefaultHistoryLimit, "Maximum number of entries to show")
}
