package cli

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/RavuAlHemio/icingcake/internal/config"
	"github.com/RavuAlHemio/icingcake/internal/domain"
	"github.com/RavuAlHemio/icingcake/internal/filter"
	"github.com/RavuAlHemio/icingcake/internal/history"
)

var (
	queryObjType string
	queryFilter  string
	queryWheres  []string
)

// queryCmd runs a one-shot query
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a single filtered query and print the results",
	Long: `Run a single filtered query against the Icinga API.

The filter is given either as a raw expression with --filter, or composed
from one or more --where conditions of the form "criterion<op>value" with
ops == (equal), != (not equal), =~ (match) and !~ (no match), for example:

  icingcake query --objtype services --where 'host.name=~web*' --where 'service.name!=ping'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		objType, err := domain.ParseObjectType(queryObjType)
		if err != nil {
			return err
		}

		if queryFilter != "" && len(queryWheres) > 0 {
			return fmt.Errorf("--filter and --where are mutually exclusive")
		}

		filterExpr := queryFilter
		if len(queryWheres) > 0 {
			rows := make([]filter.Row, 0, len(queryWheres))
			for _, where := range queryWheres {
				row, err := parseWhere(where)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			filterExpr = filter.Serialize(rows)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := newIcingaClient(cfg)

		if verbose {
			log.Printf("querying %s with filter %q", objType, filterExpr)
		}

		start := time.Now()
		results, err := client.Query(cmd.Context(), objType, filterExpr)
		recordHistory(cfg.History, history.Entry{
			ObjType:  objType,
			Filter:   filterExpr,
			Duration: time.Since(start),
			RowCount: len(results),
			Success:  err == nil,
			ErrorMsg: errMessage(err),
		})
		if err != nil {
			return err
		}

		printResults(objType, results)
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryObjType, "objtype", "t", "hosts", "Object type to query (hosts or services)")
	queryCmd.Flags().StringVarP(&queryFilter, "filter", "f", "", "Raw filter expression")
	queryCmd.Flags().StringArrayVarP(&queryWheres, "where", "w", nil, "Filter condition criterion<op>value (repeatable)")
}

// whereOps maps comparison symbols to operators. Two-character symbols
// only, so a simple substring scan is unambiguous.
var whereOps = []struct {
	symbol string
	op     filter.Operator
}{
	{"==", filter.OpEqual},
	{"!=", filter.OpNotEqual},
	{"=~", filter.OpMatch},
	{"!~", filter.OpNotMatch},
}

// parseWhere splits a --where condition into a filter row
func parseWhere(where string) (filter.Row, error) {
	for _, candidate := range whereOps {
		idx := strings.Index(where, candidate.symbol)
		if idx <= 0 {
			continue
		}
		return filter.Row{
			Criterion: filter.Criterion(where[:idx]),
			Operator:  candidate.op,
			Value:     where[idx+len(candidate.symbol):],
		}, nil
	}
	return filter.Row{}, fmt.Errorf("invalid --where condition %q: expected criterion==value, criterion!=value, criterion=~value or criterion!~value", where)
}

// recordHistory persists one query, best effort
func recordHistory(cfg config.HistoryConfig, entry history.Entry) {
	if cfg.Disabled {
		return
	}

	store, err := history.NewStore(cfg.Path)
	if err != nil {
		log.Printf("opening query history: %v", err)
		return
	}
	defer func() { _ = store.Close() }()

	if err := store.Add(entry); err != nil {
		log.Printf("recording query history: %v", err)
	}
}

// printResults writes a plain-text result table to stdout
func printResults(objType domain.ObjectType, rows []domain.StatusRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	if objType == domain.ObjectTypeServices {
		fmt.Fprintln(w, "STATE\tHOST\tSERVICE\tOUTPUT")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				domain.StateName(objType, row.State), row.Host, row.Service, firstLine(row.Output))
		}
	} else {
		fmt.Fprintln(w, "STATE\tHOST\tOUTPUT")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				domain.StateName(objType, row.State), row.Host, firstLine(row.Output))
		}
	}

	if err := w.Flush(); err != nil {
		log.Printf("writing results: %v", err)
	}
}

// firstLine trims a check output to its first line
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
