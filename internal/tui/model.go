package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RavuAlHemio/icingcake/internal/domain"
	"github.com/RavuAlHemio/icingcake/internal/filter"
	"github.com/RavuAlHemio/icingcake/internal/history"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeRows Mode = iota
	ModeValue
	ModeResults
	ModeHelp
)

// queryTimeout is the maximum time to wait for one query
const queryTimeout = 60 * time.Second

// Querier runs filtered queries against a monitoring backend
type Querier interface {
	Query(ctx context.Context, objType domain.ObjectType, filterExpr string) ([]domain.StatusRow, error)
}

// Model is the bubbletea model for the filter builder TUI
type Model struct {
	// Dependencies
	querier Querier
	hist    *history.Store // nil when history is disabled

	// Filter state
	rows    *filter.Rows
	objType domain.ObjectType
	cursor  int

	// expression always holds the serialization of the current row state;
	// it is refreshed synchronously after every mutation.
	expression string

	// Results
	results       []domain.StatusRow
	resultObjType domain.ObjectType
	queryErr      string
	querying      bool

	// UI components
	valueInput textinput.Model
	viewport   viewport.Model

	// Mode
	mode Mode

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewModel creates a new TUI model with one initial filter row
func NewModel(querier Querier, hist *history.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "value..."
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		querier:    querier,
		hist:       hist,
		rows:       filter.NewRows(),
		objType:    domain.ObjectTypeHosts,
		valueInput: ti,
		mode:       ModeRows,
	}
	m.refreshExpression()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// refreshExpression re-serializes the current row list
func (m *Model) refreshExpression() {
	m.expression = m.rows.Serialize()
}

// QueryResultMsg is sent when a query completes
type QueryResultMsg struct {
	ObjType domain.ObjectType
	Rows    []domain.StatusRow
	Err     error
}

// runQuery returns a command that executes the current filter
func (m Model) runQuery() tea.Cmd {
	objType := m.objType
	expr := m.expression
	querier := m.querier
	hist := m.hist

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		start := time.Now()
		rows, err := querier.Query(ctx, objType, expr)

		if hist != nil {
			entry := history.Entry{
				ObjType:  objType,
				Filter:   expr,
				Duration: time.Since(start),
				RowCount: len(rows),
				Success:  err == nil,
			}
			if err != nil {
				entry.ErrorMsg = err.Error()
			}
			if herr := hist.Add(entry); herr != nil {
				log.Printf("recording query history: %v", herr)
			}
		}

		return QueryResultMsg{ObjType: objType, Rows: rows, Err: err}
	}
}
