package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RavuAlHemio/icingcake/internal/domain"
	"github.com/RavuAlHemio/icingcake/internal/filter"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = newResultsViewport(msg.Width, msg.Height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = resultsViewportHeight(msg.Height)
		}

	case QueryResultMsg:
		m.querying = false
		if msg.Err != nil {
			m.queryErr = msg.Err.Error()
			return m, nil
		}
		m.queryErr = ""
		m.results = msg.Rows
		m.resultObjType = msg.ObjType
		m.mode = ModeResults
		if m.ready {
			m.viewport.SetContent(m.resultsContent())
			m.viewport.GotoTop()
		}
	}

	if m.mode == ModeResults && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeValue:
		return m.handleValueKey(msg)
	case ModeResults:
		return m.handleResultsKey(msg)
	case ModeHelp:
		m.mode = ModeRows
		return m, nil
	default:
		return m.handleRowsKey(msg)
	}
}

// handleRowsKey handles keys while navigating the row list
func (m Model) handleRowsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.mode = ModeHelp

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.rows.Len()-1 {
			m.cursor++
		}

	case "a", "n":
		m.rows.Add()
		m.cursor = m.rows.Len() - 1
		m.refreshExpression()

	case "d", "x":
		// Removal of the last remaining row is refused by the model;
		// the affordance is also rendered disabled in the view.
		if m.rows.Remove(m.cursor) {
			if m.cursor >= m.rows.Len() {
				m.cursor = m.rows.Len() - 1
			}
			m.refreshExpression()
		}

	case "c":
		m.rows.SetCriterion(m.cursor, nextCriterion(m.rows.Row(m.cursor).Criterion))
		m.refreshExpression()

	case "o":
		m.rows.SetOperator(m.cursor, nextOperator(m.rows.Row(m.cursor).Operator))
		m.refreshExpression()

	case "t", "tab":
		if m.objType == domain.ObjectTypeHosts {
			m.objType = domain.ObjectTypeServices
		} else {
			m.objType = domain.ObjectTypeHosts
		}

	case "v", "i":
		m.mode = ModeValue
		m.valueInput.SetValue(m.rows.Row(m.cursor).Value)
		m.valueInput.CursorEnd()
		return m, m.valueInput.Focus()

	case "enter":
		if !m.querying {
			m.querying = true
			return m, m.runQuery()
		}

	case "esc":
		m.queryErr = ""
	}

	return m, nil
}

// handleValueKey handles keys while editing a row's value. The row is
// synced on every keystroke so the expression preview never lags behind
// the input.
func (m Model) handleValueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = ModeRows
		m.valueInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.valueInput, cmd = m.valueInput.Update(msg)
	m.rows.SetValue(m.cursor, m.valueInput.Value())
	m.refreshExpression()
	return m, cmd
}

// handleResultsKey handles keys in the results view
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "b":
		m.mode = ModeRows
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// nextCriterion cycles through the recognized criteria
func nextCriterion(current filter.Criterion) filter.Criterion {
	for i, c := range filter.Criteria {
		if c == current {
			return filter.Criteria[(i+1)%len(filter.Criteria)]
		}
	}
	return filter.Criteria[0]
}

// nextOperator cycles through the operators
func nextOperator(current filter.Operator) filter.Operator {
	for i, op := range filter.Operators {
		if op == current {
			return filter.Operators[(i+1)%len(filter.Operators)]
		}
	}
	return filter.Operators[0]
}
