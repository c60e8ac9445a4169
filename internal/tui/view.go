package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/RavuAlHemio/icingcake/internal/domain"
)

// headerReservedLines is the number of lines above the results viewport
const headerReservedLines = 6

// newResultsViewport creates the viewport used for the results table
func newResultsViewport(width, height int) viewport.Model {
	vp := viewport.New(width, resultsViewportHeight(height))
	return vp
}

// resultsViewportHeight returns the viewport height for a terminal height
func resultsViewportHeight(height int) int {
	h := height - headerReservedLines
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.helpView()
	case ModeResults:
		return m.resultsView()
	default:
		return m.builderView()
	}
}

// builderView renders the filter row editor
func (m Model) builderView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("icingcake — Icinga filter builder"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Object type: %s  %s\n\n",
		string(m.objType), dimStyle.Render("(t to toggle)")))

	removable := m.rows.CanRemove()
	for i, row := range m.rows.All() {
		remove := "[x]"
		if !removable {
			// uniformly disabled across every row while only one remains
			remove = dimStyle.Render("[x]")
		}

		line := fmt.Sprintf(" %d. %-14s %s %-24q %s",
			i+1, row.Criterion, row.Operator.Label(), row.Value, remove)

		if i == m.cursor {
			if m.mode == ModeValue {
				line = fmt.Sprintf(" %d. %-14s %s %s %s",
					i+1, row.Criterion, row.Operator.Label(), m.valueInput.View(), remove)
			}
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("Filter: ")
	if m.expression == "" {
		b.WriteString(dimStyle.Render("(all objects)"))
	} else {
		b.WriteString(expressionStyle.Render(m.expression))
	}
	b.WriteString("\n\n")

	if m.queryErr != "" {
		b.WriteString(errorStyle.Render(" " + truncate(m.queryErr, m.width-2) + " "))
		b.WriteString("\n")
	}

	status := "a:add row  d:remove  c:criterion  o:operator  v:value  enter:query  ?:help  q:quit"
	if m.querying {
		status = "querying..."
	}
	b.WriteString(statusStyle.Render(status))

	return b.String()
}

// resultsView renders the query results table
func (m Model) resultsView() string {
	var b strings.Builder

	title := fmt.Sprintf("icingcake — %d %s", len(m.results), string(m.resultObjType))
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("esc:back to filter  q:quit"))

	return b.String()
}

// resultsContent formats the result rows for the viewport
func (m Model) resultsContent() string {
	if len(m.results) == 0 {
		return dimStyle.Render("no matching objects")
	}

	var b strings.Builder
	for _, row := range m.results {
		state := stateStyle(row.State).Render(
			fmt.Sprintf("%-8s", domain.StateName(m.resultObjType, row.State)))

		name := row.Host
		if row.Service != "" {
			name = row.Host + "!" + row.Service
		}

		b.WriteString(fmt.Sprintf("%s %-30s %s\n",
			state, truncate(name, 30), truncate(row.Output, m.width-40)))
	}
	return b.String()
}

// helpView renders the help overlay
func (m Model) helpView() string {
	help := `icingcake keys

  up/k, down/j   select row
  a, n           add a filter row
  d, x           remove the selected row (disabled when only one remains)
  c              cycle criterion (host.name / service.name)
  o              cycle operator (=~  !~  ==  !=)
  v, i           edit value (enter/esc to finish)
  t, tab         toggle hosts / services
  enter          run the query
  esc            dismiss errors / leave results
  q              quit

Press any key to close this help.`

	return helpStyle.Render(help)
}

// truncate shortens s to at most n characters, appending … when cut
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
