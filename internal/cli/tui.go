package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zwilder/tsp/pkg/render"
	"github.com/zwilder/tsp/pkg/tsp"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// demoState identifies the active screen of the demo.
type demoState int

const (
	stateMenu demoState = iota
	stateTour
	stateAbout
)

var menuItems = []string{
	"Step through the optimal tour",
	"What is this?",
	"Quit",
}

// =============================================================================
// DemoModel - Interactive tour walkthrough
// =============================================================================

// DemoModel is the bubbletea model for the demo screens.
//
// The tour screen steps through the optimal tour one edge per keypress:
// step 1..n-1 walks the path, step n closes the cycle back to the start,
// and the next keypress returns to the menu with a new accent color.
type DemoModel struct {
	Name   string
	Matrix *tsp.Matrix
	Exact  tsp.Tour
	Greedy tsp.Tour

	state     demoState
	cursor    int
	step      int
	accentIdx int
}

// newDemoModel creates a demo model on a solved instance.
func newDemoModel(name string, m *tsp.Matrix, exact, greedy tsp.Tour) DemoModel {
	return DemoModel{
		Name:   name,
		Matrix: m,
		Exact:  exact,
		Greedy: greedy,
	}
}

func (m DemoModel) Init() tea.Cmd {
	return nil
}

func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(key)
	case stateTour:
		return m.updateTour(key)
	case stateAbout:
		m.state = stateMenu
	}
	return m, nil
}

func (m DemoModel) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		switch m.cursor {
		case 0:
			m.state = stateTour
			m.step = 0
		case 1:
			m.state = stateAbout
		case 2:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DemoModel) updateTour(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		m.state = stateMenu
		return m, nil
	}

	// Any other key advances one leg of the tour.
	if m.step < len(m.Exact.Path) {
		m.step++
		return m, nil
	}

	// Tour complete; return to the menu with a fresh accent.
	m.state = stateMenu
	m.step = 0
	m.accentIdx = (m.accentIdx + 1) % len(accentColors)
	return m, nil
}

func (m DemoModel) View() string {
	switch m.state {
	case stateTour:
		return m.viewTour()
	case stateAbout:
		return m.viewAbout()
	default:
		return m.viewMenu()
	}
}

// =============================================================================
// Menu Screen
// =============================================================================

func (m DemoModel) viewMenu() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Traveling Salesman"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s · %d nodes", m.Name, m.Matrix.Size())))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := cursor + item
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	return b.String()
}

// =============================================================================
// Tour Screen
// =============================================================================

// edgeAt returns the tour edge shown at step s (1-based). The final step
// is the closing edge back to the start node.
func (m DemoModel) edgeAt(s int) (from, to int) {
	path := m.Exact.Path
	from = path[s-1]
	to = path[s%len(path)]
	return from, to
}

// walkedCost sums the edges revealed so far.
func (m DemoModel) walkedCost() int {
	total := 0
	for s := 1; s <= m.step; s++ {
		from, to := m.edgeAt(s)
		total += m.Matrix.At(from, to)
	}
	return total
}

func (m DemoModel) viewTour() string {
	accent := accentColors[m.accentIdx]
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	n := m.Matrix.Size()
	var from, to int
	if m.step > 0 {
		from, to = m.edgeAt(m.step)
	}

	headers := make([]string, n+1)
	headers[0] = ""
	for k := 0; k < n; k++ {
		headers[k+1] = render.NodeLabel(k)
	}

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, n+1)
		row[0] = render.NodeLabel(i)
		for j := 0; j < n; j++ {
			row[j+1] = fmt.Sprintf("%d", m.Matrix.At(i, j))
		}
		rows[i] = row
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				// Light up the destination column header.
				if m.step > 0 && col == to+1 {
					return accentStyle
				}
				return headerStyle
			}
			if m.step == 0 {
				return lipgloss.NewStyle()
			}
			// Row labels track the origin, the crossing cell is the edge.
			if col == 0 && row == from {
				return accentStyle
			}
			if row == from && col == to+1 {
				return accentStyle
			}
			return lipgloss.NewStyle()
		})

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Optimal Tour"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(m.Name))
	b.WriteString("\n\n")
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	switch {
	case m.step == 0:
		b.WriteString(listDimStyle.Render("press any key to take the first step"))
	case m.step < n:
		b.WriteString(fmt.Sprintf("Step %d/%d: %s %s %s (cost %d)",
			m.step, n,
			accentStyle.Render(render.NodeLabel(from)),
			listDimStyle.Render(iconArrow),
			accentStyle.Render(render.NodeLabel(to)),
			m.Matrix.At(from, to)))
	default:
		b.WriteString(fmt.Sprintf("Step %d/%d: %s %s %s (cost %d) %s",
			m.step, n,
			accentStyle.Render(render.NodeLabel(from)),
			listDimStyle.Render(iconArrow),
			accentStyle.Render(render.NodeLabel(to)),
			m.Matrix.At(from, to),
			StyleSuccess.Render("· tour complete")))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("walked %d of %d", m.walkedCost(), m.Exact.Cost)))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("optimal %d · greedy %d", m.Exact.Cost, m.Greedy.Cost)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("any key: step  esc: menu"))
	return b.String()
}

// =============================================================================
// About Screen
// =============================================================================

func (m DemoModel) viewAbout() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("What is this?"))
	b.WriteString("\n\n")
	b.WriteString(listNormalStyle.Render(
		"The traveling salesman problem asks for the cheapest closed tour\n" +
			"visiting every node of a cost matrix exactly once.\n\n"))
	b.WriteString(listNormalStyle.Render(
		"The Held-Karp dynamic program solves it exactly by building best\n" +
			"costs over every subset of nodes, which keeps it practical only\n" +
			"for small instances. The nearest-neighbor heuristic just walks\n" +
			"to the cheapest unvisited node and is fast but approximate.\n"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("any key: back"))
	return b.String()
}
