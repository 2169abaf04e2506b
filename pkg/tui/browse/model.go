// Package browse is the interactive feed view: the same listing table and
// filter engine as the listings command, driven by a Bubble Tea loop.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model browses the feed. The table is loaded before the program starts;
// every keystroke that changes the filter recomputes the order atomically.
type Model struct {
	table  *listing.Table
	order  []int
	filter listing.Filter

	cursor    int
	searching bool
	input     textinput.Model
	errText   string
	height    int
}

func NewModel(table *listing.Table) *Model {
	input := textinput.New()
	input.Placeholder = "title or address"
	input.CharLimit = 80

	m := &Model{table: table, input: input, height: 24}
	m.applyFilter(listing.Filter{})
	return m
}

func (m *Model) applyFilter(f listing.Filter) {
	order, err := m.table.Order(f)
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.filter = f
	m.order = order
	m.errText = ""
	if m.cursor >= len(m.order) {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.input.Blur()
		m.applyFilter(listing.Filter{Kind: listing.Search, Text: m.input.Value()})
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.order)-1 {
			m.cursor++
		}
	case "/":
		m.searching = true
		m.input.SetValue("")
		m.input.Focus()
	case "n":
		m.applyFilter(listing.Filter{})
	case "r":
		m.applyFilter(listing.Filter{Kind: listing.Rating})
	case "R":
		m.applyFilter(listing.Filter{Kind: listing.Rating, Descending: true})
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Listings"))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString("search: " + m.input.View() + "\n\n")
	}

	if len(m.order) == 0 {
		b.WriteString(faintStyle.Render(" none") + "\n")
	}
	for i, id := range m.order {
		r, ok := m.table.Get(id)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s  $%d/night  %.1f (%d)  %d beds",
			r.Title, r.Price, r.Rating, r.Reviews, r.Bedrooms)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}
	b.WriteString("\n" + faintStyle.Render("/ search · n normal · r/R rating · q quit") + "\n")
	return b.String()
}

// Selected returns the record under the cursor, nil when the view is empty.
func (m *Model) Selected() *listing.FilterRecord {
	if m.cursor < 0 || m.cursor >= len(m.order) {
		return nil
	}
	r, _ := m.table.Get(m.order[m.cursor])
	return r
}
