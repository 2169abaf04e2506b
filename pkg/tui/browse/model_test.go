package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
)

func newTestModel() *Model {
	table := listing.NewTable()
	for _, r := range []struct {
		id      int
		title   string
		address string
		rating  float64
	}{
		{1, "Cabin", "1 Forest Rd, , Leura, NSW, 2780", 3.0},
		{2, "Apartment", "2 King St, , Newtown, NSW, 2042", 5.0},
		{3, "Beach House", "3 Marine Pde, , Coogee, NSW, 2034", 4.0},
	} {
		table.Add(listing.FilterRecord{
			Summary: listing.Summary{ID: r.id, Title: r.title, Rating: r.rating},
			Address: r.address,
		})
	}
	return NewModel(table)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m *Model, keys ...string) *Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(*Model)
	}
	return m
}

func order(m *Model) []int {
	return m.order
}

func TestInitialOrderIsNormal(t *testing.T) {
	m := newTestModel()
	// Nothing booked, so titles sort alphabetically.
	want := []int{2, 3, 1}
	got := order(m)
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestCursorNavigationClamps(t *testing.T) {
	m := newTestModel()
	m = press(m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.cursor)
	}
	m = press(m, "j", "j", "j", "j")
	if m.cursor != 2 {
		t.Errorf("cursor after overshoot down = %d, want 2", m.cursor)
	}
	if sel := m.Selected(); sel == nil || sel.ID != 1 {
		t.Errorf("Selected = %v, want record 1", sel)
	}
}

func TestSearchFiltersAndEscCancels(t *testing.T) {
	m := newTestModel()

	m = press(m, "/")
	if !m.searching {
		t.Fatalf("slash should start search input")
	}
	for _, r := range "coogee" {
		m = press(m, string(r))
	}
	m = press(m, "enter")
	if m.searching {
		t.Errorf("enter should leave search mode")
	}
	got := order(m)
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("search order = %v, want [3]", got)
	}

	// Esc abandons the input without touching the current order.
	m = press(m, "/", "esc")
	if m.searching {
		t.Errorf("esc should leave search mode")
	}
	if got := order(m); len(got) != 1 || got[0] != 3 {
		t.Errorf("order after esc = %v, want [3]", got)
	}

	m = press(m, "n")
	if got := order(m); len(got) != 3 {
		t.Errorf("normal order = %v, want all three", got)
	}
}

func TestRatingSortBothDirections(t *testing.T) {
	m := newTestModel()

	m = press(m, "r")
	if got := order(m); got[0] != 1 || got[2] != 2 {
		t.Errorf("ascending rating order = %v, want [1 3 2]", got)
	}
	m = press(m, "R")
	if got := order(m); got[0] != 2 || got[2] != 1 {
		t.Errorf("descending rating order = %v, want [2 3 1]", got)
	}
}

func TestCursorResetsWhenFilterShrinksView(t *testing.T) {
	m := newTestModel()
	m = press(m, "j", "j")
	m = press(m, "/")
	for _, r := range "coogee" {
		m = press(m, string(r))
	}
	m = press(m, "enter")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want reset to 0", m.cursor)
	}
}

func TestViewShowsSelectionAndHelp(t *testing.T) {
	m := newTestModel()
	view := m.View()
	if !strings.Contains(view, "Listings") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "Apartment") {
		t.Errorf("view missing first record:\n%s", view)
	}
	if !strings.Contains(view, "q quit") {
		t.Errorf("view missing help line:\n%s", view)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("q should return tea.Quit")
	}
}
