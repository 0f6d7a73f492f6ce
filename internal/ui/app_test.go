package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ladle/internal/mealie"
	"ladle/internal/state"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{PrefsPath: t.TempDir() + "/prefs.toml"})
	m.width = 80
	m.height = 24
	m.ready = true
	return m
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_WindowSizeMarksReady(t *testing.T) {
	m := New(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	got := updated.(Model)
	if !got.ready || got.width != 100 || got.height != 40 {
		t.Fatalf("model = %+v, want ready 100x40", got)
	}
}

func TestUpdate_ViewSwitching(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('r'))
	m = updated.(Model)
	if m.currentView != ViewRecipes {
		t.Fatalf("currentView = %d, want recipes", m.currentView)
	}

	updated, _ = m.Update(keyPress('s'))
	m = updated.(Model)
	if m.currentView != ViewShopping {
		t.Fatalf("currentView = %d, want shopping", m.currentView)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.currentView != ViewToday {
		t.Fatalf("tab from shopping gave view %d, want wrap to today", m.currentView)
	}
}

func TestUpdate_SnapshotClampsSelection(t *testing.T) {
	m := newTestModel(t)
	m.currentView = ViewRecipes
	m.selectedRecipe = 5

	snap := state.Snapshot{HasData: true}
	snap.Recipes = []mealie.BaseRecipe{{Name: "Soup"}, {Name: "Stew"}}

	updated, _ := m.Update(snapshotMsg(snap))
	m = updated.(Model)
	if m.selectedRecipe != 1 {
		t.Fatalf("selectedRecipe = %d, want clamped to 1", m.selectedRecipe)
	}
}

func TestUpdate_NavigationBounds(t *testing.T) {
	m := newTestModel(t)
	m.currentView = ViewRecipes
	m.snapshot.HasData = true
	m.snapshot.Recipes = []mealie.BaseRecipe{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	updated, _ := m.Update(keyPress('k'))
	m = updated.(Model)
	if m.selectedRecipe != 0 {
		t.Fatalf("up at top moved cursor to %d", m.selectedRecipe)
	}

	updated, _ = m.Update(keyPress('G'))
	m = updated.(Model)
	if m.selectedRecipe != 2 {
		t.Fatalf("G gave cursor %d, want 2", m.selectedRecipe)
	}

	updated, _ = m.Update(keyPress('j'))
	m = updated.(Model)
	if m.selectedRecipe != 2 {
		t.Fatalf("down at bottom moved cursor to %d", m.selectedRecipe)
	}
}

func TestUpdate_ThemeCyclePersists(t *testing.T) {
	m := newTestModel(t)
	before := m.theme.Name

	updated, _ := m.Update(keyPress('T'))
	m = updated.(Model)
	if m.theme.Name == before {
		t.Fatalf("theme did not change from %q", before)
	}
}

func TestUpdate_HelpTogglesAndCloses(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('h'))
	m = updated.(Model)
	if !m.showHelp {
		t.Fatal("help did not open")
	}

	updated, _ = m.Update(keyPress('x'))
	m = updated.(Model)
	if m.showHelp {
		t.Fatal("help did not close on key press")
	}
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("quit key returned nil command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("quit command produced %T, want tea.QuitMsg", msg)
	}
}

func TestView_RendersOfflineBadge(t *testing.T) {
	m := newTestModel(t)
	m.snapshot.ConsecutiveFailures = 3

	out := m.View()
	if out == "" {
		t.Fatal("View returned empty output")
	}
	if !containsPlain(out, "OFFLINE") {
		t.Fatalf("view missing offline badge:\n%s", out)
	}
}

// containsPlain ignores ANSI sequences when checking for a substring.
func containsPlain(s, sub string) bool {
	plain := make([]rune, 0, len(s))
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			plain = append(plain, r)
		}
	}
	return strings.Contains(string(plain), sub)
}
