// Package ui provides a Bubble Tea-based TUI for Ladle.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ladle/internal/prefs"
	"ladle/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewToday View = iota
	ViewRecipes
	ViewShopping
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys        keyMap
	theme       Theme
	styles      Styles
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Selection state
	selectedRecipe int
	selectedList   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}
	// The UI redraws faster than the poller refreshes.
	if pollTick > time.Second {
		pollTick = time.Second
	}

	theme := GetTheme(opts.ThemeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       theme,
		styles:      theme.Styles(),
		currentView: ViewToday,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampSelections()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.currentView = (m.currentView + 1) % 3
		return m, nil

	case key.Matches(msg, m.keys.ViewToday):
		m.currentView = ViewToday
		return m, nil

	case key.Matches(msg, m.keys.ViewRecipes):
		m.currentView = ViewRecipes
		return m, nil

	case key.Matches(msg, m.keys.ViewShopping):
		m.currentView = ViewShopping
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.setSelection(0)
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.setSelection(m.selectionLimit() - 1)
		return m, nil
	}

	return m, nil
}

// selectionLimit returns the row count for the view that owns the cursor.
func (m Model) selectionLimit() int {
	switch m.currentView {
	case ViewRecipes:
		return len(m.snapshot.Recipes)
	case ViewShopping:
		return len(m.snapshot.Lists)
	default:
		return 0
	}
}

func (m *Model) moveSelection(delta int) {
	m.setSelection(m.currentSelection() + delta)
}

func (m *Model) setSelection(index int) {
	limit := m.selectionLimit()
	if limit == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > limit-1 {
		index = limit - 1
	}
	switch m.currentView {
	case ViewRecipes:
		m.selectedRecipe = index
	case ViewShopping:
		m.selectedList = index
	}
}

func (m Model) currentSelection() int {
	switch m.currentView {
	case ViewRecipes:
		return m.selectedRecipe
	case ViewShopping:
		return m.selectedList
	default:
		return 0
	}
}

// clampSelections keeps cursors in range when a poll shrinks the data.
func (m *Model) clampSelections() {
	if n := len(m.snapshot.Recipes); m.selectedRecipe >= n {
		m.selectedRecipe = max(0, n-1)
	}
	if n := len(m.snapshot.Lists); m.selectedList >= n {
		m.selectedList = max(0, n-1)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
