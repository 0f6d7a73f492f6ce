// Package ui implements the Ladle terminal interface.
//
// # Overview
//
// The interface is a single Bubble Tea program with three views: today's
// mealplans, the recipe catalog, and shopping lists. The UI never talks to
// the Mealie API directly; it reads snapshots from the shared state.Store
// that the background poller keeps fresh, so a slow or unreachable server
// can never block a keystroke.
//
// # Structure
//
//   - app.go: the root tea.Model, key handling, and the snapshot tick loop
//   - views.go: per-view rendering and the pure formatting helpers
//   - keys.go: key bindings
//   - theme.go: the built-in color themes and their Lipgloss styles
//
// # Data Flow
//
// A repeating tick command copies the latest state.Snapshot into the model.
// Rendering works only from that copy; selection cursors are clamped when a
// poll shrinks the data underneath them. The header shows the connected
// server version, switching to an offline badge after consecutive poll
// failures.
package ui
