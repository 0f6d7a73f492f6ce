package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ladle/internal/mealie"
)

// renderMain assembles the full-screen layout.
func (m Model) renderMain() string {
	header := m.renderHeader()
	tabs := m.renderTabs()

	var content string
	switch m.currentView {
	case ViewToday:
		content = m.renderToday()
	case ViewRecipes:
		content = m.renderRecipes()
	case ViewShopping:
		content = m.renderShopping()
	}

	footer := m.renderFooter()

	// Fill the space between the tab row and the footer so the footer
	// stays pinned to the bottom row.
	used := lipgloss.Height(header) + lipgloss.Height(tabs) + lipgloss.Height(content) + lipgloss.Height(footer)
	padding := ""
	if gap := m.height - used; gap > 0 {
		padding = strings.Repeat("\n", gap)
	}

	return header + "\n" + tabs + "\n" + content + padding + footer
}

func (m Model) renderHeader() string {
	title := m.styles.AccentText.Render("Ladle")

	status := ""
	if m.snapshot.IsOffline() {
		status = m.styles.DangerText.Render("OFFLINE")
	} else if m.snapshot.LastError != nil {
		status = m.styles.WarningText.Render("retrying")
	} else if m.snapshot.ServerVersion != "" {
		status = m.styles.MutedText.Render("Mealie " + m.snapshot.ServerVersion)
	}

	line := title
	if status != "" {
		line += "  " + status
	}
	return m.styles.Header.Width(max(m.width, 0)).Render(line)
}

func (m Model) renderTabs() string {
	labels := []struct {
		view View
		name string
	}{
		{ViewToday, "Today"},
		{ViewRecipes, "Recipes"},
		{ViewShopping, "Shopping"},
	}

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.view == m.currentView {
			parts = append(parts, m.styles.TabActive.Render(l.name))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(l.name))
		}
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderToday() string {
	if !m.snapshot.HasData {
		return "\n " + m.styles.MutedText.Render("Waiting for first poll...")
	}
	if len(m.snapshot.Today) == 0 {
		return "\n " + m.styles.MutedText.Render("Nothing planned for today.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, plan := range m.snapshot.Today {
		label := m.styles.AccentText.Render(entryTypeLabel(plan.EntryType))
		b.WriteString(fmt.Sprintf(" %s  %s\n", label, m.styles.Text.Render(mealplanTitle(plan))))
		if plan.Description.Valid {
			b.WriteString("          " + m.styles.MutedText.Render(truncate(plan.Description.String, m.width-12)) + "\n")
		}
	}

	if m.snapshot.Stats != nil {
		b.WriteString("\n " + m.styles.MutedText.Render(fmt.Sprintf("%d recipes on the server", m.snapshot.Stats.TotalRecipes)) + "\n")
	}
	return b.String()
}

func (m Model) renderRecipes() string {
	recipes := m.snapshot.Recipes
	if !m.snapshot.HasData {
		return "\n " + m.styles.MutedText.Render("Waiting for first poll...")
	}
	if len(recipes) == 0 {
		return "\n " + m.styles.MutedText.Render("No recipes found.")
	}

	rows := m.visibleRows()
	start := windowStart(m.selectedRecipe, len(recipes), rows)

	var b strings.Builder
	b.WriteString("\n")
	for i := start; i < len(recipes) && i < start+rows; i++ {
		r := recipes[i]
		line := " " + truncate(r.Name, m.width-4)
		if i == m.selectedRecipe {
			b.WriteString(m.styles.Selected.Render(line) + "\n")
		} else {
			b.WriteString(m.styles.Text.Render(line) + "\n")
		}
	}

	if sel := m.selectedDetail(); sel != "" {
		b.WriteString("\n " + m.styles.MutedText.Render(sel) + "\n")
	}
	return b.String()
}

// selectedDetail formats the description of the highlighted recipe.
func (m Model) selectedDetail() string {
	recipes := m.snapshot.Recipes
	if m.selectedRecipe < 0 || m.selectedRecipe >= len(recipes) {
		return ""
	}
	desc := strings.TrimSpace(recipes[m.selectedRecipe].Description)
	if desc == "" {
		return ""
	}
	return truncate(desc, m.width-4)
}

func (m Model) renderShopping() string {
	lists := m.snapshot.Lists
	if !m.snapshot.HasData {
		return "\n " + m.styles.MutedText.Render("Waiting for first poll...")
	}
	if len(lists) == 0 {
		return "\n " + m.styles.MutedText.Render("No shopping lists found.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, list := range lists {
		items := m.snapshot.Items[list.ID]
		heading := fmt.Sprintf(" %s (%d open)", list.Name, countOpen(items))
		if i == m.selectedList {
			b.WriteString(m.styles.Selected.Render(heading) + "\n")
			for _, item := range items {
				marker := itemMarker(item)
				style := m.styles.Text
				if item.Checked {
					style = m.styles.MutedText
				}
				b.WriteString("   " + style.Render(marker+" "+truncate(itemText(item), m.width-8)) + "\n")
			}
		} else {
			b.WriteString(m.styles.Text.Render(heading) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderFooter() string {
	parts := []string{"h help", "tab views", "q quit"}
	if !m.lastUpdated.IsZero() {
		parts = append(parts, "updated "+m.lastUpdated.Format("15:04:05"))
	}
	return m.styles.Footer.Width(max(m.width, 0)).Render(strings.Join(parts, " · "))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("\n " + m.styles.AccentText.Render("Keyboard shortcuts") + "\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("   %-8s %s\n", h.Key, m.styles.MutedText.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(" " + m.styles.MutedText.Render("Press any key to close") + "\n")
	return b.String()
}

// visibleRows is how many list rows fit between the chrome rows.
func (m Model) visibleRows() int {
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

// windowStart picks the first visible index so the selection stays on screen.
func windowStart(selected, total, rows int) int {
	if total <= rows {
		return 0
	}
	start := selected - rows/2
	if start < 0 {
		start = 0
	}
	if start > total-rows {
		start = total - rows
	}
	return start
}

// mealplanTitle names a plan entry: the recipe name for recipe entries,
// the note title for note entries.
func mealplanTitle(plan mealie.Mealplan) string {
	if plan.Recipe != nil && plan.Recipe.Name != "" {
		return plan.Recipe.Name
	}
	if plan.Title.Valid {
		return plan.Title.String
	}
	return "(untitled)"
}

func entryTypeLabel(t mealie.MealplanEntryType) string {
	switch t {
	case mealie.EntryTypeBreakfast:
		return "Breakfast"
	case mealie.EntryTypeLunch:
		return "Lunch    "
	case mealie.EntryTypeDinner:
		return "Dinner   "
	case mealie.EntryTypeSide:
		return "Side     "
	}
	return string(t)
}

func itemMarker(item mealie.ShoppingItem) string {
	if item.Checked {
		return "[x]"
	}
	return "[ ]"
}

// itemText prefers the server-rendered display string over the raw note.
func itemText(item mealie.ShoppingItem) string {
	if item.Display != "" {
		return item.Display
	}
	return item.Note
}

func countOpen(items []mealie.ShoppingItem) int {
	open := 0
	for _, item := range items {
		if !item.Checked {
			open++
		}
	}
	return open
}

// truncate shortens s to at most width runes, appending an ellipsis.
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
