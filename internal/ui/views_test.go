package ui

import (
	"testing"

	"ladle/internal/mealie"
)

func TestMealplanTitle(t *testing.T) {
	tests := []struct {
		name string
		plan mealie.Mealplan
		want string
	}{
		{
			name: "recipe entry",
			plan: mealie.Mealplan{Recipe: &mealie.BaseRecipe{Name: "Minestrone"}},
			want: "Minestrone",
		},
		{
			name: "note entry",
			plan: mealie.Mealplan{Title: mealie.OptionalString{String: "Leftovers", Valid: true}},
			want: "Leftovers",
		},
		{
			name: "recipe wins over title",
			plan: mealie.Mealplan{
				Recipe: &mealie.BaseRecipe{Name: "Minestrone"},
				Title:  mealie.OptionalString{String: "Leftovers", Valid: true},
			},
			want: "Minestrone",
		},
		{
			name: "neither",
			plan: mealie.Mealplan{},
			want: "(untitled)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mealplanTitle(tt.plan); got != tt.want {
				t.Errorf("mealplanTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemText(t *testing.T) {
	item := mealie.ShoppingItem{Note: "flour", Display: "2 cups flour"}
	if got := itemText(item); got != "2 cups flour" {
		t.Errorf("itemText() = %q, want display string", got)
	}
	item.Display = ""
	if got := itemText(item); got != "flour" {
		t.Errorf("itemText() = %q, want note fallback", got)
	}
}

func TestItemMarker(t *testing.T) {
	if got := itemMarker(mealie.ShoppingItem{Checked: true}); got != "[x]" {
		t.Errorf("itemMarker(checked) = %q", got)
	}
	if got := itemMarker(mealie.ShoppingItem{}); got != "[ ]" {
		t.Errorf("itemMarker(unchecked) = %q", got)
	}
}

func TestCountOpen(t *testing.T) {
	items := []mealie.ShoppingItem{
		{Checked: true},
		{Checked: false},
		{Checked: false},
	}
	if got := countOpen(items); got != 2 {
		t.Errorf("countOpen() = %d, want 2", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "soup", 10, "soup"},
		{"exact", "soup", 4, "soup"},
		{"shortened", "minestrone", 6, "mines…"},
		{"multibyte", "crème brûlée", 8, "crème b…"},
		{"tiny width clamps", "minestrone", 1, "min…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		total    int
		rows     int
		want     int
	}{
		{"all fit", 3, 5, 10, 0},
		{"selection at top", 0, 20, 5, 0},
		{"selection centered", 10, 20, 5, 8},
		{"selection near end", 19, 20, 5, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := windowStart(tt.selected, tt.total, tt.rows)
			if got != tt.want {
				t.Errorf("windowStart(%d, %d, %d) = %d, want %d", tt.selected, tt.total, tt.rows, got, tt.want)
			}
		})
	}
}
