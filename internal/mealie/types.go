package mealie

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Mealie serializes calendar dates as bare ISO dates.
const dateLayout = "2006-01-02"

// OptionalString is a string field the API may populate with "", a
// whitespace-only value, or null, all of which mean "no value". Decoding
// normalizes every blank form to the invalid state and trims the rest.
type OptionalString struct {
	String string
	Valid  bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *OptionalString) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = OptionalString{}
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		*s = OptionalString{}
		return nil
	}
	*s = OptionalString{String: trimmed, Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler. Absent values serialize as null.
func (s OptionalString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.String)
}

// StartupInfo mirrors api/app/about/startup-info.
type StartupInfo struct {
	IsFirstLogin bool `json:"isFirstLogin"`
}

// About mirrors api/app/about. Version gates the recipe import endpoint.
type About struct {
	Version string `json:"version"`
}

// GroupSummary mirrors api/groups/self.
type GroupSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// UserInfo mirrors api/users/self.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// Theme mirrors api/app/about/theme: seven color roles for each of the
// light and dark palettes.
type Theme struct {
	LightPrimary   string `json:"lightPrimary"`
	LightAccent    string `json:"lightAccent"`
	LightSecondary string `json:"lightSecondary"`
	LightSuccess   string `json:"lightSuccess"`
	LightInfo      string `json:"lightInfo"`
	LightWarning   string `json:"lightWarning"`
	LightError     string `json:"lightError"`
	DarkPrimary    string `json:"darkPrimary"`
	DarkAccent     string `json:"darkAccent"`
	DarkSecondary  string `json:"darkSecondary"`
	DarkSuccess    string `json:"darkSuccess"`
	DarkInfo       string `json:"darkInfo"`
	DarkWarning    string `json:"darkWarning"`
	DarkError      string `json:"darkError"`
}

// Tag labels a recipe.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Ingredient is one recipe line item. Quantity is absent for bare
// note-only ingredients.
type Ingredient struct {
	Quantity    *float64 `json:"quantity"`
	Note        string   `json:"note"`
	Unit        *string  `json:"unit"`
	IsFood      *bool    `json:"isFood"`
	ReferenceID string   `json:"referenceId"`
}

// Instruction is one recipe step. The referenced ingredient ids are
// server-trusted; the client does not check them against the recipe.
type Instruction struct {
	ID                   string         `json:"id"`
	Title                OptionalString `json:"title"`
	Text                 string         `json:"text"`
	IngredientReferences []string       `json:"ingredientReferences"`
}

// BaseRecipe is the recipe summary returned by listing endpoints and
// embedded in mealplans.
type BaseRecipe struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	GroupID     string         `json:"groupId"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Image       *string        `json:"image"`
	RecipeYield *string        `json:"recipeYield"`
	OriginalURL *string        `json:"orgURL"`
	HouseholdID OptionalString `json:"householdId"`
}

// Recipe is the full recipe returned by api/recipes/{id}.
type Recipe struct {
	BaseRecipe

	Tags         []Tag         `json:"tags"`
	DateAdded    string        `json:"dateAdded"`
	Ingredients  []Ingredient  `json:"recipeIngredient"`
	Instructions []Instruction `json:"recipeInstructions"`
}

// ParsedDateAdded returns the DateAdded field as time.Time when possible.
func (r Recipe) ParsedDateAdded() time.Time {
	return parseDate(r.DateAdded)
}

// RecipesResponse is the paged envelope for api/recipes. Items keep the
// server-returned order.
type RecipesResponse struct {
	Items []BaseRecipe `json:"items"`
}

// MealplanEntryType categorizes a planned meal.
type MealplanEntryType string

const (
	EntryTypeDinner    MealplanEntryType = "dinner"
	EntryTypeLunch     MealplanEntryType = "lunch"
	EntryTypeBreakfast MealplanEntryType = "breakfast"
	EntryTypeSide      MealplanEntryType = "side"
)

// UnmarshalJSON implements json.Unmarshaler. Values outside the four known
// entry types fail decoding.
func (t *MealplanEntryType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := MealplanEntryType(raw); v {
	case EntryTypeDinner, EntryTypeLunch, EntryTypeBreakfast, EntryTypeSide:
		*t = v
		return nil
	}
	return fmt.Errorf("unknown mealplan entry type %q", raw)
}

// Mealplan is one planned meal. Title and Description are only populated
// for note entries; Recipe is only populated for recipe entries.
type Mealplan struct {
	ID          int64             `json:"id"`
	UserID      string            `json:"userId"`
	GroupID     string            `json:"groupId"`
	EntryType   MealplanEntryType `json:"entryType"`
	Date        string            `json:"date"`
	Title       OptionalString    `json:"title"`
	Description OptionalString    `json:"text"`
	Recipe      *BaseRecipe       `json:"recipe"`
	HouseholdID OptionalString    `json:"householdId"`
}

// ParsedDate returns the plan date as time.Time when possible.
func (m Mealplan) ParsedDate() time.Time {
	return parseDate(m.Date)
}

// MealplanResponse is the paged envelope for the mealplans endpoint.
type MealplanResponse struct {
	Items []Mealplan `json:"items"`
}

// ShoppingList is a named list container.
type ShoppingList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShoppingListsResponse is the paged envelope for shopping/lists.
type ShoppingListsResponse struct {
	Items []ShoppingList `json:"items"`
}

// ShoppingItem is one line on a shopping list. Position defines the
// display order within the list.
type ShoppingItem struct {
	ID            string   `json:"id"`
	ListID        string   `json:"shoppingListId"`
	Note          string   `json:"note"`
	Display       string   `json:"display"`
	Checked       bool     `json:"checked"`
	Position      int      `json:"position"`
	IsFood        *bool    `json:"isFood"`
	DisableAmount *bool    `json:"disableAmount"`
	Quantity      float64  `json:"quantity"`
	LabelID       *string  `json:"labelId"`
	FoodID        *string  `json:"foodId"`
	UnitID        *string  `json:"unitId"`
}

// ShoppingItemsResponse is the paged envelope for shopping/items.
type ShoppingItemsResponse struct {
	Items []ShoppingItem `json:"items"`
}

// MutateShoppingItem is the write-only payload for creating or updating a
// shopping item. Fields left nil are omitted from the payload entirely,
// which the server reads as "leave unchanged", not "clear the value".
type MutateShoppingItem struct {
	ID            *string  `json:"id,omitempty"`
	ListID        *string  `json:"shoppingListId,omitempty"`
	Note          *string  `json:"note,omitempty"`
	Display       *string  `json:"display,omitempty"`
	Checked       *bool    `json:"checked,omitempty"`
	Position      *int     `json:"position,omitempty"`
	IsFood        *bool    `json:"isFood,omitempty"`
	DisableAmount *bool    `json:"disableAmount,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	LabelID       *string  `json:"labelId,omitempty"`
	FoodID        *string  `json:"foodId,omitempty"`
	UnitID        *string  `json:"unitId,omitempty"`
}

// Statistics mirrors the scoped statistics endpoint.
type Statistics struct {
	TotalRecipes    int `json:"totalRecipes"`
	TotalUsers      int `json:"totalUsers"`
	TotalCategories int `json:"totalCategories"`
	TotalTags       int `json:"totalTags"`
	TotalTools      int `json:"totalTools"`
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
