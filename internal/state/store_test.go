package state

import (
	"errors"
	"testing"

	"ladle/internal/mealie"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	store := &Store{}

	store.Update(&Data{
		ServerVersion: "2.8.0",
		Today:         []mealie.Mealplan{{ID: 1, EntryType: mealie.EntryTypeDinner}},
		Lists:         []mealie.ShoppingList{{ID: "l1", Name: "Groceries"}},
		Items: map[string][]mealie.ShoppingItem{
			"l1": {{ID: "i1", Note: "milk", Position: 0}},
		},
		Stats: &mealie.Statistics{TotalRecipes: 12},
	}, nil)

	snap := store.Snapshot()
	if !snap.HasData || snap.ServerVersion != "2.8.0" {
		t.Fatalf("snapshot = %#v, want data with version 2.8.0", snap)
	}
	if len(snap.Today) != 1 || snap.Today[0].ID != 1 {
		t.Fatalf("today = %#v, want one dinner plan", snap.Today)
	}
	if snap.Stats == nil || snap.Stats.TotalRecipes != 12 {
		t.Fatalf("stats = %#v, want 12 recipes", snap.Stats)
	}
	if snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatalf("snapshot = %#v, want clean poll state", snap)
	}
}

func TestStore_ErrorKeepsPreviousData(t *testing.T) {
	store := &Store{}
	store.Update(&Data{Lists: []mealie.ShoppingList{{ID: "l1", Name: "Groceries"}}}, nil)

	pollErr := errors.New("poll failed")
	store.Update(nil, pollErr)
	store.Update(nil, pollErr)

	snap := store.Snapshot()
	if len(snap.Lists) != 1 {
		t.Fatalf("lists = %#v, want data preserved across failures", snap.Lists)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded poll error")
	}
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsOffline() {
		t.Fatalf("IsOffline = false, want true after two failures")
	}
}

func TestStore_SnapshotReturnsCopies(t *testing.T) {
	store := &Store{}
	store.Update(&Data{
		Today: []mealie.Mealplan{{ID: 1}},
		Items: map[string][]mealie.ShoppingItem{"l1": {{ID: "i1"}}},
	}, nil)

	snap := store.Snapshot()
	snap.Today[0].ID = 99
	snap.Items["l1"][0].ID = "mutated"

	fresh := store.Snapshot()
	if fresh.Today[0].ID != 1 {
		t.Fatalf("today mutated through snapshot copy: %#v", fresh.Today)
	}
	if fresh.Items["l1"][0].ID != "i1" {
		t.Fatalf("items mutated through snapshot copy: %#v", fresh.Items)
	}
}
