package app

import (
	"context"
	"log"
	"time"

	"ladle/internal/mealie"
	"ladle/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the server is unreachable. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, client mealie.Browser, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, store, client); err != nil {
				failures++
				log.Printf("poll failed: %v", err)
			} else {
				failures = 0
			}

			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh performs one full poll and stores the result. A failure on any
// call abandons the whole poll so the snapshot stays internally consistent.
func refresh(ctx context.Context, store *state.Store, client mealie.Browser) error {
	about, err := client.GetAbout(ctx)
	if err != nil {
		store.Update(nil, err)
		return err
	}
	today, err := client.GetMealplanToday(ctx)
	if err != nil {
		store.Update(nil, err)
		return err
	}
	recipes, err := client.GetRecipes(ctx)
	if err != nil {
		store.Update(nil, err)
		return err
	}
	lists, err := client.GetShoppingLists(ctx)
	if err != nil {
		store.Update(nil, err)
		return err
	}
	items := make(map[string][]mealie.ShoppingItem, len(lists.Items))
	for _, list := range lists.Items {
		listItems, err := client.GetShoppingItems(ctx, list.ID)
		if err != nil {
			store.Update(nil, err)
			return err
		}
		items[list.ID] = listItems.Items
	}
	stats, err := client.GetStatistics(ctx)
	if err != nil {
		store.Update(nil, err)
		return err
	}

	store.Update(&state.Data{
		ServerVersion: about.Version,
		Today:         today,
		Recipes:       recipes.Items,
		Lists:         lists.Items,
		Items:         items,
		Stats:         stats,
	}, nil)
	return nil
}

// calculateBackoff doubles the poll interval per consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
