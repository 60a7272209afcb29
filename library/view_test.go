package library

import (
	"testing"

	"go-game-library/types"
)

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = name(it)
	}
	return out
}

func gameName(g types.Game) string { return g.Name }

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sampleGames() []types.Game {
	rpg, racing := "RPG", "Racing"
	return []types.Game{
		{ID: 1, Name: "zelda", Added: "2024-01-03T00:00:00.000Z", LastPlayed: "2024-02-01T00:00:00.000Z", Category: &rpg},
		{ID: 2, Name: "Asteroids", Added: "2024-01-01T00:00:00.000Z"},
		{ID: 3, Name: "Mario Kart", Added: "2024-01-02T00:00:00.000Z", LastPlayed: "2024-03-01T00:00:00.000Z", Category: &racing, IsFavorite: true},
		{ID: 4, Name: "baldur's Gate", Added: "2024-01-04T00:00:00.000Z", Category: &rpg},
	}
}

func TestFilterGames(t *testing.T) {
	games := sampleGames()

	tests := []struct {
		name string
		opts types.ViewOptions
		want []string
	}{
		{"All by name", types.ViewOptions{Category: CategoryAll}, []string{"Mario Kart", "Asteroids", "baldur's Gate", "zelda"}},
		{"Empty category means all", types.ViewOptions{}, []string{"Mario Kart", "Asteroids", "baldur's Gate", "zelda"}},
		{"Category filter", types.ViewOptions{Category: "RPG"}, []string{"baldur's Gate", "zelda"}},
		{"Date added newest first", types.ViewOptions{Sort: SortDateAdded}, []string{"Mario Kart", "baldur's Gate", "zelda", "Asteroids"}},
		{"Last played, never played last", types.ViewOptions{Sort: SortLastPlayed}, []string{"Mario Kart", "zelda", "Asteroids", "baldur's Gate"}},
		{"Unknown category", types.ViewOptions{Category: "Puzzle"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(FilterGames(games, tt.opts), gameName)
			if !equalNames(got, tt.want) {
				t.Errorf("FilterGames() = %v, want %v", got, tt.want)
			}
		})
	}

	if games[0].Name != "zelda" {
		t.Error("FilterGames must not reorder its input")
	}
}

func TestSortWishlist(t *testing.T) {
	items := []types.WishlistItem{
		{ID: 1, Name: "celeste", Added: "2024-01-01T00:00:00.000Z"},
		{ID: 2, Name: "Hades", Added: "2024-01-03T00:00:00.000Z"},
		{ID: 3, Name: "Outer Wilds", Added: "2024-01-02T00:00:00.000Z", IsFavorite: true},
	}
	name := func(w types.WishlistItem) string { return w.Name }

	if got, want := names(SortWishlist(items, SortName), name), []string{"Outer Wilds", "celeste", "Hades"}; !equalNames(got, want) {
		t.Errorf("by name = %v, want %v", got, want)
	}
	if got, want := names(SortWishlist(items, SortDateAdded), name), []string{"Outer Wilds", "Hades", "celeste"}; !equalNames(got, want) {
		t.Errorf("by date = %v, want %v", got, want)
	}
}
