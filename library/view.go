package library

import (
	"sort"

	"go-game-library/types"
	"go-game-library/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders offered by the game grid and the wishlist.
const (
	SortName       = "name"
	SortDateAdded  = "dateAdded"
	SortLastPlayed = "lastPlayed"
)

// CategoryAll selects every game regardless of category.
const CategoryAll = "All"

// FilterGames returns the games matching opts.Category, favorites first and
// then ordered by opts.Sort. The input slice is not modified.
func FilterGames(games []types.Game, opts types.ViewOptions) []types.Game {
	out := make([]types.Game, 0, len(games))
	for _, g := range games {
		if opts.Category == "" || opts.Category == CategoryAll {
			out = append(out, g)
			continue
		}
		if g.Category != nil && *g.Category == opts.Category {
			out = append(out, g)
		}
	}

	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}
		switch opts.Sort {
		case SortDateAdded:
			return utils.TimestampMillis(a.Added) > utils.TimestampMillis(b.Added)
		case SortLastPlayed:
			return utils.TimestampMillis(a.LastPlayed) > utils.TimestampMillis(b.LastPlayed)
		default:
			return col.CompareString(a.Name, b.Name) < 0
		}
	})
	return out
}

// SortWishlist returns the wishlist favorites first, then by name or newest addition.
func SortWishlist(items []types.WishlistItem, order string) []types.WishlistItem {
	out := make([]types.WishlistItem, len(items))
	copy(out, items)

	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}
		if order == SortDateAdded {
			return utils.TimestampMillis(a.Added) > utils.TimestampMillis(b.Added)
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
	return out
}
