package types

// Library is the value stored under the "library" key.
type Library struct {
	Installed  []Game         `json:"installed"`
	Wishlist   []WishlistItem `json:"wishlist"`
	Categories []string       `json:"categories"`
}

// Settings is the value stored under the "settings" key.
type Settings struct {
	Theme string `json:"theme"`
}

// Normalize replaces nil lists with empty ones so they serialize as [].
func (l *Library) Normalize() {
	if l.Installed == nil {
		l.Installed = []Game{}
	}
	if l.Wishlist == nil {
		l.Wishlist = []WishlistItem{}
	}
	if l.Categories == nil {
		l.Categories = []string{}
	}
}

// Clone returns a copy whose lists can be mutated without touching l.
func (l Library) Clone() Library {
	out := Library{
		Installed:  make([]Game, len(l.Installed)),
		Wishlist:   make([]WishlistItem, len(l.Wishlist)),
		Categories: make([]string, len(l.Categories)),
	}
	copy(out.Installed, l.Installed)
	copy(out.Wishlist, l.Wishlist)
	copy(out.Categories, l.Categories)
	return out
}

// HasCategory reports whether name is an exact match for a category.
func (l Library) HasCategory(name string) bool {
	for _, c := range l.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Mutation statuses reported to the frontend.
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
)

// MutationResult is what the UI receives after a mutation: the document to
// re-render and whether the targeted entity existed.
type MutationResult struct {
	Library Library `json:"library"`
	Status  string  `json:"status"`
}

// ViewOptions are the filter and sort controls of the game grid.
type ViewOptions struct {
	Category string `json:"category"` // "" or "All" shows everything
	Sort     string `json:"sort"`     // name, dateAdded or lastPlayed
}
