package types

// Game is an installed, launchable title.
type Game struct {
	ID         int64   `json:"id" validate:"required,gt=0"`
	Name       string  `json:"name" validate:"required"`
	Path       string  `json:"path"`
	Image      *string `json:"image"`                // data URL or path to a user-chosen image
	Added      string  `json:"added"`                // RFC 3339, set once at creation
	LastPlayed string  `json:"lastPlayed,omitempty"` // RFC 3339, set on each launch
	IsFavorite bool    `json:"isFavorite"`
	Category   *string `json:"category"` // nil means uncategorized
}

// GameInput carries what is known about an executable when it is registered.
type GameInput struct {
	Path  string  `json:"path" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Image *string `json:"image"`
}

// WishlistItem is a desired-but-not-installed title.
type WishlistItem struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
	URL        string `json:"url,omitempty"`
	LocalPath  string `json:"localPath,omitempty"`
	Added      string `json:"added"`
	IsFavorite bool   `json:"isFavorite"`
}

// WishlistInput is the payload of the add-to-wishlist form.
type WishlistInput struct {
	Name      string `json:"name" validate:"required"`
	URL       string `json:"url"`
	LocalPath string `json:"localPath"`
}

// EntityKind scopes a delete to one of the library lists.
type EntityKind string

const (
	KindGame     EntityKind = "game"
	KindWishlist EntityKind = "wishlist"
	KindAny      EntityKind = "any" // both lists, as the delete button has always behaved
)

// ParseEntityKind maps user input to an EntityKind.
func ParseEntityKind(s string) (EntityKind, bool) {
	switch EntityKind(s) {
	case KindGame, KindWishlist, KindAny:
		return EntityKind(s), true
	case "":
		return KindAny, true
	}
	return "", false
}
