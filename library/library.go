package library

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-game-library/constants"
	"go-game-library/types"
	"go-game-library/utils"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound means the targeted game, wishlist item or category does not exist.
	// The library returned alongside it is unchanged.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means the request was rejected before anything was written.
	ErrInvalidInput = errors.New("invalid input")
)

// Schema is the JSON schema of the whole persisted document.
//
//go:embed schema.json
var Schema []byte

// Store is the persistence the service needs.
type Store interface {
	Decode(key string, out any) (bool, error)
	Set(key string, value any) error
}

// Logger defines logging for the service.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
}

// DefaultDocument is the document a fresh store starts with.
func DefaultDocument() map[string]any {
	lib := types.Library{}
	lib.Normalize()
	return map[string]any{
		constants.KeyLibrary:  lib,
		constants.KeySettings: types.Settings{Theme: constants.DefaultTheme},
	}
}

// Service applies mutations to the library document. Every mutation is a
// single load, modify, store cycle.
type Service struct {
	store    Store
	logger   Logger
	validate *validator.Validate
	now      func() time.Time

	mu sync.Mutex
}

// New creates a new Library service.
func New(store Store, logger Logger) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// GetLibrary returns the current library.
func (s *Service) GetLibrary() (types.Library, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// AddGame appends a new game. A nil image is fine; icon lookup is best-effort.
func (s *Service) AddGame(in types.GameInput) (types.Library, error) {
	return s.mutate("AddGame", func(lib *types.Library) error {
		if err := s.check(in); err != nil {
			return err
		}
		now := s.now()
		lib.Installed = append(lib.Installed, types.Game{
			ID:    nextID(*lib, now),
			Name:  in.Name,
			Path:  in.Path,
			Image: in.Image,
			Added: utils.FormatTimestamp(now),
		})
		return nil
	})
}

// MarkPlayed stamps lastPlayed on the game registered at path.
func (s *Service) MarkPlayed(path string) (types.Library, error) {
	return s.mutate("MarkPlayed", func(lib *types.Library) error {
		i := indexOfPath(lib.Installed, path)
		if i < 0 {
			return fmt.Errorf("game with path %q: %w", path, ErrNotFound)
		}
		lib.Installed[i].LastPlayed = utils.FormatTimestamp(s.now())
		return nil
	})
}

// UpdateGame replaces the game with the same id. The id, path and added
// timestamp of the stored game are kept.
func (s *Service) UpdateGame(game types.Game) (types.Library, error) {
	return s.mutate("UpdateGame", func(lib *types.Library) error {
		if err := s.check(game); err != nil {
			return err
		}
		i := indexOfGame(lib.Installed, game.ID)
		if i < 0 {
			return fmt.Errorf("game %d: %w", game.ID, ErrNotFound)
		}
		if game.Category != nil && !lib.HasCategory(*game.Category) {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *game.Category)
		}
		stored := lib.Installed[i]
		game.Path = stored.Path
		game.Added = stored.Added
		lib.Installed[i] = game
		return nil
	})
}

// AddWishlistItem appends a new wishlist entry.
func (s *Service) AddWishlistItem(in types.WishlistInput) (types.Library, error) {
	return s.mutate("AddWishlistItem", func(lib *types.Library) error {
		if err := s.check(in); err != nil {
			return err
		}
		now := s.now()
		lib.Wishlist = append(lib.Wishlist, types.WishlistItem{
			ID:        nextID(*lib, now),
			Name:      in.Name,
			URL:       in.URL,
			LocalPath: in.LocalPath,
			Added:     utils.FormatTimestamp(now),
		})
		return nil
	})
}

// UpdateWishlistItem replaces the wishlist entry with the same id, keeping its added timestamp.
func (s *Service) UpdateWishlistItem(item types.WishlistItem) (types.Library, error) {
	return s.mutate("UpdateWishlistItem", func(lib *types.Library) error {
		if err := s.check(item); err != nil {
			return err
		}
		i := indexOfWishlist(lib.Wishlist, item.ID)
		if i < 0 {
			return fmt.Errorf("wishlist item %d: %w", item.ID, ErrNotFound)
		}
		item.Added = lib.Wishlist[i].Added
		lib.Wishlist[i] = item
		return nil
	})
}

// Delete removes the entity with the given id from the list selected by kind.
// KindAny removes matches from both lists in one write.
func (s *Service) Delete(kind types.EntityKind, id int64) (types.Library, error) {
	return s.mutate("Delete", func(lib *types.Library) error {
		removed := 0
		switch kind {
		case types.KindGame, types.KindWishlist, types.KindAny:
		default:
			return fmt.Errorf("%w: unknown entity kind %q", ErrInvalidInput, kind)
		}
		if kind != types.KindWishlist {
			if i := indexOfGame(lib.Installed, id); i >= 0 {
				lib.Installed = append(lib.Installed[:i], lib.Installed[i+1:]...)
				removed++
			}
		}
		if kind != types.KindGame {
			if i := indexOfWishlist(lib.Wishlist, id); i >= 0 {
				lib.Wishlist = append(lib.Wishlist[:i], lib.Wishlist[i+1:]...)
				removed++
			}
		}
		if removed == 0 {
			return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
		}
		return nil
	})
}

// AddCategory appends a category. An exact duplicate is a no-op.
func (s *Service) AddCategory(name string) (types.Library, error) {
	return s.mutate("AddCategory", func(lib *types.Library) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: category name is empty", ErrInvalidInput)
		}
		if lib.HasCategory(name) {
			return errUnchanged
		}
		lib.Categories = append(lib.Categories, name)
		return nil
	})
}

// DeleteCategory removes a category and moves its games back to uncategorized.
func (s *Service) DeleteCategory(name string) (types.Library, error) {
	return s.mutate("DeleteCategory", func(lib *types.Library) error {
		if !lib.HasCategory(name) {
			return fmt.Errorf("category %q: %w", name, ErrNotFound)
		}
		kept := lib.Categories[:0]
		for _, c := range lib.Categories {
			if c != name {
				kept = append(kept, c)
			}
		}
		lib.Categories = kept
		for i := range lib.Installed {
			if c := lib.Installed[i].Category; c != nil && *c == name {
				lib.Installed[i].Category = nil
			}
		}
		return nil
	})
}

// InstallWishlistItem turns a wishlist entry into an installed game in one
// write. The game keeps the entry's name and favorite flag.
func (s *Service) InstallWishlistItem(id int64, exePath string, image *string) (types.Library, error) {
	return s.mutate("InstallWishlistItem", func(lib *types.Library) error {
		if strings.TrimSpace(exePath) == "" {
			return fmt.Errorf("%w: executable path is empty", ErrInvalidInput)
		}
		i := indexOfWishlist(lib.Wishlist, id)
		if i < 0 {
			return fmt.Errorf("wishlist item %d: %w", id, ErrNotFound)
		}
		item := lib.Wishlist[i]
		now := s.now()
		game := types.Game{
			ID:         nextID(*lib, now),
			Name:       item.Name,
			Path:       exePath,
			Image:      image,
			Added:      utils.FormatTimestamp(now),
			IsFavorite: item.IsFavorite,
		}
		lib.Wishlist = append(lib.Wishlist[:i], lib.Wishlist[i+1:]...)
		lib.Installed = append(lib.Installed, game)
		return nil
	})
}

// errUnchanged lets a mutation finish successfully without a write.
var errUnchanged = errors.New("unchanged")

// mutate runs fn on a copy of the library and stores the result. On any
// error the library as it was before fn is returned.
func (s *Service) mutate(op string, fn func(lib *types.Library) error) (types.Library, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return types.Library{}, err
	}

	next := current.Clone()
	if err := fn(&next); err != nil {
		if errors.Is(err, errUnchanged) {
			s.logger.Debugf("%s: nothing to change", op)
			return current, nil
		}
		if errors.Is(err, ErrNotFound) {
			s.logger.Infof("%s: %v", op, err)
		}
		return current, err
	}

	if err := s.store.Set(constants.KeyLibrary, next); err != nil {
		return current, fmt.Errorf("%s: %w", op, err)
	}
	return next, nil
}

func (s *Service) load() (types.Library, error) {
	var lib types.Library
	if _, err := s.store.Decode(constants.KeyLibrary, &lib); err != nil {
		return types.Library{}, fmt.Errorf("failed to load library: %w", err)
	}
	lib.Normalize()
	return lib, nil
}

func (s *Service) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// nextID returns the current Unix millisecond, bumped past every id already
// used in either list so two quick additions never collide.
func nextID(lib types.Library, now time.Time) int64 {
	id := now.UnixMilli()
	for _, g := range lib.Installed {
		if g.ID >= id {
			id = g.ID + 1
		}
	}
	for _, w := range lib.Wishlist {
		if w.ID >= id {
			id = w.ID + 1
		}
	}
	return id
}

func indexOfGame(games []types.Game, id int64) int {
	for i, g := range games {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func indexOfPath(games []types.Game, path string) int {
	for i, g := range games {
		if g.Path == path {
			return i
		}
	}
	return -1
}

func indexOfWishlist(items []types.WishlistItem, id int64) int {
	for i, w := range items {
		if w.ID == id {
			return i
		}
	}
	return -1
}
