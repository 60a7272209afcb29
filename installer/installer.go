package installer

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"go-game-library/archive"
	"go-game-library/constants"
	"go-game-library/library"
	"go-game-library/types"
	"go-game-library/utils"
)

var (
	// ErrNotInstallable means the wishlist item has no local archive the installer can unpack.
	ErrNotInstallable = errors.New("wishlist item is not installable")
	// ErrNoExecutable means the archive was extracted but held nothing launchable.
	ErrNoExecutable = errors.New("no executable found in archive")
)

// LibraryProvider is the part of the library service the installer drives.
type LibraryProvider interface {
	GetLibrary() (types.Library, error)
	InstallWishlistItem(id int64, exePath string, image *string) (types.Library, error)
}

// ConfigProvider supplies the install location.
type ConfigProvider interface {
	GetInstallDir() string
}

// UIProvider receives progress events.
type UIProvider interface {
	EventsEmit(eventName string, args ...interface{})
}

// Logger defines logging for the installer.
type Logger interface {
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

// IconFunc looks up an image for an executable.
type IconFunc func(exePath string) (string, error)

// Progress is the payload of install-progress events.
type Progress struct {
	ID         int64   `json:"id"`
	Percentage float64 `json:"percentage"`
}

// Service installs wishlist items from their downloaded archives.
type Service struct {
	lib    LibraryProvider
	config ConfigProvider
	ui     UIProvider
	logger Logger
	icon   IconFunc
	goos   string
}

// New creates a new installer Service.
func New(lib LibraryProvider, cfg ConfigProvider, ui UIProvider, logger Logger, icon IconFunc) *Service {
	return &Service{
		lib:    lib,
		config: cfg,
		ui:     ui,
		logger: logger,
		icon:   icon,
		goos:   runtime.GOOS,
	}
}

// Install extracts the archive linked to wishlist item id into the install
// directory and promotes the item to an installed game.
func (s *Service) Install(id int64) (types.Library, error) {
	lib, err := s.lib.GetLibrary()
	if err != nil {
		return lib, err
	}
	item, ok := findWishlistItem(lib, id)
	if !ok {
		return lib, fmt.Errorf("wishlist item %d: %w", id, library.ErrNotFound)
	}
	if strings.TrimSpace(item.LocalPath) == "" {
		return lib, fmt.Errorf("%w: %q has no local file", ErrNotInstallable, item.Name)
	}
	if _, err := archive.DetectFormat(item.LocalPath); err != nil {
		return lib, fmt.Errorf("%w: %v", ErrNotInstallable, err)
	}

	installDir := s.config.GetInstallDir()
	if installDir == "" {
		return lib, fmt.Errorf("%w: install directory is not configured", library.ErrInvalidInput)
	}
	dest := filepath.Join(installDir, utils.SanitizeName(item.Name))

	s.logger.Infof("Install: extracting %s to %s", item.LocalPath, dest)
	files, err := archive.Extract(item.LocalPath, dest, func(p float64) {
		s.ui.EventsEmit(constants.EventInstallProgress, Progress{ID: id, Percentage: p})
	})
	if err != nil {
		return lib, err
	}

	exe := archive.FindExecutable(dest, files, s.goos)
	if exe == "" {
		s.logger.Warnf("Install: no executable among %d files in %s", len(files), dest)
		return lib, fmt.Errorf("%w: %s", ErrNoExecutable, filepath.Base(item.LocalPath))
	}

	var image *string
	if s.icon != nil {
		if uri, err := s.icon(exe); err == nil {
			image = &uri
		} else {
			s.logger.Infof("Install: no icon for %s: %v", exe, err)
		}
	}

	s.logger.Infof("Install: %q installed as %s", item.Name, exe)
	return s.lib.InstallWishlistItem(id, exe, image)
}

func findWishlistItem(lib types.Library, id int64) (types.WishlistItem, bool) {
	for _, w := range lib.Wishlist {
		if w.ID == id {
			return w, true
		}
	}
	return types.WishlistItem{}, false
}
