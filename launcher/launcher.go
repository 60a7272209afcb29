package launcher

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go-game-library/constants"
	"go-game-library/library"
	"go-game-library/types"
	"go-game-library/utils"
)

// ErrExecutableMissing is returned when the game's file no longer exists.
var ErrExecutableMissing = errors.New("executable not found")

// LibraryProvider records plays in the library.
type LibraryProvider interface {
	MarkPlayed(path string) (types.Library, error)
	GetLibrary() (types.Library, error)
}

// ProcessStarter starts and reveals files through the OS.
type ProcessStarter interface {
	Start(path string, onExit func(error)) error
	Reveal(path string)
}

// UIProvider defines the UI interactions needed around a launch.
type UIProvider interface {
	EventsEmit(eventName string, args ...interface{})
	BrowserOpenURL(url string)
}

// Logger defines logging for the launcher.
type Logger interface {
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

// Event payload sent with game-started, game-exited and launch-failed.
type Event struct {
	Path  string `json:"path"`
	Error string `json:"error,omitempty"`
}

// Launcher handles the orchestration of launching a game.
type Launcher struct {
	lib     LibraryProvider
	starter ProcessStarter
	ui      UIProvider
	logger  Logger
}

// New creates a new Launcher.
func New(lib LibraryProvider, starter ProcessStarter, ui UIProvider, logger Logger) *Launcher {
	return &Launcher{
		lib:     lib,
		starter: starter,
		ui:      ui,
		logger:  logger,
	}
}

// Launch starts the game at path and stamps its lastPlayed time. A path
// that is not registered in the library still launches.
func (l *Launcher) Launch(path string) (types.Library, error) {
	if strings.TrimSpace(path) == "" {
		return l.current(), fmt.Errorf("%w: empty game path", library.ErrInvalidInput)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return l.current(), fmt.Errorf("%s: %w", path, ErrExecutableMissing)
		}
		return l.current(), fmt.Errorf("failed to check %s: %w", path, err)
	}

	l.logger.Infof("Launch: starting %s", path)
	err := l.starter.Start(path, func(exitErr error) {
		ev := Event{Path: path}
		if exitErr != nil {
			ev.Error = exitErr.Error()
		}
		l.ui.EventsEmit(constants.EventGameExited, ev)
	})
	if err != nil {
		l.logger.Errorf("Launch: %s failed: %v", path, err)
		l.ui.EventsEmit(constants.EventLaunchFailed, Event{Path: path, Error: err.Error()})
		return l.current(), fmt.Errorf("failed to launch game: %w", err)
	}
	l.ui.EventsEmit(constants.EventGameStarted, Event{Path: path})

	lib, err := l.lib.MarkPlayed(path)
	if errors.Is(err, library.ErrNotFound) {
		l.logger.Infof("Launch: %s is not in the library, lastPlayed not recorded", path)
		return lib, nil
	}
	return lib, err
}

// OpenURL opens an external link in the default browser, adding https://
// when the scheme is missing. Empty links are ignored.
func (l *Launcher) OpenURL(raw string) {
	url := utils.NormalizeURL(raw)
	if url == "" {
		return
	}
	l.logger.Infof("Opening %s", url)
	l.ui.BrowserOpenURL(url)
}

// ShowInFolder reveals path in the OS file manager.
func (l *Launcher) ShowInFolder(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", library.ErrInvalidInput)
	}
	l.starter.Reveal(path)
	return nil
}

func (l *Launcher) current() types.Library {
	lib, err := l.lib.GetLibrary()
	if err != nil {
		l.logger.Warnf("Launch: failed to read library: %v", err)
	}
	return lib
}
