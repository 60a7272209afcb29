package settingsrv

import (
	"fmt"
	"runtime"
	"strings"

	"go-game-library/constants"
	"go-game-library/library"
	"go-game-library/types"
)

// Image types accepted as custom game artwork.
var ImageExtensions = []string{"jpg", "jpeg", "png", "webp"}

// SettingsStore persists the settings document key.
type SettingsStore interface {
	Decode(key string, out any) (bool, error)
	Set(key string, value any) error
}

// UIProvider defines the UI interactions needed for settings and file picking.
type UIProvider interface {
	OpenFileDialog(title string, filters []string) (string, error)
}

// Service handles settings and the file pickers.
type Service struct {
	store SettingsStore
	ui    UIProvider
	goos  string
}

// New creates a new Settings service.
func New(store SettingsStore, ui UIProvider) *Service {
	return &Service{
		store: store,
		ui:    ui,
		goos:  runtime.GOOS,
	}
}

// GetSettings returns the stored settings, filling in the default theme.
func (s *Service) GetSettings() (types.Settings, error) {
	var settings types.Settings
	if _, err := s.store.Decode(constants.KeySettings, &settings); err != nil {
		return types.Settings{Theme: constants.DefaultTheme}, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
	return settings, nil
}

// SetTheme stores the UI theme.
func (s *Service) SetTheme(theme string) (types.Settings, error) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		current, _ := s.GetSettings()
		return current, fmt.Errorf("%w: empty theme", library.ErrInvalidInput)
	}
	settings, err := s.GetSettings()
	if err != nil {
		return settings, err
	}
	prev := settings
	settings.Theme = theme
	if err := s.store.Set(constants.KeySettings, settings); err != nil {
		return prev, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}

// SelectGameExecutable asks the user for a game executable. Cancelling
// returns an empty path and no error.
func (s *Service) SelectGameExecutable() (string, error) {
	var filters []string
	if s.goos == constants.OSWindows {
		filters = []string{"*.exe"}
	}
	return s.ui.OpenFileDialog("Select Game Executable", filters)
}

// SelectImage asks the user for an image file.
func (s *Service) SelectImage() (string, error) {
	patterns := make([]string, len(ImageExtensions))
	for i, ext := range ImageExtensions {
		patterns[i] = "*." + ext
	}
	return s.ui.OpenFileDialog("Select Image", []string{strings.Join(patterns, ";")})
}

// SelectFile asks the user for any file, such as a downloaded archive.
func (s *Service) SelectFile() (string, error) {
	return s.ui.OpenFileDialog("Select File", nil)
}
