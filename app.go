package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go-game-library/cmd"
	"go-game-library/constants"
	"go-game-library/icon"
	"go-game-library/installer"
	"go-game-library/launcher"
	"go-game-library/library"
	"go-game-library/settingsrv"
	"go-game-library/types"
)

// UIProvider is what the services need from the desktop window.
type UIProvider interface {
	OpenFileDialog(title string, filters []string) (string, error)
	OpenDirectoryDialog(title string) (string, error)
	EventsEmit(eventName string, args ...interface{})
	BrowserOpenURL(url string)
}

// App struct
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	env    *cmd.Env
	ui     UIProvider

	settings  *settingsrv.Service
	launcher  *launcher.Launcher
	installer *installer.Service
}

// NewApp creates a new App application struct
func NewApp(env *cmd.Env, ui UIProvider) *App {
	return &App{
		env:       env,
		ui:        ui,
		settings:  settingsrv.New(env.Store, ui),
		launcher:  launcher.New(env.Library, env.Shell, ui, env.Logger),
		installer: installer.New(env.Library, env.Config, ui, env.Logger, icon.Extract),
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx, a.cancel = context.WithCancel(ctx)
	if b, ok := a.ui.(*wailsUI); ok {
		b.ctx = ctx
	}

	err := a.env.Store.Watch(a.ctx, func() {
		lib, err := a.env.Library.GetLibrary()
		if err != nil {
			a.env.Logger.Warnf("Reloaded library is unreadable: %v", err)
			return
		}
		a.ui.EventsEmit(constants.EventLibraryChanged, lib)
	})
	if err != nil {
		a.env.Logger.Warnf("External edits will not be picked up: %v", err)
	}
}

func (a *App) shutdown(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	_ = a.env.Logger.Sync()
}

// GetLibrary returns the whole library document.
func (a *App) GetLibrary() (types.Library, error) {
	return a.env.Library.GetLibrary()
}

// GetGames returns the installed games filtered and sorted for the grid.
func (a *App) GetGames(opts types.ViewOptions) ([]types.Game, error) {
	lib, err := a.env.Library.GetLibrary()
	if err != nil {
		return nil, err
	}
	return library.FilterGames(lib.Installed, opts), nil
}

// GetWishlist returns the wishlist in display order.
func (a *App) GetWishlist(sortBy string) ([]types.WishlistItem, error) {
	lib, err := a.env.Library.GetLibrary()
	if err != nil {
		return nil, err
	}
	return library.SortWishlist(lib.Wishlist, sortBy), nil
}

// AddGame asks for an executable and registers it under its file name.
// Cancelling the dialog returns the library unchanged.
func (a *App) AddGame() (types.Library, error) {
	path, err := a.settings.SelectGameExecutable()
	if err != nil {
		return types.Library{}, err
	}
	if path == "" {
		return a.env.Library.GetLibrary()
	}
	return a.AddGameFromPath(path, "")
}

// AddGameFromPath registers path. An empty name falls back to the file name.
func (a *App) AddGameFromPath(path, name string) (types.Library, error) {
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	in := types.GameInput{Path: path, Name: name}
	if uri, err := icon.Extract(path); err == nil {
		in.Image = &uri
	} else {
		a.env.Logger.Debugf("No icon for %s: %v", path, err)
	}
	return a.env.Library.AddGame(in)
}

// UpdateGame saves edits to a game.
func (a *App) UpdateGame(game types.Game) (types.MutationResult, error) {
	return result(a.env.Library.UpdateGame(game))
}

// AddWishlistItem adds a wishlist entry.
func (a *App) AddWishlistItem(in types.WishlistInput) (types.Library, error) {
	return a.env.Library.AddWishlistItem(in)
}

// UpdateWishlistItem saves edits to a wishlist entry.
func (a *App) UpdateWishlistItem(item types.WishlistItem) (types.MutationResult, error) {
	return result(a.env.Library.UpdateWishlistItem(item))
}

// DeleteItem removes a game or wishlist entry. kind is game, wishlist or
// empty for either.
func (a *App) DeleteItem(kind string, id int64) (types.MutationResult, error) {
	k, ok := types.ParseEntityKind(kind)
	if !ok {
		lib, err := a.env.Library.GetLibrary()
		if err != nil {
			a.env.Logger.Warnf("DeleteItem: failed to read library: %v", err)
		}
		return types.MutationResult{Library: lib, Status: types.StatusOK}, fmt.Errorf("%w: unknown kind %q", library.ErrInvalidInput, kind)
	}
	return result(a.env.Library.Delete(k, id))
}

// AddCategory creates a category.
func (a *App) AddCategory(name string) (types.Library, error) {
	return a.env.Library.AddCategory(name)
}

// DeleteCategory removes a category and uncategorizes its games.
func (a *App) DeleteCategory(name string) (types.MutationResult, error) {
	return result(a.env.Library.DeleteCategory(name))
}

// LaunchGame starts a game and records the play.
func (a *App) LaunchGame(path string) (types.MutationResult, error) {
	return result(a.launcher.Launch(path))
}

// InstallWishlistItem installs the item from its downloaded archive.
func (a *App) InstallWishlistItem(id int64) (types.MutationResult, error) {
	return result(a.installer.Install(id))
}

// OpenExternal opens a store page or other link in the browser.
func (a *App) OpenExternal(url string) {
	a.launcher.OpenURL(url)
}

// ShowInFolder reveals a game in the OS file manager.
func (a *App) ShowInFolder(path string) error {
	return a.launcher.ShowInFolder(path)
}

// GetSettings returns the UI settings.
func (a *App) GetSettings() (types.Settings, error) {
	return a.settings.GetSettings()
}

// SetTheme stores the UI theme.
func (a *App) SetTheme(theme string) (types.Settings, error) {
	return a.settings.SetTheme(theme)
}

// SelectImage asks for a custom cover and returns it as a data URL.
func (a *App) SelectImage() (string, error) {
	path, err := a.settings.SelectImage()
	if err != nil || path == "" {
		return "", err
	}
	return icon.FromFile(path)
}

// SelectFile asks for any file, such as a downloaded archive.
func (a *App) SelectFile() (string, error) {
	return a.settings.SelectFile()
}

// GetInstallDir returns where wishlist archives are installed.
func (a *App) GetInstallDir() string {
	return a.env.Config.GetInstallDir()
}

// SelectInstallDir asks for a new install directory and saves it.
func (a *App) SelectInstallDir() (string, error) {
	dir, err := a.ui.OpenDirectoryDialog("Select Install Directory")
	if err != nil || dir == "" {
		return "", err
	}
	if err := a.env.Config.SetInstallDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// result maps a not-found outcome to a status the frontend can show
// instead of an error.
func result(lib types.Library, err error) (types.MutationResult, error) {
	if errors.Is(err, library.ErrNotFound) {
		return types.MutationResult{Library: lib, Status: types.StatusNotFound}, nil
	}
	return types.MutationResult{Library: lib, Status: types.StatusOK}, err
}
