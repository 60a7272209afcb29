package main

import (
	"context"
	"strings"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// wailsUI implements UIProvider with the Wails runtime. ctx is set on startup.
type wailsUI struct {
	ctx context.Context
}

func (w *wailsUI) OpenFileDialog(title string, filters []string) (string, error) {
	opts := wailsRuntime.OpenDialogOptions{Title: title}
	for _, pattern := range filters {
		opts.Filters = append(opts.Filters, wailsRuntime.FileFilter{
			DisplayName: filterName(pattern),
			Pattern:     pattern,
		})
	}
	return wailsRuntime.OpenFileDialog(w.ctx, opts)
}

func (w *wailsUI) OpenDirectoryDialog(title string) (string, error) {
	return wailsRuntime.OpenDirectoryDialog(w.ctx, wailsRuntime.OpenDialogOptions{Title: title})
}

func (w *wailsUI) EventsEmit(eventName string, args ...interface{}) {
	wailsRuntime.EventsEmit(w.ctx, eventName, args...)
}

func (w *wailsUI) BrowserOpenURL(url string) {
	wailsRuntime.BrowserOpenURL(w.ctx, url)
}

// filterName turns "*.jpg;*.png" into "Files (jpg, png)".
func filterName(pattern string) string {
	parts := strings.Split(pattern, ";")
	for i, p := range parts {
		parts[i] = strings.TrimPrefix(strings.TrimSpace(p), "*.")
	}
	if len(parts) == 1 && parts[0] == "exe" {
		return "Executables (exe)"
	}
	return "Files (" + strings.Join(parts, ", ") + ")"
}
