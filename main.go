package main

import (
	"embed"

	"go-game-library/cmd"
	"go-game-library/constants"
	"go-game-library/logger"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	_ "go.uber.org/automaxprocs"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cmd.Execute(runGUI)
}

func runGUI(env *cmd.Env) error {
	app := NewApp(env, &wailsUI{})

	// Create application with options
	return wails.Run(&options.App{
		Title:     constants.AppName,
		Width:     1280,
		Height:    800,
		MinWidth:  900,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           logger.NewWailsLogger(env.Logger),
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})
}
