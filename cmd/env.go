package cmd

import (
	"fmt"

	"go-game-library/config"
	"go-game-library/library"
	"go-game-library/logger"
	"go-game-library/shell"
	"go-game-library/store"

	"go.uber.org/zap"
)

// Env holds the services shared by the desktop app and the command line.
type Env struct {
	Config  *config.ConfigManager
	Logger  *zap.SugaredLogger
	Store   *store.Store
	Library *library.Service
	Shell   *shell.Launcher
}

// Options select how Bootstrap wires the environment.
type Options struct {
	DataDir string // overrides the configured data directory
	LogFile bool   // log to <data dir>/logs when no file is configured
	Verbose bool   // force debug level
}

// Bootstrap loads the configuration, builds the logger and opens the store.
func Bootstrap(opts Options) (*Env, error) {
	cm := config.NewConfigManager(opts.DataDir)
	if err := cm.Load(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := cm.GetConfig()

	logCfg := cfg.Log
	if opts.LogFile && logCfg.File == "" {
		logCfg.File = config.DefaultLogFile(cfg.DataDir)
	}
	if opts.Verbose {
		logCfg.Level = "debug"
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	st, err := store.New(store.Options{
		Dir:      cfg.DataDir,
		Name:     cfg.StoreName,
		Defaults: library.DefaultDocument(),
		Schema:   library.Schema,
		Logger:   log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	log.Debugf("Store: using %s", st.Path())

	return &Env{
		Config:  cm,
		Logger:  log,
		Store:   st,
		Library: library.New(st, log),
		Shell:   shell.New(log),
	}, nil
}
