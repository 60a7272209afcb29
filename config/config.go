package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go-game-library/constants"
	"go-game-library/store"
	"go-game-library/types"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigManager handles loading/saving
type ConfigManager struct {
	Config     *types.AppConfig
	ConfigPath string
	Mu         sync.RWMutex // Thread-safety for UI reads/writes

	dataDirOverride string
	v               *viper.Viper
}

// NewConfigManager creates a manager. A non-empty dataDir takes precedence
// over GAMELIB_DATA_DIR and the config file.
func NewConfigManager(dataDir string) *ConfigManager {
	return &ConfigManager{
		Config:          &types.AppConfig{},
		dataDirOverride: dataDir,
	}
}

// DefaultDataDir returns the per-user application data directory.
func DefaultDataDir() string {
	return store.DefaultDir()
}

// DefaultInstallDir returns where installed wishlist games are extracted.
func DefaultInstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(DefaultDataDir(), constants.GamesDir)
	}
	return filepath.Join(home, constants.GamesDir, constants.AppName)
}

// DefaultLogFile returns the log file used by the desktop app when none is configured.
func DefaultLogFile(dataDir string) string {
	return filepath.Join(dataDir, constants.LogsDir, constants.LogFileName)
}

// Load resolves the configuration from defaults, <data dir>/config.yaml,
// a .env file and GAMELIB_* environment variables, in increasing priority.
func (cm *ConfigManager) Load() error {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()

	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dataDir := v.GetString("data_dir")
	if cm.dataDirOverride != "" {
		dataDir = cm.dataDirOverride
	}

	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	if cm.dataDirOverride != "" {
		v.Set("data_dir", cm.dataDirOverride)
	}

	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cm.v = v
	cm.Config = &cfg
	cm.ConfigPath = filepath.Join(dataDir, constants.ConfigFileName+".yaml")
	return nil
}

// GetConfig returns a copy of the current config (Thread-Safe)
func (cm *ConfigManager) GetConfig() types.AppConfig {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	return *cm.Config
}

// GetInstallDir returns the directory wishlist archives are installed into.
func (cm *ConfigManager) GetInstallDir() string {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	return cm.Config.InstallDir
}

// SetInstallDir changes the install directory and writes config.yaml.
func (cm *ConfigManager) SetInstallDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("install directory is empty")
	}
	cm.Mu.Lock()
	defer cm.Mu.Unlock()

	if cm.v == nil {
		return errors.New("config not loaded")
	}
	if err := os.MkdirAll(filepath.Dir(cm.ConfigPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	prev := cm.v.GetString("install_dir")
	cm.v.Set("install_dir", dir)
	if err := cm.v.WriteConfigAs(cm.ConfigPath); err != nil {
		cm.v.Set("install_dir", prev)
		return fmt.Errorf("failed to write config: %w", err)
	}
	cm.Config.InstallDir = dir
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("store_name", constants.DefaultStoreName)
	v.SetDefault("install_dir", DefaultInstallDir())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
}

func validateConfig(cfg *types.AppConfig) error {
	if strings.TrimSpace(cfg.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	if strings.TrimSpace(cfg.StoreName) == "" {
		return errors.New("store_name is required")
	}
	if strings.ContainsAny(cfg.StoreName, `/\`) {
		return fmt.Errorf("store_name %q must be a file name, not a path", cfg.StoreName)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", cfg.Log.Format)
	}
	return nil
}
