package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-game-library/constants"
)

func TestNewConfigManager(t *testing.T) {
	cm := NewConfigManager("")
	if cm.Config == nil {
		t.Error("Expected Config to be initialized")
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManager(dir)
	if err := cm.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := cm.GetConfig()
	if cfg.DataDir != dir {
		t.Errorf("Expected data dir %s, got %s", dir, cfg.DataDir)
	}
	if cfg.StoreName != constants.DefaultStoreName {
		t.Errorf("Expected store name %s, got %s", constants.DefaultStoreName, cfg.StoreName)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" || cfg.Log.File != "" {
		t.Errorf("Unexpected log defaults %+v", cfg.Log)
	}
	if !strings.HasSuffix(cfg.InstallDir, filepath.Join(constants.GamesDir, constants.AppName)) &&
		!strings.HasSuffix(cfg.InstallDir, constants.GamesDir) {
		t.Errorf("Unexpected install dir %s", cfg.InstallDir)
	}
	if cm.ConfigPath != filepath.Join(dir, "config.yaml") {
		t.Errorf("Unexpected config path %s", cm.ConfigPath)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "store_name: from-file\ninstall_dir: /games/from-file\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GAMELIB_STORE_NAME", "from-env")
	t.Setenv("GAMELIB_LOG_FORMAT", "json")

	cm := NewConfigManager(dir)
	if err := cm.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg := cm.GetConfig()

	if cfg.StoreName != "from-env" {
		t.Errorf("Environment should override the file, got %s", cfg.StoreName)
	}
	if cfg.InstallDir != "/games/from-file" || cm.GetInstallDir() != "/games/from-file" {
		t.Errorf("Expected install dir from file, got %s", cfg.InstallDir)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Unexpected log config %+v", cfg.Log)
	}
}

func TestLoad_DataDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GAMELIB_DATA_DIR", dir)

	cm := NewConfigManager("")
	if err := cm.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cm.GetConfig().DataDir; got != dir {
		t.Errorf("Expected %s, got %s", dir, got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"GAMELIB_STORE_NAME": "../escape",
		"GAMELIB_LOG_FORMAT": "xml",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if err := NewConfigManager(t.TempDir()).Load(); err == nil {
				t.Errorf("Expected error for %s=%s", key, val)
			}
		})
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewConfigManager(dir).Load(); err == nil {
		t.Error("Expected error for a malformed config file")
	}
}

func TestSetInstallDir(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManager(dir)
	if err := cm.SetInstallDir("/x"); err == nil {
		t.Error("Expected error before Load")
	}
	if err := cm.Load(); err != nil {
		t.Fatal(err)
	}

	if err := cm.SetInstallDir("/mnt/games"); err != nil {
		t.Fatalf("SetInstallDir failed: %v", err)
	}
	if cm.GetInstallDir() != "/mnt/games" {
		t.Errorf("Expected in-memory update, got %s", cm.GetInstallDir())
	}
	if err := cm.SetInstallDir(" "); err == nil {
		t.Error("Expected error for empty dir")
	}

	cm2 := NewConfigManager(dir)
	if err := cm2.Load(); err != nil {
		t.Fatal(err)
	}
	if cm2.GetInstallDir() != "/mnt/games" {
		t.Errorf("Expected persisted install dir, got %s", cm2.GetInstallDir())
	}
}

func TestDefaultLogFile(t *testing.T) {
	got := DefaultLogFile("/data")
	if got != filepath.Join("/data", "logs", "go-game-library.log") {
		t.Errorf("Unexpected log file %s", got)
	}
}
