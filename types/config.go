package types

// AppConfig holds the application settings that live outside the library document.
type AppConfig struct {
	DataDir    string    `mapstructure:"data_dir" json:"data_dir"`       // Where the store file lives
	StoreName  string    `mapstructure:"store_name" json:"store_name"`   // Store file name without .json
	InstallDir string    `mapstructure:"install_dir" json:"install_dir"` // Where wishlist archives are extracted
	Log        LogConfig `mapstructure:"log" json:"log"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level      string `mapstructure:"level" json:"level"`   // debug, info, warn, error
	Format     string `mapstructure:"format" json:"format"` // console or json
	File       string `mapstructure:"file" json:"file"`     // empty logs to stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" json:"max_age_days"`
	Compress   bool   `mapstructure:"compress" json:"compress"`
}
