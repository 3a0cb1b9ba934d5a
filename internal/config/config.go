package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log    LogConfig    `mapstructure:"log"    validate:"required"`
	Export ExportConfig `mapstructure:"export" validate:"required"`
}

// LogConfig contains the logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// ExportConfig contains settings for report exports.
type ExportConfig struct {
	// Dir is the directory export files are written to when the caller
	// does not name an explicit path.
	Dir string `mapstructure:"dir" validate:"required"`
}
