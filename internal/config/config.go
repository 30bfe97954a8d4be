// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

// LoggingConfig contains all logging pipeline related settings.
type LoggingConfig struct {
	AppName   string `mapstructure:"app_name" validate:"required"`
	Level     string `mapstructure:"level" validate:"required,oneof=debug info warning warn error critical"`
	Dir       string `mapstructure:"dir" validate:"required"`
	Console   bool   `mapstructure:"console"`
	Propagate bool   `mapstructure:"propagate"`
	QueueSize int    `mapstructure:"queue_size" validate:"gte=0"`
}
