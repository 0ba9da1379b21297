package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/frenchdeck/internal/logs"
)

// Config represents the application configuration
type Config struct {
	LogLevel string `toml:"log_level"`
	Color    bool   `toml:"color"`
	Seed     int64  `toml:"seed"` // 0 seeds from the clock
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Color:    true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "frenchdeck", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	_, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := saveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetSeed stores the seed used for random card selection
func SetSeed(seed int64) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.Seed = seed
	return saveConfig(config)
}

// SetLogLevel stores the default log level. Unknown level names are rejected.
func SetLogLevel(level string) error {
	if _, err := logs.ParseLevel(level); err != nil {
		return err
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.LogLevel = level
	return saveConfig(config)
}

// SetColor enables or disables colored output
func SetColor(enabled bool) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.Color = enabled
	return saveConfig(config)
}
