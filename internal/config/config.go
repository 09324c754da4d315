package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	ServiceURL     string        `mapstructure:"service_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	OutputDir      string        `mapstructure:"output_dir"`
	ChromePath     string        `mapstructure:"chrome_path"`
	PrintTimeout   time.Duration `mapstructure:"print_timeout"`
	LogFile        string        `mapstructure:"log_file"`
	DefaultStyle   int           `mapstructure:"default_style"` // 1, 2 or 3
}

// ValidKeys lists the keys accepted by Set
var ValidKeys = []string{
	"service_url",
	"request_timeout",
	"output_dir",
	"chrome_path",
	"print_timeout",
	"log_file",
	"default_style",
}

var AppConfig *Config

// configDirOverride lets tests point the config at a temp directory
var configDirOverride string

// Initialize loads or creates the configuration file
func Initialize() error {
	// .env is optional
	_ = godotenv.Load()

	configDir, err := Dir()
	if err != nil {
		return err
	}
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.Reset()
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("autodoc")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("service_url", "http://127.0.0.1:8000")
	viper.SetDefault("request_timeout", "120s")
	viper.SetDefault("output_dir", ".")
	viper.SetDefault("chrome_path", "")
	viper.SetDefault("print_timeout", "60s")
	viper.SetDefault("log_file", filepath.Join(configDir, "autodoc.log"))
	viper.SetDefault("default_style", 1)

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.DefaultStyle < 1 || cfg.DefaultStyle > 3 {
		cfg.DefaultStyle = 1
	}
	AppConfig = cfg

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Autodoc Configuration
# Generation service base URL
service_url: http://127.0.0.1:8000
request_timeout: 120s

# Printing (headless Chrome)
output_dir: .
chrome_path: ""
print_timeout: 60s

# Resume preview template: 1, 2 or 3
default_style: 1
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// IsValidKey reports whether key may be passed to Set
func IsValidKey(key string) bool {
	for _, k := range ValidKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Dir returns the directory holding the config file
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".autodoc"), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	dir, _ := Dir()
	return filepath.Join(dir, "config.yaml")
}
