package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Pascal  PascalConfig  `toml:"pascal" yaml:"pascal"`
	Gateway GatewayConfig `toml:"gateway" yaml:"gateway"`
	Client  ClientConfig  `toml:"client" yaml:"client"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// PascalConfig holds the calculator gRPC service configuration
type PascalConfig struct {
	Host             string `toml:"host" yaml:"host"`
	Port             int    `toml:"port" yaml:"port"`
	EnableReflection bool   `toml:"enable_reflection" yaml:"enable_reflection"`
}

// GatewayConfig holds HTTP/WebSocket gateway settings
type GatewayConfig struct {
	Enabled      *bool    `toml:"enabled" yaml:"enabled"`
	Host         string   `toml:"host" yaml:"host"`
	Port         int      `toml:"port" yaml:"port"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
}

// ClientConfig holds settings for CLI clients talking to a remote service
type ClientConfig struct {
	Address string   `toml:"address" yaml:"address"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar such as "30s"
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".toml", "":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the PASCAL_CONFIG environment variable
// or the default locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("PASCAL_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./configs/config.toml",
			"./configs/config.yaml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/pascal/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "pascal"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}

	if c.Pascal.Host == "" {
		c.Pascal.Host = "0.0.0.0"
	}
	if c.Pascal.Port == 0 {
		c.Pascal.Port = 9160
	}

	if c.Gateway.Enabled == nil {
		enabled := true
		c.Gateway.Enabled = &enabled
	}
	if c.Gateway.Host == "" {
		c.Gateway.Host = "0.0.0.0"
	}
	if c.Gateway.Port == 0 {
		c.Gateway.Port = 8160
	}
	if c.Gateway.ReadTimeout.Duration == 0 {
		c.Gateway.ReadTimeout.Duration = 30 * time.Second
	}
	if c.Gateway.WriteTimeout.Duration == 0 {
		c.Gateway.WriteTimeout.Duration = 30 * time.Second
	}

	if c.Client.Address == "" {
		c.Client.Address = fmt.Sprintf("localhost:%d", c.Pascal.Port)
	}
	if c.Client.Timeout.Duration == 0 {
		c.Client.Timeout.Duration = 5 * time.Second
	}
}

// applyEnvOverrides applies PASCAL_* environment variables
func (c *Config) applyEnvOverrides() {
	if host := os.Getenv("PASCAL_HOST"); host != "" {
		c.Pascal.Host = host
	}
	if port := os.Getenv("PASCAL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Pascal.Port = p
		}
	}
	if port := os.Getenv("PASCAL_HTTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Gateway.Port = p
		}
	}
	if level := os.Getenv("PASCAL_LOG_LEVEL"); level != "" {
		c.General.LogLevel = level
	}
	if addr := os.Getenv("PASCAL_ADDRESS"); addr != "" {
		c.Client.Address = addr
	}
}

// Validate checks port ranges
func (c *Config) Validate() error {
	if c.Pascal.Port < 1 || c.Pascal.Port > 65535 {
		return fmt.Errorf("invalid pascal port: %d", c.Pascal.Port)
	}
	if c.Gateway.Port < 1 || c.Gateway.Port > 65535 {
		return fmt.Errorf("invalid gateway port: %d", c.Gateway.Port)
	}
	if c.GatewayEnabled() && c.Gateway.Port == c.Pascal.Port && c.Gateway.Host == c.Pascal.Host {
		return fmt.Errorf("gateway and gRPC service share %s:%d", c.Pascal.Host, c.Pascal.Port)
	}
	return nil
}

// GatewayEnabled reports whether the HTTP gateway should be started
func (c *Config) GatewayEnabled() bool {
	return c.Gateway.Enabled == nil || *c.Gateway.Enabled
}

// GetServiceAddress returns the address string for a service
func (c *Config) GetServiceAddress(service string) string {
	switch service {
	case "pascal":
		return fmt.Sprintf("%s:%d", c.Pascal.Host, c.Pascal.Port)
	case "gateway":
		return fmt.Sprintf("%s:%d", c.Gateway.Host, c.Gateway.Port)
	default:
		return ""
	}
}
