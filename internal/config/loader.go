package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"awsmcp/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/awsmcp"
	configFileName = "config.yaml"
)

// Environment variables recognized as overrides. These match the contract of
// the AWS SDK and take precedence over config.yaml so that the gateway can be
// pointed at a region or profile without editing files.
const (
	EnvRegion   = "AWS_REGION"
	EnvProfile  = "AWS_PROFILE"
	EnvLogLevel = "LOG_LEVEL"
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// GetDefaultConfig returns the built-in defaults: all tool sets enabled,
// stdio transport, us-east-1, info logging.
func GetDefaultConfig() Config {
	return Config{
		AWS: AWSConfig{
			Region: "us-east-1",
		},
		Gateway: GatewayConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      8090,
		},
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from the specified directory.
// A missing config.yaml is not an error; the defaults apply. Environment
// overrides are applied after the file in both cases.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	cfg := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config.yaml found at %s, using defaults", configFilePath)
			applyEnvOverrides(&cfg)
			return cfg, cfg.Validate()
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Debug("Config", "Loaded configuration from %s", configFilePath)

	applyEnvOverrides(&cfg)
	return cfg, cfg.Validate()
}

func applyEnvOverrides(cfg *Config) {
	if region := os.Getenv(EnvRegion); region != "" {
		cfg.AWS.Region = region
	}
	if profile := os.Getenv(EnvProfile); profile != "" {
		cfg.AWS.Profile = profile
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
}

// Validate rejects configurations the gateway cannot serve.
func (c Config) Validate() error {
	switch c.Gateway.Transport {
	case MCPTransportStdio, MCPTransportSSE, MCPTransportStreamableHTTP:
	default:
		return fmt.Errorf("unknown transport %q", c.Gateway.Transport)
	}

	known := AllToolSets()
	for _, set := range c.Gateway.ToolSets {
		if !slices.Contains(known, set) {
			return fmt.Errorf("unknown tool set %q", set)
		}
	}

	if c.AWS.Region == "" {
		return fmt.Errorf("aws region must not be empty")
	}

	return nil
}
