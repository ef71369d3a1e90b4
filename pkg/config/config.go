// Package config provides configuration management for the galois CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	FieldOrder int    `json:"field_order"` // Default: 16
	Polynomial string `json:"polynomial"`  // Explicit primitive polynomial, e.g. "0,1,4"
	Positions  bool   `json:"positions"`   // Print minimal polynomials in positions form
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor       bool `json:"use_color"`        // Enable colored output
	ShowFieldOrder bool `json:"show_field_order"` // Suffix elements with their field order
	Verbose        bool `json:"verbose"`          // Verbose logging by default
}

// Manager handles configuration loading and saving
type Manager struct {
	config     *Config
	configPath string
}

// NewManager creates a configuration manager, loading the config file or
// writing the defaults if none exists yet.
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	m := &Manager{configPath: configPath}

	if err := m.Load(); err != nil {
		m.config = Default()
		if err := m.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return m, nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			FieldOrder: 16,
			Polynomial: "",
			Positions:  false,
		},
		UI: UIConfig{
			UseColor:       true,
			ShowFieldOrder: false,
			Verbose:        false,
		},
	}
}

// Load loads the configuration from disk
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	m.config = config
	return nil
}

// Save saves the configuration to disk
func (m *Manager) Save() error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates the configuration
func (m *Manager) Set(config *Config) {
	m.config = config
}

// Path returns the location of the config file
func (m *Manager) Path() string {
	return m.configPath
}

func getConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(configDir, "galois", "config.json"), nil
}
