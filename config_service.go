package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pitchdeck/config"
)

// ConfigService loads and saves the batch configuration file
type ConfigService struct {
	path   string
	logger func(string)
}

// NewConfigService creates a config service for path
func NewConfigService(path string, logger func(string)) *ConfigService {
	return &ConfigService{path: path, logger: logger}
}

// Path returns the config file location
func (cs *ConfigService) Path() string {
	return cs.path
}

// GetConfig reads the config file. A missing file, or an empty path, yields the defaults.
func (cs *ConfigService) GetConfig() (config.Config, error) {
	if cs.path == "" {
		return config.Default(), nil
	}
	if _, err := os.Stat(cs.path); os.IsNotExist(err) {
		return config.Default(), nil
	}

	data, err := os.ReadFile(cs.path)
	if err != nil {
		return config.Config{}, WrapError("config", "GetConfig", err)
	}

	var cfg config.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, WrapError("config", "GetConfig", err)
	}
	cfg.Validate()
	return cfg, nil
}

// SaveConfig validates cfg and writes it as indented JSON
func (cs *ConfigService) SaveConfig(cfg config.Config) error {
	if cs.path == "" {
		return WrapError("config", "SaveConfig", os.ErrInvalid)
	}
	if err := os.MkdirAll(filepath.Dir(cs.path), 0755); err != nil {
		return WrapError("config", "SaveConfig", WrapOperationError("create config dir", err))
	}

	cfg.Validate()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return WrapError("config", "SaveConfig", WrapOperationError("marshal config", err))
	}
	if err := os.WriteFile(cs.path, data, 0644); err != nil {
		return WrapError("config", "SaveConfig", WrapOperationError("write config file", err))
	}

	cs.log("Configuration saved to " + cs.path)
	return nil
}

func (cs *ConfigService) log(msg string) {
	if cs.logger != nil {
		cs.logger("[CONFIG] " + msg)
	}
}
