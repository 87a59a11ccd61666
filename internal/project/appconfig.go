package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// EnvPrefix is the prefix of environment overrides, e.g. WORTUHR_LOG_LEVEL.
const EnvPrefix = "WORTUHR"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.wortuhr/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".wortuhr")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadAppConfig reads an AppConfig from the given path through viper.
// Keys missing from the file keep their defaults and WORTUHR_* environment
// variables override both. If the file does not exist, it returns the
// defaults (with environment overrides) and no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := model.DefaultAppConfig()
	if err := setDefaults(v, defaults); err != nil {
		return model.AppConfig{}, err
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return model.AppConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return model.AppConfig{}, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	config := defaults
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if config.RecentTemplates == nil {
		config.RecentTemplates = []string{}
	}
	return config, nil
}

// setDefaults registers every field of the default config so viper knows
// the keys for environment lookup.
func setDefaults(v *viper.Viper, defaults model.AppConfig) error {
	data, err := json.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to decode default config: %w", err)
	}
	for key, value := range flatten("", m) {
		v.SetDefault(key, value)
	}
	return nil
}

func flatten(prefix string, m map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for k, val := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := val.(map[string]interface{}); ok {
			for nk, nv := range flatten(key, nested) {
				out[nk] = nv
			}
			continue
		}
		out[key] = val
	}
	return out
}
