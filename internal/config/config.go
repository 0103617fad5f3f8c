// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"wslrun-cli/internal/issue"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "wslrun"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.toml"
)

// configFilePathOverride is set by the --config flag.
var configFilePathOverride string

// SetConfigFilePathOverride points Load at an explicit config file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		CommandFile:  "commands.txt",
		DelaySeconds: 3,
		UI: UIConfig{
			Theme:   ThemeDefault,
			Verbose: false,
		},
	}
}

// Dir returns the wslrun configuration directory: %APPDATA%\wslrun on
// Windows, $XDG_CONFIG_HOME/wslrun (defaulting to ~/.config/wslrun)
// elsewhere.
func Dir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the effective config file path, honoring the
// --config override.
func FilePath() (string, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load reads the configuration file (when present) and applies
// WSLRUN_* environment overrides on top of the defaults. A missing
// file is not an error; a present-but-broken one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("command_file", defaults.CommandFile)
	v.SetDefault("delay_seconds", defaults.DelaySeconds)
	v.SetDefault("distro", defaults.Distro)
	v.SetDefault("user", defaults.User)
	v.SetDefault("ui.theme", string(defaults.UI.Theme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix("WSLRUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := FilePath()
	if err != nil {
		return nil, issue.WrapWithOperation(err, "resolve config path")
	}

	if fileExists(path) {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check the TOML syntax").
				WithSuggestion("Run 'wslrun config init' to recreate a default file").
				Wrap(err).
				BuildError()
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse configuration").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	return cfg, nil
}

// WriteDefault writes the built-in defaults as a TOML file at path,
// creating parent directories. Refuses to clobber an existing file.
func WriteDefault(path string) error {
	if fileExists(path) {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	raw, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Render returns the configuration as TOML for display.
func Render(cfg *Config) (string, error) {
	raw, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(raw), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
