// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ThemeDefault uses the default prompt theme.
	ThemeDefault ThemeName = "default"
	// ThemeCharm uses the Charm prompt theme.
	ThemeCharm ThemeName = "charm"
	// ThemeDracula uses the Dracula prompt theme.
	ThemeDracula ThemeName = "dracula"
	// ThemeBase16 uses the Base16 prompt theme.
	ThemeBase16 ThemeName = "base16"
)

var (
	// ErrInvalidDelay is returned when the configured delay is negative.
	ErrInvalidDelay = errors.New("invalid delay")
	// ErrInvalidCommandFile is returned when the command file path is blank.
	ErrInvalidCommandFile = errors.New("invalid command file")
	// ErrInvalidTheme is returned when a ThemeName value is not recognized.
	ErrInvalidTheme = errors.New("invalid theme")
)

type (
	// ThemeName selects the prompt theme.
	ThemeName string

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Theme is the prompt theme name.
		Theme ThemeName `mapstructure:"theme" toml:"theme"`
		// Verbose enables debug-level logging.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// Config is the effective wslrun configuration.
	Config struct {
		// CommandFile is the default command file name offered at the
		// file prompt.
		CommandFile string `mapstructure:"command_file" toml:"command_file"`
		// DelaySeconds is the default pause between launches.
		DelaySeconds int `mapstructure:"delay_seconds" toml:"delay_seconds"`
		// Distro pins a distribution, skipping the selection prompt.
		Distro string `mapstructure:"distro" toml:"distro"`
		// User pins an account, skipping the selection prompt.
		User string `mapstructure:"user" toml:"user"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}
)

// Validate checks a ThemeName value.
func (t ThemeName) Validate() error {
	switch t {
	case ThemeDefault, ThemeCharm, ThemeDracula, ThemeBase16:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: default, charm, dracula, base16)", ErrInvalidTheme, t)
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CommandFile) == "" {
		return fmt.Errorf("%w: command_file must not be blank", ErrInvalidCommandFile)
	}
	if c.DelaySeconds < 0 {
		return fmt.Errorf("%w: delay_seconds must be non-negative, got %d", ErrInvalidDelay, c.DelaySeconds)
	}
	if err := c.UI.Theme.Validate(); err != nil {
		return err
	}
	return nil
}
