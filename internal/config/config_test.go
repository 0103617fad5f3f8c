// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useConfigFile points Load at a throwaway config path for one test.
func useConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	SetConfigFilePathOverride(path)
	t.Cleanup(func() { SetConfigFilePathOverride("") })
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		useConfigFile(t, "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if cfg.CommandFile != "commands.txt" {
			t.Errorf("CommandFile = %q, want commands.txt", cfg.CommandFile)
		}
		if cfg.DelaySeconds != 3 {
			t.Errorf("DelaySeconds = %d, want 3", cfg.DelaySeconds)
		}
		if cfg.UI.Theme != ThemeDefault {
			t.Errorf("UI.Theme = %q, want default", cfg.UI.Theme)
		}
	})

	t.Run("file values override defaults", func(t *testing.T) {
		useConfigFile(t, "command_file = \"nodes.txt\"\ndelay_seconds = 10\ndistro = \"Debian\"\n\n[ui]\ntheme = \"dracula\"\nverbose = true\n")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if cfg.CommandFile != "nodes.txt" || cfg.DelaySeconds != 10 || cfg.Distro != "Debian" {
			t.Errorf("Load() = %+v", cfg)
		}
		if cfg.UI.Theme != ThemeDracula || !cfg.UI.Verbose {
			t.Errorf("Load().UI = %+v", cfg.UI)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		useConfigFile(t, "delay_seconds = 10\n")
		t.Setenv("WSLRUN_DELAY_SECONDS", "7")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if cfg.DelaySeconds != 7 {
			t.Errorf("DelaySeconds = %d, want 7 (env override)", cfg.DelaySeconds)
		}
	})

	t.Run("broken TOML is surfaced", func(t *testing.T) {
		useConfigFile(t, "delay_seconds = [not toml")
		if _, err := Load(); err == nil {
			t.Error("Load() expected error for broken TOML")
		}
	})

	t.Run("negative delay is rejected", func(t *testing.T) {
		useConfigFile(t, "delay_seconds = -1\n")
		_, err := Load()
		if !errors.Is(err, ErrInvalidDelay) {
			t.Errorf("Load() error = %v, want ErrInvalidDelay", err)
		}
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		useConfigFile(t, "[ui]\ntheme = \"neon\"\n")
		_, err := Load()
		if !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("Load() error = %v, want ErrInvalidTheme", err)
		}
	})
}

func TestWriteDefault(t *testing.T) {
	t.Run("writes a loadable default file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
		if err := WriteDefault(path); err != nil {
			t.Fatalf("WriteDefault() unexpected error: %v", err)
		}

		SetConfigFilePathOverride(path)
		t.Cleanup(func() { SetConfigFilePathOverride("") })

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() of written default failed: %v", err)
		}
		if cfg.CommandFile != "commands.txt" || cfg.DelaySeconds != 3 {
			t.Errorf("written defaults = %+v", cfg)
		}
	})

	t.Run("refuses to clobber an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		if err := os.WriteFile(path, []byte("delay_seconds = 9\n"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if err := WriteDefault(path); err == nil {
			t.Error("WriteDefault() expected error for existing file")
		}
	})
}

func TestRender(t *testing.T) {
	out, err := Render(DefaultConfig())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(out, "command_file = 'commands.txt'") &&
		!strings.Contains(out, `command_file = "commands.txt"`) {
		t.Errorf("Render() output missing command_file: %s", out)
	}
}
