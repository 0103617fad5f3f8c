// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"wslrun-cli/internal/config"
	"wslrun-cli/internal/tui"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = origVersion, origCommit, origDate }()

	t.Run("dev build", func(t *testing.T) {
		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})

	t.Run("release build", func(t *testing.T) {
		Version, Commit, BuildDate = "1.2.3", "abc123", "2026-08-30"
		got := getVersionString()
		for _, want := range []string{"1.2.3", "abc123", "2026-08-30"} {
			if !strings.Contains(got, want) {
				t.Errorf("getVersionString() = %q, missing %q", got, want)
			}
		}
	})
}

func TestTuiConfig_UsesConfiguredTheme(t *testing.T) {
	orig := cfg
	defer func() { cfg = orig }()

	cfg = config.DefaultConfig()
	cfg.UI.Theme = config.ThemeDracula

	if got := tuiConfig().Theme; got != tui.ThemeDracula {
		t.Errorf("tuiConfig().Theme = %q, want %q", got, tui.ThemeDracula)
	}
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := map[string]bool{
		"run":     false,
		"distros": false,
		"users":   false,
		"check":   false,
		"config":  false,
	}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunFlags_RegisteredOnRootAndRun(t *testing.T) {
	for _, flagName := range []string{"distro", "user", "file", "delay", "dry-run"} {
		if rootCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("root command missing --%s", flagName)
		}
		if runCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("run command missing --%s", flagName)
		}
	}
}
