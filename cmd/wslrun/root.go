// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wslrun-cli/internal/config"
	"wslrun-cli/internal/tui"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the configuration loaded by initRootConfig.
	cfg = config.DefaultConfig()

	// logger is the run-wide structured logger.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "wslrun",
		Short: "Launch command sequences in WSL terminal tabs",
		Long: TitleStyle.Render("wslrun") + SubtitleStyle.Render(" - Launch command sequences in WSL terminal tabs") + `

wslrun reads a plain-text command file and opens each command in its
own Windows Terminal tab, inside a WSL distribution of your choice,
running as a user of your choice, with a configurable delay between
launches. Sessions are fire-and-forget: close them from the terminal
whenever you are done.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Put one shell command per line in commands.txt
  2. Run: wslrun
  3. Pick a distribution and a user, accept the defaults, done

` + SubtitleStyle.Render("Examples:") + `
  wslrun                      Interactive launch flow
  wslrun run --distro Ubuntu  Skip the distribution prompt
  wslrun distros              List installed distributions
  wslrun users Ubuntu         List launchable users in Ubuntu
  wslrun check commands.txt   Check a command file for shell syntax
  wslrun config init          Write a default config file`,
		RunE: runLaunch,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/wslrun/config.toml)")

	addRunFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(distrosCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		// User cancellation is a normal termination path, not an error.
		if errors.Is(err, tui.ErrCancelled) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, SubtitleStyle.Render("Operation cancelled."))
			os.Exit(0)
		}

		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			renderServiceError(os.Stderr, svcErr, verbose)
			os.Exit(1)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	if cfg.UI.Verbose {
		verbose = true
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// tuiConfig builds the prompt configuration from the loaded config.
func tuiConfig() tui.Config {
	c := tui.DefaultConfig()
	c.Theme = tui.Theme(cfg.UI.Theme)
	return c
}
