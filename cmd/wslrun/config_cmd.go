// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wslrun-cli/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage wslrun configuration",
		Long: `Manage the wslrun configuration file.

The configuration lives at %APPDATA%\wslrun\config.toml on Windows and
$XDG_CONFIG_HOME/wslrun/config.toml elsewhere. Every setting can also
be supplied via WSLRUN_* environment variables.`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration as TOML: defaults, overlaid by the
config file and WSLRUN_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rendered, err := config.Render(cfg)
			if err != nil {
				return fatalError(err)
			}

			path, pathErr := config.FilePath()
			if pathErr == nil {
				fmt.Fprintln(os.Stdout, SubtitleStyle.Render("Config file: ")+path)
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprint(os.Stdout, rendered)
			return nil
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a config.toml with the default settings to the standard
location. Refuses to overwrite an existing file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.FilePath()
			if err != nil {
				return fatalError(err)
			}
			if err := config.WriteDefault(path); err != nil {
				return fatalError(err)
			}
			fmt.Fprintln(os.Stdout, SuccessStyle.Render("Wrote default configuration to ")+path)
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
