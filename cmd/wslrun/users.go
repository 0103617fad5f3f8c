// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wslrun-cli/internal/distro"
	"wslrun-cli/internal/identity"
	"wslrun-cli/internal/tui"
)

var usersCmd = &cobra.Command{
	Use:   "users [distro]",
	Short: "List launchable users in a WSL distribution",
	Long: `List the accounts wslrun considers launchable in a distribution:
root plus every regular account (UID 1000 and up), excluding the
reserved 'nobody' account.

When no distribution is named, the installed ones are offered
interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var distroName string
		if len(args) == 1 {
			distroName = args[0]
		} else {
			installed, err := distro.NewEnumerator().List(cmd.Context())
			if err != nil {
				return fatalError(err)
			}
			names := distro.Strings(installed)
			if len(names) == 1 {
				distroName = names[0]
			} else {
				distroName, err = tui.SelectIndex(tui.SelectIndexOptions{
					Title:   "Installed WSL distributions:",
					Prompt:  fmt.Sprintf("Select a distribution (1-%d)", len(names)),
					Options: names,
					Config:  tuiConfig(),
				})
				if err != nil {
					return err
				}
			}
		}

		users, err := identity.NewLister(identity.WithLogger(logger)).List(cmd.Context(), distroName)
		if err != nil {
			return fatalError(err)
		}

		fmt.Fprintln(os.Stdout, SubtitleStyle.Render(fmt.Sprintf("Launchable users in %s:", distroName)))
		for i, user := range users {
			fmt.Fprintf(os.Stdout, "  [%d] %s\n", i+1, CmdStyle.Render(user))
		}
		return nil
	},
}
