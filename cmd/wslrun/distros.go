// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wslrun-cli/internal/distro"
)

var distrosCmd = &cobra.Command{
	Use:   "distros",
	Short: "List installed WSL distributions",
	Long: `List the WSL distributions installed on this machine, in the order
WSL reports them. The first entry is the WSL default distribution.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		installed, err := distro.NewEnumerator().List(cmd.Context())
		if err != nil {
			return fatalError(err)
		}

		fmt.Fprintln(os.Stdout, SubtitleStyle.Render("Installed WSL distributions:"))
		for i, name := range installed {
			fmt.Fprintf(os.Stdout, "  [%d] %s\n", i+1, CmdStyle.Render(string(name)))
		}
		return nil
	},
}
