// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wslrun-cli/internal/cmdfile"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a command file without launching anything",
	Long: `Load a command file and report what would be launched: the effective
command list after blank lines and # comments are stripped, plus
advisory shell syntax findings.

Findings never block a launch; the commands run in the session's own
shell, which may accept things our parser does not.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := cfg.CommandFile
		if len(args) == 1 {
			path = args[0]
		}

		commands, err := cmdfile.Load(path)
		if err != nil {
			return fatalError(err)
		}

		fmt.Fprintln(os.Stdout, SubtitleStyle.Render(fmt.Sprintf("%s: %d command(s)", path, len(commands))))
		for i, command := range commands {
			fmt.Fprintf(os.Stdout, "  [%d] %s\n", i+1, CmdStyle.Render(string(command)))
		}

		diags := cmdfile.Check(commands)
		if len(diags) == 0 {
			fmt.Fprintln(os.Stdout, SuccessStyle.Render("No syntax findings."))
			return nil
		}

		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, WarningStyle.Render(fmt.Sprintf("%d finding(s):", len(diags))))
		for _, d := range diags {
			fmt.Fprintf(os.Stdout, "  line %d: %s\n", d.Line, d.Message)
		}
		return nil
	},
}
