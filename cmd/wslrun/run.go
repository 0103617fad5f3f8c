// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wslrun-cli/internal/cmdfile"
	"wslrun-cli/internal/distro"
	"wslrun-cli/internal/identity"
	"wslrun-cli/internal/launcher"
	"wslrun-cli/internal/platform"
	"wslrun-cli/internal/terminal"
	"wslrun-cli/internal/tui"
)

var (
	// flagDistro pins the distribution, skipping the selection prompt.
	flagDistro string
	// flagUser pins the account, skipping the selection prompt.
	flagUser string
	// flagFile overrides the command file path.
	flagFile string
	// flagDelay overrides the delay between launches (-1 means unset).
	flagDelay int
	// flagDryRun prints the would-be terminal invocations instead of
	// spawning them.
	flagDryRun bool

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Launch the command sequence in WSL terminal tabs",
		Long: `Launch each command of a command file in its own Windows Terminal
tab, inside a WSL distribution of your choice, as a user of your
choice, with a configurable delay between launches.

Anything not pinned by a flag or the config file is asked
interactively. Launched sessions are fire-and-forget: wslrun does not
track them after the tab opens.`,
		Args: cobra.NoArgs,
		RunE: runLaunch,
	}
)

func init() {
	addRunFlags(runCmd)
}

// addRunFlags registers the launch flags. The root command doubles as
// "run", so both commands share the same flag set.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagDistro, "distro", "d", "", "WSL distribution to launch in (skips the prompt)")
	cmd.Flags().StringVarP(&flagUser, "user", "u", "", "user account to launch as (skips the prompt)")
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "command file path (default from config, commands.txt)")
	cmd.Flags().IntVar(&flagDelay, "delay", -1, "seconds to wait between launches (default from config)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print terminal invocations instead of launching")
}

func runLaunch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if !platform.IsWindows() && !flagDryRun {
		logger.Warn("host is not Windows; launching needs wsl and wt reachable through interop")
	}

	distroName, err := resolveDistro(cmd)
	if err != nil {
		return err
	}

	userName, err := resolveUser(cmd, distroName)
	if err != nil {
		return err
	}

	filePath, err := resolveCommandFile()
	if err != nil {
		return err
	}

	delay, err := resolveDelay()
	if err != nil {
		return err
	}

	commands, err := cmdfile.Load(filePath)
	if err != nil {
		return fatalError(err)
	}
	reportDiagnostics(cmdfile.Check(commands))

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, SubtitleStyle.Render("Launch plan:"))
	fmt.Fprintf(os.Stdout, "  Distribution: %s\n", CmdStyle.Render(distroName))
	fmt.Fprintf(os.Stdout, "  User:         %s\n", CmdStyle.Render(userName))
	fmt.Fprintf(os.Stdout, "  Commands:     %s (%d)\n", CmdStyle.Render(filePath), len(commands))
	fmt.Fprintf(os.Stdout, "  Delay:        %s\n", CmdStyle.Render(fmt.Sprintf("%ds", delay)))

	var mux terminal.Multiplexer = terminal.New()
	launchOpts := []launcher.Option{launcher.WithLogger(logger)}
	if flagDryRun {
		mux = dryRunMux{out: os.Stdout}
		// Previews need no pacing.
		launchOpts = append(launchOpts, launcher.WithSleep(func(time.Duration) {}))
	} else {
		countdown(3)
	}

	plan := launcher.Plan{
		Distro:   distroName,
		User:     userName,
		Commands: commands,
		Delay:    time.Duration(delay) * time.Second,
	}
	summary, err := launcher.New(mux, confirmContinue, launchOpts...).Run(ctx, plan)
	if err != nil {
		return fatalError(err)
	}

	printSummary(summary, flagDryRun)
	return nil
}

// resolveDistro picks the distribution: flag, then config, then prompt.
// Pinned names are checked against the installed list so a typo fails
// fast instead of opening a broken tab.
func resolveDistro(cmd *cobra.Command) (string, error) {
	installed, err := distro.NewEnumerator().List(cmd.Context())
	if err != nil {
		return "", fatalError(err)
	}
	names := distro.Strings(installed)

	pinned := flagDistro
	if pinned == "" {
		pinned = cfg.Distro
	}
	if pinned != "" {
		for _, name := range names {
			if name == pinned {
				return name, nil
			}
		}
		return "", fatalError(fmt.Errorf("distribution %q is not installed (installed: %s)", pinned, strings.Join(names, ", ")))
	}

	if len(names) == 1 {
		logger.Debug("single distribution installed, selecting it", "distro", names[0])
		return names[0], nil
	}

	return tui.SelectIndex(tui.SelectIndexOptions{
		Title:   "Installed WSL distributions:",
		Prompt:  fmt.Sprintf("Select a distribution (1-%d)", len(names)),
		Options: names,
		Config:  tuiConfig(),
	})
}

// resolveUser picks the account: flag, then config, then prompt over
// the users detected inside the distribution. A pinned user is trusted
// as-is; detection only runs when a prompt is needed.
func resolveUser(cmd *cobra.Command, distroName string) (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	if cfg.User != "" {
		return cfg.User, nil
	}

	logger.Debug("detecting users", "distro", distroName)
	users, err := identity.NewLister(identity.WithLogger(logger)).List(cmd.Context(), distroName)
	if err != nil {
		return "", fatalError(err)
	}

	if len(users) == 1 {
		logger.Debug("single launchable user, selecting it", "user", users[0])
		return users[0], nil
	}

	return tui.SelectIndex(tui.SelectIndexOptions{
		Title:   fmt.Sprintf("Users in %s:", distroName),
		Prompt:  fmt.Sprintf("Select a user (1-%d)", len(users)),
		Options: users,
		Config:  tuiConfig(),
	})
}

// resolveCommandFile picks the command file path: flag, then prompt
// with the configured default.
func resolveCommandFile() (string, error) {
	if flagFile != "" {
		return flagFile, nil
	}

	return tui.Input(tui.InputOptions{
		Title:       "Command file",
		Description: "One shell command per line; blank lines and # comments are skipped.",
		Placeholder: cfg.CommandFile,
		Default:     cfg.CommandFile,
		Config:      tuiConfig(),
	})
}

// resolveDelay picks the delay in seconds: flag, then prompt with the
// configured default.
func resolveDelay() (int, error) {
	if flagDelay >= 0 {
		return flagDelay, nil
	}

	answer, err := tui.Input(tui.InputOptions{
		Title:       "Delay between launches (seconds)",
		Description: "How long to wait after each tab opens before the next one.",
		Placeholder: strconv.Itoa(cfg.DelaySeconds),
		Default:     strconv.Itoa(cfg.DelaySeconds),
		Validate:    tui.ValidateNonNegativeInt,
		Config:      tuiConfig(),
	})
	if err != nil {
		return 0, err
	}
	// Validation already guaranteed a parseable value.
	delay, _ := strconv.Atoi(answer)
	return delay, nil
}

// reportDiagnostics prints advisory shell syntax findings. They never
// block the run; the commands run in the user's shell, not ours.
func reportDiagnostics(diags []cmdfile.Diagnostic) {
	for _, d := range diags {
		logger.Warn("command may have a shell syntax problem",
			"line", d.Line, "command", string(d.Command), "detail", d.Message)
	}
}

// confirmContinue is the launcher's failure callback: ask the operator
// whether the remaining commands should still be launched.
func confirmContinue(command cmdfile.Command, launchErr error) (bool, error) {
	return tui.Confirm(tui.ConfirmOptions{
		Title:       "Continue with the remaining commands?",
		Description: fmt.Sprintf("%q failed to launch: %v", string(command), launchErr),
		Default:     true,
		Config:      tuiConfig(),
	})
}

// countdown gives the user a moment to abort before tabs start opening.
func countdown(seconds int) {
	fmt.Fprintln(os.Stdout)
	fmt.Fprintf(os.Stdout, "%s\n", WarningStyle.Render(
		fmt.Sprintf("Starting execution in %d seconds... (Ctrl-C to abort)", seconds)))
	for i := seconds; i > 0; i-- {
		fmt.Fprintf(os.Stdout, "  %d...\n", i)
		time.Sleep(time.Second)
	}
}

// printSummary reports the outcome of a run.
func printSummary(summary launcher.Summary, dryRun bool) {
	fmt.Fprintln(os.Stdout)
	switch {
	case dryRun:
		fmt.Fprintln(os.Stdout, SuccessStyle.Render(
			fmt.Sprintf("Dry run: %d command(s) previewed, nothing launched.", summary.Launched)))
	case summary.Halted:
		fmt.Fprintln(os.Stdout, WarningStyle.Render(
			fmt.Sprintf("Run halted: %d launched, %d failed.", summary.Launched, summary.Failed)))
	case summary.Failed > 0:
		fmt.Fprintln(os.Stdout, WarningStyle.Render(
			fmt.Sprintf("Run finished: %d launched, %d failed.", summary.Launched, summary.Failed)))
	default:
		fmt.Fprintln(os.Stdout, SuccessStyle.Render(
			fmt.Sprintf("All %d command(s) launched.", summary.Launched)))
	}
	if !dryRun && summary.Launched > 0 {
		fmt.Fprintf(os.Stdout, "Sessions are detached; close their tabs when done. Launch scripts remain in %s.\n", os.TempDir())
	}
}

// dryRunMux is a terminal.Multiplexer that prints the invocation it
// would have spawned.
type dryRunMux struct {
	out *os.File
}

func (m dryRunMux) OpenTab(req terminal.TabRequest) error {
	args := terminal.New().Args(req)
	fmt.Fprintf(m.out, "  %s\n", CmdStyle.Render("wt "+strings.Join(args, " ")))
	return nil
}
