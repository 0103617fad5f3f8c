// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	WSLNotFoundId Id = iota + 1
	NoDistrosFoundId
	UserDetectTimeoutId
	NoUsersFoundId
	CommandFileNotFoundId
	NoCommandsFoundId
	TerminalNotFoundId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	wslNotFoundIssue = &Issue{
		id: WSLNotFoundId,
		mdMsg: `
# The wsl command was not found!

wslrun needs the WSL command-line tool to enumerate distributions and
launch sessions, but it was not found in your PATH.

## Things you can try:
- Install WSL (requires an elevated prompt):
~~~
> wsl --install
~~~

- Verify WSL works in your terminal:
~~~
> wsl -l -q
~~~

- Ensure System32 is in your PATH (wsl.exe lives there)`,
		extLinks: []HttpLink{"https://learn.microsoft.com/windows/wsl/install"},
	}

	noDistrosFoundIssue = &Issue{
		id: NoDistrosFoundId,
		mdMsg: `
# No WSL distributions found!

WSL is installed but no distributions are registered.

## Things you can try:
- Install a distribution:
~~~
> wsl --install -d Ubuntu
~~~

- List what is available online:
~~~
> wsl -l -o
~~~`,
	}

	userDetectTimeoutIssue = &Issue{
		id: UserDetectTimeoutId,
		mdMsg: `
# User detection timed out!

The command used to detect accounts inside the distribution did not
answer within 10 seconds. This usually means WSL itself is wedged.

## Things you can try:
- Restart the WSL backend:
~~~
> wsl --shutdown
~~~
    then run wslrun again.

- Reboot the machine if the problem persists`,
	}

	noUsersFoundIssue = &Issue{
		id: NoUsersFoundId,
		mdMsg: `
# No launchable users found!

The selected distribution has no account with UID 0 or UID >= 1000
(excluding the reserved 'nobody' account).

## Things you can try:
- Create a regular user inside the distribution:
~~~
$ sudo adduser yourname
~~~

- Check that awk is installed in the distribution (used to read
  /etc/passwd); wslrun falls back to reading the file directly when
  it is missing`,
	}

	commandFileNotFoundIssue = &Issue{
		id: CommandFileNotFoundId,
		mdMsg: `
# Command file not found!

The command file you named does not exist.

## Expected format, one command per line:
~~~
# comment lines and blank lines are ignored
htop
cd ~/project && ./node start --id 1
tail -f /var/log/syslog
~~~

## Things you can try:
- Create the file next to where you run wslrun (default name:
  commands.txt)
- Pass an explicit path with --file`,
	}

	noCommandsFoundIssue = &Issue{
		id: NoCommandsFoundId,
		mdMsg: `
# No commands in the command file!

The file exists but every line is blank or a comment, so there is
nothing to launch.

## Things you can try:
- Add at least one command line (anything your shell understands):
~~~
echo hello from tab one
~~~

- Check that command lines do not start with '#'`,
	}

	terminalNotFoundIssue = &Issue{
		id: TerminalNotFoundId,
		mdMsg: `
# Windows Terminal was not found!

wslrun opens each command in a Windows Terminal tab via the wt
command, but wt was not found in your PATH.

## Things you can try:
- Install Windows Terminal from the Microsoft Store, or:
~~~
> winget install Microsoft.WindowsTerminal
~~~

- Check that wt runs from your shell:
~~~
> wt -v
~~~`,
		extLinks: []HttpLink{"https://learn.microsoft.com/windows/terminal/install"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the wslrun configuration file.

## Configuration file location:
- Windows: %APPDATA%\wslrun\config.toml
- Linux: ~/.config/wslrun/config.toml

## Things you can try:
- Recreate a default configuration:
~~~
> wslrun config init
~~~

- Check the TOML syntax, or remove the file to use defaults

## Example configuration:
~~~toml
command_file = "commands.txt"
delay_seconds = 3
shell = "bash"
~~~`,
	}

	issues = map[Id]*Issue{
		wslNotFoundIssue.Id():         wslNotFoundIssue,
		noDistrosFoundIssue.Id():      noDistrosFoundIssue,
		userDetectTimeoutIssue.Id():   userDetectTimeoutIssue,
		noUsersFoundIssue.Id():        noUsersFoundIssue,
		commandFileNotFoundIssue.Id(): commandFileNotFoundIssue,
		noCommandsFoundIssue.Id():     noCommandsFoundIssue,
		terminalNotFoundIssue.Id():    terminalNotFoundIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
