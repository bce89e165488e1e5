package common

import (
	"sort"

	"github.com/urfave/cli/v2"
)

var commands []*cli.Command

// RegisterCommand registers a subcommand, called from each command
// package's init so main only has to blank-import the package.
func RegisterCommand(command *cli.Command) {
	commands = append(commands, command)
}

// GetCommands returns all registered subcommands sorted by name.
func GetCommands() []*cli.Command {
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name < commands[j].Name
	})

	return commands
}
