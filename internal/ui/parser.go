package ui

import (
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// compoundCommands are the two-word commands. "add phone John ..." is always
// read as the add-phone command, even if a contact is named "phone".
var compoundCommands = map[string]bool{
	config.CmdAddPhone:     true,
	config.CmdChangePhone:  true,
	config.CmdRemovePhone:  true,
	config.CmdAddBirthday:  true,
	config.CmdShowBirthday: true,
}

// Command is one tokenized input line.
type Command struct {
	Name string
	Args []string
}

// ParseInput splits line on whitespace. The command word(s) are lowercased;
// arguments are kept verbatim. ok is false for a blank line.
func ParseInput(line string) (cmd Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	if len(args) > 0 {
		compound := name + " " + strings.ToLower(args[0])
		if compoundCommands[compound] {
			name = compound
			args = args[1:]
		}
	}

	return Command{Name: name, Args: args}, true
}
