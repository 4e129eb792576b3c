package chat

import (
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// CommandSuccessCheck is the success check command name
const CommandSuccessCheck = "sc"

// MsgCommandArgs is shown when a command is missing its expression
const MsgCommandArgs = "This command requires 2 or more parameters"

// Command is a parsed chat command such as "/sc dexterity + alert"
type Command struct {
	Name string
	Args []string
}

// Expression joins the arguments back into a dice pool expression
func (c *Command) Expression() string {
	return strings.Join(c.Args, " ")
}

// ParseCommand splits text into a command. Only /sc is known.
func ParseCommand(text string) (*Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return nil, errors.Expression("Commands start with /")
	}

	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	if name != CommandSuccessCheck {
		return nil, errors.Expressionf("Unknown command /%s", name)
	}
	if len(fields) < 2 {
		return nil, errors.Expression(MsgCommandArgs).WithMeta("command", name)
	}

	return &Command{Name: name, Args: fields[1:]}, nil
}
