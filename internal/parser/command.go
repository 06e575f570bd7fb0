// Package parser splits sequencer command lines into a command name and its
// positional parameters.
package parser

import (
	"strings"
)

// Command is one parsed line: a command name followed by positional parameters.
type Command struct {
	Name       string
	Parameters []string
}

// ParseCommand splits input on runs of whitespace. The first token is the
// command name and the remaining tokens are its parameters, in order.
// It returns nil for a blank line.
func ParseCommand(input string) *Command {
	words := strings.Fields(input)
	if len(words) == 0 {
		return nil
	}

	cmd := &Command{
		Name:       strings.TrimSpace(words[0]),
		Parameters: make([]string, 0, len(words)-1),
	}
	for _, word := range words[1:] {
		cmd.Parameters = append(cmd.Parameters, strings.TrimSpace(word))
	}
	return cmd
}

// Type returns the command type named by c.Name.
func (c *Command) Type() CommandType {
	return ParseCommandType(c.Name)
}

// Param returns the parameter at index i and whether it is present.
func (c *Command) Param(i int) (string, bool) {
	if i < 0 || i >= len(c.Parameters) {
		return "", false
	}
	return c.Parameters[i], true
}

func (c *Command) String() string {
	if len(c.Parameters) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Parameters, " ")
}
