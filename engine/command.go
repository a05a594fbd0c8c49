package engine

import (
	"fmt"
	"strings"
)

// Command is one line of input split into a verb and its arguments.
type Command struct {
	Name string
	Args []string
	// Effect describes what the command did once accepted.
	Effect string
}

// ParseCommand splits a line into a lower-cased verb and its arguments.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command: %w", ErrInvalidCommand)
	}
	return Command{Name: strings.ToLower(fields[0]), Args: fields[1:]}, nil
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// arg returns the arguments joined by spaces, so map names and paths may
// contain spaces.
func (c Command) arg() string {
	return strings.Join(c.Args, " ")
}
