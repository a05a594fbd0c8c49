package communication

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console reads command lines and human orders from one input and writes
// prompts to one output, so both share the same stream.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	echo    bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(in), out: out}
}

// Next returns the next command, skipping blank lines and # comments.
func (c *Console) Next() (string, bool) {
	for {
		line, ok := c.Prompt("> ")
		if !ok {
			return "", false
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}
}

// Prompt writes prompt and reads one trimmed line.
func (c *Console) Prompt(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	line := strings.TrimSpace(c.scanner.Text())
	if c.echo {
		fmt.Fprintln(c.out, line)
	}
	return line, true
}

func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Err reports a read error other than the end of input.
func (c *Console) Err() error {
	return c.scanner.Err()
}
