package cli

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// ConsoleActor is the actor for commands typed at the host console.
type ConsoleActor struct {
	name     string
	elevated bool
	out      io.Writer
}

// NewConsoleActor creates a console actor writing to out (stdout when nil).
func NewConsoleActor(name string, elevated bool, out io.Writer) *ConsoleActor {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleActor{
		name:     name,
		elevated: elevated,
		out:      out,
	}
}

// Name returns the actor name.
func (c *ConsoleActor) Name() string { return c.name }

// Elevated reports whether the console runs with elevated permission.
func (c *ConsoleActor) Elevated() bool { return c.elevated }

// Send writes msg on its own line.
func (c *ConsoleActor) Send(msg string) {
	pterm.Fprintln(c.out, msg)
}
