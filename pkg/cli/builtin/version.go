package builtin

import (
	"context"
	"fmt"
	"runtime"

	"github.com/deathswap/deathswap/pkg/cli"
)

// VersionOptions configures the version command behavior.
type VersionOptions struct {
	Version   string
	BuildDate string
}

// VersionCommand shows build information.
type VersionCommand struct {
	cli.Base
	opts *VersionOptions
}

// NewVersionCommand creates a new version command.
func NewVersionCommand(opts *VersionOptions) *VersionCommand {
	return &VersionCommand{
		Base: cli.NewBase(cli.MustSpec("version", "Show version information",
			[]string{"ver"},
			[]string{"version"},
			false)),
		opts: opts,
	}
}

// Execute prints the version.
func (c *VersionCommand) Execute(_ context.Context, actor cli.Actor, _ []string) {
	actor.Send(fmt.Sprintf("Deathswap %s", c.opts.Version))
	if c.opts.BuildDate != "" {
		actor.Send(fmt.Sprintf("Built: %s", c.opts.BuildDate))
	}
	actor.Send(fmt.Sprintf("Go: %s", runtime.Version()))
	actor.Send(fmt.Sprintf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH))
}
