package builtin

import (
	"context"

	"github.com/deathswap/deathswap/pkg/cli"
	"github.com/deathswap/deathswap/pkg/config"
	"github.com/deathswap/deathswap/pkg/settings"
)

// ReloadOptions configures the reload command behavior.
type ReloadOptions struct {
	Binder *config.Binder[settings.Settings]
	Live   *settings.Live
}

// ReloadCommand re-reads both documents and puts the result into effect.
type ReloadCommand struct {
	cli.Base
	opts *ReloadOptions
}

// NewReloadCommand creates a new reload command.
func NewReloadCommand(opts *ReloadOptions) *ReloadCommand {
	return &ReloadCommand{
		Base: cli.NewBase(cli.MustSpec("reload", "Reload settings and messages from disk",
			nil,
			[]string{"reload"},
			true)),
		opts: opts,
	}
}

// Execute reloads the settings.
func (c *ReloadCommand) Execute(_ context.Context, actor cli.Actor, args []string) {
	if len(args) != 0 {
		cli.SendUsage(actor, c.Spec())
		return
	}

	c.opts.Live.Set(c.opts.Binder.Reload())
	actor.Send("Settings reloaded.")
}
