package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/deathswap/deathswap/pkg/cli"
	"github.com/deathswap/deathswap/pkg/config"
	"github.com/deathswap/deathswap/pkg/settings"
)

// ConfigOptions configures the config command behavior.
type ConfigOptions struct {
	Binder *config.Binder[settings.Settings]
	Live   *settings.Live
}

// ConfigCommand shows and edits settings.
type ConfigCommand struct {
	cli.Base
	opts *ConfigOptions
}

// NewConfigCommand creates a new config command.
func NewConfigCommand(opts *ConfigOptions) *ConfigCommand {
	return &ConfigCommand{
		Base: cli.NewBase(cli.MustSpec("config", "Show or change settings",
			[]string{"settings"},
			[]string{"config", "config <key>", "config <key> <value...>"},
			true)),
		opts: opts,
	}
}

// Execute lists all settings, shows one, or sets one and saves.
func (c *ConfigCommand) Execute(_ context.Context, actor cli.Actor, args []string) {
	schema := c.opts.Binder.Schema()
	current := c.opts.Live.Get()

	if len(args) == 0 {
		for _, f := range schema.Fields {
			actor.Send(fmt.Sprintf("%s = %s (%s)", f.Name, f.Format(current), f.Source))
		}
		return
	}

	f, ok := schema.Lookup(args[0])
	if !ok {
		actor.Send(fmt.Sprintf("Unknown setting %q.", args[0]))
		cli.SendUsage(actor, c.Spec())
		return
	}

	if len(args) == 1 {
		actor.Send(fmt.Sprintf("%s = %s", f.Name, f.Format(current)))
		return
	}

	if err := f.Set(current, rawValue(f, args[1:])); err != nil {
		actor.Send(fmt.Sprintf("Invalid value for %s (expected %s).", f.Name, f.Kind()))
		return
	}

	c.opts.Live.Set(current)
	actor.Send(fmt.Sprintf("Set %s = %s", f.Name, f.Format(current)))

	if err := c.opts.Binder.Save(current); err != nil {
		actor.Send("The setting is active but could not be saved.")
		return
	}

	if f.Source == config.Override {
		actor.Send(fmt.Sprintf("Note: %s is read from %s on the next reload.", f.Name, config.OverridesFile))
	}
}

// Complete suggests setting names, then values for boolean settings.
func (c *ConfigCommand) Complete(_ cli.Actor, args []string) []string {
	schema := c.opts.Binder.Schema()

	switch len(args) {
	case 1:
		return cli.FilterPrefix(schema.Names(), args[0])
	case 2:
		f, ok := schema.Lookup(args[0])
		if !ok || f.Kind() != "bool" {
			return nil
		}
		return cli.FilterPrefix([]string{"false", "true"}, args[1])
	default:
		return nil
	}
}

// rawValue turns command arguments into a value for f.
// List settings take every argument, other settings take them joined by spaces.
func rawValue(f config.Field[settings.Settings], args []string) any {
	if f.Kind() == "list" {
		return args
	}
	return strings.Join(args, " ")
}
