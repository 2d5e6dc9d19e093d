package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/deathswap/deathswap/pkg/cli"
)

// HelpOptions configures the help command behavior.
type HelpOptions struct {
	Registry    *cli.Registry
	ShowAliases bool
}

// HelpCommand lists commands or describes one of them.
type HelpCommand struct {
	cli.Base
	opts *HelpOptions
}

// NewHelpCommand creates a new help command.
func NewHelpCommand(opts *HelpOptions) *HelpCommand {
	return &HelpCommand{
		Base: cli.NewBase(cli.MustSpec("help", "Help about any command",
			[]string{"?"},
			[]string{"help", "help <command>"},
			false)),
		opts: opts,
	}
}

// Execute lists the commands the actor may use, or shows help for args[0].
func (c *HelpCommand) Execute(_ context.Context, actor cli.Actor, args []string) {
	if len(args) == 0 {
		c.listCommands(actor)
		return
	}

	target, ok := c.opts.Registry.Find(args[0])
	if !ok || !cli.Permitted(actor, target) {
		actor.Send(fmt.Sprintf("Unknown command %q.", args[0]))
		return
	}

	showCommandHelp(actor, target.Spec(), c.opts)
}

// Complete suggests command names for the first argument.
func (c *HelpCommand) Complete(actor cli.Actor, args []string) []string {
	if len(args) != 1 {
		return nil
	}
	return cli.FilterPrefix(commandNames(c.opts.Registry, actor), args[0])
}

func (c *HelpCommand) listCommands(actor cli.Actor) {
	actor.Send("Available Commands:")

	defs := c.opts.Registry.List()
	width := 0
	for _, def := range defs {
		if n := len(def.Spec().Name()); n > width {
			width = n
		}
	}

	for _, def := range defs {
		if !cli.Permitted(actor, def) {
			continue
		}
		spec := def.Spec()
		actor.Send(fmt.Sprintf("  %-*s  %s", width, spec.Name(), spec.Summary()))
	}

	actor.Send(`Use "help <command>" for more information about a command.`)
}

// showCommandHelp displays the summary, usages and aliases of one command.
func showCommandHelp(actor cli.Actor, spec cli.Spec, opts *HelpOptions) {
	if spec.Summary() != "" {
		actor.Send(spec.Summary())
	}

	cli.SendUsage(actor, spec)

	if aliases := spec.Aliases(); opts.ShowAliases && len(aliases) > 0 {
		actor.Send("Aliases: " + strings.Join(aliases, ", "))
	}
}

// commandNames returns the names of the commands actor may use.
func commandNames(reg *cli.Registry, actor cli.Actor) []string {
	var names []string
	for _, def := range reg.List() {
		if cli.Permitted(actor, def) {
			names = append(names, def.Spec().Name())
		}
	}
	return names
}
