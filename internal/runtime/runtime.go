// Package runtime wires the deathswap host together.
//
// # Initialization Flow
//
//	1. Create the logger, registry and settings binder
//	2. Register the built-in commands
//	3. Build the Cobra command tree (one subcommand per registered command)
//	4. On execution, resolve document paths from flags, environment and XDG
//	5. Write default settings on first run, then load both documents
//	6. Dispatch the invocation through the registry
//
// # Global Flags
//
//	--config       Path to the settings document
//	--messages     Path to the messages document
//	--op           Run as an elevated console
//	--debug        Enable debug logging
package runtime

import (
	"errors"
	"fmt"
	"os"

	"github.com/deathswap/deathswap/pkg/cli"
	"github.com/deathswap/deathswap/pkg/cli/builtin"
	"github.com/deathswap/deathswap/pkg/config"
	"github.com/deathswap/deathswap/pkg/settings"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Options configures a Runtime.
type Options struct {
	AppName   string
	Version   string
	BuildDate string
	Logger    *pterm.Logger
}

// Runtime is the host environment: it owns the stores, the live settings and
// the command registry.
type Runtime struct {
	opts     Options
	logger   *pterm.Logger
	paths    *config.PathResolver
	binder   *config.Binder[settings.Settings]
	live     *settings.Live
	registry *cli.Registry
	rootCmd  *cobra.Command
	elevated bool
	debug    bool
}

// NewRuntime creates a runtime with the built-in commands registered.
func NewRuntime(opts Options) (*Runtime, error) {
	if opts.AppName == "" {
		opts.AppName = "deathswap"
	}

	logger := opts.Logger
	if logger == nil {
		logger = pterm.DefaultLogger.WithWriter(os.Stderr).WithLevel(pterm.LogLevelInfo)
	}

	rt := &Runtime{
		opts:     opts,
		logger:   logger,
		paths:    config.NewPathResolver(opts.AppName),
		live:     settings.NewLive(nil),
		registry: cli.NewRegistry(logger),
	}

	rt.binder = config.NewBinder(settings.Schema(), config.Options{
		Primary:   config.NewDocument(),
		Overrides: config.NewDocument(),
		Logger:    logger,
	})

	if err := rt.registerBuiltins(); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	if err := rt.buildRootCommand(); err != nil {
		return nil, fmt.Errorf("failed to build command tree: %w", err)
	}

	return rt, nil
}

// registerBuiltins registers every built-in command.
func (rt *Runtime) registerBuiltins() error {
	defs := []cli.Definition{
		builtin.NewHelpCommand(&builtin.HelpOptions{
			Registry:    rt.registry,
			ShowAliases: true,
		}),
		builtin.NewConfigCommand(&builtin.ConfigOptions{
			Binder: rt.binder,
			Live:   rt.live,
		}),
		builtin.NewReloadCommand(&builtin.ReloadOptions{
			Binder: rt.binder,
			Live:   rt.live,
		}),
		builtin.NewVersionCommand(&builtin.VersionOptions{
			Version:   rt.opts.Version,
			BuildDate: rt.opts.BuildDate,
		}),
	}

	for _, def := range defs {
		if err := rt.registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// buildRootCommand creates the Cobra root with one subcommand per registered command.
func (rt *Runtime) buildRootCommand() error {
	rt.rootCmd = &cobra.Command{
		Use:           rt.opts.AppName,
		Short:         "Deathswap command and settings host",
		Version:       rt.opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rt.initialize()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.registry.Dispatch(cmd.Context(), rt.actor(cmd), "help", nil)
		},
	}

	flags := rt.rootCmd.PersistentFlags()
	flags.BoolVar(&rt.elevated, "op", false, "Run as an elevated console")
	flags.BoolVarP(&rt.debug, "debug", "d", false, "Enable debug logging")
	if err := rt.paths.AddFlags(flags); err != nil {
		return err
	}

	rt.rootCmd.AddCommand(rt.registry.Commands(rt.actor)...)
	return nil
}

// initialize resolves the document locations and loads the settings.
// The settings document is created with defaults on first run.
func (rt *Runtime) initialize() {
	if rt.debug {
		rt.logger.Level = pterm.LogLevelDebug
	}

	paths := rt.paths.Resolve()
	rt.binder.Relocate(paths.Primary, paths.Overrides)
	rt.logger.Debug("Resolved documents",
		rt.logger.Args("settings", paths.Primary, "messages", paths.Overrides))

	if _, err := os.Stat(paths.Primary); errors.Is(err, os.ErrNotExist) {
		rt.logger.Info("Writing default settings", rt.logger.Args("path", paths.Primary))
		_ = rt.binder.Save(rt.binder.Defaults())
	}

	rt.live.Set(rt.binder.Reload())
}

// actor returns the console actor for an invocation.
func (rt *Runtime) actor(cmd *cobra.Command) cli.Actor {
	return cli.NewConsoleActor("console", rt.elevated, cmd.OutOrStdout())
}

// Execute runs the root command.
func (rt *Runtime) Execute() error {
	return rt.rootCmd.Execute()
}

// RootCommand returns the Cobra root command.
func (rt *Runtime) RootCommand() *cobra.Command {
	return rt.rootCmd
}

// Registry returns the command registry.
func (rt *Runtime) Registry() *cli.Registry {
	return rt.registry
}

// Settings returns a copy of the settings in effect.
func (rt *Runtime) Settings() *settings.Settings {
	return rt.live.Get()
}
