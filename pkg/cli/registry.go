package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/pterm/pterm"
)

var (
	// ErrUnknownCommand is returned when no command matches a token.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotPermitted is returned when a non-elevated actor invokes an elevated command.
	ErrNotPermitted = errors.New("command requires elevated permission")

	// ErrConflict is returned when a name or alias is already registered.
	ErrConflict = errors.New("command name conflict")

	// ErrCommandFailed is returned when a command panics during execution.
	ErrCommandFailed = errors.New("command failed")
)

// Registry holds the registered commands and dispatches invocations to them.
type Registry struct {
	commands []Definition
	logger   *pterm.Logger
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry. A nil logger uses pterm's default.
func NewRegistry(logger *pterm.Logger) *Registry {
	if logger == nil {
		logger = &pterm.DefaultLogger
	}
	return &Registry{
		logger: logger,
	}
}

// Register adds a command. Its name and aliases must not match any command
// already registered.
func (r *Registry) Register(def Definition) error {
	if def == nil {
		return fmt.Errorf("command must not be nil")
	}

	spec := def.Spec()
	if spec.Name() == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tokens := append([]string{spec.Name()}, spec.Aliases()...)
	for _, existing := range r.commands {
		for _, token := range tokens {
			if existing.Spec().Matches(token) {
				return fmt.Errorf("%w: %q is already used by %q", ErrConflict, token, existing.Spec().Name())
			}
		}
	}

	r.commands = append(r.commands, def)
	return nil
}

// Find returns the first registered command matching token.
func (r *Registry) Find(token string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, def := range r.commands {
		if def.Spec().Matches(token) {
			return def, true
		}
	}
	return nil, false
}

// List returns the registered commands in registration order.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Definition(nil), r.commands...)
}

// Permitted reports whether actor may run def.
func Permitted(actor Actor, def Definition) bool {
	return !def.Spec().RequiresElevated() || actor.Elevated()
}

// Dispatch runs the command matching token with args.
// A panic inside the command is recovered and returned as ErrCommandFailed.
func (r *Registry) Dispatch(ctx context.Context, actor Actor, token string, args []string) (err error) {
	def, ok := r.Find(token)
	if !ok {
		actor.Send(fmt.Sprintf("Unknown command %q. Use \"help\" to list commands.", token))
		return fmt.Errorf("%w: %s", ErrUnknownCommand, token)
	}

	if !Permitted(actor, def) {
		actor.Send("You do not have permission to use this command.")
		return fmt.Errorf("%w: %s", ErrNotPermitted, def.Spec().Name())
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Command panicked",
				r.logger.Args("command", def.Spec().Name(), "actor", actor.Name(), "panic", fmt.Sprint(rec)))
			actor.Send("An internal error occurred while running this command.")
			err = fmt.Errorf("%w: %s: %v", ErrCommandFailed, def.Spec().Name(), rec)
		}
	}()

	def.Execute(ctx, actor, args)
	return nil
}

// Complete returns suggestions for a partially typed invocation, where
// args[0] is the command token. With at most one arg the names and aliases
// available to actor are suggested; otherwise the matched command completes
// its own arguments.
func (r *Registry) Complete(actor Actor, args []string) (suggestions []string) {
	if len(args) <= 1 {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		return r.completeTokens(actor, prefix)
	}

	def, ok := r.Find(args[0])
	if !ok || !Permitted(actor, def) {
		return nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("Completion panicked",
				r.logger.Args("command", def.Spec().Name(), "panic", fmt.Sprint(rec)))
			suggestions = nil
		}
	}()

	return def.Complete(actor, args[1:])
}

// completeTokens returns the names and aliases actor may use that start with prefix.
func (r *Registry) completeTokens(actor Actor, prefix string) []string {
	var tokens []string
	for _, def := range r.List() {
		if !Permitted(actor, def) {
			continue
		}
		spec := def.Spec()
		tokens = append(tokens, FilterPrefix(append([]string{spec.Name()}, spec.Aliases()...), prefix)...)
	}
	sort.Strings(tokens)
	return tokens
}
