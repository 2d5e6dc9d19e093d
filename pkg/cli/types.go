// Package cli defines the command contract shared by every deathswap command
// and the registry that dispatches to them.
//
// A command is a Definition: it carries an immutable Spec (name, summary,
// usages, aliases and whether it needs an elevated actor) and implements
// Execute and Complete. Matching a typed token to a command is done by
// Spec.Matches and is identical for every command.
package cli

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyName is returned when a command spec is built without a name.
var ErrEmptyName = errors.New("command name must not be empty")

// Actor is whoever invoked a command: a player, the console, or a test.
type Actor interface {
	// Name identifies the actor in messages and logs.
	Name() string

	// Elevated reports whether the actor holds the elevated capability.
	Elevated() bool

	// Send delivers a message to the actor.
	Send(msg string)
}

// Spec is the identity of a command. It is immutable after construction.
type Spec struct {
	name             string
	summary          string
	usages           []string
	aliases          []string
	requiresElevated bool
}

// NewSpec builds a command spec. A nil aliases slice yields no aliases.
// Duplicate aliases are collapsed, keeping the first occurrence.
func NewSpec(name, summary string, aliases, usages []string, requiresElevated bool) (Spec, error) {
	if name == "" {
		return Spec{}, ErrEmptyName
	}

	unique := make([]string, 0, len(aliases))
	seen := make(map[string]bool, len(aliases))
	for _, alias := range aliases {
		if seen[alias] {
			continue
		}
		seen[alias] = true
		unique = append(unique, alias)
	}

	return Spec{
		name:             name,
		summary:          summary,
		usages:           append([]string{}, usages...),
		aliases:          unique,
		requiresElevated: requiresElevated,
	}, nil
}

// MustSpec is like NewSpec but panics on error.
func MustSpec(name, summary string, aliases, usages []string, requiresElevated bool) Spec {
	spec, err := NewSpec(name, summary, aliases, usages, requiresElevated)
	if err != nil {
		panic(err)
	}
	return spec
}

// Name returns the command name.
func (s Spec) Name() string { return s.name }

// Summary returns the one-line description shown by help.
func (s Spec) Summary() string { return s.summary }

// Usages returns the usage lines in display order.
func (s Spec) Usages() []string { return append([]string{}, s.usages...) }

// Aliases returns the alternative names in declaration order. Never nil.
func (s Spec) Aliases() []string { return append([]string{}, s.aliases...) }

// RequiresElevated reports whether only elevated actors may run the command.
func (s Spec) RequiresElevated() bool { return s.requiresElevated }

// Matches reports whether token is the command's name or one of its aliases.
// Comparison is exact; normalizing the token is up to the caller.
func (s Spec) Matches(token string) bool {
	if token == s.name {
		return true
	}
	for _, alias := range s.aliases {
		if token == alias {
			return true
		}
	}
	return false
}

// Definition is a command that can be dispatched.
type Definition interface {
	// Spec returns the command's identity.
	Spec() Spec

	// Execute runs the command. Problems with args are reported to the actor
	// through Send rather than by panicking.
	Execute(ctx context.Context, actor Actor, args []string)

	// Complete returns suggestions for the next argument, or nil.
	// It must be fast and free of side effects.
	Complete(actor Actor, args []string) []string
}

// Base carries a Spec and supplies the default Complete.
// Commands embed it and implement Execute.
type Base struct {
	spec Spec
}

// NewBase wraps spec.
func NewBase(spec Spec) Base {
	return Base{spec: spec}
}

// Spec returns the command's identity.
func (b Base) Spec() Spec {
	return b.spec
}

// Complete offers no suggestions.
func (Base) Complete(Actor, []string) []string {
	return nil
}

// SendUsage tells actor how to invoke the command described by spec.
func SendUsage(actor Actor, spec Spec) {
	usages := spec.Usages()
	if len(usages) == 0 {
		actor.Send("Usage: " + spec.Name())
		return
	}

	actor.Send("Usage:")
	for _, usage := range usages {
		actor.Send("  " + usage)
	}
}

// FilterPrefix returns the candidates starting with prefix.
func FilterPrefix(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
