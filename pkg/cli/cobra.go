package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// ActorFunc returns the actor for a cobra invocation.
type ActorFunc func(cmd *cobra.Command) Actor

// Commands builds one cobra command per registered definition. Each command
// dispatches through the registry and completes through Complete.
func (r *Registry) Commands(actorFor ActorFunc) []*cobra.Command {
	defs := r.List()
	cmds := make([]*cobra.Command, 0, len(defs))

	for _, def := range defs {
		spec := def.Spec()
		name := spec.Name()

		cmd := &cobra.Command{
			Use:     name + " [args...]",
			Aliases: spec.Aliases(),
			Short:   spec.Summary(),
			Example: formatExamples(spec.Usages()),
			Args:    cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.Dispatch(cmd.Context(), actorFor(cmd), name, args)
			},
			ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
				line := append(append([]string{name}, args...), toComplete)
				return FilterPrefix(r.Complete(actorFor(cmd), line), toComplete), cobra.ShellCompDirectiveNoFileComp
			},
		}
		if spec.RequiresElevated() {
			cmd.Annotations = map[string]string{"elevated": "true"}
		}

		cmds = append(cmds, cmd)
	}

	return cmds
}

// formatExamples indents usage lines for cobra's Examples section.
func formatExamples(usages []string) string {
	if len(usages) == 0 {
		return ""
	}
	return "  " + strings.Join(usages, "\n  ")
}
