package builtin

import (
	"context"
	"strings"
	"testing"
)

func TestHelpListsPermittedCommands(t *testing.T) {
	f := newFixture(t)

	actor := player()
	if err := f.reg.Dispatch(context.Background(), actor, "help", nil); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	out := strings.Join(actor.messages, "\n")
	if !strings.Contains(out, "version") || !strings.Contains(out, "Show version information") {
		t.Errorf("expected version in help, got:\n%s", out)
	}
	if strings.Contains(out, "reload") || strings.Contains(out, "config") {
		t.Errorf("elevated commands must be hidden from players, got:\n%s", out)
	}

	actor = op()
	_ = f.reg.Dispatch(context.Background(), actor, "?", nil)
	out = strings.Join(actor.messages, "\n")
	if !strings.Contains(out, "reload") || !strings.Contains(out, "config") {
		t.Errorf("expected elevated commands for op, got:\n%s", out)
	}
}

func TestHelpForCommand(t *testing.T) {
	f := newFixture(t)

	actor := op()
	_ = f.reg.Dispatch(context.Background(), actor, "help", []string{"settings"})

	out := strings.Join(actor.messages, "\n")
	for _, want := range []string{"Show or change settings", "config <key> <value...>", "Aliases: settings"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestHelpUnknownCommand(t *testing.T) {
	f := newFixture(t)

	actor := player()
	_ = f.reg.Dispatch(context.Background(), actor, "help", []string{"config"})

	if len(actor.messages) != 1 || !strings.Contains(actor.messages[0], "Unknown command") {
		t.Errorf("expected unknown command for hidden command, got %v", actor.messages)
	}
}

func TestHelpComplete(t *testing.T) {
	f := newFixture(t)

	got := f.reg.Complete(op(), []string{"help", "re"})
	if len(got) != 1 || got[0] != "reload" {
		t.Errorf("expected [reload], got %v", got)
	}

	if got := f.reg.Complete(player(), []string{"help", "re"}); len(got) != 0 {
		t.Errorf("expected no suggestions for player, got %v", got)
	}

	if got := f.reg.Complete(op(), []string{"help", "config", ""}); got != nil {
		t.Errorf("expected nil past the first argument, got %v", got)
	}
}
