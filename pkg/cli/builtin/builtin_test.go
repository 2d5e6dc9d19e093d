package builtin

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/deathswap/deathswap/pkg/cli"
	"github.com/deathswap/deathswap/pkg/config"
	"github.com/deathswap/deathswap/pkg/settings"
	"github.com/pterm/pterm"
)

type testActor struct {
	name     string
	elevated bool
	messages []string
}

func (a *testActor) Name() string    { return a.name }
func (a *testActor) Elevated() bool  { return a.elevated }
func (a *testActor) Send(msg string) { a.messages = append(a.messages, msg) }

func op() *testActor     { return &testActor{name: "admin", elevated: true} }
func player() *testActor { return &testActor{name: "steve"} }

type fixture struct {
	dir    string
	binder *config.Binder[settings.Settings]
	live   *settings.Live
	reg    *cli.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	logger := pterm.DefaultLogger.WithWriter(&bytes.Buffer{})
	binder := config.NewBinder(settings.Schema(), config.Options{
		PrimaryPath:   filepath.Join(dir, config.PrimaryFile),
		OverridesPath: filepath.Join(dir, config.OverridesFile),
		Logger:        logger,
	})

	f := &fixture{
		dir:    dir,
		binder: binder,
		live:   settings.NewLive(binder.Reload()),
		reg:    cli.NewRegistry(logger),
	}

	defs := []cli.Definition{
		NewHelpCommand(&HelpOptions{Registry: f.reg, ShowAliases: true}),
		NewConfigCommand(&ConfigOptions{Binder: binder, Live: f.live}),
		NewReloadCommand(&ReloadOptions{Binder: binder, Live: f.live}),
		NewVersionCommand(&VersionOptions{Version: "1.2.3", BuildDate: "2026-01-01"}),
	}
	for _, def := range defs {
		if err := f.reg.Register(def); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}
	return f
}
