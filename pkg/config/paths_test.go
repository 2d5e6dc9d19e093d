package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestPathResolverDefaults(t *testing.T) {
	r := NewPathResolver("deathswap-test")
	paths := r.Resolve()

	if filepath.Base(paths.Primary) != PrimaryFile {
		t.Errorf("expected %s, got %s", PrimaryFile, paths.Primary)
	}
	if filepath.Base(paths.Overrides) != OverridesFile {
		t.Errorf("expected %s, got %s", OverridesFile, paths.Overrides)
	}
	if !strings.HasPrefix(paths.Primary, r.Dir()) {
		t.Errorf("expected %s under %s", paths.Primary, r.Dir())
	}
}

func TestPathResolverEnv(t *testing.T) {
	t.Setenv("DEATHSWAP_TEST_CONFIG", "/tmp/env-config.yml")

	paths := NewPathResolver("deathswap-test").Resolve()
	if paths.Primary != "/tmp/env-config.yml" {
		t.Errorf("expected env path, got %s", paths.Primary)
	}
}

func TestPathResolverFlagWins(t *testing.T) {
	t.Setenv("DEATHSWAP_TEST_MESSAGES", "/tmp/env-messages.yml")

	r := NewPathResolver("deathswap-test")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := r.AddFlags(fs); err != nil {
		t.Fatalf("AddFlags failed: %v", err)
	}
	if err := fs.Parse([]string{"--messages", "/tmp/flag-messages.yml"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	paths := r.Resolve()
	if paths.Overrides != "/tmp/flag-messages.yml" {
		t.Errorf("expected flag path, got %s", paths.Overrides)
	}
}

func TestPathResolverEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("DEATHSWAP_TEST_CONFIG", filepath.Join(dir, "config.yml"))

	if err := NewPathResolver("deathswap-test").EnsureDir(); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
}
