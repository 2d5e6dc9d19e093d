package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/deathswap/deathswap/pkg/config"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBinder(t *testing.T) (*config.Binder[Settings], string, string) {
	t.Helper()

	dir := t.TempDir()
	primary := filepath.Join(dir, "config.yml")
	overrides := filepath.Join(dir, "messages.yml")

	binder := config.NewBinder(Schema(), config.Options{
		Primary:       config.NewDocument(),
		Overrides:     config.NewDocument(),
		PrimaryPath:   primary,
		OverridesPath: overrides,
		Logger:        pterm.DefaultLogger.WithWriter(&bytes.Buffer{}),
	})
	return binder, primary, overrides
}

func TestSchemaCoversEveryField(t *testing.T) {
	names := Schema().Names()
	assert.Len(t, names, 10)

	seen := make(map[string]bool)
	for _, name := range names {
		assert.False(t, seen[name], "duplicate field %s", name)
		seen[name] = true
	}
}

func TestSchemaSources(t *testing.T) {
	schema := Schema()

	for _, name := range []string{"swapInterval", "warningTime", "randomizeInterval", "swapDelay", "disabledWorlds"} {
		f, ok := schema.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, config.Primary, f.Source, name)
	}

	for _, name := range []string{"startMessage", "swapMessage", "warningMessage", "winMessage", "stopMessage"} {
		f, ok := schema.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, config.Override, f.Source, name)
	}
}

func TestLoadScenario(t *testing.T) {
	binder, primary, overrides := newBinder(t)
	require.NoError(t, os.WriteFile(primary, []byte("swapInterval: 300\n"), 0600))
	require.NoError(t, os.WriteFile(overrides, []byte("winMessage: You survived!\n"), 0600))

	s := binder.Reload()
	assert.Equal(t, 300, s.SwapInterval)
	assert.Equal(t, "You survived!", s.WinMessage)
	assert.Equal(t, New().StartMessage, s.StartMessage)

	require.NoError(t, os.Remove(overrides))

	s = binder.Load()
	assert.Equal(t, 300, s.SwapInterval)
	assert.Equal(t, "Game Over", s.WinMessage)
}

func TestDefaultsRoundTrip(t *testing.T) {
	binder, _, _ := newBinder(t)

	require.NoError(t, binder.Save(New()))
	assert.Equal(t, New(), binder.Reload())
}

func TestSaveNilListWritesDefault(t *testing.T) {
	binder, _, _ := newBinder(t)

	s := New()
	s.DisabledWorlds = nil
	s.SwapInterval = 60
	require.NoError(t, binder.Save(s))

	loaded := binder.Reload()
	assert.Equal(t, 60, loaded.SwapInterval)
	assert.Equal(t, []string{"world_nether", "world_the_end"}, loaded.DisabledWorlds)
}

func TestClone(t *testing.T) {
	s := New()
	c := s.Clone()
	c.DisabledWorlds[0] = "changed"
	c.WinMessage = "changed"

	assert.Equal(t, "world_nether", s.DisabledWorlds[0])
	assert.Equal(t, "Game Over", s.WinMessage)
}

func TestLive(t *testing.T) {
	live := NewLive(nil)
	assert.Equal(t, New(), live.Get())

	s := live.Get()
	s.SwapInterval = 42
	assert.Equal(t, 500, live.Get().SwapInterval, "Get must return a copy")

	live.Set(s)
	s.SwapInterval = 7
	assert.Equal(t, 42, live.Get().SwapInterval, "Set must store a copy")
}
