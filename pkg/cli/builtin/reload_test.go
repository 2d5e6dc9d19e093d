package builtin

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/deathswap/deathswap/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadAppliesDocuments(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, os.WriteFile(filepath.Join(f.dir, config.PrimaryFile), []byte("swapInterval: 300\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, config.OverridesFile), []byte("winMessage: You survived!\n"), 0600))

	actor := op()
	require.NoError(t, f.reg.Dispatch(context.Background(), actor, "reload", nil))
	assert.Equal(t, []string{"Settings reloaded."}, actor.messages)

	current := f.live.Get()
	assert.Equal(t, 300, current.SwapInterval)
	assert.Equal(t, "You survived!", current.WinMessage)
}

func TestReloadRejectsArguments(t *testing.T) {
	f := newFixture(t)

	actor := op()
	require.NoError(t, f.reg.Dispatch(context.Background(), actor, "reload", []string{"now"}))
	assert.Equal(t, []string{"Usage:", "  reload"}, actor.messages)
}

func TestReloadRequiresElevation(t *testing.T) {
	f := newFixture(t)

	err := f.reg.Dispatch(context.Background(), player(), "reload", nil)
	assert.Error(t, err)
}
