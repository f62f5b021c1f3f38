package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestItemsWatcherReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0o644))

	w, err := NewItemsWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(sampleItems), 0o644))

	select {
	case f := <-w.Updates():
		assert.Len(t, f.Items, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestItemsWatcherStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewItemsWatcher(filepath.Join(t.TempDir(), "items.yaml"), nil)
	require.NoError(t, err)
	w.Stop()
}
