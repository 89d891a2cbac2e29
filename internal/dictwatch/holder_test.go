package dictwatch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nasayuwe/yuwe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDictionary(t *testing.T, path string, entries ...yuwe.Entry) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, yuwe.WriteDictionary(f, entries))
	require.NoError(t, f.Close())
}

func TestNewMissingFile(t *testing.T) {
	h, err := New(filepath.Join(t.TempDir(), "dictionary.json"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Engine().Dictionary().Len())
}

func TestNewMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))
	_, err := New(path, nil)
	assert.Error(t, err)
}

func TestReloadAndSwap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.json")
	writeDictionary(t, path, yuwe.Entry{Word: "casa", Translation: "yat"})

	h, err := New(path, nil)
	require.NoError(t, err)
	old, gen := h.Snapshot()
	assert.Same(t, old, h.Engine())

	var reloads atomic.Int32
	h.OnReload(func(*yuwe.Engine) { reloads.Add(1) })

	writeDictionary(t, path,
		yuwe.Entry{Word: "casa", Translation: "pala"},
		yuwe.Entry{Word: "agua", Translation: "yu'"},
	)
	require.NoError(t, h.Reload())

	tr, ok := h.Engine().LookupForward("casa")
	require.True(t, ok)
	assert.Equal(t, "pala", tr)
	// earlier snapshots are untouched
	tr, _ = old.LookupForward("casa")
	assert.Equal(t, "yat", tr)

	h.Swap([]yuwe.Entry{{Word: "sol", Translation: "sek"}})
	assert.Equal(t, 1, h.Engine().Dictionary().Len())
	assert.Equal(t, int32(2), reloads.Load())

	e, next := h.Snapshot()
	assert.Same(t, h.Engine(), e)
	assert.Equal(t, gen+2, next)
}

func TestReloadKeepsSnapshotOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.json")
	writeDictionary(t, path, yuwe.Entry{Word: "casa", Translation: "yat"})
	h, err := New(path, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"casa": 1}`), 0o644))
	assert.Error(t, h.Reload())
	assert.Equal(t, 1, h.Engine().Dictionary().Len())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.json")
	writeDictionary(t, path, yuwe.Entry{Word: "casa", Translation: "yat"})

	h, err := New(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx) }()

	// replace the file the way the store does, repeatedly since the
	// watcher may not be registered yet
	tmp := filepath.Join(dir, ".dictionary-tmp.json")
	deadline := time.Now().Add(5 * time.Second)
	for h.Engine().Dictionary().Len() != 2 {
		if time.Now().After(deadline) {
			t.Fatal("dictionary was not reloaded")
		}
		writeDictionary(t, tmp,
			yuwe.Entry{Word: "casa", Translation: "pala"},
			yuwe.Entry{Word: "sol", Translation: "sek"},
		)
		require.NoError(t, os.Rename(tmp, path))
		time.Sleep(50 * time.Millisecond)
	}
	tr, _ := h.Engine().LookupForward("casa")
	assert.Equal(t, "pala", tr)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
