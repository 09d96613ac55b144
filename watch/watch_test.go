package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatcher_Trigger(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "prog.bf")
	assert.NoError(os.WriteFile(path, []byte("+."), 0644))

	runs := make(chan struct{}, 8)
	w, err := NewWatcher(path, func(ctx context.Context) {
		runs <- struct{}{}
	})
	assert.NoError(err)

	assert.NoError(w.Start(context.Background()))
	defer w.Stop()

	w.Trigger()

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("no run after trigger")
	}
}

func TestWatcher_Change(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bf")
	assert.NoError(os.WriteFile(path, []byte("+."), 0644))

	runs := make(chan string, 8)
	w, err := NewWatcher(path, func(ctx context.Context) {
		data, _ := os.ReadFile(path)
		runs <- string(data)
	})
	assert.NoError(err)
	w.Debounce = 10 * time.Millisecond

	assert.NoError(w.Start(context.Background()))
	defer w.Stop()

	// Other files in the directory are ignored.
	assert.NoError(os.WriteFile(filepath.Join(dir, "other.bf"), []byte("-"), 0644))
	assert.NoError(os.WriteFile(path, []byte("++."), 0644))

	select {
	case text := <-runs:
		assert.Equal("++.", text)
	case <-time.After(5 * time.Second):
		t.Fatal("no run after change")
	}
}

func TestWatcher_CancelsRun(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "prog.bf")
	assert.NoError(os.WriteFile(path, []byte("+[]"), 0644))

	started := make(chan struct{}, 8)
	cancelled := make(chan struct{}, 8)
	w, err := NewWatcher(path, func(ctx context.Context) {
		started <- struct{}{}
		<-ctx.Done()
		cancelled <- struct{}{}
	})
	assert.NoError(err)

	assert.NoError(w.Start(context.Background()))

	w.Trigger()
	<-started

	w.Trigger()
	select {
	case <-cancelled:
	case <-time.After(5 * time.Second):
		t.Fatal("run not cancelled")
	}

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("no second run")
	}

	w.Stop()
	select {
	case <-cancelled:
	case <-time.After(5 * time.Second):
		t.Fatal("run not cancelled by stop")
	}
}
