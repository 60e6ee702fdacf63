package pkg

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dzjyyds666/tomlkit/parse/toml"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("name = \"first\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 30*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	var reloads atomic.Int32
	done := make(chan struct{}, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx, func(root *toml.Table, perr *toml.ParseError) {
		if perr != nil {
			t.Errorf("unexpected parse error: %v", perr)
			return
		}
		reloads.Add(1)
		select {
		case done <- struct{}{}:
		default:
		}
	})

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("name = \"second\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never reloaded after write")
	}

	if reloads.Load() == 0 {
		t.Error("expected at least one reload")
	}
}

func TestWatcherReportsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("name = \"ok\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 30*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	errCh := make(chan *toml.ParseError, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx, func(root *toml.Table, perr *toml.ParseError) {
		if perr != nil {
			select {
			case errCh <- perr:
			default:
			}
		}
	})

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("name = \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case perr := <-errCh:
		if perr == nil {
			t.Fatal("expected non-nil parse error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never reported the parse error")
	}
}

func TestWatcherCloseStopsRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	runDone := make(chan struct{})
	go func() {
		w.Run(context.Background(), func(*toml.Table, *toml.ParseError) {})
		close(runDone)
	}()

	time.Sleep(20 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	select {
	case <-runDone:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}
}
