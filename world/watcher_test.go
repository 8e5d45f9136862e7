package world

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	watchedPath := filepath.Join(dir, "world.yaml")
	otherPath := filepath.Join(dir, "notes.txt")
	writeFile(t, watchedPath, "rooms:\n")
	writeFile(t, otherPath, "scratch\n")

	w, err := NewWatcher([]string{watchedPath}, 50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	writeFile(t, otherPath, "still scratch\n")
	writeFile(t, watchedPath, "rooms: {}\n")

	select {
	case batch := <-w.Events():
		abs, _ := filepath.Abs(watchedPath)
		if len(batch) != 1 || batch[0] != abs {
			t.Errorf("batch = %v, want [%s]", batch, abs)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change batch within 3s")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	writeFile(t, path, "rooms:\n")

	w, err := NewWatcher([]string{path}, 50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Start(context.Background())

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("Events delivered a batch after Stop")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Events not closed within 3s of Stop")
	}
}
