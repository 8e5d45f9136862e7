package world

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), "")
	writeFile(t, filepath.Join(dir, "a.yaml"), "")
	writeFile(t, filepath.Join(dir, "sub", "c.yaml"), "")

	got, err := ResolveFiles([]string{
		filepath.Join(dir, "*.yaml"),
		filepath.Join(dir, "**", "*.yaml"),
	})
	if err != nil {
		t.Fatalf("ResolveFiles: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "sub", "c.yaml"),
	}
	if len(got) != len(want) {
		t.Fatalf("ResolveFiles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveFiles[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "01-rooms.yaml"), `
rooms:
  hall:
    name: Hall
    description: The hall.
`)
	writeFile(t, filepath.Join(dir, "02-people.yaml"), `
rooms:
  garden:
    name: Garden
    description: The garden.
players:
  - name: Explorer
    room: garden
`)

	paths, err := ResolveFiles([]string{filepath.Join(dir, "*.yaml")})
	if err != nil {
		t.Fatalf("ResolveFiles: %v", err)
	}

	m := NewModel()
	applied, err := LoadFiles(m, paths)
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}

	if len(applied.Rooms) != 2 {
		t.Errorf("merged rooms = %v, want 2", applied.Rooms)
	}
	if len(applied.RoomKeys) != 2 || applied.RoomKeys[0] != "hall" {
		t.Errorf("RoomKeys = %v, want hall first", applied.RoomKeys)
	}
	if len(applied.Players) != 1 {
		t.Fatalf("players = %v, want one", applied.Players)
	}
	// the entity counter spans files
	if applied.Rooms["garden"] != ID("room-2") {
		t.Errorf("garden = %q, want room-2", applied.Rooms["garden"])
	}
}

func TestLoadFilesBadDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "rooms: [not, a, map]\n")

	if _, err := LoadFiles(NewModel(), []string{path}); err == nil {
		t.Error("LoadFiles succeeded on malformed YAML")
	}
}
