package world

import (
	"errors"
	"strings"
	"testing"

	"github.com/c360studio/semworld/vocabulary/mud"
)

const sampleDefinition = `
rooms:
  hall:
    name: Great Hall
    description: A vaulted stone hall.
    exits:
      north: library
  library:
    name: Library
    description: Shelves upon shelves.
    exits:
      south: hall

items:
  lamp:
    name: brass lamp
    description: A tarnished brass lamp.
    portable: true
    room: hall
  fountain:
    name: marble fountain
    description: Water murmurs endlessly.
    portable: false
    room: library

players:
  - name: Explorer
    room: hall
`

func TestLoadDefinition(t *testing.T) {
	def, err := LoadDefinition(strings.NewReader(sampleDefinition))
	if err != nil {
		t.Fatalf("LoadDefinition: %v", err)
	}
	if len(def.Rooms) != 2 || len(def.Items) != 2 || len(def.Players) != 1 {
		t.Errorf("parsed %d rooms, %d items, %d players, want 2, 2, 1",
			len(def.Rooms), len(def.Items), len(def.Players))
	}
	if def.Rooms["hall"].Exits["north"] != "library" {
		t.Errorf("hall exits = %v", def.Rooms["hall"].Exits)
	}
	if !def.Items["lamp"].Portable {
		t.Error("lamp should be portable")
	}
}

func TestApply(t *testing.T) {
	def, err := LoadDefinition(strings.NewReader(sampleDefinition))
	if err != nil {
		t.Fatalf("LoadDefinition: %v", err)
	}

	m := NewModel()
	applied, err := def.Apply(m)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if len(applied.RoomKeys) != 2 || applied.RoomKeys[0] != "hall" || applied.RoomKeys[1] != "library" {
		t.Errorf("RoomKeys = %v, want [hall library]", applied.RoomKeys)
	}
	hall := applied.Rooms["hall"]
	library := applied.Rooms["library"]

	if name, _ := m.RoomName(hall); name != "Great Hall" {
		t.Errorf("hall name = %q", name)
	}
	if exits := m.RoomExits(hall); exits[mud.North] != library {
		t.Errorf("hall exits = %v", exits)
	}
	if exits := m.RoomExits(library); exits[mud.South] != hall {
		t.Errorf("library exits = %v", exits)
	}

	if loc, err := m.ItemLocation(applied.Items["lamp"]); err != nil || loc != hall {
		t.Errorf("lamp location = %q, %v, want the hall", loc, err)
	}
	if portable, _ := m.ItemPortable(applied.Items["fountain"]); portable {
		t.Error("fountain should not be portable")
	}

	if len(applied.Players) != 1 {
		t.Fatalf("players = %v, want one", applied.Players)
	}
	if loc, err := m.PlayerLocation(applied.Players[0]); err != nil || loc != hall {
		t.Errorf("player location = %q, %v, want the hall", loc, err)
	}
}

func TestApplyValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown direction",
			yaml: "rooms:\n  a:\n    name: A\n    exits:\n      sideways: a\n",
			want: "unknown direction",
		},
		{
			name: "undeclared exit target",
			yaml: "rooms:\n  a:\n    name: A\n    exits:\n      north: nowhere\n",
			want: "undeclared room",
		},
		{
			name: "undeclared item room",
			yaml: "rooms:\n  a:\n    name: A\nitems:\n  k:\n    name: key\n    room: nowhere\n",
			want: "undeclared room",
		},
		{
			name: "player without room",
			yaml: "rooms:\n  a:\n    name: A\nplayers:\n  - name: P\n",
			want: "no starting room",
		},
		{
			name: "player undeclared room",
			yaml: "rooms:\n  a:\n    name: A\nplayers:\n  - name: P\n    room: nowhere\n",
			want: "undeclared room",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := LoadDefinition(strings.NewReader(tt.yaml))
			if err != nil {
				t.Fatalf("LoadDefinition: %v", err)
			}
			m := NewModel()
			if _, err := def.Apply(m); err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Apply error = %v, want mention of %q", err, tt.want)
			}
			if m.Store().Size() != 0 {
				t.Errorf("failed Apply left %d statements behind", m.Store().Size())
			}
		})
	}
}

func TestApplyItemWithoutRoom(t *testing.T) {
	input := "rooms:\n  a:\n    name: A\nitems:\n  k:\n    name: key\n    portable: true\n"
	def, err := LoadDefinition(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadDefinition: %v", err)
	}

	m := NewModel()
	applied, err := def.Apply(m)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := m.ItemLocation(applied.Items["k"]); !errors.Is(err, ErrNotFound) {
		t.Errorf("unplaced item location error = %v, want ErrNotFound", err)
	}
}
