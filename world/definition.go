package world

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semworld/vocabulary/mud"
)

// Definition is a declarative world description loaded from YAML. Keys
// are local to the file: exits, item placements, and player starting
// rooms refer to rooms by their key in the same definition.
type Definition struct {
	// Rooms maps room keys to room declarations.
	Rooms map[string]RoomDef `yaml:"rooms"`

	// Items maps item keys to item declarations.
	Items map[string]ItemDef `yaml:"items"`

	// Players lists the player characters to create.
	Players []PlayerDef `yaml:"players"`
}

// RoomDef declares one room.
type RoomDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Exits maps direction names to room keys.
	Exits map[string]string `yaml:"exits"`
}

// ItemDef declares one item. Room is optional; an item with no room
// starts nowhere until something places it.
type ItemDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Portable    bool   `yaml:"portable"`
	Room        string `yaml:"room"`
}

// PlayerDef declares one player. Room is required.
type PlayerDef struct {
	Name string `yaml:"name"`
	Room string `yaml:"room"`
}

// LoadDefinition parses a YAML world definition.
func LoadDefinition(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	return &def, nil
}

// Validate checks the definition's cross-references: every exit
// direction parses and every referenced room is declared.
func (d *Definition) Validate() error {
	for key, room := range d.Rooms {
		for dir, target := range room.Exits {
			if _, ok := mud.ParseDirection(dir); !ok {
				return fmt.Errorf("room %q: unknown direction %q", key, dir)
			}
			if _, ok := d.Rooms[target]; !ok {
				return fmt.Errorf("room %q: exit %s leads to undeclared room %q", key, dir, target)
			}
		}
	}
	for key, item := range d.Items {
		if item.Room == "" {
			continue
		}
		if _, ok := d.Rooms[item.Room]; !ok {
			return fmt.Errorf("item %q: undeclared room %q", key, item.Room)
		}
	}
	for _, player := range d.Players {
		if player.Room == "" {
			return fmt.Errorf("player %q: no starting room", player.Name)
		}
		if _, ok := d.Rooms[player.Room]; !ok {
			return fmt.Errorf("player %q: undeclared room %q", player.Name, player.Room)
		}
	}
	return nil
}

// Applied records what a definition created, keyed by the definition's
// local names.
type Applied struct {
	// Rooms maps room keys to minted identifiers.
	Rooms map[string]ID

	// RoomKeys lists the room keys in creation order.
	RoomKeys []string

	// Items maps item keys to minted identifiers.
	Items map[string]ID

	// Players lists the minted player identifiers in declaration order.
	Players []ID
}

// Apply validates the definition and creates its entities in the model.
// Rooms are created first, in sorted key order, then exits, items, and
// players. A validation error leaves the model untouched.
func (d *Definition) Apply(m *Model) (*Applied, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	applied := &Applied{
		Rooms: make(map[string]ID),
		Items: make(map[string]ID),
	}

	roomKeys := make([]string, 0, len(d.Rooms))
	for key := range d.Rooms {
		roomKeys = append(roomKeys, key)
	}
	sort.Strings(roomKeys)
	for _, key := range roomKeys {
		room := d.Rooms[key]
		applied.Rooms[key] = m.CreateRoom(room.Name, room.Description)
	}
	applied.RoomKeys = roomKeys

	for _, key := range roomKeys {
		room := d.Rooms[key]
		dirs := make([]string, 0, len(room.Exits))
		for dir := range room.Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		for _, dir := range dirs {
			direction, _ := mud.ParseDirection(dir)
			m.ConnectRooms(applied.Rooms[key], direction, applied.Rooms[room.Exits[dir]])
		}
	}

	itemKeys := make([]string, 0, len(d.Items))
	for key := range d.Items {
		itemKeys = append(itemKeys, key)
	}
	sort.Strings(itemKeys)
	for _, key := range itemKeys {
		item := d.Items[key]
		id := m.CreateItem(item.Name, item.Description, item.Portable)
		applied.Items[key] = id
		if item.Room != "" {
			m.PlaceItem(id, applied.Rooms[item.Room])
		}
	}

	for _, player := range d.Players {
		applied.Players = append(applied.Players, m.CreatePlayer(player.Name, applied.Rooms[player.Room]))
	}

	return applied, nil
}
