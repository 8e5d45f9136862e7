// Package mud defines the ontology for the adventure world: the entity
// classes, their properties, and the exit directions linking rooms.
package mud

import (
	"strings"

	"github.com/c360studio/semworld/rdf"
	"github.com/c360studio/semworld/vocabulary"
)

// Namespace is the ontology namespace all terms are minted under.
const Namespace vocabulary.Namespace = "https://semworld.dev/ontology/mud#"

// Entity classes.
var (
	// Room is the class of locations a player can occupy.
	Room = Namespace.Term("Room")

	// Item is the class of objects that sit in rooms or inventories.
	Item = Namespace.Term("Item")

	// Player is the class of player characters.
	Player = Namespace.Term("Player")
)

// Entity properties.
var (
	// Name is the display name of an entity.
	Name = Namespace.Term("name")

	// Description is the long-form text shown when looking at an entity.
	Description = Namespace.Term("description")

	// Location points from an entity to the room or player holding it.
	Location = Namespace.Term("location")

	// Contains points from a room to an item lying in it.
	Contains = Namespace.Term("contains")

	// Portable marks whether an item can be picked up.
	Portable = Namespace.Term("portable")

	// Inventory points from a player to an item they carry.
	Inventory = Namespace.Term("inventory")
)

// Direction is a compass or vertical exit direction.
type Direction string

// The six exit directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists every direction in presentation order.
var Directions = []Direction{North, South, East, West, Up, Down}

// Predicate returns the exit property linking one room to another in
// this direction.
func (d Direction) Predicate() rdf.NamedResource {
	return Namespace.Term(string(d))
}

// Letter returns the single-letter abbreviation for the direction.
func (d Direction) Letter() string {
	return string(d)[:1]
}

// ParseDirection matches a word against the direction names and their
// single-letter abbreviations, case-insensitively.
func ParseDirection(word string) (Direction, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, d := range Directions {
		if w == string(d) || w == d.Letter() {
			return d, true
		}
	}
	return "", false
}
