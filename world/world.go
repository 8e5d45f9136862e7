// Package world models a text-adventure world on top of an RDF
// statement store: rooms joined by directional exits, items that sit in
// rooms or inventories, and players that move between rooms.
package world

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/semworld/rdf"
	"github.com/c360studio/semworld/vocabulary"
	"github.com/c360studio/semworld/vocabulary/mud"
)

// DefaultBaseIRI is the namespace entity identifiers are minted under
// when no override is configured.
const DefaultBaseIRI = "https://semworld.dev/entity"

// ID is a world-scoped entity identifier, the final path segment of the
// entity's IRI, e.g. "room-1".
type ID string

// Kind discriminates the entity kinds the model mints.
type Kind string

// The entity kinds.
const (
	KindRoom   Kind = "room"
	KindItem   Kind = "item"
	KindPlayer Kind = "player"
)

// Model wraps a statement store with game-world semantics. It is not
// safe for concurrent use; the game loop is single-threaded.
type Model struct {
	store   *rdf.Store
	baseIRI string
	seq     int
	logger  *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithStore uses an existing store instead of creating a fresh one.
func WithStore(s *rdf.Store) Option {
	return func(m *Model) { m.store = s }
}

// WithBaseIRI overrides the namespace entity identifiers are minted
// under. A trailing slash is stripped.
func WithBaseIRI(base string) Option {
	return func(m *Model) { m.baseIRI = strings.TrimRight(base, "/") }
}

// WithLogger sets the logger used for world mutations.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// NewModel creates an empty world. The entity counter starts at zero,
// so the first entity of any kind gets sequence number 1.
func NewModel(opts ...Option) *Model {
	m := &Model{
		baseIRI: DefaultBaseIRI,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = rdf.NewStore()
	}
	vocabulary.ApplyPrefixes(m.store)
	m.store.SetPrefix("mud", string(mud.Namespace))
	m.store.SetPrefix("world", m.baseIRI+"/")
	return m
}

// Store exposes the underlying statement store.
func (m *Model) Store() *rdf.Store { return m.store }

// BaseIRI returns the namespace entity identifiers are minted under.
func (m *Model) BaseIRI() string { return m.baseIRI }

// IRI returns the full identifier term for an entity.
func (m *Model) IRI(id ID) rdf.NamedResource {
	return rdf.NewNamedResource(m.baseIRI + "/" + string(id))
}

// mint returns the next identifier for the kind. One counter is shared
// by every kind, so identifiers are unique across the whole world.
func (m *Model) mint(kind Kind) ID {
	m.seq++
	return ID(fmt.Sprintf("%s-%d", kind, m.seq))
}

// idFromTerm recovers an entity identifier from an IRI term: the final
// path segment.
func idFromTerm(t rdf.Term) ID {
	n, ok := t.(rdf.NamedResource)
	if !ok {
		return ""
	}
	if i := strings.LastIndex(n.IRI, "/"); i >= 0 {
		return ID(n.IRI[i+1:])
	}
	return ID(n.IRI)
}

// CreateRoom mints a room with a name and description.
func (m *Model) CreateRoom(name, description string) ID {
	id := m.mint(KindRoom)
	subject := m.IRI(id)
	m.store.Add(rdf.NewStatement(subject, vocabulary.Type, mud.Room))
	m.store.Add(rdf.NewStatement(subject, mud.Name, rdf.NewLiteral(name)))
	m.store.Add(rdf.NewStatement(subject, mud.Description, rdf.NewLiteral(description)))
	m.logger.Debug("Created room", "id", id, "name", name)
	return id
}

// ConnectRooms adds a one-way exit from one room to another. Call it
// again with the rooms and direction swapped for a two-way passage.
func (m *Model) ConnectRooms(from ID, direction mud.Direction, to ID) {
	m.store.Add(rdf.NewStatement(m.IRI(from), direction.Predicate(), m.IRI(to)))
	m.logger.Debug("Connected rooms", "from", from, "direction", direction, "to", to)
}

// CreateItem mints an item with a name, description, and portability.
// The item starts nowhere; use PlaceItem to put it in a room.
func (m *Model) CreateItem(name, description string, portable bool) ID {
	id := m.mint(KindItem)
	subject := m.IRI(id)
	m.store.Add(rdf.NewStatement(subject, vocabulary.Type, mud.Item))
	m.store.Add(rdf.NewStatement(subject, mud.Name, rdf.NewLiteral(name)))
	m.store.Add(rdf.NewStatement(subject, mud.Description, rdf.NewLiteral(description)))
	m.store.Add(rdf.NewStatement(subject, mud.Portable, rdf.NewBoolean(portable)))
	m.logger.Debug("Created item", "id", id, "name", name, "portable", portable)
	return id
}

// CreatePlayer mints a player standing in the given room.
func (m *Model) CreatePlayer(name string, room ID) ID {
	id := m.mint(KindPlayer)
	subject := m.IRI(id)
	m.store.Add(rdf.NewStatement(subject, vocabulary.Type, mud.Player))
	m.store.Add(rdf.NewStatement(subject, mud.Name, rdf.NewLiteral(name)))
	m.store.Add(rdf.NewStatement(subject, mud.Location, m.IRI(room)))
	m.logger.Debug("Created player", "id", id, "name", name, "room", room)
	return id
}

// relocateItem moves an item to a new holder. Every location,
// containment, and inventory statement about the item is removed first,
// then the holder link and the item's location are written as a pair, so
// an item is always held by at most one thing.
func (m *Model) relocateItem(item, holder ID, link rdf.NamedResource) {
	itemTerm := m.IRI(item)
	m.store.RemoveMatching(rdf.Pattern{Subject: itemTerm, Predicate: mud.Location})
	m.store.RemoveMatching(rdf.Pattern{Predicate: mud.Contains, Object: itemTerm})
	m.store.RemoveMatching(rdf.Pattern{Predicate: mud.Inventory, Object: itemTerm})

	holderTerm := m.IRI(holder)
	m.store.Add(rdf.NewStatement(holderTerm, link, itemTerm))
	m.store.Add(rdf.NewStatement(itemTerm, mud.Location, holderTerm))
}

// PlaceItem puts an item in a room, removing it from wherever it was
// before, including a player's inventory.
func (m *Model) PlaceItem(item, room ID) {
	m.relocateItem(item, room, mud.Contains)
	m.logger.Debug("Placed item", "item", item, "room", room)
}

// AddToInventory moves an item into a player's inventory, removing it
// from wherever it was before.
func (m *Model) AddToInventory(player, item ID) {
	m.relocateItem(item, player, mud.Inventory)
	m.logger.Debug("Item taken", "player", player, "item", item)
}

// RemoveFromInventory takes an item out of a player's inventory without
// giving it a new home. The item has no location afterward.
func (m *Model) RemoveFromInventory(player, item ID) {
	itemTerm := m.IRI(item)
	m.store.Remove(rdf.NewStatement(m.IRI(player), mud.Inventory, itemTerm))
	m.store.Remove(rdf.NewStatement(itemTerm, mud.Location, m.IRI(player)))
}

// MovePlayer sets a player's location, clearing any stale location
// statements first so the player is never in two rooms at once.
func (m *Model) MovePlayer(player, room ID) {
	subject := m.IRI(player)
	m.store.RemoveMatching(rdf.Pattern{Subject: subject, Predicate: mud.Location})
	m.store.Add(rdf.NewStatement(subject, mud.Location, m.IRI(room)))
	m.logger.Debug("Player moved", "player", player, "room", room)
}

// DropItem moves an item from a player's inventory onto the floor of
// the room the player is standing in.
func (m *Model) DropItem(player, item ID) error {
	room, err := m.PlayerLocation(player)
	if err != nil {
		return fmt.Errorf("drop item %s: %w", item, err)
	}
	m.relocateItem(item, room, mud.Contains)
	m.logger.Debug("Item dropped", "player", player, "item", item, "room", room)
	return nil
}
