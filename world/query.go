package world

import (
	"github.com/c360studio/semworld/rdf"
	"github.com/c360studio/semworld/vocabulary/mud"
)

// firstLiteral returns the first literal object for the subject and
// predicate, or ErrNotFound.
func (m *Model) firstLiteral(subject rdf.NamedResource, predicate rdf.NamedResource) (string, error) {
	for _, obj := range m.store.ObjectsFor(subject, predicate, nil) {
		if lit, ok := obj.(rdf.Literal); ok {
			return lit.Value, nil
		}
	}
	return "", ErrNotFound
}

// firstLinked returns the identifier behind the first resource object
// for the subject and predicate, or ErrNotFound.
func (m *Model) firstLinked(subject rdf.NamedResource, predicate rdf.NamedResource) (ID, error) {
	for _, obj := range m.store.ObjectsFor(subject, predicate, nil) {
		if obj.Kind() == rdf.KindNamed {
			return idFromTerm(obj), nil
		}
	}
	return "", ErrNotFound
}

// linkedIDs collects the identifiers of every resource object for the
// subject and predicate, preserving statement order.
func (m *Model) linkedIDs(subject rdf.NamedResource, predicate rdf.NamedResource) []ID {
	var ids []ID
	for _, obj := range m.store.ObjectsFor(subject, predicate, nil) {
		if obj.Kind() == rdf.KindNamed {
			ids = append(ids, idFromTerm(obj))
		}
	}
	return ids
}

// RoomName returns the display name of a room.
func (m *Model) RoomName(room ID) (string, error) {
	return m.firstLiteral(m.IRI(room), mud.Name)
}

// RoomDescription returns the long-form description of a room.
func (m *Model) RoomDescription(room ID) (string, error) {
	return m.firstLiteral(m.IRI(room), mud.Description)
}

// ItemName returns the display name of an item.
func (m *Model) ItemName(item ID) (string, error) {
	return m.firstLiteral(m.IRI(item), mud.Name)
}

// ItemDescription returns the long-form description of an item.
func (m *Model) ItemDescription(item ID) (string, error) {
	return m.firstLiteral(m.IRI(item), mud.Description)
}

// PlayerName returns the display name of a player.
func (m *Model) PlayerName(player ID) (string, error) {
	return m.firstLiteral(m.IRI(player), mud.Name)
}

// ItemPortable reports whether an item can be picked up. Only the exact
// lexical value "true" counts as portable.
func (m *Model) ItemPortable(item ID) (bool, error) {
	v, err := m.firstLiteral(m.IRI(item), mud.Portable)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// PlayerLocation returns the room a player stands in.
func (m *Model) PlayerLocation(player ID) (ID, error) {
	return m.firstLinked(m.IRI(player), mud.Location)
}

// ItemLocation returns whatever holds the item: a room or a player.
func (m *Model) ItemLocation(item ID) (ID, error) {
	return m.firstLinked(m.IRI(item), mud.Location)
}

// RoomExits returns the exits from a room keyed by direction.
// Directions without an exit are absent from the map.
func (m *Model) RoomExits(room ID) map[mud.Direction]ID {
	exits := make(map[mud.Direction]ID)
	subject := m.IRI(room)
	for _, d := range mud.Directions {
		for _, obj := range m.store.ObjectsFor(subject, d.Predicate(), nil) {
			if obj.Kind() == rdf.KindNamed {
				exits[d] = idFromTerm(obj)
				break
			}
		}
	}
	return exits
}

// RoomItems returns the items lying in a room, in arrival order.
func (m *Model) RoomItems(room ID) []ID {
	return m.linkedIDs(m.IRI(room), mud.Contains)
}

// PlayerInventory returns the items a player carries, in the order they
// were taken.
func (m *Model) PlayerInventory(player ID) []ID {
	return m.linkedIDs(m.IRI(player), mud.Inventory)
}
