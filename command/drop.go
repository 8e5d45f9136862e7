package command

import (
	"strings"

	"github.com/c360studio/semworld/world"
)

// DropHandler moves an item from the actor's inventory onto the floor
// of the current room.
type DropHandler struct{}

// Config returns the registration data.
func (DropHandler) Config() Config {
	return Config{Name: "drop", Description: "Drop a carried item"}
}

// Execute finds the named item in the actor's inventory and leaves it
// in the current room.
func (DropHandler) Execute(m *world.Model, actor world.ID, args []string) Result {
	if len(args) == 0 {
		return Failure("drop what?")
	}
	wanted := strings.ToLower(strings.Join(args, " "))
	item, name, ok := findByName(m, m.PlayerInventory(actor), wanted)
	if !ok {
		return Failure("you aren't carrying %q", wanted)
	}
	if err := m.DropItem(actor, item); err != nil {
		return Failure("you have nowhere to drop that")
	}
	return Success("you drop the %s", name)
}
