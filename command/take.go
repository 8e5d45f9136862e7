package command

import (
	"strings"

	"github.com/c360studio/semworld/world"
)

// TakeHandler moves an item from the room into the actor's inventory.
type TakeHandler struct{}

// Config returns the registration data.
func (TakeHandler) Config() Config {
	return Config{
		Name:        "take",
		Aliases:     []string{"get", "pickup"},
		Description: "Pick up an item",
	}
}

// Execute finds the named item in the current room and, if it is
// portable, puts it in the actor's inventory.
func (TakeHandler) Execute(m *world.Model, actor world.ID, args []string) Result {
	if len(args) == 0 {
		return Failure("take what?")
	}
	room, err := m.PlayerLocation(actor)
	if err != nil {
		return Failure("you are nowhere")
	}
	wanted := strings.ToLower(strings.Join(args, " "))
	item, name, ok := findByName(m, m.RoomItems(room), wanted)
	if !ok {
		return Failure("there is no %q here", wanted)
	}
	portable, err := m.ItemPortable(item)
	if err != nil || !portable {
		return Failure("you can't take the %s", name)
	}
	m.AddToInventory(actor, item)
	return Success("you take the %s", name)
}

// findByName matches the first item whose name contains wanted,
// compared case-insensitively. wanted must already be lowercase.
func findByName(m *world.Model, items []world.ID, wanted string) (world.ID, string, bool) {
	for _, item := range items {
		name, err := m.ItemName(item)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(name), wanted) {
			return item, name, true
		}
	}
	return "", "", false
}
