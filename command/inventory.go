package command

import (
	"strings"

	"github.com/c360studio/semworld/world"
)

// InventoryHandler lists what the actor carries.
type InventoryHandler struct{}

// Config returns the registration data.
func (InventoryHandler) Config() Config {
	return Config{
		Name:        "inventory",
		Aliases:     []string{"inv", "i"},
		Description: "List carried items",
	}
}

// Execute reports the actor's inventory. Listing an empty inventory is
// still a success.
func (InventoryHandler) Execute(m *world.Model, actor world.ID, args []string) Result {
	items := m.PlayerInventory(actor)
	if len(items) == 0 {
		return Success("you are carrying nothing")
	}
	var names []string
	for _, item := range items {
		if name, err := m.ItemName(item); err == nil {
			names = append(names, name)
		}
	}
	return Success("You are carrying: %s", strings.Join(names, ", "))
}
