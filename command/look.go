package command

import (
	"strings"

	"github.com/c360studio/semworld/vocabulary/mud"
	"github.com/c360studio/semworld/world"
)

// LookHandler describes the actor's current room.
type LookHandler struct{}

// Config returns the registration data.
func (LookHandler) Config() Config {
	return Config{Name: "look", Description: "Describe the current room"}
}

// Execute renders the room the actor is standing in.
func (LookHandler) Execute(m *world.Model, actor world.ID, args []string) Result {
	room, err := m.PlayerLocation(actor)
	if err != nil {
		return Failure("you are nowhere")
	}
	return Success("%s", describeRoom(m, room))
}

// describeRoom renders a room as its name, description, exits, and
// visible items, one per line.
func describeRoom(m *world.Model, room world.ID) string {
	var sb strings.Builder

	if name, err := m.RoomName(room); err == nil {
		sb.WriteString(name + "\n")
	}
	if desc, err := m.RoomDescription(room); err == nil && desc != "" {
		sb.WriteString(desc + "\n")
	}

	exits := m.RoomExits(room)
	if len(exits) == 0 {
		sb.WriteString("There are no obvious exits.\n")
	} else {
		var names []string
		for _, d := range mud.Directions {
			if _, ok := exits[d]; ok {
				names = append(names, string(d))
			}
		}
		sb.WriteString("Exits: " + strings.Join(names, ", ") + "\n")
	}

	if items := m.RoomItems(room); len(items) > 0 {
		var names []string
		for _, item := range items {
			if name, err := m.ItemName(item); err == nil {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			sb.WriteString("You see: " + strings.Join(names, ", ") + "\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
