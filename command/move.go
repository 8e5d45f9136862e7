package command

import (
	"fmt"

	"github.com/c360studio/semworld/vocabulary/mud"
	"github.com/c360studio/semworld/world"
)

// GoHandler moves the actor through the exit named by its argument.
type GoHandler struct{}

// Config returns the registration data.
func (GoHandler) Config() Config {
	return Config{Name: "go", Description: "Go in a direction"}
}

// Execute parses the direction argument and walks the actor through
// the matching exit.
func (GoHandler) Execute(m *world.Model, actor world.ID, args []string) Result {
	if len(args) == 0 {
		return Failure("go where? give a direction")
	}
	direction, ok := mud.ParseDirection(args[0])
	if !ok {
		return Failure("%q is not a direction", args[0])
	}
	return moveActor(m, actor, direction)
}

// DirectionHandler makes a bare direction word a command of its own,
// so "north" and "n" work without a leading "go".
type DirectionHandler struct {
	Direction mud.Direction
}

// Config returns the registration data.
func (h DirectionHandler) Config() Config {
	return Config{
		Name:        string(h.Direction),
		Aliases:     []string{h.Direction.Letter()},
		Description: fmt.Sprintf("Go %s", h.Direction),
	}
}

// Execute walks the actor in the handler's fixed direction.
func (h DirectionHandler) Execute(m *world.Model, actor world.ID, args []string) Result {
	return moveActor(m, actor, h.Direction)
}

// moveActor follows an exit from the actor's current room and
// describes the room it leads to.
func moveActor(m *world.Model, actor world.ID, direction mud.Direction) Result {
	room, err := m.PlayerLocation(actor)
	if err != nil {
		return Failure("you are nowhere")
	}
	target, ok := m.RoomExits(room)[direction]
	if !ok {
		return Failure("you can't go %s from here", direction)
	}
	m.MovePlayer(actor, target)
	return Success("%s", describeRoom(m, target))
}
