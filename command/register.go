package command

import "github.com/c360studio/semworld/vocabulary/mud"

// NewDefaultRegistry builds the standard command set: looking around,
// moving, handling items, and help.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(LookHandler{})
	r.Register(GoHandler{})
	for _, d := range mud.Directions {
		r.Register(DirectionHandler{Direction: d})
	}
	r.Register(TakeHandler{})
	r.Register(DropHandler{})
	r.Register(InventoryHandler{})
	r.Register(HelpHandler{Registry: r})
	return r
}
