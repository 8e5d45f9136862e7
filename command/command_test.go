package command

import (
	"strings"
	"testing"

	"github.com/c360studio/semworld/rdf"
	"github.com/c360studio/semworld/vocabulary/mud"
	"github.com/c360studio/semworld/world"
)

// buildWorld assembles a two-room fixture: a hall with a portable lamp
// and a bolted-down statue, a garden to the north, and one player in
// the hall.
func buildWorld(t *testing.T) (*world.Model, world.ID) {
	t.Helper()
	m := world.NewModel()
	hall := m.CreateRoom("Hall", "A dusty hall.")
	garden := m.CreateRoom("Garden", "Roses everywhere.")
	m.ConnectRooms(hall, mud.North, garden)
	m.ConnectRooms(garden, mud.South, hall)
	lamp := m.CreateItem("brass lamp", "A tarnished lamp.", true)
	m.PlaceItem(lamp, hall)
	statue := m.CreateItem("stone statue", "Far too heavy.", false)
	m.PlaceItem(statue, hall)
	player := m.CreatePlayer("Tester", hall)
	return m, player
}

func TestDispatchEmptyInput(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tab", "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Dispatch(m, player, tt.input)
			if got.OK || got.Message != EmptyInputMessage {
				t.Errorf("Dispatch(%q) = %+v, want failure %q", tt.input, got, EmptyInputMessage)
			}
		})
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	got := r.Dispatch(m, player, "dance wildly")
	if got.OK {
		t.Error("unknown command reported success")
	}
	if !strings.Contains(got.Message, "dance") {
		t.Errorf("Message = %q, want the unknown word named", got.Message)
	}
}

func TestDispatchIsCaseInsensitive(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	if got := r.Dispatch(m, player, "LOOK"); !got.OK {
		t.Errorf("LOOK failed: %s", got.Message)
	}
}

func TestLookup(t *testing.T) {
	r := NewDefaultRegistry()

	if _, ok := r.Lookup("GET"); !ok {
		t.Error("Lookup(GET) did not resolve the take alias")
	}
	// Session words like quit belong to the REPL, not the registry.
	for _, name := range []string{"quit", "exit"} {
		if _, ok := r.Lookup(name); ok {
			t.Errorf("Lookup(%q) resolved a handler", name)
		}
	}
}

func TestLook(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	got := r.Dispatch(m, player, "look")
	if !got.OK {
		t.Fatalf("look failed: %s", got.Message)
	}
	for _, want := range []string{"Hall", "A dusty hall.", "Exits: north", "brass lamp", "stone statue"} {
		if !strings.Contains(got.Message, want) {
			t.Errorf("look output missing %q:\n%s", want, got.Message)
		}
	}
}

func TestLookNoExits(t *testing.T) {
	m := world.NewModel()
	cell := m.CreateRoom("Cell", "Bare walls.")
	player := m.CreatePlayer("P", cell)
	r := NewDefaultRegistry()

	got := r.Dispatch(m, player, "look")
	if !strings.Contains(got.Message, "There are no obvious exits.") {
		t.Errorf("look output = %q", got.Message)
	}
}

func TestGoMovesPlayer(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	got := r.Dispatch(m, player, "go north")
	if !got.OK || !strings.Contains(got.Message, "Garden") {
		t.Fatalf("go north = %+v", got)
	}
	loc, err := m.PlayerLocation(player)
	if err != nil {
		t.Fatalf("PlayerLocation: %v", err)
	}
	if name, _ := m.RoomName(loc); name != "Garden" {
		t.Errorf("player ended in %q, want Garden", name)
	}
}

func TestGoVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  string
	}{
		{"go with letter", "go n", true, "Garden"},
		{"bare direction", "north", true, "Garden"},
		{"bare letter", "n", true, "Garden"},
		{"uppercase direction", "NORTH", true, "Garden"},
		{"no argument", "go", false, "go where"},
		{"not a direction", "go sideways", false, "not a direction"},
		{"no exit", "go south", false, "can't go south"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, player := buildWorld(t)
			r := NewDefaultRegistry()
			got := r.Dispatch(m, player, tt.input)
			if got.OK != tt.ok || !strings.Contains(got.Message, tt.want) {
				t.Errorf("Dispatch(%q) = %+v, want ok=%v with %q", tt.input, got, tt.ok, tt.want)
			}
		})
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  string
	}{
		{"full name", "take brass lamp", true, "you take the brass lamp"},
		{"substring", "take lamp", true, "you take the brass lamp"},
		{"get alias", "get lamp", true, "you take the brass lamp"},
		{"pickup alias", "pickup lamp", true, "you take the brass lamp"},
		{"case insensitive", "take LAMP", true, "you take the brass lamp"},
		{"no argument", "take", false, "take what?"},
		{"absent item", "take sword", false, `no "sword" here`},
		{"fixed item", "take statue", false, "you can't take the stone statue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, player := buildWorld(t)
			r := NewDefaultRegistry()
			got := r.Dispatch(m, player, tt.input)
			if got.OK != tt.ok || !strings.Contains(got.Message, tt.want) {
				t.Errorf("Dispatch(%q) = %+v, want ok=%v with %q", tt.input, got, tt.ok, tt.want)
			}
		})
	}
}

func TestTakeMovesItem(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	r.Dispatch(m, player, "take lamp")

	if got := r.Dispatch(m, player, "inventory"); !strings.Contains(got.Message, "brass lamp") {
		t.Errorf("inventory = %q, want the lamp listed", got.Message)
	}
	room, err := m.PlayerLocation(player)
	if err != nil {
		t.Fatalf("PlayerLocation: %v", err)
	}
	for _, item := range m.RoomItems(room) {
		if name, _ := m.ItemName(item); name == "brass lamp" {
			t.Error("lamp still in the room after take")
		}
	}
}

func TestDrop(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()
	r.Dispatch(m, player, "take lamp")
	r.Dispatch(m, player, "go north")

	got := r.Dispatch(m, player, "drop lamp")
	if !got.OK || !strings.Contains(got.Message, "you drop the brass lamp") {
		t.Errorf("drop = %+v", got)
	}
	garden, err := m.PlayerLocation(player)
	if err != nil {
		t.Fatalf("PlayerLocation: %v", err)
	}
	if items := m.RoomItems(garden); len(items) != 1 {
		t.Errorf("garden holds %d items, want 1", len(items))
	}

	if got := r.Dispatch(m, player, "drop lamp"); got.OK || !strings.Contains(got.Message, "aren't carrying") {
		t.Errorf("second drop = %+v", got)
	}
}

func TestDropWithoutArgument(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	if got := r.Dispatch(m, player, "drop"); got.OK || !strings.Contains(got.Message, "drop what?") {
		t.Errorf("drop = %+v", got)
	}
}

func TestInventory(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	got := r.Dispatch(m, player, "inventory")
	if !got.OK || got.Message != "you are carrying nothing" {
		t.Errorf("empty inventory = %+v", got)
	}

	r.Dispatch(m, player, "take lamp")
	for _, input := range []string{"inventory", "inv", "i"} {
		got := r.Dispatch(m, player, input)
		if !got.OK || !strings.Contains(got.Message, "You are carrying: brass lamp") {
			t.Errorf("Dispatch(%q) = %+v", input, got)
		}
	}
}

func TestHelp(t *testing.T) {
	m, player := buildWorld(t)
	r := NewDefaultRegistry()

	for _, input := range []string{"help", "?", "commands"} {
		got := r.Dispatch(m, player, input)
		if !got.OK {
			t.Fatalf("Dispatch(%q) failed: %s", input, got.Message)
		}
		for _, want := range []string{
			"Available commands:",
			"look",
			"go",
			"take (get, pickup)",
			"inventory (inv, i)",
			"help (?, commands)",
		} {
			if !strings.Contains(got.Message, want) {
				t.Errorf("help output missing %q:\n%s", want, got.Message)
			}
		}
	}
}

func TestCommandsWithLostActor(t *testing.T) {
	m := world.NewModel()
	room := m.CreateRoom("Void Anteroom", "")
	player := m.CreatePlayer("P", room)
	m.Store().RemoveMatching(rdf.Pattern{Subject: m.IRI(player), Predicate: mud.Location})
	r := NewDefaultRegistry()

	for _, input := range []string{"look", "north", "take lamp"} {
		got := r.Dispatch(m, player, input)
		if got.OK {
			t.Errorf("Dispatch(%q) succeeded for a locationless player", input)
		}
	}
}
