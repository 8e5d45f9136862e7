package mud

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Direction
		ok    bool
	}{
		{"full name", "north", North, true},
		{"uppercase", "NORTH", North, true},
		{"mixed case", "East", East, true},
		{"letter", "n", North, true},
		{"uppercase letter", "S", South, true},
		{"west letter", "w", West, true},
		{"up", "up", Up, true},
		{"down letter", "d", Down, true},
		{"surrounding space", " south ", South, true},
		{"compound", "northeast", "", false},
		{"empty", "", "", false},
		{"unknown letter", "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDirection(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseDirection(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPredicate(t *testing.T) {
	if got := North.Predicate().IRI; got != "https://semworld.dev/ontology/mud#north" {
		t.Errorf("North.Predicate() = %q", got)
	}
}

func TestLettersAreUnique(t *testing.T) {
	seen := make(map[string]Direction)
	for _, d := range Directions {
		if prev, ok := seen[d.Letter()]; ok {
			t.Errorf("directions %s and %s share the letter %q", prev, d, d.Letter())
		}
		seen[d.Letter()] = d
	}
}

func TestClassAndPropertyIRIs(t *testing.T) {
	tests := []struct {
		name string
		iri  string
		want string
	}{
		{"Room class", Room.IRI, "https://semworld.dev/ontology/mud#Room"},
		{"Item class", Item.IRI, "https://semworld.dev/ontology/mud#Item"},
		{"Player class", Player.IRI, "https://semworld.dev/ontology/mud#Player"},
		{"location property", Location.IRI, "https://semworld.dev/ontology/mud#location"},
		{"inventory property", Inventory.IRI, "https://semworld.dev/ontology/mud#inventory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.iri != tt.want {
				t.Errorf("IRI = %q, want %q", tt.iri, tt.want)
			}
		})
	}
}
