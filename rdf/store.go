package rdf

// Store is an ordered set of statements with a prefix table used for
// serialization. Re-adding an identical statement is a no-op. A Store is
// not safe for concurrent use.
type Store struct {
	statements []Statement
	index      map[Statement]struct{}
	prefixes   map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index:    make(map[Statement]struct{}),
		prefixes: make(map[string]string),
	}
}

// Add inserts a statement. It reports whether the store changed.
func (s *Store) Add(st Statement) bool {
	if _, ok := s.index[st]; ok {
		return false
	}
	s.index[st] = struct{}{}
	s.statements = append(s.statements, st)
	return true
}

// Remove deletes a statement. Removing an absent statement is a no-op. It
// reports whether the store changed.
func (s *Store) Remove(st Statement) bool {
	if _, ok := s.index[st]; !ok {
		return false
	}
	delete(s.index, st)
	for i, have := range s.statements {
		if have == st {
			s.statements = append(s.statements[:i], s.statements[i+1:]...)
			break
		}
	}
	return true
}

// RemoveMatching deletes every statement matching the pattern and returns
// the number removed.
func (s *Store) RemoveMatching(p Pattern) int {
	kept := s.statements[:0]
	removed := 0
	for _, st := range s.statements {
		if p.Matches(st) {
			delete(s.index, st)
			removed++
			continue
		}
		kept = append(kept, st)
	}
	s.statements = kept
	return removed
}

// Match returns all statements matching the pattern, in store order. The
// zero Pattern returns every statement.
func (s *Store) Match(p Pattern) []Statement {
	var out []Statement
	for _, st := range s.statements {
		if p.Matches(st) {
			out = append(out, st)
		}
	}
	return out
}

// Has reports whether the exact statement is present.
func (s *Store) Has(st Statement) bool {
	_, ok := s.index[st]
	return ok
}

// Size returns the number of statements.
func (s *Store) Size() int {
	return len(s.statements)
}

// Clear removes every statement. The prefix table is kept.
func (s *Store) Clear() {
	s.statements = nil
	s.index = make(map[Statement]struct{})
}

// Subjects returns the distinct subject terms in first-seen order.
func (s *Store) Subjects() []Term {
	return s.distinct(func(st Statement) Term { return st.Subject })
}

// Predicates returns the distinct predicate terms in first-seen order.
func (s *Store) Predicates() []Term {
	return s.distinct(func(st Statement) Term { return st.Predicate })
}

func (s *Store) distinct(pick func(Statement) Term) []Term {
	seen := make(map[Term]struct{})
	var out []Term
	for _, st := range s.statements {
		t := pick(st)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ObjectsFor returns the object terms of statements with the given subject
// and predicate, in store order. A nil graph matches statements in any
// graph; a non-nil graph constrains the match to that graph.
func (s *Store) ObjectsFor(subject, predicate, graph Term) []Term {
	p := Pattern{Subject: subject, Predicate: predicate, Graph: graph}
	var out []Term
	for _, st := range s.statements {
		if p.Matches(st) {
			out = append(out, st.Object)
		}
	}
	return out
}

// SetPrefix registers a namespace prefix. Prefixes affect serialization
// readability only, never query semantics.
func (s *Store) SetPrefix(name, iri string) {
	s.prefixes[name] = iri
}

// Prefixes returns a copy of the registered prefix table.
func (s *Store) Prefixes() map[string]string {
	out := make(map[string]string, len(s.prefixes))
	for name, iri := range s.prefixes {
		out[name] = iri
	}
	return out
}

// Stats summarizes the contents of a store.
type Stats struct {
	// Statements is the total statement count.
	Statements int

	// Subjects is the distinct subject count.
	Subjects int

	// Predicates is the distinct predicate count.
	Predicates int

	// Graphs is the distinct named-graph count. Statements in the default
	// graph do not contribute.
	Graphs int
}

// Stats computes summary statistics for the store.
func (s *Store) Stats() Stats {
	graphs := make(map[Term]struct{})
	for _, st := range s.statements {
		if st.Graph != nil {
			graphs[st.Graph] = struct{}{}
		}
	}
	return Stats{
		Statements: len(s.statements),
		Subjects:   len(s.Subjects()),
		Predicates: len(s.Predicates()),
		Graphs:     len(graphs),
	}
}
