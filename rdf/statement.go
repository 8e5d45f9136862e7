package rdf

import "fmt"

// Statement is a subject-predicate-object assertion, optionally scoped to
// a named graph. A nil Graph means the default graph. Statements compare
// structurally and are usable as map keys.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

// NewStatement creates a statement in the default graph.
func NewStatement(subject, predicate, object Term) Statement {
	return Statement{Subject: subject, Predicate: predicate, Object: object}
}

// NewQuad creates a statement scoped to a named graph.
func NewQuad(subject, predicate, object, graph Term) Statement {
	return Statement{Subject: subject, Predicate: predicate, Object: object, Graph: graph}
}

// Equal reports whether both statements hold structurally identical terms
// in all four positions.
func (s Statement) Equal(other Statement) bool {
	return s == other
}

// String returns the statement as a single N-Quads style line.
func (s Statement) String() string {
	if s.Graph != nil {
		return fmt.Sprintf("%s %s %s %s .", s.Subject, s.Predicate, s.Object, s.Graph)
	}
	return fmt.Sprintf("%s %s %s .", s.Subject, s.Predicate, s.Object)
}

// Pattern is a statement template used for matching and bulk deletion. A
// nil position is unconstrained; the zero Pattern matches every statement.
type Pattern struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

// Matches reports whether st satisfies every constrained position.
func (p Pattern) Matches(st Statement) bool {
	if p.Subject != nil && !p.Subject.Equal(st.Subject) {
		return false
	}
	if p.Predicate != nil && !p.Predicate.Equal(st.Predicate) {
		return false
	}
	if p.Object != nil && !p.Object.Equal(st.Object) {
		return false
	}
	if p.Graph != nil {
		if st.Graph == nil || !p.Graph.Equal(st.Graph) {
			return false
		}
	}
	return true
}
