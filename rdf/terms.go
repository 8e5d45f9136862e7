// Package rdf provides an in-memory RDF statement store with typed terms,
// exact-match pattern queries, and Turtle-family text codecs.
package rdf

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TermKind discriminates the three kinds of RDF term.
type TermKind int

const (
	// KindNamed is a resource identified by an absolute IRI.
	KindNamed TermKind = iota

	// KindBlank is an anonymous resource with a store-scoped identifier.
	KindBlank

	// KindLiteral is a string value with an optional language tag or
	// datatype IRI.
	KindLiteral
)

// Term is an RDF term: a named resource, a blank resource, or a literal.
// All three implementations are comparable value types, so terms with
// matching dynamic types can be compared with == and used as map keys.
type Term interface {
	// Kind reports which kind of term this is.
	Kind() TermKind

	// String returns the N-Triples lexical form of the term.
	String() string

	// Equal reports whether other is structurally identical to this term.
	Equal(other Term) bool
}

// NamedResource is a resource identified by an absolute IRI.
type NamedResource struct {
	IRI string
}

// NewNamedResource creates a named resource term from an absolute IRI.
func NewNamedResource(iri string) NamedResource {
	return NamedResource{IRI: iri}
}

// Kind returns KindNamed.
func (n NamedResource) Kind() TermKind { return KindNamed }

// String returns the IRI in angle brackets.
func (n NamedResource) String() string { return "<" + n.IRI + ">" }

// Equal reports whether other is a named resource with the same IRI.
func (n NamedResource) Equal(other Term) bool {
	o, ok := other.(NamedResource)
	return ok && o.IRI == n.IRI
}

// BlankResource is an anonymous resource. Its identifier has no meaning
// outside the store that scopes it.
type BlankResource struct {
	ID string
}

// NewBlankResource creates a blank resource term. An empty id generates a
// unique identifier.
func NewBlankResource(id string) BlankResource {
	if id == "" {
		id = "b" + uuid.New().String()
	}
	return BlankResource{ID: id}
}

// Kind returns KindBlank.
func (b BlankResource) Kind() TermKind { return KindBlank }

// String returns the blank node label form.
func (b BlankResource) String() string { return "_:" + b.ID }

// Equal reports whether other is a blank resource with the same identifier.
func (b BlankResource) Equal(other Term) bool {
	o, ok := other.(BlankResource)
	return ok && o.ID == b.ID
}

// Literal is a string value with an optional language tag or datatype IRI.
// Language and Datatype are mutually exclusive; a literal with neither is
// a plain literal.
type Literal struct {
	Value    string
	Language string
	Datatype string
}

// NewLiteral creates a plain literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// NewLangLiteral creates a language-tagged literal.
func NewLangLiteral(value, lang string) Literal {
	return Literal{Value: value, Language: lang}
}

// NewTypedLiteral creates a literal tagged with a datatype IRI.
func NewTypedLiteral(value, datatype string) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// Kind returns KindLiteral.
func (l Literal) Kind() TermKind { return KindLiteral }

// String returns the quoted, escaped lexical form with any language tag or
// datatype suffix.
func (l Literal) String() string {
	quoted := `"` + escapeString(l.Value) + `"`
	if l.Language != "" {
		return quoted + "@" + l.Language
	}
	if l.Datatype != "" {
		return quoted + "^^<" + l.Datatype + ">"
	}
	return quoted
}

// Equal reports whether other is a literal with the same value, language
// tag, and datatype.
func (l Literal) Equal(other Term) bool {
	o, ok := other.(Literal)
	return ok && o == l
}

// XML Schema datatype IRIs used by the typed-literal constructors and the
// Turtle codec.
const (
	XSDInteger  = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal  = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDouble   = "http://www.w3.org/2001/XMLSchema#double"
	XSDBoolean  = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDDate     = "http://www.w3.org/2001/XMLSchema#date"
	XSDDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"
	XSDString   = "http://www.w3.org/2001/XMLSchema#string"
)

// NewInteger creates an xsd:integer literal in canonical lexical form.
func NewInteger(v int64) Literal {
	return Literal{Value: strconv.FormatInt(v, 10), Datatype: XSDInteger}
}

// NewDecimal creates an xsd:decimal literal in canonical lexical form.
func NewDecimal(v float64) Literal {
	return Literal{Value: strconv.FormatFloat(v, 'f', -1, 64), Datatype: XSDDecimal}
}

// NewBoolean creates an xsd:boolean literal ("true" or "false").
func NewBoolean(v bool) Literal {
	return Literal{Value: strconv.FormatBool(v), Datatype: XSDBoolean}
}

// NewDate creates an xsd:date literal from the calendar date of t.
func NewDate(t time.Time) Literal {
	return Literal{Value: t.Format("2006-01-02"), Datatype: XSDDate}
}

// NewDateTime creates an xsd:dateTime literal from the full instant t.
func NewDateTime(t time.Time) Literal {
	return Literal{Value: t.Format(time.RFC3339), Datatype: XSDDateTime}
}

// escapeString escapes the characters that cannot appear raw inside a
// quoted literal or IRI.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
