package rdf

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"unicode"
)

// Encoder writes statements in a Turtle-family format. Turtle and TriG
// output groups consecutive statements that share a subject; interleaved
// subjects still serialize correctly, just less compactly. Write
// failures stick: every later call returns the same error.
type Encoder struct {
	w        *bufio.Writer
	format   Format
	prefixes map[string]string

	subject    Term
	graph      Term
	open       bool
	wroteBlock bool
	err        error
}

// NewEncoder creates an encoder writing statements in the given format.
func NewEncoder(w io.Writer, format Format) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), format: format}
}

// SetPrefixes installs the prefix table used for IRI compaction.
func (e *Encoder) SetPrefixes(prefixes map[string]string) {
	e.prefixes = prefixes
}

// WritePrefixes writes @prefix directives in name order. It is a no-op
// for the line-based formats, which have no directives.
func (e *Encoder) WritePrefixes() error {
	if e.format != FormatTurtle && e.format != FormatTriG {
		return nil
	}
	if len(e.prefixes) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.prefixes))
	for name := range e.prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e.writeString("@prefix " + name + ": <" + e.prefixes[name] + "> .\n")
	}
	e.writeString("\n")
	return e.wrapErr()
}

// Encode writes one statement. Turtle and N-Triples drop the graph
// component; N-Quads and TriG preserve it.
func (e *Encoder) Encode(st Statement) error {
	if err := e.validate(st); err != nil {
		return err
	}
	switch e.format {
	case FormatNTriples:
		e.writeString(st.Subject.String() + " " + st.Predicate.String() + " " + st.Object.String() + " .\n")
	case FormatNQuads:
		line := st.Subject.String() + " " + st.Predicate.String() + " " + st.Object.String()
		if st.Graph != nil {
			line += " " + st.Graph.String()
		}
		e.writeString(line + " .\n")
	case FormatTurtle:
		e.encodeGrouped(st, nil)
	case FormatTriG:
		e.encodeGrouped(st, st.Graph)
	default:
		return &SerializeError{Format: e.format, Msg: "unsupported format"}
	}
	return e.wrapErr()
}

// Flush terminates the final statement and flushes buffered output.
func (e *Encoder) Flush() error {
	e.closeBlock()
	if e.format == FormatTriG && e.graph != nil {
		e.writeString("}\n")
		e.graph = nil
	}
	if e.err == nil {
		if err := e.w.Flush(); err != nil {
			e.err = err
		}
	}
	return e.wrapErr()
}

// validate rejects statements no format can express.
func (e *Encoder) validate(st Statement) error {
	if st.Subject == nil || st.Predicate == nil || st.Object == nil {
		return &SerializeError{Format: e.format, Msg: "statement with nil term"}
	}
	if st.Subject.Kind() == KindLiteral {
		return &SerializeError{Format: e.format, Msg: "literal not allowed as subject"}
	}
	if st.Predicate.Kind() != KindNamed {
		return &SerializeError{Format: e.format, Msg: "predicate must be an IRI"}
	}
	if st.Graph != nil && st.Graph.Kind() == KindLiteral {
		return &SerializeError{Format: e.format, Msg: "literal not allowed as graph label"}
	}
	return nil
}

// encodeGrouped writes Turtle/TriG output, continuing the open subject
// block when the subject repeats.
func (e *Encoder) encodeGrouped(st Statement, graph Term) {
	if e.format == FormatTriG && !termsEqual(graph, e.graph) {
		e.closeBlock()
		if e.graph != nil {
			e.writeString("}\n")
		}
		e.graph = graph
		e.wroteBlock = false
		if graph != nil {
			e.writeString(e.compact(graph) + " {\n")
		}
	}
	if e.open && termsEqual(st.Subject, e.subject) {
		e.writeString(" ;\n    " + e.predicate(st.Predicate) + " " + e.compact(st.Object))
		return
	}
	e.closeBlock()
	if e.wroteBlock {
		e.writeString("\n")
	}
	e.subject = st.Subject
	e.open = true
	e.wroteBlock = true
	e.writeString(e.compact(st.Subject) + "\n    " + e.predicate(st.Predicate) + " " + e.compact(st.Object))
}

// closeBlock terminates the open subject block.
func (e *Encoder) closeBlock() {
	if !e.open {
		return
	}
	e.writeString(" .\n")
	e.open = false
	e.subject = nil
}

func (e *Encoder) writeString(s string) {
	if e.err != nil {
		return
	}
	if _, err := e.w.WriteString(s); err != nil {
		e.err = err
	}
}

// wrapErr converts a pending write failure into a SerializeError.
func (e *Encoder) wrapErr() error {
	if e.err == nil {
		return nil
	}
	return &SerializeError{Format: e.format, Msg: "write output", Err: e.err}
}

// predicate renders a predicate, using the "a" shorthand for rdf:type.
func (e *Encoder) predicate(t Term) string {
	if n, ok := t.(NamedResource); ok && n.IRI == rdfTypeIRI {
		return "a"
	}
	return e.compact(t)
}

// compact renders a term, shortening IRIs through the longest matching
// prefix.
func (e *Encoder) compact(t Term) string {
	switch v := t.(type) {
	case NamedResource:
		if name, local, ok := e.splitPrefixed(v.IRI); ok {
			return name + ":" + local
		}
		return v.String()
	case Literal:
		quoted := `"` + escapeString(v.Value) + `"`
		if v.Language != "" {
			return quoted + "@" + v.Language
		}
		if v.Datatype != "" {
			if name, local, ok := e.splitPrefixed(v.Datatype); ok {
				return quoted + "^^" + name + ":" + local
			}
			return quoted + "^^<" + v.Datatype + ">"
		}
		return quoted
	default:
		return t.String()
	}
}

// splitPrefixed finds the longest prefix whose namespace starts the IRI
// and returns the prefix name and a local part safe to print unescaped.
func (e *Encoder) splitPrefixed(iri string) (string, string, bool) {
	var bestName, bestNS string
	for name, ns := range e.prefixes {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && name < bestName) {
			bestName, bestNS = name, ns
		}
	}
	if bestNS == "" {
		return "", "", false
	}
	local := iri[len(bestNS):]
	if !isSafeLocal(local) {
		return "", "", false
	}
	return bestName, local, true
}

// isSafeLocal reports whether a local name can be printed in a prefixed
// name without escaping.
func isSafeLocal(local string) bool {
	if strings.HasSuffix(local, ".") {
		return false
	}
	for i, c := range local {
		switch {
		case unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_':
		case (c == '-' || c == '.') && i > 0:
		default:
			return false
		}
	}
	return true
}

// termsEqual compares two terms, treating nil as equal only to nil.
func termsEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
