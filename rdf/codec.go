package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SerializeOptions configures Store.Serialize.
type SerializeOptions struct {
	// Format selects the output format; empty means Turtle.
	Format Format

	// Prefixes overrides the store's prefix table when non-nil.
	Prefixes map[string]string
}

// Parse decodes statements from r and merges them into the store.
// Statements and prefix declarations are buffered and merged only once
// the whole input has decoded cleanly, so a syntax error leaves the
// store unchanged. Decoding stops early when ctx is canceled.
func (s *Store) Parse(ctx context.Context, r io.Reader, format Format) error {
	if _, ok := FormatRegistry[format]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	dec := NewDecoder(r, format)
	var buffered []Statement
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		st, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		buffered = append(buffered, st)
	}
	for _, st := range buffered {
		s.Add(st)
	}
	for name, iri := range dec.Prefixes() {
		s.SetPrefix(name, iri)
	}
	return nil
}

// ParseString decodes statements from text and merges them into the
// store. See Parse.
func (s *Store) ParseString(ctx context.Context, text string, format Format) error {
	return s.Parse(ctx, strings.NewReader(text), format)
}

// Serialize writes every statement to w in the format selected by opts.
// Turtle and TriG output is grouped by graph and subject in first-seen
// order; the line-based formats keep raw store order. Serialization
// stops early when ctx is canceled.
func (s *Store) Serialize(ctx context.Context, w io.Writer, opts SerializeOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatTurtle
	}
	if _, ok := FormatRegistry[format]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	prefixes := opts.Prefixes
	if prefixes == nil {
		prefixes = s.prefixes
	}

	enc := NewEncoder(w, format)
	enc.SetPrefixes(prefixes)
	if err := enc.WritePrefixes(); err != nil {
		return err
	}
	for _, st := range s.serializationOrder(format) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(st); err != nil {
			return err
		}
	}
	return enc.Flush()
}

// SerializeString returns the serialized store as a string. See
// Serialize.
func (s *Store) SerializeString(ctx context.Context, opts SerializeOptions) (string, error) {
	var sb strings.Builder
	if err := s.Serialize(ctx, &sb, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// serializationOrder arranges statements for the output format: grouped
// by graph, then subject, both in first-seen order, for Turtle and TriG;
// raw store order for the line-based formats. Turtle flattens all graphs
// together since the syntax cannot express them.
func (s *Store) serializationOrder(format Format) []Statement {
	if format == FormatNTriples || format == FormatNQuads {
		return s.statements
	}
	flatten := format == FormatTurtle

	type group struct {
		graph   Term
		subject Term
	}
	bySubject := make(map[group][]Statement)
	byGraph := make(map[Term][]group)
	var graphs []Term
	seenGraph := make(map[Term]bool)
	for _, st := range s.statements {
		g := st.Graph
		if flatten {
			g = nil
		}
		k := group{graph: g, subject: st.Subject}
		if _, ok := bySubject[k]; !ok {
			byGraph[g] = append(byGraph[g], k)
		}
		bySubject[k] = append(bySubject[k], st)
		if !seenGraph[g] {
			seenGraph[g] = true
			graphs = append(graphs, g)
		}
	}

	out := make([]Statement, 0, len(s.statements))
	for _, g := range graphs {
		for _, k := range byGraph[g] {
			out = append(out, bySubject[k]...)
		}
	}
	return out
}
