package rdf

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// RDF syntax namespace terms used by the codec.
const (
	rdfTypeIRI  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfFirstIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	rdfRestIRI  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
	rdfNilIRI   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
)

// Decoder reads statements from Turtle-family text. It is a pull API:
// Decode returns one statement at a time and io.EOF at end of input.
// Syntax errors are *ParseError values carrying the line and column of
// the offending token; after any error the decoder stays failed.
type Decoder struct {
	format   Format
	lex      *lexer
	prefixes map[string]string
	base     string
	pending  []Statement
	peeked   *token
	err      error
}

// NewDecoder creates a decoder reading statements in the given format.
func NewDecoder(r io.Reader, format Format) *Decoder {
	d := &Decoder{format: format, prefixes: make(map[string]string)}
	lex, err := newLexer(r)
	if err != nil {
		d.err = fmt.Errorf("read input: %w", err)
		return d
	}
	d.lex = lex
	return d
}

// Prefixes returns a copy of the prefix declarations seen so far.
func (d *Decoder) Prefixes() map[string]string {
	out := make(map[string]string, len(d.prefixes))
	for name, iri := range d.prefixes {
		out[name] = iri
	}
	return out
}

// Decode returns the next statement, or io.EOF when the input is
// exhausted. Syntax that expands to several statements, such as
// collections and blank node property lists, is returned one statement
// per call.
func (d *Decoder) Decode() (Statement, error) {
	if d.err != nil {
		return Statement{}, d.err
	}
	for len(d.pending) == 0 {
		if err := d.parseNext(); err != nil {
			d.err = err
			d.pending = nil
			return Statement{}, err
		}
	}
	st := d.pending[0]
	d.pending = d.pending[1:]
	return st, nil
}

// parseNext parses one directive or statement block, appending expanded
// statements to the pending queue. Directives append nothing.
func (d *Decoder) parseNext() error {
	t, err := d.next()
	if err != nil {
		return err
	}
	if t.typ == tokEOF {
		return io.EOF
	}

	switch d.format {
	case FormatNTriples, FormatNQuads:
		return d.parseLine(t)
	case FormatTurtle:
		return d.parseTurtleStatement(t)
	case FormatTriG:
		return d.parseTriGStatement(t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, d.format)
	}
}

func (d *Decoder) emit(st Statement) {
	d.pending = append(d.pending, st)
}

// next returns the next token, converting lexer errors to parse errors.
func (d *Decoder) next() (token, error) {
	if d.peeked != nil {
		t := *d.peeked
		d.peeked = nil
		return t, nil
	}
	t, err := d.lex.next()
	if err != nil {
		var le *lexError
		if errors.As(err, &le) {
			return token{}, &ParseError{Format: d.format, Line: le.line, Column: le.col, Msg: le.msg}
		}
		return token{}, err
	}
	return t, nil
}

// peek returns the next token without consuming it.
func (d *Decoder) peek() (token, error) {
	if d.peeked == nil {
		t, err := d.next()
		if err != nil {
			return token{}, err
		}
		d.peeked = &t
	}
	return *d.peeked, nil
}

// errorAt builds a ParseError at the token's position.
func (d *Decoder) errorAt(t token, format string, args ...any) error {
	return &ParseError{Format: d.format, Line: t.line, Column: t.col, Msg: fmt.Sprintf(format, args...)}
}

// resolveIRI resolves an IRI against the in-scope base. Resolution is
// plain concatenation; IRIs that already carry a scheme pass through.
func (d *Decoder) resolveIRI(iri string) string {
	if d.base == "" || hasScheme(iri) {
		return iri
	}
	return d.base + iri
}

// hasScheme reports whether the IRI begins with a URI scheme.
func hasScheme(iri string) bool {
	for i, c := range iri {
		switch {
		case c == ':':
			return i > 0
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case i > 0 && ((c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return false
}

// expandPName expands a prefixed name against the declared prefixes.
func (d *Decoder) expandPName(t token) (NamedResource, error) {
	i := strings.Index(t.val, ":")
	prefix, local := t.val[:i], t.val[i+1:]
	ns, ok := d.prefixes[prefix]
	if !ok {
		return NamedResource{}, d.errorAt(t, "undeclared prefix %q", prefix)
	}
	return NewNamedResource(ns + local), nil
}

// literalFrom builds a literal from a string token plus any language tag
// or datatype suffix.
func (d *Decoder) literalFrom(t token) (Term, error) {
	p, err := d.peek()
	if err != nil {
		return nil, err
	}
	switch p.typ {
	case tokLangTag:
		if _, err := d.next(); err != nil {
			return nil, err
		}
		return NewLangLiteral(t.val, p.val), nil
	case tokCaretCaret:
		if _, err := d.next(); err != nil {
			return nil, err
		}
		dt, err := d.next()
		if err != nil {
			return nil, err
		}
		switch dt.typ {
		case tokIRI:
			return NewTypedLiteral(t.val, d.resolveIRI(dt.val)), nil
		case tokPName:
			iri, err := d.expandPName(dt)
			if err != nil {
				return nil, err
			}
			return NewTypedLiteral(t.val, iri.IRI), nil
		default:
			return nil, d.errorAt(dt, "expected datatype IRI after '^^', got %s", tokenDesc(dt))
		}
	}
	return NewLiteral(t.val), nil
}

// parseLine parses one N-Triples or N-Quads statement.
func (d *Decoder) parseLine(t token) error {
	subject, err := d.lineTerm(t, false)
	if err != nil {
		return err
	}
	pt, err := d.next()
	if err != nil {
		return err
	}
	predicate, err := d.lineTerm(pt, false)
	if err != nil {
		return err
	}
	if predicate.Kind() != KindNamed {
		return d.errorAt(pt, "predicate must be an IRI")
	}
	ot, err := d.next()
	if err != nil {
		return err
	}
	object, err := d.lineTerm(ot, true)
	if err != nil {
		return err
	}

	var graph Term
	end, err := d.next()
	if err != nil {
		return err
	}
	if d.format == FormatNQuads && end.typ != tokDot {
		graph, err = d.lineTerm(end, false)
		if err != nil {
			return err
		}
		end, err = d.next()
		if err != nil {
			return err
		}
	}
	if end.typ != tokDot {
		return d.errorAt(end, "expected '.' at end of statement, got %s", tokenDesc(end))
	}
	d.emit(Statement{Subject: subject, Predicate: predicate, Object: object, Graph: graph})
	return nil
}

// lineTerm converts a token to a term in the line-based formats.
func (d *Decoder) lineTerm(t token, allowLiteral bool) (Term, error) {
	switch t.typ {
	case tokIRI:
		return NewNamedResource(t.val), nil
	case tokBlank:
		return NewBlankResource(t.val), nil
	case tokString:
		if !allowLiteral {
			return nil, d.errorAt(t, "literal not allowed here")
		}
		return d.literalFrom(t)
	default:
		return nil, d.errorAt(t, "unexpected %s", tokenDesc(t))
	}
}

// parseTurtleStatement parses one Turtle directive or triples block.
func (d *Decoder) parseTurtleStatement(t token) error {
	switch t.typ {
	case tokPrefixDecl:
		return d.parsePrefixDecl(t.val == "@prefix")
	case tokBaseDecl:
		return d.parseBaseDecl(t.val == "@base")
	}
	if err := d.parseTriplesCore(t, nil); err != nil {
		return err
	}
	end, err := d.next()
	if err != nil {
		return err
	}
	if end.typ != tokDot {
		return d.errorAt(end, "expected '.' at end of statement, got %s", tokenDesc(end))
	}
	return nil
}

// parsePrefixDecl parses "@prefix ns: <iri> ." or "PREFIX ns: <iri>".
func (d *Decoder) parsePrefixDecl(needDot bool) error {
	nameTok, err := d.next()
	if err != nil {
		return err
	}
	if nameTok.typ != tokPName || !strings.HasSuffix(nameTok.val, ":") {
		return d.errorAt(nameTok, "expected prefix name ending in ':'")
	}
	iriTok, err := d.next()
	if err != nil {
		return err
	}
	if iriTok.typ != tokIRI {
		return d.errorAt(iriTok, "expected namespace IRI")
	}
	name := strings.TrimSuffix(nameTok.val, ":")
	d.prefixes[name] = d.resolveIRI(iriTok.val)
	if needDot {
		dot, err := d.next()
		if err != nil {
			return err
		}
		if dot.typ != tokDot {
			return d.errorAt(dot, "expected '.' after @prefix directive")
		}
	}
	return nil
}

// parseBaseDecl parses "@base <iri> ." or "BASE <iri>".
func (d *Decoder) parseBaseDecl(needDot bool) error {
	iriTok, err := d.next()
	if err != nil {
		return err
	}
	if iriTok.typ != tokIRI {
		return d.errorAt(iriTok, "expected base IRI")
	}
	d.base = d.resolveIRI(iriTok.val)
	if needDot {
		dot, err := d.next()
		if err != nil {
			return err
		}
		if dot.typ != tokDot {
			return d.errorAt(dot, "expected '.' after @base directive")
		}
	}
	return nil
}

// parseTriplesCore parses one subject and its predicate-object list,
// leaving the statement terminator unconsumed.
func (d *Decoder) parseTriplesCore(t token, graph Term) error {
	switch t.typ {
	case tokLBracket:
		subject, err := d.parseBlankPropertyList(graph)
		if err != nil {
			return err
		}
		p, err := d.peek()
		if err != nil {
			return err
		}
		if p.typ == tokDot || p.typ == tokRBrace {
			// the property list was the whole statement
			return nil
		}
		return d.parsePredicateObjectList(subject, graph)
	case tokLParen:
		subject, err := d.parseCollection(graph)
		if err != nil {
			return err
		}
		return d.parsePredicateObjectList(subject, graph)
	default:
		subject, err := d.subjectTerm(t)
		if err != nil {
			return err
		}
		return d.parsePredicateObjectList(subject, graph)
	}
}

// subjectTerm converts a token to a subject term.
func (d *Decoder) subjectTerm(t token) (Term, error) {
	switch t.typ {
	case tokIRI:
		return NewNamedResource(d.resolveIRI(t.val)), nil
	case tokPName:
		return d.expandPName(t)
	case tokBlank:
		return NewBlankResource(t.val), nil
	default:
		return nil, d.errorAt(t, "expected subject, got %s", tokenDesc(t))
	}
}

// parsePredicateObjectList parses "p o, o ; p o ; ..." emitting one
// statement per object. A dangling ';' before the terminator is allowed.
func (d *Decoder) parsePredicateObjectList(subject, graph Term) error {
	for {
		pt, err := d.next()
		if err != nil {
			return err
		}
		var predicate Term
		switch pt.typ {
		case tokA:
			predicate = NewNamedResource(rdfTypeIRI)
		case tokIRI:
			predicate = NewNamedResource(d.resolveIRI(pt.val))
		case tokPName:
			predicate, err = d.expandPName(pt)
			if err != nil {
				return err
			}
		default:
			return d.errorAt(pt, "expected predicate, got %s", tokenDesc(pt))
		}

		for {
			object, err := d.parseObject(graph)
			if err != nil {
				return err
			}
			d.emit(Statement{Subject: subject, Predicate: predicate, Object: object, Graph: graph})
			p, err := d.peek()
			if err != nil {
				return err
			}
			if p.typ != tokComma {
				break
			}
			if _, err := d.next(); err != nil {
				return err
			}
		}

		p, err := d.peek()
		if err != nil {
			return err
		}
		if p.typ != tokSemicolon {
			return nil
		}
		for p.typ == tokSemicolon {
			if _, err := d.next(); err != nil {
				return err
			}
			p, err = d.peek()
			if err != nil {
				return err
			}
		}
		if p.typ == tokDot || p.typ == tokRBracket || p.typ == tokRBrace {
			return nil
		}
	}
}

// parseObject parses one object term, expanding property lists and
// collections into additional statements.
func (d *Decoder) parseObject(graph Term) (Term, error) {
	t, err := d.next()
	if err != nil {
		return nil, err
	}
	switch t.typ {
	case tokIRI:
		return NewNamedResource(d.resolveIRI(t.val)), nil
	case tokPName:
		return d.expandPName(t)
	case tokBlank:
		return NewBlankResource(t.val), nil
	case tokString:
		return d.literalFrom(t)
	case tokInteger:
		return NewTypedLiteral(t.val, XSDInteger), nil
	case tokDecimal:
		return NewTypedLiteral(t.val, XSDDecimal), nil
	case tokDouble:
		return NewTypedLiteral(t.val, XSDDouble), nil
	case tokBoolean:
		return NewTypedLiteral(t.val, XSDBoolean), nil
	case tokLBracket:
		return d.parseBlankPropertyList(graph)
	case tokLParen:
		return d.parseCollection(graph)
	default:
		return nil, d.errorAt(t, "expected object, got %s", tokenDesc(t))
	}
}

// parseBlankPropertyList parses "[ p o ; ... ]", returning the fresh
// blank node and emitting its statements.
func (d *Decoder) parseBlankPropertyList(graph Term) (Term, error) {
	node := NewBlankResource("")
	p, err := d.peek()
	if err != nil {
		return nil, err
	}
	if p.typ == tokRBracket {
		if _, err := d.next(); err != nil {
			return nil, err
		}
		return node, nil
	}
	if err := d.parsePredicateObjectList(node, graph); err != nil {
		return nil, err
	}
	end, err := d.next()
	if err != nil {
		return nil, err
	}
	if end.typ != tokRBracket {
		return nil, d.errorAt(end, "expected ']' to close property list, got %s", tokenDesc(end))
	}
	return node, nil
}

// parseCollection parses "( e1 e2 ... )" into the rdf:first/rdf:rest list
// encoding, returning the head node, or rdf:nil for the empty list.
func (d *Decoder) parseCollection(graph Term) (Term, error) {
	first := NewNamedResource(rdfFirstIRI)
	rest := NewNamedResource(rdfRestIRI)
	nilTerm := NewNamedResource(rdfNilIRI)

	var head, tail Term
	for {
		p, err := d.peek()
		if err != nil {
			return nil, err
		}
		if p.typ == tokRParen {
			if _, err := d.next(); err != nil {
				return nil, err
			}
			break
		}
		if p.typ == tokEOF {
			return nil, d.errorAt(p, "unexpected end of input in collection")
		}
		elem, err := d.parseObject(graph)
		if err != nil {
			return nil, err
		}
		node := NewBlankResource("")
		if head == nil {
			head = node
		} else {
			d.emit(Statement{Subject: tail, Predicate: rest, Object: node, Graph: graph})
		}
		d.emit(Statement{Subject: node, Predicate: first, Object: elem, Graph: graph})
		tail = node
	}
	if head == nil {
		return nilTerm, nil
	}
	d.emit(Statement{Subject: tail, Predicate: rest, Object: nilTerm, Graph: graph})
	return head, nil
}

// parseTriGStatement parses one TriG statement: a directive, a graph
// block, or default-graph triples.
func (d *Decoder) parseTriGStatement(t token) error {
	switch t.typ {
	case tokPrefixDecl:
		return d.parsePrefixDecl(t.val == "@prefix")
	case tokBaseDecl:
		return d.parseBaseDecl(t.val == "@base")
	case tokGraphKeyword:
		lt, err := d.next()
		if err != nil {
			return err
		}
		label, err := d.graphLabel(lt)
		if err != nil {
			return err
		}
		return d.parseGraphBlock(label)
	case tokLBrace:
		// an unlabeled block targets the default graph
		return d.parseGraphBody(nil)
	case tokIRI, tokPName, tokBlank:
		p, err := d.peek()
		if err != nil {
			return err
		}
		if p.typ == tokLBrace {
			label, err := d.graphLabel(t)
			if err != nil {
				return err
			}
			return d.parseGraphBlock(label)
		}
	}

	if err := d.parseTriplesCore(t, nil); err != nil {
		return err
	}
	end, err := d.next()
	if err != nil {
		return err
	}
	if end.typ != tokDot {
		return d.errorAt(end, "expected '.' at end of statement, got %s", tokenDesc(end))
	}
	return nil
}

// graphLabel converts a token to a graph label term.
func (d *Decoder) graphLabel(t token) (Term, error) {
	switch t.typ {
	case tokIRI:
		return NewNamedResource(d.resolveIRI(t.val)), nil
	case tokPName:
		return d.expandPName(t)
	case tokBlank:
		return NewBlankResource(t.val), nil
	default:
		return nil, d.errorAt(t, "expected graph label, got %s", tokenDesc(t))
	}
}

// parseGraphBlock parses "{ ... }" after a graph label.
func (d *Decoder) parseGraphBlock(graph Term) error {
	open, err := d.next()
	if err != nil {
		return err
	}
	if open.typ != tokLBrace {
		return d.errorAt(open, "expected '{' after graph label, got %s", tokenDesc(open))
	}
	return d.parseGraphBody(graph)
}

// parseGraphBody parses triples until the closing '}'. The final
// statement's '.' may be omitted.
func (d *Decoder) parseGraphBody(graph Term) error {
	for {
		t, err := d.next()
		if err != nil {
			return err
		}
		if t.typ == tokRBrace {
			return nil
		}
		if t.typ == tokEOF {
			return d.errorAt(t, "unexpected end of input in graph block")
		}
		if err := d.parseTriplesCore(t, graph); err != nil {
			return err
		}
		p, err := d.peek()
		if err != nil {
			return err
		}
		if p.typ == tokDot {
			if _, err := d.next(); err != nil {
				return err
			}
		}
	}
}
