package rdf

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// tokenType classifies the lexical tokens of the Turtle family.
type tokenType int

const (
	tokEOF tokenType = iota
	tokIRI           // <...>, value unescaped
	tokBlank         // _:label, value is the label
	tokString        // quoted literal, value unescaped
	tokLangTag       // @lang, value without the @
	tokPName         // prefixed name, e.g. "ex:thing" or ":thing"
	tokInteger       // bare integer
	tokDecimal       // bare decimal
	tokDouble        // bare double
	tokBoolean       // true or false
	tokA             // the keyword a
	tokPrefixDecl    // @prefix or PREFIX
	tokBaseDecl      // @base or BASE
	tokGraphKeyword  // GRAPH
	tokDot
	tokSemicolon
	tokComma
	tokCaretCaret // ^^
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
)

// token is one lexical token with its 1-based source position.
type token struct {
	typ  tokenType
	val  string
	line int
	col  int
}

// lexError is an internal syntax error; the decoder wraps it into a
// ParseError with the format attached.
type lexError struct {
	line int
	col  int
	msg  string
}

func (e *lexError) Error() string { return e.msg }

// lexer splits Turtle-family input into tokens. The whole input is read
// up front; parsing is buffer-then-commit, so streaming buys nothing.
type lexer struct {
	input []rune
	pos   int
	line  int
	col   int
}

func newLexer(r io.Reader) (*lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &lexer{input: []rune(string(data)), line: 1, col: 1}, nil
}

// cur returns the rune at the current position without consuming it.
func (l *lexer) cur() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

// at reports whether the rune at offset from the current position equals c.
func (l *lexer) at(offset int, c rune) bool {
	i := l.pos + offset
	return i < len(l.input) && l.input[i] == c
}

// digitAt reports whether the rune at offset is an ASCII digit.
func (l *lexer) digitAt(offset int) bool {
	i := l.pos + offset
	return i < len(l.input) && l.input[i] >= '0' && l.input[i] <= '9'
}

// advance consumes one rune, tracking line and column.
func (l *lexer) advance() rune {
	c := l.input[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

// backup un-consumes n runes. Only valid when none of them is a newline.
func (l *lexer) backup(n int) {
	l.pos -= n
	l.col -= n
}

// skipSpace consumes whitespace and # comments.
func (l *lexer) skipSpace() {
	for {
		c, ok := l.cur()
		if !ok {
			return
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '#':
			for {
				c, ok := l.cur()
				if !ok || c == '\n' {
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

// next returns the next token, or a tokEOF token at end of input.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	line, col := l.line, l.col
	c, ok := l.cur()
	if !ok {
		return token{typ: tokEOF, line: line, col: col}, nil
	}

	punct := func(typ tokenType) (token, error) {
		l.advance()
		return token{typ: typ, val: string(c), line: line, col: col}, nil
	}

	switch {
	case c == '<':
		return l.lexIRI(line, col)
	case c == '_':
		return l.lexBlank(line, col)
	case c == '"' || c == '\'':
		return l.lexString(line, col)
	case c == '@':
		return l.lexAt(line, col)
	case c == '^':
		l.advance()
		if c2, ok := l.cur(); !ok || c2 != '^' {
			return token{}, &lexError{line: line, col: col, msg: "expected '^^'"}
		}
		l.advance()
		return token{typ: tokCaretCaret, val: "^^", line: line, col: col}, nil
	case c == '.':
		if l.digitAt(1) {
			return l.lexNumber(line, col)
		}
		return punct(tokDot)
	case c == ';':
		return punct(tokSemicolon)
	case c == ',':
		return punct(tokComma)
	case c == '[':
		return punct(tokLBracket)
	case c == ']':
		return punct(tokRBracket)
	case c == '(':
		return punct(tokLParen)
	case c == ')':
		return punct(tokRParen)
	case c == '{':
		return punct(tokLBrace)
	case c == '}':
		return punct(tokRBrace)
	case c == '+' || c == '-' || unicode.IsDigit(c):
		return l.lexNumber(line, col)
	case isNameRune(c) || c == '\\':
		return l.lexWord(line, col)
	default:
		return token{}, &lexError{line: line, col: col, msg: fmt.Sprintf("unexpected character %q", string(c))}
	}
}

// lexIRI reads "<...>" with escape processing.
func (l *lexer) lexIRI(line, col int) (token, error) {
	l.advance()
	var sb strings.Builder
	for {
		c, ok := l.cur()
		if !ok {
			return token{}, &lexError{line: line, col: col, msg: "unterminated IRI"}
		}
		switch c {
		case '>':
			l.advance()
			return token{typ: tokIRI, val: sb.String(), line: line, col: col}, nil
		case ' ', '\t', '\r', '\n':
			return token{}, &lexError{line: l.line, col: l.col, msg: "whitespace in IRI"}
		case '\\':
			l.advance()
			esc, err := l.readEscape()
			if err != nil {
				return token{}, err
			}
			sb.WriteRune(esc)
		default:
			sb.WriteRune(l.advance())
		}
	}
}

// lexBlank reads "_:label".
func (l *lexer) lexBlank(line, col int) (token, error) {
	l.advance()
	if c, ok := l.cur(); !ok || c != ':' {
		return token{}, &lexError{line: line, col: col, msg: "expected ':' after '_' in blank node label"}
	}
	l.advance()
	var sb strings.Builder
	for {
		c, ok := l.cur()
		if !ok {
			break
		}
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-' || c == '.' {
			sb.WriteRune(l.advance())
			continue
		}
		break
	}
	label := sb.String()
	// a trailing dot terminates the statement rather than the label
	for strings.HasSuffix(label, ".") {
		label = label[:len(label)-1]
		l.backup(1)
	}
	if label == "" {
		return token{}, &lexError{line: line, col: col, msg: "empty blank node label"}
	}
	return token{typ: tokBlank, val: label, line: line, col: col}, nil
}

// lexString reads a short or long quoted string with escape processing.
func (l *lexer) lexString(line, col int) (token, error) {
	quote := l.advance()
	long := false
	if c, ok := l.cur(); ok && c == quote {
		l.advance()
		if c2, ok := l.cur(); ok && c2 == quote {
			l.advance()
			long = true
		} else {
			return token{typ: tokString, val: "", line: line, col: col}, nil
		}
	}

	var sb strings.Builder
	for {
		c, ok := l.cur()
		if !ok {
			return token{}, &lexError{line: line, col: col, msg: "unterminated string literal"}
		}
		if !long && (c == '\n' || c == '\r') {
			return token{}, &lexError{line: l.line, col: l.col, msg: "newline in string literal"}
		}
		if c == quote {
			if !long {
				l.advance()
				break
			}
			// closing delimiter is the last three quotes of a run
			if l.at(1, quote) && l.at(2, quote) && !l.at(3, quote) {
				l.advance()
				l.advance()
				l.advance()
				break
			}
			sb.WriteRune(l.advance())
			continue
		}
		if c == '\\' {
			l.advance()
			esc, err := l.readEscape()
			if err != nil {
				return token{}, err
			}
			sb.WriteRune(esc)
			continue
		}
		sb.WriteRune(l.advance())
	}
	return token{typ: tokString, val: sb.String(), line: line, col: col}, nil
}

// readEscape consumes the character(s) after a backslash and returns the
// decoded rune.
func (l *lexer) readEscape() (rune, error) {
	c, ok := l.cur()
	if !ok {
		return 0, &lexError{line: l.line, col: l.col, msg: "unterminated escape sequence"}
	}
	l.advance()
	switch c {
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 'f':
		return '\f', nil
	case '"':
		return '"', nil
	case '\'':
		return '\'', nil
	case '\\':
		return '\\', nil
	case 'u':
		return l.readHexEscape(4)
	case 'U':
		return l.readHexEscape(8)
	default:
		return 0, &lexError{line: l.line, col: l.col, msg: fmt.Sprintf("invalid escape sequence \\%c", c)}
	}
}

// readHexEscape reads n hex digits and returns the encoded rune.
func (l *lexer) readHexEscape(n int) (rune, error) {
	var v rune
	for i := 0; i < n; i++ {
		c, ok := l.cur()
		if !ok {
			return 0, &lexError{line: l.line, col: l.col, msg: "unterminated unicode escape"}
		}
		d, ok := hexVal(c)
		if !ok {
			return 0, &lexError{line: l.line, col: l.col, msg: fmt.Sprintf("invalid hex digit %q in unicode escape", string(c))}
		}
		l.advance()
		v = v*16 + d
	}
	return v, nil
}

func hexVal(c rune) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// lexAt reads "@prefix", "@base", or a language tag.
func (l *lexer) lexAt(line, col int) (token, error) {
	l.advance()
	var sb strings.Builder
	for {
		c, ok := l.cur()
		if !ok {
			break
		}
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' {
			sb.WriteRune(l.advance())
			continue
		}
		break
	}
	word := sb.String()
	switch word {
	case "prefix":
		return token{typ: tokPrefixDecl, val: "@prefix", line: line, col: col}, nil
	case "base":
		return token{typ: tokBaseDecl, val: "@base", line: line, col: col}, nil
	}
	if word == "" || !unicode.IsLetter([]rune(word)[0]) {
		return token{}, &lexError{line: line, col: col, msg: "malformed language tag"}
	}
	return token{typ: tokLangTag, val: word, line: line, col: col}, nil
}

// lexNumber reads a bare integer, decimal, or double token.
func (l *lexer) lexNumber(line, col int) (token, error) {
	var sb strings.Builder
	if c, ok := l.cur(); ok && (c == '+' || c == '-') {
		sb.WriteRune(l.advance())
	}
	digits := func() int {
		n := 0
		for {
			c, ok := l.cur()
			if !ok || !unicode.IsDigit(c) {
				break
			}
			sb.WriteRune(l.advance())
			n++
		}
		return n
	}

	intDigits := digits()
	decimal := false
	if c, ok := l.cur(); ok && c == '.' && l.digitAt(1) {
		sb.WriteRune(l.advance())
		digits()
		decimal = true
	}
	if intDigits == 0 && !decimal {
		return token{}, &lexError{line: line, col: col, msg: "malformed number"}
	}

	double := false
	if c, ok := l.cur(); ok && (c == 'e' || c == 'E') {
		if !l.digitAt(1) && !((l.at(1, '+') || l.at(1, '-')) && l.digitAt(2)) {
			return token{}, &lexError{line: l.line, col: l.col, msg: "malformed exponent"}
		}
		sb.WriteRune(l.advance())
		if c, ok := l.cur(); ok && (c == '+' || c == '-') {
			sb.WriteRune(l.advance())
		}
		digits()
		double = true
	}

	typ := tokInteger
	if decimal {
		typ = tokDecimal
	}
	if double {
		typ = tokDouble
	}
	return token{typ: typ, val: sb.String(), line: line, col: col}, nil
}

// isNameRune reports whether c can appear inside a prefixed name or bare
// keyword.
func isNameRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) ||
		c == '_' || c == '-' || c == '.' || c == ':' || c == '%'
}

// lexWord reads a prefixed name or bare keyword.
func (l *lexer) lexWord(line, col int) (token, error) {
	var sb strings.Builder
	escaped := false
	for {
		c, ok := l.cur()
		if !ok {
			break
		}
		if c == '\\' {
			// local name escape: the next character is taken literally
			l.advance()
			if _, ok := l.cur(); !ok {
				return token{}, &lexError{line: l.line, col: l.col, msg: "unterminated escape sequence"}
			}
			sb.WriteRune(l.advance())
			escaped = true
			continue
		}
		if !isNameRune(c) {
			break
		}
		sb.WriteRune(l.advance())
	}
	word := sb.String()
	if !escaped {
		// a trailing dot terminates the statement rather than the name
		for strings.HasSuffix(word, ".") {
			word = word[:len(word)-1]
			l.backup(1)
		}
	}
	if word == "" {
		return token{}, &lexError{line: line, col: col, msg: "unexpected character '.'"}
	}

	if strings.Contains(word, ":") {
		return token{typ: tokPName, val: word, line: line, col: col}, nil
	}
	switch {
	case word == "a":
		return token{typ: tokA, val: word, line: line, col: col}, nil
	case word == "true" || word == "false":
		return token{typ: tokBoolean, val: word, line: line, col: col}, nil
	case strings.EqualFold(word, "prefix"):
		return token{typ: tokPrefixDecl, val: "PREFIX", line: line, col: col}, nil
	case strings.EqualFold(word, "base"):
		return token{typ: tokBaseDecl, val: "BASE", line: line, col: col}, nil
	case strings.EqualFold(word, "graph"):
		return token{typ: tokGraphKeyword, val: "GRAPH", line: line, col: col}, nil
	}
	return token{}, &lexError{line: line, col: col, msg: fmt.Sprintf("unexpected token %q", word)}
}

// tokenDesc renders a token for error messages.
func tokenDesc(t token) string {
	switch t.typ {
	case tokEOF:
		return "end of input"
	case tokIRI:
		return fmt.Sprintf("<%s>", t.val)
	case tokString:
		return fmt.Sprintf("%q", t.val)
	default:
		return fmt.Sprintf("%q", t.val)
	}
}
