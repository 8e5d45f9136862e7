package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// Format identifies a Turtle-family serialization format.
type Format string

const (
	// FormatTurtle is Turtle (.ttl), the default format.
	FormatTurtle Format = "turtle"

	// FormatNTriples is N-Triples (.nt), one triple per line.
	FormatNTriples Format = "ntriples"

	// FormatNQuads is N-Quads (.nq), one quad per line.
	FormatNQuads Format = "nquads"

	// FormatTriG is TriG (.trig), Turtle with named graph blocks.
	FormatTriG Format = "trig"
)

// FormatInfo provides metadata about a serialization format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatNQuads: {
		Name:        FormatNQuads,
		MIMEType:    "application/n-quads",
		Extension:   ".nq",
		Description: "N-Quads - N-Triples with named graphs",
	},
	FormatTriG: {
		Name:        FormatTriG,
		MIMEType:    "application/trig",
		Extension:   ".trig",
		Description: "TriG - Turtle with named graph blocks",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// Formats returns the supported formats in name order.
func Formats() []Format {
	out := make([]Format, 0, len(FormatRegistry))
	for f := range FormatRegistry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// formatAliases maps accepted spellings to canonical formats.
var formatAliases = map[string]Format{
	"turtle":    FormatTurtle,
	"ttl":       FormatTurtle,
	"ntriples":  FormatNTriples,
	"n-triples": FormatNTriples,
	"nt":        FormatNTriples,
	"nquads":    FormatNQuads,
	"n-quads":   FormatNQuads,
	"nq":        FormatNQuads,
	"trig":      FormatTriG,
}

// ParseFormat resolves a format name or common alias, case-insensitively.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
