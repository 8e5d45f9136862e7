package world

import (
	"context"
	"io"

	"github.com/c360studio/semworld/rdf"
)

// Export writes the world to w in the given serialization format.
func (m *Model) Export(ctx context.Context, w io.Writer, format rdf.Format) error {
	return m.store.Serialize(ctx, w, rdf.SerializeOptions{Format: format})
}

// ExportWorld returns the world serialized as Turtle, the format used
// by the interactive export command.
func (m *Model) ExportWorld(ctx context.Context) (string, error) {
	return m.store.SerializeString(ctx, rdf.SerializeOptions{Format: rdf.FormatTurtle})
}
