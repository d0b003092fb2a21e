package mesh

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks that every triangle index and every group range stays inside
// the mesh. All violations are reported together.
func (m *Mesh) Validate() error {
	var err error
	if m.Name == "" {
		err = multierr.Append(err, fmt.Errorf("mesh has no name: %w", ErrInvalidParameter))
	}

	if len(m.Vertices) == 0 || len(m.Triangles) == 0 {
		err = multierr.Append(err, fmt.Errorf("mesh %q has no geometry: %w", m.Name, ErrInvalidParameter))
	}

	n := uint32(len(m.Vertices))
	for ti, t := range m.Triangles {
		for _, idx := range t {
			if idx >= n {
				err = multierr.Append(err, fmt.Errorf("mesh %q triangle %d: index %d out of range (%d vertices): %w",
					m.Name, ti, idx, n, ErrInvalidParameter))
			}
		}
	}

	for _, g := range m.Groups {
		if g.FirstVertex < 0 || g.FirstVertex+g.VertexCount > len(m.Vertices) {
			err = multierr.Append(err, fmt.Errorf("mesh %q group %q: vertex range [%d,%d) exceeds %d: %w",
				m.Name, g.Name, g.FirstVertex, g.FirstVertex+g.VertexCount, len(m.Vertices), ErrInvalidParameter))
		}
		if g.FirstTriangle < 0 || g.FirstTriangle+g.TriangleCount > len(m.Triangles) {
			err = multierr.Append(err, fmt.Errorf("mesh %q group %q: triangle range [%d,%d) exceeds %d: %w",
				m.Name, g.Name, g.FirstTriangle, g.FirstTriangle+g.TriangleCount, len(m.Triangles), ErrInvalidParameter))
		}
	}
	return err
}
