package mesh

import "errors"

// Asset errors shared by the mesh registry and the scene graph.
// Callers wrap them with context and match with errors.Is.
var (
	// ErrInvalidParameter reports a builder parameter below its minimum.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDuplicateAsset reports a mesh or node name that is already taken.
	ErrDuplicateAsset = errors.New("duplicate asset")
	// ErrUnresolvedReference reports a lookup of a mesh or node that does not exist.
	ErrUnresolvedReference = errors.New("unresolved reference")
)
