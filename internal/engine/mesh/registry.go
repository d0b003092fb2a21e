package mesh

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/logger"
)

// Policy decides what Register does with a name that is already taken.
type Policy int

const (
	// RejectDuplicates fails the second registration and keeps the first mesh.
	RejectDuplicates Policy = iota
	// ReplaceDuplicates swaps the stored mesh for the new one.
	ReplaceDuplicates
)

// Registry stores built meshes by name. It is filled once at startup and then
// only read, all from the frame thread.
type Registry struct {
	policy Policy
	meshes map[string]*Mesh
}

// NewRegistry creates an empty registry with the given duplicate policy.
func NewRegistry(policy Policy) *Registry {
	return &Registry{
		policy: policy,
		meshes: make(map[string]*Mesh),
	}
}

// Register validates m and stores it. Nothing is stored if validation fails
// or the name is taken under RejectDuplicates.
func (r *Registry) Register(m *Mesh) error {
	if m == nil {
		return fmt.Errorf("register nil mesh: %w", ErrInvalidParameter)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("register mesh %q: %w", m.Name, err)
	}
	if _, exists := r.meshes[m.Name]; exists && r.policy == RejectDuplicates {
		return fmt.Errorf("register mesh %q: %w", m.Name, ErrDuplicateAsset)
	}

	r.meshes[m.Name] = m
	logger.Debug("mesh registered",
		zap.String("mesh", m.Name),
		zap.String("material", m.Material),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(m.Triangles)),
		zap.Int("groups", len(m.Groups)),
	)
	return nil
}

// Get returns the named mesh.
func (r *Registry) Get(name string) (*Mesh, error) {
	m, ok := r.meshes[name]
	if !ok {
		return nil, fmt.Errorf("mesh %q: %w", name, ErrUnresolvedReference)
	}
	return m, nil
}

// Has reports whether a mesh of that name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.meshes[name]
	return ok
}

// Names returns the registered mesh names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.meshes))
	for name := range r.meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered meshes.
func (r *Registry) Len() int {
	return len(r.meshes)
}
