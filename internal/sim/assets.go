package sim

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/satellite/internal/config"
	"github.com/Faultbox/satellite/internal/engine/mesh"
)

// BuildMeshes builds the cube, the cylinder and every configured torus and
// registers them. Any failure aborts with nothing usable returned.
func BuildMeshes(cfg *config.Config) (*mesh.Registry, error) {
	reg := mesh.NewRegistry(mesh.RejectDuplicates)

	if err := reg.Register(mesh.BuildCube()); err != nil {
		return nil, err
	}

	cyl, err := mesh.BuildCylinder(cfg.CylinderParams())
	if err != nil {
		return nil, fmt.Errorf("build cylinder: %w", err)
	}
	if err := reg.Register(cyl); err != nil {
		return nil, err
	}

	var errs error
	for _, t := range cfg.Meshes.Tori {
		torus, err := mesh.BuildTorus(t.Name, t.Material, t.TorusParams())
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("build torus %q: %w", t.Name, err))
			continue
		}
		errs = multierr.Append(errs, reg.Register(torus))
	}
	if errs != nil {
		return nil, errs
	}
	return reg, nil
}

// ringMeshes returns the configured torus names in order.
func ringMeshes(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Meshes.Tori))
	for _, t := range cfg.Meshes.Tori {
		names = append(names, t.Name)
	}
	return names
}
