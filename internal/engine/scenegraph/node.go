package scenegraph

import (
	"github.com/Faultbox/satellite/internal/engine/mesh"
	"github.com/Faultbox/satellite/pkg/math"
)

// Node is one element of the hierarchy. Its transform is local to its parent.
type Node struct {
	graph    *Graph
	name     string
	parent   *Node
	children []*Node
	mesh     *mesh.Mesh

	position    math.Vec3
	orientation math.Quat
	scale       math.Vec3
}

func newNode(g *Graph, name string, parent *Node) *Node {
	return &Node{
		graph:       g,
		name:        name,
		parent:      parent,
		orientation: math.QuatIdentity(),
		scale:       math.One,
	}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in creation order.
func (n *Node) Children() []*Node { return n.children }

// Mesh returns the attached mesh or nil.
func (n *Node) Mesh() *mesh.Mesh { return n.mesh }

// Position returns the local position.
func (n *Node) Position() math.Vec3 { return n.position }

// Orientation returns the local orientation.
func (n *Node) Orientation() math.Quat { return n.orientation }

// ScaleFactors returns the local scale.
func (n *Node) ScaleFactors() math.Vec3 { return n.scale }

// SetPosition replaces the local position.
func (n *Node) SetPosition(p math.Vec3) {
	n.position = p
}

// Translate moves the node by d expressed in parent space.
func (n *Node) Translate(d math.Vec3) {
	n.position = n.position.Add(d)
}

// Rotate turns the node by angle radians about axis in its own local space.
func (n *Node) Rotate(axis math.Vec3, angle float32) {
	n.orientation = n.orientation.Mul(math.QuatFromAxisAngle(axis, angle)).Normalize()
}

// Yaw rotates about the local Y axis.
func (n *Node) Yaw(angle float32) {
	n.Rotate(math.UnitY, angle)
}

// Pitch rotates about the local X axis.
func (n *Node) Pitch(angle float32) {
	n.Rotate(math.UnitX, angle)
}

// Roll rotates about the local Z axis.
func (n *Node) Roll(angle float32) {
	n.Rotate(math.UnitZ, angle)
}

// SetOrientation replaces the local orientation.
func (n *Node) SetOrientation(q math.Quat) {
	n.orientation = q.Normalize()
}

// SetScale replaces the local scale.
func (n *Node) SetScale(s math.Vec3) {
	n.scale = s
}

// Scale multiplies the local scale component-wise by s.
func (n *Node) Scale(s math.Vec3) {
	n.scale = n.scale.Mul(s)
}

// Local returns T·R·S for this node alone.
func (n *Node) Local() math.Mat4 {
	return math.Compose(n.position, n.orientation, n.scale)
}

// World returns the node transform composed with every ancestor.
func (n *Node) World() math.Mat4 {
	world := n.Local()
	for p := n.parent; p != nil; p = p.parent {
		world = p.Local().Mul(world)
	}
	return world
}

func (n *Node) walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.walk(fn)
	}
}
