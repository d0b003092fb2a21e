// Package scenegraph provides a name-indexed node hierarchy. Each node carries
// a local position, orientation and scale relative to its parent and may
// instance one registered mesh.
package scenegraph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/engine/mesh"
	"github.com/Faultbox/satellite/internal/logger"
)

// RootName is the reserved name of the graph root.
const RootName = "root"

// MeshResolver looks up registered meshes by name.
type MeshResolver interface {
	Get(name string) (*mesh.Mesh, error)
}

// Graph owns the root node and indexes every node by name.
type Graph struct {
	root   *Node
	nodes  map[string]*Node
	meshes MeshResolver
}

// New creates a graph holding only the root node. Attach resolves mesh names
// through meshes.
func New(meshes MeshResolver) *Graph {
	g := &Graph{nodes: make(map[string]*Node), meshes: meshes}
	g.root = newNode(g, RootName, nil)
	g.nodes[RootName] = g.root
	return g
}

// Root returns the root node.
func (g *Graph) Root() *Node {
	return g.root
}

// CreateNode adds a node named name under parent. A nil parent means the root.
func (g *Graph) CreateNode(parent *Node, name string) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("create node: empty name: %w", mesh.ErrInvalidParameter)
	}
	if parent == nil {
		parent = g.root
	}
	if !g.owns(parent) {
		return nil, fmt.Errorf("create node %q: parent %q: %w", name, parent.name, mesh.ErrUnresolvedReference)
	}
	if _, exists := g.nodes[name]; exists {
		return nil, fmt.Errorf("create node %q: %w", name, mesh.ErrDuplicateAsset)
	}

	n := newNode(g, name, parent)
	parent.children = append(parent.children, n)
	g.nodes[name] = n
	return n, nil
}

// Attach instances the mesh registered as meshName on node. A node holds at
// most one mesh; attaching again replaces it.
func (g *Graph) Attach(node *Node, meshName string) error {
	if !g.owns(node) {
		return fmt.Errorf("attach %q: node: %w", meshName, mesh.ErrUnresolvedReference)
	}
	if g.meshes == nil {
		return fmt.Errorf("attach %q: no mesh resolver: %w", meshName, mesh.ErrUnresolvedReference)
	}
	m, err := g.meshes.Get(meshName)
	if err != nil {
		return fmt.Errorf("attach to node %q: %w", node.name, err)
	}
	node.mesh = m
	logger.Debug("mesh attached", zap.String("node", node.name), zap.String("mesh", meshName))
	return nil
}

// Node returns the node registered under name.
func (g *Graph) Node(name string) (*Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node %q: %w", name, mesh.ErrUnresolvedReference)
	}
	return n, nil
}

// Len returns the number of nodes including the root.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Destroy removes node and all of its descendants. The root cannot be destroyed.
func (g *Graph) Destroy(node *Node) error {
	if !g.owns(node) {
		return fmt.Errorf("destroy node: %w", mesh.ErrUnresolvedReference)
	}
	if node == g.root {
		return fmt.Errorf("destroy root node: %w", mesh.ErrInvalidParameter)
	}

	siblings := node.parent.children
	for i, c := range siblings {
		if c == node {
			node.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	node.walk(func(n *Node) bool {
		delete(g.nodes, n.name)
		n.graph = nil
		return true
	})
	node.parent = nil
	return nil
}

// Walk visits every node depth-first in child creation order, starting at the
// root. Returning false from fn skips the node's children.
func (g *Graph) Walk(fn func(*Node) bool) {
	g.root.walk(fn)
}

func (g *Graph) owns(n *Node) bool {
	return n != nil && n.graph == g
}
