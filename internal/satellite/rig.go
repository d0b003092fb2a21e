package satellite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/engine/scenegraph"
	"github.com/Faultbox/satellite/internal/logger"
	"github.com/Faultbox/satellite/pkg/math"
)

// CrosspieceKind tells which initial turn a crosspiece received.
type CrosspieceKind int

const (
	// Rolled crosspieces were turned about their local Z axis.
	Rolled CrosspieceKind = iota
	// Yawed crosspieces were turned about their local Y axis.
	Yawed
)

func (k CrosspieceKind) String() string {
	if k == Yawed {
		return "yawed"
	}
	return "rolled"
}

// Crosspiece is one of the thin bars crossing an arm.
type Crosspiece struct {
	Node *scenegraph.Node
	Kind CrosspieceKind
}

// Rig holds the nodes the animator drives. Everything except the hub is a
// child of the hub.
type Rig struct {
	Hub         *scenegraph.Node
	Arms        [2]*scenegraph.Node
	Crosspieces [4]Crosspiece
	Panel       *scenegraph.Node
	Rings       []*scenegraph.Node
}

// Nodes returns every node of the rig, hub first.
func (r *Rig) Nodes() []*scenegraph.Node {
	nodes := []*scenegraph.Node{r.Hub, r.Arms[0], r.Arms[1]}
	for _, c := range r.Crosspieces {
		nodes = append(nodes, c.Node)
	}
	nodes = append(nodes, r.Panel)
	return append(nodes, r.Rings...)
}

// Compose builds the rig under the graph root. The meshes named by layout
// must already be registered with the graph's resolver.
func Compose(g *scenegraph.Graph, layout Layout) (*Rig, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("compose satellite: %w", err)
	}

	rig := &Rig{}
	var err error

	rig.Hub, err = part(g, nil, "Hub", layout.HubMesh)
	if err != nil {
		return nil, err
	}
	rig.Hub.SetPosition(layout.HubPosition)
	rig.Hub.Scale(layout.HubScale)

	for i, side := range []float32{-1, 1} {
		arm, err := part(g, rig.Hub, fmt.Sprintf("Arm%d", i), layout.HubMesh)
		if err != nil {
			return nil, err
		}
		arm.SetPosition(math.V3(side*layout.ArmOffset, 0, 0))
		arm.Scale(layout.ArmScale)
		rig.Arms[i] = arm
	}

	// Each arm gets a rolled and a yawed crosspiece at the same spot.
	for i := range rig.Crosspieces {
		side := float32(-1)
		if i >= 2 {
			side = 1
		}
		kind := CrosspieceKind(i % 2)

		n, err := part(g, rig.Hub, fmt.Sprintf("Crosspiece%d", i), layout.HubMesh)
		if err != nil {
			return nil, err
		}
		n.SetPosition(math.V3(side*layout.CrosspieceOffset, 0, 0))
		n.Scale(layout.CrosspieceScale)
		if kind == Rolled {
			n.Roll(layout.Turn)
		} else {
			n.Yaw(layout.Turn)
		}
		rig.Crosspieces[i] = Crosspiece{Node: n, Kind: kind}
	}

	rig.Panel, err = part(g, rig.Hub, "Panel", layout.PanelMesh)
	if err != nil {
		return nil, err
	}
	rig.Panel.Scale(layout.PanelScale)

	for i := 0; i < layout.RingCount; i++ {
		meshName := layout.RingMeshes[i%len(layout.RingMeshes)]
		n, err := part(g, rig.Hub, fmt.Sprintf("Ring%d", i), meshName)
		if err != nil {
			return nil, err
		}
		n.Scale(layout.RingScale)
		n.Translate(math.V3(layout.ringX(i), 0, 0))
		n.Yaw(layout.Turn)
		rig.Rings = append(rig.Rings, n)
	}

	logger.Info("satellite composed",
		zap.Int("nodes", len(rig.Nodes())),
		zap.Int("rings", len(rig.Rings)),
	)
	return rig, nil
}

func part(g *scenegraph.Graph, parent *scenegraph.Node, name, meshName string) (*scenegraph.Node, error) {
	n, err := g.CreateNode(parent, name)
	if err != nil {
		return nil, fmt.Errorf("compose satellite: %w", err)
	}
	if err := g.Attach(n, meshName); err != nil {
		return nil, fmt.Errorf("compose satellite: %w", err)
	}
	return n, nil
}
