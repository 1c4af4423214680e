package logic

import "github.com/owowisp/mosswright/internal/generrors"

// Graph is the immutable node set produced by the (out-of-scope) logic
// compiler. Node indices are stable and referenced by
// requirement.Requirement{Kind: KState}.
type Graph struct {
	Nodes                  []Node
	DefaultDoorConnections map[uint16]uint16

	byIdentifier map[string]int
}

// NewGraph builds a Graph and indexes nodes by identifier.
func NewGraph(nodes []Node, defaultDoors map[uint16]uint16) *Graph {
	g := &Graph{Nodes: nodes, DefaultDoorConnections: defaultDoors, byIdentifier: make(map[string]int, len(nodes))}
	for i, n := range nodes {
		g.byIdentifier[n.Identifier] = i
	}
	return g
}

// IndexOf resolves a node identifier to its stable index.
func (g *Graph) IndexOf(identifier string) (int, bool) {
	i, ok := g.byIdentifier[identifier]
	return i, ok
}

// Node returns the node at index i, panicking via an out-of-bounds
// invariant violation rather than a silent zero value — a bad index here
// is always a defect in the caller, never user input.
func (g *Graph) Node(i int) Node {
	if i < 0 || i >= len(g.Nodes) {
		generrors.Invariant("logic: node index %d out of bounds (len=%d)", i, len(g.Nodes))
	}
	return g.Nodes[i]
}

// SpawnAnchors returns the indices of every anchor flagged CanSpawn, in
// stable node-index order.
func (g *Graph) SpawnAnchors() []int {
	var out []int
	for i, n := range g.Nodes {
		if n.Kind == NodeAnchor && n.CanSpawn {
			out = append(out, i)
		}
	}
	return out
}

// PickupIndices returns the indices of every Pickup/Quest node, in stable
// node-index order.
func (g *Graph) PickupIndices() []int {
	var out []int
	for i, n := range g.Nodes {
		if n.IsPickup() {
			out = append(out, i)
		}
	}
	return out
}
