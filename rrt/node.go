package rrt

import (
	"github.com/skelterjohn/geom"
)

// NoParent marks the root node.
const NoParent = -1

// Node Represents an RRT Node
type Node struct {
	geom.Coord
	Parent int
	Cost   float64
}

// HasParent reports whether n is a non-root node.
func (n *Node) HasParent() bool {
	return n.Parent != NoParent
}

// Depth sums the cumulative cost of every node on the way to the root,
// starting with n itself. The root contributes nothing. Cost is already
// cumulative, so this is not a path length; use PathCost for that.
func (n *Node) Depth(t *Tree) float64 {
	if !n.HasParent() {
		return 0
	}
	return t.Nodes[n.Parent].Depth(t) + n.Cost
}

func (n *Node) distance(p geom.Coord) float64 {
	return euclideanDistance(&n.Coord, &p)
}
