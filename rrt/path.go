package rrt

import (
	"github.com/skelterjohn/geom"
	"gonum.org/v1/gonum/floats"
)

// PathCost returns the length of a path of node indices, such as the result
// of Ancestry, by summing the distance between consecutive nodes.
func PathCost(t *Tree, path []int) float64 {
	if len(path) < 2 {
		return 0
	}

	segments := make([]float64, len(path)-1)
	for i := range segments {
		segments[i] = t.Nodes[path[i]].distance(t.Nodes[path[i+1]].Coord)
	}
	return floats.Sum(segments)
}

// PathCoords returns the positions of the nodes along path.
func PathCoords(t *Tree, path []int) []geom.Coord {
	coords := make([]geom.Coord, len(path))
	for i, index := range path {
		coords[i] = t.Nodes[index].Coord
	}
	return coords
}
