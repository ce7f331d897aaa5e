package rrt

import (
	"log"
	"math"

	"github.com/skelterjohn/geom"
)

// Tree holds every node and obstacle of a growing rrt. Nodes refer to their
// parent by index into Nodes. Nodes and Obstacles are append only; callers
// may read them but must not modify them.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	Nodes     []Node
	Obstacles []Obstacle

	config     Config
	obstacles  *obstacleIndex
	logger     *log.Logger
	reparented int
}

// New creates an empty tree using DefaultConfig.
func New() *Tree {
	t, _ := NewWithConfig(DefaultConfig())
	return t
}

// NewWithConfig creates an empty tree with a custom step size and collision
// resolution.
func NewWithConfig(cfg Config) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tree{config: cfg, obstacles: newObstacleIndex()}, nil
}

// Config returns the parameters the tree grows with.
func (t *Tree) Config() Config {
	return t.config
}

// SetLogger makes the tree log insertions whose parent changed after
// collision truncation. A nil logger disables it.
func (t *Tree) SetLogger(logger *log.Logger) {
	t.logger = logger
}

// Reparented returns how many insertions attached to a different node than
// the one they were steered from.
func (t *Tree) Reparented() int {
	return t.reparented
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// AddObstacle adds an obstacle that all later edges must avoid.
func (t *Tree) AddObstacle(o Obstacle) {
	t.obstacles.insert(len(t.Obstacles), o)
	t.Obstacles = append(t.Obstacles, o)
}

// Nearest returns the index of the node closest to x, y. On a tie the
// earliest node wins. ok is false when the tree is empty.
func (t *Tree) Nearest(x, y float64) (index int, ok bool) {
	point := geom.Coord{X: x, Y: y}
	index = -1
	minDist := math.Inf(1)
	for i := range t.Nodes {
		if dist := t.Nodes[i].distance(point); dist < minDist {
			minDist = dist
			index = i
		}
	}
	return index, index != -1
}

// NearestByCost returns the index of the cheapest node in the whole tree.
// The node argument does not narrow the search.
func (t *Tree) NearestByCost(node int) (index int, ok bool) {
	index = -1
	minCost := math.Inf(1)
	for i := range t.Nodes {
		if t.Nodes[i].Cost < minCost {
			minCost = t.Nodes[i].Cost
			index = i
		}
	}
	return index, index != -1
}

// parentOf returns the position and cost a new node at fallback would hang
// from. An empty tree behaves as if a zero cost node sat on fallback.
func (t *Tree) parentOf(index int, ok bool, fallback geom.Coord) (geom.Coord, float64) {
	if !ok {
		return fallback, 0
	}
	return t.Nodes[index].Coord, t.Nodes[index].Cost
}

// truncate walks from start to end in Resolution steps and stops at the
// last point before the first one inside an obstacle.
func (t *Tree) truncate(start, end geom.Coord) geom.Coord {
	last := start
	step := 1 / float64(t.config.Resolution)
	for i := 0; i <= t.config.Resolution; i++ {
		sample := interpolate(start, end, float64(i)*step)
		if t.obstacles.firstHit(sample.X, sample.Y) != -1 {
			return last
		}
		last = sample
	}
	return last
}

// Add grows the tree toward x, y and returns the index of the new node.
//
// The nearest node is steered at most StepSize toward the target, the edge
// is cut short before the first obstacle along it, and the new node is
// attached to whichever node is nearest to where it finally landed.
func (t *Tree) Add(x, y float64) int {
	target := geom.Coord{X: x, Y: y}

	near, ok := t.Nearest(x, y)
	from, _ := t.parentOf(near, ok, target)

	steered := steer(target, from, t.config.StepSize)
	point := t.truncate(from, steered)

	parent, ok := t.Nearest(point.X, point.Y)
	parentPoint, parentCost := t.parentOf(parent, ok, target)
	if !ok {
		parent = NoParent
	}

	if parent != near {
		t.reparented++
		if t.logger != nil {
			t.logger.Printf("node %d attached to %d instead of %d", len(t.Nodes), parent, near)
		}
	}

	t.Nodes = append(t.Nodes, Node{
		Coord:  point,
		Parent: parent,
		Cost:   euclideanDistance(&point, &parentPoint) + parentCost,
	})
	return len(t.Nodes) - 1
}

// Ancestry returns the indices from node back to the root, both included.
// It panics if node was never returned by Add.
func (t *Tree) Ancestry(node int) []int {
	path := []int{node}
	for current := t.Nodes[node]; current.HasParent(); current = t.Nodes[current.Parent] {
		path = append(path, current.Parent)
	}
	return path
}
