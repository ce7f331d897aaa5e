package rrt

import (
	"github.com/skelterjohn/geom"
)

// DefaultGoalBias makes every tenth sample the goal center until the goal is
// first reached.
const DefaultGoalBias = 10

// Sampler yields the points a Planner grows its tree toward.
type Sampler interface {
	Next() (x, y float64)
}

// Planner drives a Tree toward a Goal with points from a Sampler and keeps
// track of the paths that reach it.
type Planner struct {
	tree       *Tree
	sampler    Sampler
	Goal       Goal
	StartPoint geom.Coord
	// GoalBias is how often, in iterations, the goal center is sampled
	// instead of the sampler while the goal has not been reached. Zero
	// disables goal biasing.
	GoalBias int

	iterations int
	endNode    int
	firstPath  []int
	bestPath   []int
}

// NewPlanner roots tree at start, unless it already has nodes, and returns
// a planner that grows it toward goal.
func NewPlanner(tree *Tree, start geom.Coord, goal Goal, sampler Sampler) *Planner {
	if tree.Len() == 0 {
		tree.Add(start.X, start.Y)
	}

	return &Planner{
		tree:       tree,
		sampler:    sampler,
		Goal:       goal,
		StartPoint: start,
		GoalBias:   DefaultGoalBias,
		endNode:    NoParent,
	}
}

//Getters
func (p *Planner) GetTree() *Tree {
	return p.tree
}

func (p *Planner) GetIterations() int {
	return p.iterations
}

// GetFirstPath returns the path, goal end first, to the first node that
// landed in the goal.
func (p *Planner) GetFirstPath() []int {
	return p.firstPath
}

// GetBestPath returns the path to the most recent node that landed in the
// goal. Nodes are never rewired, so later paths are not necessarily shorter.
func (p *Planner) GetBestPath() []int {
	return p.bestPath
}

// Reached reports whether any node has landed in the goal.
func (p *Planner) Reached() bool {
	return p.endNode != NoParent
}

func (p *Planner) nextPoint() (float64, float64) {
	if p.GoalBias > 0 && !p.Reached() && p.iterations%p.GoalBias == 0 {
		return p.Goal.X, p.Goal.Y
	}
	return p.sampler.Next()
}

// Sample performs one iteration and returns the index of the new node.
func (p *Planner) Sample() int {
	x, y := p.nextPoint()
	node := p.tree.Add(x, y)
	p.iterations++

	n := &p.tree.Nodes[node]
	if p.Goal.Contains(n.X, n.Y) {
		p.endNode = node
		p.traceBestPath()
		if p.firstPath == nil {
			p.firstPath = p.bestPath
		}
	}

	return node
}

// Run performs the given number of iterations.
func (p *Planner) Run(iterations int) {
	for i := 0; i < iterations; i++ {
		p.Sample()
	}
}

func (p *Planner) traceBestPath() {
	p.bestPath = p.tree.Ancestry(p.endNode)
}
