package scene

import (
	"log"
	"math/rand"

	"github.com/brychanrobot/rrt-tree/rrt"
	"github.com/skelterjohn/geom"
)

// Scene is everything a planner needs besides the samples: the plane, where
// to start, where to go and what to avoid.
type Scene struct {
	Bounds    geom.Rect
	Start     geom.Coord
	Goal      rrt.Goal
	Obstacles []rrt.Obstacle
	// Clearance grows every obstacle by this much on each side when it is
	// added to a tree, keeping edges at least that far from the obstacle.
	Clearance float64
}

// Default returns a 10x10 plane from the origin to a goal of radius 0.1 in
// the far corner, with no obstacles.
func Default() *Scene {
	return &Scene{
		Bounds: geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: 10, Y: 10}},
		Start:  geom.Coord{X: 0, Y: 0},
		Goal:   rrt.NewGoal(9, 9, 0.1),
	}
}

// NewTree creates a tree with cfg holding the scene's obstacles, in order,
// inflated by Clearance.
func (s *Scene) NewTree(cfg rrt.Config) (*rrt.Tree, error) {
	tree, err := rrt.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	for _, o := range s.Obstacles {
		if s.Clearance != 0 {
			o = o.Inflate(s.Clearance)
		}
		tree.AddObstacle(o)
	}
	return tree, nil
}

// ObstacleOptions controls RandomObstacles.
type ObstacleOptions struct {
	Count int
	// MaxSize bounds the width and height of each obstacle as a fraction of
	// the plane's width and height.
	MaxSize float64
	// NoOverlap rejects obstacles that intersect one already placed.
	NoOverlap bool
	// KeepClear rejects obstacles that contain any of these points.
	KeepClear []geom.Coord
}

// DefaultObstacleOptions places four possibly overlapping obstacles up to
// half the plane in size.
func DefaultObstacleOptions() ObstacleOptions {
	return ObstacleOptions{Count: 4, MaxSize: 0.5}
}

const maxAttempts = 1000

// RandomObstacles adds randomly placed rectangles to the scene. Centers fall
// in the plane, inset by 2.5% on the low side and 7.5% on the high side.
// When the constraints cannot be met, fewer obstacles are placed.
func (s *Scene) RandomObstacles(rng *rand.Rand, opts ObstacleOptions) {
	width, height := s.Bounds.Width(), s.Bounds.Height()
	placed := 0
	for attempts := 0; placed < opts.Count && attempts < opts.Count*maxAttempts; attempts++ {
		x := s.Bounds.Min.X + 0.025*width + rng.Float64()*0.9*width
		y := s.Bounds.Min.Y + 0.025*height + rng.Float64()*0.9*height
		w := rng.Float64() * opts.MaxSize * width
		h := rng.Float64() * opts.MaxSize * height
		obstacle := rrt.NewObstacle(x-w/2, y-h/2, w, h)

		if !s.accepts(obstacle, opts) {
			continue
		}
		s.Obstacles = append(s.Obstacles, obstacle)
		placed++
	}

	if placed < opts.Count {
		log.Printf("only placed %d of %d obstacles", placed, opts.Count)
	}
}

func (s *Scene) accepts(obstacle rrt.Obstacle, opts ObstacleOptions) bool {
	for _, p := range opts.KeepClear {
		if obstacle.Contains(p.X, p.Y) {
			return false
		}
	}
	if opts.NoOverlap && hasIntersection(obstacle.Rect(), s.Obstacles) {
		return false
	}
	return true
}

func hasIntersection(rect geom.Rect, obstacles []rrt.Obstacle) bool {
	for _, obstacle := range obstacles {
		if geom.RectsIntersect(obstacle.Rect(), rect) {
			return true
		}
	}
	return false
}
