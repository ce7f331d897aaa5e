package rrt

import (
	"math"

	"github.com/skelterjohn/geom"
)

// Obstacle is an axis aligned rectangle with its corner at X, Y.
// Up and right are positive.
type Obstacle struct {
	X, Y float64
	W, H float64
}

// NewObstacle creates an obstacle from its corner and size.
func NewObstacle(x, y, w, h float64) Obstacle {
	return Obstacle{X: x, Y: y, W: w, H: h}
}

// ObstacleFromRect converts a rectangle into an obstacle.
func ObstacleFromRect(r geom.Rect) Obstacle {
	return Obstacle{
		X: math.Min(r.Min.X, r.Max.X),
		Y: math.Min(r.Min.Y, r.Max.Y),
		W: math.Abs(r.Width()),
		H: math.Abs(r.Height()),
	}
}

// Contains reports whether x, y lies inside or on the edge of the obstacle.
func (o Obstacle) Contains(x, y float64) bool {
	return x >= o.X && x <= o.X+o.W && y >= o.Y && y <= o.Y+o.H
}

// Inflate returns the obstacle grown by amount on every side. A negative
// amount shrinks it, down to a point at its center.
func (o Obstacle) Inflate(amount float64) Obstacle {
	w := math.Max(o.W+2*amount, 0)
	h := math.Max(o.H+2*amount, 0)
	cx, cy := o.X+o.W/2, o.Y+o.H/2
	return Obstacle{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Rect returns the obstacle's bounds.
func (o Obstacle) Rect() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: o.X, Y: o.Y},
		Max: geom.Coord{X: o.X + o.W, Y: o.Y + o.H},
	}
}

// Goal is a circular target region.
type Goal struct {
	X, Y float64
	R    float64
}

// NewGoal creates a goal centered at x, y.
func NewGoal(x, y, r float64) Goal {
	return Goal{X: x, Y: y, R: r}
}

// Contains reports whether x, y lies within R of the goal center.
func (g Goal) Contains(x, y float64) bool {
	return euclideanDistance(&geom.Coord{X: x, Y: y}, &geom.Coord{X: g.X, Y: g.Y}) <= g.R
}

// Center returns the middle of the goal region.
func (g Goal) Center() geom.Coord {
	return geom.Coord{X: g.X, Y: g.Y}
}
