package rrt

import (
	"math"

	"github.com/skelterjohn/geom"
)

func euclideanDistance(p1 *geom.Coord, p2 *geom.Coord) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// steer pulls target onto the circle of radius maxSegment around from when
// it lies further away than that.
func steer(target, from geom.Coord, maxSegment float64) geom.Coord {
	dx := target.X - from.X
	dy := target.Y - from.Y
	mag := math.Sqrt(dx*dx + dy*dy)
	if mag <= maxSegment {
		return target
	}

	scale := maxSegment / mag
	return geom.Coord{X: dx*scale + from.X, Y: dy*scale + from.Y}
}

func interpolate(a, b geom.Coord, t float64) geom.Coord {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return geom.Coord{X: a.X + dx*t, Y: a.Y + dy*t}
}
