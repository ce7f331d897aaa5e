package rrt

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// indexTolerance pads boxes so points on an obstacle edge still intersect it.
const indexTolerance = 1e-9

// obstacleEntry wraps an obstacle for R-tree storage
type obstacleEntry struct {
	order    int
	obstacle Obstacle
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// obstacleIndex answers "which obstacle does this point hit first" where
// first means earliest added. The R-tree only narrows the candidates.
type obstacleIndex struct {
	tree *rtreego.Rtree
	// obstacles whose bounds cannot be expressed as an rtreego.Rect
	// (infinite or NaN extents) are always checked.
	unbounded []*obstacleEntry
	all       []*obstacleEntry
}

func newObstacleIndex() *obstacleIndex {
	return &obstacleIndex{tree: rtreego.NewTree(2, 25, 50)}
}

func slack(v float64) float64 {
	return indexTolerance * math.Max(1, math.Abs(v))
}

func paddedRect(minX, minY, maxX, maxY float64) (rtreego.Rect, bool) {
	minX -= slack(minX)
	minY -= slack(minY)
	maxX += slack(maxX)
	maxY += slack(maxY)
	for _, v := range []float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return rtreego.Rect{}, false
		}
	}

	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{maxX - minX, maxY - minY})
	if err != nil {
		return rtreego.Rect{}, false
	}
	return rect, true
}

func (idx *obstacleIndex) insert(order int, o Obstacle) {
	entry := &obstacleEntry{order: order, obstacle: o}
	idx.all = append(idx.all, entry)

	bbox, ok := paddedRect(o.X, o.Y, o.X+o.W, o.Y+o.H)
	if !ok {
		idx.unbounded = append(idx.unbounded, entry)
		return
	}
	entry.bbox = bbox
	idx.tree.Insert(entry)
}

// firstHit returns the insertion order of the earliest obstacle containing
// x, y, or -1 when none does.
func (idx *obstacleIndex) firstHit(x, y float64) int {
	if len(idx.all) == 0 {
		return -1
	}

	query, ok := paddedRect(x, y, x, y)
	if !ok {
		return earliestContaining(idx.all, x, y)
	}

	first := earliestContaining(idx.unbounded, x, y)
	for _, item := range idx.tree.SearchIntersect(query) {
		entry := item.(*obstacleEntry)
		if (first == -1 || entry.order < first) && entry.obstacle.Contains(x, y) {
			first = entry.order
		}
	}
	return first
}

func earliestContaining(entries []*obstacleEntry, x, y float64) int {
	for _, entry := range entries {
		if entry.obstacle.Contains(x, y) {
			return entry.order
		}
	}
	return -1
}
