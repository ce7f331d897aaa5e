package rrt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/skelterjohn/geom"
)

func TestObstacleContains(t *testing.T) {
	o := NewObstacle(1, 2, 3, 4)
	tests := []struct {
		x, y float64
		want bool
	}{
		{2, 3, true},
		{1, 2, true},
		{4, 6, true},
		{1, 6, true},
		{0.999, 3, false},
		{4.001, 3, false},
		{2, 1.999, false},
		{2, 6.001, false},
	}
	for _, tt := range tests {
		if got := o.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	point := NewObstacle(1, 1, 0, 0)
	if !point.Contains(1, 1) {
		t.Error("zero size obstacle should contain its corner")
	}
}

func TestObstacleFromRect(t *testing.T) {
	r := geom.Rect{Min: geom.Coord{X: 3, Y: 1}, Max: geom.Coord{X: 1, Y: 4}}
	o := ObstacleFromRect(r)
	if o.X != 1 || o.Y != 1 || o.W != 2 || o.H != 3 {
		t.Errorf("got %+v, want {X:1 Y:1 W:2 H:3}", o)
	}

	back := o.Rect()
	if back.Min.X != 1 || back.Min.Y != 1 || back.Max.X != 3 || back.Max.Y != 4 {
		t.Errorf("Rect: got %+v", back)
	}
}

func TestObstacleInflate(t *testing.T) {
	o := NewObstacle(1, 1, 2, 4)

	grown := o.Inflate(0.5)
	if grown != NewObstacle(0.5, 0.5, 3, 5) {
		t.Errorf("Inflate(0.5): got %+v", grown)
	}

	shrunk := o.Inflate(-1.5)
	if shrunk != NewObstacle(2, 2.5, 0, 1) {
		t.Errorf("Inflate(-1.5): got %+v", shrunk)
	}
}

func TestGoalContains(t *testing.T) {
	g := NewGoal(9, 9, 0.1)
	tests := []struct {
		x, y float64
		want bool
	}{
		{9, 9, true},
		{9.1, 9, true},
		{9, 8.95, true},
		{9.07, 9.07, true},
		{9.08, 9.08, false},
		{9.11, 9, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if c := g.Center(); c.X != 9 || c.Y != 9 {
		t.Errorf("Center: got %+v", c)
	}
}

func TestIndexFirstHitIsEarliest(t *testing.T) {
	idx := newObstacleIndex()
	idx.insert(0, NewObstacle(5, 5, 1, 1))
	idx.insert(1, NewObstacle(0, 0, 2, 2))
	idx.insert(2, NewObstacle(1, 1, 2, 2))

	tests := []struct {
		x, y float64
		want int
	}{
		{1.5, 1.5, 1},
		{2.5, 2.5, 2},
		{2, 2, 1},
		{3, 3, 2},
		{5.5, 5.5, 0},
		{4, 4, -1},
	}
	for _, tt := range tests {
		if got := idx.firstHit(tt.x, tt.y); got != tt.want {
			t.Errorf("firstHit(%v, %v): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestIndexUnboundedObstacles(t *testing.T) {
	idx := newObstacleIndex()
	if got := idx.firstHit(0, 0); got != -1 {
		t.Errorf("empty index: got %d, want -1", got)
	}

	idx.insert(0, NewObstacle(10, 10, 1, 1))
	idx.insert(1, NewObstacle(0, 0, 1, math.Inf(1)))

	if got := idx.firstHit(0.5, 1e300); got != 1 {
		t.Errorf("firstHit on unbounded obstacle: got %d, want 1", got)
	}
	if got := idx.firstHit(math.NaN(), 0); got != -1 {
		t.Errorf("firstHit(NaN): got %d, want -1", got)
	}
}

func TestIndexMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	idx := newObstacleIndex()
	var obstacles []Obstacle
	for i := 0; i < 200; i++ {
		o := NewObstacle(rng.Float64()*10, rng.Float64()*10, rng.Float64(), rng.Float64())
		obstacles = append(obstacles, o)
		idx.insert(i, o)
	}

	check := func(x, y float64) {
		want := -1
		for i, o := range obstacles {
			if o.Contains(x, y) {
				want = i
				break
			}
		}
		if got := idx.firstHit(x, y); got != want {
			t.Fatalf("firstHit(%v, %v): got %d, want %d", x, y, got, want)
		}
	}

	for i := 0; i < 2000; i++ {
		check(rng.Float64()*11, rng.Float64()*11)
	}
	for _, o := range obstacles {
		check(o.X, o.Y)
		check(o.X+o.W, o.Y+o.H)
	}
}
