package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/brychanrobot/rrt-tree/rrt"
	"github.com/brychanrobot/rrt-tree/scene"
)

func TestNewSampler(t *testing.T) {
	s := scene.Default()
	for _, name := range []string{"uniform", "halton"} {
		sampler, err := newSampler(name, s, 1)
		if err != nil {
			t.Fatalf("newSampler(%q): %v", name, err)
		}
		x, y := sampler.Next()
		if x < 0 || x > 10 || y < 0 || y > 10 {
			t.Errorf("newSampler(%q): sample (%f, %f) outside the plane", name, x, y)
		}
	}

	if _, err := newSampler("sobol", s, 1); err == nil {
		t.Error("expected an error for an unknown sampler")
	}
}

func TestLoadScene(t *testing.T) {
	s, err := loadScene("", 0, 4, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Obstacles) != 4 {
		t.Fatalf("Obstacles: got %d, want 4", len(s.Obstacles))
	}
	for i, o := range s.Obstacles {
		if o.Contains(s.Start.X, s.Start.Y) || o.Contains(s.Goal.X, s.Goal.Y) {
			t.Errorf("obstacle %d covers the start or goal", i)
		}
	}

	tree, _ := s.NewTree(rrt.DefaultConfig())
	filename := filepath.Join(t.TempDir(), "scene.geojson")
	if err := s.Save(filename, tree); err != nil {
		t.Fatal(err)
	}
	loaded, err := loadScene(filename, 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Obstacles) != 4 {
		t.Errorf("loaded Obstacles: got %d, want 4", len(loaded.Obstacles))
	}

	if _, err := loadScene(filepath.Join(t.TempDir(), "missing.geojson"), 0, 0, false); err == nil {
		t.Error("expected an error for a missing scene")
	}
}

func TestPlannerReachesGoalWithoutObstacles(t *testing.T) {
	s := scene.Default()
	tree, _ := s.NewTree(rrt.DefaultConfig())
	sampler, _ := newSampler("uniform", s, 0)

	planner := rrt.NewPlanner(tree, s.Start, s.Goal, sampler)
	planner.Run(3000)

	// every tenth sample pulls the tree a full step closer to the goal
	if !planner.Reached() {
		t.Fatal("goal not reached")
	}
	best := planner.GetBestPath()
	if best[len(best)-1] != 0 {
		t.Errorf("path does not end at the root: %v", best)
	}
	// the last node may stop anywhere within the goal radius
	if c := rrt.PathCost(tree, best); c < 9*math.Sqrt2-s.Goal.R {
		t.Errorf("path cost %f is shorter than the straight line", c)
	}
}
