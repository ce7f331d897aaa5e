// Grow an rrt over a plane with random rectangular obstacles and render it
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/brychanrobot/rrt-tree/render"
	"github.com/brychanrobot/rrt-tree/rrt"
	"github.com/brychanrobot/rrt-tree/scene"
)

func main() {
	iterations := flag.Int("i", 3000, "sets the number of iterations")
	numObstacles := flag.Int("obstacles", 4, "sets the number of random obstacles generated when no scene is loaded")
	noOverlap := flag.Bool("no-overlap", false, "keeps random obstacles from overlapping each other, the start and the goal")
	clearance := flag.Float64("clearance", 0, "grows every obstacle by this much on each side")
	seed := flag.Int64("seed", 0, "seeds the obstacle and point generators")
	goalBias := flag.Int("bias", rrt.DefaultGoalBias, "samples the goal every n iterations until it is reached, 0 disables")
	samplerName := flag.String("sampler", "uniform", "point sampler: uniform or halton")
	stepSize := flag.Float64("step", rrt.DefaultStepSize, "sets the longest edge added in one iteration")
	resolution := flag.Int("res", rrt.DefaultResolution, "sets how many intervals each edge is checked at")
	scenePath := flag.String("scene", "", "loads bounds, start, goal and obstacles from a GeoJSON file")
	imagePath := flag.String("out", "image.png", "writes a rendering of the tree, empty to skip")
	geojsonPath := flag.String("geojson", "", "writes the tree as GeoJSON")
	maskPath := flag.String("mask", "", "writes the obstacle occupancy mask")
	width := flag.Int("width", 1280, "sets the rendering width")
	height := flag.Int("height", 960, "sets the rendering height")
	showTree := flag.Bool("tree", true, "draws a dot on every node")
	verbose := flag.Bool("v", false, "logs every insertion attached to a node other than the one it was steered from")
	flag.Parse()

	start := time.Now()

	s, err := loadScene(*scenePath, *seed, *numObstacles, *noOverlap)
	if err != nil {
		log.Fatal(err)
	}

	if *clearance != 0 {
		s.Clearance = *clearance
	}
	tree, err := s.NewTree(rrt.Config{StepSize: *stepSize, Resolution: *resolution})
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		tree.SetLogger(log.New(os.Stderr, "rrt: ", log.LstdFlags))
	}

	sampler, err := newSampler(*samplerName, s, *seed)
	if err != nil {
		log.Fatal(err)
	}

	planner := rrt.NewPlanner(tree, s.Start, s.Goal, sampler)
	planner.GoalBias = *goalBias
	planner.Run(*iterations)

	log.Printf("solve time %v in %d iters, %d nodes", time.Since(start), planner.GetIterations(), tree.Len())
	if planner.Reached() {
		log.Printf("first path was %.4f cost over %d nodes", rrt.PathCost(tree, planner.GetFirstPath()), len(planner.GetFirstPath()))
		log.Printf("final path was %.4f cost over %d nodes", rrt.PathCost(tree, planner.GetBestPath()), len(planner.GetBestPath()))
	} else {
		log.Println("goal not reached")
	}

	if *imagePath != "" {
		opts := render.DefaultOptions()
		opts.Width, opts.Height = *width, *height
		opts.ShowNodes = *showTree
		img := render.Tree(s, tree, planner.GetFirstPath(), planner.GetBestPath(), opts)
		if err := render.Save(img, *imagePath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *imagePath)
	}

	if *maskPath != "" {
		mask := render.ObstacleMask(s.Bounds, tree.Obstacles, *width, *height)
		if err := render.Save(mask, *maskPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *maskPath)
	}

	if *geojsonPath != "" {
		paths := []scene.Path{
			{Name: "first", Nodes: planner.GetFirstPath()},
			{Name: "final", Nodes: planner.GetBestPath()},
		}
		if err := s.Save(*geojsonPath, tree, paths...); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *geojsonPath)
	}

	log.Printf("total time %v", time.Since(start))
}

func loadScene(path string, seed int64, numObstacles int, noOverlap bool) (*scene.Scene, error) {
	if path != "" {
		s, err := scene.Load(path)
		if err != nil {
			return nil, err
		}
		log.Printf("loaded %d obstacles from %s", len(s.Obstacles), path)
		return s, nil
	}

	s := scene.Default()
	opts := scene.DefaultObstacleOptions()
	opts.Count = numObstacles
	if noOverlap {
		opts.NoOverlap = true
		opts.KeepClear = append(opts.KeepClear, s.Start, s.Goal.Center())
	}
	s.RandomObstacles(rand.New(rand.NewSource(seed)), opts)
	return s, nil
}
