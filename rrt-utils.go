package main

import (
	"fmt"

	"github.com/brychanrobot/rrt-tree/rrt"
	"github.com/brychanrobot/rrt-tree/sampler"
	"github.com/brychanrobot/rrt-tree/scene"
)

func newSampler(name string, s *scene.Scene, seed int64) (rrt.Sampler, error) {
	switch name {
	case "uniform":
		return sampler.NewUniform(s.Bounds, seed), nil
	case "halton":
		return sampler.NewHalton(s.Bounds), nil
	default:
		return nil, fmt.Errorf("unknown sampler %q", name)
	}
}
