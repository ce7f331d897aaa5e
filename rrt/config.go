package rrt

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultStepSize is the longest edge the tree will grow in one insertion.
	DefaultStepSize = 0.1
	// DefaultResolution is the number of intervals each edge is split into
	// for collision checking.
	DefaultResolution = 5
)

// Config controls how a Tree grows.
type Config struct {
	// StepSize bounds the length of every new edge.
	StepSize float64

	// Resolution is the number of equal intervals an edge is divided into
	// when checking it against obstacles; Resolution+1 points are tested.
	Resolution int
}

// DefaultConfig returns the step bound and collision resolution used by New.
func DefaultConfig() Config {
	return Config{
		StepSize:   DefaultStepSize,
		Resolution: DefaultResolution,
	}
}

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config can grow a tree.
func (c Config) Validate() error {
	if math.IsNaN(c.StepSize) || math.IsInf(c.StepSize, 0) || c.StepSize <= 0 {
		return fmt.Errorf("%w: StepSize must be a positive finite number, got %v", ErrInvalidConfig, c.StepSize)
	}
	if c.Resolution < 1 {
		return fmt.Errorf("%w: Resolution must be at least 1, got %d", ErrInvalidConfig, c.Resolution)
	}
	return nil
}
