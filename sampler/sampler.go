package sampler

import (
	"math/rand"

	halton "github.com/brychanrobot/go-halton"
	"github.com/skelterjohn/geom"
)

// Uniform draws points uniformly at random from a rectangle.
type Uniform struct {
	bounds geom.Rect
	rng    *rand.Rand
}

// NewUniform creates a uniform sampler over bounds. The same seed always
// yields the same sequence.
func NewUniform(bounds geom.Rect, seed int64) *Uniform {
	return &Uniform{bounds: bounds, rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next point.
func (u *Uniform) Next() (float64, float64) {
	x := u.bounds.Min.X + u.rng.Float64()*u.bounds.Width()
	y := u.bounds.Min.Y + u.rng.Float64()*u.bounds.Height()
	return x, y
}

// Halton walks a low discrepancy sequence over a rectangle, so samples
// cover the plane more evenly than Uniform.
type Halton struct {
	bounds  geom.Rect
	haltonX *halton.HaltonSampler
	haltonY *halton.HaltonSampler
}

// NewHalton creates a Halton sampler over bounds using coprime bases 19 and 23.
func NewHalton(bounds geom.Rect) *Halton {
	return &Halton{
		bounds:  bounds,
		haltonX: halton.NewHaltonSampler(19),
		haltonY: halton.NewHaltonSampler(23),
	}
}

// Next returns the next point.
func (h *Halton) Next() (float64, float64) {
	x := h.bounds.Min.X + h.haltonX.Next()*h.bounds.Width()
	y := h.bounds.Min.Y + h.haltonY.Next()*h.bounds.Height()
	return x, y
}
