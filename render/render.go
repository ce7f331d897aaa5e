package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/brychanrobot/rrt-tree/rrt"
	"github.com/brychanrobot/rrt-tree/scene"
	"github.com/disintegration/imaging"
	"github.com/harrydb/go/img/grayscale"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/skelterjohn/geom"
	"gonum.org/v1/gonum/floats"
)

var (
	obstacleColor  = colorful.Hsv(30, 1, 1)
	nodeColor      = colorful.Hsv(0, 1, 0.9)
	startColor     = colorful.Hsv(20, 1, 1)
	goalColor      = colorful.Hsv(120, 1, 0.7)
	firstPathColor = colorful.Hsv(60, 1, 1)
	bestPathColor  = colorful.Hsv(100, 1, 1)
)

// Options controls the size and content of a rendering.
type Options struct {
	Width, Height int
	// LineHue is the hue of edges leaving the root; hue grows with cost.
	LineHue float64
	// ShowNodes draws a dot on every node, larger for older nodes.
	ShowNodes bool
}

// DefaultOptions renders a 1280x960 image with node dots.
func DefaultOptions() Options {
	return Options{Width: 1280, Height: 960, LineHue: 250, ShowNodes: true}
}

// transform maps scene coordinates to pixels with +y pointing up.
type transform struct {
	bounds geom.Rect
	sx, sy float64
}

func newTransform(bounds geom.Rect, width, height int) transform {
	return transform{
		bounds: bounds,
		sx:     float64(width) / bounds.Width(),
		sy:     float64(height) / bounds.Height(),
	}
}

func (t transform) point(c geom.Coord) (float64, float64) {
	return (c.X - t.bounds.Min.X) * t.sx, (t.bounds.Max.Y - c.Y) * t.sy
}

func (t transform) rect(o rrt.Obstacle) (x1, y1, x2, y2 float64) {
	x1, y1 = t.point(geom.Coord{X: o.X, Y: o.Y + o.H})
	x2, y2 = t.point(geom.Coord{X: o.X + o.W, Y: o.Y})
	return
}

// Tree draws the scene's obstacles and goal, every edge of tree colored by
// cumulative cost, and the given paths on top.
func Tree(s *scene.Scene, tree *rrt.Tree, firstPath, bestPath []int, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(img)
	tf := newTransform(s.Bounds, opts.Width, opts.Height)

	drawObstacles(gc, tf, tree.Obstacles, obstacleColor)
	drawEdges(gc, tf, tree, opts.LineHue)
	if opts.ShowNodes {
		drawNodes(gc, tf, tree)
	}

	drawCircle(gc, tf, s.Goal.Center(), math.Max(s.Goal.R*tf.sx, 4), goalColor)
	drawCircle(gc, tf, s.Start, 4, startColor)

	drawPath(gc, tf, tree, firstPath, firstPathColor, 3)
	drawPath(gc, tf, tree, bestPath, bestPathColor, 3)

	return img
}

func drawEdges(gc *draw2dimg.GraphicContext, tf transform, tree *rrt.Tree, lineHue float64) {
	if tree.Len() == 0 {
		return
	}

	costs := make([]float64, tree.Len())
	for i := range tree.Nodes {
		costs[i] = tree.Nodes[i].Cost
	}
	maxCost := floats.Max(costs)
	if maxCost == 0 {
		maxCost = 1
	}

	gc.SetLineWidth(1)
	for _, node := range tree.Nodes {
		if !node.HasParent() {
			continue
		}
		hue := math.Mod(lineHue+node.Cost/maxCost*120, 360)
		gc.SetStrokeColor(colorful.Hsv(hue, 1, 0.6))
		gc.BeginPath()
		gc.MoveTo(tf.point(tree.Nodes[node.Parent].Coord))
		gc.LineTo(tf.point(node.Coord))
		gc.Stroke()
	}
}

func drawNodes(gc *draw2dimg.GraphicContext, tf transform, tree *rrt.Tree) {
	gc.SetFillColor(nodeColor)
	n := float64(tree.Len())
	for i, node := range tree.Nodes {
		x, y := tf.point(node.Coord)
		draw2dkit.Circle(gc, x, y, 1+2.5*(1-float64(i)/n))
	}
	gc.Fill()
}

func drawCircle(gc *draw2dimg.GraphicContext, tf transform, center geom.Coord, radius float64, c color.Color) {
	x, y := tf.point(center)
	gc.SetStrokeColor(c)
	gc.SetLineWidth(2)
	gc.BeginPath()
	draw2dkit.Circle(gc, x, y, radius)
	gc.Stroke()
}

func drawPath(gc *draw2dimg.GraphicContext, tf transform, tree *rrt.Tree, path []int, c color.Color, thickness float64) {
	if len(path) < 2 {
		return
	}

	gc.SetStrokeColor(c)
	gc.SetLineWidth(thickness)
	gc.BeginPath()
	for i, coord := range rrt.PathCoords(tree, path) {
		x, y := tf.point(coord)
		if i == 0 {
			gc.MoveTo(x, y)
		} else {
			gc.LineTo(x, y)
		}
	}
	gc.Stroke()
}

// ObstacleMask rasterizes the obstacles, white on black, the way a planner
// working from an occupancy image would see them.
func ObstacleMask(bounds geom.Rect, obstacles []rrt.Obstacle, width, height int) *image.Gray {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(img)
	drawObstacles(gc, newTransform(bounds, width, height), obstacles, colorful.Color{R: 1, G: 1, B: 1})

	return grayscale.Convert(img, grayscale.ToGrayLuma709)
}

func drawObstacles(gc *draw2dimg.GraphicContext, tf transform, obstacles []rrt.Obstacle, c color.Color) {
	gc.SetFillColor(c)
	for _, o := range obstacles {
		x1, y1, x2, y2 := tf.rect(o)
		draw2dkit.Rectangle(gc, x1, y1, x2, y2)
	}
	gc.Fill()
}

// Save writes img to filename, choosing the format from its extension.
func Save(img image.Image, filename string) error {
	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
