package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/brychanrobot/rrt-tree/rrt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/skelterjohn/geom"
)

// Feature roles, stored in the "role" property.
const (
	RoleObstacle = "obstacle"
	RoleStart    = "start"
	RoleGoal     = "goal"
	RoleBounds   = "bounds"
	RoleEdge     = "edge"
	RolePath     = "path"
)

// Load reads a scene from a GeoJSON file.
func Load(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a GeoJSON FeatureCollection into a scene, starting from
// Default. Polygon features without a role, or with role "obstacle", become
// obstacles covering their bounding box. Points with role "start" or "goal"
// (with an optional "radius") and a feature with role "bounds" (with an
// optional "clearance") override the defaults. Edges and paths written by
// Write are skipped.
func Read(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	s := Default()
	for i, feature := range fc.Features {
		if feature.Geometry == nil {
			continue
		}
		if err := s.addFeature(feature); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
	}
	return s, nil
}

func (s *Scene) addFeature(feature *geojson.Feature) error {
	role, _ := feature.Properties["role"].(string)
	switch role {
	case "", RoleObstacle:
		return s.addObstacles(feature.Geometry)
	case RoleStart:
		point, ok := feature.Geometry.(orb.Point)
		if !ok {
			return fmt.Errorf("start must be a Point, got %s", feature.Geometry.GeoJSONType())
		}
		s.Start = coord(point)
	case RoleGoal:
		point, ok := feature.Geometry.(orb.Point)
		if !ok {
			return fmt.Errorf("goal must be a Point, got %s", feature.Geometry.GeoJSONType())
		}
		radius := s.Goal.R
		if v, ok := feature.Properties["radius"].(float64); ok {
			radius = v
		}
		if radius < 0 {
			return fmt.Errorf("goal radius must not be negative, got %v", radius)
		}
		s.Goal = rrt.NewGoal(point.X(), point.Y(), radius)
	case RoleBounds:
		b := feature.Geometry.Bound()
		if b.Max.X() <= b.Min.X() || b.Max.Y() <= b.Min.Y() {
			return fmt.Errorf("bounds must have a positive area")
		}
		s.Bounds = rect(b)
		if v, ok := feature.Properties["clearance"].(float64); ok {
			s.Clearance = v
		}
	case RoleEdge, RolePath:
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	return nil
}

func (s *Scene) addObstacles(geometry orb.Geometry) error {
	switch g := geometry.(type) {
	case orb.Polygon:
		s.Obstacles = append(s.Obstacles, rrt.ObstacleFromRect(rect(g.Bound())))
	case orb.MultiPolygon:
		for _, polygon := range g {
			s.Obstacles = append(s.Obstacles, rrt.ObstacleFromRect(rect(polygon.Bound())))
		}
	default:
		return fmt.Errorf("obstacle must be a Polygon or MultiPolygon, got %s", geometry.GeoJSONType())
	}
	return nil
}

// Path is a named list of node indices, such as the result of Ancestry.
type Path struct {
	Name  string
	Nodes []int
}

// FeatureCollection converts the scene and a tree grown in it into GeoJSON.
// Obstacles are written as given in the scene, before Clearance. Every edge
// is a LineString from parent to child carrying the child's index and cost.
// The result can be read back with Read.
func (s *Scene) FeatureCollection(tree *rrt.Tree, paths ...Path) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	bounds := geojson.NewFeature(bound(s.Bounds).ToPolygon())
	bounds.Properties["role"] = RoleBounds
	if s.Clearance != 0 {
		bounds.Properties["clearance"] = s.Clearance
	}
	fc.Append(bounds)

	start := geojson.NewFeature(point(s.Start))
	start.Properties["role"] = RoleStart
	fc.Append(start)

	goal := geojson.NewFeature(point(s.Goal.Center()))
	goal.Properties["role"] = RoleGoal
	goal.Properties["radius"] = s.Goal.R
	fc.Append(goal)

	for i, o := range s.Obstacles {
		f := geojson.NewFeature(bound(o.Rect()).ToPolygon())
		f.Properties["role"] = RoleObstacle
		f.Properties["index"] = i
		fc.Append(f)
	}

	for i, n := range tree.Nodes {
		if !n.HasParent() {
			continue
		}
		parent := tree.Nodes[n.Parent]
		f := geojson.NewFeature(orb.LineString{point(parent.Coord), point(n.Coord)})
		f.Properties["role"] = RoleEdge
		f.Properties["node"] = i
		f.Properties["parent"] = n.Parent
		f.Properties["cost"] = n.Cost
		fc.Append(f)
	}

	for _, path := range paths {
		if len(path.Nodes) == 0 {
			continue
		}
		line := make(orb.LineString, 0, len(path.Nodes))
		for _, c := range rrt.PathCoords(tree, path.Nodes) {
			line = append(line, point(c))
		}
		f := geojson.NewFeature(line)
		f.Properties["role"] = RolePath
		f.Properties["name"] = path.Name
		f.Properties["cost"] = rrt.PathCost(tree, path.Nodes)
		fc.Append(f)
	}

	return fc
}

// Write encodes the scene and tree as GeoJSON.
func (s *Scene) Write(w io.Writer, tree *rrt.Tree, paths ...Path) error {
	data, err := s.FeatureCollection(tree, paths...).MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}

// Save writes the scene and tree to a GeoJSON file.
func (s *Scene) Save(filename string, tree *rrt.Tree, paths ...Path) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := s.Write(f, tree, paths...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func coord(p orb.Point) geom.Coord {
	return geom.Coord{X: p.X(), Y: p.Y()}
}

func point(c geom.Coord) orb.Point {
	return orb.Point{c.X, c.Y}
}

func rect(b orb.Bound) geom.Rect {
	return geom.Rect{Min: coord(b.Min), Max: coord(b.Max)}
}

func bound(r geom.Rect) orb.Bound {
	return orb.Bound{Min: point(r.Min), Max: point(r.Max)}
}
