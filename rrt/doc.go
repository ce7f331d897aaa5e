// Package rrt grows a rapidly exploring random tree over a 2D plane with
// axis aligned rectangular obstacles.
//
// Each call to Tree.Add steers from the nearest node toward the sample by at
// most Config.StepSize, cuts the edge short in front of the first obstacle it
// crosses, and appends the new node with its cumulative path cost:
//
//	tree := rrt.New()
//	tree.AddObstacle(rrt.NewObstacle(2, 2, 1, 3))
//	tree.Add(0, 0) // root
//	i := tree.Add(x, y)
//	path := tree.Ancestry(i) // i back to the root
//
// Nodes are never rewired or removed, so indices returned by Add stay valid
// for the life of the tree.
package rrt
