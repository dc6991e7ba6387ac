// Package scene provides a small retained scene graph for the demos.
//
// Nodes live in an arena owned by a [Graph] and reference their children by
// [NodeID]. A node carries a [Pose] (position, axis/angle rotation and
// non-uniform scale) and, for leaves, an opaque [Shape] and a shared
// [Material]. Hosts draw a graph by calling [Graph.Walk], which hands every
// visible node its composed world [Affine].
//
// # Cloning
//
// [Graph.Clone] deep-copies a subtree: poses and child lists are fresh, so
// changing a clone's transform never touches its siblings. Shapes are copied
// by value and materials stay shared, which is what makes one-color mode
// recolor every copy at once.
//
// # Thread Safety
//
// A Graph is NOT safe for concurrent use. The demos mutate and draw it from a
// single render loop.
package scene
