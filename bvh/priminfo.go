package bvh

import (
	"github.com/n-oden/gotracer/geometry"
	"github.com/n-oden/gotracer/types"
)

// PrimInfo wraps a primitive with the bounding box and centroid the builder
// partitions on, plus Index, a handle back into the scene's sphere slice.
// Only finite primitives (currently spheres) get a PrimInfo and are placed
// in the tree -- infinite primitives (planes) are tested by a linear scan
// in scene.Scene.Hit instead.
type PrimInfo struct {
	Box      geometry.AABB
	Centroid types.Vec3
	Index    int
}

// NewPrimInfo builds a PrimInfo from a primitive's bounding box and the
// index it occupies in the scene's primitive slice.
func NewPrimInfo(box geometry.AABB, index int) PrimInfo {
	return PrimInfo{Box: box, Centroid: box.Centroid(), Index: index}
}
