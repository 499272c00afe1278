package geometry

import (
	"github.com/n-oden/gotracer/material"
	"github.com/n-oden/gotracer/types"
)

// HitRecord describes a ray/primitive intersection: the ray parameter T,
// the world-space hit point P, the unit geometric surface normal at P, and
// the material to scatter against.
type HitRecord struct {
	T      float32
	P      types.Vec3
	Normal types.Vec3
	Mat    *material.Material
}
