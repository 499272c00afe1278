package geometry

import (
	"math"

	"github.com/n-oden/gotracer/types"
)

// AABB is an axis-aligned bounding box described by its min (L) and max (U)
// corners. A zero-value AABB is not empty; use EmptyAABB to get the identity
// element for Union.
type AABB struct {
	L, U types.Vec3
}

// EmptyAABB returns the identity element for Union: unioning it with
// anything returns that thing unchanged.
func EmptyAABB() AABB {
	inf := float32(math.MaxFloat32)
	return AABB{
		L: types.Vec3{inf, inf, inf},
		U: types.Vec3{-inf, -inf, -inf},
	}
}

// Union returns the smallest AABB enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		L: types.MinVec3(a.L, b.L),
		U: types.MaxVec3(a.U, b.U),
	}
}

// UnionPoint returns the smallest AABB enclosing both a and the point p.
func UnionPoint(a AABB, p types.Vec3) AABB {
	return AABB{
		L: types.MinVec3(a.L, p),
		U: types.MaxVec3(a.U, p),
	}
}

// Centroid returns the midpoint of the box.
func (b AABB) Centroid() types.Vec3 {
	return b.L.Add(b.U).Mul(0.5)
}

// Extent returns U-L, the box's side lengths.
func (b AABB) Extent() types.Vec3 {
	return b.U.Sub(b.L)
}

// MaxExtentAxis returns the axis (0=X, 1=Y, 2=Z) along which the box is
// widest, breaking ties toward X then Y.
func (b AABB) MaxExtentAxis() int {
	e := b.Extent()
	axis := 0
	if e[1] > e[axis] {
		axis = 1
	}
	if e[2] > e[axis] {
		axis = 2
	}
	return axis
}

// corner returns the box's min or max corner, indexed 0 (L) or 1 (U).
func (b AABB) corner(i int) types.Vec3 {
	if i == 0 {
		return b.L
	}
	return b.U
}

// Hit is the slab test: it reports whether the ray crosses the box within
// the query interval [t0,t1]. Corners are selected through the ray's
// precomputed sign array so that negative directions never need a branch.
func (b AABB) Hit(r Ray, t0, t1 float32) bool {
	for axis := 0; axis < 3; axis++ {
		near := (b.corner(r.Sign[axis])[axis] - r.Origin[axis]) * r.InvDir[axis]
		far := (b.corner(1-r.Sign[axis])[axis] - r.Origin[axis]) * r.InvDir[axis]

		if near > t0 {
			t0 = near
		}
		if far < t1 {
			t1 = far
		}
		if t0 > t1 {
			return false
		}
	}
	return true
}
