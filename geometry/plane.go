package geometry

import (
	"github.com/n-oden/gotracer/material"
	"github.com/n-oden/gotracer/types"
)

// parallelTolerance is the fixed epsilon below which a ray is treated as
// parallel to a plane (spec.md section 4.3).
const parallelTolerance float32 = 1e-6

// Plane is an infinite plane through Point with unit Normal. Planes have no
// finite bounding box and are therefore never placed in the BVH (see
// bvh.Tree); the scene tests them with a linear scan alongside the tree
// traversal.
type Plane struct {
	Point  types.Vec3
	Normal types.Vec3
	Mat    *material.Material
}

// NewPlane builds a plane. normal is normalized by the caller's convention;
// NewPlane normalizes defensively so a non-unit input can't silently skew
// later dot products.
func NewPlane(point, normal types.Vec3, mat *material.Material) Plane {
	return Plane{Point: point, Normal: normal.Normalize(), Mat: mat}
}

// Hit intersects the ray against the plane, per spec.md section 4.3. The
// returned normal is the plane's stored normal, not flipped against the
// ray direction.
func (p Plane) Hit(r Ray, tmin, tmax float32) (HitRecord, bool) {
	d := r.Direction.Dot(p.Normal)
	if d > -parallelTolerance && d < parallelTolerance {
		return HitRecord{}, false
	}

	t := p.Point.Sub(r.Origin).Dot(p.Normal) / d
	if t <= tmin || t >= tmax {
		return HitRecord{}, false
	}

	return HitRecord{T: t, P: r.At(t), Normal: p.Normal, Mat: p.Mat}, true
}
