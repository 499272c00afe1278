package geometry

import (
	"math"

	"github.com/n-oden/gotracer/material"
	"github.com/n-oden/gotracer/types"
)

// Sphere is a finite, centered sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float32
	Mat    *material.Material
}

// NewSphere builds a sphere. radius must be > 0.
func NewSphere(center types.Vec3, radius float32, mat *material.Material) Sphere {
	return Sphere{Center: center, Radius: radius, Mat: mat}
}

// BBox returns the sphere's axis-aligned bounding box.
func (s Sphere) BBox() AABB {
	r := types.Vec3{s.Radius, s.Radius, s.Radius}
	return AABB{L: s.Center.Sub(r), U: s.Center.Add(r)}
}

// Hit solves ||O+tD-C||^2 = r^2 for the smallest t in (tmin,tmax), per
// spec.md section 4.2. It tries the near root first and falls back to the
// far root if the near one lies outside the query interval.
func (s Sphere) Hit(r Ray, tmin, tmax float32) (HitRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc <= 0 {
		return HitRecord{}, false
	}

	sqrtDisc := float32(math.Sqrt(float64(disc)))
	t := (-b - sqrtDisc) / (2 * a)
	if t <= tmin || t >= tmax {
		t = (-b + sqrtDisc) / (2 * a)
		if t <= tmin || t >= tmax {
			return HitRecord{}, false
		}
	}

	p := r.At(t)
	normal := p.Sub(s.Center).Mul(1 / s.Radius).Normalize()
	return HitRecord{T: t, P: p, Normal: normal, Mat: s.Mat}, true
}
