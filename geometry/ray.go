package geometry

import "github.com/n-oden/gotracer/types"

// Ray is a parametric line Origin + t*Direction. Direction is not required
// to be unit length. InvDir and Sign are precomputed once at construction so
// that the AABB slab test (see AABB.Hit) never has to branch on the sign of
// Direction.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3
	InvDir    types.Vec3

	// Sign[axis] is 1 if Direction[axis] < 0, else 0. Used to pick the
	// near/far corner of an AABB without a conditional per axis.
	Sign [3]int
}

// NewRay builds a ray and precomputes its inverse direction and sign array.
func NewRay(origin, direction types.Vec3) Ray {
	r := Ray{
		Origin:    origin,
		Direction: direction,
		InvDir:    types.Vec3{1 / direction[0], 1 / direction[1], 1 / direction[2]},
	}
	for axis := 0; axis < 3; axis++ {
		if direction[axis] < 0 {
			r.Sign[axis] = 1
		}
	}
	return r
}

// At returns the point Origin + t*Direction.
func (r Ray) At(t float32) types.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
