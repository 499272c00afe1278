// Package sampling implements the rejection samplers the integrator and
// material scatter functions draw from: uniform points inside the unit
// sphere (diffuse/metal/fuzz scatter) and inside the unit disk (camera
// aperture sampling).
package sampling

import (
	"math/rand"

	"github.com/n-oden/gotracer/types"
)

// InUnitSphere rejection-samples a uniformly distributed point inside the
// unit sphere: draw y = 2*(r1,r2,r3)-1 with each r in [0,1), retry while
// y.y >= 1.
func InUnitSphere(rng *rand.Rand) types.Vec3 {
	for {
		y := types.Vec3{
			2*rng.Float32() - 1,
			2*rng.Float32() - 1,
			2*rng.Float32() - 1,
		}
		if y.Dot(y) < 1 {
			return y
		}
	}
}

// InUnitDisk rejection-samples a uniformly distributed point inside the
// unit disk in the XY plane: draw y = 2*(r1,r2,0)-(1,1,0) with each r in
// [0,1), retry while y.y >= 1. The rejection test is applied to the
// remapped point y, not the pre-mapped draw in [0,1)^2 -- using the latter
// rejects the wrong region and biases the aperture sample.
func InUnitDisk(rng *rand.Rand) types.Vec3 {
	for {
		y := types.Vec3{
			2*rng.Float32() - 1,
			2*rng.Float32() - 1,
			0,
		}
		if y.Dot(y) < 1 {
			return y
		}
	}
}
