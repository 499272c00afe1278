// Package camera implements the depth-of-field pinhole camera described in
// spec.md section 4.7, grounded on the same lookFrom/lookAt/vfov/aspect/
// aperture/focus-distance construction the corpus's "one weekend"-style
// renderers use (see e.g. the parallel-raytracer reference in the example
// pack), adapted onto this module's float32 Vec3.
package camera

import (
	"math"
	"math/rand"

	"github.com/n-oden/gotracer/geometry"
	"github.com/n-oden/gotracer/sampling"
	"github.com/n-oden/gotracer/types"
)

// Camera is fully determined at construction: generating a primary ray
// only needs a screen coordinate and a random stream.
type Camera struct {
	origin types.Vec3

	u, v, w types.Vec3 // right, up, -front basis vectors

	horizontal types.Vec3
	vertical   types.Vec3
	lowerLeft  types.Vec3

	lensRadius float32
}

// New builds a camera looking from lookFrom toward lookAt, with the given
// vertical field of view (degrees), aspect ratio, aperture diameter and
// focus distance.
func New(lookFrom, lookAt types.Vec3, vfovDegrees, aspect, aperture, focusDist float32) Camera {
	worldUp := types.Vec3{0, 1, 0}

	theta := vfovDegrees * math.Pi / 180
	halfHeight := float32(math.Tan(float64(theta) / 2))
	halfWidth := aspect * halfHeight

	w := lookFrom.Sub(lookAt).Normalize()
	u := worldUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Mul(2 * halfWidth * focusDist)
	vertical := v.Mul(2 * halfHeight * focusDist)
	lowerLeft := lookFrom.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(w.Mul(focusDist))

	return Camera{
		origin:     lookFrom,
		u:          u,
		v:          v,
		w:          w,
		horizontal: horizontal,
		vertical:   vertical,
		lowerLeft:  lowerLeft,
		lensRadius: aperture / 2,
	}
}

// Ray generates a primary ray through screen coordinate (s,t) in [0,1]^2,
// jittering the ray origin across the lens disk to produce depth of field.
// The returned direction is not normalized.
func (c Camera) Ray(s, t float32, rng *rand.Rand) geometry.Ray {
	rd := sampling.InUnitDisk(rng).Mul(c.lensRadius)
	offset := c.u.Mul(rd[0]).Add(c.v.Mul(rd[1]))

	origin := c.origin.Add(offset)
	target := c.lowerLeft.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t))
	return geometry.NewRay(origin, target.Sub(origin))
}
