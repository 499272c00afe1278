// Package integrator implements the recursive radiance estimator described
// in spec.md section 4.9: a bounded-depth, Monte-Carlo path tracer that
// composes BVH traversal with material scattering, and the per-pixel
// sample-averaging loop that drives it. It is the one package that ties
// scene, camera and material together into a pixel value.
package integrator

import (
	"math"
	"math/rand"

	"github.com/n-oden/gotracer/camera"
	"github.com/n-oden/gotracer/geometry"
	"github.com/n-oden/gotracer/material"
	"github.com/n-oden/gotracer/scene"
	"github.com/n-oden/gotracer/types"
)

// MaxDepth caps the recursive bounce count; a ray still in flight at this
// depth contributes no further radiance.
const MaxDepth = 50

// TMin suppresses self-intersection immediately in front of a hit point.
const TMin = 0.0001

var (
	white = types.Vec3{1, 1, 1}
	sky   = types.Vec3{0.5, 0.7, 1.0}
)

// RayColor evaluates the radiance arriving along r by recursively bouncing
// it through s, starting at the given depth. A miss returns the sky
// gradient; a scatter that is rejected (e.g. a metallic ray reflecting into
// its own surface) contributes black, as does exceeding MaxDepth.
func RayColor(r geometry.Ray, s *scene.Scene, depth int, rng *rand.Rand) types.Vec3 {
	if depth >= MaxDepth {
		return types.Vec3{}
	}

	rec, ok := s.Hit(r, TMin, math.MaxFloat32)
	if !ok {
		unit := r.Direction.Normalize()
		t := 0.5 * (unit[1] + 1)
		return white.Mul(1 - t).Add(sky.Mul(t))
	}

	outDir, attenuation, accepted := rec.Mat.Scatter(r.Direction, material.HitRecord{P: rec.P, Normal: rec.Normal}, rng)
	if !accepted {
		return types.Vec3{}
	}

	bounced := RayColor(geometry.NewRay(rec.P, outDir), s, depth+1, rng)
	return attenuation.MulVec(bounced)
}

// Pixel renders the (x,y) pixel of a width x height image by averaging
// samples primary rays through cam, applying the gamma-2 correction
// (per-channel sqrt) spec.md section 4.9 calls for. The returned Vec3's
// channels lie in [0,1].
func Pixel(x, y, width, height, samples int, cam camera.Camera, s *scene.Scene, rng *rand.Rand) types.Vec3 {
	accum := types.Vec3{}
	for i := 0; i < samples; i++ {
		u := (float32(x) + rng.Float32()) / float32(width)
		v := (float32(y) + rng.Float32()) / float32(height)
		r := cam.Ray(u, v, rng)
		accum = accum.Add(RayColor(r, s, 0, rng))
	}

	accum = accum.Mul(1 / float32(samples))
	return types.Vec3{
		float32(math.Sqrt(float64(accum[0]))),
		float32(math.Sqrt(float64(accum[1]))),
		float32(math.Sqrt(float64(accum[2]))),
	}
}

// DebugNormals renders a single primary ray as the hit surface normal
// remapped from [-1,1] to [0,1], with no sampling or scattering -- a quick
// sanity check that geometry and normals line up, grounded on the
// teacher's debug-primary-intersection-normals tooling.
func DebugNormals(r geometry.Ray, s *scene.Scene) types.Vec3 {
	rec, ok := s.Hit(r, TMin, math.MaxFloat32)
	if !ok {
		return types.Vec3{}
	}
	n := rec.Normal
	return types.Vec3{(n[0] + 1) * 0.5, (n[1] + 1) * 0.5, (n[2] + 1) * 0.5}
}

// DebugDepth renders a single primary ray as a grayscale value proportional
// to how many BVH nodes it visited (capped at maxNodes), visualizing how
// much of the tree a given ray touches -- grounded on the teacher's
// debug-primary-intersection-depth tooling.
func DebugDepth(r geometry.Ray, s *scene.Scene, maxNodes int) types.Vec3 {
	_, _, visited := s.HitCountingNodes(r, TMin, math.MaxFloat32)
	t := float32(visited) / float32(maxNodes)
	if t > 1 {
		t = 1
	}
	return types.Vec3{t, t, t}
}

// ToRGB8 converts a gamma-corrected linear color in (roughly) [0,1] to a
// saturating 8-bit-per-channel triple, replacing the modulo-256 truncation
// spec.md section 9 flags as a bug in the original renderer.
func ToRGB8(c types.Vec3) [3]uint8 {
	return [3]uint8{toByte(c[0]), toByte(c[1]), toByte(c[2])}
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	scaled := v * 255.999
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
