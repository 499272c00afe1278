// Package types provides the small vector-math vocabulary shared by the
// geometry, material, camera and bvh packages. Vec3 doubles as a position,
// direction and linear color depending on context.
package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec3 is a 3 component, 32-bit float vector.
type Vec3 f32.Vec3

const floatCmpEpsilon float32 = 1e-8

// XYZ builds a Vec3 from its components.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v+v2.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Sub returns v-v2.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// MulVec returns the componentwise (Hadamard) product of v and v2, used to
// apply per-bounce material attenuation to accumulated radiance.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// LenSq returns the squared Euclidean length of v.
func (v Vec3) LenSq() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize returns a unit-length copy of v. Vectors shorter than
// floatCmpEpsilon normalize to the zero vector rather than dividing by
// (near) zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	inv := 1.0 / l
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// NearZero reports whether every component of v is close enough to zero
// that treating v as the zero vector would not be visible in the image.
func (v Vec3) NearZero() bool {
	const e = 1e-8
	return math.Abs(float64(v[0])) < e && math.Abs(float64(v[1])) < e && math.Abs(float64(v[2])) < e
}

// Dot returns the dot product of v and v2.
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Cross returns the cross product of v and v2.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Reflect mirrors v around the unit normal n: reflect(v,n) = v - 2(v.n)n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends the unit vector v (the incident ray direction) across the
// outward normal n using refractive index ratio ri, following Snell's law:
// alpha = n.v, k = 1 - ri^2(1-alpha^2); the refracted direction is
// ri*(v-alpha*n) - sqrt(k)*n. ok is false on total internal reflection.
func (v Vec3) Refract(n Vec3, ri float32) (refracted Vec3, ok bool) {
	alpha := n.Dot(v)
	k := 1.0 - ri*ri*(1.0-alpha*alpha)
	if k < 0 {
		return Vec3{}, false
	}
	return v.Sub(n.Mul(alpha)).Mul(ri).Sub(n.Mul(float32(math.Sqrt(float64(k))))), true
}

// MinVec3 returns the componentwise minimum of v1 and v2.
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// MaxVec3 returns the componentwise maximum of v1 and v2.
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}
