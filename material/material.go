// Package material implements the three scattering laws a primitive's
// surface can follow: pure diffuse (Lambertian), metallic (specular with
// fuzz), and dielectric (refractive, with Fresnel-weighted reflection).
package material

import (
	"math"
	"math/rand"

	"github.com/n-oden/gotracer/sampling"
	"github.com/n-oden/gotracer/types"
)

// Kind tags which scattering law a Material follows.
type Kind uint8

const (
	Diffuse Kind = iota
	Metal
	Dielectric
)

// Material is a tagged union over the three supported scattering laws.
// Only the fields relevant to Kind are meaningful: Fuzz for Metal, RI for
// Dielectric. Materials are immutable and referenced, never owned, by the
// primitives that carry them.
type Material struct {
	Kind   Kind
	Albedo types.Vec3

	// Fuzz spreads a metallic reflection; meaningful for Kind==Metal, in [0,1].
	Fuzz float32

	// RI is the refractive index relative to air; meaningful for
	// Kind==Dielectric, typically 1.3-2.5.
	RI float32
}

// NewDiffuse returns a pure Lambertian material with the given albedo.
func NewDiffuse(albedo types.Vec3) *Material {
	return &Material{Kind: Diffuse, Albedo: albedo}
}

// NewMetal returns a metallic material. fuzz is clamped to [0,1].
func NewMetal(albedo types.Vec3, fuzz float32) *Material {
	if fuzz > 1 {
		fuzz = 1
	} else if fuzz < 0 {
		fuzz = 0
	}
	return &Material{Kind: Metal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric returns a transparent material with refractive index ri.
func NewDielectric(ri float32) *Material {
	return &Material{Kind: Dielectric, Albedo: types.Vec3{1, 1, 1}, RI: ri}
}

// HitRecord is the subset of geometry.HitRecord that Scatter needs: the hit
// point and the geometric normal at that point. Declared locally (instead
// of importing package geometry) so that geometry can in turn reference
// *Material without an import cycle.
type HitRecord struct {
	P      types.Vec3
	Normal types.Vec3
}

// Scatter computes the outgoing ray and attenuation produced by an incoming
// ray direction hitting rec, dispatching on m.Kind. ok is false when the
// bounce should contribute nothing (e.g. a metallic ray reflecting into the
// surface).
func (m *Material) Scatter(inDir types.Vec3, rec HitRecord, rng *rand.Rand) (outDir types.Vec3, attenuation types.Vec3, ok bool) {
	switch m.Kind {
	case Diffuse:
		return m.scatterDiffuse(rec, rng)
	case Metal:
		return m.scatterMetal(inDir, rec, rng)
	case Dielectric:
		return m.scatterDielectric(inDir, rec, rng)
	default:
		return types.Vec3{}, types.Vec3{}, false
	}
}

func (m *Material) scatterDiffuse(rec HitRecord, rng *rand.Rand) (types.Vec3, types.Vec3, bool) {
	dir := rec.Normal.Add(sampling.InUnitSphere(rng))
	if dir.NearZero() {
		dir = rec.Normal
	}
	return dir, m.Albedo, true
}

func (m *Material) scatterMetal(inDir types.Vec3, rec HitRecord, rng *rand.Rand) (types.Vec3, types.Vec3, bool) {
	reflected := inDir.Normalize().Reflect(rec.Normal)
	dir := reflected.Add(sampling.InUnitSphere(rng).Mul(m.Fuzz))
	return dir, m.Albedo, dir.Dot(rec.Normal) > 0
}

func (m *Material) scatterDielectric(inDir types.Vec3, rec HitRecord, rng *rand.Rand) (types.Vec3, types.Vec3, bool) {
	v := inDir.Normalize()
	cos := v.Dot(rec.Normal)

	var ri float32
	var outwardNormal types.Vec3
	var cosWeight float32
	if cos > 0 {
		// Exiting the material.
		ri = m.RI
		outwardNormal = rec.Normal.Mul(-1)
		cosWeight = cos * ri
	} else {
		// Entering the material.
		ri = 1.0 / m.RI
		outwardNormal = rec.Normal
		cosWeight = -cos
	}

	reflectProb := float32(1.0)
	refracted, refracts := v.Refract(outwardNormal, ri)
	if refracts {
		reflectProb = schlick(cosWeight, m.RI)
	}

	if rng.Float32() < reflectProb {
		return v.Reflect(rec.Normal), m.Albedo, true
	}
	return refracted, m.Albedo, true
}

// schlick is the Schlick approximation to the Fresnel reflectance of a
// dielectric boundary with refractive index ri, evaluated at the cosine of
// the incidence angle.
func schlick(cosine, ri float32) float32 {
	r0 := (1 - ri) / (1 + ri)
	r0 = r0 * r0
	return r0 + (1-r0)*float32(math.Pow(float64(1-cosine), 5))
}
