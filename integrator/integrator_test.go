package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/n-oden/gotracer/camera"
	"github.com/n-oden/gotracer/geometry"
	"github.com/n-oden/gotracer/log"
	"github.com/n-oden/gotracer/material"
	"github.com/n-oden/gotracer/scene"
	"github.com/n-oden/gotracer/types"
)

func TestEmptySceneReturnsSkyGradient(t *testing.T) {
	s := scene.New(nil, nil, log.New("integrator_test"))

	dir := types.Vec3{0, 1, 0}
	r := geometry.NewRay(types.Vec3{0, 0, 0}, dir)
	rng := rand.New(rand.NewSource(1))

	got := RayColor(r, s, 0, rng)

	unit := dir.Normalize()
	wantT := 0.5 * (unit[1] + 1)
	want := types.Vec3{1, 1, 1}.Mul(1 - wantT).Add(types.Vec3{0.5, 0.7, 1.0}.Mul(wantT))

	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Fatalf("channel %d: got %f want %f", i, got[i], want[i])
		}
	}
}

func TestDiffuseSphereProducesFiniteBoundedColor(t *testing.T) {
	red := material.NewDiffuse(types.Vec3{0.8, 0.1, 0.1})
	spheres := []geometry.Sphere{geometry.NewSphere(types.Vec3{0, 0, -1}, 0.5, red)}
	s := scene.New(spheres, nil, log.New("integrator_test"))

	r := geometry.NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1})
	rng := rand.New(rand.NewSource(2))

	c := RayColor(r, s, 0, rng)
	for i := 0; i < 3; i++ {
		if math.IsNaN(float64(c[i])) || math.IsInf(float64(c[i]), 0) {
			t.Fatalf("channel %d is not finite: %f", i, c[i])
		}
		if c[i] < 0 {
			t.Fatalf("channel %d is negative: %f", i, c[i])
		}
	}
}

func TestDielectricSphereIsNotBlack(t *testing.T) {
	glass := material.NewDielectric(1.5)
	spheres := []geometry.Sphere{geometry.NewSphere(types.Vec3{0, 0, 0}, 0.5, glass)}
	s := scene.New(spheres, nil, log.New("integrator_test"))

	r := geometry.NewRay(types.Vec3{0, 0, 2}, types.Vec3{0, 0, -1})
	rng := rand.New(rand.NewSource(3))

	c := RayColor(r, s, 0, rng)
	if c[0] == 0 && c[1] == 0 && c[2] == 0 {
		t.Fatalf("expected a non-black color from a refracting dielectric sphere")
	}
}

func TestOffSilhouetteMatchesEmptyScene(t *testing.T) {
	red := material.NewDiffuse(types.Vec3{0.8, 0.1, 0.1})
	spheres := []geometry.Sphere{geometry.NewSphere(types.Vec3{0, 0, -1}, 0.5, red)}
	s := scene.New(spheres, nil, log.New("integrator_test"))
	empty := scene.New(nil, nil, log.New("integrator_test"))

	dir := types.Vec3{0, 1, 0}
	r := geometry.NewRay(types.Vec3{0, 0, 0}, dir)
	rng1 := rand.New(rand.NewSource(4))
	rng2 := rand.New(rand.NewSource(4))

	gotWithSphere := RayColor(r, s, 0, rng1)
	gotEmpty := RayColor(r, empty, 0, rng2)

	for i := 0; i < 3; i++ {
		if math.Abs(float64(gotWithSphere[i]-gotEmpty[i])) > 1e-5 {
			t.Fatalf("channel %d: expected off-silhouette ray to ignore the sphere; got %f vs %f", i, gotWithSphere[i], gotEmpty[i])
		}
	}
}

func TestPixelAveragesAndGammaCorrects(t *testing.T) {
	s := scene.New(nil, nil, log.New("integrator_test"))
	cam := camera.New(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1}, 90, 400.0/300.0, 0, 1)
	rng := rand.New(rand.NewSource(5))

	c := Pixel(200, 0, 400, 300, 8, cam, s, rng)
	for i := 0; i < 3; i++ {
		if c[i] < 0 || c[i] > 1.01 {
			t.Fatalf("channel %d out of expected [0,1] range: %f", i, c[i])
		}
	}
}

func TestDebugNormalsRemapsToUnitRange(t *testing.T) {
	diffuse := material.NewDiffuse(types.Vec3{0.5, 0.5, 0.5})
	spheres := []geometry.Sphere{geometry.NewSphere(types.Vec3{0, 0, -1}, 0.5, diffuse)}
	s := scene.New(spheres, nil, log.New("integrator_test"))

	r := geometry.NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1})
	c := DebugNormals(r, s)
	for i := 0; i < 3; i++ {
		if c[i] < 0 || c[i] > 1 {
			t.Fatalf("channel %d out of [0,1]: %f", i, c[i])
		}
	}
}

func TestDebugDepthIsZeroOnEmptyScene(t *testing.T) {
	s := scene.New(nil, nil, log.New("integrator_test"))
	r := geometry.NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 1, 0})
	c := DebugDepth(r, s, 10)
	if c[0] != 0 || c[1] != 0 || c[2] != 0 {
		t.Fatalf("expected a miss against an empty tree to report zero nodes visited; got %v", c)
	}
}

func TestToRGB8Saturates(t *testing.T) {
	cases := []struct {
		in   types.Vec3
		want [3]uint8
	}{
		{types.Vec3{0, 0, 0}, [3]uint8{0, 0, 0}},
		{types.Vec3{1, 1, 1}, [3]uint8{255, 255, 255}},
		{types.Vec3{-1, 2, 0.5}, [3]uint8{0, 255, toByte(0.5)}},
	}
	for _, c := range cases {
		got := ToRGB8(c.in)
		if got != c.want {
			t.Fatalf("ToRGB8(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
