// Package scene assembles geometry and materials into a renderable world:
// finite primitives (spheres) go through a bvh.Tree for acceleration, while
// infinite primitives (planes) have no finite AABB and are tested by linear
// scan on every query, per spec.md section 9's design note on planes in the
// BVH. The layout mirrors the teacher's scene package in spirit -- a
// container that owns its primitives and materials and exposes a single
// Hit entry point -- but the teacher's OBJ/binary asset pipeline is gone;
// scenes here are built directly in Go.
package scene

import (
	"github.com/n-oden/gotracer/bvh"
	"github.com/n-oden/gotracer/geometry"
	"github.com/n-oden/gotracer/log"
	"github.com/n-oden/gotracer/material"
	"github.com/n-oden/gotracer/types"
)

// Scene owns every primitive and material reachable by a render and the
// BVH built over the finite ones.
type Scene struct {
	Spheres []geometry.Sphere
	Planes  []geometry.Plane

	tree *bvh.Tree
}

// New builds a scene from the given spheres and planes, constructing the
// BVH over the spheres. The returned Scene is immutable; callers should not
// mutate the input slices afterward.
func New(spheres []geometry.Sphere, planes []geometry.Plane, logger log.Logger) *Scene {
	infos := make([]bvh.PrimInfo, len(spheres))
	for i, s := range spheres {
		infos[i] = bvh.NewPrimInfo(s.BBox(), i)
	}

	tree, _ := bvh.Build(infos, logger)

	return &Scene{
		Spheres: spheres,
		Planes:  planes,
		tree:    tree,
	}
}

// Stats returns the build statistics for the scene's BVH, useful for
// diagnostics (the info command reports these via tablewriter).
func (s *Scene) Stats(logger log.Logger) bvh.Stats {
	infos := make([]bvh.PrimInfo, len(s.Spheres))
	for i, sp := range s.Spheres {
		infos[i] = bvh.NewPrimInfo(sp.BBox(), i)
	}
	_, stats := bvh.Build(infos, logger)
	return stats
}

// Hit returns the nearest intersection among every primitive in the scene
// within [tmin,tmax]: spheres via the BVH, planes via linear scan.
func (s *Scene) Hit(r geometry.Ray, tmin, tmax float32) (geometry.HitRecord, bool) {
	primAt := func(index int, r geometry.Ray, tmin, tmax float32) (geometry.HitRecord, bool) {
		return s.Spheres[index].Hit(r, tmin, tmax)
	}

	best, hitAny := s.tree.Hit(r, tmin, tmax, primAt)
	closest := tmax
	if hitAny {
		closest = best.T
	}

	for _, p := range s.Planes {
		if rec, ok := p.Hit(r, tmin, closest); ok {
			best = rec
			closest = rec.T
			hitAny = true
		}
	}

	return best, hitAny
}

// HitCountingNodes behaves like Hit but also reports how many BVH nodes the
// ray visited while resolving the sphere portion of the scene, used by the
// render command's depth debug mode.
func (s *Scene) HitCountingNodes(r geometry.Ray, tmin, tmax float32) (geometry.HitRecord, bool, int) {
	primAt := func(index int, r geometry.Ray, tmin, tmax float32) (geometry.HitRecord, bool) {
		return s.Spheres[index].Hit(r, tmin, tmax)
	}

	best, hitAny, visited := s.tree.HitCountingNodes(r, tmin, tmax, primAt)
	closest := tmax
	if hitAny {
		closest = best.T
	}

	for _, p := range s.Planes {
		if rec, ok := p.Hit(r, tmin, closest); ok {
			best = rec
			closest = rec.T
			hitAny = true
		}
	}

	return best, hitAny, visited
}

// Default builds the project's canonical demo scene: a blue diffuse sphere
// to the left, a glass sphere in the center, a fuzzed-metal sphere to the
// right, resting on a large green diffuse ground sphere. Pairs with
// DefaultCamera, which reproduces the original driver's camera exactly.
func Default(logger log.Logger) *Scene {
	ground := material.NewDiffuse(types.Vec3{0.3, 0.6, 0.2})
	left := material.NewDiffuse(types.Vec3{0.1, 0.2, 0.7})
	center := material.NewDielectric(1.5)
	right := material.NewMetal(types.Vec3{0.7, 0.6, 0.5}, 0.1)

	spheres := []geometry.Sphere{
		geometry.NewSphere(types.Vec3{0, -100.5, -1}, 100, ground),
		geometry.NewSphere(types.Vec3{-1, 0, -1}, 0.5, left),
		geometry.NewSphere(types.Vec3{0, 0, -1}, 0.5, center),
		geometry.NewSphere(types.Vec3{1, 0, -1}, 0.5, right),
	}

	return New(spheres, nil, logger)
}

// DefaultCamera returns the eye position, target, vertical field of view
// and aperture that pair with Default to reproduce the project's canonical
// render.
func DefaultCamera() (lookFrom, lookAt types.Vec3, vfovDegrees, aperture, focusDist float32) {
	return types.Vec3{0, 0, 1}, types.Vec3{0, 0, -1}, 90, 0, 1
}
