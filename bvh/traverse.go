package bvh

import "github.com/n-oden/gotracer/geometry"

// Hit traverses the tree from the root, testing the ray against every
// primitive reachable within [tmin,tmax] and returning the nearest hit.
// primAt resolves an ordered-list entry (an index into the scene's
// primitive slice) to its concrete Hit test, keeping this package free of
// any dependency on the scene package.
func (t *Tree) Hit(r geometry.Ray, tmin, tmax float32, primAt func(index int, r geometry.Ray, tmin, tmax float32) (geometry.HitRecord, bool)) (geometry.HitRecord, bool) {
	rec, hit, _ := t.HitCountingNodes(r, tmin, tmax, primAt)
	return rec, hit
}

// HitCountingNodes behaves like Hit but additionally reports how many BVH
// nodes the ray visited, used by the render command's depth debug mode to
// visualize how much of the tree a given ray touches.
func (t *Tree) HitCountingNodes(r geometry.Ray, tmin, tmax float32, primAt func(index int, r geometry.Ray, tmin, tmax float32) (geometry.HitRecord, bool)) (geometry.HitRecord, bool, int) {
	if len(t.Nodes) == 0 {
		return geometry.HitRecord{}, false, 0
	}
	visited := 0
	rec, hit := t.hitNode(0, r, tmin, tmax, primAt, &visited)
	return rec, hit, visited
}

func (t *Tree) hitNode(nodeIndex uint32, r geometry.Ray, tmin, tmax float32, primAt func(int, geometry.Ray, float32, float32) (geometry.HitRecord, bool), visited *int) (geometry.HitRecord, bool) {
	node := &t.Nodes[nodeIndex]
	*visited++
	if !node.Box.Hit(r, tmin, tmax) {
		return geometry.HitRecord{}, false
	}

	if node.IsLeaf() {
		return t.hitLeaf(node, r, tmin, tmax, primAt)
	}

	// Visit the near child first (per the ray's sign on the split axis) and
	// shrink tmax to the closest hit seen so far before testing the far
	// child; this can only prune work, never change which hit is returned.
	first, second := node.Left, node.Right
	if r.Sign[node.Axis] == 1 {
		first, second = second, first
	}

	closest := tmax
	lRec, lHit := t.hitNode(first, r, tmin, closest, primAt, visited)
	if lHit {
		closest = lRec.T
	}
	rRec, rHit := t.hitNode(second, r, tmin, closest, primAt, visited)

	switch {
	case rHit:
		return rRec, true
	case lHit:
		return lRec, true
	default:
		return geometry.HitRecord{}, false
	}
}

// hitLeaf scans every primitive in the leaf's slice and keeps the closest
// hit. (A known earlier bug in this renderer family returns on the first
// tested primitive in a multi-primitive leaf, which can miss a nearer hit
// behind it; this implementation scans the whole slice instead.)
func (t *Tree) hitLeaf(node *Node, r geometry.Ray, tmin, tmax float32, primAt func(int, geometry.Ray, float32, float32) (geometry.HitRecord, bool)) (geometry.HitRecord, bool) {
	var best geometry.HitRecord
	hitAny := false
	closest := tmax

	for i := uint32(0); i < node.NumPrim; i++ {
		index := t.OrderedPrims[node.FirstOffset+i]
		if rec, ok := primAt(index, r, tmin, closest); ok {
			best = rec
			closest = rec.T
			hitAny = true
		}
	}

	return best, hitAny
}
