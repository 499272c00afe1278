// Package bvh builds and traverses a bounding-volume hierarchy over a
// scene's finite primitives. The builder follows the shape of the
// teacher's asset/compiler/bvh package (an arena-style node slice, a
// builder type carrying a logger and running stats, a leaf callback that
// appends to an ordered-primitive list) but partitions by the simpler
// midpoint-of-widest-axis rule spec.md section 4.5 calls for, rather than
// the teacher's surface-area-heuristic split search.
package bvh

import (
	"time"

	"github.com/n-oden/gotracer/geometry"
	"github.com/n-oden/gotracer/log"
)

// Node is one entry in the BVH's node arena. It is either an interior node
// (NumPrim==0, Left and Right index into the same Nodes slice) or a leaf
// (NumPrim>0, FirstOffset indexes into Tree.OrderedPrims).
type Node struct {
	Box AABB

	Left, Right uint32
	Axis        uint8

	NumPrim     uint32
	FirstOffset uint32
}

// AABB is an alias kept local to the package for readability in Node's
// field list; it is geometry.AABB under the hood.
type AABB = geometry.AABB

// IsLeaf reports whether n is a leaf node.
func (n Node) IsLeaf() bool {
	return n.NumPrim > 0
}

// Tree is a built BVH: a flat node arena plus the ordered-primitive index
// list its leaves slice into. Nodes are never freed individually -- the
// whole Tree is released as a unit when the scene that owns it is dropped.
type Tree struct {
	Nodes        []Node
	OrderedPrims []int
}

// Stats summarizes a completed build, mirroring the counters the teacher's
// bvh builder logs after Build returns.
type Stats struct {
	TotalItems int
	Nodes      int
	Leafs      int
	MaxDepth   int
}

type builder struct {
	logger log.Logger
	nodes  []Node
	prims  []int
	stats  Stats
}

// Build constructs a BVH over infos, which is partitioned in place. It
// returns the tree plus the stats of the completed build.
func Build(infos []PrimInfo, logger log.Logger) (*Tree, Stats) {
	b := &builder{
		logger: logger,
		nodes:  make([]Node, 0, 2*len(infos)),
		prims:  make([]int, 0, len(infos)),
		stats:  Stats{TotalItems: len(infos)},
	}

	start := time.Now()
	if len(infos) > 0 {
		b.partition(infos, 0)
	}
	b.logger.Debugf(
		"bvh build: %d primitives, %d nodes, %d leafs, max depth %d, %d ms",
		b.stats.TotalItems, b.stats.Nodes, b.stats.Leafs, b.stats.MaxDepth,
		time.Since(start).Milliseconds(),
	)

	return &Tree{Nodes: b.nodes, OrderedPrims: b.prims}, b.stats
}

// partition implements spec.md section 4.5 steps 1-7 and returns the index
// of the node it created in b.nodes.
func (b *builder) partition(infos []PrimInfo, depth int) uint32 {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	totalBound := geometry.EmptyAABB()
	for _, info := range infos {
		totalBound = geometry.Union(totalBound, info.Box)
	}

	if len(infos) == 1 {
		return b.emitLeaf(totalBound, infos)
	}

	centroidBound := geometry.EmptyAABB()
	for _, info := range infos {
		centroidBound = geometry.UnionPoint(centroidBound, info.Centroid)
	}

	dim := centroidBound.MaxExtentAxis()

	if centroidBound.L[dim] == centroidBound.U[dim] {
		// All centroids coincide on the widest axis: no split can separate
		// them, so the whole range becomes one leaf.
		return b.emitLeaf(totalBound, infos)
	}

	pmid := 0.5 * (centroidBound.L[dim] + centroidBound.U[dim])
	mid := partitionByMidpoint(infos, dim, pmid)

	nodeIndex := uint32(len(b.nodes))
	b.nodes = append(b.nodes, Node{Box: totalBound})
	b.stats.Nodes++

	left := b.partition(infos[:mid], depth+1)
	right := b.partition(infos[mid:], depth+1)

	b.nodes[nodeIndex].Left = left
	b.nodes[nodeIndex].Right = right
	b.nodes[nodeIndex].Axis = uint8(dim)

	return nodeIndex
}

// partitionByMidpoint stably partitions infos in place so that every
// element with centroid[dim] < pmid precedes every element that doesn't,
// preserving relative order within each side, and returns the split index.
func partitionByMidpoint(infos []PrimInfo, dim int, pmid float32) int {
	left := make([]PrimInfo, 0, len(infos))
	right := make([]PrimInfo, 0, len(infos))
	for _, info := range infos {
		if info.Centroid[dim] < pmid {
			left = append(left, info)
		} else {
			right = append(right, info)
		}
	}
	copy(infos, left)
	copy(infos[len(left):], right)
	return len(left)
}

func (b *builder) emitLeaf(box AABB, infos []PrimInfo) uint32 {
	firstOffset := uint32(len(b.prims))
	for _, info := range infos {
		b.prims = append(b.prims, info.Index)
	}

	nodeIndex := uint32(len(b.nodes))
	b.nodes = append(b.nodes, Node{
		Box:         box,
		NumPrim:     uint32(len(infos)),
		FirstOffset: firstOffset,
	})
	b.stats.Nodes++
	b.stats.Leafs++

	return nodeIndex
}
