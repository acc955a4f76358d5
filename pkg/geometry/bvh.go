package geometry

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrNoBoundingBox is returned when an object cannot be spatially indexed
	ErrNoBoundingBox = errors.New("object has no bounding box")
	// ErrEmptyBVH is returned when building a hierarchy over no objects
	ErrEmptyBVH = errors.New("cannot build BVH over zero objects")
)

// parallelBuildThreshold is the subtree size below which both halves are built on the current goroutine
const parallelBuildThreshold = 256

// BVHNode is a node in the Bounding Volume Hierarchy.
// Children are either further nodes or scene objects; a single-object node has Left == Right.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// bvhItem pairs an object with the box used to order it
type bvhItem struct {
	object Hittable
	key    core.AABB
}

// NewBVHNode builds a hierarchy over objects and panics if it cannot be built.
// An object without a bounding box makes the whole scene unrenderable.
func NewBVHNode(objects []Hittable, time0, time1 float64) *BVHNode {
	node, err := BuildBVH(objects, time0, time1)
	if err != nil {
		panic(fmt.Sprintf("bvh: %v", err))
	}
	return node
}

// BuildBVH constructs a BVH over objects, with node boxes covering the shutter interval [time0, time1].
// Objects are ordered by the minimum corner of their boxes (x, then y, then z) and split at the
// median, so the same input always produces the same tree. The input slice is not modified.
func BuildBVH(objects []Hittable, time0, time1 float64) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	items := make([]bvhItem, len(objects))
	for i, object := range objects {
		key, ok := object.BoundingBox(0, 0)
		if !ok {
			return nil, fmt.Errorf("%w: object %d (%T)", ErrNoBoundingBox, i, object)
		}
		items[i] = bvhItem{object: object, key: key}
	}

	// Every sub-slice of a sorted slice is sorted, so one sort serves all levels
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key.Compare(items[j].key) < 0
	})

	return buildNode(items, time0, time1)
}

// buildNode recursively builds the subtree over sorted items
func buildNode(items []bvhItem, time0, time1 float64) (*BVHNode, error) {
	node := &BVHNode{}

	switch len(items) {
	case 1:
		node.Left = items[0].object
		node.Right = items[0].object
	case 2:
		node.Left = items[0].object
		node.Right = items[1].object
	default:
		mid := len(items) / 2
		left, right, err := buildChildren(items[:mid], items[mid:], time0, time1)
		if err != nil {
			return nil, err
		}
		node.Left = left
		node.Right = right
	}

	boxLeft, ok := node.Left.BoundingBox(time0, time1)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoBoundingBox, node.Left)
	}
	boxRight, ok := node.Right.BoundingBox(time0, time1)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoBoundingBox, node.Right)
	}
	node.Box = core.SurroundingBox(boxLeft, boxRight)

	return node, nil
}

// buildChildren builds two disjoint halves, forking when the subtree is large enough to pay for it
func buildChildren(leftItems, rightItems []bvhItem, time0, time1 float64) (*BVHNode, *BVHNode, error) {
	if len(leftItems)+len(rightItems) < parallelBuildThreshold {
		left, err := buildNode(leftItems, time0, time1)
		if err != nil {
			return nil, nil, err
		}
		right, err := buildNode(rightItems, time0, time1)
		if err != nil {
			return nil, nil, err
		}
		return left, right, nil
	}

	var left, right *BVHNode
	var g errgroup.Group
	g.Go(func() error {
		var err error
		left, err = buildNode(leftItems, time0, time1)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = buildNode(rightItems, time0, time1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// Hit tests the ray against the node's box, then each distinct child once.
// The right child is searched only up to the left child's hit distance.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)

	// A second probe of the same object would resample a stochastic hit
	if n.Right == n.Left {
		return leftHit, hitLeft
	}

	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, tMin, rightMax, sampler)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the box computed at build time
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int
	LeafObjects  int
	MaxDepth     int
	AvgLeafDepth float64
}

// Stats walks the tree and reports its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafObjects > 0 {
		stats.AvgLeafDepth /= float64(stats.LeafObjects)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
			continue
		}
		stats.LeafObjects++
		stats.AvgLeafDepth += float64(depth + 1)
	}
}
