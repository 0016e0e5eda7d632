package geometry

import (
	"sort"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy. Children are
// either further nodes or the objects themselves.
type BVHNode struct {
	Left, Right Hittable
	bbox        core.AABB
}

// NewBVHNode constructs a BVH over objects. The caller's slice is copied
// before it is reordered. An empty input yields a node that is never hit.
func NewBVHNode(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, 0, len(objectsCopy))
}

// NewBVHFromList builds a BVH over the objects of a list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVHNode(list.Objects)
}

// buildBVH recursively splits objects[start:end] at the median of the box
// minima along the longest axis of their union
func buildBVH(objects []Hittable, start, end int) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects[start:end] {
		bbox = core.NewAABBUnion(bbox, object.BoundingBox())
	}

	switch count := end - start; count {
	case 1:
		return &BVHNode{Left: objects[start], Right: objects[start], bbox: bbox}
	case 2:
		return &BVHNode{Left: objects[start], Right: objects[start+1], bbox: bbox}
	default:
		sortByAxis(objects[start:end], bbox.LongestAxis())
		mid := start + count/2
		return &BVHNode{
			Left:  buildBVH(objects, start, mid),
			Right: buildBVH(objects, mid, end),
			bbox:  bbox,
		}
	}
}

// sortByAxis sorts objects by the minimum of their bounding box along axis
func sortByAxis(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
	})
}

// Hit tests the box, then both children. The right child only has to beat
// the left child's hit.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return false
	}

	hitLeft := n.Left.Hit(ray, rayT, rec)

	rightT := rayT
	if hitLeft {
		rightT.Max = rec.T
	}
	hitRight := n.Right.Hit(ray, rightT, rec)

	return hitLeft || hitRight
}

// BoundingBox returns the overall bounding box of the node
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int
	LeafObjects int
	MaxDepth    int
	AvgDepth    float64 // Mean depth of the leaf objects
}

// Stats walks the tree and returns its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	if n.Left == nil {
		return stats
	}

	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafObjects > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafObjects)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left, n.Right}
	if n.Left == n.Right {
		children = children[:1]
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
			continue
		}
		stats.LeafObjects++
		stats.AvgDepth += float64(depth + 1) // Accumulate depth for average calculation
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
