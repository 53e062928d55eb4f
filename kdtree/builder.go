package kdtree

import (
	"time"

	"github.com/steinbergerbernd/KD-Tree/log"
	"github.com/steinbergerbernd/KD-Tree/types"
)

type builder struct {
	logger log.Logger
	opts   Options

	triangles []types.Triangle
	centroids []types.Vec3

	// The count whose parity selects single or averaged medians.
	parityCount int

	// Tree nodes stored as a contiguous list.
	nodes []Node

	// Leaf keys stored as a contiguous list; leafs reference ranges of it.
	keys []TriangleID

	stats Stats
}

// Construct a KD-tree over a set of triangles and their cached centroids.
//
// The builder recursively splits the keys at the median centroid coordinate
// of the axis with the largest extent. Triangles that straddle a split plane
// are duplicated into both subtrees. A side becomes a leaf once it holds
// opts.LeafSize primary keys or less.
func buildTree(triangles []types.Triangle, centroids []types.Vec3, opts Options) *Tree {
	b := &builder{
		logger:      log.New("kdtree builder"),
		opts:        opts,
		triangles:   triangles,
		centroids:   centroids,
		parityCount: len(triangles),
		nodes:       make([]Node, 0),
		keys:        make([]TriangleID, 0, len(triangles)),
		stats: Stats{
			Triangles: len(triangles),
		},
	}

	keys := make([]TriangleID, len(triangles))
	for i := range keys {
		keys[i] = TriangleID(i)
	}

	start := time.Now()
	switch {
	case len(keys) == 0:
	case len(keys) <= opts.LeafSize:
		b.createLeaf(keys, nil, 0)
	default:
		b.partition(keys, nil, 0)
	}

	b.stats.BuildTime = time.Since(start)
	b.stats.summarize(b.keys)
	b.logger.Debugf(
		"KD tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d, leaf keys: %d",
		b.stats.BuildTime.Nanoseconds()/1e6,
		b.stats.MaxDepth, b.stats.Nodes, b.stats.Leaves, b.stats.LeafKeys,
	)

	return &Tree{
		nodes:       b.nodes,
		keys:        b.keys,
		triangles:   triangles,
		strictRange: opts.StrictRange,
		stats:       b.stats,
	}
}

// Split keys into two subtrees and return the new node index. Keys in
// overlap belong to other subtrees but straddle this node's region.
func (b *builder) partition(keys, overlap []TriangleID, depth int) int32 {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	points := make([]types.Vec3, len(keys))
	for i, key := range keys {
		points[i] = b.centroids[key]
	}

	extremes, _ := ComputeExtremePoints(points)
	if b.opts.OnSplitBox != nil {
		b.opts.OnSplitBox(extremes.Min(), extremes.Max())
	}

	axis := extremes.SplitAxis()
	values := make([]float32, len(points))
	for i, p := range points {
		values[i] = p[axis]
	}

	parity := b.parityCount
	if b.opts.LocalParity {
		parity = len(keys)
	}
	median := Median(values, parity, b.opts.Pivot)

	var leftKeys, rightKeys, overlapLeft, overlapRight []TriangleID
	for i, key := range keys {
		if points[i][axis] < median {
			leftKeys = append(leftKeys, key)
			if b.reachesAbove(key, axis, median) {
				overlapRight = append(overlapRight, key)
			}
		} else {
			rightKeys = append(rightKeys, key)
			if b.reachesBelow(key, axis, median) {
				overlapLeft = append(overlapLeft, key)
			}
		}
	}

	// Keys inherited from the parent may straddle this plane too
	for _, key := range overlap {
		if b.reachesBelow(key, axis, median) {
			overlapLeft = append(overlapLeft, key)
		}
		if b.reachesAbove(key, axis, median) {
			overlapRight = append(overlapRight, key)
		}
	}

	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, Node{Axis: axis, Split: median, Left: nilNode, Right: nilNode})
	b.stats.Nodes++

	leftNodeIndex := b.child(leftKeys, overlapLeft, len(keys), depth+1)
	rightNodeIndex := b.child(rightKeys, overlapRight, len(keys), depth+1)
	b.nodes[nodeIndex].SetChildNodes(leftNodeIndex, rightNodeIndex)

	return int32(nodeIndex)
}

// Create the subtree for one side of a split.
func (b *builder) child(keys, overlap []TriangleID, parentCount, depth int) int32 {
	if len(keys) == 0 && len(overlap) == 0 {
		return nilNode
	}

	if len(keys) <= b.opts.LeafSize {
		return b.createLeaf(keys, overlap, depth)
	}

	// A split that moves no key to the other side would recurse forever.
	if len(keys) == parentCount || depth >= b.opts.MaxDepth {
		b.stats.ForcedLeaves++
		b.logger.Infof("forcing leaf with %d keys at depth %d", len(keys), depth)
		return b.createLeaf(keys, overlap, depth)
	}

	return b.partition(keys, overlap, depth)
}

// Append a leaf holding the union of overlap and keys (each key once) and
// return its node index.
func (b *builder) createLeaf(keys, overlap []TriangleID, depth int) int32 {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	first := len(b.keys)
	seen := make(map[TriangleID]struct{}, len(keys)+len(overlap))
	for _, list := range [][]TriangleID{overlap, keys} {
		for _, key := range list {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			b.keys = append(b.keys, key)
		}
	}

	var node Node
	node.SetKeys(uint32(first), uint32(len(b.keys)-first))

	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, node)

	b.stats.Leaves++
	b.stats.LeafKeys += len(b.keys) - first
	b.stats.leafSizes = append(b.stats.leafSizes, float64(len(b.keys)-first))

	return int32(nodeIndex)
}

// Returns true if any vertex of the triangle lies at or above value on axis.
func (b *builder) reachesAbove(key TriangleID, axis Axis, value float32) bool {
	t := &b.triangles[key]
	return t.Point1[axis] >= value || t.Point2[axis] >= value || t.Point3[axis] >= value
}

// Returns true if any vertex of the triangle lies at or below value on axis.
func (b *builder) reachesBelow(key TriangleID, axis Axis, value float32) bool {
	t := &b.triangles[key]
	return t.Point1[axis] <= value || t.Point2[axis] <= value || t.Point3[axis] <= value
}
