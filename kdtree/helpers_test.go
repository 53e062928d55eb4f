package kdtree

import (
	"math/rand"

	"github.com/steinbergerbernd/KD-Tree/types"
)

// Generate n small triangles scattered inside [0, 100)^3.
func randomTriangles(rng *rand.Rand, n int) []types.Triangle {
	out := make([]types.Triangle, n)
	for i := range out {
		base := types.XYZ(rng.Float32()*100, rng.Float32()*100, rng.Float32()*100)
		out[i] = types.Tri(
			base,
			base.Add(types.XYZ(1+rng.Float32()*4, rng.Float32(), rng.Float32())),
			base.Add(types.XYZ(rng.Float32(), 1+rng.Float32()*4, rng.Float32()*2)),
		)
	}
	return out
}

func centroidsOf(triangles []types.Triangle) []types.Vec3 {
	out := make([]types.Vec3, len(triangles))
	for i, tri := range triangles {
		out[i] = tri.Centroid()
	}
	return out
}

func buildTestTree(triangles []types.Triangle, opts Options) *Tree {
	return buildTree(triangles, centroidsOf(triangles), opts)
}

// Collect the keys stored in all leafs below nodeIndex.
func subtreeKeys(tree *Tree, nodeIndex int32) map[TriangleID]struct{} {
	out := make(map[TriangleID]struct{})
	var walk func(int32)
	walk = func(index int32) {
		if index == nilNode {
			return
		}
		node := tree.Node(index)
		if node.IsLeaf() {
			for _, key := range tree.LeafKeys(index) {
				out[key] = struct{}{}
			}
			return
		}
		walk(node.Left)
		walk(node.Right)
	}
	walk(nodeIndex)
	return out
}

// A half-space constraint collected while descending the tree.
type cellBound struct {
	axis  Axis
	split float32
	left  bool
}

func (b cellBound) contains(p types.Vec3) bool {
	if b.left {
		return p[b.axis] < b.split
	}
	return p[b.axis] >= b.split
}

// Invoke fn for every leaf together with the constraints describing its cell.
func visitLeafCells(tree *Tree, fn func(index int32, bounds []cellBound)) {
	var walk func(int32, []cellBound)
	walk = func(index int32, bounds []cellBound) {
		if index == nilNode {
			return
		}
		node := tree.Node(index)
		if node.IsLeaf() {
			fn(index, bounds)
			return
		}
		walk(node.Left, append(append([]cellBound(nil), bounds...), cellBound{node.Axis, node.Split, true}))
		walk(node.Right, append(append([]cellBound(nil), bounds...), cellBound{node.Axis, node.Split, false}))
	}
	walk(tree.Root(), nil)
}
