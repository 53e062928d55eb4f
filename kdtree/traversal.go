package kdtree

import "github.com/steinbergerbernd/KD-Tree/types"

// A Hit is a triangle reported by a ray query.
type Hit struct {
	ID       TriangleID
	Triangle types.Triangle

	// Ray parameter of the plane hit, measured along the normalized query
	// direction from the query origin. May be negative or exceed the query
	// budget unless the tree was built with Options.StrictRange.
	U float32
}

// Per-query traversal state. Every query owns its own visitor so concurrent
// queries against the same tree never share scratch storage.
type visitor struct {
	tree *Tree
	dir  types.Vec3
	hits []Hit
}

// Trace walks the tree front-to-back along the ray (origin, dir) and returns
// the triangles hit by the ray in cell visitation order. dir does not need to
// be normalized; tMax bounds the traversal along the normalized direction.
//
// Hits are not sorted by distance and a triangle may be reported more than
// once if it is stored in multiple visited leafs.
func (t *Tree) Trace(origin, dir types.Vec3, tMax float32) []Hit {
	if t.Root() == nilNode {
		return nil
	}

	v := &visitor{
		tree: t,
		dir:  dir.Normalize(),
	}
	v.visit(t.Root(), origin, tMax, 0)
	return v.hits
}

// FindIntersections behaves like Trace but only returns the hit triangles.
func (t *Tree) FindIntersections(origin, dir types.Vec3, tMax float32) []types.Triangle {
	hits := t.Trace(origin, dir, tMax)
	if len(hits) == 0 {
		return nil
	}

	out := make([]types.Triangle, len(hits))
	for i, hit := range hits {
		out[i] = hit.Triangle
	}
	return out
}

// Visit the subtree rooted at nodeIndex for the ray segment starting at
// origin. offset is the distance between the query origin and origin.
func (v *visitor) visit(nodeIndex int32, origin types.Vec3, tMax, offset float32) {
	if nodeIndex == nilNode {
		return
	}

	node := &v.tree.nodes[nodeIndex]
	if node.IsLeaf() {
		v.testLeaf(node, origin, tMax, offset)
		return
	}

	pos := origin[node.Axis]
	dirComponent := v.dir[node.Axis]

	near, far := node.Left, node.Right
	if !(pos < node.Split) {
		near, far = far, near
	}

	// The ray runs parallel to the split plane and stays on the origin side
	if dirComponent == 0 {
		v.visit(near, origin, tMax, offset)
		return
	}

	t := (node.Split - pos) / dirComponent
	if t < 0 || t >= tMax {
		v.visit(near, origin, tMax, offset)
		return
	}

	v.visit(near, origin, t, offset)
	v.visit(far, origin.Add(v.dir.Mul(t)), tMax-t, offset+t)
}

func (v *visitor) testLeaf(node *Node, origin types.Vec3, tMax, offset float32) {
	first, count := node.GetKeys()
	for _, key := range v.tree.keys[first : first+count] {
		tri := &v.tree.triangles[key]

		u, ok := tri.PlaneIntersection(origin, v.dir)
		if !ok {
			continue
		}
		if v.tree.strictRange && (u < 0 || u > tMax) {
			continue
		}

		if !tri.Contains(origin.Add(v.dir.Mul(u))) {
			continue
		}

		v.hits = append(v.hits, Hit{ID: key, Triangle: *tri, U: offset + u})
	}
}
