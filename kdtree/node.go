package kdtree

import "github.com/steinbergerbernd/KD-Tree/types"

// A TriangleID identifies a triangle stored in an Index.
type TriangleID uint32

// Child index used for missing children.
const nilNode int32 = -1

// Tree nodes are stored in a flat list and reference each other by index.
//
// - Internal nodes carry the split axis/value and the L/R child indices. A
//   child index of -1 denotes a side that received no keys.
// - Leafs reference a contiguous range of the tree key list.
type Node struct {
	Axis  Axis
	Split float32

	Left  int32
	Right int32

	first uint32
	count uint32
	leaf  bool
}

// Returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Set left and right child node indices.
func (n *Node) SetChildNodes(left, right int32) {
	n.Left = left
	n.Right = right
}

// Turn node into a leaf pointing at a key range.
func (n *Node) SetKeys(first, count uint32) {
	n.leaf = true
	n.Left, n.Right = nilNode, nilNode
	n.first = first
	n.count = count
}

// Get the leaf key range.
func (n *Node) GetKeys() (first, count uint32) {
	return n.first, n.count
}

// Tree is an immutable KD-tree over the triangles of an Index.
type Tree struct {
	nodes []Node
	keys  []TriangleID

	// Shared with the owning index; never modified after build.
	triangles []types.Triangle

	strictRange bool
	stats       Stats
}

// Get the root node index or -1 if the tree is empty.
func (t *Tree) Root() int32 {
	if t == nil || len(t.nodes) == 0 {
		return nilNode
	}
	return 0
}

// Get the node at the given index.
func (t *Tree) Node(index int32) Node {
	return t.nodes[index]
}

// Get the number of nodes (internal and leafs).
func (t *Tree) NumNodes() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Get the keys stored in a leaf node. Returns nil for internal nodes.
func (t *Tree) LeafKeys(index int32) []TriangleID {
	node := &t.nodes[index]
	if !node.IsLeaf() {
		return nil
	}
	return t.keys[node.first : node.first+node.count]
}

// Get build statistics.
func (t *Tree) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.stats
}
