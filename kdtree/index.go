package kdtree

import (
	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/log"
	"github.com/steinbergerbernd/KD-Tree/types"
	"go.uber.org/multierr"
)

// Index stores a static set of triangles and answers ray queries against a
// KD-tree built over their centroids.
//
// Triangles are added with Insert and the tree is constructed once by Build.
// Insert is not safe for concurrent use; once built the index is immutable
// and queries may be issued from multiple goroutines.
type Index struct {
	logger log.Logger
	opts   Options

	triangles []types.Triangle

	// Cached centroids indexed by TriangleID.
	centroids []types.Vec3

	// Centroids must be unique across the index.
	byCentroid map[types.Vec3]TriangleID

	tree *Tree
}

// Create an empty index using the supplied options.
func NewIndex(opts Options) (*Index, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Index{
		logger:     log.New("kdtree"),
		opts:       opts,
		byCentroid: make(map[types.Vec3]TriangleID),
	}, nil
}

// BuildIndex inserts all triangles into a new index and builds its tree.
//
// Triangles that cannot be inserted are skipped. Their failures are combined
// into the returned error, one *RejectedTriangleError per triangle, while the
// index is still built from the remaining triangles. A nil index is only
// returned for invalid options.
func BuildIndex(triangles []types.Triangle, opts Options) (*Index, error) {
	idx, err := NewIndex(opts)
	if err != nil {
		return nil, err
	}

	var rejected error
	for pos, tri := range triangles {
		if _, insertErr := idx.Insert(tri); insertErr != nil {
			rejected = multierr.Append(rejected, &RejectedTriangleError{
				Position: pos,
				Triangle: tri,
				Reason:   errors.Cause(insertErr),
			})
		}
	}

	if rejected != nil {
		idx.logger.Warningf("rejected %d of %d triangles", len(multierr.Errors(rejected)), len(triangles))
	}

	if err = idx.Build(); err != nil {
		return nil, err
	}

	return idx, rejected
}

// Insert adds a triangle to the index and returns its ID. The triangle is
// rejected if its centroid matches the centroid of an already stored triangle
// or if it is degenerate and Options.AllowDegenerate is not set.
func (idx *Index) Insert(tri types.Triangle) (TriangleID, error) {
	if idx.tree != nil {
		return 0, ErrIndexSealed
	}

	if !idx.opts.AllowDegenerate && tri.IsDegenerate() {
		return 0, errors.Wrapf(ErrDegenerateTriangle, "area %g", tri.Area())
	}

	centroid := tri.Centroid()
	if existing, exists := idx.byCentroid[centroid]; exists {
		return 0, errors.Wrapf(ErrDuplicateCentroid, "centroid %v already used by triangle %d", centroid, existing)
	}

	id := TriangleID(len(idx.triangles))
	idx.triangles = append(idx.triangles, tri)
	idx.centroids = append(idx.centroids, centroid)
	idx.byCentroid[centroid] = id

	return id, nil
}

// Build constructs the KD-tree. An index can only be built once; afterwards
// no further triangles can be inserted.
func (idx *Index) Build() error {
	if idx.tree != nil {
		return ErrIndexSealed
	}

	idx.tree = buildTree(idx.triangles, idx.centroids, idx.opts)
	return nil
}

// Get the number of stored triangles.
func (idx *Index) Len() int {
	return len(idx.triangles)
}

// Get the triangle with the given ID.
func (idx *Index) Triangle(id TriangleID) (types.Triangle, bool) {
	if int(id) >= len(idx.triangles) {
		return types.Triangle{}, false
	}
	return idx.triangles[id], true
}

// Lookup the ID of the triangle with the given centroid.
func (idx *Index) Lookup(centroid types.Vec3) (TriangleID, bool) {
	id, ok := idx.byCentroid[centroid]
	return id, ok
}

// Get the built tree or nil if Build has not been called yet.
func (idx *Index) Tree() *Tree {
	return idx.tree
}

// Trace casts a ray through the index. See Tree.Trace. Querying an index
// that has not been built yet returns no hits.
func (idx *Index) Trace(origin, dir types.Vec3, tMax float32) []Hit {
	if idx.tree == nil {
		return nil
	}
	return idx.tree.Trace(origin, dir, tMax)
}

// FindIntersections returns the triangles hit by a ray. See Tree.Trace for
// ordering and range semantics.
func (idx *Index) FindIntersections(origin, dir types.Vec3, tMax float32) []types.Triangle {
	if idx.tree == nil {
		return nil
	}
	return idx.tree.FindIntersections(origin, dir, tMax)
}

// Get tree statistics. Returns zero stats before Build.
func (idx *Index) Stats() Stats {
	return idx.tree.Stats()
}
