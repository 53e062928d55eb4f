package kdtree

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/types"
)

const (
	// Leafs are created once a partition holds this many keys or less.
	DefaultLeafSize = 12

	// Recursion is cut off at this depth regardless of the partition size.
	DefaultMaxDepth = 64
)

// The strategy used by the order-statistic selector for picking a pivot.
type PivotStrategy uint8

const (
	// Use the value currently stored at the target index. Deterministic
	// but quadratic for adversarial input.
	PivotTarget PivotStrategy = iota

	// Use the median of the window's first, middle and last values.
	PivotMedianOfThree
)

func (p PivotStrategy) String() string {
	switch p {
	case PivotTarget:
		return "target"
	case PivotMedianOfThree:
		return "median3"
	}
	return "unknown"
}

// Parse a pivot strategy name as returned by PivotStrategy.String.
func ParsePivotStrategy(name string) (PivotStrategy, error) {
	switch strings.ToLower(name) {
	case "target", "":
		return PivotTarget, nil
	case "median3", "median-of-three":
		return PivotMedianOfThree, nil
	}
	return PivotTarget, errors.Errorf("kdtree: unknown pivot strategy %q", name)
}

// A callback invoked once per internal node with the centroid AABB of the
// keys being split.
type SplitBoxCallback func(min, max types.Vec3)

// Options control index construction and queries.
type Options struct {
	// Max number of primary keys stored in a leaf.
	LeafSize int

	// Depth at which the builder stops splitting.
	MaxDepth int

	// Pivot selection for median finding.
	Pivot PivotStrategy

	// Decide between single and averaged median selection using the
	// local partition size instead of the total triangle count.
	LocalParity bool

	// Only report leaf hits whose ray parameter lies in [0, tMax] of the
	// segment being traversed.
	StrictRange bool

	// Accept zero-area triangles.
	AllowDegenerate bool

	// Optional debug hook for split boxes.
	OnSplitBox SplitBoxCallback
}

// Get the default index options.
func DefaultOptions() Options {
	return Options{
		LeafSize: DefaultLeafSize,
		MaxDepth: DefaultMaxDepth,
		Pivot:    PivotTarget,
	}
}

// Validate options.
func (o Options) Validate() error {
	if o.LeafSize < 1 {
		return errors.Wrapf(ErrInvalidOptions, "leaf size must be >= 1; got %d", o.LeafSize)
	}
	if o.MaxDepth < 1 {
		return errors.Wrapf(ErrInvalidOptions, "max depth must be >= 1; got %d", o.MaxDepth)
	}
	if o.Pivot > PivotMedianOfThree {
		return errors.Wrapf(ErrInvalidOptions, "unknown pivot strategy %d", o.Pivot)
	}
	return nil
}
