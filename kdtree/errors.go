package kdtree

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/types"
)

var (
	ErrDuplicateCentroid  = errors.New("kdtree: duplicate triangle centroid")
	ErrDegenerateTriangle = errors.New("kdtree: degenerate triangle")
	ErrIndexSealed        = errors.New("kdtree: index already built")
	ErrInvalidOptions     = errors.New("kdtree: invalid options")
)

// RejectedTriangleError reports a triangle that could not be inserted while
// building an index from a batch.
type RejectedTriangleError struct {
	// Position of the triangle in the input batch.
	Position int

	Triangle types.Triangle
	Reason   error
}

func (e *RejectedTriangleError) Error() string {
	return fmt.Sprintf("triangle %d %v rejected: %v", e.Position, e.Triangle, e.Reason)
}

// Cause implements the causer interface of github.com/pkg/errors.
func (e *RejectedTriangleError) Cause() error {
	return e.Reason
}

func (e *RejectedTriangleError) Unwrap() error {
	return e.Reason
}
