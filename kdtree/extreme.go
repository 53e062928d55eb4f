package kdtree

import "github.com/steinbergerbernd/KD-Tree/types"

// ExtremePoints stores the points with the minimum and maximum coordinate
// along each axis, in the order minX, maxX, minY, maxY, minZ, maxZ.
type ExtremePoints [6]types.Vec3

// Compute the extreme points of a point set. Returns false if the set is empty.
func ComputeExtremePoints(points []types.Vec3) (ExtremePoints, bool) {
	if len(points) == 0 {
		return ExtremePoints{}, false
	}
	return reduceExtremePoints(points, 0, len(points)-1), true
}

// Recursively split points[begin:end+1] at its midpoint and merge the
// extremes of both halves.
func reduceExtremePoints(points []types.Vec3, begin, end int) ExtremePoints {
	var p0, p1 ExtremePoints
	if end-begin > 1 {
		mid := begin + (end-begin)/2
		p0 = reduceExtremePoints(points, begin, mid)
		p1 = reduceExtremePoints(points, mid+1, end)
	} else {
		p0 = seedExtremePoints(points[begin])
		p1 = seedExtremePoints(points[end])
	}

	var out ExtremePoints
	for axis := XAxis; axis <= ZAxis; axis++ {
		lo, hi := 2*axis, 2*axis+1
		if p0[lo][axis] < p1[lo][axis] {
			out[lo] = p0[lo]
		} else {
			out[lo] = p1[lo]
		}
		if p0[hi][axis] > p1[hi][axis] {
			out[hi] = p0[hi]
		} else {
			out[hi] = p1[hi]
		}
	}
	return out
}

func seedExtremePoints(p types.Vec3) ExtremePoints {
	return ExtremePoints{p, p, p, p, p, p}
}

// Get the AABB min corner.
func (e ExtremePoints) Min() types.Vec3 {
	return types.Vec3{e[0][0], e[2][1], e[4][2]}
}

// Get the AABB max corner.
func (e ExtremePoints) Max() types.Vec3 {
	return types.Vec3{e[1][0], e[3][1], e[5][2]}
}

// Get the AABB side length along an axis.
func (e ExtremePoints) Extent(axis Axis) float32 {
	return e[2*axis+1][axis] - e[2*axis][axis]
}

// Select the axis with the largest extent. X wins only if it is strictly the
// largest; Y wins ties with X but must strictly exceed Z; otherwise Z.
func (e ExtremePoints) SplitAxis() Axis {
	lx, ly, lz := e.Extent(XAxis), e.Extent(YAxis), e.Extent(ZAxis)
	switch {
	case lx > ly && lx > lz:
		return XAxis
	case ly >= lx && ly > lz:
		return YAxis
	}
	return ZAxis
}
