package types

// Triangles with an area below this threshold are considered degenerate.
const degenerateAreaEpsilon = 1e-10

// A triangle defined by three ordered vertices.
type Triangle struct {
	Point1 Vec3
	Point2 Vec3
	Point3 Vec3
}

// Create a triangle from three vertices.
func Tri(p1, p2, p3 Vec3) Triangle {
	return Triangle{Point1: p1, Point2: p2, Point3: p3}
}

// Get the mean of the triangle vertices.
func (t Triangle) Centroid() Vec3 {
	return Vec3{
		(t.Point1[0] + t.Point2[0] + t.Point3[0]) / 3.0,
		(t.Point1[1] + t.Point2[1] + t.Point3[1]) / 3.0,
		(t.Point1[2] + t.Point2[2] + t.Point3[2]) / 3.0,
	}
}

// Get the unit plane normal. Degenerate triangles yield a zero vector.
func (t Triangle) Normal() Vec3 {
	return t.Point2.Sub(t.Point1).Cross(t.Point3.Sub(t.Point1)).Normalize()
}

// Get triangle area.
func (t Triangle) Area() float32 {
	return 0.5 * t.Point2.Sub(t.Point1).Cross(t.Point3.Sub(t.Point1)).Len()
}

// Returns true if the triangle has (almost) zero area.
func (t Triangle) IsDegenerate() bool {
	return t.Area() < degenerateAreaEpsilon
}

// Get the triangle AABB.
func (t Triangle) BBox() [2]Vec3 {
	return [2]Vec3{
		MinVec3(t.Point1, MinVec3(t.Point2, t.Point3)),
		MaxVec3(t.Point1, MaxVec3(t.Point2, t.Point3)),
	}
}

// Vertex returns the i-th (0-based) vertex.
func (t Triangle) Vertex(i int) Vec3 {
	switch i {
	case 0:
		return t.Point1
	case 1:
		return t.Point2
	}
	return t.Point3
}

// Contains checks whether a point lies inside the triangle using barycentric
// coordinates. The point must be coplanar with the triangle. For degenerate
// triangles the result is unreliable.
func (t Triangle) Contains(point Vec3) bool {
	v0 := t.Point3.Sub(t.Point1)
	v1 := t.Point2.Sub(t.Point1)
	v2 := point.Sub(t.Point1)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	invDenom := 1.0 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return u >= 0 && v >= 0 && u+v <= 1
}

// PlaneIntersection intersects the ray (origin, dir) with the triangle plane
// and returns the ray parameter u of the hit point. The second result is false
// when dir is exactly parallel to the plane. No range check is applied to u;
// hits behind the origin yield a negative parameter.
func (t Triangle) PlaneIntersection(origin, dir Vec3) (float32, bool) {
	n := t.Normal()
	denom := n.Dot(dir)
	if denom == 0 {
		return 0, false
	}

	return t.Point1.Sub(origin).Dot(n) / denom, true
}
