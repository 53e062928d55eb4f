package generator

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/steinbergerbernd/KD-Tree/types"
)

// Corners of the unit quad in the z = 0 plane and its two triangles.
var (
	quadCorners = [4]mgl32.Vec3{
		{0, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
		{1, 0, 0},
	}
	quadTriangles = [2][3]int{
		{0, 1, 3},
		{1, 2, 3},
	}
)

// Transforms that map the unit quad to the six sides of the unit cube.
var sideTransforms = func() [6]mgl32.Mat4 {
	var sides [6]mgl32.Mat4
	toCenter := mgl32.Translate3D(-0.5, -0.5, -0.5)
	fromCenter := mgl32.Translate3D(0.5, 0.5, 0.5)
	for i := range sides {
		var rot mgl32.Mat4
		switch {
		case i < 4:
			rot = mgl32.HomogRotate3DY(float32(i) * math.Pi / 2)
		case i == 4:
			rot = mgl32.HomogRotate3DX(math.Pi / 2)
		default:
			rot = mgl32.HomogRotate3DX(-math.Pi / 2)
		}
		sides[i] = fromCenter.Mul4(rot).Mul4(toCenter)
	}
	return sides
}()

// Cube returns the 12 triangles of an axis aligned box with its minimum
// corner at position.
func Cube(position, size types.Vec3) []types.Triangle {
	world := mgl32.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl32.Scale3D(size[0], size[1], size[2]))

	tris := make([]types.Triangle, 0, 12)
	for _, side := range sideTransforms {
		xform := world.Mul4(side)
		for _, indices := range quadTriangles {
			tris = append(tris, types.Tri(
				transform(xform, quadCorners[indices[0]]),
				transform(xform, quadCorners[indices[1]]),
				transform(xform, quadCorners[indices[2]]),
			))
		}
	}
	return tris
}

func transform(m mgl32.Mat4, v mgl32.Vec3) types.Vec3 {
	return types.Vec3(mgl32.TransformCoordinate(v, m))
}
