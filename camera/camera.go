package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/steinbergerbernd/KD-Tree/types"
)

// The camera type controls the viewpoint rays are cast from.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Pending rotations in radians; applied and cleared by Update.
	Pitch float32
	Yaw   float32

	// Vertical field of view in degrees.
	FOV    float32
	Aspect float32

	// Clip plane distances.
	Near float32
	Far  float32

	ViewMat mgl32.Mat4
	ProjMat mgl32.Mat4
}

// Create a camera at the origin looking down the negative Z axis.
func NewCamera(fov float32) *Camera {
	c := &Camera{
		Position: types.XYZ(0, 0, 0),
		LookAt:   types.XYZ(0, 0, -1),
		Up:       types.XYZ(0, 1, 0),
		FOV:      fov,
		Aspect:   1,
		Near:     1,
		Far:      1000,
	}
	c.Update()
	return c
}

// Update applies pending pitch/yaw rotations and recalculates the view and
// projection matrices.
func (c *Camera) Update() {
	dir := mgl32.Vec3(c.Forward())
	up := mgl32.Vec3(c.Up)

	if c.Pitch != 0 || c.Yaw != 0 {
		pitchAxis := dir.Cross(up).Normalize()
		pitchQuat := mgl32.QuatRotate(c.Pitch, pitchAxis)
		yawQuat := mgl32.QuatRotate(c.Yaw, up.Normalize())

		orientQuat := pitchQuat.Mul(yawQuat).Normalize()
		dir = orientQuat.Rotate(dir)
		c.LookAt = c.Position.Add(types.Vec3(dir))
		c.Pitch, c.Yaw = 0, 0
	}

	eye := mgl32.Vec3(c.Position)
	c.ViewMat = mgl32.LookAtV(eye, eye.Add(dir), up)
	c.ProjMat = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Get the normalized view direction.
func (c *Camera) Forward() types.Vec3 {
	return c.LookAt.Sub(c.Position).Normalize()
}

// Ray returns the ray cast along the view direction. It starts on the near
// plane and may travel Near + Far units.
func (c *Camera) Ray() (origin, dir types.Vec3, tMax float32) {
	dir = c.Forward()
	return c.Position.Add(dir.Mul(c.Near)), dir, c.Near + c.Far
}

// RayThrough returns the ray passing through a point given in normalized
// device coordinates ([-1, 1] on both axes). The ray starts on the near plane
// and ends on the far plane. Update must be called after changing the camera.
func (c *Camera) RayThrough(ndcX, ndcY float32) (origin, dir types.Vec3, tMax float32) {
	invViewProj := c.ProjMat.Mul4(c.ViewMat).Inv()

	near := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, -1}, invViewProj)
	far := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, 1}, invViewProj)

	segment := far.Sub(near)
	return types.Vec3(near), types.Vec3(segment.Normalize()), segment.Len()
}
