package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/steinbergerbernd/KD-Tree/types"
)

const testEpsilon = 1e-3

func approxEqual(a, b types.Vec3) bool {
	return mgl32.Vec3(a).ApproxEqualThreshold(mgl32.Vec3(b), testEpsilon)
}

func TestForwardRay(t *testing.T) {
	c := NewCamera(45)
	c.Position = types.XYZ(0, 0, 10)
	c.LookAt = types.XYZ(0, 0, 0)
	c.Near = 1
	c.Far = 100
	c.Update()

	origin, dir, tMax := c.Ray()
	if !approxEqual(origin, types.XYZ(0, 0, 9)) {
		t.Fatalf("expected ray origin (0, 0, 9); got %v", origin)
	}
	if !approxEqual(dir, types.XYZ(0, 0, -1)) {
		t.Fatalf("expected ray direction (0, 0, -1); got %v", dir)
	}
	if tMax != 101 {
		t.Fatalf("expected tMax 101; got %f", tMax)
	}
}

func TestPitchAndYaw(t *testing.T) {
	type spec struct {
		pitch, yaw float32
		expDir     types.Vec3
	}
	specs := []spec{
		{0, math.Pi / 2, types.XYZ(-1, 0, 0)},
		{0, -math.Pi / 2, types.XYZ(1, 0, 0)},
		{math.Pi / 2, 0, types.XYZ(0, 1, 0)},
		{math.Pi / 4, 0, types.XYZ(0, 1, -1).Normalize()},
	}

	for idx, s := range specs {
		c := NewCamera(45)
		c.Pitch = s.pitch
		c.Yaw = s.yaw
		c.Update()

		if got := c.Forward(); !approxEqual(got, s.expDir) {
			t.Fatalf("[spec %d] expected forward %v; got %v", idx, s.expDir, got)
		}
		if c.Pitch != 0 || c.Yaw != 0 {
			t.Fatalf("[spec %d] expected pending rotations to be cleared", idx)
		}
	}
}

func TestRayThroughCenter(t *testing.T) {
	c := NewCamera(60)
	c.Position = types.XYZ(5, 5, 5)
	c.LookAt = types.XYZ(5, 5, 0)
	c.Near = 1
	c.Far = 50
	c.Update()

	origin, dir, tMax := c.RayThrough(0, 0)
	if !approxEqual(origin, types.XYZ(5, 5, 4)) {
		t.Fatalf("expected origin on the near plane; got %v", origin)
	}
	if !approxEqual(dir, types.XYZ(0, 0, -1)) {
		t.Fatalf("expected direction (0, 0, -1); got %v", dir)
	}
	if math.Abs(float64(tMax-49)) > 0.05 {
		t.Fatalf("expected tMax close to 49; got %f", tMax)
	}

	// Rays through the right edge diverge to the right
	_, dir, _ = c.RayThrough(1, 0)
	if dir[0] <= 0 || dir[2] >= 0 {
		t.Fatalf("expected ray through the right edge to point right and forward; got %v", dir)
	}
}
