package kdtree

import (
	"math/rand"
	"testing"

	"github.com/steinbergerbernd/KD-Tree/types"
)

func TestExtremePointsEmpty(t *testing.T) {
	if _, ok := ComputeExtremePoints(nil); ok {
		t.Fatal("expected ComputeExtremePoints to report an empty set")
	}
}

func TestExtremePointsSingle(t *testing.T) {
	p := types.XYZ(1, 2, 3)
	e, ok := ComputeExtremePoints([]types.Vec3{p})
	if !ok {
		t.Fatal("expected extreme points for a single point")
	}
	for i, got := range e {
		if got != p {
			t.Fatalf("expected extreme point %d to be %v; got %v", i, p, got)
		}
	}
}

func TestExtremePointsMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n < 50; n++ {
		points := make([]types.Vec3, n)
		for i := range points {
			points[i] = types.XYZ(rng.Float32()*10-5, rng.Float32()*10-5, rng.Float32()*10-5)
		}

		min, max := points[0], points[0]
		for _, p := range points[1:] {
			min = types.MinVec3(min, p)
			max = types.MaxVec3(max, p)
		}

		e, _ := ComputeExtremePoints(points)
		if e.Min() != min || e.Max() != max {
			t.Fatalf("[n=%d] expected bounds %v - %v; got %v - %v", n, min, max, e.Min(), e.Max())
		}
		if exp := max[1] - min[1]; e.Extent(YAxis) != exp {
			t.Fatalf("[n=%d] expected Y extent %f; got %f", n, exp, e.Extent(YAxis))
		}
	}
}

func TestSplitAxis(t *testing.T) {
	type spec struct {
		extent types.Vec3
		exp    Axis
	}
	specs := []spec{
		{types.XYZ(3, 2, 1), XAxis},
		{types.XYZ(1, 3, 2), YAxis},
		{types.XYZ(1, 2, 3), ZAxis},
		// X/Y tie above Z resolves to Y
		{types.XYZ(2, 2, 1), YAxis},
		// Three-way tie resolves to Z
		{types.XYZ(1, 1, 1), ZAxis},
		{types.XYZ(0, 0, 0), ZAxis},
		// X/Z tie above Y resolves to Z
		{types.XYZ(2, 1, 2), ZAxis},
		// Y/Z tie above X resolves to Z
		{types.XYZ(1, 2, 2), ZAxis},
	}

	for idx, s := range specs {
		e, _ := ComputeExtremePoints([]types.Vec3{{}, s.extent})
		if got := e.SplitAxis(); got != s.exp {
			t.Fatalf("[spec %d] expected split axis %s for extent %v; got %s", idx, s.exp, s.extent, got)
		}
	}
}
