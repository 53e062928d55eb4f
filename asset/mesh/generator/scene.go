package generator

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh"
	"github.com/steinbergerbernd/KD-Tree/log"
	"github.com/steinbergerbernd/KD-Tree/types"
	"go.uber.org/multierr"
)

// ErrCentroidCollision is returned when a cube contains a triangle whose
// centroid is already used by the scene.
var ErrCentroidCollision = errors.New("generator: triangle centroid collision")

const (
	// Random cube positions are drawn from [0, positionRange)^3.
	positionRange = 100

	// Random cube sizes are drawn from [0, sizeRange)^3.
	sizeRange = 10
)

// A Scene is a set of cubes whose triangles have pairwise distinct centroids.
type Scene struct {
	logger log.Logger

	triangles []types.Triangle
	centroids map[types.Vec3]struct{}
	cubes     int
}

// Create an empty scene.
func NewScene() *Scene {
	return &Scene{
		logger:    log.New("cube generator"),
		triangles: make([]types.Triangle, 0),
		centroids: make(map[types.Vec3]struct{}),
	}
}

// AddCube adds the triangles of a cube to the scene. If any triangle
// centroid collides with a centroid already in the scene the whole cube is
// rejected and the scene is left unchanged.
func (s *Scene) AddCube(position, size types.Vec3) error {
	tris := Cube(position, size)

	added := make(map[types.Vec3]struct{}, len(tris))
	for _, tri := range tris {
		centroid := tri.Centroid()
		_, inScene := s.centroids[centroid]
		_, inCube := added[centroid]
		if inScene || inCube {
			return errors.Wrapf(ErrCentroidCollision, "cube at %v with size %v", position, size)
		}
		added[centroid] = struct{}{}
	}

	for centroid := range added {
		s.centroids[centroid] = struct{}{}
	}
	s.triangles = append(s.triangles, tris...)
	s.cubes++
	return nil
}

// Get the number of cubes in the scene.
func (s *Scene) Cubes() int {
	return s.cubes
}

// Get the scene triangles in insertion order.
func (s *Scene) Triangles() []types.Triangle {
	return s.triangles
}

// Get the scene as a mesh.
func (s *Scene) Mesh(name string) *mesh.Mesh {
	m := mesh.New(name)
	m.Triangles = append(m.Triangles, s.triangles...)
	return m
}

// RandomCubes generates a scene with count randomly placed and sized cubes.
// The same seed always produces the same scene. Cubes that collide with
// previously generated ones are skipped and reported in the returned error.
func RandomCubes(count int, seed int64) (*Scene, error) {
	rng := rand.New(rand.NewSource(seed))
	s := NewScene()

	var err error
	for i := 0; i < count; i++ {
		position := types.XYZ(rng.Float32(), rng.Float32(), rng.Float32()).Mul(positionRange)
		size := types.XYZ(rng.Float32(), rng.Float32(), rng.Float32()).Mul(sizeRange)
		err = multierr.Append(err, s.AddCube(position, size))
	}

	s.logger.Infof("generated %d of %d cubes (%d triangles)", s.cubes, count, len(s.triangles))
	return s, err
}
