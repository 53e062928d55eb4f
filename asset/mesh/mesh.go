package mesh

import "github.com/steinbergerbernd/KD-Tree/types"

// A Mesh is a named triangle soup.
type Mesh struct {
	Name      string
	Triangles []types.Triangle
}

// Create an empty mesh.
func New(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]types.Triangle, 0),
	}
}

// Get the mesh AABB. Returns a zero box for empty meshes.
func (m *Mesh) BBox() [2]types.Vec3 {
	if len(m.Triangles) == 0 {
		return [2]types.Vec3{}
	}

	bbox := m.Triangles[0].BBox()
	for _, tri := range m.Triangles[1:] {
		triBox := tri.BBox()
		bbox[0] = types.MinVec3(bbox[0], triBox[0])
		bbox[1] = types.MaxVec3(bbox[1], triBox[1])
	}
	return bbox
}

// Merge a list of meshes into a single mesh.
func Merge(name string, meshes ...*Mesh) *Mesh {
	out := New(name)
	for _, m := range meshes {
		out.Triangles = append(out.Triangles, m.Triangles...)
	}
	return out
}
