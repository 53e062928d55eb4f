package writer

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh"
)

// The Writer interface is implemented by all mesh writers.
type Writer interface {
	// Write mesh definition to w.
	Write(m *mesh.Mesh, w io.Writer) error
}

// Write mesh to a file. The format is selected by the file extension: .obj
// for wavefront text or .zip for a compressed binary mesh.
func WriteMesh(m *mesh.Mesh, filename string) error {
	var writer Writer
	switch {
	case strings.HasSuffix(filename, ".obj"):
		writer = newWavefrontWriter()
	case strings.HasSuffix(filename, ".zip"):
		writer = newZipMeshWriter()
	default:
		return errors.Errorf("writeMesh: unsupported file format for %q", filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "writeMesh")
	}

	err = writer.Write(m, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Encode a mesh in wavefront obj format.
func Encode(m *mesh.Mesh, w io.Writer) error {
	return newWavefrontWriter().Write(m, w)
}
