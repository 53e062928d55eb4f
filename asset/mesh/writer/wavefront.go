package writer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh"
	"github.com/steinbergerbernd/KD-Tree/log"
	"github.com/steinbergerbernd/KD-Tree/types"
)

type wavefrontWriter struct {
	logger log.Logger
}

func newWavefrontWriter() *wavefrontWriter {
	return &wavefrontWriter{
		logger: log.New("wavefront mesh writer"),
	}
}

// Write mesh as a single wavefront object. Shared vertices are emitted once.
func (w *wavefrontWriter) Write(m *mesh.Mesh, out io.Writer) error {
	start := time.Now()

	bw := bufio.NewWriter(out)
	name := m.Name
	if name == "" {
		name = "mesh"
	}
	fmt.Fprintf(bw, "# %d triangles\no %s\n", len(m.Triangles), name)

	vertexIndex := make(map[types.Vec3]int, 3*len(m.Triangles))
	faces := make([][3]int, len(m.Triangles))
	for triIndex, tri := range m.Triangles {
		for i := 0; i < 3; i++ {
			v := tri.Vertex(i)
			index, exists := vertexIndex[v]
			if !exists {
				index = len(vertexIndex) + 1
				vertexIndex[v] = index
				fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
			}
			faces[triIndex][i] = index
		}
	}

	for _, face := range faces {
		fmt.Fprintf(bw, "f %d %d %d\n", face[0], face[1], face[2])
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "wavefront writer")
	}

	w.logger.Infof("wrote %d vertices and %d faces in %d ms", len(vertexIndex), len(faces), time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Format a float so that it parses back to the exact same float32.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
