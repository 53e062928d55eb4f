package writer

import (
	"archive/zip"
	"encoding/gob"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh"
	"github.com/steinbergerbernd/KD-Tree/log"
)

// Name of the gob-encoded mesh inside zip archives.
const dataFile = "mesh.bin"

type zipMeshWriter struct {
	logger log.Logger
}

// Create a new zip mesh writer.
func newZipMeshWriter() *zipMeshWriter {
	return &zipMeshWriter{
		logger: log.New("zip mesh writer"),
	}
}

// Write mesh to a zip archive.
func (w *zipMeshWriter) Write(m *mesh.Mesh, out io.Writer) error {
	start := time.Now()

	zw := zip.NewWriter(out)
	cw, err := zw.Create(dataFile)
	if err != nil {
		return errors.Wrap(err, "zipMeshWriter")
	}

	if err = gob.NewEncoder(cw).Encode(m); err != nil {
		return errors.Wrap(err, "zipMeshWriter")
	}

	if err = zw.Close(); err != nil {
		return errors.Wrap(err, "zipMeshWriter")
	}

	w.logger.Infof("compressed %d triangles in %d ms", len(m.Triangles), time.Since(start).Nanoseconds()/1e6)
	return nil
}
