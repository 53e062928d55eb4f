package reader

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/asset"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh"
	"github.com/steinbergerbernd/KD-Tree/log"
)

// Name of the gob-encoded mesh inside zip archives.
const dataFile = "mesh.bin"

type zipMeshReader struct {
	logger log.Logger
}

// Create a new zip mesh reader.
func newZipMeshReader() *zipMeshReader {
	return &zipMeshReader{
		logger: log.New("zip mesh reader"),
	}
}

// Read mesh definition from zip file.
func (p *zipMeshReader) Read(meshRes *asset.Resource) (*mesh.Mesh, error) {
	p.logger.Noticef(`loading mesh from "%s"`, meshRes.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := ioutil.ReadAll(meshRes)
	if err != nil {
		return nil, errors.Wrap(err, "zipMeshReader")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "zipMeshReader")
	}

	var m *mesh.Mesh
	for _, f := range zr.File {
		if f.Name != dataFile {
			p.logger.Warningf("unknown file %s in mesh zip file; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrap(err, "zipMeshReader")
		}
		m = &mesh.Mesh{}
		err = gob.NewDecoder(rc).Decode(m)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "zipMeshReader: failed to load %s", f.Name)
		}
	}

	if m == nil {
		return nil, errors.Errorf("zipMeshReader: %s not found in %s", dataFile, meshRes.Path())
	}

	p.logger.Noticef("loaded %d triangles in %d ms", len(m.Triangles), time.Since(start).Nanoseconds()/1e6)
	return m, nil
}
