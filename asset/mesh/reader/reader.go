package reader

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/asset"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh"
)

// The Reader interface is implemented by all mesh readers.
type Reader interface {
	// Read mesh definition from a resource.
	Read(*asset.Resource) (*mesh.Mesh, error)
}

// Read mesh from a local file or http/https URL.
func ReadMesh(filename string) (*mesh.Mesh, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	reader, err := readerFor(filename)
	if err != nil {
		return nil, err
	}
	return reader.Read(res)
}

// Select reader based on file extension.
func readerFor(filename string) (Reader, error) {
	switch {
	case strings.HasSuffix(filename, ".obj"):
		return newWavefrontReader(), nil
	case strings.HasSuffix(filename, ".zip"):
		return newZipMeshReader(), nil
	}
	return nil, errors.Errorf("readMesh: unsupported file format for %q", filename)
}
