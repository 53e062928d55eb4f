package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh/generator"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh/reader"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh/writer"
	"github.com/urfave/cli"
	"go.uber.org/multierr"
)

// Load the mesh given as the first command argument or generate a random
// cube scene if no argument is given.
func loadMesh(ctx *cli.Context) (*mesh.Mesh, error) {
	if ctx.NArg() > 0 {
		return reader.ReadMesh(ctx.Args().First())
	}

	return generateCubes(ctx.Int("cubes"), ctx.Int64("seed"))
}

func generateCubes(count int, seed int64) (*mesh.Mesh, error) {
	sc, err := generator.RandomCubes(count, seed)
	if rejected := multierr.Errors(err); len(rejected) > 0 {
		logger.Warningf("skipped %d colliding cubes", len(rejected))
		for _, cubeErr := range rejected {
			logger.Info(cubeErr)
		}
	}
	return sc.Mesh("cubes"), nil
}

// Generate a random cube scene and write it to a mesh file.
func GenerateScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing output mesh file argument")
	}

	m, err := generateCubes(ctx.Int("cubes"), ctx.Int64("seed"))
	if err != nil {
		return err
	}

	outFile := ctx.Args().First()
	if err = writer.WriteMesh(m, outFile); err != nil {
		return err
	}

	logger.Noticef("wrote %d triangles to %s", len(m.Triangles), outFile)
	return nil
}

// Compile wavefront meshes into the compressed binary format.
func CompileMesh(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		meshFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(meshFile, ".obj") {
			logger.Warningf("skipping unsupported file %s", meshFile)
			continue
		}

		m, err := reader.ReadMesh(meshFile)
		if err != nil {
			return err
		}

		zipFile := strings.TrimSuffix(meshFile, ".obj") + ".zip"
		if err = writer.WriteMesh(m, zipFile); err != nil {
			return err
		}
		logger.Noticef("compiled %s into %s", meshFile, zipFile)
	}

	return nil
}
