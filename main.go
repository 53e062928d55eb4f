package main

import (
	"fmt"
	"os"

	"github.com/steinbergerbernd/KD-Tree/cmd"
	"github.com/urfave/cli"
)

func flags(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "kdtrace"
	app.Usage = "index triangle meshes in a KD-tree and trace rays through them"
	app.Version = "0.0.1"
	app.Flags = cmd.GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "generate a random cube scene",
			Description: `
Generate a scene of randomly placed and sized cubes and write it to a mesh
file. The output format is selected by the file extension (.obj or .zip).`,
			ArgsUsage: "out_file.obj",
			Flags:     cmd.SceneFlags,
			Action:    cmd.GenerateScene,
		},
		{
			Name:  "compile",
			Usage: "compile wavefront meshes into a binary compressed format",
			Description: `
Parse one or more wavefront obj files and write each mesh to a zip archive
next to it. Compiled meshes load faster and can be passed to any command
that accepts a mesh file.`,
			ArgsUsage: "mesh_file1.obj mesh_file2.obj ...",
			Action:    cmd.CompileMesh,
		},
		{
			Name:  "build",
			Usage: "build a KD-tree and display its statistics",
			Description: `
Load a mesh (or generate a random cube scene when no mesh file is given),
build a KD-tree over its triangles and display tree statistics.`,
			ArgsUsage: "[mesh_file]",
			Flags: flags(cmd.SceneFlags, cmd.IndexFlags, []cli.Flag{
				cli.BoolFlag{
					Name:  "boxes",
					Usage: "display the bounding box of every split",
				},
			}),
			Action: cmd.BuildTree,
		},
		{
			Name:  "trace",
			Usage: "trace a ray through a KD-tree",
			Description: `
Build a KD-tree and trace a single ray through it. The ray is either given
explicitly (--origin, --dir, --tmax) or cast along the view direction of a
camera (--eye, --look, --near, --far).`,
			ArgsUsage: "[mesh_file]",
			Flags:     flags(cmd.SceneFlags, cmd.IndexFlags, cmd.RayFlags),
			Action:    cmd.TraceRay,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
