package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/steinbergerbernd/KD-Tree/camera"
	"github.com/steinbergerbernd/KD-Tree/kdtree"
	"github.com/steinbergerbernd/KD-Tree/types"
	"github.com/urfave/cli"
)

// Flags for describing the traced ray.
var RayFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "origin",
		Usage: `ray origin as "x,y,z"`,
	},
	cli.StringFlag{
		Name:  "dir",
		Usage: `ray direction as "x,y,z"`,
	},
	cli.Float64Flag{
		Name:  "tmax",
		Value: 1000,
		Usage: "ray parameter budget",
	},
	cli.StringFlag{
		Name:  "eye",
		Value: "100,100,100",
		Usage: `camera position as "x,y,z"; used when no --origin is given`,
	},
	cli.StringFlag{
		Name:  "look",
		Value: "0,0,0",
		Usage: `camera target as "x,y,z"`,
	},
	cli.Float64Flag{
		Name:  "near",
		Value: 1,
		Usage: "camera near plane distance",
	},
	cli.Float64Flag{
		Name:  "far",
		Value: 1000,
		Usage: "camera far plane distance",
	},
}

// Select the ray to trace. An explicit origin/direction pair takes precedence
// over the camera ray.
func selectRay(ctx *cli.Context) (origin, dir types.Vec3, tMax float32, err error) {
	if ctx.String("origin") != "" || ctx.String("dir") != "" {
		if origin, err = vec3Flag(ctx, "origin", types.Vec3{}); err != nil {
			return
		}
		if dir, err = vec3Flag(ctx, "dir", types.XYZ(0, 0, -1)); err != nil {
			return
		}
		return origin, dir, float32(ctx.Float64("tmax")), nil
	}

	cam := camera.NewCamera(45)
	if cam.Position, err = vec3Flag(ctx, "eye", cam.Position); err != nil {
		return
	}
	if cam.LookAt, err = vec3Flag(ctx, "look", cam.LookAt); err != nil {
		return
	}
	cam.Near = float32(ctx.Float64("near"))
	cam.Far = float32(ctx.Float64("far"))
	cam.Update()

	origin, dir, tMax = cam.Ray()
	return origin, dir, tMax, nil
}

// Build an index and trace a single ray through it.
func TraceRay(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := indexOptions(ctx)
	if err != nil {
		return err
	}

	origin, dir, tMax, err := selectRay(ctx)
	if err != nil {
		return err
	}

	idx, err := buildIndex(ctx, opts)
	if err != nil {
		return err
	}

	logger.Noticef("tracing ray from %v towards %v (tMax: %g)", origin, dir, tMax)
	displayHits(idx.Trace(origin, dir, tMax))
	return nil
}

func displayHits(hits []kdtree.Hit) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Triangle", "U", "Point1", "Point2", "Point3"})
	for _, hit := range hits {
		table.Append([]string{
			fmt.Sprintf("%d", hit.ID),
			fmt.Sprintf("%.3f", hit.U),
			hit.Triangle.Point1.String(),
			hit.Triangle.Point2.String(),
			hit.Triangle.Point3.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "HITS", fmt.Sprintf("%d", len(hits))})

	table.Render()
	logger.Noticef("ray hits\n%s", buf.String())
}
