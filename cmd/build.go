package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/steinbergerbernd/KD-Tree/kdtree"
	"github.com/steinbergerbernd/KD-Tree/types"
	"github.com/urfave/cli"
	"go.uber.org/multierr"
)

// Load triangles and build an index over them.
func buildIndex(ctx *cli.Context, opts kdtree.Options) (*kdtree.Index, error) {
	m, err := loadMesh(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := kdtree.BuildIndex(m.Triangles, opts)
	if idx == nil {
		return nil, err
	}

	if rejected := multierr.Errors(err); len(rejected) > 0 {
		logger.Warningf("rejected %d of %d triangles", len(rejected), len(m.Triangles))
		for _, triErr := range rejected {
			logger.Info(triErr)
		}
	}

	return idx, nil
}

// Build an index and display tree statistics.
func BuildTree(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := indexOptions(ctx)
	if err != nil {
		return err
	}

	var boxes [][2]types.Vec3
	if ctx.Bool("boxes") {
		opts.OnSplitBox = func(min, max types.Vec3) {
			boxes = append(boxes, [2]types.Vec3{min, max})
		}
	}

	idx, err := buildIndex(ctx, opts)
	if err != nil {
		return err
	}

	logger.Noticef("tree statistics\n%s", idx.Stats().Table())
	if len(boxes) > 0 {
		displaySplitBoxes(boxes)
	}

	return nil
}

func displaySplitBoxes(boxes [][2]types.Vec3) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Min", "Max"})
	for i, box := range boxes {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			box[0].String(),
			box[1].String(),
		})
	}
	table.SetFooter([]string{"", "TOTAL", fmt.Sprintf("%d", len(boxes))})

	table.Render()
	logger.Noticef("split boxes\n%s", buf.String())
}
