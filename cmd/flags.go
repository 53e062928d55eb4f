package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/kdtree"
	"github.com/steinbergerbernd/KD-Tree/types"
	"github.com/urfave/cli"
)

// Flags shared by all commands.
var GlobalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "v",
		Usage: "enable verbose logging",
	},
	cli.BoolFlag{
		Name:  "vv",
		Usage: "enable even more verbose logging",
	},
	cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, notice, warning, error)",
	},
}

// Flags for selecting the triangles to index. If no mesh file argument is
// given a random cube scene is generated.
var SceneFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "cubes",
		Value: 15,
		Usage: "number of random cubes to generate when no mesh file is given",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 0,
		Usage: "random seed for cube generation",
	},
}

// Flags controlling index construction.
var IndexFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "leaf-size",
		Value: kdtree.DefaultLeafSize,
		Usage: "max number of primary triangles per leaf",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Value: kdtree.DefaultMaxDepth,
		Usage: "max tree depth",
	},
	cli.StringFlag{
		Name:  "pivot",
		Value: kdtree.PivotTarget.String(),
		Usage: "median selection pivot strategy (target, median3)",
	},
	cli.BoolFlag{
		Name:  "local-parity",
		Usage: "select single or averaged medians using the partition size instead of the triangle count",
	},
	cli.BoolFlag{
		Name:  "strict-range",
		Usage: "only report hits whose ray parameter lies within the traversed segment",
	},
	cli.BoolFlag{
		Name:  "allow-degenerate",
		Usage: "index zero-area triangles instead of rejecting them",
	},
}

// Populate index options from command flags.
func indexOptions(ctx *cli.Context) (kdtree.Options, error) {
	pivot, err := kdtree.ParsePivotStrategy(ctx.String("pivot"))
	if err != nil {
		return kdtree.Options{}, err
	}

	opts := kdtree.Options{
		LeafSize:        ctx.Int("leaf-size"),
		MaxDepth:        ctx.Int("max-depth"),
		Pivot:           pivot,
		LocalParity:     ctx.Bool("local-parity"),
		StrictRange:     ctx.Bool("strict-range"),
		AllowDegenerate: ctx.Bool("allow-degenerate"),
	}
	return opts, opts.Validate()
}

// Parse a vector given as "x,y,z".
func parseVec3(value string) (types.Vec3, error) {
	tokens := strings.Split(value, ",")
	if len(tokens) != 3 {
		return types.Vec3{}, errors.Errorf(`invalid vector "%s"; expected 3 comma separated values`, value)
	}

	var v types.Vec3
	for i, token := range tokens {
		coord, err := strconv.ParseFloat(strings.TrimSpace(token), 32)
		if err != nil {
			return types.Vec3{}, errors.Wrapf(err, `invalid vector "%s"`, value)
		}
		v[i] = float32(coord)
	}
	return v, nil
}

// Parse a vector flag; an unset flag yields def.
func vec3Flag(ctx *cli.Context, name string, def types.Vec3) (types.Vec3, error) {
	value := ctx.String(name)
	if value == "" {
		return def, nil
	}
	v, err := parseVec3(value)
	if err != nil {
		return types.Vec3{}, errors.Wrapf(err, "flag --%s", name)
	}
	return v, nil
}
