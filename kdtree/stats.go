package kdtree

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"
)

// Stats describes the shape of a built tree.
type Stats struct {
	Triangles int

	// Internal nodes and leafs.
	Nodes  int
	Leaves int

	MaxDepth int

	// Keys stored across all leafs and how many of them are duplicates
	// caused by plane-straddling triangles.
	LeafKeys       int
	DuplicatedKeys int

	// Leafs created because a split made no progress or the depth limit
	// was reached.
	ForcedLeaves int

	// Leaf occupancy.
	MeanLeafKeys   float64
	StdDevLeafKeys float64

	BuildTime time.Duration

	leafSizes []float64
}

func (s *Stats) summarize(keys []TriangleID) {
	distinct := make(map[TriangleID]struct{}, s.Triangles)
	for _, key := range keys {
		distinct[key] = struct{}{}
	}
	s.DuplicatedKeys = len(keys) - len(distinct)

	switch len(s.leafSizes) {
	case 0:
	case 1:
		s.MeanLeafKeys = s.leafSizes[0]
	default:
		s.MeanLeafKeys, s.StdDevLeafKeys = stat.MeanStdDev(s.leafSizes, nil)
	}
	s.leafSizes = nil
}

// Build a tabular representation of tree statistics.
func (s Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", s.Triangles)})
	table.Append([]string{"Internal nodes", fmt.Sprintf("%d", s.Nodes)})
	table.Append([]string{"Leafs", fmt.Sprintf("%d", s.Leaves)})
	table.Append([]string{"Forced leafs", fmt.Sprintf("%d", s.ForcedLeaves)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Leaf keys", fmt.Sprintf("%d", s.LeafKeys)})
	table.Append([]string{"Duplicated keys", fmt.Sprintf("%d", s.DuplicatedKeys)})
	table.Append([]string{"Keys per leaf", fmt.Sprintf("%.2f ± %.2f", s.MeanLeafKeys, s.StdDevLeafKeys)})
	table.SetFooter([]string{"Build time", s.BuildTime.String()})

	table.Render()
	return buf.String()
}
