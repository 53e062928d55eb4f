package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/steinbergerbernd/KD-Tree/kdtree"
	"github.com/steinbergerbernd/KD-Tree/log"
	"github.com/steinbergerbernd/KD-Tree/types"
	"github.com/urfave/cli"
)

func testApp() *cli.App {
	app := cli.NewApp()
	app.Flags = GlobalFlags
	app.Commands = []cli.Command{
		{Name: "generate", Flags: SceneFlags, Action: GenerateScene},
		{Name: "compile", Action: CompileMesh},
		{
			Name:   "build",
			Flags:  append(append(append([]cli.Flag{}, SceneFlags...), IndexFlags...), cli.BoolFlag{Name: "boxes"}),
			Action: BuildTree,
		},
		{
			Name:   "trace",
			Flags:  append(append(append([]cli.Flag{}, SceneFlags...), IndexFlags...), RayFlags...),
			Action: TraceRay,
		},
	}
	return app
}

// Run the app and capture log output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	log.SetSink(&buf)
	defer log.SetSink(os.Stderr)
	defer log.SetLevel(log.Notice)

	err := testApp().Run(append([]string{"kdtrace"}, args...))
	return buf.String(), err
}

func TestParseVec3(t *testing.T) {
	type spec struct {
		in     string
		exp    types.Vec3
		expErr bool
	}
	specs := []spec{
		{"1,2,3", types.XYZ(1, 2, 3), false},
		{" -1.5, 0 ,1e2", types.XYZ(-1.5, 0, 100), false},
		{"1,2", types.Vec3{}, true},
		{"1,b,3", types.Vec3{}, true},
	}

	for idx, s := range specs {
		got, err := parseVec3(s.in)
		if s.expErr != (err != nil) {
			t.Fatalf("[spec %d] expected error: %t; got %v", idx, s.expErr, err)
		}
		if got != s.exp {
			t.Fatalf("[spec %d] expected %v; got %v", idx, s.exp, got)
		}
	}
}

func TestBuildCommand(t *testing.T) {
	out, err := run(t, "build", "--cubes", "5", "--boxes")
	if err != nil {
		t.Fatal(err)
	}

	for _, exp := range []string{"tree statistics", "Internal nodes", "split boxes"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected output to contain %q; got:\n%s", exp, out)
		}
	}
}

func TestBuildCommandRejectsBadOptions(t *testing.T) {
	type spec struct {
		args []string
		exp  string
	}
	specs := []spec{
		{[]string{"build", "--leaf-size", "0"}, "leaf size"},
		{[]string{"build", "--pivot", "random"}, "unknown pivot strategy"},
		{[]string{"--log-level", "loud", "build"}, "unknown level"},
	}

	for idx, s := range specs {
		_, err := run(t, s.args...)
		if err == nil || !strings.Contains(err.Error(), s.exp) {
			t.Fatalf("[spec %d] expected error containing %q; got %v", idx, s.exp, err)
		}
	}
}

func TestGenerateCompileAndTrace(t *testing.T) {
	dir, err := ioutil.TempDir("", "kdtrace-cmd")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	objFile := filepath.Join(dir, "cubes.obj")
	if _, err = run(t, "generate", "--cubes", "20", "--seed", "3", objFile); err != nil {
		t.Fatal(err)
	}
	if _, err = run(t, "compile", objFile); err != nil {
		t.Fatal(err)
	}

	zipFile := filepath.Join(dir, "cubes.zip")
	if _, err = os.Stat(zipFile); err != nil {
		t.Fatalf("expected compiled mesh at %s; got %v", zipFile, err)
	}

	for _, meshFile := range []string{objFile, zipFile} {
		out, err := run(t, "trace", "--origin", "50,50,-10", "--dir", "0,0,1", "--tmax", "200", meshFile)
		if err != nil {
			t.Fatalf("[%s] %v", meshFile, err)
		}
		if !strings.Contains(out, "ray hits") || !strings.Contains(out, "HITS") {
			t.Fatalf("[%s] expected hit table in output; got:\n%s", meshFile, out)
		}
	}

	// Camera ray through the default scene
	out, err := run(t, "trace", "--eye", "100,100,100", "--look", "0,0,0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "tracing ray from") {
		t.Fatalf("expected trace output; got:\n%s", out)
	}
}

func TestIndexOptionsFromFlags(t *testing.T) {
	var got kdtree.Options
	app := cli.NewApp()
	app.Flags = IndexFlags
	app.Action = func(ctx *cli.Context) error {
		var err error
		got, err = indexOptions(ctx)
		return err
	}

	err := app.Run([]string{"app", "--leaf-size", "4", "--pivot", "median3", "--local-parity", "--strict-range"})
	if err != nil {
		t.Fatal(err)
	}

	exp := kdtree.DefaultOptions()
	exp.LeafSize = 4
	exp.Pivot = kdtree.PivotMedianOfThree
	exp.LocalParity = true
	exp.StrictRange = true
	if got.LeafSize != exp.LeafSize || got.MaxDepth != exp.MaxDepth || got.Pivot != exp.Pivot ||
		got.LocalParity != exp.LocalParity || got.StrictRange != exp.StrictRange || got.AllowDegenerate {
		t.Fatalf("expected options %+v; got %+v", exp, got)
	}
}
