package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/steinbergerbernd/KD-Tree/asset"
	"github.com/steinbergerbernd/KD-Tree/asset/mesh"
	"github.com/steinbergerbernd/KD-Tree/log"
	"github.com/steinbergerbernd/KD-Tree/types"
)

// Triangles emitted for a parsed object or group.
type wavefrontGroup struct {
	name      string
	triangles int
}

type wavefrontMeshReader struct {
	logger log.Logger

	// The parsed mesh.
	mesh *mesh.Mesh

	// Object/group names in parse order.
	groups []wavefrontGroup

	// Parsed vertices. Normals and tex coords are only counted so that
	// face indices referencing them can be validated.
	vertexList  []types.Vec3
	normalCount int
	uvCount     int

	// Statements we do not support are reported once.
	skipped map[string]struct{}

	// An error stack that provides additional error information when
	// mesh files include other files.
	errStack []string
}

// Create a new wavefront mesh reader.
func newWavefrontReader() *wavefrontMeshReader {
	return &wavefrontMeshReader{
		logger:     log.New("wavefront mesh reader"),
		groups:     make([]wavefrontGroup, 0),
		vertexList: make([]types.Vec3, 0),
		skipped:    make(map[string]struct{}),
		errStack:   make([]string, 0),
	}
}

// Read mesh definition.
func (r *wavefrontMeshReader) Read(meshRes *asset.Resource) (*mesh.Mesh, error) {
	r.logger.Noticef(`parsing mesh from "%s"`, meshRes.Path())
	start := time.Now()

	r.mesh = mesh.New(strings.TrimSuffix(meshRes.Name(), ".obj"))
	err := r.parse(meshRes)
	if err != nil {
		return nil, err
	}
	r.verifyLastParsedGroup()

	for _, g := range r.groups {
		r.logger.Infof(`group "%s": %d triangles`, g.name, g.triangles)
	}
	r.logger.Noticef(
		"parsed %d triangles in %d groups in %d ms",
		len(r.mesh.Triangles), len(r.groups), time.Since(start).Nanoseconds()/1e6,
	)

	return r.mesh, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *wavefrontMeshReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n"))
	} else {
		errMsg = fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n"))
	}

	return errors.New(strings.Trim(errMsg, "\n"))
}

// Push a frame to the error stack.
func (r *wavefrontMeshReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontMeshReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse wavefront object format.
func (r *wavefrontMeshReader) parse(res *asset.Resource) error {
	var lineNum int

	// Included files use 1-based indices relative to their own vertices.
	relVertexOffset := len(r.vertexList)
	relUvOffset := r.uvCount
	relNormalOffset := r.normalCount

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "call"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [call]", res.Path(), lineNum))
			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err)
			}

			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err)
			}
			r.vertexList = append(r.vertexList, v)
		case "vn":
			if _, err := parseVec3(lineTokens); err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err)
			}
			r.normalCount++
		case "vt":
			if len(lineTokens) < 3 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "vt"; expected 2 arguments; got %d`, len(lineTokens)-1)
			}
			r.uvCount++
		case "g", "o":
			if len(lineTokens) < 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument for object name; got %d`, lineTokens[0], len(lineTokens)-1)
			}

			r.verifyLastParsedGroup()
			r.groups = append(r.groups, wavefrontGroup{name: lineTokens[1]})
		case "f":
			tris, err := r.parseFace(lineTokens, relVertexOffset, relUvOffset, relNormalOffset)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err)
			}

			// If no object has been defined create a default one
			if len(r.groups) == 0 {
				r.groups = append(r.groups, wavefrontGroup{name: "default"})
			}

			r.groups[len(r.groups)-1].triangles += len(tris)
			r.mesh.Triangles = append(r.mesh.Triangles, tris...)
		default:
			if _, seen := r.skipped[lineTokens[0]]; !seen {
				r.skipped[lineTokens[0]] = struct{}{}
				r.logger.Infof(`[%s: %d] skipping unsupported statement "%s"`, res.Path(), lineNum, lineTokens[0])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err)
	}

	return nil
}

func (r *wavefrontMeshReader) verifyLastParsedGroup() {
	lastGroupIndex := len(r.groups) - 1
	if lastGroupIndex >= 0 && r.groups[lastGroupIndex].triangles == 0 {
		r.logger.Warningf(`dropping group "%s" as it contains no polygons`, r.groups[lastGroupIndex].name)
		r.groups = r.groups[:lastGroupIndex]
	}
}

// Parse a triangle or quad face. Quads are split into two triangles.
func (r *wavefrontMeshReader) parseFace(lineTokens []string, relVertexOffset, relUvOffset, relNormalOffset int) ([]types.Triangle, error) {
	if len(lineTokens) < 4 || len(lineTokens) > 5 {
		return nil, errors.Errorf(`unsupported syntax for "f"; expected 3 arguments for triangular face or 4 arguments for a quad face; got %d. Select the triangulation option in your exporter`, len(lineTokens)-1)
	}

	var vertices [4]types.Vec3
	var vOffset int
	var err error
	expIndices := 0
	for arg := 0; arg < len(lineTokens)-1; arg++ {
		vTokens := strings.Split(lineTokens[arg+1], "/")

		// The first arg defines the format for the following args
		if arg == 0 {
			expIndices = len(vTokens)
		} else if len(vTokens) != expIndices {
			return nil, errors.Errorf("expected each face argument to contain %d indices; arg %d contains %d indices", expIndices, arg, len(vTokens))
		}

		// Faces must at least define a vertex coord
		if vTokens[0] == "" {
			return nil, errors.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err = selectFaceCoordIndex(vTokens[0], len(r.vertexList), relVertexOffset)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse vertex coord for face argument %d", arg)
		}
		vertices[arg] = r.vertexList[vOffset]

		if expIndices > 1 && vTokens[1] != "" {
			if _, err = selectFaceCoordIndex(vTokens[1], r.uvCount, relUvOffset); err != nil {
				return nil, errors.Wrapf(err, "could not parse tex coord for face argument %d", arg)
			}
		}

		if expIndices > 2 && vTokens[2] != "" {
			if _, err = selectFaceCoordIndex(vTokens[2], r.normalCount, relNormalOffset); err != nil {
				return nil, errors.Wrapf(err, "could not parse normal coord for face argument %d", arg)
			}
		}
	}

	tris := []types.Triangle{types.Tri(vertices[0], vertices[1], vertices[2])}
	if len(lineTokens) == 5 {
		tris = append(tris, types.Tri(vertices[0], vertices[2], vertices[3]))
	}
	return tris, nil
}

// Given an index for a face coord type (vertex, normal, tex) calculate the
// proper offset into the coord list. Wavefront format can also use negative
// indices to reference elements from the end of the coord list.
func selectFaceCoordIndex(indexToken string, coordListLen int, relOffset int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = relOffset + int(index-1)
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, errors.New("index out of bounds")
	}
	return vOffset, nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, errors.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}
