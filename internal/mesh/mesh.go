// mesh.go - Polygon Mesh Loading
//
// Reads an OBJ-like text geometry stream (v/vn/vt/f lines) and computes
// the centroid and objectSize used by the mesh renderer's auto-centre
// and auto-scale options. Grounded on TexturedObject::ReadObjectStream:
// faces may have more than three vertices, each f token is a
// vertex/texcoord/normal index triple, and a trailing face.vertex index
// beyond the fan origin is re-derived by the renderer, not stored here.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fakegl/fakegl"
)

// FaceVertex is one corner of a polygon face: indices into the mesh's
// Vertices/TexCoords/Normals slices.
type FaceVertex struct {
	VertexIndex, TexCoordIndex, NormalIndex int
}

// Mesh is a loaded polygon mesh with precomputed centroid/objectSize.
type Mesh struct {
	Vertices  []fakegl.Vec3
	Normals   []fakegl.Vec3
	TexCoords []fakegl.Vec3
	Faces     [][]FaceVertex

	Centroid   fakegl.Vec3
	ObjectSize float32
}

// Load parses an OBJ-like geometry stream.
func Load(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			m.Normals = append(m.Normals, v)
		case "vt":
			v, err := parseTexCoord(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			m.TexCoords = append(m.TexCoords, v)
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			if len(face) < 3 {
				// a face with fewer than 3 corners can't be fan-triangulated;
				// drop it and keep reading, matching ReadObjectStream's
				// behaviour of only keeping faces with more than 2 vertices
				continue
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	m.computeCentroidAndSize()
	return m, nil
}

func parseVec3(fields []string) (fakegl.Vec3, error) {
	if len(fields) < 3 {
		return fakegl.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return fakegl.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return fakegl.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return fakegl.Vec3{}, err
	}
	return fakegl.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

func parseTexCoord(fields []string) (fakegl.Vec3, error) {
	if len(fields) < 2 {
		return fakegl.Vec3{}, fmt.Errorf("expected at least 2 components, got %d", len(fields))
	}
	u, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return fakegl.Vec3{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return fakegl.Vec3{}, err
	}
	var w float64
	if len(fields) >= 3 {
		w, err = strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return fakegl.Vec3{}, err
		}
	}
	return fakegl.Vec3{X: float32(u), Y: float32(v), Z: float32(w)}, nil
}

func parseFace(fields []string) ([]FaceVertex, error) {
	face := make([]FaceVertex, 0, len(fields))
	for _, tok := range fields {
		parts := strings.Split(tok, "/")
		fv := FaceVertex{}
		var err error
		fv.VertexIndex, err = parseIndex(parts[0])
		if err != nil {
			return nil, err
		}
		if len(parts) > 1 && parts[1] != "" {
			fv.TexCoordIndex, err = parseIndex(parts[1])
			if err != nil {
				return nil, err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			fv.NormalIndex, err = parseIndex(parts[2])
			if err != nil {
				return nil, err
			}
		}
		face = append(face, fv)
	}
	return face, nil
}

// parseIndex converts a 1-based OBJ index token to a 0-based index.
func parseIndex(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad index %q: %w", tok, err)
	}
	return n - 1, nil
}

// computeCentroidAndSize sums all vertex positions for the barycentre,
// then finds the largest distance from it to any vertex.
func (m *Mesh) computeCentroidAndSize() {
	if len(m.Vertices) == 0 {
		return
	}
	var sum fakegl.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	m.Centroid = sum.Scale(1 / float32(len(m.Vertices)))

	var size float32
	for _, v := range m.Vertices {
		d := v.Sub(m.Centroid).Length()
		if d > size {
			size = d
		}
	}
	m.ObjectSize = size
}
