package mesh

import (
	"strings"
	"testing"
)

const cubeOBJ = `
# a unit cube centred at the origin
v -1 -1 -1
v  1 -1 -1
v  1  1 -1
v -1  1 -1
v -1 -1  1
v  1 -1  1
v  1  1  1
v -1  1  1
vn 0 0 1
vt 0 0
f 1/1/1 2/1/1 3/1/1 4/1/1
f 5/1/1 6/1/1 7/1/1 8/1/1
`

func TestLoadParsesVerticesAndFaces(t *testing.T) {
	m, err := Load(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Vertices) != 8 {
		t.Fatalf("got %d vertices, want 8", len(m.Vertices))
	}
	if len(m.Faces) != 2 {
		t.Fatalf("got %d faces, want 2", len(m.Faces))
	}
	if len(m.Faces[0]) != 4 {
		t.Fatalf("first face has %d corners, want 4 (a quad)", len(m.Faces[0]))
	}
}

func TestCentroidIsOrigin(t *testing.T) {
	m, err := Load(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !almostZero(m.Centroid.X) || !almostZero(m.Centroid.Y) || !almostZero(m.Centroid.Z) {
		t.Fatalf("centroid of a cube centred at the origin = %v, want ~(0,0,0)", m.Centroid)
	}
}

func TestObjectSizeIsMaxDistanceFromCentroid(t *testing.T) {
	m, err := Load(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// every corner of a unit cube is sqrt(3) from the centre
	want := float32(1.7320508)
	if diff := m.ObjectSize - want; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("objectSize = %v, want ~%v", m.ObjectSize, want)
	}
}

func TestFaceWithTooFewVerticesIsDropped(t *testing.T) {
	m, err := Load(strings.NewReader("v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1/1/1 2/1/1\nf 1/1/1 2/1/1 3/1/1\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Faces) != 1 {
		t.Fatalf("got %d faces, want 1 (the 2-vertex face should be silently dropped)", len(m.Faces))
	}
}

func almostZero(v float32) bool {
	return v > -1e-4 && v < 1e-4
}
