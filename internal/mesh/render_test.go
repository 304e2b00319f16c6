package mesh

import (
	"strings"
	"testing"

	"github.com/fakegl/fakegl"
)

const quadOBJ = `
v -1 -1 0
v  1 -1 0
v  1  1 0
v -1  1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestRenderFanTriangulatesQuadIntoTwoTriangles(t *testing.T) {
	m, err := Load(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p := fakegl.NewPipeline(32, 32)
	p.Viewport(0, 0, 32, 32)
	p.MatrixMode(fakegl.Projection)
	p.LoadIdentity()
	p.MatrixMode(fakegl.ModelView)
	p.LoadIdentity()

	params := DefaultRenderParameters()
	params.CentreObject = false
	params.ScaleObject = false

	Render(p, m, params)

	var lit int
	fb := p.Framebuffer()
	for _, c := range fb.Pixels {
		if c.A != 0 {
			lit++
		}
	}
	if lit != len(fb.Pixels) {
		t.Fatalf("the two fan triangles of a full-viewport quad should light all %d pixels, got %d", len(fb.Pixels), lit)
	}
}

func TestRenderWithAutoScaleAndCentreDoesNotPanic(t *testing.T) {
	m, err := Load(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p := fakegl.NewPipeline(8, 8)
	params := DefaultRenderParameters()
	params.ZoomScale = 2
	params.ScaleObject = true
	params.CentreObject = true

	// must not panic even with a tiny framebuffer and default camera
	Render(p, m, params)
}
