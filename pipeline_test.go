package fakegl

import "testing"

func TestPushMatrixDuplicatesTop(t *testing.T) {
	s := newState()
	s.Translatef(1, 2, 3)
	before := s.activeStack().Top()

	s.PushMatrix()
	after := s.activeStack().Top()

	if after != before {
		t.Fatalf("PushMatrix must duplicate the current top, got %v want %v", after, before)
	}

	// mutating after push must not affect the matrix below it
	s.Translatef(10, 0, 0)
	s.PopMatrix()
	if s.activeStack().Top() != before {
		t.Fatalf("PopMatrix did not restore the pre-push matrix")
	}
}

func TestPopMatrixNeverUnderflows(t *testing.T) {
	s := newState()
	for i := 0; i < 5; i++ {
		s.PopMatrix()
	}
	if s.activeStack().Top() != Identity4() {
		t.Fatalf("popping an empty stack should leave the identity on top")
	}
}

func TestMatrixModeSelectsIndependentStacks(t *testing.T) {
	s := newState()
	s.MatrixMode(ModelView)
	s.Translatef(1, 0, 0)
	s.MatrixMode(Projection)
	s.Translatef(0, 1, 0)

	if s.modelView.Top() == s.projection.Top() {
		t.Fatalf("model-view and projection stacks must be independent")
	}
}

func TestLightPositionTransformedByActiveMatrix(t *testing.T) {
	s := newState()
	s.MatrixMode(ModelView)
	s.Translatef(5, 0, 0)
	s.Light(LightPosition, [4]float32{0, 0, 0, 1})

	want := Vec3{5, 0, 0}
	if s.light.Position != want {
		t.Fatalf("light position = %v, want %v (transformed by current top matrix)", s.light.Position, want)
	}
}

func TestClearFillsColourBuffer(t *testing.T) {
	p := NewPipeline(4, 4)
	p.ClearColor(1, 0, 0, 1)
	p.Clear(ColorBufferBit)

	want := RGBA8FromFloat(1, 0, 0, 1)
	for i, c := range p.colour.Pixels {
		if c != want {
			t.Fatalf("pixel %d = %v, want %v", i, c, want)
		}
	}
}

func TestTriangleRasterizationFillsInterior(t *testing.T) {
	p := NewPipeline(16, 16)
	p.Viewport(0, 0, 16, 16)
	p.MatrixMode(Projection)
	p.LoadIdentity()
	p.MatrixMode(ModelView)
	p.LoadIdentity()

	p.Color3f(1, 1, 1)
	p.Begin(Triangles)
	p.Vertex3f(-0.5, -0.5, 0)
	p.Vertex3f(0.5, -0.5, 0)
	p.Vertex3f(0, 0.5, 0)
	p.End()

	centre := p.colour.At(8, 8)
	if centre.A == 0 {
		t.Fatalf("expected the triangle's centre pixel to be written, got zero alpha")
	}
}

func TestDegenerateTriangleIsDiscarded(t *testing.T) {
	p := NewPipeline(8, 8)
	p.Viewport(0, 0, 8, 8)
	before := make([]RGBA8, len(p.colour.Pixels))
	copy(before, p.colour.Pixels)

	p.Begin(Triangles)
	p.Vertex3f(0, 0, 0)
	p.Vertex3f(0, 0, 0)
	p.Vertex3f(0, 0, 0)
	p.End()

	for i, c := range p.colour.Pixels {
		if c != before[i] {
			t.Fatalf("degenerate (zero-area) triangle should not write any pixels")
		}
	}
}

func TestDepthTestRejectsFartherFragment(t *testing.T) {
	p := NewPipeline(4, 4)
	p.Enable(DepthTest)
	idx := 0
	p.depth[idx] = 0.1

	if p.depthTest(idx, 0.9) {
		t.Fatalf("a fragment farther than the stored depth must fail the depth test")
	}
	if !p.depthTest(idx, 0.05) {
		t.Fatalf("a fragment nearer than the stored depth must pass the depth test")
	}
}

func TestDepthTestAlwaysPassesWhenDisabled(t *testing.T) {
	p := NewPipeline(4, 4)
	p.depth[0] = 0.0
	if !p.depthTest(0, 1.0) {
		t.Fatalf("depth test must always pass when DEPTH_TEST is disabled")
	}
}
