// pipeline.go - FakeGL Core: the Immediate-Mode Pipeline Driver
//
// Pipeline wires the state machine, vertex/fragment shaders, and
// rasterizers into the Begin/End submission model. Mirrors the way
// VoodooEngine owns both the register-shadow state and the backend
// that actually draws pixels, except there is exactly one caller here
// (no concurrent register writes), so no locking is needed.

package fakegl

// Pipeline is a single-threaded, cooperative rendering context: one
// framebuffer, one depth buffer, one state machine, one bound texture.
type Pipeline struct {
	state *State

	colour *Image
	depth  []float32

	gouraud Shader
	phong   Shader
	sampler *Sampler

	pendingFragments []Fragment
}

// NewPipeline allocates a pipeline targeting a width*height framebuffer.
func NewPipeline(width, height int) *Pipeline {
	p := &Pipeline{
		state:   newState(),
		colour:  NewImage(width, height),
		depth:   make([]float32, width*height),
		gouraud: GouraudShader{},
		phong:   PhongShader{},
	}
	p.state.Viewport(0, 0, width, height)
	for i := range p.depth {
		p.depth[i] = 1
	}
	return p
}

func (p *Pipeline) Width() int  { return p.colour.Width }
func (p *Pipeline) Height() int { return p.colour.Height }

// Framebuffer returns the current colour buffer.
func (p *Pipeline) Framebuffer() *Image { return p.colour }

// --- state machine passthroughs -------------------------------------------

func (p *Pipeline) MatrixMode(mode int)                     { p.state.MatrixMode(mode) }
func (p *Pipeline) PushMatrix()                              { p.state.PushMatrix() }
func (p *Pipeline) PopMatrix()                                { p.state.PopMatrix() }
func (p *Pipeline) LoadIdentity()                             { p.state.LoadIdentity() }
func (p *Pipeline) MultMatrixf(m Mat4)                        { p.state.MultMatrix(m) }
func (p *Pipeline) Translatef(x, y, z float32)                { p.state.Translatef(x, y, z) }
func (p *Pipeline) Scalef(x, y, z float32)                    { p.state.Scalef(x, y, z) }
func (p *Pipeline) Rotatef(degrees, x, y, z float32)          { p.state.Rotatef(degrees, x, y, z) }
func (p *Pipeline) Frustum(l, r, b, t, n, f float32)          { p.state.Frustum(l, r, b, t, n, f) }
func (p *Pipeline) Ortho(l, r, b, t, n, f float32)            { p.state.Ortho(l, r, b, t, n, f) }
func (p *Pipeline) Viewport(x, y, w, h int)                   { p.state.Viewport(x, y, w, h) }
func (p *Pipeline) PointSize(size float32)                    { p.state.PointSize(size) }
func (p *Pipeline) LineWidth(width float32)                   { p.state.LineWidth(width) }
func (p *Pipeline) Color3f(r, g, b float32)                   { p.state.Color3f(r, g, b) }
func (p *Pipeline) Normal3f(x, y, z float32)                  { p.state.Normal3f(x, y, z) }
func (p *Pipeline) TexCoord2f(u, v float32)                   { p.state.TexCoord2f(u, v) }
func (p *Pipeline) ClearColor(r, g, b, a float32)             { p.state.ClearColor(r, g, b, a) }
func (p *Pipeline) TexEnvMode(mode int)                       { p.state.TexEnvMode(mode) }
func (p *Pipeline) Materialf(param int, value float32)        { p.state.Materialf(param, value) }
func (p *Pipeline) Materialfv(param int, rgba [4]float32)     { p.state.Materialfv(param, rgba) }
func (p *Pipeline) Light(param int, values [4]float32)        { p.state.Light(param, values) }

// Enable turns on a pipeline feature; enabling DEPTH_TEST (re)sizes the
// depth buffer to the current framebuffer if it hasn't been already.
func (p *Pipeline) Enable(property int) {
	p.state.Enable(property)
	if property == DepthTest && len(p.depth) != len(p.colour.Pixels) {
		p.depth = make([]float32, len(p.colour.Pixels))
		for i := range p.depth {
			p.depth[i] = 1
		}
	}
}

func (p *Pipeline) Disable(property int) { p.state.Disable(property) }

// TexImage2D binds img as the single texture unit's image.
func (p *Pipeline) TexImage2D(img *Image) {
	if p.sampler == nil {
		p.sampler = &Sampler{}
	}
	p.sampler.Image = img
}

// --- drawing lifecycle ------------------------------------------------------

// Begin starts collecting vertices for one primitive batch of drawType
// (Points, Lines, or Triangles).
func (p *Pipeline) Begin(drawType int) {
	p.state.drawType = drawType
	p.state.inPrimitive = true
	p.state.vertexQueue = p.state.vertexQueue[:0]
}

// Vertex3f latches the current colour/normal/texcoord onto a new
// vertex at (x, y, z) and queues it for the next End call.
func (p *Pipeline) Vertex3f(x, y, z float32) {
	if !p.state.inPrimitive {
		return
	}
	v := VertexIn{
		Position:  Vec4{x, y, z, 1},
		Colour:    p.state.surface.colour,
		Normal:    p.state.surface.normal,
		TexCoord:  p.state.surface.texCoord,
		ModelView: p.state.modelView.Top(),
		Project:   p.state.projection.Top(),
	}
	p.state.vertexQueue = append(p.state.vertexQueue, v)
}

// Clear clears the colour and/or depth buffers per mask.
func (p *Pipeline) Clear(mask int) {
	if mask&ColorBufferBit != 0 {
		p.colour.Fill(p.state.clearColour.toRGBA8())
	}
	if mask&DepthBufferBit != 0 {
		for i := range p.depth {
			p.depth[i] = p.state.clearDepth
		}
	}
}

func (p *Pipeline) activeShader() Shader {
	if p.state.isEnabled(Lighting) && p.state.isEnabled(PhongShading) {
		return p.phong
	}
	return p.gouraud
}

func (p *Pipeline) activeLight() *Light {
	if p.state.isEnabled(Lighting) && p.state.hasLight {
		l := p.state.light
		return &l
	}
	return nil
}

// normalMatrix computes the inverse-transpose of the current
// model-view matrix, used to transform normals without distortion
// under non-uniform scale. End computes it once per run of queued
// vertices that share the same model-view matrix, not per vertex.
func (p *Pipeline) normalMatrix(modelView Mat4) Mat4 {
	return modelView.Inverse().Transpose()
}

// End transforms and rasterizes every vertex queued since Begin,
// dispatching triangles/lines/points to their respective rasterizers.
func (p *Pipeline) End() {
	defer func() {
		p.state.inPrimitive = false
		p.state.drawType = -1
		p.state.vertexQueue = p.state.vertexQueue[:0]
	}()

	if !p.state.inPrimitive || len(p.state.vertexQueue) == 0 {
		return
	}

	shader := p.activeShader()
	light := p.activeLight()
	material := p.state.material

	verticesPerPrimitive := map[int]int{Points: 1, Lines: 2, Triangles: 3}[p.state.drawType]
	if verticesPerPrimitive == 0 {
		return
	}

	var screenVerts []VertexScreen
	var lastNormalMat Mat4
	for i, v := range p.state.vertexQueue {
		if i == 0 || v.ModelView != p.state.vertexQueue[i-1].ModelView {
			lastNormalMat = p.normalMatrix(v.ModelView)
		}
		sv := shader.VertexShader(v, lastNormalMat, light, material)
		sv.Position = p.normalizeToWindow(sv.Position)
		screenVerts = append(screenVerts, sv)
	}

	textured := p.state.isEnabled(Texture2D) && p.sampler != nil && p.sampler.Image != nil
	sample := func(u, v float32) color { return p.sampler.Sample(u, v) }

	for i := 0; i+verticesPerPrimitive <= len(screenVerts); i += verticesPerPrimitive {
		group := screenVerts[i : i+verticesPerPrimitive]
		switch p.state.drawType {
		case Points:
			p.rasterizePoint(group[0])
		case Lines:
			p.rasterizeLine(group[0], group[1])
		case Triangles:
			p.rasterizeTriangle(group[0], group[1], group[2])
		}
	}

	for _, f := range p.pendingFragments {
		p.shadeAndWrite(f, shader, material, light, sample, textured)
	}
	p.pendingFragments = p.pendingFragments[:0]
}

// normalizeToWindow applies the viewport transform: clip-space xy in
// [-1,1] maps to the viewport rect, with an explicit Y flip so that
// framebuffer row 0 is the top of the image; z maps to [0,1] depth.
func (p *Pipeline) normalizeToWindow(pos Vec3) Vec3 {
	halfW := float32(p.state.viewportWidth) / 2
	halfH := float32(p.state.viewportHeight) / 2
	cx := float32(p.state.viewportX) + halfW
	cy := float32(p.state.viewportY) + halfH

	x := cx + halfW*pos.X
	y := float32(p.state.viewportHeight) - cy - halfH*pos.Y
	z := (pos.Z + 1) * 0.5
	return Vec3{x, y, z}
}
