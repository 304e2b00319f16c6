// rasterize.go - Point, Line, and Triangle Rasterizers
//
// Grounded on voodoo_software.go's rasterizeTriangle/edgeFunction
// (half-plane barycentric fill, backface handling via signed area) for
// the triangle path, and on the reference RasterisePoint/
// RasteriseLineSegment for point blocks and major-axis line stepping
// including its documented diagonal line-width thickening.

package fakegl

// edgeFunction returns twice the signed area of the triangle (a,b,c);
// its sign indicates which side of the directed edge a->b the point c
// falls on.
func edgeFunction(ax, ay, bx, by, cx, cy float32) float32 {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat32_3(a, b, c float32) float32 {
	return maxFloat32(maxFloat32(a, b), c)
}

func minFloat32_3(a, b, c float32) float32 {
	return minFloat32(minFloat32(a, b), c)
}

// depthTest reports whether newDepth beats the buffer's current value
// at index idx, using a strict '>' rejection: smaller depth (nearer)
// wins, matching the 0=near/1=far convention.
func (p *Pipeline) depthTest(idx int, newDepth float32) bool {
	if !p.state.isEnabled(DepthTest) {
		return true
	}
	if idx < 0 || idx >= len(p.depth) {
		return false
	}
	return newDepth <= p.depth[idx]
}

func (p *Pipeline) writeDepth(idx int, newDepth float32) {
	if p.state.isEnabled(DepthTest) && idx >= 0 && idx < len(p.depth) {
		p.depth[idx] = newDepth
	}
}

// rasterizePoint fills an axis-aligned pointSize x pointSize block
// centred (by truncation, matching the reference) on the vertex.
func (p *Pipeline) rasterizePoint(v VertexScreen) {
	size := int(p.state.pointSize)
	startX := int(v.Position.X - p.state.pointSize/2)
	startY := int(v.Position.Y - p.state.pointSize/2)

	if size <= 0 {
		p.emitIfVisible(startX, startY, v)
		return
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			p.emitIfVisible(startX+j, startY+i, v)
		}
	}
}

func (p *Pipeline) emitIfVisible(x, y int, v VertexScreen) {
	if x < 0 || y < 0 || x >= p.colour.Width || y >= p.colour.Height {
		return
	}
	idx := y*p.colour.Width + x
	if !p.depthTest(idx, v.Position.Z) {
		return
	}
	p.writeDepth(idx, v.Position.Z)
	p.pendingFragments = append(p.pendingFragments, Fragment{
		Row: y, Col: x,
		Colour: v.Colour, Normal: v.Normal, TexCoord: v.TexCoord,
		ModelViewCoord: v.ModelViewCoord, Depth: v.Position.Z,
	})
}

// rasterizeLine draws a line between two screen vertices by stepping
// one pixel at a time along the major axis, interpolating position and
// attributes at t = i/steps and truncating to pixel coordinates. This
// is a floating-point DDA, not the integer Bresenham midpoint algorithm.
// Line width replicates each stepped pixel diagonally (row+j, col+j)
// rather than perpendicular to the line, an intentional quirk carried
// over unchanged from the source this pipeline is modelled on.
func (p *Pipeline) rasterizeLine(v0, v1 VertexScreen) {
	x0, y0 := v0.Position.X, v0.Position.Y
	x1, y1 := v1.Position.X, v1.Position.Y

	dx := absFloat32(x1 - x0)
	dy := absFloat32(y1 - y0)

	steps := int(maxFloat32(dx, dy))
	if steps == 0 {
		p.emitLinePixel(int(x0), int(y0), v0)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		lerped := lerpVertexScreen(v0, v1, t)
		sx := int(lerped.Position.X)
		sy := int(lerped.Position.Y)
		width := int(p.state.lineWidth)
		if width <= 0 {
			width = 1
		}
		for j := 0; j < width; j++ {
			p.emitLinePixel(sx+j, sy+j, lerped)
		}
	}
}

func (p *Pipeline) emitLinePixel(x, y int, v VertexScreen) {
	p.emitIfVisible(x, y, v)
}

func absFloat32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// rasterizeTriangle fills a triangle with screen-space barycentric
// interpolation (no perspective-correct divide by w), discarding
// degenerate (zero-area) triangles.
func (p *Pipeline) rasterizeTriangle(v0, v1, v2 VertexScreen) {
	area := edgeFunction(v0.Position.X, v0.Position.Y, v1.Position.X, v1.Position.Y, v2.Position.X, v2.Position.Y)
	if area == 0 {
		return
	}
	if area < 0 {
		v0, v2 = v2, v0
		area = -area
	}
	invArea := 1 / area

	minX := minFloat32_3(v0.Position.X, v1.Position.X, v2.Position.X)
	maxX := maxFloat32_3(v0.Position.X, v1.Position.X, v2.Position.X)
	minY := minFloat32_3(v0.Position.Y, v1.Position.Y, v2.Position.Y)
	maxY := maxFloat32_3(v0.Position.Y, v1.Position.Y, v2.Position.Y)

	startX := maxInt(0, int(minX))
	startY := maxInt(0, int(minY))
	endX := minInt(p.colour.Width-1, int(maxX))
	endY := minInt(p.colour.Height-1, int(maxY))

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5

			w0 := edgeFunction(v1.Position.X, v1.Position.Y, v2.Position.X, v2.Position.Y, px, py)
			w1 := edgeFunction(v2.Position.X, v2.Position.Y, v0.Position.X, v0.Position.Y, px, py)
			w2 := edgeFunction(v0.Position.X, v0.Position.Y, v1.Position.X, v1.Position.Y, px, py)

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			w0 *= invArea
			w1 *= invArea
			w2 *= invArea

			z := w0*v0.Position.Z + w1*v1.Position.Z + w2*v2.Position.Z

			idx := y*p.colour.Width + x
			if !p.depthTest(idx, z) {
				continue
			}
			p.writeDepth(idx, z)

			col := v0.Colour.scale(w0).add(v1.Colour.scale(w1)).add(v2.Colour.scale(w2))
			normal := Vec3{
				w0*v0.Normal.X + w1*v1.Normal.X + w2*v2.Normal.X,
				w0*v0.Normal.Y + w1*v1.Normal.Y + w2*v2.Normal.Y,
				w0*v0.Normal.Z + w1*v1.Normal.Z + w2*v2.Normal.Z,
			}
			texCoord := Vec3{
				w0*v0.TexCoord.X + w1*v1.TexCoord.X + w2*v2.TexCoord.X,
				w0*v0.TexCoord.Y + w1*v1.TexCoord.Y + w2*v2.TexCoord.Y,
				w0*v0.TexCoord.Z + w1*v1.TexCoord.Z + w2*v2.TexCoord.Z,
			}
			mv := Vec4{
				w0*v0.ModelViewCoord.X + w1*v1.ModelViewCoord.X + w2*v2.ModelViewCoord.X,
				w0*v0.ModelViewCoord.Y + w1*v1.ModelViewCoord.Y + w2*v2.ModelViewCoord.Y,
				w0*v0.ModelViewCoord.Z + w1*v1.ModelViewCoord.Z + w2*v2.ModelViewCoord.Z,
				w0*v0.ModelViewCoord.W + w1*v1.ModelViewCoord.W + w2*v2.ModelViewCoord.W,
			}

			p.pendingFragments = append(p.pendingFragments, Fragment{
				Row: y, Col: x, Colour: col, Normal: normal, TexCoord: texCoord,
				ModelViewCoord: mv, Depth: z,
			})
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// shadeAndWrite runs the fragment shader for f and writes the result
// into the colour buffer, honouring REPLACE vs MODULATE texture
// environment mode.
func (p *Pipeline) shadeAndWrite(f Fragment, shader Shader, material Material, light *Light, sample func(u, v float32) color, textured bool) {
	if f.Row < 0 || f.Col < 0 || f.Row >= p.colour.Height || f.Col >= p.colour.Width {
		return
	}
	shaded := shader.FragmentShader(f, material, light, sample, textured)
	if p.state.texEnvMode == TexEnvModulate {
		shaded = shaded.mul(f.Colour)
	}
	p.colour.Set(f.Col, f.Row, shaded.toRGBA8())
}
