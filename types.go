// types.go - Shared Data Model
//
// The value types passed between pipeline stages: colours, the
// framebuffer image, lighting/material parameters, and the three
// vertex representations that flow from application code through the
// vertex shader into the rasterizer and out the far side as fragments.

package fakegl

// RGBA8 is an 8-bit-per-channel colour.
type RGBA8 struct {
	R, G, B, A uint8
}

func clampToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// RGBA8FromFloat builds an RGBA8 from 0..1-range float components.
func RGBA8FromFloat(r, g, b, a float32) RGBA8 {
	return RGBA8{clampToByte(r * 255), clampToByte(g * 255), clampToByte(b * 255), clampToByte(a * 255)}
}

// Image is a software framebuffer: row 0 is the top row.
type Image struct {
	Width, Height int
	Pixels        []RGBA8
}

// NewImage allocates a width*height image, all pixels zeroed.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]RGBA8, width*height)}
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.Width && y < img.Height
}

func (img *Image) At(x, y int) RGBA8 {
	if !img.inBounds(x, y) {
		return RGBA8{}
	}
	return img.Pixels[y*img.Width+x]
}

func (img *Image) Set(x, y int, c RGBA8) {
	if !img.inBounds(x, y) {
		return
	}
	img.Pixels[y*img.Width+x] = c
}

// Fill overwrites every pixel with c.
func (img *Image) Fill(c RGBA8) {
	for i := range img.Pixels {
		img.Pixels[i] = c
	}
}

// color is an internal float RGBA used for lighting math, matching the
// vertex/fragment stages' need for precision beyond 8-bit channels.
type color struct {
	R, G, B, A float32
}

func (c color) add(o color) color {
	return color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c color) mul(o color) color {
	return color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

func (c color) scale(s float32) color {
	return color{c.R * s, c.G * s, c.B * s, c.A * s}
}

func (c color) toRGBA8() RGBA8 {
	return RGBA8FromFloat(c.R, c.G, c.B, c.A)
}

func colorFromRGBA8(c RGBA8) color {
	return color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// Material holds the Phong reflectance parameters of a surface.
type Material struct {
	Ambient   color
	Diffuse   color
	Specular  color
	Emission  color
	Shininess float32
}

// Light holds a single point light's position (already transformed into
// eye space at the time of the Light call) and intensities.
type Light struct {
	Position Vec3
	Ambient  color
	Diffuse  color
	Specular color
}

// VertexIn is the application-supplied vertex: object-space position
// plus the attributes latched from the current-surface state at the
// moment Vertex3f was called.
type VertexIn struct {
	Position Vec4
	Colour   color
	Normal   Vec3
	TexCoord Vec3
	ModelView Mat4
	Project   Mat4
}

// VertexScreen is a vertex after the vertex shader: position in clip
// space on its way to the screen, plus interpolatable attributes.
type VertexScreen struct {
	Position      Vec3 // screen-space x,y; z in [-1,1] pre-viewport
	Colour        color
	Normal        Vec3
	TexCoord      Vec3
	ModelViewCoord Vec4 // eye-space position, for per-fragment lighting
	InvW          float32
}

func lerpVertexScreen(a, b VertexScreen, t float32) VertexScreen {
	return VertexScreen{
		Position: lerpVec3(a.Position, b.Position, t),
		Colour:   a.Colour.scale(1 - t).add(b.Colour.scale(t)),
		Normal:   lerpVec3(a.Normal, b.Normal, t),
		TexCoord: lerpVec3(a.TexCoord, b.TexCoord, t),
		ModelViewCoord: Vec4{
			lerpFloat32(a.ModelViewCoord.X, b.ModelViewCoord.X, t),
			lerpFloat32(a.ModelViewCoord.Y, b.ModelViewCoord.Y, t),
			lerpFloat32(a.ModelViewCoord.Z, b.ModelViewCoord.Z, t),
			lerpFloat32(a.ModelViewCoord.W, b.ModelViewCoord.W, t),
		},
		InvW: lerpFloat32(a.InvW, b.InvW, t),
	}
}

// Fragment is a single rasterized sample awaiting the fragment shader.
type Fragment struct {
	Row, Col       int
	Colour         color
	Normal         Vec3
	TexCoord       Vec3
	ModelViewCoord Vec4
	Depth          float32 // 0 (near) .. 1 (far)
}

// MatrixStack is a stack of Mat4, with PushMatrix duplicating the
// current top rather than pushing a fresh identity (see SPEC_FULL.md
// §11: the source this spec was distilled from does the latter, which
// is treated here as a bug and corrected).
type MatrixStack struct {
	stack []Mat4
}

func newMatrixStack() *MatrixStack {
	return &MatrixStack{stack: []Mat4{Identity4()}}
}

func (s *MatrixStack) Top() Mat4 { return s.stack[len(s.stack)-1] }

func (s *MatrixStack) SetTop(m Mat4) { s.stack[len(s.stack)-1] = m }

func (s *MatrixStack) Push() {
	s.stack = append(s.stack, s.Top())
}

func (s *MatrixStack) Pop() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}
