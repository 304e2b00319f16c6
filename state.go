// state.go - Pipeline State Machine
//
// Constants and the State struct mirror the masked-bitfield update
// pattern used throughout the Voodoo register state (see
// voodoo_constants.go's VOODOO_FBZ_*/VOODOO_CC_* bit groups):
// Light/Materialfv take a parameter mask selecting which sub-fields of
// a call to update. Enable flags are small integer ids kept in a map.

package fakegl

// Primitive draw types for Begin/End.
const (
	Points = iota
	Lines
	Triangles
)

// Clear mask bits.
const (
	ColorBufferBit = 1 << iota
	DepthBufferBit
)

// Enable/Disable properties.
const (
	Lighting = iota + 1
	Texture2D
	DepthTest
	PhongShading
)

// Matrix stack selectors for MatrixMode.
const (
	ModelView = iota + 1
	Projection
)

// Material parameter masks for Materialf/Materialfv (bitwise-OR'able,
// mirroring the source's FAKEGL_AMBIENT_AND_DIFFUSE = AMBIENT|DIFFUSE).
const (
	MatAmbient = 1 << iota
	MatDiffuse
	MatSpecular
	MatEmission
	MatShininess
)

const MatAmbientAndDiffuse = MatAmbient | MatDiffuse

// Light parameter masks for the Light call.
const (
	LightPosition = 1 << iota
	LightAmbient
	LightDiffuse
	LightSpecular
)

// Texture environment modes.
const (
	TexEnvModulate = iota + 1
	TexEnvReplace
)

// currentSurface latches the per-vertex attributes set by Color3f,
// Normal3f, and TexCoord2f until the next Vertex3f call consumes them.
type currentSurface struct {
	colour   color
	normal   Vec3
	texCoord Vec3
}

// State holds every piece of mutable pipeline state: matrix stacks,
// enable flags, lighting/material/texture parameters, and the
// in-progress vertex/primitive queues for the current Begin/End block.
type State struct {
	modelView  *MatrixStack
	projection *MatrixStack
	matrixMode int

	enabled map[int]bool

	surface currentSurface

	pointSize float32
	lineWidth float32

	material Material
	light    Light
	hasLight bool

	texEnvMode int

	clearColour color
	clearDepth  float32

	viewportX, viewportY          int
	viewportWidth, viewportHeight int

	drawType    int
	inPrimitive bool
	vertexQueue []VertexIn
}

func newState() *State {
	return &State{
		modelView:   newMatrixStack(),
		projection:  newMatrixStack(),
		matrixMode:  ModelView,
		enabled:     make(map[int]bool),
		pointSize:   1,
		lineWidth:   1,
		texEnvMode:  TexEnvReplace,
		clearDepth:  1,
		drawType:    -1,
		material:    Material{Shininess: 1},
	}
}

func (s *State) activeStack() *MatrixStack {
	if s.matrixMode == Projection {
		return s.projection
	}
	return s.modelView
}

func (s *State) PushMatrix() { s.activeStack().Push() }
func (s *State) PopMatrix()  { s.activeStack().Pop() }
func (s *State) LoadIdentity() { s.activeStack().SetTop(Identity4()) }

func (s *State) MultMatrix(m Mat4) {
	stack := s.activeStack()
	stack.SetTop(stack.Top().Mul(m))
}

func (s *State) MatrixMode(mode int) { s.matrixMode = mode }

func (s *State) Translatef(x, y, z float32) { s.MultMatrix(Translation(x, y, z)) }
func (s *State) Scalef(x, y, z float32)     { s.MultMatrix(Scaling(x, y, z)) }
func (s *State) Rotatef(degrees, x, y, z float32) {
	const piOver180 = 3.14159265358979323846 / 180
	s.MultMatrix(Rotation(Vec3{x, y, z}, degrees*piOver180))
}

func (s *State) Frustum(left, right, bottom, top, near, far float32) {
	s.MultMatrix(Frustum(left, right, bottom, top, near, far))
}

func (s *State) Ortho(left, right, bottom, top, near, far float32) {
	s.MultMatrix(Ortho(left, right, bottom, top, near, far))
}

func (s *State) Viewport(x, y, width, height int) {
	s.viewportX, s.viewportY, s.viewportWidth, s.viewportHeight = x, y, width, height
}

func (s *State) PointSize(size float32) { s.pointSize = size }
func (s *State) LineWidth(width float32) { s.lineWidth = width }

func (s *State) Color3f(r, g, b float32) { s.surface.colour = color{r, g, b, 1} }
func (s *State) Normal3f(x, y, z float32) { s.surface.normal = Vec3{x, y, z} }
func (s *State) TexCoord2f(u, v float32) { s.surface.texCoord = Vec3{u, v, 0} }

func (s *State) ClearColor(r, g, b, a float32) { s.clearColour = color{r, g, b, a} }

func (s *State) TexEnvMode(mode int) { s.texEnvMode = mode }

// Materialf sets a single scalar material parameter, currently only
// Shininess (matching the source, where Materialf only ever carries
// the specular exponent).
func (s *State) Materialf(param int, value float32) {
	if param&MatShininess != 0 {
		s.material.Shininess = value
	}
}

// Materialfv sets one or more 4-component material parameters selected
// by the param bitmask.
func (s *State) Materialfv(param int, rgba [4]float32) {
	c := color{rgba[0], rgba[1], rgba[2], rgba[3]}
	if param&MatAmbient != 0 {
		s.material.Ambient = c
	}
	if param&MatDiffuse != 0 {
		s.material.Diffuse = c
	}
	if param&MatSpecular != 0 {
		s.material.Specular = c
	}
	if param&MatEmission != 0 {
		s.material.Emission = c
	}
}

// Light sets one or more light parameters selected by the param
// bitmask. A position update is transformed by the current top of the
// active matrix stack at the time of the call, matching the source's
// "light position times whatever matrix stack is selected right now".
func (s *State) Light(param int, values [4]float32) {
	s.hasLight = true
	if param&LightPosition != 0 {
		obj := Vec3{values[0], values[1], values[2]}
		s.light.Position = s.activeStack().Top().MulPoint(obj)
	}
	if param&LightAmbient != 0 {
		s.light.Ambient = color{values[0], values[1], values[2], values[3]}
	}
	if param&LightDiffuse != 0 {
		s.light.Diffuse = color{values[0], values[1], values[2], values[3]}
	}
	if param&LightSpecular != 0 {
		s.light.Specular = color{values[0], values[1], values[2], values[3]}
	}
}

// Enable turns on a pipeline feature. Enabling LIGHTING selects Phong
// or Gouraud shading depending on whether PHONG_SHADING is also set.
func (s *State) Enable(property int) { s.enabled[property] = true }

// Disable turns off a pipeline feature.
func (s *State) Disable(property int) { s.enabled[property] = false }

func (s *State) isEnabled(property int) bool { return s.enabled[property] }
