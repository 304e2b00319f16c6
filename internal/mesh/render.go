// render.go - Mesh Renderer
//
// Drives a fakegl.Pipeline through one frame of a loaded Mesh, fan
// triangulating each face from its first vertex. Grounded on
// TexturedObject::FakeGLRender: scale defaults to a zoom factor,
// optionally normalized by the mesh's objectSize; centring translates
// by the negated centroid; one material covers the whole object; and
// normals are multiplied by the uniform object scale (not renormalized)
// to cancel that scale's effect on the normal matrix, exactly as the
// source does.

package mesh

import "github.com/fakegl/fakegl"

// RenderParameters bundles the knobs the original RenderController
// exposed as UI toggles (RenderParameters.h), now passed programmatically.
type RenderParameters struct {
	ZoomScale         float32
	ScaleObject       bool
	CentreObject      bool
	EmissiveLight     float32
	SpecularExponent  float32
	TexturedRendering bool
	TextureModulation bool
	MapUVWToRGB       bool
}

// DefaultRenderParameters mirrors the reference implementation's
// built-in defaults: full-scale zoom, no auto-scale/centre, matte
// surface, no emission, untextured.
func DefaultRenderParameters() RenderParameters {
	return RenderParameters{
		ZoomScale:        1,
		SpecularExponent: 1,
	}
}

// Render submits mesh as a single triangle batch to p, honouring params.
func Render(p *fakegl.Pipeline, m *Mesh, params RenderParameters) {
	if params.TexturedRendering {
		p.Enable(fakegl.Texture2D)
		if params.TextureModulation {
			p.TexEnvMode(fakegl.TexEnvModulate)
		} else {
			p.TexEnvMode(fakegl.TexEnvReplace)
		}
	} else {
		p.Disable(fakegl.Texture2D)
	}

	scale := params.ZoomScale
	if params.ScaleObject && m.ObjectSize != 0 {
		scale /= m.ObjectSize
	}
	p.Scalef(scale, scale, scale)

	if params.CentreObject {
		p.Translatef(-m.Centroid.X, -m.Centroid.Y, -m.Centroid.Z)
	}

	emissive := [4]float32{params.EmissiveLight, params.EmissiveLight, params.EmissiveLight, 1}
	surface := [4]float32{0.7, 0.7, 0.7, 1}

	p.Begin(fakegl.Triangles)

	p.Materialfv(fakegl.MatEmission, emissive)
	p.Materialfv(fakegl.MatAmbientAndDiffuse, surface)
	p.Materialfv(fakegl.MatSpecular, surface)
	p.Materialf(fakegl.MatShininess, params.SpecularExponent)
	p.Color3f(surface[0], surface[1], surface[2])

	for _, face := range m.Faces {
		for triangle := 0; triangle < len(face)-2; triangle++ {
			for corner := 0; corner < 3; corner++ {
				faceVertex := 0
				if corner != 0 {
					faceVertex = triangle + corner
				}
				fv := face[faceVertex]
				emitCorner(p, m, fv, scale, params)
			}
		}
	}

	p.End()

	if params.TexturedRendering {
		p.Disable(fakegl.Texture2D)
	}
}

func emitCorner(p *fakegl.Pipeline, m *Mesh, fv FaceVertex, scale float32, params RenderParameters) {
	var normal fakegl.Vec3
	if fv.NormalIndex >= 0 && fv.NormalIndex < len(m.Normals) {
		normal = m.Normals[fv.NormalIndex]
	}
	p.Normal3f(normal.X*scale, normal.Y*scale, normal.Z*scale)

	var tex fakegl.Vec3
	if fv.TexCoordIndex >= 0 && fv.TexCoordIndex < len(m.TexCoords) {
		tex = m.TexCoords[fv.TexCoordIndex]
	}

	if params.MapUVWToRGB {
		colour := [4]float32{tex.X, tex.Y, tex.Z, 1}
		p.Materialfv(fakegl.MatAmbientAndDiffuse, colour)
		p.Materialfv(fakegl.MatSpecular, colour)
		p.Color3f(colour[0], colour[1], colour[2])
	}

	p.TexCoord2f(tex.X, tex.Y)

	var vertex fakegl.Vec3
	if fv.VertexIndex >= 0 && fv.VertexIndex < len(m.Vertices) {
		vertex = m.Vertices[fv.VertexIndex]
	}
	p.Vertex3f(vertex.X, vertex.Y, vertex.Z)
}
