// shader.go - Gouraud and Phong Shading
//
// Both shaders implement the same Shader interface; the difference is
// where the Phong illumination model is evaluated. Gouraud evaluates it
// once per vertex and lets the rasterizer interpolate the lit colour.
// Phong only transforms attributes in the vertex stage and evaluates
// the illumination model per fragment from interpolated normal/position.

package fakegl

import "math"

// Shader is the pluggable per-vertex/per-fragment shading stage.
type Shader interface {
	VertexShader(v VertexIn, normalMatrix Mat4, light *Light, material Material) VertexScreen
	FragmentShader(f Fragment, material Material, light *Light, sample func(u, v float32) color, textured bool) color
}

func reflectVec(incident, normal Vec3) Vec3 {
	return incident.Sub(normal.Scale(2 * incident.Dot(normal)))
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func powFloat32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

// phongLighting evaluates the Phong illumination model at a single
// point given its eye-space position and normal.
func phongLighting(position, normal Vec3, light *Light, material Material) color {
	normal = normal.Normalize()
	eyeDir := position.Scale(-1).Normalize()
	lightDir := light.Position.Sub(position).Normalize()
	refl := reflectVec(lightDir, normal).Normalize()

	diffuseFactor := maxFloat32(lightDir.Dot(normal), 0)
	specularFactor := powFloat32(maxFloat32(eyeDir.Dot(refl), 0), material.Shininess)

	ambient := light.Ambient.mul(material.Ambient)
	diffuse := light.Diffuse.mul(material.Diffuse).scale(diffuseFactor)
	specular := light.Specular.mul(material.Specular).scale(specularFactor)
	return ambient.add(diffuse).add(specular).add(material.Emission)
}

// GouraudShader lights each vertex once; the fragment stage only
// samples/modulates a bound texture.
type GouraudShader struct{}

func (GouraudShader) VertexShader(v VertexIn, normalMatrix Mat4, light *Light, material Material) VertexScreen {
	eyePos := v.ModelView.MulVec4(v.Position)
	clipPos := v.Project.MulVec4(eyePos)
	eyeNormal := normalMatrix.MulDir(v.Normal)

	out := VertexScreen{
		Position:       clipPos.Point(),
		Normal:         eyeNormal,
		TexCoord:       v.TexCoord,
		ModelViewCoord: eyePos,
		Colour:         v.Colour,
	}
	if clipPos.W != 0 {
		out.InvW = 1 / clipPos.W
	} else {
		out.InvW = 1
	}

	if light != nil {
		lit := phongLighting(eyePos.Vector(), eyeNormal, light, material)
		out.Colour = v.Colour.mul(lit)
	}
	out.Colour.A = 1
	return out
}

func (GouraudShader) FragmentShader(f Fragment, material Material, light *Light, sample func(u, v float32) color, textured bool) color {
	if textured && sample != nil {
		return sample(f.TexCoord.X, f.TexCoord.Y)
	}
	return f.Colour
}

// PhongShader only transforms attributes per vertex; illumination is
// evaluated per fragment from the interpolated normal and position.
type PhongShader struct{}

func (PhongShader) VertexShader(v VertexIn, normalMatrix Mat4, light *Light, material Material) VertexScreen {
	eyePos := v.ModelView.MulVec4(v.Position)
	clipPos := v.Project.MulVec4(eyePos)
	eyeNormal := normalMatrix.MulDir(v.Normal)

	out := VertexScreen{
		Position:       clipPos.Point(),
		Normal:         eyeNormal,
		TexCoord:       v.TexCoord,
		ModelViewCoord: eyePos,
		Colour:         v.Colour,
	}
	if clipPos.W != 0 {
		out.InvW = 1 / clipPos.W
	} else {
		out.InvW = 1
	}
	return out
}

func (PhongShader) FragmentShader(f Fragment, material Material, light *Light, sample func(u, v float32) color, textured bool) color {
	base := f.Colour
	if textured && sample != nil {
		base = sample(f.TexCoord.X, f.TexCoord.Y)
	}
	if light == nil {
		return base
	}
	lit := phongLighting(f.ModelViewCoord.Vector(), f.Normal, light, material)
	return lit.mul(base)
}
