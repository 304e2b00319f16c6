package fakegl

import "testing"

func TestReflectVec(t *testing.T) {
	incident := Vec3{1, -1, 0}
	normal := Vec3{0, 1, 0}
	got := reflectVec(incident, normal)
	want := Vec3{1, 1, 0}
	if got != want {
		t.Fatalf("reflect(%v, %v) = %v, want %v", incident, normal, got, want)
	}
}

func TestGouraudShaderLightsOncePerVertex(t *testing.T) {
	v := VertexIn{
		Position:  Vec4{0, 0, 0, 1},
		Colour:    color{1, 1, 1, 1},
		Normal:    Vec3{0, 0, 1},
		ModelView: Identity4(),
		Project:   Identity4(),
	}
	light := &Light{
		Position: Vec3{0, 0, 5},
		Ambient:  color{0.1, 0.1, 0.1, 1},
		Diffuse:  color{1, 1, 1, 1},
	}
	material := Material{Ambient: color{1, 1, 1, 1}, Diffuse: color{1, 1, 1, 1}}

	out := GouraudShader{}.VertexShader(v, Identity4(), light, material)
	if out.Colour.R <= 0 {
		t.Fatalf("lit gouraud vertex colour should be nonzero, got %v", out.Colour)
	}

	// Without a light, the fragment stage must not apply any lighting itself.
	frag := Fragment{Colour: out.Colour}
	shaded := GouraudShader{}.FragmentShader(frag, material, nil, nil, false)
	if shaded != out.Colour {
		t.Fatalf("gouraud fragment stage must pass interpolated colour through unchanged when untextured")
	}
}

func TestPhongShaderDefersLightingToFragment(t *testing.T) {
	v := VertexIn{
		Position:  Vec4{0, 0, 0, 1},
		Colour:    color{1, 1, 1, 1},
		Normal:    Vec3{0, 0, 1},
		ModelView: Identity4(),
		Project:   Identity4(),
	}
	out := PhongShader{}.VertexShader(v, Identity4(), nil, Material{})
	if out.Colour != v.Colour {
		t.Fatalf("phong vertex stage must pass colour through unlit, got %v want %v", out.Colour, v.Colour)
	}

	light := &Light{Position: Vec3{0, 0, 5}, Diffuse: color{1, 1, 1, 1}}
	material := Material{Diffuse: color{1, 1, 1, 1}}
	frag := Fragment{Colour: v.Colour, Normal: Vec3{0, 0, 1}, ModelViewCoord: Vec4{0, 0, 0, 1}}
	shaded := PhongShader{}.FragmentShader(frag, material, light, nil, false)
	if shaded.R <= 0 {
		t.Fatalf("phong fragment stage should produce a nonzero lit colour, got %v", shaded)
	}
}
