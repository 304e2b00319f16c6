// texture.go - Nearest-Neighbour Texture Sampler
//
// A single texture unit, sampled with nearest-neighbour filtering. The
// index computation (coord * (dim-1), clamped to dim-1) matches
// Texture2D::sample in the reference implementation this pipeline is
// modelled on; wrap-vs-clamp handling follows the Voodoo software
// backend's sampleTexture.

package fakegl

// WrapMode selects how out-of-range texture coordinates are handled.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
)

// Sampler holds one RGBA texture image and its wrap mode.
type Sampler struct {
	Image      *Image
	WrapS      WrapMode
	WrapT      WrapMode
}

func wrapCoord(v float32, mode WrapMode) float32 {
	if mode == WrapClamp {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	// repeat: coordinates already in [0,1] are used as they are; others
	// keep their fractional part, always positive
	if v >= 0 && v <= 1 {
		return v
	}
	v -= float32(int(v))
	if v < 0 {
		v += 1
	}
	return v
}

// Sample returns the nearest texel to (u, v), both expected in [0,1]
// before wrapping is applied. An unbound or empty texture samples as
// transparent black, so MODULATE zeroes the fragment and REPLACE
// yields a transparent pixel rather than silently painting white.
func (s *Sampler) Sample(u, v float32) color {
	if s == nil || s.Image == nil || s.Image.Width == 0 || s.Image.Height == 0 {
		return color{0, 0, 0, 0}
	}
	u = wrapCoord(u, s.WrapS)
	v = wrapCoord(v, s.WrapT)

	x := int(u * float32(s.Image.Width-1))
	y := int(v * float32(s.Image.Height-1))
	if x < 0 {
		x = 0
	}
	if x > s.Image.Width-1 {
		x = s.Image.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y > s.Image.Height-1 {
		y = s.Image.Height - 1
	}
	return colorFromRGBA8(s.Image.At(x, y))
}
