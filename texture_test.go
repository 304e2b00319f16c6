package fakegl

import "testing"

func TestSamplerNearestNeighbour(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, RGBA8{255, 0, 0, 255})
	img.Set(1, 0, RGBA8{0, 255, 0, 255})
	img.Set(0, 1, RGBA8{0, 0, 255, 255})
	img.Set(1, 1, RGBA8{255, 255, 0, 255})

	s := &Sampler{Image: img}

	cases := []struct {
		u, v float32
		want RGBA8
	}{
		{0, 0, RGBA8{255, 0, 0, 255}},
		{1, 0, RGBA8{0, 255, 0, 255}},
		{0, 1, RGBA8{0, 0, 255, 255}},
		{1, 1, RGBA8{255, 255, 0, 255}},
	}
	for _, c := range cases {
		got := s.Sample(c.u, c.v).toRGBA8()
		if got != c.want {
			t.Fatalf("Sample(%v,%v) = %v, want %v", c.u, c.v, got, c.want)
		}
	}
}

func TestSamplerWrapRepeat(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, RGBA8{255, 0, 0, 255})
	img.Set(1, 0, RGBA8{0, 255, 0, 255})
	s := &Sampler{Image: img, WrapS: WrapRepeat}

	got := s.Sample(1.5, 0).toRGBA8()
	want := s.Sample(0.5, 0).toRGBA8()
	if got != want {
		t.Fatalf("wrapped sample at u=1.5 = %v, want same as u=0.5 = %v", got, want)
	}
}

func TestSamplerWrapClamp(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(1, 0, RGBA8{9, 9, 9, 255})
	s := &Sampler{Image: img, WrapS: WrapClamp}

	got := s.Sample(5, 0).toRGBA8()
	want := RGBA8{9, 9, 9, 255}
	if got != want {
		t.Fatalf("clamped sample at u=5 = %v, want %v", got, want)
	}
}

func TestSamplerNilImageReturnsTransparentBlack(t *testing.T) {
	var s *Sampler
	got := s.Sample(0.5, 0.5)
	if got != (color{0, 0, 0, 0}) {
		t.Fatalf("sampling a nil sampler should return transparent black, got %v", got)
	}
}
