package ppm

import (
	"bytes"
	"testing"
)

func TestDecodeBasicP6(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P6\n2 1\n255\n")
	buf.Write([]byte{255, 0, 0, 0, 255, 0})

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("decoded dims = %dx%d, want 2x1", img.Width, img.Height)
	}
	red := img.At(0, 0)
	if red.R != 255 || red.G != 0 || red.B != 0 || red.A != 255 {
		t.Fatalf("pixel (0,0) = %+v, want opaque red", red)
	}
	green := img.At(1, 0)
	if green.R != 0 || green.G != 255 || green.B != 0 || green.A != 255 {
		t.Fatalf("pixel (1,0) = %+v, want opaque green", green)
	}
}

func TestDecodeSkipsCommentLines(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P6\n# a single white pixel\n1 1\n255\n")
	buf.Write([]byte{255, 255, 255})

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width != 1 || img.Height != 1 {
		t.Fatalf("decoded dims = %dx%d, want 1x1", img.Width, img.Height)
	}
}

func TestDecodeRejectsWrongMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P3\n1 1\n255\n255 255 255")
	if _, err := Decode(&buf); err == nil {
		t.Fatalf("expected an error for a non-P6 PPM")
	}
}

func TestDecodeRejectsTruncatedPixelData(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P6\n2 2\n255\n")
	buf.Write([]byte{255, 0, 0})
	if _, err := Decode(&buf); err == nil {
		t.Fatalf("expected an error for truncated pixel data")
	}
}
