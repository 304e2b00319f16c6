// ppm.go - Binary PPM (P6) Texture Decoding
//
// Decodes the simple binary PPM format used as the texture asset
// format in the reference implementation (Texture2D::ReadPPM): a
// "P6" magic, whitespace-separated width/height/maxval header tokens
// (comment lines starting with '#' are skipped), then one byte per
// channel per pixel, no padding. Alpha is forced fully opaque.

package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fakegl/fakegl"
)

// Decode reads a binary PPM (P6) image.
func Decode(r io.Reader) (*fakegl.Image, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("ppm: unsupported magic %q, only P6 is supported", magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: height: %w", err)
	}
	maxVal, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: maxval: %w", err)
	}
	if maxVal <= 0 || maxVal > 255 {
		return nil, fmt.Errorf("ppm: unsupported maxval %d, only 8-bit channels are supported", maxVal)
	}

	img := fakegl.NewImage(width, height)
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("ppm: reading row %d: %w", y, err)
		}
		for x := 0; x < width; x++ {
			img.Set(x, y, fakegl.RGBA8{
				R: row[x*3],
				G: row[x*3+1],
				B: row[x*3+2],
				A: 255,
			})
		}
	}
	return img, nil
}

// readToken reads one whitespace-delimited token, skipping '#' comment
// lines, matching the reference header parser's tolerance for comments
// anywhere between header fields.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		if b == '#' {
			for {
				c, err := br.ReadByte()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		if isSpace(b) {
			if len(tok) > 0 {
				return string(tok), nil
			}
			continue
		}
		tok = append(tok, b)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	var n int
	if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
		return 0, fmt.Errorf("expected integer, got %q", tok)
	}
	return n, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
