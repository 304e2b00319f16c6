// main.go - fakeglview: render one frame of a mesh through FakeGL
//
// Usage mirrors the teacher's "check the argument count, print usage,
// exit nonzero" texture rather than a cobra/urfave-cli framework (none
// appears anywhere in the retrieved pack).

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/fakegl/fakegl"
	"github.com/fakegl/fakegl/internal/mesh"
	"github.com/fakegl/fakegl/internal/ppm"
)

func main() {
	meshPath := flag.String("mesh", "", "path to an OBJ-like mesh file (required)")
	texturePath := flag.String("texture", "", "path to a binary PPM (P6) texture file")
	outPath := flag.String("out", "out.png", "output PNG path")
	width := flag.Int("width", 512, "framebuffer width")
	height := flag.Int("height", 512, "framebuffer height")
	shading := flag.String("shading", "gouraud", "shading model: gouraud or phong")
	centre := flag.Bool("centre", true, "translate the mesh to its own centroid")
	scaleObj := flag.Bool("scale", true, "normalize the mesh to unit size")
	zoom := flag.Float64("zoom", 1.0, "uniform zoom factor applied before auto-scale")
	uvwRGB := flag.Bool("uvw-rgb", false, "use texture coordinates as the surface colour (RGB)")
	flag.Parse()

	if *meshPath == "" {
		fmt.Fprintln(os.Stderr, "fakeglview: -mesh is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*meshPath, *texturePath, *outPath, *width, *height, *shading, *centre, *scaleObj, float32(*zoom), *uvwRGB); err != nil {
		fmt.Fprintf(os.Stderr, "fakeglview: %v\n", err)
		os.Exit(1)
	}
}

func run(meshPath, texturePath, outPath string, width, height int, shading string, centre, scaleObj bool, zoom float32, uvwRGB bool) error {
	meshFile, err := os.Open(meshPath)
	if err != nil {
		return fmt.Errorf("opening mesh: %w", err)
	}
	defer meshFile.Close()

	m, err := mesh.Load(meshFile)
	if err != nil {
		return fmt.Errorf("loading mesh: %w", err)
	}

	p := fakegl.NewPipeline(width, height)
	p.Viewport(0, 0, width, height)
	p.ClearColor(0.1, 0.1, 0.15, 1)
	p.Enable(fakegl.DepthTest)
	p.Clear(fakegl.ColorBufferBit | fakegl.DepthBufferBit)

	p.MatrixMode(fakegl.Projection)
	p.LoadIdentity()
	p.Frustum(-1, 1, -1, 1, 1, 100)

	p.MatrixMode(fakegl.ModelView)
	p.LoadIdentity()
	p.Translatef(0, 0, -3)

	p.Enable(fakegl.Lighting)
	if shading == "phong" {
		p.Enable(fakegl.PhongShading)
	} else {
		p.Disable(fakegl.PhongShading)
	}
	p.Light(fakegl.LightPosition, [4]float32{2, 2, 2, 1})
	p.Light(fakegl.LightAmbient, [4]float32{0.2, 0.2, 0.2, 1})
	p.Light(fakegl.LightDiffuse, [4]float32{0.8, 0.8, 0.8, 1})
	p.Light(fakegl.LightSpecular, [4]float32{1, 1, 1, 1})

	params := mesh.DefaultRenderParameters()
	params.ZoomScale = zoom
	params.CentreObject = centre
	params.ScaleObject = scaleObj
	params.MapUVWToRGB = uvwRGB
	params.SpecularExponent = 32

	var triangleCount int
	for _, face := range m.Faces {
		triangleCount += len(face) - 2
	}

	if texturePath != "" {
		texFile, err := os.Open(texturePath)
		if err != nil {
			return fmt.Errorf("opening texture: %w", err)
		}
		defer texFile.Close()

		texImg, err := ppm.Decode(texFile)
		if err != nil {
			return fmt.Errorf("decoding texture: %w", err)
		}
		texImg = resizeIfNeeded(texImg, width, height)
		p.TexImage2D(texImg)
		params.TexturedRendering = true
		params.TextureModulation = true
	}

	mesh.Render(p, m, params)

	return writePNG(outPath, p.Framebuffer(), triangleCount)
}

// resizeIfNeeded rescales a texture to the framebuffer's width and height
// using x/image/draw when it's more than 4x larger than the target in
// either dimension, avoiding needless nearest-neighbour sampling of an
// oversized source image.
func resizeIfNeeded(src *fakegl.Image, targetW, targetH int) *fakegl.Image {
	if src.Width <= targetW*4 && src.Height <= targetH*4 {
		return src
	}
	srcImg := toStdImage(src)
	dstW, dstH := targetW, targetH
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)
	return fromStdImage(dst)
}

func toStdImage(img *fakegl.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return out
}

func fromStdImage(img *image.RGBA) *fakegl.Image {
	bounds := img.Bounds()
	out := fakegl.NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			out.Set(x, y, fakegl.RGBA8{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return out
}

// writePNG encodes the framebuffer as a PNG, stamping a one-line HUD
// with the triangle count into the top-left corner.
func writePNG(path string, fb *fakegl.Image, triangleCount int) error {
	img := toStdImage(fb)

	label := fmt.Sprintf("triangles: %d", triangleCount)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 14),
	}
	d.DrawString(label)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
