package iconic

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is a square framebuffer of straight-alpha RGBA samples, 4 bytes
// per pixel, row-major, top-to-bottom. It is the single mutable surface of
// the renderer: every draw pass funnels through Blend, so compositing stays
// correct regardless of call order within a pass.
//
// A Canvas is not safe for concurrent use. Rendering is single-threaded by
// contract and the buffer has exactly one owner for the run's duration.
type Canvas struct {
	size int
	pix  []uint8
}

// NewCanvas creates a transparent canvas with the given edge length.
// It returns an error if size is not positive.
func NewCanvas(size int) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("iconic: invalid canvas size %d (must be > 0)", size)
	}
	return &Canvas{
		size: size,
		pix:  make([]uint8, size*size*4),
	}, nil
}

// Size returns the edge length of the square canvas in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.size
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.size
}

// Data returns the raw pixel data: straight-alpha RGBA, row-major.
// The slice aliases the canvas storage; treat it as read-only.
func (c *Canvas) Data() []uint8 {
	return c.pix
}

// Blend composites a source color onto the pixel at (x, y) using the
// straight-alpha source-over operator. It is the only mutator of canvas
// state.
//
// Out-of-range coordinates are silently ignored so shape evaluators never
// need boundary clipping. Source channels are clamped to [0, 1]; a source
// alpha of 0 leaves the pixel untouched, a source alpha of 1 replaces it.
//
// With source (sr,sg,sb,a) and destination (dr,dg,db,da), the result is
//
//	outA = a + da*(1-a)
//	outC = (srcC*a + dstC*da*(1-a)) / outA
//
// quantized to 8 bits rounding half up. Destination alpha never decreases
// across successive blends: compositing cannot remove coverage.
func (c *Canvas) Blend(x, y int, src RGBA) {
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return
	}
	a := clamp01(src.A)
	if a <= 0 {
		return
	}

	i := (y*c.size + x) * 4
	dr := float64(c.pix[i+0]) / 255
	dg := float64(c.pix[i+1]) / 255
	db := float64(c.pix[i+2]) / 255
	da := float64(c.pix[i+3]) / 255

	outA := a + da*(1-a)
	if outA <= 0 {
		return
	}

	sr := clamp01(src.R)
	sg := clamp01(src.G)
	sb := clamp01(src.B)

	outR := (sr*a + dr*da*(1-a)) / outA
	outG := (sg*a + dg*da*(1-a)) / outA
	outB := (sb*a + db*da*(1-a)) / outA

	c.pix[i+0] = quantize(outR)
	c.pix[i+1] = quantize(outG)
	c.pix[i+2] = quantize(outB)
	c.pix[i+3] = quantize(outA)
}

// quantize maps a normalized channel value to 8 bits, rounding half up.
func quantize(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// NRGBA returns the canvas as an *image.NRGBA sharing the underlying
// storage. NRGBA is the straight-alpha stdlib image type, so no conversion
// happens: mutating the returned image mutates the canvas.
func (c *Canvas) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.pix,
		Stride: c.size * 4,
		Rect:   image.Rect(0, 0, c.size, c.size),
	}
}

// Scaled returns a copy of the canvas resampled to the given edge length
// using Catmull-Rom interpolation. It is how small icon-set sizes are
// derived from one master render without re-evaluating the scene.
func (c *Canvas) Scaled(size int) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("iconic: invalid scaled size %d (must be > 0)", size)
	}
	if size == c.size {
		out := &Canvas{size: size, pix: make([]uint8, len(c.pix))}
		copy(out.pix, c.pix)
		return out, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.NRGBA(), c.NRGBA().Bounds(), draw.Src, nil)
	return &Canvas{size: size, pix: dst.Pix}, nil
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return color.NRGBA{}
	}
	i := (y*c.size + x) * 4
	return color.NRGBA{R: c.pix[i+0], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.size, c.size)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
