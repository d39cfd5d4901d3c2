package iconic

import (
	"math"
	"time"
)

// Render rasterizes the scene onto a fresh square canvas of size×size
// pixels. Passes run in a fixed order (backdrop, cards, letterform, slash,
// sparkles) and every pass reads only the scene, never the pixels under
// it, so the output depends on nothing but (scene, size).
//
// Rendering is single-threaded and iterates pixels in row-major order on
// purpose: with float64 math and a fixed evaluation order the output is
// byte-identical across runs and platforms.
func Render(scene Scene, size int) (*Canvas, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pass("backdrop", func() { renderBackdrop(c, scene.Backdrop) })
	if len(scene.Cards) > 0 {
		pass("cards", func() {
			for _, card := range scene.Cards {
				renderCard(c, card)
			}
		})
	}
	if scene.Letterform != nil {
		pass("letterform", func() { renderLetterform(c, *scene.Letterform) })
	}
	if scene.Slash != nil {
		pass("slash", func() { renderSlash(c, *scene.Slash) })
	}
	if len(scene.Sparkles) > 0 {
		pass("sparkles", func() {
			for _, sp := range scene.Sparkles {
				renderSparkle(c, sp)
			}
		})
	}
	Logger().Debug("render: scene complete",
		"scene", scene.Name,
		"size", size,
		"elapsed", time.Since(start))
	return c, nil
}

func pass(name string, fn func()) {
	start := time.Now()
	fn()
	Logger().Debug("render: pass complete", "pass", name, "elapsed", time.Since(start))
}

// renderBackdrop fills a rounded square centered on the canvas with a
// linear gradient, adding the elliptical glow term before compositing.
func renderBackdrop(c *Canvas, b Backdrop) {
	size := float64(c.Size())
	half := size * 0.5
	w := size * b.Extent
	r := size * b.Corner

	for y := 0; y < c.Size(); y++ {
		fy := float64(y) + 0.5
		py := fy - half
		row := b.Top.Lerp(b.Bottom, fy/size)
		for x := 0; x < c.Size(); x++ {
			fx := float64(x) + 0.5
			sd := RoundedRectSD(fx-half, py, w, w, r)
			if sd > 1.0 {
				continue
			}
			col := row
			if b.Diagonal {
				col = b.Top.Lerp(b.Bottom, (fx+fy)/(2*size))
			}
			if b.Glow != nil {
				gx := (fx - b.Glow.Center.X*size) / (b.Glow.Radius * size)
				gy := (fy - b.Glow.Center.Y*size) / (b.Glow.Radius * size)
				if f := 1 - gx*gx - gy*gy; f > 0 {
					col = col.Add(b.Glow.Color.Scale(math.Pow(f, b.Glow.Power)))
				}
			}
			cov := edgeCoverage(sd, 1)
			c.Blend(x, y, col.WithAlpha(col.A*cov))
		}
	}
}

// renderCard fills a rounded rectangle, optionally rotated about its
// center and optionally with a soft edge band (a drop shadow is a Card
// with a wide band). The gradient runs along the card-local vertical axis
// so it tilts with the card.
func renderCard(c *Canvas, card Card) {
	size := float64(c.Size())
	cx := card.Center.X * size
	cy := card.Center.Y * size
	w := card.Width * size
	h := card.Height * size
	r := card.Corner * size

	band := 1.0
	if card.Soft > 0 {
		band = math.Max(1, card.Soft*size)
	}

	sin, cos := math.Sincos(card.Angle)

	// Enclosing axis-aligned box of the rotated card, padded by the band.
	ex := (math.Abs(cos)*w + math.Abs(sin)*h) / 2
	ey := (math.Abs(sin)*w + math.Abs(cos)*h) / 2
	pad := band/2 + 1
	minX := max(0, int(math.Floor(cx-ex-pad)))
	maxX := min(c.Size()-1, int(math.Ceil(cx+ex+pad)))
	minY := max(0, int(math.Floor(cy-ey-pad)))
	maxY := min(c.Size()-1, int(math.Ceil(cy+ey+pad)))

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5 - cy
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5 - cx
			lx := px*cos + py*sin
			ly := -px*sin + py*cos
			sd := RoundedRectSD(lx, ly, w, h, r)
			if sd > band {
				continue
			}
			cov := edgeCoverage(sd, band)
			if cov <= 0 {
				continue
			}
			col := card.Top.Lerp(card.Bottom, clamp01(ly/h+0.5))
			c.Blend(x, y, col.WithAlpha(col.A*cov))
		}
	}
}

// sampleOffsets are the fixed sub-pixel sample positions for boolean
// shapes. Each hit contributes 0.25 coverage.
var sampleOffsets = [4][2]float64{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}}

func coverage4(x, y int, inside func(x, y float64) bool) float64 {
	cov := 0.0
	for _, off := range sampleOffsets {
		if inside(float64(x)+off[0], float64(y)+off[1]) {
			cov += 0.25
		}
	}
	return cov
}

// renderLetterform rasterizes the boolean glyph by supersampling. The
// glyph has no usable distance function, so edges are resolved by four
// point samples per pixel instead of a distance band.
func renderLetterform(c *Canvas, lf Letterform) {
	size := float64(c.Size())
	outerStem := lf.OuterStem.Scale(size)
	outerBowl := lf.OuterBowl.Scale(size)
	innerStem := lf.InnerStem.Scale(size)
	innerBowl := lf.InnerBowl.Scale(size)
	bounds := lf.Bounds.Scale(size)

	cutK, cutThreshold := 0.0, math.Inf(1)
	if lf.Cut != nil {
		cutK = lf.Cut.K
		cutThreshold = lf.Cut.Threshold * size
	}

	// Bowls only count to the right of their center line; that is what
	// turns the ellipses into the D's bowl instead of a full ring.
	inside := func(x, y float64) bool {
		outer := outerStem.Contains(x, y) ||
			(x >= outerBowl.Center.X && outerBowl.Contains(x, y))
		if !outer {
			return false
		}
		inner := innerStem.Contains(x, y) ||
			(x >= innerBowl.Center.X && innerBowl.Contains(x, y))
		if inner {
			return false
		}
		return x+cutK*y <= cutThreshold
	}

	minX := max(0, int(math.Floor(bounds.MinX)))
	maxX := min(c.Size()-1, int(math.Ceil(bounds.MaxX)))
	minY := max(0, int(math.Floor(bounds.MinY)))
	maxY := min(c.Size()-1, int(math.Ceil(bounds.MaxY)))

	for y := minY; y <= maxY; y++ {
		t := clamp01((float64(y) + 0.5 - bounds.MinY) / (bounds.MaxY - bounds.MinY))
		col := lf.Top.Lerp(lf.Bottom, t)
		for x := minX; x <= maxX; x++ {
			if cov := coverage4(x, y, inside); cov > 0 {
				c.Blend(x, y, col.WithAlpha(col.A*cov))
			}
		}
	}
}

// renderSlash rasterizes the diagonal stroke: all points within Radius of
// the segment from A to B, supersampled like the letterform.
func renderSlash(c *Canvas, sl Slash) {
	size := float64(c.Size())
	ax, ay := sl.A.X*size, sl.A.Y*size
	bx, by := sl.B.X*size, sl.B.Y*size
	rad := sl.Radius * size
	bounds := sl.Bounds.Scale(size)

	inside := func(x, y float64) bool {
		return SegmentDistance(x, y, ax, ay, bx, by) <= rad
	}

	minX := max(0, int(math.Floor(bounds.MinX)))
	maxX := min(c.Size()-1, int(math.Ceil(bounds.MaxX)))
	minY := max(0, int(math.Floor(bounds.MinY)))
	maxY := min(c.Size()-1, int(math.Ceil(bounds.MaxY)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if cov := coverage4(x, y, inside); cov > 0 {
				c.Blend(x, y, sl.Color.WithAlpha(sl.Color.A*cov))
			}
		}
	}
}

// renderSparkle draws a four-point star. The polynomial falloff doubles
// as anti-aliasing, so pixel centers are enough here.
func renderSparkle(c *Canvas, sp Sparkle) {
	size := float64(c.Size())
	cx := sp.Center.X * size
	cy := sp.Center.Y * size
	rad := sp.Radius * size

	minX := max(0, int(math.Floor(cx-rad-1)))
	maxX := min(c.Size()-1, int(math.Ceil(cx+rad+1)))
	minY := max(0, int(math.Floor(cy-rad-1)))
	maxY := min(c.Size()-1, int(math.Ceil(cy+rad+1)))

	for y := minY; y <= maxY; y++ {
		dy := math.Abs(float64(y) + 0.5 - cy)
		for x := minX; x <= maxX; x++ {
			dx := math.Abs(float64(x) + 0.5 - cx)
			d := math.Min(dx+sp.K*dy, sp.K*dx+dy)
			if d > rad {
				continue
			}
			fade := math.Pow((rad-d)/rad, sp.Power)
			c.Blend(x, y, sp.Color.WithAlpha(sp.Color.A*fade))
		}
	}
}
