package iconic

import "math"

// designGrid is the pixel grid the letterform was originally drawn on.
// Coordinates below are grid cells over designGrid, which keeps them exact
// binary fractions at any render size that is a multiple of the grid.
const designGrid = 1024.0

// Monogram is the primary icon: the glyph and slash over a dark rounded
// square with a faint off-center glow.
func Monogram() Scene {
	return Scene{
		Name: "monogram",
		Backdrop: Backdrop{
			Extent: 0.8125,
			Corner: 0.1836,
			Top:    Hex("#111112"),
			Bottom: Hex("#111112"),
			Glow: &Glow{
				Center: Pt(0.32, 0.24),
				Radius: 0.58,
				Power:  2.2,
				Color:  Hex("#080808").WithAlpha(0),
			},
		},
		Letterform: glyph(1),
		Slash:      slash(1),
	}
}

// Badge raises the glyph on a nested panel stack: a soft drop shadow, a
// main panel and a slightly smaller inset panel, all centered.
func Badge() Scene {
	return Scene{
		Name: "badge",
		Backdrop: Backdrop{
			Extent:   0.875,
			Corner:   0.2,
			Top:      Hex("#15171b"),
			Bottom:   Hex("#0b0c0e"),
			Diagonal: true,
		},
		Cards: []Card{
			{
				Center: Pt(0.5, 0.532),
				Width:  0.56,
				Height: 0.56,
				Corner: 0.14,
				Soft:   0.028,
				Top:    RGBA{A: 0.55},
				Bottom: RGBA{A: 0.55},
			},
			{
				Center: Pt(0.5, 0.5),
				Width:  0.56,
				Height: 0.56,
				Corner: 0.14,
				Top:    Hex("#26282d"),
				Bottom: Hex("#191a1e"),
			},
			{
				Center: Pt(0.5, 0.5),
				Width:  0.515,
				Height: 0.515,
				Corner: 0.124,
				Top:    Hex("#1d1f23"),
				Bottom: Hex("#141518"),
			},
		},
		Letterform: glyph(0.56),
		Slash:      slash(0.56),
	}
}

// Prism tilts two overlapping panels behind a diagonally cut glyph, with
// sparkle accents in the upper right.
func Prism() Scene {
	cut := Cut{K: 0.55, Threshold: 0.9}
	lf := glyph(0.5)
	lf.Cut = &cut
	lf.Top = Hex("#f8f8f9")
	lf.Bottom = Hex("#d4d5d9")
	return Scene{
		Name: "prism",
		Backdrop: Backdrop{
			Extent: 0.8125,
			Corner: 0.1836,
			Top:    Hex("#0f1013"),
			Bottom: Hex("#0a0b0d"),
			Glow: &Glow{
				Center: Pt(0.66, 0.3),
				Radius: 0.55,
				Power:  2.0,
				Color:  Hex("#08080a").WithAlpha(0),
			},
		},
		Cards: []Card{
			{
				Center: Pt(0.5, 0.54),
				Width:  0.56,
				Height: 0.56,
				Corner: 0.13,
				Angle:  -6 * math.Pi / 180,
				Soft:   0.03,
				Top:    RGBA{A: 0.5},
				Bottom: RGBA{A: 0.5},
			},
			{
				Center: Pt(0.535, 0.475),
				Width:  0.54,
				Height: 0.54,
				Corner: 0.125,
				Angle:  9 * math.Pi / 180,
				Top:    Hex("#202227"),
				Bottom: Hex("#15161a"),
			},
			{
				Center: Pt(0.472, 0.522),
				Width:  0.54,
				Height: 0.54,
				Corner: 0.125,
				Angle:  -7 * math.Pi / 180,
				Top:    Hex("#2b2d33"),
				Bottom: Hex("#1a1b1f"),
			},
		},
		Letterform: lf,
		Sparkles: []Sparkle{
			{
				Center: Pt(0.745, 0.225),
				Radius: 0.052,
				K:      4,
				Power:  1.6,
				Color:  Hex("#f5f5f6"),
			},
			{
				Center: Pt(0.81, 0.305),
				Radius: 0.03,
				K:      4,
				Power:  1.8,
				Color:  Hex("#f5f5f6").WithAlpha(0.85),
			},
			{
				Center: Pt(0.7, 0.155),
				Radius: 0.022,
				K:      3.5,
				Power:  1.6,
				Color:  Hex("#f5f5f6").WithAlpha(0.7),
			},
		},
	}
}

// Variants returns the built-in designs in presentation order.
func Variants() []Scene {
	return []Scene{Monogram(), Badge(), Prism()}
}

// glyph returns the letterform scaled about the canvas center; scale 1
// reproduces the full-size drawing. The glyph is a thick D: an outer
// stem∪bowl minus an inner stem∪bowl.
func glyph(scale float64) *Letterform {
	ink := Hex("#f5f5f5")
	return &Letterform{
		OuterStem: rescaleRect(Rect{
			MinX: 332 / designGrid, MinY: 252 / designGrid,
			MaxX: 498 / designGrid, MaxY: 772 / designGrid,
		}, scale),
		OuterBowl: rescaleEllipse(Ellipse{
			Center: Pt(498/designGrid, 512/designGrid),
			RX:     262 / designGrid,
			RY:     260 / designGrid,
		}, scale),
		InnerStem: rescaleRect(Rect{
			MinX: 420 / designGrid, MinY: 340 / designGrid,
			MaxX: 498 / designGrid, MaxY: 684 / designGrid,
		}, scale),
		InnerBowl: rescaleEllipse(Ellipse{
			Center: Pt(498/designGrid, 512/designGrid),
			RX:     174 / designGrid,
			RY:     172 / designGrid,
		}, scale),
		Top:    ink,
		Bottom: ink,
		Bounds: rescaleRect(Rect{
			MinX: 280 / designGrid, MinY: 200 / designGrid,
			MaxX: 804 / designGrid, MaxY: 824 / designGrid,
		}, scale),
	}
}

// slash returns the diagonal stroke scaled about the canvas center.
func slash(scale float64) *Slash {
	return &Slash{
		A:      rescalePt(Pt(470/designGrid, 666/designGrid), scale),
		B:      rescalePt(Pt(666/designGrid, 362/designGrid), scale),
		Radius: 31 / designGrid * scale,
		Color:  Hex("#8b8d91"),
		Bounds: rescaleRect(Rect{
			MinX: 420 / designGrid, MinY: 312 / designGrid,
			MaxX: 716 / designGrid, MaxY: 716 / designGrid,
		}, scale),
	}
}

// rescale maps a unit coordinate toward the canvas center by scale.
func rescale(v, scale float64) float64 {
	return 0.5 + (v-0.5)*scale
}

func rescalePt(p Point, scale float64) Point {
	return Pt(rescale(p.X, scale), rescale(p.Y, scale))
}

func rescaleRect(r Rect, scale float64) Rect {
	return Rect{
		MinX: rescale(r.MinX, scale),
		MinY: rescale(r.MinY, scale),
		MaxX: rescale(r.MaxX, scale),
		MaxY: rescale(r.MaxY, scale),
	}
}

func rescaleEllipse(e Ellipse, scale float64) Ellipse {
	return Ellipse{
		Center: rescalePt(e.Center, scale),
		RX:     e.RX * scale,
		RY:     e.RY * scale,
	}
}
