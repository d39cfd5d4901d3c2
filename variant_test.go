package iconic

import (
	"math"
	"testing"
)

func TestVariantsAreValid(t *testing.T) {
	for _, s := range Variants() {
		t.Run(s.Name, func(t *testing.T) {
			if err := s.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestVariantNames(t *testing.T) {
	want := []string{"monogram", "badge", "prism"}
	got := Variants()
	if len(got) != len(want) {
		t.Fatalf("len(Variants()) = %d, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Name != want[i] {
			t.Errorf("Variants()[%d].Name = %q, want %q", i, s.Name, want[i])
		}
	}
}

func TestGlyphFullScaleMatchesDesignGrid(t *testing.T) {
	// At scale 1 the glyph reproduces the design-grid drawing: stem
	// columns 332..498, rows 252..772 on the 1024 grid.
	lf := glyph(1)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"outer stem MinX", lf.OuterStem.MinX, 332.0 / 1024},
		{"outer stem MaxX", lf.OuterStem.MaxX, 498.0 / 1024},
		{"outer stem MinY", lf.OuterStem.MinY, 252.0 / 1024},
		{"outer stem MaxY", lf.OuterStem.MaxY, 772.0 / 1024},
		{"bowl center X", lf.OuterBowl.Center.X, 498.0 / 1024},
		{"bowl center Y", lf.OuterBowl.Center.Y, 512.0 / 1024},
		{"outer bowl RX", lf.OuterBowl.RX, 262.0 / 1024},
		{"outer bowl RY", lf.OuterBowl.RY, 260.0 / 1024},
		{"inner bowl RX", lf.InnerBowl.RX, 174.0 / 1024},
		{"inner bowl RY", lf.InnerBowl.RY, 172.0 / 1024},
		{"bounds MinX", lf.Bounds.MinX, 280.0 / 1024},
		{"bounds MaxY", lf.Bounds.MaxY, 824.0 / 1024},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Errorf("%s = %g, want %g", c.name, c.got, c.want)
		}
	}
}

func TestSlashFullScale(t *testing.T) {
	sl := slash(1)
	if math.Abs(sl.A.X-470.0/1024) > 1e-12 || math.Abs(sl.A.Y-666.0/1024) > 1e-12 {
		t.Errorf("A = %+v, want (470, 666)/1024", sl.A)
	}
	if math.Abs(sl.B.X-666.0/1024) > 1e-12 || math.Abs(sl.B.Y-362.0/1024) > 1e-12 {
		t.Errorf("B = %+v, want (666, 362)/1024", sl.B)
	}
	if math.Abs(sl.Radius-31.0/1024) > 1e-12 {
		t.Errorf("Radius = %g, want 31/1024", sl.Radius)
	}
}

func TestRescaleFixesCenter(t *testing.T) {
	for _, scale := range []float64{0.25, 0.5, 1, 2} {
		if got := rescale(0.5, scale); got != 0.5 {
			t.Errorf("rescale(0.5, %g) = %g, want 0.5", scale, got)
		}
	}
	if got := rescale(0.25, 0.5); got != 0.375 {
		t.Errorf("rescale(0.25, 0.5) = %g, want 0.375", got)
	}
	if got := rescale(1, 0.5); got != 0.75 {
		t.Errorf("rescale(1, 0.5) = %g, want 0.75", got)
	}
}

func TestGlyphScaleShrinksAboutCenter(t *testing.T) {
	full := glyph(1)
	half := glyph(0.5)

	// Distances from the canvas center shrink by the scale factor.
	fullSpan := full.Bounds.MaxX - full.Bounds.MinX
	halfSpan := half.Bounds.MaxX - half.Bounds.MinX
	if math.Abs(halfSpan-fullSpan/2) > 1e-12 {
		t.Errorf("bounds span at scale 0.5 = %g, want %g", halfSpan, fullSpan/2)
	}

	// Radii scale linearly, the bowl center moves toward 0.5.
	if math.Abs(half.OuterBowl.RX-full.OuterBowl.RX/2) > 1e-12 {
		t.Errorf("bowl RX at scale 0.5 = %g, want %g", half.OuterBowl.RX, full.OuterBowl.RX/2)
	}
	wantCX := 0.5 + (full.OuterBowl.Center.X-0.5)/2
	if math.Abs(half.OuterBowl.Center.X-wantCX) > 1e-12 {
		t.Errorf("bowl center X at scale 0.5 = %g, want %g", half.OuterBowl.Center.X, wantCX)
	}
}

func TestBadgeUsesDiagonalBackdrop(t *testing.T) {
	if !Badge().Backdrop.Diagonal {
		t.Error("badge backdrop should use the diagonal gradient")
	}
	if Monogram().Backdrop.Diagonal {
		t.Error("monogram backdrop should use the vertical gradient")
	}
}

func TestPrismHasCutAndSparkles(t *testing.T) {
	p := Prism()
	if p.Letterform == nil || p.Letterform.Cut == nil {
		t.Fatal("prism letterform should carry a diagonal cut")
	}
	if len(p.Sparkles) == 0 {
		t.Fatal("prism should carry sparkle accents")
	}
	if len(p.Cards) < 2 {
		t.Fatalf("prism should stack at least two cards, got %d", len(p.Cards))
	}
	rotated := 0
	for _, c := range p.Cards {
		if c.Angle != 0 {
			rotated++
		}
	}
	if rotated < 2 {
		t.Errorf("prism should rotate its cards, got %d rotated of %d", rotated, len(p.Cards))
	}
}
