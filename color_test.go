package iconic

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func colorsClose(a, b RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"RGB short", "#f80", RGBA{R: 1, G: 136.0 / 255, B: 0, A: 1}},
		{"RGBA short", "#f808", RGBA{R: 1, G: 136.0 / 255, B: 0, A: 136.0 / 255}},
		{"RRGGBB", "#111112", RGBA{R: 17.0 / 255, G: 17.0 / 255, B: 18.0 / 255, A: 1}},
		{"RRGGBBAA", "#f5f5f5cc", RGBA{R: 245.0 / 255, G: 245.0 / 255, B: 245.0 / 255, A: 204.0 / 255}},
		{"without hash", "8b8d91", RGBA{R: 139.0 / 255, G: 141.0 / 255, B: 145.0 / 255, A: 1}},
		{"uppercase", "#F5F5F5", RGBA{R: 245.0 / 255, G: 245.0 / 255, B: 245.0 / 255, A: 1}},
		{"white", "#ffffff", White},
		{"invalid length falls back to black", "#12345", RGBA{A: 1}},
		{"empty falls back to black", "", RGBA{A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{R: 0, G: 0.2, B: 1, A: 1}
	b := RGBA{R: 1, G: 0.8, B: 0, A: 0.5}

	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"t=0 returns receiver", 0, a},
		{"t=1 returns other", 1, b},
		{"midpoint", 0.5, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.75}},
		{"t clamped below", -3, a},
		{"t clamped above", 7, b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Lerp(b, tt.t)
			if !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("Lerp(%g) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestScaleAndAdd(t *testing.T) {
	base := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	glow := RGBA{R: 0.1, G: 0.1, B: 0.1, A: 0}

	got := base.Add(glow.Scale(0.5))
	want := RGBA{R: 0.25, G: 0.45, B: 0.65, A: 1}
	if !colorsClose(got, want, 1e-9) {
		t.Errorf("Add(Scale(0.5)) = %+v, want %+v", got, want)
	}

	// Additive terms may leave [0, 1]; that is the caller's contract with
	// Blend, which clamps at quantization time.
	hot := White.Add(White)
	if hot.R != 2 || hot.A != 2 {
		t.Errorf("White.Add(White) = %+v, want components of 2", hot)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGBA{R: 0.3, G: 0.5, B: 0.7, A: 1}
	got := c.WithAlpha(0.25)
	if got.R != c.R || got.G != c.G || got.B != c.B {
		t.Errorf("WithAlpha changed color channels: %+v", got)
	}
	if got.A != 0.25 {
		t.Errorf("WithAlpha(0.25).A = %g, want 0.25", got.A)
	}
}

func TestRGBAColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"50% alpha red", RGBA{R: 1, A: 0.5}, 32768, 0, 0, 32768},
		{"channels clamped", RGBA{R: 4, G: -1, B: 0.5, A: 1}, 65535, 0, 32768, 65535},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"below range", -0.5, 0},
		{"lower bound", 0, 0},
		{"inside", 0.42, 0.42},
		{"upper bound", 1, 1},
		{"above range", 1.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp01(tt.v); got != tt.want {
				t.Errorf("clamp01(%g) = %g, want %g", tt.v, got, tt.want)
			}
		})
	}
}
