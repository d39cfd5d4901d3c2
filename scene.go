package iconic

import (
	"fmt"
	"math"
)

// Scene describes one icon design as an immutable set of layout constants.
// All geometry is in unit coordinates, fractions of the square canvas edge
// with (0,0) top-left and (1,1) bottom-right, so a single Scene renders at
// any pixel size.
//
// A Scene is data, not behavior: alternate icon designs are alternate
// Scene values fed to the one rendering engine (see Render). The built-in
// designs are Monogram, Badge and Prism.
type Scene struct {
	// Name identifies the design, e.g. in CLI output and logs.
	Name string

	// Backdrop is the background pass, always present.
	Backdrop Backdrop

	// Cards are rounded-rectangle passes rendered in declaration order:
	// drop shadows, frames and panels are all Cards with different
	// constants.
	Cards []Card

	// Letterform is the monogram glyph pass, if the design has one.
	Letterform *Letterform

	// Slash is the diagonal stroke pass, if the design has one.
	Slash *Slash

	// Sparkles are four-point star accents rendered last.
	Sparkles []Sparkle
}

// Backdrop is the background pass: a large rounded square centered on the
// canvas, filled with a linear gradient and optionally brightened by an
// additive elliptical glow. The gradient runs top to bottom, or from the
// top-left corner to the bottom-right one when Diagonal is set.
type Backdrop struct {
	Extent   float64 // edge length of the rounded square, fraction of canvas
	Corner   float64 // corner radius, fraction of canvas
	Top      RGBA    // gradient color at the top (or top-left) edge
	Bottom   RGBA    // gradient color at the bottom (or bottom-right) edge
	Diagonal bool    // run the gradient corner to corner
	Glow     *Glow
}

// Glow is an additive elliptical bloom: at distance d from Center
// (normalized by Radius) the term Color·max(0, 1-d²)^Power is added to the
// backdrop color before compositing.
type Glow struct {
	Center Point
	Radius float64
	Power  float64
	Color  RGBA
}

// Card is a rounded-rectangle pass: shadow, frame or panel depending on
// its constants. The fill is a vertical gradient in card-local space, so
// rotated cards keep their lighting aligned with their own top edge.
type Card struct {
	Center Point
	Width  float64
	Height float64
	Corner float64
	Angle  float64 // rotation about Center, radians
	Soft   float64 // extra edge softness, fraction of canvas; 0 = crisp 1px band
	Top    RGBA
	Bottom RGBA
}

// Letterform is the boolean monogram glyph: the set difference of an outer
// stem∪bowl and an inner stem∪bowl forms a thick "D"-like letter, and an
// optional half-plane Cut truncates it diagonally. Bowls only count on the
// right of their center line, which is what turns an ellipse into a bowl.
//
// The glyph has no continuous distance function, so it is anti-aliased by
// 4-point supersampling rather than a distance band.
type Letterform struct {
	OuterStem Rect
	OuterBowl Ellipse
	InnerStem Rect
	InnerBowl Ellipse
	Cut       *Cut
	Top       RGBA // gradient color at Bounds.MinY
	Bottom    RGBA // gradient color at Bounds.MaxY; equal to Top for a flat fill
	Bounds    Rect // evaluation region; a cost bound, not a clip
}

// Cut excludes the half-plane x + K·y > Threshold (unit coordinates) from
// a letterform, suggesting motion or a bevel.
type Cut struct {
	K         float64
	Threshold float64
}

// Slash is a diagonal stroke: every point within Radius of the segment
// from A to B belongs to it. Like the letterform it is supersampled.
type Slash struct {
	A      Point
	B      Point
	Radius float64
	Color  RGBA
	Bounds Rect // evaluation region; a cost bound, not a clip
}

// Sparkle is a four-point star accent: the weighted Manhattan diamond
// min(dx + K·dy, K·dx + dy) ≤ Radius, with alpha falling off as
// ((Radius-d)/Radius)^Power from center to tip.
type Sparkle struct {
	Center Point
	Radius float64
	K      float64 // arm weight, ≥ 1; higher values pinch the arms
	Power  float64
	Color  RGBA
}

// Validate checks the scene's geometry constants. Invalid geometry is a
// configuration error: it aborts the run before any pixel is touched
// rather than producing a half-drawn artifact.
func (s Scene) Validate() error {
	if err := s.Backdrop.validate(); err != nil {
		return err
	}
	for i, card := range s.Cards {
		if err := card.validate(); err != nil {
			return fmt.Errorf("iconic: card %d: %w", i, err)
		}
	}
	if s.Letterform != nil {
		if err := s.Letterform.validate(); err != nil {
			return fmt.Errorf("iconic: letterform: %w", err)
		}
	}
	if s.Slash != nil {
		if err := s.Slash.validate(); err != nil {
			return fmt.Errorf("iconic: slash: %w", err)
		}
	}
	for i, sp := range s.Sparkles {
		if err := sp.validate(); err != nil {
			return fmt.Errorf("iconic: sparkle %d: %w", i, err)
		}
	}
	return nil
}

func (b Backdrop) validate() error {
	if b.Extent <= 0 || b.Extent > 1 {
		return fmt.Errorf("iconic: backdrop: extent %g out of range (0, 1]", b.Extent)
	}
	if b.Corner < 0 || b.Corner > b.Extent/2 {
		return fmt.Errorf("iconic: backdrop: corner radius %g exceeds half extent %g", b.Corner, b.Extent/2)
	}
	if b.Glow != nil {
		if b.Glow.Radius <= 0 {
			return fmt.Errorf("iconic: backdrop glow: radius %g must be > 0", b.Glow.Radius)
		}
		if b.Glow.Power <= 0 {
			return fmt.Errorf("iconic: backdrop glow: power %g must be > 0", b.Glow.Power)
		}
	}
	return nil
}

func (c Card) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("extents %gx%g must be positive", c.Width, c.Height)
	}
	if c.Corner < 0 || c.Corner > math.Min(c.Width, c.Height)/2 {
		return fmt.Errorf("corner radius %g exceeds half the smaller extent %g",
			c.Corner, math.Min(c.Width, c.Height)/2)
	}
	if c.Soft < 0 {
		return fmt.Errorf("softness %g must be >= 0", c.Soft)
	}
	return nil
}

func (l Letterform) validate() error {
	if l.OuterStem.Empty() {
		return fmt.Errorf("outer stem is empty")
	}
	if l.InnerStem.Empty() {
		return fmt.Errorf("inner stem is empty")
	}
	if l.OuterBowl.RX <= 0 || l.OuterBowl.RY <= 0 {
		return fmt.Errorf("outer bowl radii %gx%g must be positive", l.OuterBowl.RX, l.OuterBowl.RY)
	}
	if l.InnerBowl.RX <= 0 || l.InnerBowl.RY <= 0 {
		return fmt.Errorf("inner bowl radii %gx%g must be positive", l.InnerBowl.RX, l.InnerBowl.RY)
	}
	if l.Bounds.Empty() {
		return fmt.Errorf("bounds are empty")
	}
	return nil
}

func (sl Slash) validate() error {
	if sl.Radius <= 0 {
		return fmt.Errorf("stroke radius %g must be > 0", sl.Radius)
	}
	if sl.Bounds.Empty() {
		return fmt.Errorf("bounds are empty")
	}
	return nil
}

func (sp Sparkle) validate() error {
	if sp.Radius <= 0 {
		return fmt.Errorf("radius %g must be > 0", sp.Radius)
	}
	if sp.K < 1 {
		return fmt.Errorf("arm weight %g must be >= 1", sp.K)
	}
	if sp.Power <= 0 {
		return fmt.Errorf("falloff power %g must be > 0", sp.Power)
	}
	return nil
}
