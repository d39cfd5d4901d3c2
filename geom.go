package iconic

import "math"

// Point represents a 2D point in scene coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle given by its corner coordinates.
// Scene rectangles are expressed in unit coordinates (fractions of the
// canvas edge) and scaled at render time.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether (x, y) lies inside the rectangle,
// boundary included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Scale returns the rectangle with all coordinates multiplied by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{MinX: r.MinX * s, MinY: r.MinY * s, MaxX: r.MaxX * s, MaxY: r.MaxY * s}
}

// Ellipse is an axis-aligned ellipse with center and per-axis radii.
type Ellipse struct {
	Center Point
	RX, RY float64
}

// Contains reports whether (x, y) lies inside the ellipse,
// boundary included.
func (e Ellipse) Contains(x, y float64) bool {
	dx := (x - e.Center.X) / e.RX
	dy := (y - e.Center.Y) / e.RY
	return dx*dx+dy*dy <= 1.0
}

// Scale returns the ellipse with center and radii multiplied by s.
func (e Ellipse) Scale(s float64) Ellipse {
	return Ellipse{Center: Pt(e.Center.X*s, e.Center.Y*s), RX: e.RX * s, RY: e.RY * s}
}

// RoundedRectSD computes the signed Euclidean distance from point (px, py)
// to the boundary of a rounded rectangle centered at the origin with full
// extents w and h and corner radius r. Negative values are inside, positive
// values are outside, zero is on the boundary.
//
// The distance is exact to sub-pixel precision; it drives the anti-aliased
// edge band of every rectangular element.
func RoundedRectSD(px, py, w, h, r float64) float64 {
	// Use symmetry: work in the first quadrant relative to the center.
	qx := math.Abs(px) - (w*0.5 - r)
	qy := math.Abs(py) - (h*0.5 - r)

	// Outside the corner region the clamped components give the distance
	// to the edge; inside, min(max(qx, qy), 0) recovers the interior depth.
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)

	return outside + inside - r
}

// SegmentDistance returns the distance from point (px, py) to the finite
// line segment from (ax, ay) to (bx, by). A degenerate segment (length
// close to zero) falls back to the point-to-point distance.
func SegmentDistance(px, py, ax, ay, bx, by float64) float64 {
	abx := bx - ax
	aby := by - ay
	apx := px - ax
	apy := py - ay

	denom := abx*abx + aby*aby
	if denom <= 1e-6 {
		return math.Hypot(apx, apy)
	}

	t := clamp01((apx*abx + apy*aby) / denom)
	qx := ax + abx*t
	qy := ay + aby*t
	return math.Hypot(px-qx, py-qy)
}

// edgeCoverage converts a signed distance to anti-aliased coverage over a
// band of the given width (in pixels) around the boundary.
//
// sd <= -width/2 => 1.0 (fully inside)
// sd >= +width/2 => 0.0 (fully outside)
// Otherwise      => linear ramp
//
// width 1 gives the standard one-pixel analytic edge; larger widths soften
// the edge, which is how drop shadows are produced.
func edgeCoverage(sd, width float64) float64 {
	return clamp01(0.5 - sd/width)
}
