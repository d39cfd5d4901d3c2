// Package iconic procedurally renders application icons from geometric math.
//
// # Overview
//
// iconic is a pure Go icon generator in the GoGPU ecosystem. It evaluates
// analytic shape functions (signed distance fields, ellipse and segment
// tests) per pixel, composites the result with straight-alpha source-over
// blending, and serializes the finished canvas into a PNG container written
// from scratch at the chunk level. No input images, fonts, or other external
// assets are involved: an icon is fully described by a Scene value of fixed
// layout constants.
//
// # Quick Start
//
//	import "github.com/gogpu/iconic"
//
//	// Render a built-in design at 1024x1024.
//	c, err := iconic.Render(iconic.Monogram(), 1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Write the PNG artifact (atomically: temp file + rename).
//	if err := c.WritePNG("icon.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Engine: Canvas (framebuffer + compositor), RGBA color math,
//     distance primitives (geom.go)
//   - Scenes: immutable Scene descriptions and the built-in variants
//     (Monogram, Badge, Prism)
//   - Composer: Render runs a fixed, ordered list of draw passes, each a
//     pure function of pixel coordinates and scene constants
//   - Containers: pngenc (chunked PNG encoder), icoenc (ICO bundling)
//
// # Coordinate System
//
// Scene geometry lives in unit coordinates: (0,0) is the top-left corner of
// the square canvas and (1,1) the bottom-right, so one Scene renders at any
// pixel size. Within the engine, origin is top-left, X increases right,
// Y increases down, angles are in radians.
//
// # Determinism
//
// Rendering is single-threaded and synchronous; the same Scene and size
// always produce the same canvas bytes. The PNG encoder uses a fixed
// deflate level, so whole artifacts are reproducible with a fixed
// dependency set.
package iconic

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
