// Package network simulates a field of drifting particles that repel from
// the pointer and link up with fading lines when they come close.
//
// The simulator never draws anything itself. Each Step returns a Frame of
// draw instructions that a host paints onto whatever surface it owns.
package network

import "image/color"

// Simulation constants
const (
	RepelStrength   = 0.5  // velocity added at the pointer's centre, px/frame
	Damping         = 0.99 // per-frame velocity multiplier
	MaxInitialSpeed = 0.25 // per axis, px/frame
	MinRadius       = 1.0
	MaxRadius       = 3.0
)

// Particle is a single point-mass.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Radius float64 // Render radius, fixed at creation
}

// Pointer is the latest known pointer position in canvas coordinates.
type Pointer struct {
	X, Y float64
}

// OffscreenPointer is far enough outside any canvas that no particle feels it.
var OffscreenPointer = Pointer{X: -1000, Y: -1000}

// Point is a filled dot to draw.
type Point struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// Line is a connection between two particles. Color already carries the
// opacity falloff in its alpha channel.
type Line struct {
	X1, Y1  float64
	X2, Y2  float64
	Opacity float64 // 1 at distance 0, falling linearly to 0 at the threshold
	Color   color.RGBA
}

// Frame is the draw output of one step. Hosts paint Lines first and Points
// on top.
type Frame struct {
	Lines  []Line
	Points []Point
}

// Empty reports whether the frame has nothing to draw.
func (f Frame) Empty() bool {
	return len(f.Lines) == 0 && len(f.Points) == 0
}
