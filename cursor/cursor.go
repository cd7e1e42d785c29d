// Package cursor animates a custom pointer: a ring that snaps to the mouse
// on a stiff spring and a dot that trails behind on a soft one.
package cursor

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring parameters, in the usual stiffness/damping/mass form.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// AngularFrequency is sqrt(k/m).
func (s Spring) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio is c / (2 sqrt(k m)).
func (s Spring) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// Springs of the ring and the trailing dot.
var (
	RingSpring = Spring{Stiffness: 500, Damping: 28, Mass: 0.5}
	DotSpring  = Spring{Stiffness: 150, Damping: 15, Mass: 0.1}
)

// Follower chases a target point on a damped spring.
type Follower struct {
	Spring
	X, Y             float64
	VX, VY           float64
	TargetX, TargetY float64

	solver   harmonica.Spring
	solverDt float64
}

// Jump places the follower on its target with no velocity.
func (f *Follower) Jump(x, y float64) {
	f.X, f.Y = x, y
	f.VX, f.VY = 0, 0
	f.TargetX, f.TargetY = x, y
}

// Step advances the follower by dt seconds.
func (f *Follower) Step(dt float64) {
	if !(dt > 0) || !(f.Mass > 0) || !(f.Stiffness > 0) {
		return
	}
	if dt != f.solverDt {
		f.solver = harmonica.NewSpring(dt, f.AngularFrequency(), f.DampingRatio())
		f.solverDt = dt
	}
	f.X, f.VX = f.solver.Update(f.X, f.VX, f.TargetX)
	f.Y, f.VY = f.solver.Update(f.Y, f.VY, f.TargetY)
}

// Settled reports whether the follower is within tol of its target and
// nearly at rest.
func (f *Follower) Settled(tol float64) bool {
	return math.Hypot(f.X-f.TargetX, f.Y-f.TargetY) < tol && math.Hypot(f.VX, f.VY) < tol
}

// Cursor is the ring-and-dot pointer. It stays hidden until the first Move.
type Cursor struct {
	Ring    Follower
	Dot     Follower
	Visible bool
	Hover   bool
}

// New returns a hidden cursor with the default springs.
func New() *Cursor {
	return &Cursor{
		Ring: Follower{Spring: RingSpring},
		Dot:  Follower{Spring: DotSpring},
	}
}

// Move sets the target of both followers. The first move places them
// directly on the pointer instead of flying in from the origin.
func (c *Cursor) Move(x, y float64) {
	if !c.Visible {
		c.Ring.Jump(x, y)
		c.Dot.Jump(x, y)
		c.Visible = true
		return
	}
	c.Ring.TargetX, c.Ring.TargetY = x, y
	c.Dot.TargetX, c.Dot.TargetY = x, y
}

// Update advances both followers by dt seconds.
func (c *Cursor) Update(dt float64) {
	if !c.Visible {
		return
	}
	c.Ring.Step(dt)
	c.Dot.Step(dt)
}

// RingScale is the ring's size multiplier; it grows while hovering.
func (c *Cursor) RingScale() float64 {
	if c.Hover {
		return 1.5
	}
	return 1
}

// Tracker turns polled pointer positions into samples for a host that has
// no motion events, only a current position each tick.
type Tracker struct {
	x, y int
	seen bool
}

// Sample is the outcome of one poll.
type Sample struct {
	Inside bool // the pointer is over the canvas and should be fed to the field
	Moved  bool // the pointer moved since the previous poll over the canvas
}

// Poll classifies position (x, y) against a width x height canvas. The first
// position ever polled is not a move, so a resting pointer left over from
// before the window opened does not count.
func (t *Tracker) Poll(x, y int, width, height float64) Sample {
	if x < 0 || y < 0 || float64(x) >= width || float64(y) >= height {
		return Sample{}
	}
	moved := t.seen && (x != t.x || y != t.y)
	t.x, t.y, t.seen = x, y, true
	return Sample{Inside: true, Moved: moved}
}
