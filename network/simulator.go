package network

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"
)

var (
	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("network: invalid config")

	// ErrInvalidColor indicates a colour string that could not be parsed.
	ErrInvalidColor = errors.New("network: invalid color")
)

// Config holds the tunables of a particle field.
type Config struct {
	ParticleCount      int     // number of particles, must be >= 0
	ConnectionDistance float64 // max px distance for a connecting line, <= 0 disables lines
	MouseRepelRadius   float64 // px radius of pointer repulsion, <= 0 disables it
	ParticleColor      string  // CSS colour of the dots
	LineColor          string  // CSS colour of a zero-length connection
}

// DefaultConfig returns the look of the portfolio hero background.
func DefaultConfig() Config {
	return Config{
		ParticleCount:      40,
		ConnectionDistance: 150,
		MouseRepelRadius:   100,
		ParticleColor:      "#00f3ff",
		LineColor:          "rgba(0, 243, 255, 0.15)",
	}
}

// Option customises a Simulator at construction.
type Option func(*Simulator)

// WithRand sets the random source used to scatter the initial particles.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

// WithParticles replaces the random scatter with an explicit initial state.
// The slice is copied and its length overrides Config.ParticleCount.
func WithParticles(ps []Particle) Option {
	return func(s *Simulator) {
		s.particles = append(make([]Particle, 0, len(ps)), ps...)
		s.preset = true
	}
}

// Simulator advances a particle field one display frame at a time.
//
// It is not safe for concurrent use: hosts call SetPointer, Resize and Step
// from their own frame loop.
type Simulator struct {
	width, height float64
	cfg           Config
	particleColor color.RGBA
	lineColor     color.RGBA

	particles []Particle
	pointer   Pointer
	running   bool
	preset    bool
	rng       *rand.Rand

	// reused between frames
	lines  []Line
	points []Point
}

// New creates a simulator for a canvas of the given size and scatters the
// particles over it.
func New(width, height float64, cfg Config, opts ...Option) (*Simulator, error) {
	if cfg.ParticleCount < 0 {
		return nil, fmt.Errorf("%w: particle count %d is negative", ErrInvalidConfig, cfg.ParticleCount)
	}
	pc, err := ParseColor(cfg.ParticleColor)
	if err != nil {
		return nil, fmt.Errorf("particle color: %w", err)
	}
	lc, err := ParseColor(cfg.LineColor)
	if err != nil {
		return nil, fmt.Errorf("line color: %w", err)
	}

	s := &Simulator{
		cfg:           cfg,
		particleColor: pc,
		lineColor:     lc,
		pointer:       OffscreenPointer,
		running:       true,
	}
	s.setBounds(width, height)
	for _, opt := range opts {
		opt(s)
	}

	if s.preset {
		s.cfg.ParticleCount = len(s.particles)
		for i := range s.particles {
			s.wrap(&s.particles[i])
		}
	} else {
		if s.rng == nil {
			s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		s.scatter()
	}

	s.points = make([]Point, 0, len(s.particles))
	return s, nil
}

// scatter places ParticleCount particles uniformly within bounds.
func (s *Simulator) scatter() {
	s.particles = make([]Particle, s.cfg.ParticleCount)
	for i := range s.particles {
		s.particles[i] = Particle{
			X:      s.rng.Float64() * s.width,
			Y:      s.rng.Float64() * s.height,
			VX:     (s.rng.Float64()*2 - 1) * MaxInitialSpeed,
			VY:     (s.rng.Float64()*2 - 1) * MaxInitialSpeed,
			Radius: MinRadius + s.rng.Float64()*(MaxRadius-MinRadius),
		}
	}
}

// SetPointer records the latest pointer position. Earlier samples not yet
// consumed by Step are overwritten.
func (s *Simulator) SetPointer(x, y float64) {
	s.pointer = Pointer{X: x, Y: y}
}

// ClearPointer moves the pointer offscreen, e.g. when it leaves the window.
func (s *Simulator) ClearPointer() {
	s.pointer = OffscreenPointer
}

// Pointer returns the position the next Step will use.
func (s *Simulator) Pointer() Pointer {
	return s.pointer
}

// Resize changes the canvas bounds. Particles keep their positions and
// velocities; those now outside the canvas are wrapped back in. A zero,
// negative or non-finite size (a minimised window) is ignored.
func (s *Simulator) Resize(width, height float64) {
	if !validDim(width) || !validDim(height) {
		return
	}
	if width == s.width && height == s.height {
		return
	}
	s.setBounds(width, height)
	for i := range s.particles {
		s.wrap(&s.particles[i])
	}
}

func validDim(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func (s *Simulator) setBounds(width, height float64) {
	if !validDim(width) {
		width = 0
	}
	if !validDim(height) {
		height = 0
	}
	s.width, s.height = width, height
}

// Bounds returns the canvas size.
func (s *Simulator) Bounds() (width, height float64) {
	return s.width, s.height
}

// Len returns the number of particles.
func (s *Simulator) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the current particle state.
func (s *Simulator) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}

// Config returns the configuration the simulator runs with.
func (s *Simulator) Config() Config {
	return s.cfg
}

// Running reports whether Stop has not been called yet.
func (s *Simulator) Running() bool {
	return s.running
}

// Stop ends the simulation. Further Steps return an empty frame. Calling
// Stop more than once is harmless.
func (s *Simulator) Stop() {
	s.running = false
}

// Step advances every particle by one frame and returns what to draw.
//
// The returned slices are owned by the simulator and are only valid until
// the next call to Step.
func (s *Simulator) Step() Frame {
	if !s.running {
		return Frame{}
	}

	for i := range s.particles {
		p := &s.particles[i]
		s.repel(p)

		p.VX *= Damping
		p.VY *= Damping

		x, y := p.X+p.VX, p.Y+p.VY
		if isFinite(x) && isFinite(y) {
			p.X, p.Y = x, y
		} else {
			p.VX, p.VY = 0, 0
		}
		s.wrap(p)
	}

	s.points = s.points[:0]
	for _, p := range s.particles {
		s.points = append(s.points, Point{X: p.X, Y: p.Y, Radius: p.Radius, Color: s.particleColor})
	}
	s.lines = s.connect(s.lines[:0])

	return Frame{Lines: s.lines, Points: s.points}
}

// repel pushes p away from the pointer when it is inside the repel radius.
func (s *Simulator) repel(p *Particle) {
	r := s.cfg.MouseRepelRadius
	if !(r > 0) {
		return
	}
	dx := p.X - s.pointer.X
	dy := p.Y - s.pointer.Y
	dist := math.Hypot(dx, dy)
	if !(dist > 0 && dist < r) {
		return
	}

	force := (r - dist) / r
	vx := p.VX + dx/dist*force*RepelStrength
	vy := p.VY + dy/dist*force*RepelStrength
	if isFinite(vx) && isFinite(vy) {
		p.VX, p.VY = vx, vy
	}
}

// connect appends a line for every unordered pair closer than the
// connection distance. A pair exactly at the distance is not connected.
func (s *Simulator) connect(lines []Line) []Line {
	maxDist := s.cfg.ConnectionDistance
	if !(maxDist > 0) {
		return lines
	}
	for i := 0; i < len(s.particles); i++ {
		a := s.particles[i]
		for j := i + 1; j < len(s.particles); j++ {
			b := s.particles[j]
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			if !(dist < maxDist) {
				continue
			}
			opacity := 1 - dist/maxDist
			lines = append(lines, Line{
				X1: a.X, Y1: a.Y,
				X2: b.X, Y2: b.Y,
				Opacity: opacity,
				Color:   ScaleAlpha(s.lineColor, opacity),
			})
		}
	}
	return lines
}

// wrap moves p onto the torus [0,width)x[0,height).
func (s *Simulator) wrap(p *Particle) {
	p.X = wrapCoord(p.X, s.width)
	p.Y = wrapCoord(p.Y, s.height)
}

func wrapCoord(v, size float64) float64 {
	if !(size > 0) || !isFinite(v) {
		return 0
	}
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size can round up to size
	if v >= size {
		v = 0
	}
	return v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
