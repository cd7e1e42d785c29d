package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-network/config"
	"github.com/olivierh59500/particle-network/cursor"
	"github.com/olivierh59500/particle-network/effects"
	"github.com/olivierh59500/particle-network/network"
)

// Rendering constants
const (
	LineWidth      = 1.0
	CursorSize     = 24.0 // side of the diamond ring
	DotSize        = 8.0  // diameter of the trailing dot
	BracketArm     = 4.0
	MaxDetections  = 6
	VisionInterval = 12 // frames between overlay refreshes
)

var (
	background  = color.RGBA{5, 5, 16, 255}
	ringColor   = color.RGBA{255, 255, 255, 255}
	accentColor = color.RGBA{0, 243, 255, 255}
)

// Simulation adapts a particle network to an Ebitengine window.
type Simulation struct {
	sim     *network.Simulator
	frame   network.Frame
	twinkle *effects.Twinkle
	cursor  *cursor.Cursor

	VisionMode bool
	detections []effects.Detection

	TickCount int
	tps       float64
	pointer   cursor.Tracker
}

// NewSimulation wraps sim for display with the given settings.
func NewSimulation(sim *network.Simulator, conf *config.Config) *Simulation {
	s := &Simulation{
		sim:        sim,
		VisionMode: conf.Vision,
		tps:        float64(conf.FPS),
	}
	if conf.Twinkle {
		s.twinkle = effects.NewTwinkle(conf.Seed)
	}
	if conf.Cursor {
		s.cursor = cursor.New()
	}
	return s
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	if s.handleInput() {
		s.sim.Stop()
		return ebiten.Termination
	}

	s.frame = s.sim.Step()
	s.TickCount++

	if s.cursor != nil {
		s.cursor.Update(1 / s.tps)
	}
	if s.VisionMode && s.TickCount%VisionInterval == 1 {
		s.detections = effects.Detect(s.frame.Points, s.sim.Pointer(), s.sim.Config().MouseRepelRadius, MaxDetections)
	}
	if s.cursor != nil {
		s.cursor.Hover = s.VisionMode && len(s.detections) > 0
	}
	return nil
}

// handleInput feeds the pointer to the simulator and processes keys. It
// reports whether the user asked to quit.
func (s *Simulation) handleInput() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		s.VisionMode = !s.VisionMode
		s.detections = nil
	}

	mx, my := ebiten.CursorPosition()
	w, h := s.sim.Bounds()
	sample := s.pointer.Poll(mx, my, w, h)
	if !sample.Inside {
		s.sim.ClearPointer()
		return false
	}
	s.sim.SetPointer(float64(mx), float64(my))
	// Only a move shows the custom cursor.
	if sample.Moved && s.cursor != nil {
		s.cursor.Move(float64(mx), float64(my))
	}
	return false
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, l := range s.frame.Lines {
		vector.StrokeLine(screen, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), LineWidth, l.Color, true)
	}

	t := float64(s.TickCount) / s.tps
	for i, p := range s.frame.Points {
		col := p.Color
		if s.twinkle != nil {
			col = network.ScaleAlpha(col, s.twinkle.Alpha(i, t))
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), col, true)
	}

	if s.VisionMode {
		s.drawVision(screen)
	}
	if s.cursor != nil && s.cursor.Visible {
		s.drawCursor(screen)
	}
}

// drawVision frames detected particles with corner brackets and a label.
func (s *Simulation) drawVision(screen *ebiten.Image) {
	for _, d := range s.detections {
		col := network.ScaleAlpha(accentColor, 0.4+0.6*d.Confidence)
		for _, seg := range effects.Brackets(d.X, d.Y, d.Size, BracketArm) {
			vector.StrokeLine(screen, float32(seg.X1), float32(seg.Y1), float32(seg.X2), float32(seg.Y2), 1, col, true)
		}
	}
	if len(s.detections) > 0 {
		d := s.detections[0]
		ebitenutil.DebugPrintAt(screen, d.Label(), int(d.X-d.Size/2), int(d.Y-d.Size/2)-18)
	}
}

// drawCursor paints the diamond ring and the trailing dot.
func (s *Simulation) drawCursor(screen *ebiten.Image) {
	c := s.cursor
	half := float32(CursorSize * c.RingScale() / 2)
	rx, ry := float32(c.Ring.X), float32(c.Ring.Y)

	corners := [4][2]float32{{rx, ry - half}, {rx + half, ry}, {rx, ry + half}, {rx - half, ry}}
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 2, ringColor, true)
	}

	vector.DrawFilledCircle(screen, float32(c.Dot.X), float32(c.Dot.Y), DotSize/2, network.ScaleAlpha(accentColor, 0.5), true)
}

// Layout keeps the canvas the size of the window and tells the simulator.
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.sim.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
