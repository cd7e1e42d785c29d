// Package terminal renders a particle network into a tcell screen.
package terminal

import (
	"context"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-network/network"
)

// Glyphs by increasing line opacity.
var shades = []rune{'·', '∙', '•'}

const dotGlyph = '●'

// Terminal drives a simulator from a tcell screen: mouse motion becomes the
// pointer, resizes become canvas resizes, and every tick paints one frame.
type Terminal struct {
	screen   tcell.Screen
	sim      *network.Simulator
	interval time.Duration

	// Simulated pixels per cell
	cellW, cellH float64

	closeOnce sync.Once
}

// New wraps an initialised screen. The simulator is resized to the screen
// right away.
func New(screen tcell.Screen, sim *network.Simulator, fps int, cellW, cellH float64) *Terminal {
	if fps <= 0 {
		fps = 60
	}
	t := &Terminal{
		screen:   screen,
		sim:      sim,
		interval: time.Second / time.Duration(fps),
		cellW:    cellW,
		cellH:    cellH,
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	t.resize()
	return t
}

// Run ticks until ctx is done or the user quits, then tears down.
func (t *Terminal) Run(ctx context.Context) {
	defer t.Close()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// screen finalised
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !t.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.Draw(t.sim.Step())
			t.screen.Show()
		}
	}
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.sim.SetPointer((float64(x)+0.5)*t.cellW, (float64(y)+0.5)*t.cellH)
	case *tcell.EventFocus:
		if !ev.Focused {
			t.sim.ClearPointer()
		}
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) resize() {
	w, h := t.screen.Size()
	t.sim.Resize(float64(w)*t.cellW, float64(h)*t.cellH)
}

// Draw paints a frame: lines first, then dots on top.
func (t *Terminal) Draw(f network.Frame) {
	t.screen.Clear()
	for _, l := range f.Lines {
		t.line(l)
	}
	for _, p := range f.Points {
		cx, cy := t.cell(p.X, p.Y)
		t.screen.SetContent(cx, cy, dotGlyph, nil, tcell.StyleDefault.Foreground(rgb(p.Color)))
	}
}

// line rasterises a connection with Bresenham's algorithm.
func (t *Terminal) line(l network.Line) {
	x0, y0 := t.cell(l.X1, l.Y1)
	x1, y1 := t.cell(l.X2, l.Y2)
	glyph := Shade(l.Opacity)
	style := tcell.StyleDefault.Foreground(rgb(l.Color))

	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		t.screen.SetContent(x0, y0, glyph, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (t *Terminal) cell(x, y float64) (int, int) {
	return int(x / t.cellW), int(y / t.cellH)
}

// Close finalises the screen and stops the simulator. It is safe to call
// more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.sim.Stop()
		t.screen.Fini()
		log.Printf("terminal closed")
	})
}

// Shade picks a glyph for a line of the given opacity.
func Shade(opacity float64) rune {
	i := int(opacity * float64(len(shades)))
	if i < 0 {
		i = 0
	}
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}

// rgb converts a premultiplied colour to a terminal colour. Translucent
// colours are un-premultiplied since a cell cannot blend.
func rgb(c color.RGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	un := func(v uint8) int32 {
		return min(int32(v)*255/int32(c.A), 255)
	}
	return tcell.NewRGBColor(un(c.R), un(c.G), un(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
