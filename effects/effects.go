// Package effects holds render-only decorations layered over a particle
// frame. Nothing here feeds back into the simulation.
package effects

import (
	"fmt"
	"math"
	"sort"

	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/particle-network/network"
)

// Twinkle modulates dot opacity with smooth noise so the field shimmers.
type Twinkle struct {
	Noise *perlin.Perlin
	Speed float64 // noise units per second
	Depth float64 // 0 = no shimmer, 1 = dots may fade out entirely
}

// NewTwinkle returns a shimmer with the given seed.
func NewTwinkle(seed int64) *Twinkle {
	return &Twinkle{
		Noise: perlin.NewPerlin(2, 2, 3, seed),
		Speed: 0.6,
		Depth: 0.5,
	}
}

// Alpha returns the opacity factor of dot i at time t seconds, in [1-Depth, 1].
func (tw *Twinkle) Alpha(i int, t float64) float64 {
	n := tw.Noise.Noise2D(float64(i)*0.731+0.5, t*tw.Speed)
	// Noise2D is roughly in [-1,1]
	n = (n + 1) / 2
	n = math.Max(0, math.Min(1, n))
	return 1 - tw.Depth*(1-n)
}

// Detection is a particle picked out by the vision overlay.
type Detection struct {
	X, Y       float64
	Size       float64 // side of the bracket box
	Confidence float64 // 1 at the pointer, 0 at the edge of the radius
}

// Label is the text shown above a detection box.
func (d Detection) Label() string {
	return fmt.Sprintf("DETECTED %.2f", d.Confidence)
}

// Detect picks up to limit points within radius of the pointer, nearest first.
func Detect(points []network.Point, ptr network.Pointer, radius float64, limit int) []Detection {
	if !(radius > 0) || limit <= 0 {
		return nil
	}
	var out []Detection
	for _, p := range points {
		d := math.Hypot(p.X-ptr.X, p.Y-ptr.Y)
		if !(d < radius) {
			continue
		}
		out = append(out, Detection{
			X:          p.X,
			Y:          p.Y,
			Size:       p.Radius*4 + 8,
			Confidence: 1 - d/radius,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Segment is a straight stroke.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Brackets returns the eight strokes of four corner brackets framing a box
// of the given side centred on (x, y). arm is the length of each stroke.
func Brackets(x, y, side, arm float64) []Segment {
	h := side / 2
	l, r, t, b := x-h, x+h, y-h, y+h
	return []Segment{
		{l, t, l + arm, t}, {l, t, l, t + arm}, // top-left
		{r, t, r - arm, t}, {r, t, r, t + arm}, // top-right
		{l, b, l + arm, b}, {l, b, l, b - arm}, // bottom-left
		{r, b, r - arm, b}, {r, b, r, b - arm}, // bottom-right
	}
}
