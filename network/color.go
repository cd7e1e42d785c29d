package network

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads a CSS colour: #rgb, #rrggbb, rgb(r, g, b) or
// rgba(r, g, b, a) with a in [0,1].
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	}

	var args string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[len("rgb(") : len(s)-1]
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("%w: %q: want 3 or 4 components", ErrInvalidColor, s)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("%w: %q: bad channel %q", ErrInvalidColor, s, parts[i])
		}
		rgb[i] = uint8(v)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.RGBA{}, fmt.Errorf("%w: %q: bad alpha %q", ErrInvalidColor, s, parts[3])
		}
		alpha = a
	}

	return ScaleAlpha(color.RGBA{rgb[0], rgb[1], rgb[2], 255}, alpha), nil
}

// ScaleAlpha multiplies the colour's opacity by f, clamped to [0,1]. The
// result stays alpha-premultiplied as image/color expects.
func ScaleAlpha(c color.RGBA, f float64) color.RGBA {
	if math.IsNaN(f) || f <= 0 {
		return color.RGBA{}
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
		A: uint8(math.Round(float64(c.A) * f)),
	}
}
