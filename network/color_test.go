package network

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"Long hex", "#00f3ff", color.RGBA{0, 243, 255, 255}},
		{"Short hex", "#fff", color.RGBA{255, 255, 255, 255}},
		{"Upper case", "#FF0000", color.RGBA{255, 0, 0, 255}},
		{"rgb", "rgb(10, 20, 30)", color.RGBA{10, 20, 30, 255}},
		{"rgba opaque", "rgba(10,20,30,1)", color.RGBA{10, 20, 30, 255}},
		{"rgba translucent", "rgba(0, 243, 255, 0.15)", color.RGBA{0, 36, 38, 38}},
		{"rgba transparent", "rgba(0, 243, 255, 0)", color.RGBA{}},
		{"Padded", "  #000000 ", color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"cyan",
		"#12",
		"#gg0000",
		"rgb(1, 2)",
		"rgb(256, 0, 0)",
		"rgba(0, 0, 0, 1.5)",
		"rgba(0, 0, 0, x)",
		"hsl(0, 0%, 0%)",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Expected ErrInvalidColor for %q, got %v", in, err)
			}
		})
	}
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	tests := []struct {
		name string
		f    float64
		want color.RGBA
	}{
		{"Full", 1, c},
		{"Above one clamps", 3, c},
		{"Half", 0.5, color.RGBA{100, 50, 25, 128}},
		{"Zero", 0, color.RGBA{}},
		{"Negative", -1, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleAlpha(c, tt.f); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
