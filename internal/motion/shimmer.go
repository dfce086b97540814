package motion

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

// ShinePeak is the strongest white the sweep adds (white/30 at half opacity).
const ShinePeak = 0.3 * 0.5

// Shimmer sweeps a soft highlight band across a strip, left to right, once
// per period.
type Shimmer struct {
	Period float64
	t      float64
}

func (s *Shimmer) Update(dt float64) {
	s.t = math.Mod(s.t+dt, s.Period)
}

// Center returns the band centre for a strip of the given width. The band
// starts fully left of the strip and leaves fully right of it.
func (s *Shimmer) Center(width float64) float64 {
	p := s.t / s.Period
	return -width + p*3*width
}

// BandAlpha is the highlight opacity at x for a band centred on center.
func BandAlpha(x, center, halfWidth float64) float64 {
	if halfWidth <= 0 {
		return 0
	}
	k := 1 - math.Abs(x-center)/halfWidth
	if k <= 0 {
		return 0
	}
	return k * ShinePeak
}

// Gradient hues span the brand green into cyan.
const (
	gradientHueFrom = 158.0
	gradientHueTo   = 190.0
)

// GradientColor samples the animated button gradient at x in [0, 1].
// phase drifts the hues back and forth over time.
func GradientColor(x, phase float64) color.RGBA {
	x = math.Max(0, math.Min(1, x))
	hue := gradientHueFrom + (gradientHueTo-gradientHueFrom)*x + 12*math.Sin(phase)
	hue = math.Mod(hue+360, 360)
	r, g, b, err := colorconv.HSVToRGB(hue, 0.95, 0.95)
	if err != nil {
		return color.RGBA{R: 12, G: 242, B: 160, A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
