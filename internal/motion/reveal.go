package motion

import "math"

// Reveal is a delayed ease-out entrance. Offset is the distance the element
// travels into place, in pixels.
type Reveal struct {
	Delay    float64
	Duration float64
	Offset   float64
}

// Staggered returns the reveal of the i-th item of a sequence.
func Staggered(base, step float64, i int, duration, offset float64) Reveal {
	return Reveal{Delay: base + step*float64(i), Duration: duration, Offset: offset}
}

// Progress maps seconds since mount to [0, 1].
func (r Reveal) Progress(t float64) float64 {
	if t <= r.Delay {
		return 0
	}
	if r.Duration <= 0 {
		return 1
	}
	p := math.Min(1, (t-r.Delay)/r.Duration)
	return 1 - math.Pow(1-p, 3)
}

func (r Reveal) Alpha(t float64) float64 { return r.Progress(t) }

// Shift is the remaining displacement at t.
func (r Reveal) Shift(t float64) float64 { return r.Offset * (1 - r.Progress(t)) }

// InView fires once when enough of an element has scrolled into view.
type InView struct {
	Amount    float64
	triggered bool
	at        float64
}

// Observe records the visible fraction of the element at time now.
func (v *InView) Observe(fraction, now float64) {
	if !v.triggered && fraction >= v.Amount {
		v.triggered = true
		v.at = now
	}
}

func (v *InView) Triggered() bool { return v.triggered }

// Elapsed returns seconds since the trigger, or zero before it.
func (v *InView) Elapsed(now float64) float64 {
	if !v.triggered {
		return 0
	}
	return now - v.at
}

// VisibleFraction is the share of [top, bottom) inside [viewTop, viewBottom).
func VisibleFraction(top, bottom, viewTop, viewBottom float64) float64 {
	h := bottom - top
	if h <= 0 {
		return 0
	}
	overlap := math.Min(bottom, viewBottom) - math.Max(top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return overlap / h
}
