// Package dotfield animates a grid of pulsing dots that brighten and grow
// near the pointer.
package dotfield

import (
	"image/color"
	"math"
	"math/rand"
)

// Params are the visual tunables of a field.
type Params struct {
	Spacing           float64
	OpacityMin        float64
	OpacityMax        float64
	BaseRadius        float64
	InteractionRadius float64
	OpacityBoost      float64
	RadiusBoost       float64
	Color             color.RGBA
}

// DefaultParams returns the stock look of the hero background.
func DefaultParams() Params {
	return Params{
		Spacing:           25,
		OpacityMin:        0.40,
		OpacityMax:        0.50,
		BaseRadius:        1,
		InteractionRadius: 150,
		OpacityBoost:      0.6,
		RadiusBoost:       2.5,
		Color:             color.RGBA{R: 87, G: 220, B: 205, A: 255},
	}
}

// CellSize is the side of one spatial index cell, coarser than Spacing so
// that the interaction radius spans only a couple of cells.
func (p Params) CellSize() float64 {
	return math.Max(50, math.Floor(p.InteractionRadius/1.5))
}

// SearchRadius is how many cells around the pointer's cell are searched.
func (p Params) SearchRadius() int {
	return int(math.Ceil(p.InteractionRadius / p.CellSize()))
}

// Dot is a single stationary particle.
type Dot struct {
	X, Y       float64
	BaseRadius float64
	Radius     float64
	Target     float64 // opacity the oscillation is heading to
	Opacity    float64 // oscillating opacity, always within [OpacityMin, OpacityMax]
	Speed      float64 // signed opacity step per tick
	Falloff    float64 // pointer falloff factor of the last tick
	Alpha      float64 // opacity actually drawn in the last tick
}

// Surface receives the draw commands of a tick.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
}

// Field owns the dots, their spatial index and the pointer state.
type Field struct {
	params Params
	rng    *rand.Rand

	width, height float64
	dots          []Dot
	index         *Index

	pointerX, pointerY float64
	hasPointer         bool

	candidates []int
}

// New returns an empty field. Layout must be called before anything is drawn.
func New(params Params, rng *rand.Rand) *Field {
	return &Field{
		params: params,
		rng:    rng,
		index:  NewIndex(params.CellSize()),
	}
}

// Params returns the tunables the field was built with.
func (f *Field) Params() Params { return f.params }

// Dots returns the current dots. The slice is owned by the field.
func (f *Field) Dots() []Dot { return f.dots }

// Index returns the spatial index of the current layout.
func (f *Field) Index() *Index { return f.index }

// Size returns the dimensions of the last accepted layout.
func (f *Field) Size() (float64, float64) { return f.width, f.height }

// Layout rebuilds the dot grid and its index for a surface of the given size.
// A zero dimension leaves the previous layout untouched.
func (f *Field) Layout(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	p := f.params
	cols := int(math.Ceil(width / p.Spacing))
	rows := int(math.Ceil(height / p.Spacing))

	dots := make([]Dot, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			opacity := f.randomOpacity()
			dots = append(dots, Dot{
				X:          float64(i)*p.Spacing + p.Spacing/2,
				Y:          float64(j)*p.Spacing + p.Spacing/2,
				BaseRadius: p.BaseRadius,
				Radius:     p.BaseRadius,
				Target:     opacity,
				Opacity:    opacity,
				Speed:      f.rng.Float64()*0.005 + 0.002,
				Alpha:      opacity,
			})
		}
	}

	index := NewIndex(p.CellSize())
	index.Build(dots)

	f.width, f.height = width, height
	f.dots = dots
	f.index = index
}

// SetPointer records the pointer in surface-local coordinates.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// ClearPointer forgets the pointer, e.g. when it leaves the window.
func (f *Field) ClearPointer() {
	f.hasPointer = false
}

// Pointer returns the recorded pointer, if any.
func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Tick advances the field one frame and draws it onto s. A nil surface or
// an unsized field skips the frame entirely.
func (f *Field) Tick(s Surface) {
	if s == nil || f.width == 0 || f.height == 0 {
		return
	}
	p := f.params

	for i := range f.dots {
		f.oscillate(&f.dots[i])
		f.dots[i].Radius = f.dots[i].BaseRadius
		f.dots[i].Falloff = 0
	}

	if f.hasPointer {
		f.candidates = f.index.Candidates(f.pointerX, f.pointerY, p.SearchRadius(), f.candidates[:0])
		rsq := p.InteractionRadius * p.InteractionRadius
		for _, i := range f.candidates {
			d := &f.dots[i]
			dx := d.X - f.pointerX
			dy := d.Y - f.pointerY
			if distSq := dx*dx + dy*dy; distSq < rsq {
				d.Falloff = Falloff(math.Sqrt(distSq), p.InteractionRadius)
			}
		}
	}

	s.Clear()
	for i := range f.dots {
		d := &f.dots[i]
		d.Alpha = math.Min(1, d.Opacity+d.Falloff*p.OpacityBoost)
		d.Radius = d.BaseRadius + d.Falloff*p.RadiusBoost
		s.FillCircle(d.X, d.Y, d.Radius, color.NRGBA{
			R: p.Color.R,
			G: p.Color.G,
			B: p.Color.B,
			A: uint8(math.Round(d.Alpha * 255)),
		})
	}
}

// Falloff is the squared linear decay of the pointer boost: 1 at the pointer,
// 0 at and beyond radius.
func Falloff(distance, radius float64) float64 {
	k := math.Max(0, 1-distance/radius)
	return k * k
}

// oscillate bounces the dot's opacity between the floor and its target,
// drawing a new target at each bounce.
func (f *Field) oscillate(d *Dot) {
	p := f.params
	d.Opacity += d.Speed
	if d.Opacity >= d.Target || d.Opacity <= p.OpacityMin {
		d.Speed = -d.Speed
		d.Opacity = math.Max(p.OpacityMin, math.Min(d.Opacity, p.OpacityMax))
		d.Target = f.randomOpacity()
	}
}

func (f *Field) randomOpacity() float64 {
	p := f.params
	return f.rng.Float64()*(p.OpacityMax-p.OpacityMin) + p.OpacityMin
}
