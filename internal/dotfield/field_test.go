package dotfield

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

// recorder is a Surface that keeps the draw commands of the last tick
type recorder struct {
	clears  int
	circles []circle
}

type circle struct {
	x, y, r float64
	c       color.NRGBA
}

func (r *recorder) Clear() {
	r.clears++
	r.circles = r.circles[:0]
}

func (r *recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.circles = append(r.circles, circle{x, y, radius, color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func newTestField() *Field {
	return New(DefaultParams(), rand.New(rand.NewSource(1)))
}

func TestLayoutGrid(t *testing.T) {
	f := newTestField()
	f.Layout(100, 100)

	dots := f.Dots()
	if len(dots) != 16 {
		t.Fatalf("Expected 16 dots, got %d", len(dots))
	}

	want := []float64{12.5, 37.5, 62.5, 87.5}
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			d := dots[j*4+i]
			if d.X != want[i] || d.Y != want[j] {
				t.Errorf("Dot %d: expected (%.1f, %.1f), got (%.1f, %.1f)", j*4+i, want[i], want[j], d.X, d.Y)
			}
		}
	}
}

func TestLayoutInitialState(t *testing.T) {
	f := newTestField()
	f.Layout(640, 480)
	p := f.Params()

	for i, d := range f.Dots() {
		if d.Opacity < p.OpacityMin || d.Opacity > p.OpacityMax {
			t.Errorf("Dot %d: opacity %.4f outside [%.2f, %.2f]", i, d.Opacity, p.OpacityMin, p.OpacityMax)
		}
		if d.Radius != p.BaseRadius {
			t.Errorf("Dot %d: expected radius %.1f, got %.4f", i, p.BaseRadius, d.Radius)
		}
		if d.Speed < 0.002 || d.Speed >= 0.007 {
			t.Errorf("Dot %d: speed %.4f outside [0.002, 0.007)", i, d.Speed)
		}
	}
}

func TestLayoutZeroDimensionIsNoop(t *testing.T) {
	f := newTestField()
	f.Layout(0, 100)
	if len(f.Dots()) != 0 {
		t.Errorf("Expected no dots after zero-width layout, got %d", len(f.Dots()))
	}

	f.Layout(100, 100)
	f.Layout(200, 0)
	if len(f.Dots()) != 16 {
		t.Errorf("Expected previous 16 dots to survive, got %d", len(f.Dots()))
	}
	if w, h := f.Size(); w != 100 || h != 100 {
		t.Errorf("Expected size 100x100, got %.0fx%.0f", w, h)
	}
}

func TestLayoutRebuildsOnResize(t *testing.T) {
	f := newTestField()
	f.Layout(100, 100)
	before := f.Index()

	f.Layout(60, 30)
	if len(f.Dots()) != 3*2 {
		t.Errorf("Expected 6 dots after resize, got %d", len(f.Dots()))
	}
	if f.Index() == before {
		t.Error("Expected a fresh index after resize")
	}
	if f.Index().Len() != 6 {
		t.Errorf("Expected index over 6 dots, got %d", f.Index().Len())
	}
}

func TestTickWithoutPointerStaysInBounds(t *testing.T) {
	f := newTestField()
	f.Layout(300, 200)
	p := f.Params()
	r := &recorder{}

	for n := 0; n < 2000; n++ {
		f.Tick(r)
		for i, d := range f.Dots() {
			if d.Opacity < p.OpacityMin || d.Opacity > p.OpacityMax {
				t.Fatalf("Tick %d dot %d: opacity %.5f outside bounds", n, i, d.Opacity)
			}
			if d.Radius != p.BaseRadius {
				t.Fatalf("Tick %d dot %d: expected base radius, got %.4f", n, i, d.Radius)
			}
			if d.Alpha != d.Opacity {
				t.Fatalf("Tick %d dot %d: expected unboosted alpha %.4f, got %.4f", n, i, d.Opacity, d.Alpha)
			}
		}
	}
	if r.clears != 2000 {
		t.Errorf("Expected 2000 clears, got %d", r.clears)
	}
	if len(r.circles) != len(f.Dots()) {
		t.Errorf("Expected %d circles in last frame, got %d", len(f.Dots()), len(r.circles))
	}
}

func TestTickPointerOnDot(t *testing.T) {
	f := newTestField()
	f.Layout(100, 100)
	p := f.Params()

	target := 5 // (37.5, 37.5)
	d := f.Dots()[target]
	f.SetPointer(d.X, d.Y)

	r := &recorder{}
	f.Tick(r)

	got := f.Dots()[target]
	if got.Falloff != 1 {
		t.Errorf("Expected falloff 1, got %.4f", got.Falloff)
	}
	want := math.Min(1, got.Opacity+1*p.OpacityBoost)
	if got.Alpha != want {
		t.Errorf("Expected alpha %.4f, got %.4f", want, got.Alpha)
	}
	if got.Radius != p.BaseRadius+p.RadiusBoost {
		t.Errorf("Expected radius %.2f, got %.2f", p.BaseRadius+p.RadiusBoost, got.Radius)
	}

	c := r.circles[target]
	if c.x != d.X || c.y != d.Y || c.r != got.Radius {
		t.Errorf("Expected circle at (%.1f, %.1f) r=%.2f, got (%.1f, %.1f) r=%.2f", d.X, d.Y, got.Radius, c.x, c.y, c.r)
	}
	if c.c.R != 87 || c.c.G != 220 || c.c.B != 205 {
		t.Errorf("Expected dot colour 87/220/205, got %d/%d/%d", c.c.R, c.c.G, c.c.B)
	}
}

func TestTickPointerBoostShrinksWithDistance(t *testing.T) {
	f := newTestField()
	f.Layout(800, 100)
	f.SetPointer(12.5, 12.5)
	f.Tick(&recorder{})

	p := f.Params()
	prev := 2.0
	for i := 0; i < 8; i++ {
		d := f.Dots()[i]
		if d.Radius < p.BaseRadius {
			t.Errorf("Dot %d: radius %.3f below base", i, d.Radius)
		}
		if d.Falloff > prev {
			t.Errorf("Dot %d: falloff %.4f grew with distance (prev %.4f)", i, d.Falloff, prev)
		}
		prev = d.Falloff
	}
	// 12.5 + 6*25 = 162.5, exactly 150 away
	if f.Dots()[6].Falloff != 0 {
		t.Errorf("Expected no boost at the interaction radius, got %.4f", f.Dots()[6].Falloff)
	}
}

func TestClearPointerRemovesBoost(t *testing.T) {
	f := newTestField()
	f.Layout(100, 100)
	f.SetPointer(50, 50)
	f.Tick(&recorder{})
	f.ClearPointer()
	if _, _, ok := f.Pointer(); ok {
		t.Error("Expected pointer to be cleared")
	}
	f.Tick(&recorder{})

	for i, d := range f.Dots() {
		if d.Falloff != 0 || d.Radius != d.BaseRadius {
			t.Errorf("Dot %d: expected no boost, got falloff %.3f radius %.3f", i, d.Falloff, d.Radius)
		}
	}
}

func TestTickSkipsWithoutSurface(t *testing.T) {
	f := newTestField()
	f.Layout(100, 100)
	before := append([]Dot(nil), f.Dots()...)

	f.Tick(nil)
	for i := range before {
		if before[i] != f.Dots()[i] {
			t.Fatalf("Dot %d changed on a skipped frame", i)
		}
	}
}

func TestTickBeforeLayoutDrawsNothing(t *testing.T) {
	f := newTestField()
	r := &recorder{}
	f.Tick(r)
	if r.clears != 0 || len(r.circles) != 0 {
		t.Errorf("Expected no draw commands, got %d clears %d circles", r.clears, len(r.circles))
	}
}

func TestFalloff(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"at pointer", 0, 1},
		{"half way", 75, 0.25},
		{"boundary", 150, 0},
		{"beyond", 400, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Falloff(tt.distance, 150); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %.4f, got %.4f", tt.want, got)
			}
		})
	}
}

func TestDefaultParamsDerived(t *testing.T) {
	p := DefaultParams()
	if p.CellSize() != 100 {
		t.Errorf("Expected cell size 100, got %.1f", p.CellSize())
	}
	if p.SearchRadius() != 2 {
		t.Errorf("Expected search radius 2, got %d", p.SearchRadius())
	}

	p.InteractionRadius = 30
	if p.CellSize() != 50 {
		t.Errorf("Expected cell size floor of 50, got %.1f", p.CellSize())
	}
}
