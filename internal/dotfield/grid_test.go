package dotfield

import (
	"math"
	"math/rand"
	"testing"
)

func TestIndexCompleteness(t *testing.T) {
	f := New(DefaultParams(), rand.New(rand.NewSource(7)))
	f.Layout(1024, 768)
	ix := f.Index()
	size := ix.CellSize()

	for i, d := range f.Dots() {
		c := ix.CellOf(d.X, d.Y)
		want := Cell{int(math.Floor(d.X / size)), int(math.Floor(d.Y / size))}
		if c != want {
			t.Errorf("Dot %d: expected cell %v, got %v", i, want, c)
		}
		found := false
		for _, j := range ix.Bucket(c) {
			if j == i {
				found = true
			}
		}
		if !found {
			t.Errorf("Dot %d missing from bucket %v", i, c)
		}
	}

	if ix.Len() != len(f.Dots()) {
		t.Errorf("Expected index length %d, got %d", len(f.Dots()), ix.Len())
	}

	// each dot lives in exactly one bucket
	count := 0
	for x := -1; x <= 11; x++ {
		for y := -1; y <= 8; y++ {
			count += len(ix.Bucket(Cell{x, y}))
		}
	}
	if count != len(f.Dots()) {
		t.Errorf("Expected %d indexed entries, got %d", len(f.Dots()), count)
	}
}

func TestIndexCellOfNegative(t *testing.T) {
	ix := NewIndex(100)
	if c := ix.CellOf(-0.5, 250); c != (Cell{-1, 2}) {
		t.Errorf("Expected cell {-1 2}, got %v", c)
	}
}

func TestCandidatesHaveNoFalseNegatives(t *testing.T) {
	p := DefaultParams()
	f := New(p, rand.New(rand.NewSource(3)))
	f.Layout(1280, 720)
	ix := f.Index()
	rng := rand.New(rand.NewSource(11))

	for n := 0; n < 200; n++ {
		px := rng.Float64()*1500 - 100
		py := rng.Float64()*900 - 100

		cand := make(map[int]bool)
		for _, i := range ix.Candidates(px, py, p.SearchRadius(), nil) {
			cand[i] = true
		}

		for i, d := range f.Dots() {
			dist := math.Hypot(d.X-px, d.Y-py)
			if dist < p.InteractionRadius && !cand[i] {
				t.Fatalf("Pointer (%.1f, %.1f): dot %d at distance %.1f not a candidate", px, py, i, dist)
			}
			if cand[i] {
				// candidates stay within the searched square of cells
				limit := float64(p.SearchRadius()+1) * ix.CellSize() * math.Sqrt2
				if dist > limit {
					t.Fatalf("Pointer (%.1f, %.1f): candidate %d too far away (%.1f > %.1f)", px, py, i, dist, limit)
				}
			}
		}
	}
}

func TestCandidatesAppendToBuffer(t *testing.T) {
	f := New(DefaultParams(), rand.New(rand.NewSource(1)))
	f.Layout(100, 100)

	buf := []int{-1}
	buf = f.Index().Candidates(50, 50, 0, buf)
	if buf[0] != -1 {
		t.Errorf("Expected existing entries to be kept, got %d", buf[0])
	}
	if len(buf) != 1+16 {
		t.Errorf("Expected 17 entries, got %d", len(buf))
	}
}
