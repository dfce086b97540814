package motion

import "math"

const (
	enterFrom = -1.0 // one line above
	exitTo    = 1.1
)

// Glyph is one animated character. Offset is in line heights, positive down.
type Glyph struct {
	Rune   rune
	Column int
	Offset float64
	Alpha  float64
}

type word struct {
	runes   []rune
	springs []*Spring
	started float64
}

// Rotator cycles through texts, animating each word in character by
// character from the last one while the previous word drops out.
type Rotator struct {
	texts    []string
	interval float64
	stagger  float64
	fps      int

	index   int
	clock   float64
	since   float64
	current *word
	leaving *word
}

// NewRotator starts on texts[0] with its entrance animation pending.
func NewRotator(texts []string, interval, stagger float64, fps int) *Rotator {
	r := &Rotator{
		texts:    texts,
		interval: interval,
		stagger:  stagger,
		fps:      fps,
	}
	if len(texts) > 0 {
		r.current = r.enter(texts[0])
	}
	return r
}

func (r *Rotator) Index() int { return r.index }

func (r *Rotator) Current() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[r.index]
}

// Longest returns the rune count of the longest text, for layout.
func (r *Rotator) Longest() int {
	n := 0
	for _, t := range r.texts {
		n = max(n, len([]rune(t)))
	}
	return n
}

// Update advances the animation by dt seconds.
func (r *Rotator) Update(dt float64) {
	if r.current == nil {
		return
	}
	r.clock += dt
	r.since += dt

	if len(r.texts) > 1 && r.since >= r.interval {
		r.since -= r.interval
		r.index = (r.index + 1) % len(r.texts)
		r.leaving = r.current
		for _, s := range r.leaving.springs {
			s.Set(exitTo)
		}
		r.leaving.started = r.clock
		r.current = r.enter(r.texts[r.index])
	}

	r.step(r.current)
	if r.leaving != nil {
		r.step(r.leaving)
		if r.done(r.leaving) {
			r.leaving = nil
		}
	}
}

// Glyphs returns the characters of the entering word and, while it is still
// visible, the leaving one.
func (r *Rotator) Glyphs() (entering, leaving []Glyph) {
	if r.current != nil {
		entering = glyphs(r.current)
	}
	if r.leaving != nil {
		leaving = glyphs(r.leaving)
	}
	return entering, leaving
}

func (r *Rotator) enter(text string) *word {
	runes := []rune(text)
	w := &word{runes: runes, springs: make([]*Spring, len(runes)), started: r.clock}
	for i := range runes {
		s := NewSpring(r.fps, RotateFrequency, RotateDamping)
		s.Snap(enterFrom)
		s.Set(0)
		w.springs[i] = s
	}
	return w
}

// step moves every character whose stagger delay has elapsed.
func (r *Rotator) step(w *word) {
	n := len(w.runes)
	for i, s := range w.springs {
		delay := float64(n-1-i) * r.stagger
		if r.clock-w.started >= delay {
			s.Step()
		}
	}
}

func (r *Rotator) done(w *word) bool {
	for _, s := range w.springs {
		if s.Value() < exitTo-settleEpsilon*10 {
			return false
		}
	}
	return true
}

func glyphs(w *word) []Glyph {
	out := make([]Glyph, len(w.runes))
	for i, s := range w.springs {
		off := s.Value()
		var alpha float64
		if s.Target() > 0 {
			alpha = 1 - off/exitTo
		} else {
			alpha = 1 - math.Abs(off)/math.Abs(enterFrom)
		}
		out[i] = Glyph{
			Rune:   w.runes[i],
			Column: i,
			Offset: off,
			Alpha:  math.Max(0, math.Min(1, alpha)),
		}
	}
	return out
}
