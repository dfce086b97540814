// Package motion holds the timing side of the page's animations: springs,
// entrance reveals, the rotating headline and the shimmer sweep. Nothing in
// here draws.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring presets converted from stiffness/damping pairs with unit mass:
// frequency = sqrt(k), ratio = c / (2*sqrt(k)).
var (
	// RotateFrequency and RotateDamping match stiffness 250, damping 18.
	RotateFrequency = math.Sqrt(250)
	RotateDamping   = 18 / (2 * math.Sqrt(250))

	// HoverFrequency and HoverDamping match stiffness 400, damping 15.
	HoverFrequency = math.Sqrt(400)
	HoverDamping   = 15 / (2 * math.Sqrt(400))
)

const settleEpsilon = 1e-3

// Spring is a single damped value chasing a target.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Set changes the target without moving the value.
func (s *Spring) Set(target float64) { s.target = target }

// Snap places the value at v at rest.
func (s *Spring) Snap(v float64) {
	s.pos, s.vel = v, 0
}

// Step advances one frame and returns the new value.
func (s *Spring) Step() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

func (s *Spring) Value() float64  { return s.pos }
func (s *Spring) Target() float64 { return s.target }

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	return math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon
}
