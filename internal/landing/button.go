package landing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/aichair/internal/motion"
)

type buttonStyle int

const (
	styleSolid buttonStyle = iota
	styleOutline
	styleGradient
)

const (
	hoverScale = 1.03
	pressScale = 0.97
)

type button struct {
	label  string
	style  buttonStyle
	bounds rect

	scale   *motion.Spring
	hovered bool
	pressed bool
}

func newButton(label string, style buttonStyle, fps int) *button {
	s := motion.NewSpring(fps, motion.HoverFrequency, motion.HoverDamping)
	s.Snap(1)
	s.Set(1)
	return &button{label: label, style: style, scale: s}
}

// update tracks hover and press against a cursor in the same space as
// bounds and reports a completed click.
func (b *button) update(in *input, mx, my float64) bool {
	b.hovered = b.bounds.contains(mx, my)
	clicked := false
	if b.hovered && in.pressed {
		b.pressed = true
	}
	if in.released {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}

	switch {
	case b.pressed:
		b.scale.Set(pressScale)
	case b.hovered:
		b.scale.Set(hoverScale)
	default:
		b.scale.Set(1)
	}
	b.scale.Step()
	return clicked
}

// draw renders the button shifted by (dx, dy) at the given opacity. phase
// animates the gradient style.
func (b *button) draw(dst *ebiten.Image, l *labels, dx, dy, alpha, phase float64) {
	r := b.bounds.offset(dx, dy).scaled(b.scale.Value())
	radius := 6.0

	switch b.style {
	case styleSolid:
		fillRoundRect(dst, r.X, r.Y, r.W, r.H, radius, solid(fade(colPrimary, alpha)))
		l.drawCentered(dst, b.label, r.X+r.W/2, r.Y+(r.H-glyphH)/2, 1, fade(colDark, alpha))
	case styleOutline:
		if b.hovered {
			fillRoundRect(dst, r.X, r.Y, r.W, r.H, radius, solid(fade(colGray800, alpha*0.5)))
		}
		strokeRoundRect(dst, r.X, r.Y, r.W, r.H, radius, 1, fade(colGray600, alpha))
		l.drawCentered(dst, b.label, r.X+r.W/2, r.Y+(r.H-glyphH)/2, 1, fade(colWhite, alpha))
	case styleGradient:
		x0, w := float32(r.X), float32(r.W)
		fillRoundRect(dst, r.X, r.Y, r.W, r.H, radius, func(x float32) color.NRGBA {
			c := motion.GradientColor(float64((x-x0)/w), phase)
			return fade(color.NRGBA{c.R, c.G, c.B, 255}, alpha)
		})
		l.drawCentered(dst, b.label, r.X+r.W/2, r.Y+(r.H-glyphH)/2, 1, fade(colDark, alpha))
	}
}
