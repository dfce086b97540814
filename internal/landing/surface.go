package landing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/aichair/internal/dotfield"
)

// canvas is the offscreen image the dot field draws into.
type canvas struct {
	img *ebiten.Image
}

func (c *canvas) Clear() { c.img.Clear() }

func (c *canvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}

// resize replaces the backing image when the size changes.
func (c *canvas) resize(w, h int) {
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *canvas) release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

// surface hands the canvas to the dot field loop, or nil while there is no
// backing image yet.
func (c *canvas) surface() dotfield.Surface {
	if c.img == nil {
		return nil
	}
	return c
}
