package landing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16

	maxCachedLabels = 512
)

// labels renders strings with the debug font once and reuses the images.
type labels struct {
	cache map[string]*ebiten.Image
}

func newLabels() *labels {
	return &labels{cache: make(map[string]*ebiten.Image)}
}

func (l *labels) image(s string) *ebiten.Image {
	if img, ok := l.cache[s]; ok {
		return img
	}
	if len(l.cache) >= maxCachedLabels {
		l.dispose()
	}
	w := max(1, len([]rune(s))*glyphW)
	img := ebiten.NewImage(w, glyphH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	l.cache[s] = img
	return img
}

// draw renders s with its top-left corner at (x, y).
func (l *labels) draw(dst *ebiten.Image, s string, x, y, scale float64, c color.NRGBA) {
	if s == "" || c.A == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(l.image(s), op)
}

// drawCentered renders s horizontally centred on cx.
func (l *labels) drawCentered(dst *ebiten.Image, s string, cx, y, scale float64, c color.NRGBA) {
	l.draw(dst, s, cx-textWidth(s, scale)/2, y, scale, c)
}

func (l *labels) dispose() {
	for k, img := range l.cache {
		img.Deallocate()
		delete(l.cache, k)
	}
}

func textWidth(s string, scale float64) float64 {
	return float64(len([]rune(s))*glyphW) * scale
}

func lineHeight(scale float64) float64 {
	return glyphH * scale
}

// columns is how many glyphs fit in width at scale.
func columns(width, scale float64) int {
	return max(1, int(width/(glyphW*scale)))
}
