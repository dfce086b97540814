package landing

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Palette
var (
	colDark    = color.NRGBA{17, 17, 17, 255}
	colPrimary = color.NRGBA{12, 242, 160, 255}
	colWhite   = color.NRGBA{255, 255, 255, 255}
	colGray300 = color.NRGBA{209, 213, 219, 255}
	colGray400 = color.NRGBA{156, 163, 175, 255}
	colGray500 = color.NRGBA{107, 114, 128, 255}
	colGray600 = color.NRGBA{75, 85, 99, 255}
	colGray700 = color.NRGBA{55, 65, 81, 255}
	colGray800 = color.NRGBA{31, 41, 55, 255}
	colGray900 = color.NRGBA{17, 24, 39, 255}
	colPill    = color.NRGBA{26, 26, 26, 255}
	colInput   = color.NRGBA{42, 42, 42, 255}
	colError   = color.NRGBA{248, 113, 113, 255}
)

// fade returns c with its alpha multiplied by a.
func fade(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// lerpColor mixes a toward b by t in [0, 1].
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

func roundRectPath(x, y, w, h, r float32) *vector.Path {
	r = min(r, w/2, h/2)
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

// shade colours a vertex at x.
type shade func(x float32) color.NRGBA

func solid(c color.NRGBA) shade {
	return func(float32) color.NRGBA { return c }
}

func drawPath(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, fill shade) {
	for i := range vs {
		c := fill(vs[i].DstX)
		a := float32(c.A) / 255
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255 * a
		vs[i].ColorG = float32(c.G) / 255 * a
		vs[i].ColorB = float32(c.B) / 255 * a
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func fillRoundRect(dst *ebiten.Image, x, y, w, h, r float64, fill shade) {
	if w <= 0 || h <= 0 {
		return
	}
	p := roundRectPath(float32(x), float32(y), float32(w), float32(h), float32(r))
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawPath(dst, vs, is, fill)
}

func strokeRoundRect(dst *ebiten.Image, x, y, w, h, r, width float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	p := roundRectPath(float32(x), float32(y), float32(w), float32(h), float32(r))
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: float32(width)})
	drawPath(dst, vs, is, solid(c))
}

func hline(dst *ebiten.Image, x0, x1, y float64, c color.NRGBA) {
	vector.StrokeLine(dst, float32(x0), float32(y), float32(x1), float32(y), 1, c, false)
}

// rect is an axis-aligned box in page or screen coordinates.
type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r rect) offset(dx, dy float64) rect {
	return rect{r.X + dx, r.Y + dy, r.W, r.H}
}

// scaled grows r about its centre.
func (r rect) scaled(k float64) rect {
	w, h := r.W*k, r.H*k
	return rect{r.X + (r.W-w)/2, r.Y + (r.H-h)/2, w, h}
}
