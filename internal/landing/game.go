// Package landing renders the AI Chair landing page with Ebitengine: a hero
// over an interactive dot field, the header, and the product showcase.
package landing

import (
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/aichair/internal/config"
	"github.com/olivierh59500/aichair/internal/dotfield"
)

// input is the pointer state sampled once per Update, in screen space.
type input struct {
	mx, my   float64
	inside   bool
	pressed  bool
	released bool
	wheel    float64
}

// Game is the whole page. It owns the dot field and its frame loop; Close
// must be called when the window goes away.
type Game struct {
	settings *config.Settings
	dt       float64
	clock    float64

	field    *dotfield.Field
	frames   dotfield.FrameQueue
	loop     *dotfield.Loop
	canvas   canvas
	vignette *ebiten.Image

	labels *labels
	in     input
	cursor ebiten.CursorShapeType

	width, height int
	dirty         bool
	scrollY       float64
	pageHeight    float64

	header   header
	hero     hero
	showcase showcase

	closed bool
}

// New builds the page and starts the dot field loop. Nothing is drawn until
// the first Layout reports a window size.
func New(s *config.Settings, rng *rand.Rand) *Game {
	g := &Game{
		settings: s,
		dt:       1 / float64(s.TPS),
		labels:   newLabels(),
		field:    dotfield.New(dotParams(s.Dots), rng),
	}
	g.loop = dotfield.NewLoop(g.field, &g.frames, g.canvas.surface)
	g.header = newHeader(s.TPS)
	g.hero = newHero(s.TPS)
	g.showcase = newShowcase(s.TPS, rng.Int63())
	g.loop.Start()
	return g
}

func dotParams(d config.DotSettings) dotfield.Params {
	p := dotfield.DefaultParams()
	p.Spacing = d.Spacing
	p.OpacityMin = d.OpacityMin
	p.OpacityMax = d.OpacityMax
	p.BaseRadius = d.BaseRadius
	p.InteractionRadius = d.InteractionRadius
	p.OpacityBoost = d.OpacityBoost
	p.RadiusBoost = d.RadiusBoost
	p.Color.R, p.Color.G, p.Color.B = d.Color[0], d.Color[1], d.Color[2]
	return p
}

// Close stops the animation loop and frees the offscreen images.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.loop.Stop()
	g.canvas.release()
	if g.vignette != nil {
		g.vignette.Deallocate()
		g.vignette = nil
	}
	g.showcase.release()
	g.labels.dispose()
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	g.ensureLayout()
	g.clock += g.dt
	g.readInput()

	if g.handleKeys() {
		return ebiten.Termination
	}

	if !g.header.menuOpen && g.in.wheel != 0 {
		g.scrollTo(g.scrollY - g.in.wheel*config.ScrollStep)
	}
	g.trackPointer()

	g.cursor = ebiten.CursorShapeDefault
	g.updateHeader()
	if g.overHeader() {
		// the page below does not see the pointer
		g.in.inside, g.in.pressed, g.in.released = false, false, false
	}
	g.updateHero()
	g.updateShowcase()
	ebiten.SetCursorShape(g.cursor)
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.ensureLayout()
	screen.Fill(colDark)

	// one display frame: lets the dot field loop tick into the canvas
	g.frames.RunFrame()

	if g.canvas.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, -g.scrollY)
		op.ColorScale.ScaleAlpha(config.CanvasOpacity)
		screen.DrawImage(g.canvas.img, op)
	}
	if g.vignette != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, -g.scrollY)
		screen.DrawImage(g.vignette, op)
	}

	g.drawShowcase(screen)
	g.drawHero(screen)
	g.drawHeader(screen)
}

// Layout records the window size; the page is re-laid out lazily.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}

func (g *Game) ensureLayout() {
	if !g.dirty || g.width == 0 || g.height == 0 {
		return
	}
	g.dirty = false

	w := float64(g.width)
	g.layoutHeader(w)
	heroHeight := g.layoutHero(w, float64(g.height))
	g.pageHeight = heroHeight + g.layoutShowcase(w, heroHeight)

	ch := int(math.Ceil(heroHeight))
	g.canvas.resize(g.width, ch)
	if fw, fh := g.field.Size(); fw != w || fh != float64(ch) {
		g.field.Layout(w, float64(ch))
		log.Printf("dot field laid out: %dx%d, %d dots", g.width, ch, len(g.field.Dots()))
	}
	g.rebuildVignette(g.width, ch)
	g.scrollTo(g.scrollY)
}

func (g *Game) readInput() {
	mx, my := ebiten.CursorPosition()
	g.in.mx, g.in.my = float64(mx), float64(my)
	g.in.inside = ebiten.IsFocused() &&
		mx >= 0 && my >= 0 && mx < g.width && my < g.height
	g.in.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	g.in.released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	_, g.in.wheel = ebiten.Wheel()
}

// handleKeys reports whether the app should quit.
func (g *Game) handleKeys() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch {
		case g.hero.focused:
			g.hero.focused = false
		case g.header.menuOpen:
			g.header.menuOpen = false
		default:
			return true
		}
	}
	if !g.hero.focused && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}
	return false
}

// trackPointer feeds the dot field in canvas coordinates. The canvas starts
// at the top of the page, so canvas space is page space.
func (g *Game) trackPointer() {
	if !g.in.inside {
		g.field.ClearPointer()
		return
	}
	g.field.SetPointer(g.in.mx, g.in.my+g.scrollY)
}

func (g *Game) scrollTo(y float64) {
	limit := math.Max(0, g.pageHeight-float64(g.height))
	g.scrollY = math.Max(0, math.Min(y, limit))
}

// pagePointer returns the cursor in page coordinates, or a point above the
// page when the page does not have the pointer.
func (g *Game) pagePointer() (float64, float64) {
	if !g.in.inside {
		return -1, -1
	}
	return g.in.mx, g.in.my + g.scrollY
}

func (g *Game) pointAt(r rect, x, y float64) {
	if r.contains(x, y) && g.cursor == ebiten.CursorShapeDefault {
		g.cursor = ebiten.CursorShapePointer
	}
}

// rebuildVignette bakes the fade from the dot field into the page colour:
// a top-to-bottom ramp combined with an elliptical edge falloff.
func (g *Game) rebuildVignette(w, h int) {
	if g.vignette != nil {
		g.vignette.Deallocate()
	}
	g.vignette = ebiten.NewImage(w, h)

	pix := make([]byte, 4*w*h)
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		linear := smoothstep(0, 0.9, float64(y)/float64(h))
		for x := 0; x < w; x++ {
			nx := (float64(x) - cx) / cx
			ny := (float64(y) - cy) / cy
			d := math.Hypot(nx, ny) / math.Sqrt2
			radial := smoothstep(0.4, 0.95, d)
			a := 1 - (1-linear)*(1-radial)

			i := 4 * (y*w + x)
			v := byte(float64(colDark.R) * a)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, byte(255*a)
		}
	}
	g.vignette.WritePixels(pix)
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := math.Max(0, math.Min(1, (x-edge0)/(edge1-edge0)))
	return t * t * (3 - 2*t)
}
