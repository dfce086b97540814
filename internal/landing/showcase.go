package landing

import (
	"log"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/aichair/internal/catalog"
	"github.com/olivierh59500/aichair/internal/config"
	"github.com/olivierh59500/aichair/internal/motion"
)

const (
	viewAmount  = 0.3
	slideOffset = 50.0
	glowSize    = 640
	glowPeak    = 0.06
	glowDrift   = 0.05
	specRow     = 28.0
	iconSize    = 32.0
	twoColumnAt = 1024
	featureCols = 480
)

type featureCell struct {
	rect  rect
	lines []string
}

type productSection struct {
	product  catalog.Product
	reversed bool
	view     motion.InView

	top, bottom float64
	image       rect
	info        rect

	nameY, priceY float64
	descLines     []string
	descY         float64
	specs         rect
	featuresY     float64
	features      []featureCell
	cart, learn   *button
	separatorY    float64
}

type closingSection struct {
	view        motion.InView
	top, bottom float64
	titleScale  float64
	titleLines  []string
	bodyLines   []string
	bodyY       float64
	shop, demo  *button
}

type showcase struct {
	top, height float64

	intro       motion.InView
	introBottom float64
	kickerY     float64
	titleY      float64
	titleScale  float64
	introLines  []string
	introY      float64

	products []*productSection
	closing  closingSection

	noise *perlin.Perlin
	glow  *ebiten.Image
}

func newShowcase(fps int, seed int64) showcase {
	s := showcase{
		intro: motion.InView{Amount: viewAmount},
		noise: perlin.NewPerlin(2, 2, 3, seed),
		closing: closingSection{
			view: motion.InView{Amount: viewAmount},
			shop: newButton(catalog.ShopAll, styleSolid, fps),
			demo: newButton(catalog.ScheduleDemo, styleOutline, fps),
		},
	}
	for i, p := range catalog.Products() {
		s.products = append(s.products, &productSection{
			product:  p,
			reversed: catalog.Reversed(i),
			view:     motion.InView{Amount: viewAmount},
			cart:     newButton(catalog.AddToCart, styleSolid, fps),
			learn:    newButton(catalog.LearnMore, styleOutline, fps),
		})
	}
	return s
}

func (s *showcase) release() {
	if s.glow != nil {
		s.glow.Deallocate()
		s.glow = nil
	}
}

// layoutShowcase places the sections below top and returns their height.
func (g *Game) layoutShowcase(w, top float64) float64 {
	s := &g.showcase
	s.top = top
	col := math.Min(w-2*g.header.pad, 1152)
	x0 := (w - col) / 2
	cx := w / 2

	y := top + 96
	s.kickerY = y
	y += glyphH + 12
	s.titleScale = 2
	if w >= config.MobileBreakpoint {
		s.titleScale = 3
	}
	s.titleY = y
	y += lineHeight(s.titleScale) + 16
	s.introLines = motion.Wrap(catalog.CollectionIntro, columns(math.Min(col, 672), 1))
	s.introY = y
	y += float64(len(s.introLines))*lineHeight(1)*1.5 + 64
	s.introBottom = y

	for i, p := range s.products {
		p.top = y
		if w >= twoColumnAt {
			cw := (col - 64) / 2
			imgX, infoX := x0, x0+cw+64
			if p.reversed {
				imgX, infoX = infoX, imgX
			}
			p.image = rect{imgX, y, cw, cw * 0.75}
			end := layoutProductInfo(p, infoX, y, cw)
			y = math.Max(p.image.Y+p.image.H, end)
		} else {
			p.image = rect{x0, y, col, math.Min(col*0.6, 420)}
			y = layoutProductInfo(p, x0, p.image.Y+p.image.H+32, col)
		}
		p.bottom = y
		y += 48
		p.separatorY = y
		if i < len(s.products)-1 {
			y += 48
		}
	}

	c := &s.closing
	y += 48
	c.top = y
	c.titleScale = 1.5
	if w >= config.MobileBreakpoint {
		c.titleScale = 2
	}
	c.titleLines = motion.Wrap(catalog.ClosingTitle, columns(col, c.titleScale))
	y += float64(len(c.titleLines))*lineHeight(c.titleScale)*1.2 + 16
	c.bodyLines = motion.Wrap(catalog.ClosingBody, columns(math.Min(col, 672), 1))
	c.bodyY = y
	y += float64(len(c.bodyLines))*lineHeight(1)*1.5 + 32

	sw := textWidth(catalog.ShopAll, 1) + 48
	dw := textWidth(catalog.ScheduleDemo, 1) + 48
	if w < stackBelow {
		c.shop.bounds = rect{cx - sw/2, y, sw, fieldHeight}
		y += fieldHeight + 12
		c.demo.bounds = rect{cx - dw/2, y, dw, fieldHeight}
	} else {
		total := sw + 16 + dw
		c.shop.bounds = rect{cx - total/2, y, sw, fieldHeight}
		c.demo.bounds = rect{cx - total/2 + sw + 16, y, dw, fieldHeight}
	}
	y += fieldHeight
	c.bottom = y
	y += 96

	if s.glow == nil {
		s.glow = newGlow(glowSize)
	}
	s.height = y - top
	return s.height
}

func layoutProductInfo(p *productSection, x, y, w float64) float64 {
	p.info = rect{x, y, w, 0}
	p.nameY = y
	y += lineHeight(2) + 8
	p.priceY = y
	y += lineHeight(1.5) + 16

	p.descLines = motion.Wrap(p.product.Description, columns(w, 1))
	p.descY = y
	y += float64(len(p.descLines))*lineHeight(1)*1.5 + 24

	p.specs = rect{x, y, w, 16 + glyphH + 12 + specRow*float64(len(p.product.Specs)) + 8}
	y += p.specs.H + 24

	p.featuresY = y
	y += glyphH + 16
	cols := 1
	if w >= featureCols {
		cols = 2
	}
	cellW := (w - 16*float64(cols-1)) / float64(cols)
	p.features = p.features[:0]
	rowH := 0.0
	for i, f := range p.product.Highlights() {
		if i > 0 && i%cols == 0 {
			y += rowH + 16
			rowH = 0
		}
		lines := motion.Wrap(f.Description, columns(cellW-iconSize-12, 1))
		h := math.Max(iconSize, glyphH+6+float64(len(lines))*lineHeight(1)*1.3)
		rowH = math.Max(rowH, h)
		cx := x + float64(i%cols)*(cellW+16)
		p.features = append(p.features, featureCell{rect{cx, y, cellW, h}, lines})
	}
	y += rowH + 32

	cw := textWidth(catalog.AddToCart, 1) + 40
	lw := textWidth(catalog.LearnMore, 1) + 40
	p.cart.bounds = rect{x, y, cw, fieldHeight}
	p.learn.bounds = rect{x + cw + 12, y, lw, fieldHeight}
	y += fieldHeight

	p.info.H = y - p.info.Y
	return y
}

func (g *Game) updateShowcase() {
	s := &g.showcase
	vt, vb := g.scrollY, g.scrollY+float64(g.height)
	s.intro.Observe(motion.VisibleFraction(s.top, s.introBottom, vt, vb), g.clock)

	px, py := g.pagePointer()
	for _, p := range s.products {
		p.view.Observe(motion.VisibleFraction(p.top, p.bottom, vt, vb), g.clock)
		if p.cart.update(&g.in, px, py) {
			log.Printf("add to cart: %s (%s)", p.product.Name, catalog.FormatPrice(p.product.Price))
		}
		if p.learn.update(&g.in, px, py) {
			log.Printf("learn more: %s", p.product.Name)
		}
		g.pointAt(p.cart.bounds, px, py)
		g.pointAt(p.learn.bounds, px, py)
	}

	c := &s.closing
	c.view.Observe(motion.VisibleFraction(c.top, c.bottom, vt, vb), g.clock)
	if c.shop.update(&g.in, px, py) {
		g.navigate(catalog.Link{Label: catalog.ShopAll, Href: "#products"})
	}
	if c.demo.update(&g.in, px, py) {
		log.Printf("schedule a demo requested")
	}
	g.pointAt(c.shop.bounds, px, py)
	g.pointAt(c.demo.bounds, px, py)
}

func (g *Game) drawShowcase(dst *ebiten.Image) {
	s := &g.showcase
	dy := -g.scrollY
	if s.top+dy >= float64(g.height) {
		return
	}
	g.drawGlow(dst, dy)

	cx := float64(g.width) / 2
	if s.intro.Triggered() {
		rev := motion.Reveal{Duration: 0.6, Offset: 20}
		t := s.intro.Elapsed(g.clock)
		a, off := rev.Alpha(t), dy+rev.Shift(t)
		g.labels.drawCentered(dst, catalog.CollectionKicker, cx, s.kickerY+off, 1, fade(colPrimary, a))
		g.labels.drawCentered(dst, catalog.CollectionTitle, cx, s.titleY+off, s.titleScale, fade(colWhite, a))
		for i, line := range s.introLines {
			g.labels.drawCentered(dst, line, cx, s.introY+off+float64(i)*lineHeight(1)*1.5, 1, fade(colGray400, a))
		}
	}

	for i, p := range s.products {
		if p.bottom+dy < 0 || p.top+dy > float64(g.height) {
			continue
		}
		if p.view.Triggered() {
			g.drawProduct(dst, p, dy)
		}
		if i < len(s.products)-1 {
			pad := g.header.pad
			hline(dst, pad, float64(g.width)-pad, p.separatorY+dy, fade(colGray800, 0.6))
		}
	}

	c := &s.closing
	if c.view.Triggered() {
		rev := motion.Reveal{Duration: 0.6, Offset: 20}
		t := c.view.Elapsed(g.clock)
		a, off := rev.Alpha(t), dy+rev.Shift(t)
		lh := lineHeight(c.titleScale) * 1.2
		for i, line := range c.titleLines {
			g.labels.drawCentered(dst, line, cx, c.top+off+float64(i)*lh, c.titleScale, fade(colWhite, a))
		}
		for i, line := range c.bodyLines {
			g.labels.drawCentered(dst, line, cx, c.bodyY+off+float64(i)*lineHeight(1)*1.5, 1, fade(colGray400, a))
		}
		c.shop.draw(dst, g.labels, 0, off, a, g.clock)
		c.demo.draw(dst, g.labels, 0, off, a, g.clock)
	}
}

func (g *Game) drawProduct(dst *ebiten.Image, p *productSection, dy float64) {
	t := p.view.Elapsed(g.clock)
	side := -1.0
	if p.reversed {
		side = 1
	}
	imgRev := motion.Reveal{Duration: 0.6, Offset: side * slideOffset}
	infoRev := motion.Reveal{Delay: 0.1, Duration: 0.6, Offset: -side * slideOffset}

	drawChairFrame(dst, p.image.offset(imgRev.Shift(t), dy), imgRev.Alpha(t), g.labels, p.product.Name)

	a := infoRev.Alpha(t)
	if a <= 0 {
		return
	}
	dx := infoRev.Shift(t)
	x := p.info.X + dx

	g.labels.draw(dst, p.product.Name, x, p.nameY+dy, 2, fade(colWhite, a))
	g.labels.draw(dst, catalog.FormatPrice(p.product.Price), x, p.priceY+dy, 1.5, fade(colPrimary, a))
	for i, line := range p.descLines {
		g.labels.draw(dst, line, x, p.descY+dy+float64(i)*lineHeight(1)*1.5, 1, fade(colGray400, a))
	}

	sp := p.specs.offset(dx, dy)
	fillRoundRect(dst, sp.X, sp.Y, sp.W, sp.H, 8, solid(fade(colGray900, 0.6*a)))
	strokeRoundRect(dst, sp.X, sp.Y, sp.W, sp.H, 8, 1, fade(colGray800, a))
	g.labels.draw(dst, catalog.SpecsTitle, sp.X+16, sp.Y+16, 1, fade(colWhite, a))
	y := sp.Y + 16 + glyphH + 12
	for i, spec := range p.product.Specs {
		if i > 0 {
			hline(dst, sp.X+16, sp.X+sp.W-16, y, fade(colGray800, a))
		}
		ty := y + (specRow-glyphH)/2
		g.labels.draw(dst, spec.Name, sp.X+16, ty, 1, fade(colGray400, a))
		g.labels.draw(dst, spec.Value, sp.X+sp.W-16-textWidth(spec.Value, 1), ty, 1, fade(colWhite, a))
		y += specRow
	}

	g.labels.draw(dst, catalog.FeaturesTitle, x, p.featuresY+dy, 1, fade(colWhite, a))
	for i, f := range p.product.Highlights() {
		cell := p.features[i].rect.offset(dx, dy)
		icx, icy := cell.X+iconSize/2, cell.Y+iconSize/2
		vector.DrawFilledCircle(dst, float32(icx), float32(icy), iconSize/2, fade(colPrimary, 0.15*a), true)
		g.labels.drawCentered(dst, string([]rune(f.Title)[:1]), icx, icy-glyphH/2, 1, fade(colPrimary, a))

		tx := cell.X + iconSize + 12
		g.labels.draw(dst, f.Title, tx, cell.Y, 1, fade(colWhite, a))
		for j, line := range p.features[i].lines {
			g.labels.draw(dst, line, tx, cell.Y+glyphH+6+float64(j)*lineHeight(1)*1.3, 1, fade(colGray400, a))
		}
	}

	p.cart.draw(dst, g.labels, dx, dy, a, g.clock)
	p.learn.draw(dst, g.labels, dx, dy, a, g.clock)
}

// drawGlow drifts a soft brand-coloured glow behind the showcase.
func (g *Game) drawGlow(dst *ebiten.Image, dy float64) {
	s := &g.showcase
	if s.glow == nil {
		return
	}
	w := float64(g.width)
	t := g.clock * glowDrift
	nx := s.noise.Noise2D(t, 0.5)
	ny := s.noise.Noise2D(0.5, t+10)

	scale := math.Max(1, w/glowSize)
	x := w/2 + nx*w*0.3 - glowSize*scale/2
	y := s.top + s.height*0.3 + ny*200 - glowSize*scale/2 + dy

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.glow, op)
}

// newGlow bakes a radial falloff in the primary colour, premultiplied.
func newGlow(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	pix := make([]byte, 4*size*size)
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			a := glowPeak * (1 - smoothstep(0, 1, d))
			i := 4 * (y*size + x)
			pix[i] = byte(float64(colPrimary.R) * a)
			pix[i+1] = byte(float64(colPrimary.G) * a)
			pix[i+2] = byte(float64(colPrimary.B) * a)
			pix[i+3] = byte(255 * a)
		}
	}
	img.WritePixels(pix)
	return img
}
