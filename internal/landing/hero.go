package landing

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/aichair/internal/catalog"
	"github.com/olivierh59500/aichair/internal/config"
	"github.com/olivierh59500/aichair/internal/motion"
)

const (
	rotateInterval = 2.2
	rotateStagger  = 0.01
	shimmerPeriod  = 2.0

	inputWidth  = 280.0
	fieldHeight = 40.0
	maxEmailLen = 254
	stackBelow  = 640
)

var (
	revealBanner   = motion.Reveal{Delay: 0.3, Duration: 0.4, Offset: -10}
	revealHeadline = motion.Reveal{Delay: 0.4, Duration: 0.5}
	revealSub      = motion.Reveal{Delay: 0.5, Duration: 0.5, Offset: 10}
	revealForm     = motion.Reveal{Delay: 0.6, Duration: 0.5, Offset: 10}
	revealTrial    = motion.Reveal{Delay: 0.7, Duration: 0.5}
	revealConnects = motion.Reveal{Delay: 0.8, Duration: 0.5}
	revealImage    = motion.Reveal{Delay: 0.9, Duration: 0.6, Offset: 20}
)

type hero struct {
	height float64

	shimmer motion.Shimmer
	rotator *motion.Rotator

	// page-space layout
	banner     rect
	headScale  float64
	headLines  []string
	headY      float64
	rotateLine rect
	subScale   float64
	subLines   []string
	subY       float64
	input      rect
	submit     *button
	statusY    float64
	trialY     float64
	connectsY  float64
	platforms  []rect
	image      rect

	email     []rune
	chars     []rune
	focused   bool
	caretAt   float64
	status    string
	statusErr bool
}

func newHero(fps int) hero {
	return hero{
		shimmer: motion.Shimmer{Period: shimmerPeriod},
		rotator: motion.NewRotator(catalog.RotatingWords, rotateInterval, rotateStagger, fps),
		submit:  newButton(catalog.EarlyAccess, styleGradient, fps),
	}
}

// layoutHero returns the hero height: at least one window, with shorter
// content centred vertically.
func (g *Game) layoutHero(w, h float64) float64 {
	top := float64(config.HeaderHeight) + 48
	end := g.layoutHeroAt(w, top)
	if end < h {
		end = g.layoutHeroAt(w, top+(h-end)/2) + (h-end)/2
	}
	g.hero.height = math.Max(h, end)
	return g.hero.height
}

func (g *Game) layoutHeroAt(w, y float64) float64 {
	hr := &g.hero
	pad := g.header.pad
	col := math.Min(w-2*pad, 896)
	cx := w / 2

	bw := textWidth(catalog.Banner, 1) + 32
	hr.banner = rect{cx - bw/2, y, bw, 28}
	y += hr.banner.H + 24

	switch {
	case w >= 1024:
		hr.headScale = 4
	case w >= config.MobileBreakpoint:
		hr.headScale = 3
	default:
		hr.headScale = 2
	}
	lh := lineHeight(hr.headScale)
	hr.headLines = motion.Wrap(catalog.Headline, columns(col, hr.headScale))
	hr.headY = y
	y += float64(len(hr.headLines)) * lh * 1.1
	hr.rotateLine = rect{cx - col/2, y, col, lh * 1.2}
	y += hr.rotateLine.H + 24

	hr.subScale = 1
	if w >= config.MobileBreakpoint {
		hr.subScale = 1.5
	}
	hr.subLines = motion.Wrap(catalog.SubHeadline, columns(math.Min(col, 672), hr.subScale))
	hr.subY = y
	y += float64(len(hr.subLines))*lineHeight(hr.subScale)*1.4 + 32

	bw = textWidth(catalog.EarlyAccess, 1) + 40
	if w < stackBelow {
		iw := math.Min(col, 360)
		hr.input = rect{cx - iw/2, y, iw, fieldHeight}
		hr.submit.bounds = rect{cx - iw/2, y + fieldHeight + 12, iw, fieldHeight}
		y += 2*fieldHeight + 12
	} else {
		total := inputWidth + 8 + bw
		hr.input = rect{cx - total/2, y, inputWidth, fieldHeight}
		hr.submit.bounds = rect{hr.input.X + inputWidth + 8, y, bw, fieldHeight}
		y += fieldHeight
	}
	hr.statusY = y + 8
	y += 8 + glyphH + 8

	hr.trialY = y
	y += glyphH + 32

	hr.connectsY = y
	y += glyphH + 16
	hr.platforms = hr.platforms[:0]
	rowStart := 0
	x := 0.0
	flush := func(end int, width float64) {
		// centre the finished row
		shift := cx - width/2
		for i := rowStart; i < end; i++ {
			hr.platforms[i].X += shift
		}
		rowStart = end
	}
	for _, p := range catalog.Platforms {
		pw := textWidth(p, 1)
		if x > 0 && x+pw > col {
			flush(len(hr.platforms), x-32)
			x = 0
			y += glyphH + 12
		}
		hr.platforms = append(hr.platforms, rect{x, y, pw, glyphH})
		x += pw + 32
	}
	flush(len(hr.platforms), x-32)
	y += glyphH + 48

	iw := math.Min(col, 1024)
	hr.image = rect{cx - iw/2, y, iw, iw * 9 / 16}
	y += hr.image.H + 64
	return y
}

func (g *Game) updateHero() {
	hr := &g.hero
	hr.shimmer.Update(g.dt)
	hr.rotator.Update(g.dt)

	px, py := g.pagePointer()
	if g.in.pressed {
		was := hr.focused
		hr.focused = hr.input.contains(px, py)
		if hr.focused && !was {
			hr.caretAt = g.clock
		}
	}
	if hr.input.contains(px, py) && g.cursor == ebiten.CursorShapeDefault {
		g.cursor = ebiten.CursorShapeText
	}

	if hr.focused {
		g.typeEmail()
	}
	if hr.submit.update(&g.in, px, py) {
		g.submitEmail()
	}
	g.pointAt(hr.submit.bounds, px, py)
}

func (g *Game) typeEmail() {
	hr := &g.hero
	hr.chars = ebiten.AppendInputChars(hr.chars[:0])
	for _, r := range hr.chars {
		if len(hr.email) < maxEmailLen {
			hr.email = append(hr.email, r)
			hr.caretAt = g.clock
		}
	}
	if d := inpututil.KeyPressDuration(ebiten.KeyBackspace); d == 1 || (d >= 30 && d%3 == 0) {
		if len(hr.email) > 0 {
			hr.email = hr.email[:len(hr.email)-1]
			hr.caretAt = g.clock
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.submitEmail()
	}
}

func (g *Game) submitEmail() {
	hr := &g.hero
	addr, err := catalog.ValidateEmail(string(hr.email))
	if err != nil {
		hr.status, hr.statusErr = err.Error(), true
		return
	}
	log.Printf("early access requested: %s", addr)
	hr.status, hr.statusErr = catalog.SignupThanks, false
	hr.email = hr.email[:0]
	hr.focused = false
}

func (g *Game) drawHero(dst *ebiten.Image) {
	hr := &g.hero
	dy := -g.scrollY
	if hr.height+dy <= 0 {
		return
	}
	t := g.clock
	cx := float64(g.width) / 2

	// banner pill with a sweeping shine
	if a := revealBanner.Alpha(t); a > 0 {
		b := hr.banner.offset(0, dy+revealBanner.Shift(t))
		fillRoundRect(dst, b.X, b.Y, b.W, b.H, b.H/2, solid(fade(colPill, a)))
		strokeRoundRect(dst, b.X, b.Y, b.W, b.H, b.H/2, 1, fade(colGray700, a))
		g.labels.drawCentered(dst, catalog.Banner, cx, b.Y+(b.H-glyphH)/2, 1, fade(colGray300, a))
		c := b.X + hr.shimmer.Center(b.W)
		drawShine(clip(dst, b), c, b.W/4, b.Y, b.H, a)
	}

	if a := revealHeadline.Alpha(t); a > 0 {
		lh := lineHeight(hr.headScale)
		for i, line := range hr.headLines {
			g.labels.drawCentered(dst, line, cx, hr.headY+dy+float64(i)*lh*1.1, hr.headScale, fade(colWhite, a))
		}
		g.drawRotating(dst, dy, a)
	}

	if a := revealSub.Alpha(t); a > 0 {
		lh := lineHeight(hr.subScale)
		y := hr.subY + dy + revealSub.Shift(t)
		for i, line := range hr.subLines {
			g.labels.drawCentered(dst, line, cx, y+float64(i)*lh*1.4, hr.subScale, fade(colGray400, a))
		}
	}

	if a := revealForm.Alpha(t); a > 0 {
		g.drawEmailForm(dst, dy+revealForm.Shift(t), a)
	}

	if a := revealTrial.Alpha(t); a > 0 {
		s := catalog.Trial
		x := cx - (textWidth(s, 1)+16)/2
		y := hr.trialY + dy
		vector.StrokeLine(dst, float32(x), float32(y+8), float32(x+4), float32(y+12), 1.5, fade(colPrimary, a), true)
		vector.StrokeLine(dst, float32(x+4), float32(y+12), float32(x+10), float32(y+4), 1.5, fade(colPrimary, a), true)
		g.labels.draw(dst, s, x+16, y, 1, fade(colGray500, a))
	}

	if a := revealConnects.Alpha(t); a > 0 {
		g.labels.drawCentered(dst, catalog.ConnectsWith, cx, hr.connectsY+dy, 1, fade(colGray500, a))
		px, py := g.pagePointer()
		for i, p := range hr.platforms {
			c := colGray400
			if p.contains(px, py) {
				c = colWhite
			}
			g.labels.draw(dst, catalog.Platforms[i], p.X, p.Y+dy, 1, fade(c, a))
		}
	}

	if a := revealImage.Alpha(t); a > 0 {
		drawChairFrame(dst, hr.image.offset(0, dy+revealImage.Shift(t)), a, g.labels, catalog.HeroImageAlt)
	}
}

// drawRotating renders the entering and leaving words glyph by glyph,
// clipped to their line.
func (g *Game) drawRotating(dst *ebiten.Image, dy, alpha float64) {
	hr := &g.hero
	line := hr.rotateLine.offset(0, dy)
	area := clip(dst, line)
	lh := lineHeight(hr.headScale)
	cw := glyphW * hr.headScale

	enter, leave := hr.rotator.Glyphs()
	for _, word := range [][]motion.Glyph{leave, enter} {
		x0 := line.X + line.W/2 - float64(len(word))*cw/2
		for _, gl := range word {
			if gl.Alpha <= 0 || gl.Rune == ' ' {
				continue
			}
			y := line.Y + (line.H-lh)/2 + gl.Offset*lh
			g.labels.draw(area, string(gl.Rune), x0+float64(gl.Column)*cw, y, hr.headScale, fade(colPrimary, gl.Alpha*alpha))
		}
	}
}

func (g *Game) drawEmailForm(dst *ebiten.Image, dy, alpha float64) {
	hr := &g.hero
	in := hr.input.offset(0, dy)
	fillRoundRect(dst, in.X, in.Y, in.W, in.H, 6, solid(fade(colInput, alpha)))
	border := colGray700
	if hr.focused {
		border = colPrimary
	}
	strokeRoundRect(dst, in.X, in.Y, in.W, in.H, 6, 1, fade(border, alpha))

	ty := in.Y + (in.H-glyphH)/2
	if len(hr.email) == 0 {
		g.labels.draw(dst, catalog.EmailPlaceholder, in.X+12, ty, 1, fade(colGray500, alpha))
	}
	// keep the tail of a long address visible
	visible := hr.email
	if n := columns(in.W-24, 1) - 1; len(visible) > n {
		visible = visible[len(visible)-n:]
	}
	g.labels.draw(dst, string(visible), in.X+12, ty, 1, fade(colWhite, alpha))
	if hr.focused && int((g.clock-hr.caretAt)*2)%2 == 0 {
		x := in.X + 12 + textWidth(string(visible), 1) + 1
		vector.StrokeLine(dst, float32(x), float32(ty+1), float32(x), float32(ty+glyphH-1), 1, fade(colWhite, alpha), false)
	}

	hr.submit.draw(dst, g.labels, 0, dy, alpha, g.clock)

	if hr.status != "" {
		c := colPrimary
		if hr.statusErr {
			c = colError
		}
		g.labels.drawCentered(dst, hr.status, float64(g.width)/2, hr.statusY+dy, 1, fade(c, alpha))
	}
}

// drawShine paints a triangular white band centred on c across a strip.
func drawShine(dst *ebiten.Image, c, halfWidth, y, h, alpha float64) {
	var p vector.Path
	x0, xc, x1 := float32(c-halfWidth), float32(c), float32(c+halfWidth)
	top, bot := float32(y), float32(y+h)
	p.MoveTo(x0, top)
	p.LineTo(xc, top)
	p.LineTo(x1, top)
	p.LineTo(x1, bot)
	p.LineTo(xc, bot)
	p.LineTo(x0, bot)
	p.Close()
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawPath(dst, vs, is, func(x float32) color.NRGBA {
		return fade(colWhite, alpha*motion.BandAlpha(float64(x), c, halfWidth))
	})
}

// drawChairFrame is the image placeholder: a framed line drawing of the
// chair captioned with its alt text.
func drawChairFrame(dst *ebiten.Image, r rect, alpha float64, l *labels, caption string) {
	fillRoundRect(dst, r.X, r.Y, r.W, r.H, 12, solid(fade(colGray900, alpha)))
	strokeRoundRect(dst, r.X, r.Y, r.W, r.H, 12, 1, fade(colGray800, alpha))
	drawChair(dst, r.X+r.W/2, r.Y+r.H*0.1, r.H*0.72, alpha)
	caption = fitText(caption, r.W-32)
	l.drawCentered(dst, caption, r.X+r.W/2, r.Y+r.H-glyphH-12, 1, fade(colGray500, alpha))
}

// drawChair draws an office chair of height h with its top centred on
// (cx, top).
func drawChair(dst *ebiten.Image, cx, top, h, alpha float64) {
	body := fade(colGray800, alpha)
	edge := fade(colGray600, alpha)
	accent := fade(colPrimary, alpha)
	u := h / 100

	// backrest with sensor strip and control dot
	fillRoundRect(dst, cx-18*u, top, 36*u, 48*u, 8*u, solid(body))
	strokeRoundRect(dst, cx-18*u, top, 36*u, 48*u, 8*u, 1.5, edge)
	for i := 0; i < 4; i++ {
		y := top + (12+float64(i)*8)*u
		vector.StrokeLine(dst, float32(cx-10*u), float32(y), float32(cx+10*u), float32(y), 1.5, fade(colPrimary, alpha*0.6), true)
	}
	vector.DrawFilledCircle(dst, float32(cx+22*u), float32(top+56*u), float32(2.5*u), accent, true)

	// seat and arms
	fillRoundRect(dst, cx-24*u, top+52*u, 48*u, 9*u, 4*u, solid(body))
	strokeRoundRect(dst, cx-24*u, top+52*u, 48*u, 9*u, 4*u, 1.5, edge)
	for _, s := range []float64{-1, 1} {
		x := cx + s*26*u
		vector.StrokeLine(dst, float32(x), float32(top+40*u), float32(x), float32(top+54*u), 2, edge, true)
		vector.StrokeLine(dst, float32(x-s*6*u), float32(top+40*u), float32(x), float32(top+40*u), 2, edge, true)
	}

	// gas lift and five-star base
	vector.StrokeLine(dst, float32(cx), float32(top+61*u), float32(cx), float32(top+82*u), 3*float32(u), edge, true)
	for _, k := range []float64{-1, -0.5, 0, 0.5, 1} {
		x := cx + k*28*u
		y := top + 88*u - math.Abs(k)*4*u
		vector.StrokeLine(dst, float32(cx), float32(top+82*u), float32(x), float32(y), 2, edge, true)
		vector.DrawFilledCircle(dst, float32(x), float32(y+3*u), float32(2.5*u), body, true)
	}
}

// fitText shortens s with an ellipsis to fit width at scale 1.
func fitText(s string, width float64) string {
	n := columns(width, 1)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

func clip(dst *ebiten.Image, r rect) *ebiten.Image {
	b := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
	return dst.SubImage(b).(*ebiten.Image)
}
