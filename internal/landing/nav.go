package landing

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/aichair/internal/catalog"
	"github.com/olivierh59500/aichair/internal/config"
)

const (
	underlineTime    = 0.3
	dropdownOpenTime = 0.2
	dropdownHideTime = 0.15
	headerFadeTime   = 0.3
	menuRowHeight    = 32.0
	dropdownWidth    = 224.0
	dropdownRow      = 36.0
)

type navLink struct {
	link      catalog.Link
	bounds    rect
	hovered   bool
	underline float64

	// dropdown, when link has items
	panel    rect
	rows     []rect
	openness float64
}

// holds reports whether (x, y) is over the link, its open panel or the gap
// between them.
func (n *navLink) holds(x, y float64) bool {
	if n.bounds.contains(x, y) {
		return true
	}
	if !n.link.HasDropdown() {
		return false
	}
	gap := rect{n.bounds.X, n.bounds.Y + n.bounds.H, n.bounds.W, n.panel.Y - n.bounds.Y - n.bounds.H}
	return gap.contains(x, y) || n.panel.contains(x, y)
}

type header struct {
	mobile   bool
	pad      float64
	links    []*navLink
	signIn   *navLink
	cta      *button
	menuIcon rect

	openDropdown *navLink
	menuOpen     bool
	menuOpenness float64
	menuLinks    []*navLink
	menuPanel    rect

	scrolled float64
}

func newHeader(fps int) header {
	h := header{
		signIn: &navLink{link: catalog.SignIn},
		cta:    newButton(catalog.TryForFree.Label, styleSolid, fps),
	}
	for _, l := range catalog.Nav() {
		h.links = append(h.links, &navLink{link: l})
		h.menuLinks = append(h.menuLinks, &navLink{link: catalog.Link{Label: l.Label, Href: l.Href}})
	}
	h.menuLinks = append(h.menuLinks, &navLink{link: catalog.SignIn})
	return h
}

// layoutHeader places everything in screen space; the header never scrolls.
func (g *Game) layoutHeader(w float64) {
	h := &g.header
	h.mobile = w < config.MobileBreakpoint
	switch {
	case w < config.MobileBreakpoint:
		h.pad = 24
	case w < 1024:
		h.pad = 40
	default:
		h.pad = 64
	}
	const textY = (config.HeaderHeight - glyphH) / 2

	right := w - h.pad
	if h.mobile {
		h.menuIcon = rect{right - 24, (config.HeaderHeight - 24) / 2, 24, 24}
		right = h.menuIcon.X - 16
	}
	ctaW := textWidth(h.cta.label, 1) + 32
	h.cta.bounds = rect{right - ctaW, (config.HeaderHeight - 30) / 2, ctaW, 30}
	right = h.cta.bounds.X - 24

	sw := textWidth(h.signIn.link.Label, 1)
	h.signIn.bounds = rect{right - sw, textY - 4, sw, glyphH + 8}

	gap := 24.0
	if w >= 1024 {
		gap = 32
	}
	total := -gap
	for _, n := range h.links {
		total += linkWidth(n.link) + gap
	}
	x := (w - total) / 2
	for _, n := range h.links {
		lw := linkWidth(n.link)
		n.bounds = rect{x, textY - 4, lw, glyphH + 8}
		if n.link.HasDropdown() {
			n.panel = rect{
				X: x + lw/2 - dropdownWidth/2,
				Y: n.bounds.Y + n.bounds.H + 8,
				W: dropdownWidth,
				H: 16 + dropdownRow*float64(len(n.link.Items)),
			}
			n.rows = n.rows[:0]
			for i := range n.link.Items {
				n.rows = append(n.rows, rect{n.panel.X + 8, n.panel.Y + 8 + dropdownRow*float64(i), dropdownWidth - 16, dropdownRow})
			}
		}
		x += lw + gap
	}

	y := float64(config.HeaderHeight) + 16
	for i, n := range h.menuLinks {
		if i == len(h.menuLinks)-1 {
			y += 16 // divider
		}
		lw := textWidth(n.link.Label, 1)
		n.bounds = rect{w/2 - lw/2, y, lw, menuRowHeight}
		y += menuRowHeight
	}
	h.menuPanel = rect{0, config.HeaderHeight, w, y + 16 - config.HeaderHeight}
	if !h.mobile {
		h.menuOpen = false
	}
}

func linkWidth(l catalog.Link) float64 {
	w := textWidth(l.Label, 1)
	if l.HasDropdown() {
		w += 16
	}
	return w
}

func (g *Game) updateHeader() {
	h := &g.header
	mx, my := g.in.mx, g.in.my
	if !g.in.inside {
		mx, my = -1, -1
	}

	target := 0.0
	if g.scrollY > config.ScrolledAfter {
		target = 1
	}
	h.scrolled = approach(h.scrolled, target, g.dt/headerFadeTime)

	if h.cta.update(&g.in, mx, my) {
		g.navigate(catalog.TryForFree)
	}
	g.pointAt(h.cta.bounds, mx, my)

	if h.mobile {
		g.updateMobileMenu()
		return
	}

	// a dropdown stays open while the pointer is over its link or panel
	if h.openDropdown != nil && !h.openDropdown.holds(mx, my) {
		h.openDropdown = nil
	}
	for _, n := range append(h.links, h.signIn) {
		n.hovered = n.bounds.contains(mx, my)
		if n.hovered && n.link.HasDropdown() {
			h.openDropdown = n
		}
		g.pointAt(n.bounds, mx, my)
		if n.hovered && g.in.released {
			g.navigate(n.link)
		}
		u := 0.0
		if n.hovered {
			u = 1
		}
		n.underline = approach(n.underline, u, g.dt/underlineTime)
	}

	for _, n := range h.links {
		if !n.link.HasDropdown() {
			continue
		}
		open := n == h.openDropdown
		if open {
			n.openness = approach(n.openness, 1, g.dt/dropdownOpenTime)
			for i, row := range n.rows {
				g.pointAt(row, mx, my)
				if row.contains(mx, my) && g.in.released {
					g.navigate(n.link.Items[i])
				}
			}
		} else {
			n.openness = approach(n.openness, 0, g.dt/dropdownHideTime)
		}
	}
}

func (g *Game) updateMobileMenu() {
	h := &g.header
	mx, my := g.in.mx, g.in.my
	if !g.in.inside {
		mx, my = -1, -1
	}

	g.pointAt(h.menuIcon, mx, my)
	if h.menuIcon.contains(mx, my) && g.in.released {
		h.menuOpen = !h.menuOpen
	} else if h.menuOpen && g.in.released {
		for _, n := range h.menuLinks {
			if n.bounds.contains(mx, my) {
				h.menuOpen = false
				g.navigate(n.link)
				break
			}
		}
	}
	if h.menuOpen {
		h.menuOpenness = approach(h.menuOpenness, 1, g.dt/dropdownOpenTime)
		for _, n := range h.menuLinks {
			n.hovered = n.bounds.contains(mx, my)
			g.pointAt(n.bounds, mx, my)
		}
	} else {
		h.menuOpenness = approach(h.menuOpenness, 0, g.dt/dropdownHideTime)
	}
}

// overHeader reports whether the pointer is over the header or one of its
// open panels.
func (g *Game) overHeader() bool {
	h := &g.header
	mx, my := g.in.mx, g.in.my
	if !g.in.inside {
		return false
	}
	if my < config.HeaderHeight {
		return true
	}
	if h.mobile {
		return h.menuOpenness > 0 && h.menuPanel.contains(mx, my)
	}
	return h.openDropdown != nil && h.openDropdown.panel.contains(mx, my)
}

// navigate follows a link. In-page anchors scroll; everything else is only
// logged since the page has nowhere else to go.
func (g *Game) navigate(l catalog.Link) {
	if l.Href == "#products" {
		g.scrollTo(g.showcase.top - config.HeaderHeight)
		return
	}
	log.Printf("navigate: %s -> %s", l.Label, l.Href)
}

func (g *Game) drawHeader(dst *ebiten.Image) {
	h := &g.header
	w := float64(g.width)
	hh := float64(config.HeaderHeight)

	bg := fade(colDark, 0.8+0.15*h.scrolled)
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(hh), bg, false)
	border := fade(colGray700, 0.5)
	if h.scrolled > 0 {
		border = lerpColor(border, fade(colGray600, 0.7), h.scrolled)
		for i := 1; i <= 6; i++ {
			a := 0.1 * h.scrolled * (1 - float64(i)/7)
			hline(dst, 0, w, hh+float64(i), fade(colDark, a*4))
		}
	}
	hline(dst, 0, w, hh-0.5, border)

	drawLogo(dst, h.pad, (hh-24)/2)
	g.labels.draw(dst, catalog.Brand, h.pad+32, (hh-glyphH)/2, 1, colWhite)

	h.cta.draw(dst, g.labels, 0, 0, 1, 0)

	if h.mobile {
		g.drawMenuIcon(dst)
		if h.menuOpenness > 0 {
			g.drawMobileMenu(dst)
		}
		return
	}

	for _, n := range append(h.links, h.signIn) {
		g.drawNavLink(dst, n)
	}
	for _, n := range h.links {
		if n.openness > 0 {
			g.drawDropdown(dst, n)
		}
	}
}

func (g *Game) drawNavLink(dst *ebiten.Image, n *navLink) {
	c := colGray300
	if n.hovered {
		c = colWhite
	}
	ty := n.bounds.Y + 4
	g.labels.draw(dst, n.link.Label, n.bounds.X, ty, 1, c)
	if n.link.HasDropdown() {
		// chevron flips while open
		cx := n.bounds.X + n.bounds.W - 6
		cy := ty + glyphH/2
		d := 3.0 * (1 - 2*n.openness)
		vector.StrokeLine(dst, float32(cx-3), float32(cy-d/2), float32(cx), float32(cy+d/2), 1.2, c, true)
		vector.StrokeLine(dst, float32(cx), float32(cy+d/2), float32(cx+3), float32(cy-d/2), 1.2, c, true)
		return
	}
	if n.underline > 0 {
		tw := textWidth(n.link.Label, 1)
		uw := tw * easeOut(n.underline)
		x := n.bounds.X + (tw-uw)/2
		y := n.bounds.Y + n.bounds.H + 1
		hline(dst, x, x+uw, y, colPrimary)
	}
}

func (g *Game) drawDropdown(dst *ebiten.Image, n *navLink) {
	a := n.openness
	dy := 10 * (1 - a)
	p := n.panel.offset(0, dy)
	fillRoundRect(dst, p.X, p.Y, p.W, p.H, 6, solid(fade(colDark, a)))
	strokeRoundRect(dst, p.X, p.Y, p.W, p.H, 6, 1, fade(colGray700, 0.5*a))

	mx, my := g.in.mx, g.in.my
	for i, item := range n.link.Items {
		row := n.rows[i].offset(0, dy)
		c := colGray300
		if n.rows[i].contains(mx, my) {
			fillRoundRect(dst, row.X, row.Y, row.W, row.H, 6, solid(fade(colGray700, 0.3*a)))
			c = colWhite
		}
		g.labels.draw(dst, item.Label, row.X+12, row.Y+(row.H-glyphH)/2, 1, fade(c, a))
		if item.External {
			drawExternalIcon(dst, row.X+row.W-20, row.Y+(row.H-10)/2, fade(c, 0.7*a))
		}
	}
}

func (g *Game) drawMenuIcon(dst *ebiten.Image) {
	r := g.header.menuIcon
	c := colGray300
	if r.contains(g.in.mx, g.in.my) {
		c = colWhite
	}
	x0, x1 := float32(r.X+3), float32(r.X+r.W-3)
	if g.header.menuOpen {
		vector.StrokeLine(dst, x0, float32(r.Y+4), x1, float32(r.Y+r.H-4), 2, c, true)
		vector.StrokeLine(dst, x0, float32(r.Y+r.H-4), x1, float32(r.Y+4), 2, c, true)
		return
	}
	for i := 0; i < 3; i++ {
		y := float32(r.Y + 6 + 6*float64(i))
		vector.StrokeLine(dst, x0, y, x1, y, 2, c, true)
	}
}

func (g *Game) drawMobileMenu(dst *ebiten.Image) {
	h := &g.header
	a := h.menuOpenness
	dy := -20 * (1 - a)
	p := h.menuPanel.offset(0, dy)
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), fade(colDark, 0.95*a), false)
	hline(dst, p.X, p.X+p.W, p.Y, fade(colGray800, 0.5*a))

	for i, n := range h.menuLinks {
		if i == len(h.menuLinks)-1 {
			y := n.bounds.Y + dy - 8
			hline(dst, p.X+24, p.X+p.W-24, y, fade(colGray700, 0.5*a))
		}
		c := colGray300
		if n.hovered {
			c = colWhite
		}
		g.labels.draw(dst, n.link.Label, n.bounds.X, n.bounds.Y+dy+(menuRowHeight-glyphH)/2, 1, fade(c, a))
	}
}

// drawLogo strokes the stacked-layers mark into a 24x24 box.
func drawLogo(dst *ebiten.Image, x, y float64) {
	pts := [][]float64{
		{12, 2, 2, 7, 12, 12, 22, 7, 12, 2},
		{2, 17, 12, 22, 22, 17},
		{2, 12, 12, 17, 22, 12},
	}
	for _, line := range pts {
		for i := 0; i+3 < len(line); i += 2 {
			vector.StrokeLine(dst,
				float32(x+line[i]), float32(y+line[i+1]),
				float32(x+line[i+2]), float32(y+line[i+3]),
				2, colPrimary, true)
		}
	}
}

func drawExternalIcon(dst *ebiten.Image, x, y float64, c color.NRGBA) {
	strokeRoundRect(dst, x, y+2, 8, 8, 1, 1, c)
	vector.StrokeLine(dst, float32(x+5), float32(y), float32(x+10), float32(y), 1, c, true)
	vector.StrokeLine(dst, float32(x+10), float32(y), float32(x+10), float32(y+5), 1, c, true)
	vector.StrokeLine(dst, float32(x+4), float32(y+6), float32(x+10), float32(y), 1, c, true)
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(target, v+step)
	}
	return math.Max(target, v-step)
}

func easeOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
