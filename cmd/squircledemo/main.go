// Command squircledemo shows the adaptive binder driving a live
// squircle in a resizable window. The window acts as the viewport, a
// padded inner panel acts as the bound surface, and resizing the
// window feeds both notification channels. The panel is rendered from
// the raster coverage mask, tinted, with the binder-applied styles
// printed in the corner.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	squircle "github.com/Taruunn/smooth-squircle"
)

const margin = 40

func main() {
	var (
		mobile     = flag.Float64("mobile", 16, "corner radius at or below the breakpoint")
		desktop    = flag.Float64("desktop", 48, "corner radius above the breakpoint")
		breakpoint = flag.Float64("breakpoint", 500, "viewport width breakpoint")
		border     = flag.Float64("border", 4, "outline width (0 disables)")
		verbose    = flag.Bool("v", false, "log synchronization passes")
	)
	flag.Parse()

	if *verbose {
		squircle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g := newGame()
	unbind := squircle.NewBinder(g).Bind(g.panel, squircle.Options{
		Radius:           squircle.Responsive(*mobile, *desktop),
		BorderWidth:      *border,
		BorderColor:      "#e8ecf1",
		MobileBreakpoint: *breakpoint,
	})
	defer unbind()

	ebiten.SetWindowTitle("squircle demo")
	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("demo exited: %v", err)
	}
}

// panel is the bound surface: a padded rectangle inside the window. It
// records the styles the binder applies and re-rasterizes its mask
// when the applied corner radius changes.
type panel struct {
	w, h   float64
	styles map[string]string

	radius float64 // parsed from the applied border-radius
	dirty  bool
}

func (p *panel) Size() (float64, float64) { return p.w, p.h }

func (p *panel) SetStyle(property, value string) {
	p.styles[property] = value
	if property == "border-radius" {
		if r, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64); err == nil {
			p.radius = r
		}
	}
	p.dirty = true
}

func (p *panel) RemoveStyle(property string) {
	delete(p.styles, property)
	p.dirty = true
}

// Overlay nodes only exist in precise mode; the demo runs in fallback
// mode, so these are inert.
func (p *panel) AppendOverlay() squircle.Node { return &overlay{} }
func (p *panel) RemoveOverlay(squircle.Node)  {}

type overlay struct{}

func (*overlay) SetStyle(string, string) {}
func (*overlay) RemoveStyle(string)      {}

// game is both the ebiten application and the binder's host
// environment: Layout delivers resize notifications, the window width
// is the viewport.
type game struct {
	panel *panel

	winW, winH  int
	resizeFns   []func()
	viewportFns []func()

	shape *ebiten.Image
}

func newGame() *game {
	return &game{panel: &panel{styles: make(map[string]string)}}
}

// SupportsClipPath is false here: the demo composites the raster mask
// itself, so the binder runs in fallback mode and the panel reads the
// effective radius from the applied border-radius style.
func (g *game) SupportsClipPath() bool { return false }

func (g *game) ViewportWidth() float64 { return float64(g.winW) }

func (g *game) ObserveResize(s squircle.Surface, fn func()) (func(), bool) {
	g.resizeFns = append(g.resizeFns, fn)
	return func() { g.resizeFns = nil }, true
}

func (g *game) OnViewportResize(fn func()) func() {
	g.viewportFns = append(g.viewportFns, fn)
	return func() { g.viewportFns = nil }
}

func (g *game) Update() error { return nil }

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.winW || outsideHeight != g.winH {
		g.winW, g.winH = outsideWidth, outsideHeight
		g.panel.w = float64(max(outsideWidth-2*margin, 0))
		g.panel.h = float64(max(outsideHeight-2*margin, 0))
		for _, fn := range g.resizeFns {
			fn()
		}
		for _, fn := range g.viewportFns {
			fn()
		}
	}
	return outsideWidth, outsideHeight
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.panel.dirty || g.shape == nil {
		g.rebuildShape()
		g.panel.dirty = false
	}
	if g.shape != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(margin, margin)
		screen.DrawImage(g.shape, op)
	}
	ebitenutil.DebugPrint(screen, stylesSummary(g.panel.styles))
}

// rebuildShape rasterizes the squircle mask at the panel's current
// size and tints it.
func (g *game) rebuildShape() {
	w, h := int(g.panel.w), int(g.panel.h)
	if w <= 0 || h <= 0 {
		g.shape = nil
		return
	}
	mask := squircle.Mask(w, h, g.panel.radius)

	rgba := image.NewRGBA(mask.Bounds())
	const tr, tg, tb = 0x3b, 0x82, 0xf6
	for i, a := range mask.Pix {
		rgba.Pix[4*i+0] = uint8(uint32(tr) * uint32(a) / 0xff)
		rgba.Pix[4*i+1] = uint8(uint32(tg) * uint32(a) / 0xff)
		rgba.Pix[4*i+2] = uint8(uint32(tb) * uint32(a) / 0xff)
		rgba.Pix[4*i+3] = a
	}
	g.shape = ebiten.NewImageFromImage(rgba)
}

func stylesSummary(styles map[string]string) string {
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("resize the window; crossing the breakpoint changes the radius\n")
	for _, k := range keys {
		v := styles[k]
		if len(v) > 60 {
			v = v[:57] + "..."
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteByte('\n')
	}
	return b.String()
}
