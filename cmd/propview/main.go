package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/obj"
	"github.com/milk9111/mailme/prefabs"
	"github.com/milk9111/mailme/render"
)

const viewSize = 512

// viewGame shows one prop at a time so factories can be checked in isolation.
// Left/Right switch kinds, Space toggles the footprint overlay, and the
// display advances on its own when -every is set.
type viewGame struct {
	reg     *obj.Registry
	palette *prefabs.PaletteSpec
	cam     *gfx.Camera

	current int
	object  *obj.Object
	overlay bool

	tick       int
	ticksPerOb int
}

func (g *viewGame) show(i int) {
	n := len(g.palette.Order)
	g.current = ((i % n) + n) % n
	if g.object != nil {
		g.object.Destroy()
	}
	kind := g.palette.Order[g.current]
	it, err := g.palette.NewItem(kind, levels.Vec{})
	if err != nil {
		log.Printf("build %s: %v", kind, err)
		g.object = nil
		return
	}
	o, err := g.reg.Create(nil, it)
	if err != nil {
		log.Printf("build %s: %v", kind, err)
		g.object = nil
		return
	}
	o.SetDebugVisible(g.overlay)
	g.object = o
}

func (g *viewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.show(g.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.show(g.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.overlay = !g.overlay
		g.object.SetDebugVisible(g.overlay)
	}
	if g.ticksPerOb > 0 {
		g.tick++
		if g.tick >= g.ticksPerOb {
			g.tick = 0
			g.show(g.current + 1)
		}
	}
	return nil
}

func (g *viewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x67, 0xc1, 0x61, 0xff})
	if g.object != nil {
		render.Tree(screen, g.object.Node(), g.cam)
	}
	kind := g.palette.Order[g.current]
	render.Text(screen, fmt.Sprintf("%s (%d/%d)", kind, g.current+1, len(g.palette.Order)), 12, 12, color.White)
}

func (g *viewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	zoom := flag.Float64("zoom", 1.5, "view zoom")
	every := flag.Int("every", 0, "advance to the next prop every N seconds (0 = manual)")
	flag.Parse()

	palette, err := prefabs.LoadPaletteSpec()
	if err != nil {
		log.Fatal(err)
	}
	cam := gfx.NewCamera(viewSize, viewSize, *zoom)
	cam.SetSmooth(0)
	cam.SnapTo(0, -40)

	g := &viewGame{reg: obj.DefaultRegistry(), palette: palette, cam: cam, ticksPerOb: *every * 60}
	g.show(0)

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Prop viewer")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
