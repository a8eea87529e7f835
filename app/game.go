package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/render"
	"github.com/milk9111/mailme/scene"
	"github.com/milk9111/mailme/world"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

// Options configures the window-facing game wrapper.
type Options struct {
	Width, Height int
	Zoom          float64
	Watcher       *levels.Watcher
	Logger        *zap.Logger
}

// Game drives a MailScene from ebiten: it polls input, advances the scene,
// follows the player with the camera and draws the scene and overlays.
type Game struct {
	scene   *scene.MailScene
	cam     *gfx.Camera
	log     *zap.Logger
	watcher *levels.Watcher

	width, height int

	hud    *EditorHUD
	pause  *ebitenui.UI
	prompt *Prompt

	paused bool
	quit   bool

	// last interaction, shown briefly in place of the mail UI
	toast      string
	toastUntil time.Time
}

func NewGame(s *scene.MailScene, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	g := &Game{
		scene:   s,
		log:     opts.Logger,
		watcher: opts.Watcher,
		width:   opts.Width,
		height:  opts.Height,
		hud:     NewEditorHUD(),
		prompt:  NewPrompt(),
	}
	g.cam = gfx.NewCamera(opts.Width, opts.Height, opts.Zoom)
	g.cam.SetWorldBounds(s.Spec().Width, s.Spec().Height)
	p := s.Player().Position()
	g.cam.SnapTo(p.X, p.Y)

	g.pause = NewPauseUI(opts.Width, opts.Height,
		func() { g.paused = false },
		func() { g.quit = true },
	)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	now := time.Now()

	for _, path := range g.watcher.Poll() {
		g.scene.HandleFileChange(path)
	}
	if err := g.watcher.PollError(); err != nil {
		g.log.Warn("file watcher", zap.Error(err))
	}

	if g.prompt.Update() {
		return nil
	}
	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = false
		}
		g.pause.Update()
		return nil
	}
	if !g.scene.Editing() && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = true
		return nil
	}
	if g.scene.Editing() && inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		ctrl := g.scene.Controller()
		g.prompt.Open("Map file:", ctrl.MapPath(), ctrl.SetMapPath)
		return nil
	}

	in := PollInput(g.cam)
	if g.scene.Editing() {
		in.PointerOverUI = g.hud.Contains(ebiten.CursorPosition())
	}
	g.scene.Update(in, now)

	for _, it := range g.scene.Interactions() {
		g.toast = fmt.Sprintf("Opening %s...", it)
		g.toastUntil = now.Add(2 * time.Second)
		g.log.Info("interaction", zap.String("kind", string(it)))
	}

	p := g.scene.Player().Position()
	g.cam.Update(p.X, p.Y)

	if g.scene.Editing() {
		st := g.scene.State()
		g.hud.Set(st.PaletteStatus(), g.scene.Controller().Status())
		g.hud.UI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	for _, layer := range g.scene.Layers() {
		render.Tree(screen, layer, g.cam)
	}
	if g.scene.Debug() {
		render.Physics(screen, g.scene.Collision(), g.cam)
	}

	if g.scene.Editing() {
		g.hud.UI.Draw(screen)
	} else if hint := interactHint(g.scene.Nearby()); hint != "" {
		render.Text(screen, hint, float64(g.width)/2-float64(len(hint))*3.5, float64(g.height)-40, color.White)
	}
	if time.Now().Before(g.toastUntil) {
		render.Text(screen, g.toast, 16, 16, colornames.Lightyellow)
	}

	if g.paused {
		g.pause.Draw(screen)
	}
	g.prompt.Draw(screen)
}

func interactHint(in world.Interaction) string {
	switch in {
	case world.InteractCompose:
		return "Press E to write a letter"
	case world.InteractInbox:
		return "Press E to open your inbox"
	case world.InteractWardrobe:
		return "Press E to change clothes"
	}
	return ""
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the scene and the file watcher.
func (g *Game) Close() {
	g.scene.Close()
	if err := g.watcher.Close(); err != nil {
		g.log.Warn("close watcher", zap.Error(err))
	}
}
