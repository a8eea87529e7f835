package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Prompt is a one-line modal text input. Enter submits, Escape cancels.
type Prompt struct {
	open    bool
	label   string
	input   string
	onEnter func(string)
	back    *ebiten.Image
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

func (p *Prompt) Open(label, initial string, onEnter func(string)) {
	p.label = label
	p.input = initial
	p.onEnter = onEnter
	p.open = true
}

func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = ""
	p.onEnter = nil
}

// Update consumes typed input. It reports whether the prompt kept focus, in
// which case the caller should skip other input this frame.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		cur, fn := p.input, p.onEnter
		p.Close()
		if fn != nil {
			fn(cur)
		}
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
		return true
	}
	return true
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if p.back == nil || p.back.Bounds().Dx() != sw {
		p.back = ebiten.NewImage(sw, 48)
		p.back.Fill(color.RGBA{A: 0x88})
	}
	o := &ebiten.DrawImageOptions{}
	o.GeoM.Translate(0, float64(sh/2-24))
	screen.DrawImage(p.back, o)
	ebitenutil.DebugPrintAt(screen, p.label+" "+p.input+"_", 16, sh/2-8)
}
