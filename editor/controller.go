package editor

import (
	"fmt"
	"os"

	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/obj"
	"go.uber.org/zap"
)

// Clipboard moves layout text to and from the system clipboard.
type Clipboard interface {
	ReadText() ([]byte, error)
	WriteText(data []byte) error
}

type ControllerOptions struct {
	// MapPath is where Ctrl+S saves and Ctrl+L loads.
	MapPath string
	// Clipboard is optional; the Shift variants of save and load need it.
	Clipboard Clipboard
	// HandleHit is the half-size of the square around an item that starts a drag.
	HandleHit float64
	Logger    *zap.Logger
}

// Controller maps one frame of input onto editor operations.
type Controller struct {
	state  *State
	opts   ControllerOptions
	log    *zap.Logger
	status string

	// pressCell is the snapped cursor cell a drag started in. The item
	// stays put until the cursor leaves it.
	pressCell levels.Vec
	moved     bool
}

func NewController(s *State, opts ControllerOptions) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Controller{state: s, opts: opts, log: opts.Logger}
}

func (c *Controller) State() *State {
	return c.state
}

// SetMapPath changes the file used by save and load.
func (c *Controller) SetMapPath(path string) {
	c.opts.MapPath = path
	c.status = "Map file: " + path
}

func (c *Controller) MapPath() string {
	return c.opts.MapPath
}

// Status is the message from the last save or load.
func (c *Controller) Status() string {
	return c.status
}

func (c *Controller) Update(in obj.InputState) {
	s := c.state
	mouse := levels.Vec{X: in.MouseWorldX, Y: in.MouseWorldY}

	switch {
	case in.JustPressed(obj.KeyEscape):
		s.ClearSelection()
	case in.JustPressed(obj.KeyDelete), in.JustPressed(obj.KeyBackspace):
		s.DeleteSelected()
	case in.JustPressed(obj.KeyZ) && !in.Ctrl:
		s.DeleteNearest(mouse)
	}

	if in.JustPressed(obj.KeyG) {
		s.CyclePalette(-1)
	}
	if in.JustPressed(obj.KeyH) {
		s.CyclePalette(1)
	}
	for n := 1; n <= 9; n++ {
		if k, _ := obj.DigitKey(n); in.JustPressed(k) {
			s.SetPaletteIndex(n - 1)
		}
	}

	if in.Ctrl && in.JustPressed(obj.KeyS) {
		c.save(in.Shift)
	}
	if in.Ctrl && in.JustPressed(obj.KeyL) {
		c.load(in.Shift)
	}

	if in.MouseLeftPressed && !in.PointerOverUI {
		switch {
		case in.Ctrl:
			s.SelectNearest(mouse)
			s.SuppressOnce()
		default:
			if i := c.handleAt(mouse); i >= 0 {
				if s.BeginDrag(i) {
					c.pressCell, c.moved = s.SnapVec(mouse), false
				}
			} else {
				s.Place(mouse)
			}
		}
	}
	if in.MouseLeftHeld && s.Dragging() {
		if c.moved || s.SnapVec(mouse) != c.pressCell {
			c.moved = true
			s.UpdateDrag(mouse)
		}
	}
	if in.MouseLeftReleased && s.Dragging() {
		s.EndDrag()
	}
}

// handleAt returns the item whose handle contains pos, preferring the nearest.
func (c *Controller) handleAt(pos levels.Vec) int {
	hit := c.opts.HandleHit
	best, bestD := -1, 0.0
	for i, it := range c.state.items {
		p := it.Pos()
		dx, dy := p.X-pos.X, p.Y-pos.Y
		if dx < -hit || dx > hit || dy < -hit || dy > hit {
			continue
		}
		if d := dx*dx + dy*dy; best < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

func (c *Controller) save(toClipboard bool) {
	data, err := c.state.Save()
	if err != nil {
		c.fail("save", err)
		return
	}
	if toClipboard && c.opts.Clipboard != nil {
		if err := c.opts.Clipboard.WriteText(data); err != nil {
			c.fail("copy", err)
			return
		}
		c.status = fmt.Sprintf("Copied %d items to clipboard", c.state.Len())
		c.log.Info("layout copied to clipboard", zap.Int("items", c.state.Len()))
		return
	}
	if err := levels.SaveFile(c.opts.MapPath, c.state.items); err != nil {
		c.fail("save", err)
		return
	}
	c.status = fmt.Sprintf("Saved %d items to %s", c.state.Len(), c.opts.MapPath)
	c.log.Info("layout saved", zap.String("path", c.opts.MapPath), zap.Int("items", c.state.Len()))
}

func (c *Controller) load(fromClipboard bool) {
	var (
		data []byte
		err  error
		src  = c.opts.MapPath
	)
	if fromClipboard && c.opts.Clipboard != nil {
		data, err = c.opts.Clipboard.ReadText()
		src = "clipboard"
	} else {
		data, err = os.ReadFile(c.opts.MapPath)
	}
	if err != nil {
		c.fail("load", err)
		return
	}
	if err := c.state.Load(data); err != nil {
		c.fail("load", fmt.Errorf("%s: %w", src, err))
		return
	}
	c.status = fmt.Sprintf("Loaded %d items from %s", c.state.Len(), src)
	c.log.Info("layout loaded", zap.String("source", src), zap.Int("items", c.state.Len()))
}

func (c *Controller) fail(op string, err error) {
	c.status = fmt.Sprintf("%s failed: %v", op, err)
	c.log.Warn("editor "+op+" failed", zap.Error(err))
}
