package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/mailme/editor"
	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/obj"
	"github.com/milk9111/mailme/prefabs"
	"github.com/milk9111/mailme/world"
	"go.uber.org/zap"
)

// Step is the fixed simulation step, matching ebiten's default tick rate.
const Step = 1.0 / 60.0

var ErrNoSpec = errors.New("scene: missing scene or editor spec")

type Options struct {
	Spec    *prefabs.SceneSpec
	Editor  *prefabs.EditorSpec
	Palette *prefabs.PaletteSpec

	// Registry defaults to obj.DefaultRegistry.
	Registry *obj.Registry
	Items    levels.ItemList

	// MapPath is where the editor saves and loads, and which file change
	// triggers a reload.
	MapPath   string
	Clipboard editor.Clipboard
	Logger    *zap.Logger
	Now       func() time.Time
}

// MailScene is the walkable village: backdrop, fence, the built layout, the
// player and the in-scene editor.
type MailScene struct {
	spec *prefabs.SceneSpec
	log  *zap.Logger

	cw       *obj.CollisionWorld
	backdrop *gfx.Node
	fence    []*obj.StaticBox
	builder  *world.Builder
	build    *world.Build
	player   *obj.Player

	state   *editor.State
	ctrl    *editor.Controller
	handles *editor.Handles
	mapPath string

	editing bool
	debug   bool
	nearby  world.Interaction
	events  []world.Interaction
}

func New(opts Options) (*MailScene, error) {
	if opts.Spec == nil || opts.Editor == nil {
		return nil, ErrNoSpec
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = obj.DefaultRegistry()
	}

	s := &MailScene{
		spec:    opts.Spec,
		log:     opts.Logger,
		cw:      obj.NewCollisionWorld(),
		mapPath: opts.MapPath,
	}
	s.backdrop = newBackdrop(opts.Spec)
	s.fence = addFence(s.cw, opts.Spec)

	b, err := world.NewBuilder(opts.Registry, s.cw, opts.Logger.Named("world"))
	if err != nil {
		return nil, err
	}
	s.builder = b

	ps := opts.Spec.Player
	s.player = obj.NewPlayer(s.cw, ps.SpawnX, ps.SpawnY, ps.Radius, ps.Speed, uint32(ps.Color))

	es := opts.Editor
	s.state, err = editor.NewState(opts.Items, sceneWorld{s}, editor.Options{
		Grid:     es.Grid,
		Debounce: time.Duration(es.DebounceMS) * time.Millisecond,
		Palette:  opts.Palette,
		Logger:   opts.Logger.Named("editor"),
		Now:      opts.Now,
	})
	if err != nil {
		return nil, err
	}
	s.ctrl = editor.NewController(s.state, editor.ControllerOptions{
		MapPath:   opts.MapPath,
		Clipboard: opts.Clipboard,
		HandleHit: es.HandleHit,
		Logger:    opts.Logger.Named("editor"),
	})
	s.handles = editor.NewHandles(editor.HandleStyle{
		Radius:         es.HandleRadius,
		SelectedRadius: es.SelectedRadius,
		Color:          uint32(es.HandleColor),
		SelectedColor:  uint32(es.SelectedColor),
	})
	s.handles.SetVisible(false)
	return s, nil
}

// sceneWorld keeps the player node inside the current build so it depth
// sorts against the props, and detaches it before the build is destroyed.
type sceneWorld struct{ s *MailScene }

func (w sceneWorld) Rebuild(items levels.ItemList) *world.Build {
	s := w.s
	if s.build != nil {
		s.build.Root.Remove(s.player.Node())
	}
	s.build = s.builder.Rebuild(items)
	s.build.Root.Add(s.player.Node())
	return s.build
}

func (w sceneWorld) MoveItem(i int, x, y float64) {
	w.s.builder.MoveItem(i, x, y)
}

// Update advances one frame: editor toggles and input, player movement,
// interaction checks and the editor's deferred work.
func (s *MailScene) Update(in obj.InputState, now time.Time) {
	if in.JustPressed(obj.KeyF2) {
		s.SetEditing(!s.editing)
	}
	if in.JustPressed(obj.KeyF1) {
		s.SetDebug(!s.debug)
	}
	if s.editing {
		s.ctrl.Update(in)
	}

	s.player.Update(in)
	s.cw.Step(Step)
	s.player.Sync()

	p := s.player.Position()
	s.nearby, _ = s.build.Interactables.Nearest(p.X, p.Y, s.spec.Player.InteractRadius)
	if s.nearby != world.InteractNone && in.JustPressed(obj.KeyE) {
		s.events = append(s.events, s.nearby)
		s.log.Debug("interaction", zap.String("kind", string(s.nearby)))
	}

	s.state.Tick(now)
	if s.editing {
		s.handles.Sync(s.state)
	}
}

func (s *MailScene) SetEditing(v bool) {
	if s.editing == v {
		return
	}
	s.editing = v
	s.handles.SetVisible(v)
	if !v {
		s.state.ClearSelection()
		if s.state.Dragging() {
			s.state.EndDrag()
		}
	}
	s.builder.SetDebugShapes(s.debug || s.editing)
	s.log.Info("editor toggled", zap.Bool("editing", v))
}

func (s *MailScene) SetDebug(v bool) {
	s.debug = v
	s.builder.SetDebugShapes(s.debug || s.editing)
}

func (s *MailScene) Editing() bool { return s.editing }

func (s *MailScene) Debug() bool { return s.debug }

// Nearby is the interaction in reach of the player, if any.
func (s *MailScene) Nearby() world.Interaction { return s.nearby }

// Interactions drains the interaction events raised since the last call.
func (s *MailScene) Interactions() []world.Interaction {
	out := s.events
	s.events = nil
	return out
}

// Layers returns the node trees to draw, back to front.
func (s *MailScene) Layers() []*gfx.Node {
	return []*gfx.Node{s.backdrop, s.build.Root, s.handles.Node()}
}

// HandleFileChange reloads the layout when the map file or a layout script
// changes on disk.
func (s *MailScene) HandleFileChange(path string) {
	switch {
	case levels.IsScript(path):
		src, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn("read layout script", zap.String("path", path), zap.Error(err))
			return
		}
		items, err := levels.RunScript(src, s.log)
		if err != nil {
			s.log.Warn("run layout script", zap.String("path", path), zap.Error(err))
			return
		}
		s.state.SetItems(items)
	case s.mapPath != "" && sameFile(path, s.mapPath):
		if s.unchanged(path) {
			return
		}
		s.state.SetItems(levels.LoadFile(path, s.log))
	case levels.IsSpec(path) && filepath.Base(path) == "palette.yaml":
		pal, err := prefabs.LoadPaletteSpec()
		if err != nil {
			s.log.Warn("reload palette", zap.Error(err))
			return
		}
		s.state.SetPaletteSpec(pal)
		s.log.Info("palette reloaded", zap.Int("kinds", len(pal.Order)))
		return
	default:
		return
	}
	s.log.Info("layout reloaded", zap.String("path", path), zap.Int("items", s.state.Len()))
}

// unchanged reports whether the file holds exactly the current layout, as
// it does right after the editor saved it.
func (s *MailScene) unchanged(path string) bool {
	disk, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	cur, err := s.state.Save()
	return err == nil && bytes.Equal(bytes.TrimSpace(disk), bytes.TrimSpace(cur))
}

func (s *MailScene) Spec() *prefabs.SceneSpec       { return s.spec }
func (s *MailScene) State() *editor.State           { return s.state }
func (s *MailScene) Controller() *editor.Controller { return s.ctrl }
func (s *MailScene) Player() *obj.Player            { return s.player }
func (s *MailScene) Collision() *obj.CollisionWorld { return s.cw }
func (s *MailScene) Build() *world.Build            { return s.build }

// Close tears the scene down. The scene must not be used afterwards.
func (s *MailScene) Close() {
	s.state.Close()
	if s.build != nil {
		s.build.Root.Remove(s.player.Node())
	}
	s.builder.Destroy()
	s.build = nil
	for _, b := range s.fence {
		s.cw.RemoveStaticBox(b)
	}
	s.fence = nil
	s.handles.Destroy()
	s.backdrop.Destroy()
}
