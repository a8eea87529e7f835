package editor

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/milk9111/mailme/common"
	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/prefabs"
	"github.com/milk9111/mailme/world"
	"go.uber.org/zap"
)

var ErrNoWorld = errors.New("editor: state needs a world to rebuild")

// World is the part of the world builder the editor drives.
type World interface {
	Rebuild(items levels.ItemList) *world.Build
	MoveItem(i int, x, y float64)
}

type Options struct {
	Grid     float64
	Debounce time.Duration
	Palette  *prefabs.PaletteSpec
	Logger   *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// State is the in-memory layout editor: the authoritative item list plus
// selection, drag and palette state. It is driven from a single update loop.
type State struct {
	world   World
	log     *zap.Logger
	now     func() time.Time
	grid    float64
	palette *prefabs.PaletteSpec

	items levels.ItemList

	// selection and drag target are tracked by identity so deletes never
	// leave a stale index behind.
	selected levels.Item
	dragging levels.Item

	paletteIdx int
	suppress   bool
	rebuild    debouncer
	rebuilds   int
	version    int
	closed     bool
}

// NewState takes ownership of a copy of items and performs the initial build.
func NewState(items levels.ItemList, w World, opts Options) (*State, error) {
	if w == nil {
		return nil, ErrNoWorld
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Palette == nil || len(opts.Palette.Order) == 0 {
		opts.Palette = &prefabs.PaletteSpec{Order: levels.Kinds()}
	}
	s := &State{
		world:   w,
		log:     opts.Logger,
		now:     opts.Now,
		grid:    opts.Grid,
		palette: opts.Palette,
		items:   items.Clone(),
		rebuild: debouncer{delay: opts.Debounce},
	}
	s.rebuildNow()
	return s, nil
}

func (s *State) Snap(v float64) float64 {
	return common.Snap(v, s.grid)
}

func (s *State) SnapVec(p levels.Vec) levels.Vec {
	return levels.Vec{X: s.Snap(p.X), Y: s.Snap(p.Y)}
}

// Place adds an item of the active palette kind at the snapped position.
// It does nothing while dragging or when a suppress guard is armed.
func (s *State) Place(pos levels.Vec) (levels.Item, bool) {
	if s.closed || s.dragging != nil {
		return nil, false
	}
	if s.suppress {
		s.suppress = false
		return nil, false
	}
	kind := s.PaletteKind()
	it, err := s.palette.NewItem(kind, s.SnapVec(pos))
	if err != nil {
		s.log.Warn("place failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, false
	}
	s.items = append(s.items, it)
	s.touch()
	s.RequestRebuild(true)
	return it, true
}

// SuppressOnce arms a guard that swallows the next placement attempt made
// before the following Tick.
func (s *State) SuppressOnce() {
	s.suppress = true
}

// SelectNearest selects the item closest to pos and returns its index, or -1
// when the layout is empty.
func (s *State) SelectNearest(pos levels.Vec) int {
	i := s.nearest(pos)
	if i < 0 {
		return -1
	}
	s.selected = s.items[i]
	s.touch()
	return i
}

func (s *State) Select(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.selected = s.items[i]
	s.touch()
	return true
}

func (s *State) ClearSelection() {
	if s.selected == nil {
		return
	}
	s.selected = nil
	s.touch()
}

// SelectedIndex is the current index of the selected item, or -1.
func (s *State) SelectedIndex() int {
	return s.indexOf(s.selected)
}

func (s *State) Selected() levels.Item {
	return s.selected
}

// BeginDrag selects item i and starts moving it.
func (s *State) BeginDrag(i int) bool {
	if !s.Select(i) {
		return false
	}
	s.dragging = s.items[i]
	return true
}

// UpdateDrag moves the dragged item to the snapped pos. The live object is
// moved in place and a full rebuild is debounced.
func (s *State) UpdateDrag(pos levels.Vec) {
	if s.dragging == nil {
		return
	}
	p := s.SnapVec(pos)
	if p == s.dragging.Pos() {
		return
	}
	s.dragging.SetPos(p)
	s.world.MoveItem(s.indexOf(s.dragging), p.X, p.Y)
	s.touch()
	s.RequestRebuild(false)
}

// EndDrag finishes a drag with one immediate rebuild and guards the release
// against being read as a placement.
func (s *State) EndDrag() {
	if s.dragging == nil {
		return
	}
	s.dragging = nil
	s.SuppressOnce()
	s.RequestRebuild(true)
}

func (s *State) Dragging() bool {
	return s.dragging != nil
}

// Delete removes item i. A selection of another item keeps pointing at the
// same item even though its index may shift down by one.
func (s *State) Delete(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	removed := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	if s.selected == removed {
		s.selected = nil
	}
	if s.dragging == removed {
		s.dragging = nil
	}
	s.touch()
	s.RequestRebuild(true)
	return true
}

func (s *State) DeleteSelected() bool {
	return s.Delete(s.SelectedIndex())
}

// DeleteNearest removes the item closest to the snapped pos.
func (s *State) DeleteNearest(pos levels.Vec) bool {
	return s.Delete(s.nearest(s.SnapVec(pos)))
}

// CyclePalette steps the active kind by dir, wrapping at both ends.
func (s *State) CyclePalette(dir int) {
	n := len(s.palette.Order)
	s.paletteIdx = ((s.paletteIdx+dir)%n + n) % n
	s.touch()
}

func (s *State) SetPaletteIndex(i int) bool {
	if i < 0 || i >= len(s.palette.Order) {
		return false
	}
	s.paletteIdx = i
	s.touch()
	return true
}

func (s *State) SetPalette(kind levels.Kind) bool {
	i := slices.Index(s.palette.Order, kind)
	if i < 0 {
		return false
	}
	return s.SetPaletteIndex(i)
}

// SetPaletteSpec swaps the palette, keeping the active kind when the new
// order still has it.
func (s *State) SetPaletteSpec(p *prefabs.PaletteSpec) {
	if p == nil || len(p.Order) == 0 {
		return
	}
	kind := s.PaletteKind()
	s.palette = p
	s.paletteIdx = max(slices.Index(p.Order, kind), 0)
	s.touch()
}

func (s *State) PaletteKind() levels.Kind {
	return s.palette.Order[s.paletteIdx]
}

func (s *State) PaletteIndex() int {
	return s.paletteIdx
}

// PaletteStatus is the one-line tool readout shown in the HUD.
func (s *State) PaletteStatus() string {
	return fmt.Sprintf("Tool [G/H or 1-9]: %s (#%d/%d)",
		strings.ToUpper(string(s.PaletteKind())), s.paletteIdx+1, len(s.palette.Order))
}

// RequestRebuild rebuilds now when immediate is set, cancelling any pending
// debounced rebuild. Otherwise it (re)starts the debounce window.
func (s *State) RequestRebuild(immediate bool) {
	if s.closed {
		return
	}
	if immediate {
		s.rebuild.cancel()
		s.rebuildNow()
		return
	}
	s.rebuild.schedule(s.now())
}

// RebuildPending reports whether a debounced rebuild is waiting.
func (s *State) RebuildPending() bool {
	return s.rebuild.pending
}

// Tick runs once per frame after input handling. It disarms the suppress
// guard and fires a debounced rebuild whose window has elapsed.
func (s *State) Tick(now time.Time) {
	s.suppress = false
	if s.closed {
		return
	}
	if s.rebuild.fire(now) {
		s.rebuildNow()
	}
}

func (s *State) rebuildNow() {
	s.world.Rebuild(s.items)
	s.rebuilds++
}

// Load replaces the layout with the records in data. On a parse error the
// current layout is kept.
func (s *State) Load(data []byte) error {
	items, err := levels.Deserialize(data, s.log)
	if err != nil {
		return err
	}
	s.SetItems(items)
	return nil
}

// SetItems replaces the layout, clears selection and drag, and rebuilds.
func (s *State) SetItems(items levels.ItemList) {
	s.items = items.Clone()
	s.selected = nil
	s.dragging = nil
	s.touch()
	s.RequestRebuild(true)
}

func (s *State) Save() ([]byte, error) {
	return levels.Serialize(s.items)
}

// Items returns a shallow copy of the item list in order.
func (s *State) Items() levels.ItemList {
	return slices.Clone(s.items)
}

func (s *State) Len() int {
	return len(s.items)
}

// Rebuilds counts world rebuilds issued so far, including the initial one.
func (s *State) Rebuilds() int {
	return s.rebuilds
}

// Version changes whenever anything the handles overlay shows changes.
func (s *State) Version() int {
	return s.version
}

// Close cancels any pending rebuild and drops selection and drag state.
func (s *State) Close() {
	s.rebuild.cancel()
	s.selected = nil
	s.dragging = nil
	s.suppress = false
	s.closed = true
}

func (s *State) touch() {
	s.version++
}

func (s *State) indexOf(it levels.Item) int {
	if it == nil {
		return -1
	}
	return slices.Index(s.items, it)
}

// nearest returns the index of the item closest to pos, first one on ties.
func (s *State) nearest(pos levels.Vec) int {
	best, bestD := -1, 0.0
	for i, it := range s.items {
		p := it.Pos()
		d := common.DistSq(p.X, p.Y, pos.X, pos.Y)
		if best < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	return best
}
