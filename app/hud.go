package app

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dimWhite  = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	panelBack = color.NRGBA{A: 170}
)

func hudFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

// EditorHUD is the top-left editor panel: active tool, last save/load
// message and a key reference.
type EditorHUD struct {
	UI     *ebitenui.UI
	tool   *widget.Text
	status *widget.Text
	panel  *widget.Container
}

const editorHelp = "LMB place / drag handle   Ctrl+LMB select\n" +
	"Del delete   Z delete nearest   Esc deselect\n" +
	"Ctrl+S save   Ctrl+L load   +Shift clipboard\n" +
	"F1 colliders   F2 close editor   F3 map file"

func NewEditorHUD() *EditorHUD {
	face := hudFace()
	h := &EditorHUD{}

	row := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})
	title := widget.NewText(
		widget.TextOpts.Text("Editor", face, white),
		widget.TextOpts.WidgetOpts(row),
	)
	h.tool = widget.NewText(
		widget.TextOpts.Text("", face, white),
		widget.TextOpts.WidgetOpts(row),
	)
	h.status = widget.NewText(
		widget.TextOpts.Text("", face, dimWhite),
		widget.TextOpts.WidgetOpts(row),
	)
	help := widget.NewText(
		widget.TextOpts.Text(editorHelp, face, dimWhite),
		widget.TextOpts.WidgetOpts(row),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelBack)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(h.tool)
	panel.AddChild(h.status)
	panel.AddChild(help)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	h.UI = &ebitenui.UI{Container: root}
	h.panel = panel
	return h
}

// Contains reports whether the screen point (x, y) lies on the panel.
func (h *EditorHUD) Contains(x, y int) bool {
	return image.Pt(x, y).In(h.panel.GetWidget().Rect)
}

// Set refreshes the panel text.
func (h *EditorHUD) Set(tool, status string) {
	h.tool.Label = tool
	h.status.Label = status
}

// NewPauseUI builds a centered pause panel with Resume and Quit buttons.
func NewPauseUI(width, height int, onResume, onQuit func()) *ebitenui.UI {
	face := hudFace()
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	button := func(label string, fn func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				fn()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/3, height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(button("Resume", onResume))
	panel.AddChild(button("Quit", onQuit))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
