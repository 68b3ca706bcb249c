package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/pixel"
	"golang.org/x/image/font/basicfont"
)

// PauseMenu is the centered pause panel: resume, camera mode shifting and a
// label showing the current mode.
type PauseMenu struct {
	ui        *ebitenui.UI
	modeLabel *widget.Text
}

func NewPauseMenu(onResume, onShiftUp, onShiftDown func()) *PauseMenu {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	modeLabel := widget.NewText(
		widget.TextOpts.Text(modeText(component.CameraModeFixed), &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(pixel.DefaultWidth/2, pixel.DefaultHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(modeLabel)
	panel.AddChild(button("Resume", onResume))
	panel.AddChild(button("Camera: Shift Up", onShiftUp))
	panel.AddChild(button("Camera: Shift Down", onShiftDown))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &PauseMenu{
		ui:        &ebitenui.UI{Container: root},
		modeLabel: modeLabel,
	}
}

func (p *PauseMenu) SetMode(mode component.CameraMode) {
	p.modeLabel.Label = modeText(mode)
}

func (p *PauseMenu) Update() {
	p.ui.Update()
}

func (p *PauseMenu) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

func modeText(mode component.CameraMode) string {
	return "Camera mode: " + mode.String()
}
