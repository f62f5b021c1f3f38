package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/orbit-social/orbit/components"
	"golang.org/x/image/font/gofont/goregular"
)

// Hints per input method, shown under the caption
var hints = map[components.InputMethod]string{
	components.InputKeyboard:    "Left/Right browse   Enter select   B flip   F fullscreen   R resolution   Esc quit",
	components.InputMouse:       "Scroll or drag to browse   Click to select   B flip   Esc quit",
	components.InputTouch:       "Swipe to browse   Tap to select",
	components.InputXbox:        "D-pad browse   A select   Y flip   Menu quit",
	components.InputPlayStation: "D-pad browse   Cross select   Triangle flip   Options quit",
}

// CaptionUI is the ebitenui overlay drawn above the gallery
type CaptionUI struct {
	UI *ebitenui.UI

	centeredLabel *widget.Label
	selectedLabel *widget.Label
	hintLabel     *widget.Label

	titleFace text.Face
	smallFace text.Face

	method components.InputMethod
}

// NewCaptionUI creates the overlay with empty captions
func NewCaptionUI() *CaptionUI {
	cui := &CaptionUI{method: components.InputKeyboard}

	cui.loadFonts()
	cui.buildUI()

	return cui
}

func (cui *CaptionUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	cui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (cui *CaptionUI) buildUI() {
	// Transparent root so the gallery shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	top := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	cui.centeredLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	top.AddChild(cui.centeredLabel)

	cui.selectedLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 200, 255, 255},
		}),
	)
	top.AddChild(cui.selectedLabel)

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 10, Right: 10}
	bottom := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	cui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text(hints[cui.method], &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	bottom.AddChild(cui.hintLabel)

	rootContainer.AddChild(top)
	rootContainer.AddChild(bottom)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetCentered shows the label of the item in the middle of the screen
func (cui *CaptionUI) SetCentered(label string) {
	cui.centeredLabel.Label = label
}

// SetSelected shows the label of the last selected item
func (cui *CaptionUI) SetSelected(label string) {
	if label == "" {
		cui.selectedLabel.Label = ""
		return
	}
	cui.selectedLabel.Label = "Selected: " + label
}

// SetInputMethod switches the key hints to the given input method
func (cui *CaptionUI) SetInputMethod(method components.InputMethod) {
	if method == cui.method {
		return
	}
	if hint, ok := hints[method]; ok {
		cui.method = method
		cui.hintLabel.Label = hint
	}
}

// Update calls the UI's Update method
func (cui *CaptionUI) Update() {
	cui.UI.Update()
}
