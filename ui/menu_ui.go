package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	// OnSelect runs the chosen option and returns the status line.
	OnSelect func(components.MainMenuOption) string

	buttons     []*widget.Button
	statusLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu with one button per visible option.
func NewMenuUI(menu *components.MenuData, onSelect func(components.MainMenuOption) string) *MenuUI {
	mui := &MenuUI{
		Menu:     menu,
		OnSelect: onSelect,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(16)
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(title)

	for i, option := range mui.Menu.VisibleOptions {
		idx, opt := i, option // Capture for closure
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
			),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(opt.String(), &mui.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.Menu.TextColorNormal,
				Hover:   cfg.Menu.TextColorFocused,
				Pressed: cfg.Menu.TextColorFocused,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				mui.Menu.SelectedIndex = idx
				if mui.OnSelect != nil {
					mui.Menu.Status = mui.OnSelect(opt)
				}
			}),
		)
		mui.buttons = append(mui.buttons, btn)
		contentContainer.AddChild(btn)
	}

	mui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	contentContainer.AddChild(mui.statusLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
	}
}

// UpdateUI mirrors the keyboard selection and status into the widgets.
func (mui *MenuUI) UpdateUI() {
	for i, btn := range mui.buttons {
		textWidget := btn.Text()
		if textWidget == nil {
			continue
		}
		textWidget.Label = optionLabel(mui.Menu.VisibleOptions[i], i == mui.Menu.SelectedIndex)
	}
	if mui.statusLabel != nil {
		mui.statusLabel.Label = mui.Menu.Status
	}
}

// optionLabel marks the keyboard-selected option.
func optionLabel(option components.MainMenuOption, selected bool) string {
	if selected {
		return "> " + option.String() + " <"
	}
	return option.String()
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
	mui.UpdateUI()
}
