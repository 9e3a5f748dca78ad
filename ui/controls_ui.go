package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/sparring/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI shows each player's key legend in a panel under their health bar.
type ControlsUI struct {
	UI *ebitenui.UI

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// NewControlsUI creates the control panels with ebitenui
func NewControlsUI() (*ControlsUI, error) {
	cui := &ControlsUI{}
	if err := cui.loadFonts(); err != nil {
		return nil, err
	}
	cui.buildUI()
	return cui, nil
}

func (cui *ControlsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load control panel font: %w", err)
	}

	cui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	return nil
}

func (cui *ControlsUI) buildUI() {
	// Root container with AnchorLayout to fill the screen, left transparent
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	top := int(cfg.UI.HealthBarTop+cfg.UI.HealthBarHeight) + 20
	side := int(cfg.UI.HealthBarMargin)

	rootContainer.AddChild(cui.buildPanel(0, widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		Padding:            &widget.Insets{Top: top, Left: side},
	}))
	rootContainer.AddChild(cui.buildPanel(1, widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		Padding:            &widget.Insets{Top: top, Right: side},
	}))
	rootContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.MatchLegend, &cui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Bottom: 16},
			}),
		)),
	))

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildPanel lays out one player's title and key legend.
func (cui *ControlsUI) buildPanel(player int, placement widget.AnchorLayoutData) *widget.Container {
	bg := cfg.PlayerColors[player]
	bg.A = 60

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(placement),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%s Controls", cfg.Match.PlayerNames[player]), &cui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(title)

	for _, line := range cfg.ControlLegend(player) {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text("> "+line, &cui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{230, 230, 230, 255},
			}),
		))
	}

	return panel
}

// Update processes UI events. Call from the scene's Update.
func (cui *ControlsUI) Update() {
	cui.UI.Update()
}

// Draw renders the panels. Call from the scene's Draw.
func (cui *ControlsUI) Draw(screen *ebiten.Image) {
	cui.UI.Draw(screen)
}
