package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/rotr/character"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/hud"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Element is a HUD widget backed by an ebitenui widget tree.
type Element interface {
	hud.Widget
	Root() widget.PreferredSizeLocateableWidget
}

// Viewport is the screen-filling ebitenui root the HUD widgets are added to.
type Viewport struct {
	UI   *ebitenui.UI
	root *widget.Container
}

func NewViewport() *Viewport {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	return &Viewport{
		UI:   &ebitenui.UI{Container: root},
		root: root,
	}
}

func (v *Viewport) Add(w hud.Widget) {
	if el, ok := w.(Element); ok {
		v.root.AddChild(el.Root())
	}
}

func (v *Viewport) Remove(w hud.Widget) {
	if el, ok := w.(Element); ok {
		v.root.RemoveChild(el.Root())
	}
}

// StatsSource returns the stats to display, or nil when there is no character.
type StatsSource func() (stats *character.Stats, sprinting bool)

// StatsWidgetClass creates the health and stamina panel.
type StatsWidgetClass struct {
	Source StatsSource
	Face   text.Face
	Config cfg.HUDConfig
}

func (c *StatsWidgetClass) CreateWidget(v hud.Viewport) hud.Widget {
	if c.Source == nil || c.Face == nil {
		return nil
	}
	return newStatsWidget(c, v)
}

// StatsWidget shows eased health and stamina bars.
type StatsWidget struct {
	viewport hud.Viewport
	source   StatsSource

	panel        *widget.Container
	healthLabel  *widget.Label
	staminaLabel *widget.Label
	healthBar    *widget.ProgressBar
	staminaBar   *widget.ProgressBar
	sprintLabel  *widget.Label

	health  *hud.Meter
	stamina *hud.Meter
}

const barResolution = 1000

func newStatsWidget(c *StatsWidgetClass, v hud.Viewport) *StatsWidget {
	w := &StatsWidget{
		viewport: v,
		source:   c.Source,
		health:   hud.NewMeter(float32(c.Config.MeterSeconds)),
		stamina:  hud.NewMeter(float32(c.Config.MeterSeconds)),
	}

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	w.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{R: 0, G: 0, B: 0, A: 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	face := c.Face
	labelColor := &widget.LabelColor{Idle: cfg.White}

	w.healthLabel = widget.NewLabel(widget.LabelOpts.Text("HEALTH", &face, labelColor))
	w.healthBar = newBar(c.Config, cfg.LightRed)
	w.staminaLabel = widget.NewLabel(widget.LabelOpts.Text("STAMINA", &face, labelColor))
	w.staminaBar = newBar(c.Config, cfg.BrightGreen)
	w.sprintLabel = widget.NewLabel(widget.LabelOpts.Text("", &face, &widget.LabelColor{Idle: cfg.BrightYellow}))

	w.panel.AddChild(w.healthLabel)
	w.panel.AddChild(w.healthBar)
	w.panel.AddChild(w.staminaLabel)
	w.panel.AddChild(w.staminaBar)
	w.panel.AddChild(w.sprintLabel)
	return w
}

func newBar(c cfg.HUDConfig, fill color.RGBA) *widget.ProgressBar {
	return widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(widget.WidgetOpts.MinSize(c.BarWidth, c.BarHeight)),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{Idle: image.NewNineSliceColor(color.RGBA{R: 40, G: 40, B: 50, A: 255})},
			&widget.ProgressBarImage{Idle: image.NewNineSliceColor(fill)},
		),
		widget.ProgressBarOpts.Values(0, barResolution, barResolution),
	)
}

func (w *StatsWidget) Root() widget.PreferredSizeLocateableWidget {
	return w.panel
}

func (w *StatsWidget) AddToViewport() {
	w.viewport.Add(w)
}

func (w *StatsWidget) RemoveFromViewport() {
	w.viewport.Remove(w)
}

// Update eases the bars toward the current percentages.
func (w *StatsWidget) Update() {
	stats, sprinting := w.source()
	if stats == nil {
		return
	}

	w.health.Set(stats.HealthPercentage)
	w.stamina.Set(stats.StaminaPercentage)
	dt := float32(1 / float64(ebiten.TPS()))
	w.health.Update(dt)
	w.stamina.Update(dt)

	w.healthBar.SetCurrent(int(w.health.Value() * barResolution))
	w.staminaBar.SetCurrent(int(w.stamina.Value() * barResolution))
	w.healthLabel.Label = fmt.Sprintf("HEALTH %3.0f%%", stats.HealthPercentage*100)
	w.staminaLabel.Label = fmt.Sprintf("STAMINA %3.0f%%", stats.StaminaPercentage*100)
	if sprinting {
		w.sprintLabel.Label = "SPRINT"
	} else {
		w.sprintLabel.Label = ""
	}
}
