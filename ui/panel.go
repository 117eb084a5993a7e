package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/focusball/components"
	cfg "github.com/automoto/focusball/config"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/session"
	"github.com/automoto/focusball/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const roundStep = 5.0 // Seconds per round duration step

// PanelUI is the control panel docked on the right edge of the window
type PanelUI struct {
	UI *ebitenui.UI

	trainer *components.TrainerData
	overlay *components.OverlayData
	panel   *components.PanelData
	screen  int
	status  string

	// Widget references for updates
	levelButtons  [motion.LevelCount]*widget.Button
	levelLabel    *widget.Label
	tierLabel     *widget.Label
	sublevelLabel *widget.Label
	screenLabel   *widget.Label
	speedLabel    *widget.Label
	sizeLabel     *widget.Label
	roundLabel    *widget.Label
	statusLabel   *widget.Label
	lockedButtons []*widget.Button
	toggles       []toggle

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// toggle is a two-state button and the model value it mirrors
type toggle struct {
	button *widget.Button
	on     func() bool
}

// NewPanelUI builds the panel around the running trainer.
func NewPanelUI(trainer *components.TrainerData, overlay *components.OverlayData, panel *components.PanelData) (*PanelUI, error) {
	p := &PanelUI{
		trainer: trainer,
		overlay: overlay,
		panel:   panel,
		screen:  cfg.Curve.ScreenType,
	}
	if err := p.loadFonts(); err != nil {
		return nil, err
	}
	p.buildUI()
	return p, nil
}

func (p *PanelUI) session() *session.Session {
	return p.trainer.Session
}

func (p *PanelUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("panel font: %w", err)
	}
	p.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.Panel.FontSize + 4}
	p.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.Panel.FontSize}
	p.smallFace = &text.GoTextFace{Source: fontSource, Size: cfg.Panel.FontSize - 3}
	return nil
}

func (p *PanelUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Panel.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Panel.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.Panel.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.Width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)

	content.AddChild(p.newLabel("FOCUS BALL", &p.titleFace))
	p.levelLabel = p.newLabel("", &p.normalFace)
	content.AddChild(p.levelLabel)
	content.AddChild(p.buildLevelGrid())

	p.tierLabel = p.newLabel("", &p.normalFace)
	content.AddChild(p.buildStepper(p.tierLabel, true, func(d int) error {
		return p.session().SetTier(p.session().Tier() + d)
	}))
	p.sublevelLabel = p.newLabel("", &p.normalFace)
	content.AddChild(p.buildStepper(p.sublevelLabel, true, func(d int) error {
		return p.session().SetSublevel(p.session().Sublevel() + d)
	}))
	p.screenLabel = p.newLabel("", &p.smallFace)
	content.AddChild(p.buildStepper(p.screenLabel, true, p.stepScreen))

	p.speedLabel = p.newLabel("", &p.normalFace)
	speedRow := p.buildStepper(p.speedLabel, false, func(d int) error {
		p.session().ChangeSpeed(d)
		return nil
	})
	speedRow.AddChild(p.newButton("Reset", func() error {
		return p.session().RestoreSpeed(p.session().Level().Slot())
	}))
	content.AddChild(speedRow)

	p.sizeLabel = p.newLabel("", &p.normalFace)
	content.AddChild(p.buildStepper(p.sizeLabel, false, func(d int) error {
		p.session().ChangeSize(float64(d) * cfg.Target.SizeStep)
		return nil
	}))

	p.roundLabel = p.newLabel("", &p.normalFace)
	roundRow := p.buildStepper(p.roundLabel, false, func(d int) error {
		next := p.session().Settings().RoundDuration + float64(d)*roundStep
		return p.session().SetRoundDuration(next)
	})
	roundRow.AddChild(p.newButton("Restart", func() error {
		p.session().RestartRound()
		return nil
	}))
	content.AddChild(roundRow)

	content.AddChild(p.buildToggles())

	p.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &p.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 120, 120, 255},
		}),
	)
	content.AddChild(p.statusLabel)
	content.AddChild(p.newLabel("M hides this panel", &p.smallFace))

	rootContainer.AddChild(content)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (p *PanelUI) buildLevelGrid() *widget.Container {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(4),
			widget.GridLayoutOpts.Spacing(4, 4),
			widget.GridLayoutOpts.DefaultStretch(true, false),
		)),
	)
	for i := range p.levelButtons {
		level := motion.LevelID(i + 1)
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 26)),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.Text(fmt.Sprintf("%d", int(level)), &p.normalFace, buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				p.run(func() error { return p.session().SelectLevel(level) })
			}),
		)
		p.levelButtons[i] = btn
		grid.AddChild(btn)
	}
	return grid
}

// buildStepper is a [-] label [+] row. Locked rows are disabled in
// meditation mode.
func (p *PanelUI) buildStepper(label *widget.Label, locked bool, step func(d int) error) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	down := p.newButton("-", func() error { return step(-1) })
	up := p.newButton("+", func() error { return step(1) })
	row.AddChild(down)
	row.AddChild(label)
	row.AddChild(up)
	if locked {
		p.lockedButtons = append(p.lockedButtons, down, up)
	}
	return row
}

func (p *PanelUI) buildToggles() *widget.Container {
	box := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(4, 4),
			widget.GridLayoutOpts.DefaultStretch(true, false),
		)),
	)
	s := p.session
	p.addToggle(box, "Auto-advance", func() bool { return s().Settings().AutoAdvance }, func() error {
		systems.ApplyAction(p.trainer, p.overlay, p.panel, cfg.ActionToggleAutoAdvance)
		return nil
	})
	p.addToggle(box, "Flash", func() bool { return !s().FlashDisabled() }, func() error {
		s().SetFlashDisabled(!s().FlashDisabled())
		return nil
	})
	p.addToggle(box, "Meditation", func() bool { return s().Meditation() }, func() error {
		_, err := s().ToggleMeditation()
		return err
	})
	p.addToggle(box, "Hashtag", func() bool { return p.overlay.Hashtag }, p.action(cfg.ActionToggleHashtag))
	p.addToggle(box, "V stripes", func() bool { return p.overlay.VerticalStripes }, p.action(cfg.ActionToggleVerticalStripes))
	p.addToggle(box, "H stripes", func() bool { return p.overlay.HorizontalStripes }, p.action(cfg.ActionToggleHorizontalStripes))
	p.addToggle(box, "Solid", func() bool { return p.overlay.Solid }, p.action(cfg.ActionToggleSolidOverlay))
	return box
}

func (p *PanelUI) addToggle(box *widget.Container, label string, on func() bool, flip func() error) {
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.ToggleMode(),
		widget.ButtonOpts.Text(label, &p.smallFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.run(flip)
		}),
	)
	p.toggles = append(p.toggles, toggle{button: btn, on: on})
	box.AddChild(btn)
}

func (p *PanelUI) action(id cfg.ActionID) func() error {
	return func() error {
		systems.ApplyAction(p.trainer, p.overlay, p.panel, id)
		return nil
	}
}

func (p *PanelUI) stepScreen(d int) error {
	n := len(cfg.Screens.Types)
	next := ((p.screen+d)%n + n) % n
	if err := p.session().SetResolution(cfg.ScreenFactor(next)); err != nil {
		return err
	}
	p.screen = next
	return nil
}

func (p *PanelUI) newLabel(label string, face *text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, face, &widget.LabelColor{
			Idle: cfg.Panel.TextColor,
		}),
	)
}

func (p *PanelUI) newButton(label string, fn func() error) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(32, 24)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &p.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.run(fn)
		}),
	)
}

// run performs a panel action and keeps its error for the status line.
func (p *PanelUI) run(fn func() error) {
	p.status = ""
	if err := fn(); err != nil {
		p.status = statusText(err)
	}
	p.panel.Dirty = true
}

func statusText(err error) string {
	switch {
	case errors.Is(err, session.ErrRestricted):
		return "Not available in meditation mode"
	case errors.Is(err, session.ErrInvalidValue):
		return "Value out of range"
	}
	return err.Error()
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Panel.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Panel.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Panel.ButtonOn),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     cfg.Panel.TextColor,
		Hover:    color.RGBA{255, 255, 200, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{120, 120, 120, 255},
	}
}

// UpdateUI copies the session state into the widgets
func (p *PanelUI) UpdateUI() {
	s := p.session()
	level := s.Level()
	restricted := s.Meditation()

	p.levelLabel.Label = fmt.Sprintf("Level %d: %s", int(level), level)
	for i, btn := range p.levelButtons {
		l := motion.LevelID(i + 1)
		btn.GetWidget().Disabled = !s.Allowed(l)
		btn.SetState(checked(l == level))
	}

	p.tierLabel.Label = fmt.Sprintf("Tier %d / %d", s.Tier()+1, s.Table().Tiers())
	p.sublevelLabel.Label = fmt.Sprintf("Sublevel %d / %d", s.Sublevel()+1, s.Table().Sublevels())
	if p.screen >= 0 && p.screen < len(cfg.Screens.Types) {
		st := cfg.Screens.Types[p.screen]
		p.screenLabel.Label = fmt.Sprintf("%s (x%.2f)", st.Label, st.Factor)
	}
	for _, btn := range p.lockedButtons {
		btn.GetWidget().Disabled = restricted
	}

	p.speedLabel.Label = fmt.Sprintf("Speed %.2f", s.Speed())
	p.sizeLabel.Label = fmt.Sprintf("Size %.0f%%", s.Settings().SizePercent)
	p.roundLabel.Label = fmt.Sprintf("Round %.0fs", s.Settings().RoundDuration)

	for _, t := range p.toggles {
		t.button.SetState(checked(t.on()))
	}
	p.statusLabel.Label = p.status
}

func checked(on bool) widget.WidgetState {
	if on {
		return widget.WidgetChecked
	}
	return widget.WidgetUnchecked
}

// Update runs the widgets and refreshes labels when the model changed
func (p *PanelUI) Update() {
	p.UI.Update()
	if !p.initialized || p.panel.Dirty {
		p.initialized = true
		p.panel.Dirty = false
		p.UpdateUI()
	}
}
