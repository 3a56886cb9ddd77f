// Package ui provides the ImGui control panel, stats overlay and backend
// wrapper used by the galaxy viewer.
package ui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Faultbox/galaxy/internal/logger"
)

// PanelWidth is the fixed width of the panel window.
const PanelWidth = 300

type item interface {
	render(p *Panel)
}

// group is a list of controls, shared by the panel root and its folders.
type group struct {
	prefix string
	items  []item
}

// Float binds a float32 slider.
func (g *group) Float(label string, v *float32) *NumberController {
	c := newNumber(label,
		func() float64 { return float64(*v) },
		func(x float64) { *v = float32(x) },
		false)
	c.id = g.prefix + label
	g.items = append(g.items, c)
	return c
}

// Int binds an integer slider.
func (g *group) Int(label string, v *int) *NumberController {
	c := newNumber(label,
		func() float64 { return float64(*v) },
		func(x float64) { *v = int(x) },
		true)
	c.id = g.prefix + label
	g.items = append(g.items, c)
	return c
}

// Channel binds a 0-255 colour channel slider.
func (g *group) Channel(label string, v *uint8) *NumberController {
	c := newNumber(label,
		func() float64 { return float64(*v) },
		func(x float64) { *v = uint8(max(0, min(255, x))) },
		true)
	c.id = g.prefix + label
	g.items = append(g.items, c.Min(0).Max(255))
	return c
}

// Button adds a button that runs fn when clicked.
func (g *group) Button(label string, fn func() error) {
	g.items = append(g.items, &button{label: label, id: g.prefix + label, fn: fn})
}

// Folder adds a collapsible sub-group.
func (g *group) Folder(name string) *Folder {
	f := &Folder{name: name, open: true}
	f.prefix = g.prefix + name + "/"
	g.items = append(g.items, f)
	return f
}

func (g *group) renderItems(p *Panel) {
	for _, it := range g.items {
		it.render(p)
	}
}

// Folder is a collapsible group of controls.
type Folder struct {
	group
	name string
	open bool
}

// Close makes the folder start collapsed.
func (f *Folder) Close() *Folder {
	f.open = false
	return f
}

func (f *Folder) render(p *Panel) {
	flags := imgui.TreeNodeFlagsNone
	if f.open {
		flags = imgui.TreeNodeFlagsDefaultOpen
	}
	if imgui.TreeNodeExStrV(f.name, flags) {
		f.renderItems(p)
		imgui.TreePop()
	}
}

type button struct {
	label string
	id    string
	fn    func() error
}

func (b *button) render(p *Panel) {
	if imgui.Button(b.label + "##" + b.id) {
		p.report(b.label, b.fn())
	}
}

func (c *NumberController) render(p *Panel) {
	changed, finished := c.draw()
	p.handle(c, changed, finished)
}

// Panel is a floating window of bound controls. Edits are committed through
// each controller's OnFinishChange callback when the widget is released.
type Panel struct {
	group
	title   string
	visible bool

	livePreview bool
	limiter     *rate.Limiter
	now         func() time.Time

	message     string
	messageErr  bool
	messageTime time.Time

	log *zap.Logger
}

// NewPanel creates an empty visible panel.
func NewPanel(title string) *Panel {
	return &Panel{
		title:   title,
		visible: true,
		now:     time.Now,
		log:     logger.Named("panel"),
	}
}

// SetLivePreview also commits while a slider is dragged, at most perSecond
// times a second.
func (p *Panel) SetLivePreview(enabled bool, perSecond float64) {
	p.livePreview = enabled && perSecond > 0
	if p.livePreview {
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	} else {
		p.limiter = nil
	}
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Visible reports whether the panel is drawn.
func (p *Panel) Visible() bool {
	return p.visible
}

// SetMessage shows an informational status line.
func (p *Panel) SetMessage(msg string) {
	p.message, p.messageErr, p.messageTime = msg, false, p.now()
}

// Message returns the status line and whether it reports an error.
func (p *Panel) Message() (string, bool) {
	return p.message, p.messageErr
}

// handle reacts to one frame of slider state.
func (p *Panel) handle(c *NumberController, changed, finished bool) {
	if changed {
		c.SetValue(c.Value())
		if p.livePreview && !finished && p.limiter.AllowN(p.now(), 1) {
			p.report(c.label, c.finish())
		}
	}
	if finished {
		c.SetValue(c.Value())
		p.report(c.label, c.finish())
	}
}

// report records the outcome of a commit.
func (p *Panel) report(label string, err error) {
	if err == nil {
		if p.messageErr {
			p.message, p.messageErr = "", false
		}
		return
	}
	p.log.Warn("edit rejected", zap.String("control", label), zap.Error(err))
	p.message, p.messageErr, p.messageTime = label+": "+err.Error(), true, p.now()
}

// Render draws the panel anchored to the top-right of the main viewport.
func (p *Panel) Render() {
	if !p.visible {
		return
	}

	viewport := imgui.MainViewport()
	pos := viewport.WorkPos()
	size := viewport.WorkSize()
	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+size.X-PanelWidth-10, pos.Y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(PanelWidth, 0))
	imgui.SetNextWindowBgAlpha(0.85)

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsAlwaysAutoResize

	if imgui.BeginV(p.title, nil, flags) {
		imgui.PushItemWidth(PanelWidth * 0.55)
		p.renderItems(p)
		imgui.PopItemWidth()

		if p.message != "" && (p.messageErr || p.now().Sub(p.messageTime) < 3*time.Second) {
			imgui.Separator()
			color := imgui.NewVec4(0.6, 1.0, 0.6, 1.0)
			if p.messageErr {
				color = imgui.NewVec4(1.0, 0.4, 0.4, 1.0)
			}
			imgui.PushStyleColorVec4(imgui.ColText, color)
			imgui.TextWrapped(p.message)
			imgui.PopStyleColor()
		}
	}
	imgui.End()
}
