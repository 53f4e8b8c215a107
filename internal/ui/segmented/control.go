// Package segmented implements a multi-selection segmented control for
// Bubble Tea programs. Any subset of segments may be selected at once; a
// single delegate is told synchronously whenever the selection changes.
package segmented

import (
	"image"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"segctl/internal/segment"
	"segctl/internal/ui/services/events"
)

// Delegate receives events from a Control. It is handed the control itself
// and re-queries whatever state it needs.
type Delegate interface {
	SelectionChanged(c *Control)
}

// Option configures a Control
type Option func(*Control)

// WithHighlightColor sets the content color of selected segments
func WithHighlightColor(color lipgloss.TerminalColor) Option {
	return func(c *Control) { c.highlightColor = color }
}

// WithTintColor sets the background of selected segments and the border color
func WithTintColor(color lipgloss.TerminalColor) Option {
	return func(c *Control) { c.tintColor = color }
}

// WithCornerRadius sets the corner radius
func WithCornerRadius(r float64) Option {
	return func(c *Control) { c.cornerRadius = r }
}

// WithKeyMap replaces the default key bindings
func WithKeyMap(k KeyMap) Option {
	return func(c *Control) { c.KeyMap = k }
}

// WithLogger sets the logger used for selection tracing
func WithLogger(l hclog.Logger) Option {
	return func(c *Control) { c.logger = l }
}

// Control is a row of independently selectable segments
type Control struct {
	store    *segment.Store
	notifier events.Notifier[*Control]
	logger   hclog.Logger

	highlightColor lipgloss.TerminalColor
	tintColor      lipgloss.TerminalColor
	cornerRadius   float64

	KeyMap KeyMap

	cursor  int
	focused bool
	originX int
	originY int
	width   int // 0 sizes the control to its content
}

// New creates a control with n empty, unselected segments
func New(n int, opts ...Option) (*Control, error) {
	store, err := segment.NewStore(n)
	if err != nil {
		return nil, err
	}

	c := &Control{
		store:          store,
		logger:         hclog.NewNullLogger(),
		highlightColor: lipgloss.Color("15"), // white
		tintColor:      lipgloss.Color("33"),
		KeyMap:         DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NumberOfSegments returns the segment count
func (c *Control) NumberOfSegments() int {
	return c.store.Len()
}

// SetNumberOfSegments resizes the control. Surviving segments keep their
// content and selection; new ones start empty and unselected. Resizing does
// not notify the delegate.
func (c *Control) SetNumberOfSegments(n int) error {
	if err := c.store.Resize(n); err != nil {
		return err
	}
	c.clampCursor()
	return nil
}

// CornerRadius returns the corner radius
func (c *Control) CornerRadius() float64 { return c.cornerRadius }

// SetCornerRadius sets the corner radius. Zero draws square corners.
func (c *Control) SetCornerRadius(r float64) { c.cornerRadius = r }

// HighlightColor returns the content color of selected segments
func (c *Control) HighlightColor() lipgloss.TerminalColor { return c.highlightColor }

// SetHighlightColor sets the content color of selected segments
func (c *Control) SetHighlightColor(color lipgloss.TerminalColor) { c.highlightColor = color }

// TintColor returns the selected-segment background and border color
func (c *Control) TintColor() lipgloss.TerminalColor { return c.tintColor }

// SetTintColor sets the selected-segment background and border color
func (c *Control) SetTintColor(color lipgloss.TerminalColor) { c.tintColor = color }

// SetTitle sets a text title for the segment at index
func (c *Control) SetTitle(title string, index int) error {
	return c.store.SetTitle(title, index)
}

// SetImage sets an image for the segment at index
func (c *Control) SetImage(img image.Image, index int) error {
	return c.store.SetImage(img, index)
}

// Content returns the content of the segment at index
func (c *Control) Content(index int) (segment.Content, error) {
	return c.store.Content(index)
}

// IsSelected returns the selection state of the segment at index
func (c *Control) IsSelected(index int) (bool, error) {
	return c.store.IsSelected(index)
}

// SelectedSegments returns the selected indices in ascending order
func (c *Control) SelectedSegments() []int {
	return c.store.Selected()
}

// Toggle flips the selection of the segment at index, notifies the delegate
// once and returns the new selection.
func (c *Control) Toggle(index int) ([]int, error) {
	selected, err := c.store.Toggle(index)
	if err != nil {
		return nil, err
	}
	c.logger.Trace("segment toggled", "index", index, "selected", selected)
	c.notifier.Notify(c)
	return selected, nil
}

// SelectAll selects every segment. The delegate is notified only if the
// selection changed.
func (c *Control) SelectAll() {
	c.setAll(true)
}

// DeselectAll clears the selection. The delegate is notified only if the
// selection changed.
func (c *Control) DeselectAll() {
	c.setAll(false)
}

func (c *Control) setAll(selected bool) {
	if !c.store.SetAll(selected) {
		return
	}
	c.logger.Trace("selection replaced", "all", selected)
	c.notifier.Notify(c)
}

// SetDelegate installs d as the only delegate, replacing any previous one.
// The returned subscription must be cancelled when d goes away.
func (c *Control) SetDelegate(d Delegate) *events.Subscription {
	if d == nil {
		return c.notifier.Register(nil)
	}
	return c.notifier.Register(d.SelectionChanged)
}

// OnSelectionChanged installs fn as the only delegate
func (c *Control) OnSelectionChanged(fn func(*Control)) *events.Subscription {
	return c.notifier.Register(fn)
}

// Focus enables keyboard input
func (c *Control) Focus() { c.focused = true }

// Blur disables keyboard input
func (c *Control) Blur() { c.focused = false }

// Focused reports whether the control takes keyboard input
func (c *Control) Focused() bool { return c.focused }

// Cursor returns the index of the keyboard cursor
func (c *Control) Cursor() int { return c.cursor }

// SetOrigin tells the control where its top-left cell is drawn on screen,
// so mouse events can be mapped to segments.
func (c *Control) SetOrigin(x, y int) {
	c.originX = x
	c.originY = y
}

// SetWidth fixes the rendered width. Zero sizes the control to its content.
func (c *Control) SetWidth(w int) {
	if w < 0 {
		w = 0
	}
	c.width = w
}

func (c *Control) moveCursor(delta int) {
	c.cursor += delta
	c.clampCursor()
}

func (c *Control) clampCursor() {
	n := c.store.Len()
	if c.cursor >= n {
		c.cursor = n - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}
