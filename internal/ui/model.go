package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"segctl/internal/config"
	"segctl/internal/segment"
	"segctl/internal/ui/segmented"
	"segctl/internal/ui/services/events"
	"segctl/internal/ui/views"
)

// Model represents the UI state: one segmented control and its status
type Model struct {
	config  *config.Config
	logger  hclog.Logger
	control *segmented.Control
	sub     *events.Subscription

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	help         help.Model
	keys         keyMap

	width   int
	height  int
	changes int    // selection notifications received
	lastErr string // last rejected operation
}

// NewModel creates a new UI model from cfg and registers it as the
// control's delegate.
func NewModel(cfg *config.Config, logger hclog.Logger) (*Model, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	control, err := segmented.New(len(cfg.Segments),
		segmented.WithHighlightColor(lipgloss.Color(cfg.Control.HighlightColor)),
		segmented.WithTintColor(lipgloss.Color(cfg.Control.TintColor)),
		segmented.WithCornerRadius(cfg.Control.CornerRadius),
		segmented.WithLogger(logger.Named("control")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create control: %w", err)
	}

	for i, seg := range cfg.Segments {
		switch {
		case seg.Image != "":
			img, err := cfg.LoadImage(i)
			if err != nil {
				// Fall back to the file name so the segment stays recognizable
				logger.Warn("segment image unavailable", "segment", i, "error", err)
				err = control.SetTitle(filepath.Base(seg.Image), i)
			} else {
				err = control.SetImage(img, i)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to set segment %d: %w", i, err)
			}
		case seg.Title != "":
			if err := control.SetTitle(seg.Title, i); err != nil {
				return nil, fmt.Errorf("failed to set segment %d: %w", i, err)
			}
		}
	}

	control.SetWidth(cfg.Control.Width)
	control.SetOrigin(views.ControlX, views.ControlY)
	control.Focus()

	m := &Model{
		config:       cfg,
		logger:       logger,
		control:      control,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		help:         help.New(),
		keys:         newKeyMap(control.KeyMap),
	}
	m.sub = control.SetDelegate(m)

	return m, nil
}

// SelectionChanged implements segmented.Delegate
func (m *Model) SelectionChanged(c *segmented.Control) {
	m.changes++
	m.logger.Debug("selection changed", "selected", c.SelectedSegments(), "changes", m.changes)
}

// Control returns the embedded control
func (m *Model) Control() *segmented.Control {
	return m.control
}

// Changes returns how many selection notifications the model has received
func (m *Model) Changes() int {
	return m.changes
}

// Close stops receiving selection notifications
func (m *Model) Close() {
	m.sub.Unsubscribe()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - views.ControlX
		m.fitControl()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Pager):
			return m, showHelpInPager(m.helpRenderer.renderHelpContent(m.keys))
		case key.Matches(msg, m.keys.Grow):
			m.resize(1)
			return m, nil
		case key.Matches(msg, m.keys.Shrink):
			m.resize(-1)
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			if m.control.Focused() {
				m.control.Blur()
			} else {
				m.control.Focus()
			}
			return m, nil
		}

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Error("help pager failed", "error", msg.err)
			m.lastErr = fmt.Sprintf("help pager: %v", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.control, cmd = m.control.Update(msg)
	return m, cmd
}

// resize grows or shrinks the control, reporting rejected counts
func (m *Model) resize(delta int) {
	n := m.control.NumberOfSegments() + delta
	if err := m.control.SetNumberOfSegments(n); err != nil {
		m.logger.Warn("resize rejected", "count", n, "error", err)
		m.lastErr = err.Error()
		return
	}
	m.lastErr = ""
	m.fitControl()
}

// fitControl keeps the control inside the window
func (m *Model) fitControl() {
	if m.width == 0 {
		return
	}
	avail := m.width - 2*views.ControlX
	want := m.config.Control.Width

	m.control.SetWidth(want)
	if m.control.Width() > avail {
		m.control.SetWidth(avail)
	}
}

// describeSelection names the selected segments
func (m *Model) describeSelection() string {
	var names []string
	for _, i := range m.control.SelectedSegments() {
		content, err := m.control.Content(i)
		if err != nil {
			continue
		}
		switch content.Kind() {
		case segment.KindText:
			title, _ := content.Title()
			names = append(names, title)
		case segment.KindImage:
			names = append(names, fmt.Sprintf("image %d", i+1))
		default:
			names = append(names, fmt.Sprintf("#%d", i+1))
		}
	}
	return strings.Join(names, ", ")
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:       m.width,
		Title:       "segctl",
		Control:     m.control.View(),
		Selection:   m.describeSelection(),
		Changes:     m.changes,
		Segments:    m.control.NumberOfSegments(),
		StatusError: m.lastErr,
		Help:        m.help.View(m.keys),
	})
}
