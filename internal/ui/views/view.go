package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// ControlX and ControlY are where the control's top-left cell lands
	ControlX = 2
	ControlY = 2
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Title       string
	Control     string
	Selection   string
	Changes     int
	Segments    int
	StatusError string
	Help        string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render lays out the title, the control, the status line and help.
// The control's position must match ControlX and ControlY.
func (r *Renderer) Render(state ViewState) string {
	indent := strings.Repeat(" ", ControlX)

	var lines []string
	lines = append(lines, r.styles.Title.Render(state.Title), "")

	if state.Control == "" {
		lines = append(lines, indent+r.styles.Dim.Render("(no segments)"))
	} else {
		for _, line := range strings.Split(state.Control, "\n") {
			lines = append(lines, indent+line)
		}
	}
	lines = append(lines, "", indent+r.renderStatus(state))

	if state.StatusError != "" {
		lines = append(lines, indent+r.styles.StatusError.Render(state.StatusError))
	}

	if state.Help != "" {
		lines = append(lines, "")
		for _, line := range strings.Split(state.Help, "\n") {
			lines = append(lines, indent+r.styles.Help.Render(line))
		}
	}

	out := strings.Join(lines, "\n")
	if state.Width > 0 {
		out = lipgloss.NewStyle().MaxWidth(state.Width).Render(out)
	}
	return out
}

func (r *Renderer) renderStatus(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Status.Render("Selected: "))
	if state.Selection == "" {
		b.WriteString(r.styles.Dim.Render("none"))
	} else {
		b.WriteString(r.styles.Highlight.Render(state.Selection))
	}
	b.WriteString(r.styles.Status.Render(
		fmt.Sprintf(" · segments: %d · changes: %d", state.Segments, state.Changes),
	))
	return b.String()
}
