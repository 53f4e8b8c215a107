package segmented

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"segctl/internal/segment"
)

const (
	// Height is the number of terminal rows the control occupies
	Height = 3

	minCellWidth = 3
	imageCells   = 4
)

// Width returns the rendered width in cells
func (c *Control) Width() int {
	widths := c.cellWidths()
	if len(widths) == 0 {
		return 0
	}
	total := 2 + len(widths) - 1
	for _, w := range widths {
		total += w
	}
	return total
}

// View renders the control as a boxed row of segments
func (c *Control) View() string {
	widths := c.cellWidths()
	if len(widths) == 0 {
		return ""
	}

	b := c.border()
	edge := lipgloss.NewStyle().Foreground(c.tintColor)

	var top, mid, bottom strings.Builder
	top.WriteString(edge.Render(b.TopLeft))
	mid.WriteString(edge.Render(b.Left))
	bottom.WriteString(edge.Render(b.BottomLeft))

	for i, w := range widths {
		if i > 0 {
			top.WriteString(edge.Render(b.MiddleTop))
			mid.WriteString(edge.Render(b.Left))
			bottom.WriteString(edge.Render(b.MiddleBottom))
		}
		top.WriteString(edge.Render(strings.Repeat(b.Top, w)))
		mid.WriteString(c.renderCell(i, w))
		bottom.WriteString(edge.Render(strings.Repeat(b.Bottom, w)))
	}

	top.WriteString(edge.Render(b.TopRight))
	mid.WriteString(edge.Render(b.Right))
	bottom.WriteString(edge.Render(b.BottomRight))

	return lipgloss.JoinVertical(lipgloss.Left, top.String(), mid.String(), bottom.String())
}

// border picks square or rounded corners from the corner radius
func (c *Control) border() lipgloss.Border {
	if c.cornerRadius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

func (c *Control) cellStyle(selected, cursor bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	if selected {
		s = s.Foreground(c.highlightColor).Background(c.tintColor).Bold(true)
	} else {
		s = s.Foreground(c.tintColor)
	}
	if cursor {
		s = s.Underline(true)
	}
	return s
}

func (c *Control) renderCell(index, w int) string {
	content, _ := c.store.Content(index)
	selected, _ := c.store.IsSelected(index)
	style := c.cellStyle(selected, c.focused && index == c.cursor)

	switch content.Kind() {
	case segment.KindText:
		title, _ := content.Title()
		return style.Width(w).Align(lipgloss.Center).Render(ansi.Truncate(title, w-2, "…"))

	case segment.KindImage:
		img, _ := content.Image()
		iw := min(imageCells, w-2)
		var bg lipgloss.TerminalColor = lipgloss.NoColor{}
		if selected {
			bg = c.tintColor
		}
		art := renderImage(img, iw, c.highlightColor, bg, selected)
		left := (w - iw) / 2
		right := w - iw - left
		return style.Render(strings.Repeat(" ", left)) + art + style.Render(strings.Repeat(" ", right))

	default:
		return style.Render(strings.Repeat(" ", w))
	}
}

// cellWidths lays out equal-width segments, either sized to the widest
// content or dividing the fixed width.
func (c *Control) cellWidths() []int {
	n := c.store.Len()
	if n == 0 {
		return nil
	}

	widths := make([]int, n)
	if c.width > 0 {
		avail := c.width - 2 - (n - 1)
		cell, extra := avail/n, avail%n
		if cell < minCellWidth {
			cell, extra = minCellWidth, 0
		}
		for i := range widths {
			widths[i] = cell
			if i < extra {
				widths[i]++
			}
		}
		return widths
	}

	natural := minCellWidth
	for i := 0; i < n; i++ {
		content, _ := c.store.Content(i)
		if w := contentWidth(content) + 2; w > natural {
			natural = w
		}
	}
	for i := range widths {
		widths[i] = natural
	}
	return widths
}

func contentWidth(content segment.Content) int {
	switch content.Kind() {
	case segment.KindText:
		title, _ := content.Title()
		return ansi.StringWidth(title)
	case segment.KindImage:
		return imageCells
	default:
		return 1
	}
}
