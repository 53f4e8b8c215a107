package segmented

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key presses while focused and left clicks on segments
func (c *Control) Update(msg tea.Msg) (*Control, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !c.focused || c.store.Len() == 0 {
			return c, nil
		}
		c.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return c, nil
		}
		if index, ok := c.HitTest(msg.X, msg.Y); ok {
			c.cursor = index
			c.toggle(index)
		}
	}

	return c, nil
}

func (c *Control) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.KeyMap.Left):
		c.moveCursor(-1)
	case key.Matches(msg, c.KeyMap.Right):
		c.moveCursor(1)
	case key.Matches(msg, c.KeyMap.Home):
		c.cursor = 0
	case key.Matches(msg, c.KeyMap.End):
		c.cursor = c.store.Len() - 1
	case key.Matches(msg, c.KeyMap.Toggle):
		c.toggle(c.cursor)
	case key.Matches(msg, c.KeyMap.Number):
		index := int(msg.String()[0] - '1')
		if index < c.store.Len() {
			c.cursor = index
			c.toggle(index)
		}
	case key.Matches(msg, c.KeyMap.SelectAll):
		c.SelectAll()
	case key.Matches(msg, c.KeyMap.Clear):
		c.DeselectAll()
	}
}

// toggle is Toggle for indices already known to be valid
func (c *Control) toggle(index int) {
	if _, err := c.Toggle(index); err != nil {
		c.logger.Error("toggle failed", "index", index, "error", err)
	}
}

// HitTest maps a screen cell to the segment drawn there. Borders and
// dividers belong to no segment.
func (c *Control) HitTest(x, y int) (int, bool) {
	x -= c.originX
	y -= c.originY
	if y < 0 || y >= Height {
		return -1, false
	}

	pos := 1 // left border
	for i, w := range c.cellWidths() {
		if x >= pos && x < pos+w {
			return i, true
		}
		pos += w + 1 // cell plus divider
	}
	return -1, false
}
