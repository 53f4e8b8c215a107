package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// renderHelpContent renders the full key reference
func (r *HelpRenderer) renderHelpContent(keys keyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	section := func(help *strings.Builder, name string, bindings ...key.Binding) {
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("segctl Help"))
	help.WriteString("\n")

	c := keys.control
	section(&help, "Navigation", c.Left, c.Right, c.Home, c.End)
	section(&help, "Selection", c.Toggle, c.Number, c.SelectAll, c.Clear)
	help.WriteString("  Left click on a segment toggles it.\n")
	section(&help, "Segments", keys.Grow, keys.Shrink, keys.Focus)
	section(&help, "Other", keys.Help, keys.Pager, keys.Quit)

	return help.String()
}

// pagerCommand shows text in the ov pager. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while it runs.
type pagerCommand struct {
	content string
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showHelpInPager returns a command that shows help using ov pager
func showHelpInPager(helpContent string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: helpContent}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
