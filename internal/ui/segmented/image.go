package segmented

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	fullBlock = "█"
)

// renderImage draws img as width half-block cells, two pixel rows per cell.
// As a template, opaque pixels take fg over bg instead of their own colors.
func renderImage(img image.Image, width int, fg, bg lipgloss.TerminalColor, template bool) string {
	if width <= 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, 2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for x := 0; x < width; x++ {
		top, bottom := dst.RGBAAt(x, 0), dst.RGBAAt(x, 1)
		if template {
			b.WriteString(templateCell(opaque(top), opaque(bottom), fg, bg))
		} else {
			b.WriteString(colorCell(top, bottom))
		}
	}
	return b.String()
}

func templateCell(top, bottom bool, fg, bg lipgloss.TerminalColor) string {
	s := lipgloss.NewStyle().Foreground(fg).Background(bg)
	switch {
	case top && bottom:
		return s.Render(fullBlock)
	case top:
		return s.Render(upperHalf)
	case bottom:
		return s.Render(lowerHalf)
	default:
		return s.Render(" ")
	}
}

func colorCell(top, bottom color.RGBA) string {
	t, b := opaque(top), opaque(bottom)
	switch {
	case t && b:
		return lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bottom)).Render(upperHalf)
	case t:
		return lipgloss.NewStyle().Foreground(hexColor(top)).Render(upperHalf)
	case b:
		return lipgloss.NewStyle().Foreground(hexColor(bottom)).Render(lowerHalf)
	default:
		return " "
	}
}

func opaque(c color.RGBA) bool {
	return c.A >= 0x80
}

// hexColor converts a premultiplied pixel to a lipgloss color
func hexColor(c color.RGBA) lipgloss.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B))
}
