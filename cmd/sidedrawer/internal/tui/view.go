package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/sidedrawer/pkg/animation"
	"github.com/go-drift/sidedrawer/pkg/drawer"
	"github.com/go-drift/sidedrawer/pkg/graphics"
)

// Logical pixels per terminal cell.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

type cellKind int

const (
	cellFront cellKind = iota
	cellSide
	cellBorder
	cellShadow
)

// paneLayout places the side pane on one terminal row.
type paneLayout struct {
	width int
	// left and right bound the side pane's columns, [left, right).
	left, right int
	mirrored    bool
	border      bool
	shadowCols  int
}

func newPaneLayout(width int, position, sideWidth float64, a drawer.Appearance, shadow float64, mirrored bool) paneLayout {
	l := paneLayout{
		width:    width,
		left:     int(math.Round((position - sideWidth) / cellWidth)),
		right:    int(math.Round(position / cellWidth)),
		mirrored: mirrored,
		border:   a.Border.Thickness > 0,
	}
	if a.HasShadow && shadow > 0 {
		l.shadowCols = max(1, int(math.Round(math.Abs(a.ShadowOffset.X)/cellWidth)))
	}
	return l
}

// cells classifies every column of a row.
func (l paneLayout) cells() []cellKind {
	out := make([]cellKind, l.width)
	edge := l.right - 1
	if l.mirrored {
		edge = l.left
	}
	for col := range out {
		switch {
		case col >= l.left && col < l.right:
			if l.border && col == edge {
				out[col] = cellBorder
			} else {
				out[col] = cellSide
			}
		case l.right > l.left && !l.mirrored && col >= l.right && col < l.right+l.shadowCols:
			out[col] = cellShadow
		case l.right > l.left && l.mirrored && col < l.left && col >= l.left-l.shadowCols:
			out[col] = cellShadow
		}
	}
	return out
}

type palette struct {
	front  lipgloss.Style
	side   lipgloss.Style
	border lipgloss.Style
	shadow lipgloss.Style
	status lipgloss.Style
}

func newPalette(a drawer.Appearance) palette {
	fill := a.Fill
	if a.Compositing != drawer.CompositeSolid {
		// Approximate the blur by compositing the tint over a dark front pane.
		fill = animation.LerpColor(frontBackground, fill.WithAlpha(1), fill.Alpha())
	}
	side := lipgloss.NewStyle().
		Background(lipgloss.Color(fill.WithAlpha(1).Hex())).
		Foreground(lipgloss.Color(contrasting(fill).Hex()))
	if a.Compositing == drawer.CompositeBlurVibrancy {
		side = side.Bold(true)
	}
	return palette{
		front: lipgloss.NewStyle().
			Background(lipgloss.Color(frontBackground.Hex())).
			Foreground(lipgloss.Color("252")),
		side: side,
		border: lipgloss.NewStyle().
			Background(lipgloss.Color(fill.WithAlpha(1).Hex())).
			Foreground(lipgloss.Color(a.Border.Color.WithAlpha(1).Hex())),
		shadow: lipgloss.NewStyle().
			Background(lipgloss.Color(frontBackground.Hex())).
			Foreground(lipgloss.Color(a.Shadow.Color.WithAlpha(1).Hex())),
		status: lipgloss.NewStyle().Faint(true),
	}
}

var frontBackground = graphics.RGB(0x1c, 0x1c, 0x1c)

func contrasting(c graphics.Color) graphics.Color {
	r, g, b := c.RGB8()
	if 0.299*float64(r)+0.587*float64(g)+0.114*float64(b) > 140 {
		return graphics.ColorBlack
	}
	return graphics.ColorWhite
}

// shade picks a block character for a shadow opacity.
func shade(opacity float64) string {
	switch {
	case opacity <= 0:
		return " "
	case opacity < 0.34:
		return "░"
	case opacity < 0.67:
		return "▒"
	default:
		return "▓"
	}
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// renderRow paints one row. frontText spans the whole row; sideText is laid
// out from the side pane's leading column so it slides with the pane.
func renderRow(l paneLayout, p palette, frontText, sideText string, shadow float64) string {
	front := []rune(fit(frontText, l.width))
	paneWidth := l.right - l.left
	side := []rune(fit(sideText, paneWidth))

	var b strings.Builder
	kinds := l.cells()
	for start := 0; start < len(kinds); {
		kind := kinds[start]
		end := start
		var run strings.Builder
		for end < len(kinds) && kinds[end] == kind {
			switch kind {
			case cellFront:
				run.WriteRune(runeAt(front, end))
			case cellSide:
				run.WriteRune(runeAt(side, end-l.left))
			case cellBorder:
				run.WriteString("│")
			case cellShadow:
				run.WriteString(shade(shadow))
			}
			end++
		}
		switch kind {
		case cellFront:
			b.WriteString(p.front.Render(run.String()))
		case cellSide:
			b.WriteString(p.side.Render(run.String()))
		case cellBorder:
			b.WriteString(p.border.Render(run.String()))
		case cellShadow:
			b.WriteString(p.shadow.Render(run.String()))
		}
		start = end
	}
	return b.String()
}

func runeAt(rs []rune, i int) rune {
	if i < 0 || i >= len(rs) {
		return ' '
	}
	return rs[i]
}
