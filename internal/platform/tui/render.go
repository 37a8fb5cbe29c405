package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/flappy-xp/internal/core"
)

// RenderCanvas converts the canvas to cols x rows styled half-block cells.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderCanvas(c *core.Canvas, cols, rows int) string {
	grid := c.Cells(cols, rows)
	if grid == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(cols*rows*4 + rows)

	styles := make(map[[2]color.RGBA]lipgloss.Style)
	for y, line := range grid {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(line) {
			start := line[x]
			var run strings.Builder
			for x < len(line) && line[x].FG == start.FG && line[x].BG == start.BG {
				run.WriteRune(line[x].Rune)
				x++
			}

			k := [2]color.RGBA{start.FG, start.BG}
			style, ok := styles[k]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hex(start.FG))).
					Background(lipgloss.Color(hex(start.BG)))
				styles[k] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
