package ui

import (
	"fmt"
	"strings"

	"ble-trails.klederson.com/internal/strip"
	"github.com/charmbracelet/lipgloss"
)

// RenderGrid renders the strip as a rows x cols block grid in true
// color. Pixel 0 is top-left; each row holds cols consecutive pixels.
// The caller guarantees rows*cols == len(frame).
func RenderGrid(frame strip.Frame, rows, cols int) string {
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			px := frame[row*cols+col]
			color := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", px[0], px[1], px[2]))
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render("█"))
			if col < cols-1 {
				sb.WriteString("  ")
			}
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderGridPanel wraps the grid with a styled border and title.
func RenderGridPanel(width, height int, grid string) string {
	content := StylePanelTitle.Render("LED STRIP") + "\n" + grid
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
