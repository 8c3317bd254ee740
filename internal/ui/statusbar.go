package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with ingest and frame
// statistics.
func RenderStatusBar(width int, running bool, beacons int, messages int, rate float64, avgBrightness float64) string {
	status := ""
	if running {
		status = StyleStatusRunning.Render("[RUNNING]")
	} else {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Beacons: %d  Msgs: %d  Rate: %.1f/s  Brightness: %.1f/255",
		beacons, messages, rate, avgBrightness)

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
