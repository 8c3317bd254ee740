package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the grid panel and beacon list horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, gridPanel, beaconList, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, gridPanel, beaconList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
