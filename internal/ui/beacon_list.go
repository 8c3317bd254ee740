package ui

import (
	"fmt"
	"strings"
)

// BeaconRow is one line of the beacon panel.
type BeaconRow struct {
	ID       string
	RSSI     int
	Distance float64
	Life     float64
	Messages int
}

const lifeBarWidth = 10

// RenderBeaconList renders the side panel listing active beacons with
// their signal, estimated distance, and remaining life.
func RenderBeaconList(rows []BeaconRow, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 3 {
		innerH = 3
	}

	lines := make([]string, 0, innerH)
	lines = append(lines,
		StylePanelTitle.Render(fmt.Sprintf("BEACONS [%d]", len(rows))),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	)

	if len(rows) == 0 {
		lines = append(lines, "", StyleHelp.Render(" No beacons..."), StyleHelp.Render(" Waiting for updates"))
	}

	for _, r := range rows {
		if len(lines)+3 > innerH {
			break
		}

		id := r.ID
		if len(id) > innerW-2 {
			id = id[:innerW-2]
		}

		lines = append(lines,
			" "+StyleBeaconID.Render(id),
			fmt.Sprintf("   %s  %s  %s",
				StyleBeaconRSSI.Render(fmt.Sprintf("%ddBm", r.RSSI)),
				StyleBeaconDist.Render(fmt.Sprintf("~%.1fm", r.Distance)),
				StyleHelp.Render(fmt.Sprintf("%d msgs", r.Messages))),
			"   "+renderLifeBar(r.Life),
		)
	}

	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func renderLifeBar(life float64) string {
	filled := int(life * lifeBarWidth)
	if filled > lifeBarWidth {
		filled = lifeBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", lifeBarWidth-filled)
	return StyleLifeBar.Render(fmt.Sprintf("[%s] %3.0f%%", bar, life*100))
}
