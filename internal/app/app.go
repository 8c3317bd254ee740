// Package app is the Bubble Tea front end for the LED strip simulator:
// it displays frames from the render loop as a truecolor grid next to a
// live beacon panel, without needing a WLED device.
package app

import (
	"sort"
	"time"

	"ble-trails.klederson.com/internal/beacon"
	"ble-trails.klederson.com/internal/strip"
	"ble-trails.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const statsTick = time.Second

// shared holds state shared between the Bubble Tea model copies and
// main. Because Bubble Tea uses value receivers, pointer fields ensure
// all copies see the same underlying data.
type shared struct {
	registry *beacon.Registry
	stats    *Stats
	stop     func()
}

// Model is the root Bubble Tea model for the simulator.
type Model struct {
	width  int
	height int

	running bool
	source  string
	rows    int
	cols    int

	shared *shared

	// Cached display state
	frame   strip.Frame
	beacons []ui.BeaconRow
}

// New creates a simulator model. source names the beacon feed shown in
// the menu bar ("mqtt", "ble", or "demo"). stop is invoked once when
// the user quits; it should shut down the render loop and the feed.
func New(registry *beacon.Registry, stats *Stats, source string, rows, cols int, stop func()) Model {
	return Model{
		running: true,
		source:  source,
		rows:    rows,
		cols:    cols,
		frame:   strip.NewFrame(rows * cols),
		shared: &shared{
			registry: registry,
			stats:    stats,
			stop:     stop,
		},
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		if m.running {
			m.frame = strip.Frame(msg)
		}
		return m, nil

	case TickMsg:
		m.shared.stats.Sample()
		m.beacons = m.snapshotRows()
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shared.stop()
		return m, tea.Quit

	case "s", "S":
		m.running = true

	case "p", "P":
		m.running = false
	}

	return m, nil
}

// snapshotRows builds the beacon panel rows, strongest signal first.
func (m Model) snapshotRows() []ui.BeaconRow {
	snap := m.shared.registry.Snapshot()

	rows := make([]ui.BeaconRow, 0, len(snap))
	for id, b := range snap {
		rows = append(rows, ui.BeaconRow{
			ID:       id,
			RSSI:     b.RSSI,
			Distance: beacon.EstimateDistance(b.RSSI),
			Life:     b.Life,
			Messages: m.shared.stats.Messages(id),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].RSSI > rows[j].RSSI
	})
	return rows
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing LED simulator..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	gridW := m.cols*3 + 4
	if gridW < 24 {
		gridW = 24
	}
	listW := m.width - gridW
	if listW < 20 {
		listW = 20
	}

	menuBar := ui.RenderMenuBar(m.width, "BLE-TRAILS", m.source, m.running)
	gridPanel := ui.RenderGridPanel(gridW, bodyH, ui.RenderGrid(m.frame, m.rows, m.cols))
	beaconList := ui.RenderBeaconList(m.beacons, listW, bodyH)
	statusBar := ui.RenderStatusBar(m.width, m.running, len(m.beacons),
		m.shared.stats.Total(), m.shared.stats.Rate(), avgBrightness(m.frame))

	return ui.ComposeLayout(menuBar, gridPanel, beaconList, statusBar)
}

func avgBrightness(frame strip.Frame) float64 {
	if len(frame) == 0 {
		return 0
	}
	total := 0
	for _, px := range frame {
		total += (px[0] + px[1] + px[2]) / 3
	}
	return float64(total) / float64(len(frame))
}

func tickCmd() tea.Cmd {
	return tea.Tick(statsTick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
