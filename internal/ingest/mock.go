package ingest

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	mockInterval = 200 * time.Millisecond
	mockMinRSSI  = -90.0
	mockMaxRSSI  = -30.0
)

type mockBeacon struct {
	id        string
	baseRSSI  float64
	phase     float64
	amplitude float64
}

// MockGenerator synthesizes beacon sightings for demo mode, so the
// animation can be exercised without a broker or Bluetooth hardware.
// Each fake beacon drifts sinusoidally between near and far with a
// little noise on top.
type MockGenerator struct {
	updater Updater
	beacons []mockBeacon
	cancel  context.CancelFunc
}

// NewMockGenerator creates count fake beacons with RSSI baselines
// spread across the typical BLE range.
func NewMockGenerator(updater Updater, count int) *MockGenerator {
	beacons := make([]mockBeacon, count)
	for i := range beacons {
		spread := float64(i) / float64(count)
		beacons[i] = mockBeacon{
			id:        fmt.Sprintf("beacon_%d", i),
			baseRSSI:  mockMinRSSI + spread*(mockMaxRSSI-mockMinRSSI),
			phase:     rand.Float64() * 2 * math.Pi,
			amplitude: 3 + rand.Float64()*8, // 3-11 dBm fluctuation
		}
	}
	return &MockGenerator{updater: updater, beacons: beacons}
}

// Start begins emitting sightings in a goroutine.
func (g *MockGenerator) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	go g.loop(ctx)
}

func (g *MockGenerator) loop(ctx context.Context) {
	ticker := time.NewTicker(mockInterval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += mockInterval.Seconds()
			g.emit(t)
		}
	}
}

func (g *MockGenerator) emit(t float64) {
	for _, b := range g.beacons {
		rssi := b.baseRSSI + b.amplitude*math.Sin(t*0.5+b.phase) + (rand.Float64()-0.5)*4
		g.updater.Update(b.id, int(rssi))
	}
}

// Stop halts the generator.
func (g *MockGenerator) Stop() {
	if g.cancel != nil {
		g.cancel()
	}
}
