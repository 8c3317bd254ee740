package app

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingUpdater struct {
	mu    sync.Mutex
	calls []struct {
		id   string
		rssi int
	}
}

func (r *recordingUpdater) Update(id string, rssi int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, struct {
		id   string
		rssi int
	}{id, rssi})
}

func TestStatsForwardsToWrapped(t *testing.T) {
	next := &recordingUpdater{}
	stats := NewStats(next, 10, time.Second)

	stats.Update("beacon_1", -50)
	stats.Update("beacon_2", -72)

	assert.Len(t, next.calls, 2)
	assert.Equal(t, "beacon_1", next.calls[0].id)
	assert.Equal(t, -50, next.calls[0].rssi)
	assert.Equal(t, "beacon_2", next.calls[1].id)
	assert.Equal(t, -72, next.calls[1].rssi)
}

func TestStatsCounts(t *testing.T) {
	stats := NewStats(&recordingUpdater{}, 10, time.Second)

	stats.Update("beacon_1", -50)
	stats.Update("beacon_1", -51)
	stats.Update("beacon_2", -60)

	assert.Equal(t, 3, stats.Total())
	assert.Equal(t, 2, stats.Messages("beacon_1"))
	assert.Equal(t, 1, stats.Messages("beacon_2"))
	assert.Equal(t, 0, stats.Messages("beacon_3"))
}

func TestStatsRate(t *testing.T) {
	stats := NewStats(&recordingUpdater{}, 10, time.Second)

	assert.Zero(t, stats.Rate())

	// 4 messages over two 1s buckets.
	stats.Update("beacon_1", -50)
	stats.Update("beacon_1", -50)
	stats.Update("beacon_1", -50)
	stats.Sample()
	stats.Update("beacon_1", -50)
	stats.Sample()

	assert.InDelta(t, 2.0, stats.Rate(), 1e-9)
}

func TestStatsRateWindowSlides(t *testing.T) {
	stats := NewStats(&recordingUpdater{}, 2, time.Second)

	stats.Update("beacon_1", -50)
	stats.Update("beacon_1", -50)
	stats.Sample()
	stats.Sample()
	assert.InDelta(t, 1.0, stats.Rate(), 1e-9)

	// A third empty bucket evicts the busy one.
	stats.Sample()
	assert.InDelta(t, 0.0, stats.Rate(), 1e-9)
}

func TestStatsSampleResetsBucket(t *testing.T) {
	stats := NewStats(&recordingUpdater{}, 10, time.Second)

	stats.Update("beacon_1", -50)
	stats.Sample()
	stats.Sample()

	// Second bucket is empty: 1 message over 2 seconds.
	assert.InDelta(t, 0.5, stats.Rate(), 1e-9)
}
