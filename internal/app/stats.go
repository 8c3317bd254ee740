package app

import (
	"sync"
	"time"

	"ble-trails.klederson.com/internal/ingest"
)

// rateRing is a circular buffer of per-sample message counts, used to
// compute a sliding-window ingest rate.
type rateRing struct {
	buf   []float64
	pos   int
	count int
}

func newRateRing(capacity int) *rateRing {
	return &rateRing{buf: make([]float64, capacity)}
}

func (r *rateRing) push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

func (r *rateRing) sum() float64 {
	total := 0.0
	for i := 0; i < r.count; i++ {
		total += r.buf[i]
	}
	return total
}

// Stats decorates an Updater with ingest statistics for the simulator
// display: total messages, per-beacon counts, and a sliding-window
// message rate. The registry update itself passes straight through.
type Stats struct {
	mu          sync.Mutex
	next        ingest.Updater
	sampleEvery time.Duration
	total       int
	sincePush   float64
	byBeacon    map[string]int
	window      *rateRing
}

// NewStats wraps next. The rate window covers windowSamples samples
// taken every sampleEvery.
func NewStats(next ingest.Updater, windowSamples int, sampleEvery time.Duration) *Stats {
	return &Stats{
		next:        next,
		sampleEvery: sampleEvery,
		byBeacon:    make(map[string]int),
		window:      newRateRing(windowSamples),
	}
}

// Update records the message and forwards it.
func (s *Stats) Update(id string, rssi int) {
	s.next.Update(id, rssi)

	s.mu.Lock()
	s.total++
	s.sincePush++
	s.byBeacon[id]++
	s.mu.Unlock()
}

// Sample closes the current rate bucket. Called once per display tick.
func (s *Stats) Sample() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window.push(s.sincePush)
	s.sincePush = 0
}

// Total returns the number of messages seen.
func (s *Stats) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Rate returns messages per second over the sampling window.
func (s *Stats) Rate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window.count == 0 {
		return 0
	}
	elapsed := float64(s.window.count) * s.sampleEvery.Seconds()
	return s.window.sum() / elapsed
}

// Messages returns the message count for one beacon.
func (s *Stats) Messages(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byBeacon[id]
}
