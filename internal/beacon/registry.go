package beacon

import (
	"sync"
	"time"
)

// Beacon is an immutable view of one tracked beacon as of a snapshot.
// Life runs from 1.0 (seen within the timeout window) down to 0.0
// (fully faded, about to be dropped).
type Beacon struct {
	RSSI int
	Life float64
}

type entry struct {
	rssi     int
	lastSeen time.Time
}

// Registry is a thread-safe store of beacon liveness. Beacons keep full
// life while updates arrive within the timeout window, then fade to
// zero over the fade-out window and are dropped lazily on the next
// Snapshot.
type Registry struct {
	mu      sync.Mutex
	timeout time.Duration
	fadeOut time.Duration
	beacons map[string]entry
}

// NewRegistry creates a registry with the given timeout and fade-out
// windows.
func NewRegistry(timeout, fadeOut time.Duration) *Registry {
	return &Registry{
		timeout: timeout,
		fadeOut: fadeOut,
		beacons: make(map[string]entry),
	}
}

// Update records a sighting of id with the given signal strength. Last
// write wins; the beacon's life is restored to full as of now.
func (r *Registry) Update(id string, rssi int) {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.beacons[id] = entry{rssi: rssi, lastSeen: now}
}

// Snapshot returns the current beacons with their life values. Beacons
// whose life has reached zero are removed as a side effect and excluded
// from the result. The returned map is an isolated copy; callers may
// keep it across later updates.
func (r *Registry) Snapshot() map[string]Beacon {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	active := make(map[string]Beacon, len(r.beacons))
	for id, e := range r.beacons {
		age := now.Sub(e.lastSeen)

		life := 1.0
		if age > r.timeout {
			life = 1.0 - float64(age-r.timeout)/float64(r.fadeOut)
			if life < 0 {
				life = 0
			}
		}

		if life <= 0 {
			delete(r.beacons, id)
			continue
		}
		active[id] = Beacon{RSSI: e.rssi, Life: life}
	}
	return active
}

// Count returns the number of tracked beacons, including any that have
// faded but not yet been swept by a Snapshot.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.beacons)
}
