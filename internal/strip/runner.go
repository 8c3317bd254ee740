package strip

// Runner tracks the animation position of each beacon along the strip.
// Every call to Next advances that beacon by one pixel, wrapping at the
// strip length, so each beacon sweeps the strip independently.
//
// Runner is only ever touched from the render loop goroutine and needs
// no locking.
type Runner struct {
	length    int
	positions map[string]int
}

// NewRunner creates a runner for a strip of length pixels. length must
// be >= 1; callers validate this at startup.
func NewRunner(length int) *Runner {
	return &Runner{
		length:    length,
		positions: make(map[string]int),
	}
}

// Next returns the next position for id and stores it. An id never seen
// before starts at 0.
func (r *Runner) Next(id string) int {
	pos, ok := r.positions[id]
	if !ok {
		pos = -1
	}
	pos = (pos + 1) % r.length
	r.positions[id] = pos
	return pos
}

// Len returns the number of tracked beacons.
func (r *Runner) Len() int {
	return len(r.positions)
}
