package strip

// Pixel is one RGB triple with channels in [0, 255].
// The array form marshals to JSON as [r, g, b], which is exactly
// what the WLED segment API expects.
type Pixel [3]int

// Frame is the full pixel buffer for one render tick.
type Frame []Pixel

// NewFrame allocates an all-black frame of n pixels.
func NewFrame(n int) Frame {
	return make(Frame, n)
}

// Clone returns an independent copy of the frame.
func (f Frame) Clone() Frame {
	cp := make(Frame, len(f))
	copy(cp, f)
	return cp
}
