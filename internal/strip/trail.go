package strip

import "math"

// AddTrail paints a fading trail into frame, ending at position. The
// head pixel gets the full color; the pixel i steps behind it is
// attenuated by fade^i. Contributions blend additively with whatever is
// already in the frame, clamped at 255 per channel.
//
// Indices wrap, so trails longer than the strip fold back onto it and
// the same pixel may accumulate several contributions from one call.
// Attenuated channels truncate toward zero (1 * 0.5 -> 0), matching the
// fade behavior at boundary values.
func AddTrail(frame Frame, position int, color Pixel, trailLength int, fade float64) {
	if len(frame) == 0 {
		return
	}

	for i := 0; i < trailLength; i++ {
		idx := (position - i) % len(frame)
		if idx < 0 {
			idx += len(frame)
		}

		attenuation := math.Pow(fade, float64(i))
		for c := 0; c < 3; c++ {
			v := frame[idx][c] + int(float64(color[c])*attenuation)
			if v > 255 {
				v = 255
			}
			frame[idx][c] = v
		}
	}
}
