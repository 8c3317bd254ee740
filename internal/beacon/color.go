package beacon

import (
	"crypto/sha256"
	"math"

	"ble-trails.klederson.com/internal/strip"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// RSSI to distance estimation
	MeasuredPower = -59.0 // RSSI at 1 meter (dBm)
	PathLossExp   = 2.0   // Path loss exponent (N)

	// Distance to color gradient
	NearDistance = 0.5  // Meters at which a beacon reads as "near"
	FarDistance  = 10.0 // Meters at which a beacon reads as "far"

	// Fraction of the hue circle available for per-beacon offsets
	hueBand = 0.08
)

// EstimateDistance estimates distance in meters from RSSI using the
// log-distance path loss model: d = 10^((measuredPower - rssi) / (10 * n)).
func EstimateDistance(rssi int) float64 {
	return math.Pow(10, (MeasuredPower-float64(rssi))/(10*PathLossExp))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// gradientColor maps a distance to the base color ramp, returning
// channels in [0, 1]. Distance is clamped to [NearDistance, FarDistance];
// the ramp runs green at near through yellow at the midpoint to red at
// far. Red rises over the first half, then green drains over the second.
func gradientColor(distance float64) (r, g, b float64) {
	d := math.Max(NearDistance, math.Min(FarDistance, distance))
	t := (d - NearDistance) / (FarDistance - NearDistance)

	if t < 0.5 {
		return lerp(0, 1, t/0.5), 1.0, 0.0
	}
	return 1.0, lerp(1, 0, (t-0.5)/0.5), 0.0
}

// hueOffset derives a stable per-beacon hue shift from the identity.
// The SHA-256 prefix spreads arbitrary identities near-uniformly over
// [0, hueBand) of the hue circle, so the same beacon always renders the
// same tint and distinct beacons almost never share one.
func hueOffset(id string) float64 {
	h := sha256.Sum256([]byte(id))
	v := uint32(h[0])<<16 | uint32(h[1])<<8 | uint32(h[2])
	return float64(v) / float64(0xFFFFFF) * hueBand
}

// ColorFor converts a beacon sighting to its display color. Distance
// drives the base gradient, the identity hash shifts the hue, and life
// scales the brightness. Channels truncate toward zero when converted
// to [0, 255].
func ColorFor(id string, rssi int, life float64) strip.Pixel {
	r, g, b := gradientColor(EstimateDistance(rssi))

	h, s, v := colorful.Color{R: r, G: g, B: b}.Hsv()
	h = math.Mod(h+hueOffset(id)*360, 360)
	c := colorful.Hsv(h, s, v*life)

	return strip.Pixel{int(c.R * 255), int(c.G * 255), int(c.B * 255)}
}
