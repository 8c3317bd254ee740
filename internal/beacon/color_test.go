package beacon

import (
	"testing"

	"ble-trails.klederson.com/internal/strip"
	"github.com/stretchr/testify/assert"
)

func TestEstimateDistance(t *testing.T) {
	// At the measured power the beacon is by definition 1 meter away.
	assert.InDelta(t, 1.0, EstimateDistance(-59), 1e-9)

	// 20 dBm weaker at n=2.0 is one decade further: 10^(20/40) ~ 3.16m
	assert.InDelta(t, 3.1623, EstimateDistance(-79), 1e-3)

	// Stronger signal means closer
	assert.Less(t, EstimateDistance(-40), EstimateDistance(-80))
}

func TestGradientColorAnchors(t *testing.T) {
	r, g, b := gradientColor(0.1) // below near clamp
	assert.InDelta(t, 0.0, r, 1e-9)
	assert.InDelta(t, 1.0, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)

	r, g, b = gradientColor(5.25) // midpoint of [0.5, 10]
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 1.0, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)

	r, g, b = gradientColor(50) // beyond far clamp
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 0.0, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)
}

func TestHueOffsetStableAndBounded(t *testing.T) {
	a := hueOffset("iBeacon:2686f39c-bada-4658-854a-a62e7e5e8b8d-1-0")
	b := hueOffset("iBeacon:2686f39c-bada-4658-854a-a62e7e5e8b8d-1-0")
	assert.Equal(t, a, b)

	for _, id := range []string{"", "a", "beacon_1", "beacon_2", "some-long-identity"} {
		off := hueOffset(id)
		assert.GreaterOrEqual(t, off, 0.0)
		assert.Less(t, off, hueBand+1e-9)
	}
}

func TestColorForIsDeterministic(t *testing.T) {
	first := ColorFor("beacon_1", -50, 0.8)
	second := ColorFor("beacon_1", -50, 0.8)
	assert.Equal(t, first, second)
}

func TestColorForDistinguishesIdentities(t *testing.T) {
	a := ColorFor("beacon_a", -50, 1.0)
	b := ColorFor("beacon_b", -50, 1.0)
	assert.NotEqual(t, a, b, "different identities should get different hues")
}

func TestColorForBrightnessFollowsLife(t *testing.T) {
	sum := func(p strip.Pixel) int { return p[0] + p[1] + p[2] }

	full := ColorFor("beacon_1", -50, 1.0)
	half := ColorFor("beacon_1", -50, 0.5)
	dim := ColorFor("beacon_1", -50, 0.25)

	assert.GreaterOrEqual(t, sum(full), sum(half))
	assert.GreaterOrEqual(t, sum(half), sum(dim))
}

func TestColorForZeroLifeIsBlack(t *testing.T) {
	assert.Equal(t, strip.Pixel{0, 0, 0}, ColorFor("beacon_1", -50, 0.0))
}

func TestColorForChannelsInRange(t *testing.T) {
	for _, rssi := range []int{-30, -59, -70, -90, -120, 0, 10} {
		px := ColorFor("beacon_1", rssi, 1.0)
		for c := 0; c < 3; c++ {
			assert.GreaterOrEqual(t, px[c], 0)
			assert.LessOrEqual(t, px[c], 255)
		}
	}
}
