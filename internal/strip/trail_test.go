package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddTrailSingleSegment(t *testing.T) {
	frame := NewFrame(10)
	AddTrail(frame, 5, Pixel{255, 0, 0}, 1, 0.75)

	assert.Equal(t, Pixel{255, 0, 0}, frame[5])
	for i, px := range frame {
		if i != 5 {
			assert.Equal(t, Pixel{}, px, "pixel %d should be untouched", i)
		}
	}
}

func TestAddTrailFadesBehindHead(t *testing.T) {
	frame := NewFrame(10)
	AddTrail(frame, 5, Pixel{100, 0, 0}, 3, 0.5)

	assert.Equal(t, 100, frame[5][0])
	assert.Equal(t, 50, frame[4][0])
	assert.Equal(t, 25, frame[3][0])
	assert.Equal(t, 0, frame[2][0])
}

func TestAddTrailWrapsAroundStart(t *testing.T) {
	frame := NewFrame(10)
	AddTrail(frame, 0, Pixel{100, 0, 0}, 3, 0.5)

	assert.Equal(t, 100, frame[0][0])
	assert.Equal(t, 50, frame[9][0])
	assert.Equal(t, 25, frame[8][0])
}

func TestAddTrailBlendsAdditively(t *testing.T) {
	frame := NewFrame(10)
	frame[5] = Pixel{100, 0, 100}
	AddTrail(frame, 5, Pixel{100, 100, 0}, 1, 1.0)

	assert.Equal(t, Pixel{200, 100, 100}, frame[5])
}

func TestAddTrailClampsAt255(t *testing.T) {
	frame := NewFrame(10)
	frame[5] = Pixel{200, 200, 200}
	AddTrail(frame, 5, Pixel{100, 100, 100}, 2, 1.0)

	assert.Equal(t, Pixel{255, 255, 255}, frame[5])
	assert.Equal(t, Pixel{100, 100, 100}, frame[4])
}

func TestAddTrailZeroFadeOnlyHead(t *testing.T) {
	frame := NewFrame(10)
	AddTrail(frame, 5, Pixel{100, 0, 0}, 3, 0.0)

	assert.Equal(t, 100, frame[5][0])
	assert.Equal(t, 0, frame[4][0])
	assert.Equal(t, 0, frame[3][0])
}

func TestAddTrailUnitFadeNoAttenuation(t *testing.T) {
	frame := NewFrame(10)
	AddTrail(frame, 5, Pixel{50, 0, 0}, 3, 1.0)

	assert.Equal(t, 50, frame[5][0])
	assert.Equal(t, 50, frame[4][0])
	assert.Equal(t, 50, frame[3][0])
}

func TestAddTrailTruncatesTowardZero(t *testing.T) {
	frame := NewFrame(10)
	AddTrail(frame, 5, Pixel{1, 0, 0}, 2, 0.5)

	assert.Equal(t, 1, frame[5][0])
	// 1 * 0.5 truncates to 0, never rounds up
	assert.Equal(t, 0, frame[4][0])
}

func TestAddTrailLongerThanStripAccumulates(t *testing.T) {
	frame := NewFrame(4)
	AddTrail(frame, 0, Pixel{100, 0, 0}, 6, 1.0)

	// Positions 0,-1,...,-5 wrap to 0,3,2,1,0,3: pixels 0 and 3 get
	// two contributions each.
	assert.Equal(t, 200, frame[0][0])
	assert.Equal(t, 100, frame[1][0])
	assert.Equal(t, 100, frame[2][0])
	assert.Equal(t, 200, frame[3][0])
}

func TestAddTrailOverlappingCalls(t *testing.T) {
	frame := NewFrame(10)
	AddTrail(frame, 5, Pixel{100, 0, 0}, 2, 0.5)
	AddTrail(frame, 4, Pixel{0, 100, 0}, 1, 0.5)

	assert.Equal(t, Pixel{50, 100, 0}, frame[4])
	assert.Equal(t, Pixel{100, 0, 0}, frame[5])
}

func TestAddTrailEmptyFrame(t *testing.T) {
	frame := NewFrame(0)
	assert.NotPanics(t, func() {
		AddTrail(frame, 0, Pixel{255, 255, 255}, 3, 0.5)
	})
}
