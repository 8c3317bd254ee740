package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerFirstCallYieldsZero(t *testing.T) {
	r := NewRunner(60)
	assert.Equal(t, 0, r.Next("beacon_1"))
}

func TestRunnerSequenceIsCyclic(t *testing.T) {
	r := NewRunner(5)

	var got []int
	for i := 0; i < 12; i++ {
		got = append(got, r.Next("beacon_1"))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4, 0, 1}, got)
}

func TestRunnerBeaconsAreIndependent(t *testing.T) {
	r := NewRunner(10)

	for i := 0; i < 6; i++ {
		r.Next("beacon_a")
	}

	// beacon_b starts fresh regardless of beacon_a's progress
	assert.Equal(t, 0, r.Next("beacon_b"))
	assert.Equal(t, 6, r.Next("beacon_a"))
	assert.Equal(t, 1, r.Next("beacon_b"))
}

func TestRunnerSingleLEDAlwaysZero(t *testing.T) {
	r := NewRunner(1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, r.Next("beacon_1"))
	}
}

func TestRunnerLen(t *testing.T) {
	r := NewRunner(10)
	assert.Equal(t, 0, r.Len())
	r.Next("a")
	r.Next("b")
	r.Next("a")
	assert.Equal(t, 2, r.Len())
}
