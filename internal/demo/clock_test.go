package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVirtualClockNow(t *testing.T) {
	clock := NewVirtualClock(testStart)
	assert.Equal(t, testStart, clock.Now())

	clock.Advance(90 * time.Second)
	assert.Equal(t, testStart.Add(90*time.Second), clock.Now())
}

func TestVirtualClockFiresInOrder(t *testing.T) {
	clock := NewVirtualClock(testStart)

	var fired []string
	clock.AfterFunc(2*time.Second, func() { fired = append(fired, "later") })
	clock.AfterFunc(time.Second, func() { fired = append(fired, "sooner") })

	clock.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)

	clock.Advance(2 * time.Second)
	assert.Equal(t, []string{"sooner", "later"}, fired)
}

func TestVirtualClockSameDeadlineKeepsScheduleOrder(t *testing.T) {
	clock := NewVirtualClock(testStart)

	var fired []int
	for i := 0; i < 5; i++ {
		i := i
		clock.AfterFunc(time.Second, func() { fired = append(fired, i) })
	}

	clock.Advance(time.Second)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, fired)
}

func TestVirtualClockCallbackMaySchedule(t *testing.T) {
	clock := NewVirtualClock(testStart)

	var fired []string
	clock.AfterFunc(time.Second, func() {
		fired = append(fired, "outer")
		clock.AfterFunc(500*time.Millisecond, func() { fired = append(fired, "inner") })
	})

	// The nested callback is due within the same advance window.
	clock.Advance(2 * time.Second)
	assert.Equal(t, []string{"outer", "inner"}, fired)
}

func TestVirtualClockUndueTimerSurvivesAdvance(t *testing.T) {
	clock := NewVirtualClock(testStart)

	fired := false
	clock.AfterFunc(10*time.Second, func() { fired = true })

	clock.Advance(9 * time.Second)
	assert.False(t, fired)

	clock.Advance(time.Second)
	assert.True(t, fired)
}
