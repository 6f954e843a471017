package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()

	t1 := c.Now()
	c.Sleep(5 * time.Millisecond)
	t2 := c.Now()

	assert.GreaterOrEqual(t, t2.Sub(t1), 5*time.Millisecond)
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockClock(start)

	assert.Equal(t, start, m.Now())

	m.Advance(time.Second)
	assert.Equal(t, start.Add(time.Second), m.Now())

	m.Sleep(250 * time.Millisecond)
	assert.Equal(t, start.Add(1250*time.Millisecond), m.Now())
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, m.Sleeps())

	m.SetStep(10 * time.Millisecond)
	a := m.Now()
	b := m.Now()
	assert.Equal(t, 10*time.Millisecond, b.Sub(a))
}

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		tps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{10, 100 * time.Millisecond},
		{1, time.Second},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FrameDuration(tt.tps), "tps=%d", tt.tps)
	}
}
