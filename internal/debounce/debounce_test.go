package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoalescesBurst(t *testing.T) {
	d := New(30 * time.Millisecond)

	var fired atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 10; i++ {
		n := int32(i)
		d.Trigger(func() {
			fired.Add(1)
			last.Store(n)
		})
	}

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(10), last.Load(), "only the final trigger should fire")

	// No second fire sneaks in afterwards.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestFlushDeliversPendingOnce(t *testing.T) {
	d := New(time.Hour)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })

	assert.True(t, d.Pending())
	d.Flush()
	assert.Equal(t, int32(1), fired.Load())
	assert.False(t, d.Pending())

	// Flushing again with nothing pending is a no-op.
	d.Flush()
	assert.Equal(t, int32(1), fired.Load())
}

func TestStopDiscards(t *testing.T) {
	d := New(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.False(t, d.Pending())
}

func TestRearmAfterFlush(t *testing.T) {
	d := New(10 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Flush()
	d.Trigger(func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 2 }, time.Second, 5*time.Millisecond)
}
