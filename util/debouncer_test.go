package util

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	var calls int32
	var last int32
	done := make(chan struct{}, 1)

	for i := 1; i <= 5; i++ {
		i := int32(i)
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, i)
			done <- struct{}{}
		})
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, int32(5), atomic.LoadInt32(&last))
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls int32

	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Stop()
	d.Stop()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDebouncer_SeparateBurstsRunEach(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	ran := make(chan struct{}, 2)

	d.Trigger(func() { ran <- struct{}{} })
	<-ran
	d.Trigger(func() { ran <- struct{}{} })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("second burst never ran")
	}
}
