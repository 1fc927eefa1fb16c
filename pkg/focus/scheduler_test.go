package focus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualSchedulerFiresInDeadlineOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []string
	s.Schedule(30*time.Millisecond, func() { got = append(got, "late") })
	s.Schedule(10*time.Millisecond, func() { got = append(got, "early") })
	s.Schedule(10*time.Millisecond, func() { got = append(got, "early-second") })

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-second"}, got)
	assert.Equal(t, 1, s.Pending())

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-second", "late"}, got)
	assert.Equal(t, 30*time.Millisecond, s.Now())
}

func TestManualSchedulerStop(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	timer := s.Schedule(time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	s.Advance(time.Second)
	assert.False(t, fired)
}

func TestManualSchedulerCallbackCanSchedule(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	s.Schedule(time.Millisecond, func() {
		got = append(got, 1)
		s.Schedule(0, func() { got = append(got, 2) })
	})
	s.Advance(time.Millisecond)
	assert.Equal(t, []int{1, 2}, got)
}

func TestAfterFuncSchedulerPost(t *testing.T) {
	var mu sync.Mutex
	posted := make(chan func(), 1)
	s := AfterFuncScheduler{Post: func(fn func()) { posted <- fn }}

	ran := false
	s.Schedule(time.Millisecond, func() {
		mu.Lock()
		ran = true
		mu.Unlock()
	})

	select {
	case fn := <-posted:
		mu.Lock()
		require.False(t, ran, "callback must wait for the poster")
		mu.Unlock()
		fn()
	case <-time.After(time.Second):
		t.Fatal("timer never posted")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.True(t, ran)
}
