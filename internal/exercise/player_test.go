package exercise

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newPlayer(t *testing.T, step time.Duration, opts ...PlayerOption) *Player {
	t.Helper()
	s, err := NewSession(threeSteps, step)
	require.NoError(t, err)
	p := NewPlayer(s, opts...)
	t.Cleanup(p.Close)
	return p
}

func TestPlayer_ManualTicks(t *testing.T) {
	var completions atomic.Int32
	p := newPlayer(t, time.Second, WithOnComplete(func(Session) { completions.Add(1) }))

	p.Start()
	p.Tick(time.Second)
	p.Tick(time.Second)
	s := p.Tick(time.Second)

	assert.True(t, s.Completed())
	assert.Equal(t, 3*time.Second, s.Elapsed())
	assert.Equal(t, int32(1), completions.Load())

	// ticks after completion do not re-announce
	p.Tick(time.Second)
	assert.Equal(t, int32(1), completions.Load())

	// a completed run after reset is announced again
	p.Reset()
	p.Start()
	for i := 0; i < 3; i++ {
		p.Tick(time.Second)
	}
	assert.Equal(t, int32(2), completions.Load())
}

func TestPlayer_DriverAutoAdvances(t *testing.T) {
	var (
		completions atomic.Int32
		mu          sync.Mutex
		indexes     []int
	)
	p := newPlayer(t, 3*time.Millisecond,
		WithTickInterval(time.Millisecond),
		WithOnComplete(func(Session) { completions.Add(1) }),
		WithOnChange(func(s Session) {
			mu.Lock()
			indexes = append(indexes, s.StepIndex())
			mu.Unlock()
		}),
	)

	p.Start()

	require.Eventually(t, func() bool {
		return p.Snapshot().Completed()
	}, 2*time.Second, time.Millisecond)

	s := p.Snapshot()
	assert.Equal(t, 2, s.StepIndex())
	assert.Equal(t, time.Duration(0), s.Remaining())
	assert.Equal(t, 9*time.Millisecond, s.Elapsed())

	require.Eventually(t, func() bool {
		return completions.Load() == 1
	}, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, indexes, 9)
	for i := 1; i < len(indexes); i++ {
		assert.GreaterOrEqual(t, indexes[i], indexes[i-1])
	}
}

func TestPlayer_PauseStopsDriver(t *testing.T) {
	p := newPlayer(t, time.Hour, WithTickInterval(time.Millisecond))

	p.Start()
	require.Eventually(t, func() bool {
		return p.Snapshot().Elapsed() > 0
	}, time.Second, time.Millisecond)

	paused := p.Pause()
	require.Equal(t, model.SessionStatusPaused, paused.Status())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, paused.Elapsed(), p.Snapshot().Elapsed())

	p.Start()
	require.Eventually(t, func() bool {
		return p.Snapshot().Elapsed() > paused.Elapsed()
	}, time.Second, time.Millisecond)
}

func TestPlayer_ResetWhileRunningStopsDriver(t *testing.T) {
	p := newPlayer(t, time.Hour, WithTickInterval(time.Millisecond))

	p.Start()
	s := p.Reset()
	assert.Equal(t, model.SessionStatusIdle, s.Status())

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, time.Duration(0), p.Snapshot().Elapsed())
}

func TestPlayer_CloseIgnoresFurtherControl(t *testing.T) {
	p := newPlayer(t, time.Hour, WithTickInterval(time.Millisecond))
	p.Start()
	p.Close()

	frozen := p.Snapshot()
	p.Next()
	p.Reset()
	assert.Equal(t, frozen, p.Snapshot())

	// closing twice is harmless
	p.Close()
}

func TestPlayer_IdleSince(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	p := newPlayer(t, time.Second, WithClock(clock))

	since, idle := p.IdleSince()
	assert.True(t, idle)
	assert.Equal(t, now, since)

	p.Start()
	_, idle = p.IdleSince()
	assert.False(t, idle)

	now = now.Add(time.Minute)
	p.Pause()
	since, idle = p.IdleSince()
	assert.True(t, idle)
	assert.Equal(t, now, since)
}

func TestPlayer_DriverCompletionCountsAsActivity(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	p := newPlayer(t, 40*time.Millisecond, WithTickInterval(time.Millisecond), WithClock(clock))

	p.Start()
	mu.Lock()
	now = now.Add(time.Hour)
	mu.Unlock()

	require.Eventually(t, func() bool {
		return p.Snapshot().Completed()
	}, 5*time.Second, time.Millisecond)

	since, idle := p.IdleSince()
	assert.True(t, idle)
	assert.Equal(t, clock(), since)
}
