package exercise

import (
	"sync"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
)

// Player serializes all mutation of one Session and, when given a positive
// tick interval, drives it with a ticker while it is Running.
type Player struct {
	mu         sync.Mutex
	session    Session
	interval   time.Duration
	stop       chan struct{}
	wg         sync.WaitGroup
	lastActive time.Time
	closed     bool
	notified   bool
	onChange   func(Session)
	onComplete func(Session)
	now        func() time.Time
}

// PlayerOption configures a Player
type PlayerOption func(*Player)

// WithTickInterval enables the ticker driver. Each tick advances the
// session by the interval.
func WithTickInterval(interval time.Duration) PlayerOption {
	return func(p *Player) {
		p.interval = interval
	}
}

// WithOnComplete registers a callback invoked once when the session completes.
// It runs outside the player lock.
func WithOnComplete(fn func(Session)) PlayerOption {
	return func(p *Player) {
		p.onComplete = fn
	}
}

// WithOnChange registers a callback invoked after every state change made by
// the ticker driver. It runs outside the player lock.
func WithOnChange(fn func(Session)) PlayerOption {
	return func(p *Player) {
		p.onChange = fn
	}
}

// WithClock overrides the clock used for activity tracking
func WithClock(now func() time.Time) PlayerOption {
	return func(p *Player) {
		p.now = now
	}
}

// NewPlayer wraps a session. Without WithTickInterval the caller drives
// time through Tick.
func NewPlayer(session Session, opts ...PlayerOption) *Player {
	p := &Player{
		session: session,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.lastActive = p.now()
	return p
}

// Snapshot returns the current state
func (p *Player) Snapshot() Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session
}

// Start begins or resumes the session and starts the ticker driver
func (p *Player) Start() Session {
	return p.apply(func(s Session) Session { return s.Start() })
}

// Pause stops the timer and the ticker driver
func (p *Player) Pause() Session {
	return p.apply(func(s Session) Session { return s.Pause() })
}

// Next moves to the following step
func (p *Player) Next() Session {
	return p.apply(func(s Session) Session { return s.Next() })
}

// Prev moves to the preceding step
func (p *Player) Prev() Session {
	return p.apply(func(s Session) Session { return s.Prev() })
}

// Reset returns the session to Idle
func (p *Player) Reset() Session {
	return p.apply(func(s Session) Session { return s.Reset() })
}

// Tick advances the session by dt as if delivered by a driver
func (p *Player) Tick(dt time.Duration) Session {
	return p.apply(func(s Session) Session { return s.Tick(dt) })
}

// IdleSince reports when the player was last touched. Running players are
// always considered active. A driver completion counts as a touch.
func (p *Player) IdleSince() (time.Time, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session.Status() == model.SessionStatusRunning {
		return time.Time{}, false
	}
	return p.lastActive, true
}

// Close stops the ticker driver and waits for it to exit.
// Further control calls are no-ops.
func (p *Player) Close() {
	p.mu.Lock()
	p.closed = true
	p.stopDriverLocked()
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Player) apply(transition func(Session) Session) Session {
	p.mu.Lock()
	if p.closed {
		s := p.session
		p.mu.Unlock()
		return s
	}

	p.session = transition(p.session)
	p.lastActive = p.now()
	p.syncDriverLocked()
	s, completed := p.session, p.completedLocked()
	p.mu.Unlock()

	if completed && p.onComplete != nil {
		p.onComplete(s)
	}
	return s
}

// completedLocked reports a completion that has not been announced yet
func (p *Player) completedLocked() bool {
	if !p.session.Completed() {
		p.notified = false
		return false
	}
	if p.notified {
		return false
	}
	p.notified = true
	return true
}

func (p *Player) syncDriverLocked() {
	if p.session.Status() == model.SessionStatusRunning {
		if p.interval > 0 && p.stop == nil {
			p.startDriverLocked()
		}
		return
	}
	p.stopDriverLocked()
}

func (p *Player) startDriverLocked() {
	stop := make(chan struct{})
	p.stop = stop
	p.wg.Add(1)

	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !p.driverTick(stop) {
					return
				}
			}
		}
	}()
}

func (p *Player) stopDriverLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

// driverTick applies one tick on behalf of the driver owning stop.
// It returns false once that driver should exit.
func (p *Player) driverTick(stop chan struct{}) bool {
	p.mu.Lock()
	if p.closed || p.stop != stop {
		p.mu.Unlock()
		return false
	}

	p.session = p.session.Tick(p.interval)
	running := p.session.Status() == model.SessionStatusRunning
	if !running {
		p.stop = nil
		p.lastActive = p.now()
	}
	s, completed := p.session, p.completedLocked()
	p.mu.Unlock()

	if p.onChange != nil {
		p.onChange(s)
	}
	if completed && p.onComplete != nil {
		p.onComplete(s)
	}
	return running
}
