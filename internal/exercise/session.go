package exercise

import (
	"errors"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
)

// DefaultStepDuration is the time allotted to each step unless configured otherwise
const DefaultStepDuration = 30 * time.Second

// ErrNoSteps is returned when a session is created without steps
var ErrNoSteps = errors.New("exercise has no steps")

// Session is the state of a timed step sequencer. It is a value: every
// transition returns the next state and leaves the receiver untouched.
//
// Invariants: 0 <= index < len(steps), 0 <= remaining <= stepDuration,
// elapsed never decreases except on Reset.
type Session struct {
	steps        []string
	stepDuration time.Duration
	index        int
	remaining    time.Duration
	elapsed      time.Duration
	status       model.SessionStatus
}

// NewSession creates an Idle session positioned on the first step.
// A non-positive stepDuration falls back to DefaultStepDuration.
func NewSession(steps []string, stepDuration time.Duration) (Session, error) {
	if len(steps) == 0 {
		return Session{}, ErrNoSteps
	}
	if stepDuration <= 0 {
		stepDuration = DefaultStepDuration
	}

	owned := make([]string, len(steps))
	copy(owned, steps)

	return Session{
		steps:        owned,
		stepDuration: stepDuration,
		remaining:    stepDuration,
		status:       model.SessionStatusIdle,
	}, nil
}

// Start begins or resumes the timer. No-op when Running or Completed.
func (s Session) Start() Session {
	if s.status == model.SessionStatusIdle || s.status == model.SessionStatusPaused {
		s.status = model.SessionStatusRunning
	}
	return s
}

// Pause stops the timer. No-op unless Running.
func (s Session) Pause() Session {
	if s.status == model.SessionStatusRunning {
		s.status = model.SessionStatusPaused
	}
	return s
}

// Tick advances the timer by dt. Only a Running session with a positive dt
// changes. When the current step's time runs out the session moves to the
// next step with a full timer, or completes if it was on the last step.
// Time past the end of a step is not carried into the next one.
func (s Session) Tick(dt time.Duration) Session {
	if s.status != model.SessionStatusRunning || dt <= 0 {
		return s
	}

	s.elapsed += dt
	if dt < s.remaining {
		s.remaining -= dt
		return s
	}

	if s.index < len(s.steps)-1 {
		s.index++
		s.remaining = s.stepDuration
		return s
	}

	s.remaining = 0
	s.status = model.SessionStatusCompleted
	return s
}

// Next moves to the following step with a full timer.
// No-op on the last step or once Completed.
func (s Session) Next() Session {
	if s.status == model.SessionStatusCompleted || s.index >= len(s.steps)-1 {
		return s
	}
	s.index++
	s.remaining = s.stepDuration
	return s
}

// Prev moves to the preceding step with a full timer.
// No-op on the first step or once Completed.
func (s Session) Prev() Session {
	if s.status == model.SessionStatusCompleted || s.index == 0 {
		return s
	}
	s.index--
	s.remaining = s.stepDuration
	return s
}

// Reset returns to Idle on the first step with a full timer and no elapsed time
func (s Session) Reset() Session {
	s.index = 0
	s.remaining = s.stepDuration
	s.elapsed = 0
	s.status = model.SessionStatusIdle
	return s
}

func (s Session) Status() model.SessionStatus { return s.status }
func (s Session) StepIndex() int              { return s.index }
func (s Session) StepCount() int              { return len(s.steps) }
func (s Session) StepDuration() time.Duration { return s.stepDuration }
func (s Session) Remaining() time.Duration    { return s.remaining }
func (s Session) Elapsed() time.Duration      { return s.elapsed }

// StepText returns the instruction for the current step
func (s Session) StepText() string {
	if len(s.steps) == 0 {
		return ""
	}
	return s.steps[s.index]
}

// Steps returns a copy of all step instructions
func (s Session) Steps() []string {
	out := make([]string, len(s.steps))
	copy(out, s.steps)
	return out
}

// Completed reports whether the final step's timer ran out while running
func (s Session) Completed() bool {
	return s.status == model.SessionStatusCompleted
}

// Progress is the fraction of steps reached, counting the current one
func (s Session) Progress() float64 {
	if len(s.steps) == 0 {
		return 0
	}
	return float64(s.index+1) / float64(len(s.steps))
}
