package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExerciseConfig tunes the guided session registry
type ExerciseConfig struct {
	StepDuration time.Duration
	TickInterval time.Duration
	SessionTTL   time.Duration
	MaxSessions  int
}

// SessionView is a point-in-time snapshot of a live exercise session
type SessionView struct {
	ID         string
	ExerciseID int
	Title      string
	CreatedAt  time.Time
	State      exercise.Session
}

type liveSession struct {
	id        string
	exercise  model.Exercise
	player    *exercise.Player
	createdAt time.Time
}

func (ls *liveSession) view(state exercise.Session) SessionView {
	return SessionView{
		ID:         ls.id,
		ExerciseID: ls.exercise.ID,
		Title:      ls.exercise.Title,
		CreatedAt:  ls.createdAt,
		State:      state,
	}
}

// ExerciseService serves the exercise catalog and hosts live step sessions.
// Each session is owned by a Player, which serializes its mutations.
type ExerciseService struct {
	catalog *exercise.Catalog
	cfg     ExerciseConfig
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

// NewExerciseService creates a new ExerciseService
func NewExerciseService(catalog *exercise.Catalog, cfg ExerciseConfig, logger *zap.Logger) *ExerciseService {
	return &ExerciseService{
		catalog:  catalog,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*liveSession),
	}
}

// ListExercises returns catalog exercises matching the filter
func (s *ExerciseService) ListExercises(ctx context.Context, filter exercise.Filter) []model.Exercise {
	return s.catalog.Exercises(filter)
}

// GetExercise returns one catalog exercise
func (s *ExerciseService) GetExercise(ctx context.Context, id int) (model.Exercise, error) {
	return s.catalog.Exercise(id)
}

// ListTracks returns music tracks in a category
func (s *ExerciseService) ListTracks(ctx context.Context, category string) []model.Track {
	return s.catalog.Tracks(category)
}

// CreateSession starts tracking a new Idle session for an exercise
func (s *ExerciseService) CreateSession(ctx context.Context, exerciseID int) (SessionView, error) {
	ex, err := s.catalog.Exercise(exerciseID)
	if err != nil {
		return SessionView{}, err
	}

	session, err := exercise.NewSession(ex.Steps, s.cfg.StepDuration)
	if err != nil {
		return SessionView{}, fmt.Errorf("failed to create session: %w", err)
	}

	ls := &liveSession{
		id:        uuid.New().String(),
		exercise:  ex,
		createdAt: s.now(),
	}
	ls.player = exercise.NewPlayer(session,
		exercise.WithTickInterval(s.cfg.TickInterval),
		exercise.WithClock(func() time.Time { return s.now() }),
		exercise.WithOnComplete(func(done exercise.Session) {
			s.logger.Info("exercise session completed",
				zap.String("session_id", ls.id),
				zap.Int("exercise_id", ex.ID),
				zap.Duration("elapsed", done.Elapsed()),
			)
		}),
	)

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		ls.player.Close()
		return SessionView{}, invalid("session", "limit of %d active sessions reached", s.cfg.MaxSessions)
	}
	s.sessions[ls.id] = ls
	s.mu.Unlock()

	s.logger.Info("exercise session created",
		zap.String("session_id", ls.id),
		zap.Int("exercise_id", ex.ID),
		zap.Int("step_count", session.StepCount()),
	)

	return ls.view(session), nil
}

// GetSession returns the current snapshot of a session
func (s *ExerciseService) GetSession(ctx context.Context, id string) (SessionView, error) {
	return s.control(id, (*exercise.Player).Snapshot)
}

// StartSession begins or resumes a session
func (s *ExerciseService) StartSession(ctx context.Context, id string) (SessionView, error) {
	return s.control(id, (*exercise.Player).Start)
}

// PauseSession pauses a running session
func (s *ExerciseService) PauseSession(ctx context.Context, id string) (SessionView, error) {
	return s.control(id, (*exercise.Player).Pause)
}

// NextStep moves a session to its following step
func (s *ExerciseService) NextStep(ctx context.Context, id string) (SessionView, error) {
	return s.control(id, (*exercise.Player).Next)
}

// PrevStep moves a session to its preceding step
func (s *ExerciseService) PrevStep(ctx context.Context, id string) (SessionView, error) {
	return s.control(id, (*exercise.Player).Prev)
}

// ResetSession returns a session to Idle on its first step
func (s *ExerciseService) ResetSession(ctx context.Context, id string) (SessionView, error) {
	return s.control(id, (*exercise.Player).Reset)
}

// CloseSession stops and forgets a session
func (s *ExerciseService) CloseSession(ctx context.Context, id string) error {
	s.mu.Lock()
	ls, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	ls.player.Close()
	s.logger.Info("exercise session closed", zap.String("session_id", id))
	return nil
}

// ActiveSessions returns the number of tracked sessions
func (s *ExerciseService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Reap closes sessions that have not been running or touched for the
// configured TTL. It returns the number of sessions removed.
func (s *ExerciseService) Reap() int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}
	now := s.now()

	var expired []*liveSession
	s.mu.Lock()
	for id, ls := range s.sessions {
		since, idle := ls.player.IdleSince()
		if idle && now.Sub(since) >= s.cfg.SessionTTL {
			expired = append(expired, ls)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, ls := range expired {
		ls.player.Close()
		s.logger.Info("exercise session expired",
			zap.String("session_id", ls.id),
			zap.Int("exercise_id", ls.exercise.ID),
		)
	}
	return len(expired)
}

// RunReaper reaps idle sessions until ctx is cancelled, then closes every
// remaining session.
func (s *ExerciseService) RunReaper(ctx context.Context) error {
	defer s.CloseAll()

	interval := reapInterval(s.cfg.SessionTTL)
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			if n := s.Reap(); n > 0 {
				s.logger.Debug("reaped idle sessions", zap.Int("count", n))
			}
		}
	}
}

// CloseAll stops every session
func (s *ExerciseService) CloseAll() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*liveSession)
	s.mu.Unlock()

	for _, ls := range all {
		ls.player.Close()
	}
}

func (s *ExerciseService) control(id string, op func(*exercise.Player) exercise.Session) (SessionView, error) {
	s.mu.RLock()
	ls, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return SessionView{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return ls.view(op(ls.player)), nil
}

func reapInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	interval := ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
