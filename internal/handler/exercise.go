package handler

import (
	"context"
	"net/http"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

// ExerciseHandler implements the exercise library, guided session and music endpoints
type ExerciseHandler struct {
	service *service.ExerciseService
	logger  *zap.Logger
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(service *service.ExerciseService, logger *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1Exercises lists exercises, optionally filtered by category and difficulty
func (h *ExerciseHandler) GetApiV1Exercises(c *gin.Context, params api.GetApiV1ExercisesParams) {
	exercises := h.service.ListExercises(c.Request.Context(), exercise.Filter{
		Category:   stringValue(params.Category),
		Difficulty: stringValue(params.Difficulty),
	})

	c.JSON(http.StatusOK, api.ExerciseListResponse{
		Exercises: exercises,
		Total:     len(exercises),
	})
}

// GetApiV1ExercisesId returns a single exercise
func (h *ExerciseHandler) GetApiV1ExercisesId(c *gin.Context, id int) {
	ex, err := h.service.GetExercise(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Exercise not found")
		return
	}

	c.JSON(http.StatusOK, ex)
}

// PostApiV1ExercisesIdSessions opens a guided session for an exercise
func (h *ExerciseHandler) PostApiV1ExercisesIdSessions(c *gin.Context, id int) {
	view, err := h.service.CreateSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(view))
}

// GetApiV1SessionsSessionId returns the current session snapshot
func (h *ExerciseHandler) GetApiV1SessionsSessionId(c *gin.Context, sessionId types.UUID) {
	h.sessionOp(c, sessionId, h.service.GetSession)
}

// DeleteApiV1SessionsSessionId ends a session and releases its driver
func (h *ExerciseHandler) DeleteApiV1SessionsSessionId(c *gin.Context, sessionId types.UUID) {
	if err := h.service.CloseSession(c.Request.Context(), uuidToString(sessionId)); err != nil {
		respondError(c, h.logger, err, "Session not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// PostApiV1SessionsSessionIdStart starts or resumes the countdown
func (h *ExerciseHandler) PostApiV1SessionsSessionIdStart(c *gin.Context, sessionId types.UUID) {
	h.sessionOp(c, sessionId, h.service.StartSession)
}

// PostApiV1SessionsSessionIdPause pauses the countdown
func (h *ExerciseHandler) PostApiV1SessionsSessionIdPause(c *gin.Context, sessionId types.UUID) {
	h.sessionOp(c, sessionId, h.service.PauseSession)
}

// PostApiV1SessionsSessionIdNext skips to the next step
func (h *ExerciseHandler) PostApiV1SessionsSessionIdNext(c *gin.Context, sessionId types.UUID) {
	h.sessionOp(c, sessionId, h.service.NextStep)
}

// PostApiV1SessionsSessionIdPrev goes back one step
func (h *ExerciseHandler) PostApiV1SessionsSessionIdPrev(c *gin.Context, sessionId types.UUID) {
	h.sessionOp(c, sessionId, h.service.PrevStep)
}

// PostApiV1SessionsSessionIdReset returns the session to its first step
func (h *ExerciseHandler) PostApiV1SessionsSessionIdReset(c *gin.Context, sessionId types.UUID) {
	h.sessionOp(c, sessionId, h.service.ResetSession)
}

// GetApiV1MusicTracks lists music tracks, optionally filtered by category
func (h *ExerciseHandler) GetApiV1MusicTracks(c *gin.Context, params api.GetApiV1MusicTracksParams) {
	tracks := h.service.ListTracks(c.Request.Context(), stringValue(params.Category))

	c.JSON(http.StatusOK, api.TrackListResponse{
		Tracks: tracks,
		Total:  len(tracks),
	})
}

func (h *ExerciseHandler) sessionOp(c *gin.Context, sessionId types.UUID, op func(context.Context, string) (service.SessionView, error)) {
	view, err := op(c.Request.Context(), uuidToString(sessionId))
	if err != nil {
		respondError(c, h.logger, err, "Session not found")
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(view))
}
