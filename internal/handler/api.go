package handler

import (
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"
)

var _ api.ServerInterface = (*APIHandler)(nil)

// APIHandler implements the generated ServerInterface by delegating to individual handlers
type APIHandler struct {
	health   *HealthHandler
	stress   *StressHandler
	chat     *ChatHandler
	exercise *ExerciseHandler
	contact  *ContactHandler
}

// NewAPIHandler combines the feature handlers into a single ServerInterface
func NewAPIHandler(health *HealthHandler, stress *StressHandler, chat *ChatHandler, exercise *ExerciseHandler, contact *ContactHandler) *APIHandler {
	return &APIHandler{
		health:   health,
		stress:   stress,
		chat:     chat,
		exercise: exercise,
		contact:  contact,
	}
}

func (h *APIHandler) GetHealth(c *gin.Context) {
	h.health.GetHealth(c)
}

// Stress and chat endpoints
func (h *APIHandler) PostApiV1StressAssess(c *gin.Context) {
	h.stress.PostApiV1StressAssess(c)
}

func (h *APIHandler) PostApiV1Chat(c *gin.Context) {
	h.chat.PostApiV1Chat(c)
}

// Exercise library endpoints
func (h *APIHandler) GetApiV1Exercises(c *gin.Context, params api.GetApiV1ExercisesParams) {
	h.exercise.GetApiV1Exercises(c, params)
}

func (h *APIHandler) GetApiV1ExercisesId(c *gin.Context, id int) {
	h.exercise.GetApiV1ExercisesId(c, id)
}

func (h *APIHandler) PostApiV1ExercisesIdSessions(c *gin.Context, id int) {
	h.exercise.PostApiV1ExercisesIdSessions(c, id)
}

// Guided session endpoints
func (h *APIHandler) GetApiV1SessionsSessionId(c *gin.Context, sessionId types.UUID) {
	h.exercise.GetApiV1SessionsSessionId(c, sessionId)
}

func (h *APIHandler) DeleteApiV1SessionsSessionId(c *gin.Context, sessionId types.UUID) {
	h.exercise.DeleteApiV1SessionsSessionId(c, sessionId)
}

func (h *APIHandler) PostApiV1SessionsSessionIdStart(c *gin.Context, sessionId types.UUID) {
	h.exercise.PostApiV1SessionsSessionIdStart(c, sessionId)
}

func (h *APIHandler) PostApiV1SessionsSessionIdPause(c *gin.Context, sessionId types.UUID) {
	h.exercise.PostApiV1SessionsSessionIdPause(c, sessionId)
}

func (h *APIHandler) PostApiV1SessionsSessionIdNext(c *gin.Context, sessionId types.UUID) {
	h.exercise.PostApiV1SessionsSessionIdNext(c, sessionId)
}

func (h *APIHandler) PostApiV1SessionsSessionIdPrev(c *gin.Context, sessionId types.UUID) {
	h.exercise.PostApiV1SessionsSessionIdPrev(c, sessionId)
}

func (h *APIHandler) PostApiV1SessionsSessionIdReset(c *gin.Context, sessionId types.UUID) {
	h.exercise.PostApiV1SessionsSessionIdReset(c, sessionId)
}

// Music endpoints
func (h *APIHandler) GetApiV1MusicTracks(c *gin.Context, params api.GetApiV1MusicTracksParams) {
	h.exercise.GetApiV1MusicTracks(c, params)
}

// Contact endpoints
func (h *APIHandler) PostApiV1Contact(c *gin.Context) {
	h.contact.PostApiV1Contact(c)
}
