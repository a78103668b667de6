package handler

import (
	"net/http"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Service identity reported by the health check
const (
	ServiceName    = "calm-backend"
	ServiceVersion = "1.0.0"
)

// HealthHandler implements the health check endpoint
type HealthHandler struct {
	exercises *service.ExerciseService
	logger    *zap.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(exercises *service.ExerciseService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		exercises: exercises,
		logger:    logger,
	}
}

// GetHealth reports service liveness and the number of live sessions
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{
		Status:         "healthy",
		Service:        ServiceName,
		Version:        ServiceVersion,
		ActiveSessions: h.exercises.ActiveSessions(),
	})
}
