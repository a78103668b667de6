package handler

import (
	"net/http"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StressHandler implements the stress assessment endpoint
type StressHandler struct {
	service *service.AssessmentService
	logger  *zap.Logger
}

// NewStressHandler creates a new StressHandler
func NewStressHandler(service *service.AssessmentService, logger *zap.Logger) *StressHandler {
	return &StressHandler{
		service: service,
		logger:  logger,
	}
}

// PostApiV1StressAssess scores the submitted measurements
func (h *StressHandler) PostApiV1StressAssess(c *gin.Context) {
	var req api.AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	result, err := h.service.Assess(c.Request.Context(), service.AssessmentRequest{
		SleepHours:      req.SleepHours,
		BloodPressure:   req.BloodPressure,
		RespirationRate: req.RespirationRate,
		MaxHeartRate:    req.MaxHeartRate,
		CaffeineIntake:  req.CaffeineIntake,
		MoodRating:      req.MoodRating,
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to assess stress level")
		return
	}

	c.JSON(http.StatusOK, api.AssessResponse{
		StressLevelScore: result.Score,
		Category:         string(result.Category),
		OrbColor:         string(result.Color),
		OrbIntensity:     result.Intensity,
		Recommendations:  result.Recommendations,
	})
}
