package handler

import (
	"errors"
	"net/http"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

// Helper functions for type conversions between API types and internal models

// stringPtr creates a pointer to a string
func stringPtr(s string) *string {
	return &s
}

// stringValue dereferences an optional query parameter
func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// uuidToString converts types.UUID to string
func uuidToString(u types.UUID) string {
	return uuid.UUID(u).String()
}

// stringToUUID converts a string to types.UUID, yielding the nil UUID when malformed
func stringToUUID(s string) types.UUID {
	u, err := uuid.Parse(s)
	if err != nil {
		return types.UUID(uuid.Nil)
	}
	return types.UUID(u)
}

// toSessionResponse converts a session snapshot to its wire form
func toSessionResponse(v service.SessionView) api.SessionResponse {
	s := v.State
	return api.SessionResponse{
		SessionId:           stringToUUID(v.ID),
		ExerciseId:          v.ExerciseID,
		Title:               v.Title,
		Status:              s.Status(),
		StepIndex:           s.StepIndex(),
		StepCount:           s.StepCount(),
		StepText:            s.StepText(),
		StepDurationSeconds: s.StepDuration().Seconds(),
		RemainingSeconds:    s.Remaining().Seconds(),
		ElapsedSeconds:      s.Elapsed().Seconds(),
		Progress:            s.Progress(),
		Completed:           s.Completed(),
		CreatedAt:           v.CreatedAt,
	}
}

// badRequest writes a VALIDATION_ERROR for a request body that failed to bind
func badRequest(c *gin.Context, logger *zap.Logger, err error) {
	logger.Warn("invalid request body", zap.Error(err))
	c.JSON(http.StatusBadRequest, api.ErrorResponse{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid request body",
		Details: stringPtr(err.Error()),
	})
}

// respondError maps service errors onto the error envelope
func respondError(c *gin.Context, logger *zap.Logger, err error, message string) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: verr.Error(),
			Details: stringPtr(verr.Field),
		})
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, exercise.ErrExerciseNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: message,
			Details: stringPtr(err.Error()),
		})
	case errors.Is(err, service.ErrNotification):
		logger.Error(message, zap.Error(err))
		c.JSON(http.StatusBadGateway, api.ErrorResponse{
			Code:    "NOTIFICATION_FAILED",
			Message: message,
		})
	default:
		logger.Error(message, zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: message,
			Details: stringPtr(err.Error()),
		})
	}
}
