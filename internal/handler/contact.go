package handler

import (
	"errors"
	"net/http"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

// ContactHandler implements the contact form endpoint
type ContactHandler struct {
	service *service.ContactService
	logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger,
	}
}

// PostApiV1Contact validates a contact message and forwards it to support
func (h *ContactHandler) PostApiV1Contact(c *gin.Context) {
	var req api.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, types.ErrValidationEmail) {
			h.logger.Warn("invalid contact email", zap.Error(err))
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "invalid email: invalid email format",
				Details: stringPtr("email"),
			})
			return
		}
		badRequest(c, h.logger, err)
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), service.ContactRequest{
		Name:    req.Name,
		Email:   string(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusOK, api.ContactResponse{
		Ok:        true,
		Message:   service.ContactAcknowledgement,
		Reference: msg.Reference,
	})
}
