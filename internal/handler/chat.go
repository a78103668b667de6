package handler

import (
	"net/http"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler implements the supportive chat endpoint
type ChatHandler struct {
	service *service.ChatService
	logger  *zap.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// PostApiV1Chat answers a chat message
func (h *ChatHandler) PostApiV1Chat(c *gin.Context) {
	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate reply")
		return
	}

	suggestions := reply.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	c.JSON(http.StatusOK, api.ChatResponse{
		Reply:       reply.Reply,
		Suggestions: suggestions,
	})
}
