package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/chat"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"go.uber.org/zap"
)

// MaxChatMessageLength bounds a single chat utterance in characters
const MaxChatMessageLength = 2000

// ChatService answers supportive chat messages with the intent matcher
type ChatService struct {
	matcher *chat.Matcher
	logger  *zap.Logger
}

// NewChatService creates a new ChatService
func NewChatService(matcher *chat.Matcher, logger *zap.Logger) *ChatService {
	return &ChatService{
		matcher: matcher,
		logger:  logger,
	}
}

// Reply validates the message and returns the matched reply
func (s *ChatService) Reply(ctx context.Context, message string) (model.ChatReply, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return model.ChatReply{}, invalid("message", "is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxChatMessageLength {
		return model.ChatReply{}, invalid("message", "must be at most %d characters", MaxChatMessageLength)
	}

	reply := s.matcher.Respond(message)

	s.logger.Info("chat reply selected",
		zap.String("rule", reply.Rule),
		zap.Int("message_length", len(message)),
	)

	return reply, nil
}
