package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"go.uber.org/zap"
)

// LogNotifier records contact messages in the log instead of delivering them.
// Used when no mail provider is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new log-only notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyContact logs the submission
func (n *LogNotifier) NotifyContact(_ context.Context, msg model.ContactMessage) (Result, error) {
	n.logger.Info("contact form submission",
		zap.String("reference", msg.Reference),
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
		zap.Int("message_length", len(msg.Message)),
		zap.Time("received_at", msg.ReceivedAt),
	)

	return Result{
		MessageID: fmt.Sprintf("log-%s", msg.Reference),
		SentAt:    time.Now(),
	}, nil
}
