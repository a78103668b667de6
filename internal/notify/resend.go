package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendNotifier emails contact messages through the Resend API
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     []string
	logger *zap.Logger
}

// NewResendNotifier creates a new Resend backed notifier
func NewResendNotifier(apiKey, from string, to []string, logger *zap.Logger) (*ResendNotifier, error) {
	if apiKey == "" || from == "" || len(to) == 0 {
		return nil, fmt.Errorf("apiKey, from, and to are required")
	}

	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
		logger: logger,
	}, nil
}

// NotifyContact sends the message to the support inbox with the sender as reply-to
func (n *ResendNotifier) NotifyContact(ctx context.Context, msg model.ContactMessage) (Result, error) {
	body, err := RenderContactHTML(msg)
	if err != nil {
		return Result{}, err
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		Subject: ContactSubject(msg),
		Html:    body,
		ReplyTo: msg.Email,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		n.logger.Error("failed to send contact notification",
			zap.String("reference", msg.Reference),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("resend send failed: %w", err)
	}

	n.logger.Info("contact notification sent",
		zap.String("reference", msg.Reference),
		zap.String("message_id", sent.Id),
	)

	return Result{MessageID: sent.Id, SentAt: time.Now()}, nil
}
