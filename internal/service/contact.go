package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/notify"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

// ContactAcknowledgement is returned to the sender on success
const ContactAcknowledgement = "Thank you for your message. We'll get back to you soon!"

const referenceLength = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrNotification marks a contact message that could not be delivered
var ErrNotification = errors.New("notification failed")

// ContactRequest holds the submitted contact form fields
type ContactRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService validates contact form submissions and forwards them
type ContactService struct {
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewContactService creates a new ContactService
func NewContactService(notifier notify.Notifier, logger *zap.Logger) *ContactService {
	return &ContactService{
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates the form, assigns a reference and notifies support
func (s *ContactService) Submit(ctx context.Context, req ContactRequest) (model.ContactMessage, error) {
	msg := model.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if msg.Name == "" {
		return msg, invalid("name", "is required")
	}
	if msg.Email == "" {
		return msg, invalid("email", "is required")
	}
	if msg.Subject == "" {
		return msg, invalid("subject", "is required")
	}
	if msg.Message == "" {
		return msg, invalid("message", "is required")
	}
	if !emailPattern.MatchString(msg.Email) {
		return msg, invalid("email", "invalid email format")
	}

	id, err := gonanoid.New(referenceLength)
	if err != nil {
		return msg, fmt.Errorf("failed to generate reference: %w", err)
	}
	msg.Reference = "MSG-" + id
	msg.ReceivedAt = s.now()

	res, err := s.notifier.NotifyContact(ctx, msg)
	if err != nil {
		s.logger.Error("failed to deliver contact message",
			zap.Error(err),
			zap.String("reference", msg.Reference),
		)
		return msg, fmt.Errorf("%w: %w", ErrNotification, err)
	}

	s.logger.Info("contact message received",
		zap.String("reference", msg.Reference),
		zap.String("message_id", res.MessageID),
	)

	return msg, nil
}
