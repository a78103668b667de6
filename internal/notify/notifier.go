package notify

import (
	"context"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
)

// Result describes an accepted notification
type Result struct {
	MessageID string
	SentAt    time.Time
}

// Notifier delivers contact form submissions to the support inbox.
// This interface allows the contact service to run without a mail provider.
type Notifier interface {
	NotifyContact(ctx context.Context, msg model.ContactMessage) (Result, error)
}

// Ensure implementations satisfy Notifier
var (
	_ Notifier = (*ResendNotifier)(nil)
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*MockNotifier)(nil)
)
