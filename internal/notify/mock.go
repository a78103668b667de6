package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
)

// MockNotifier is an in-memory implementation of Notifier for testing
type MockNotifier struct {
	Sent []model.ContactMessage
	Err  error
	mu   sync.Mutex
}

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// NotifyContact records the message, or fails with Err when set
func (n *MockNotifier) NotifyContact(_ context.Context, msg model.ContactMessage) (Result, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.Err != nil {
		return Result{}, n.Err
	}

	n.Sent = append(n.Sent, msg)
	return Result{
		MessageID: fmt.Sprintf("mock-%d", len(n.Sent)),
		SentAt:    time.Now(),
	}, nil
}

// Messages returns a copy of the recorded messages
func (n *MockNotifier) Messages() []model.ContactMessage {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]model.ContactMessage, len(n.Sent))
	copy(out, n.Sent)
	return out
}
