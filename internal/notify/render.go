package notify

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in the markdown source is escaped since WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// ContactSubject builds the email subject line for a contact message
func ContactSubject(msg model.ContactMessage) string {
	return fmt.Sprintf("[%s] %s", msg.Reference, msg.Subject)
}

// ContactMarkdown builds the markdown source of the notification body
func ContactMarkdown(msg model.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## New contact message %s\n\n", msg.Reference)
	fmt.Fprintf(&b, "- **From:** %s <%s>\n", msg.Name, msg.Email)
	fmt.Fprintf(&b, "- **Subject:** %s\n", msg.Subject)
	fmt.Fprintf(&b, "- **Received:** %s\n\n", msg.ReceivedAt.UTC().Format(time.RFC3339))
	for _, line := range strings.Split(msg.Message, "\n") {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	return b.String()
}

// RenderContactHTML renders the notification body to HTML
func RenderContactHTML(msg model.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(ContactMarkdown(msg)), &buf); err != nil {
		return "", fmt.Errorf("failed to render contact message: %w", err)
	}
	return buf.String(), nil
}
