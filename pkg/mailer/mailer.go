package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_mailer.go -package=mocks github.com/sagestone/sagestone/pkg/mailer Mailer

// Mailer sends one transactional message. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
	// Provider names the implementation ("console", "sendgrid", ...)
	Provider() string
}

// Message is an outbound email. From and FromName override the mailer defaults when set.
type Message struct {
	To       []string
	Subject  string
	HTML     string
	Text     string
	From     string
	FromName string
}

// Result is the outcome shape exposed to callers that only need success/failure
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ErrSendFailed is the message used in a failed Result; provider details stay in logs
var ErrSendFailed = errors.New("Failed to send email")

// ResultFromError converts a Send error into a Result
func ResultFromError(err error) Result {
	if err == nil {
		return Result{Success: true}
	}
	return Result{Success: false, Error: ErrSendFailed.Error()}
}

// Sender is the default sender identity
type Sender struct {
	Email string
	Name  string
}

// Validate checks recipients and content
func (m *Message) Validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	for _, to := range m.To {
		if !govalidator.IsEmail(strings.TrimSpace(to)) {
			return fmt.Errorf("invalid recipient email: %s", to)
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if m.HTML == "" && m.Text == "" {
		return fmt.Errorf("html or text content is required")
	}
	return nil
}

// resolveSender applies per-message overrides to the default sender
func (m *Message) resolveSender(def Sender) Sender {
	s := def
	if m.From != "" {
		s.Email = m.From
	}
	if m.FromName != "" {
		s.Name = m.FromName
	}
	return s
}

// plainText returns the message text, deriving it from HTML when absent
func (m *Message) plainText() string {
	if m.Text != "" {
		return m.Text
	}
	return PlainTextFromHTML(m.HTML)
}
