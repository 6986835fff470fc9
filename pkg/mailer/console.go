package mailer

import (
	"context"
	"strings"

	"github.com/sagestone/sagestone/pkg/logger"
)

// ConsoleMailer logs messages instead of delivering them. Used when no
// provider is configured or the selected provider lacks credentials.
type ConsoleMailer struct {
	logger logger.Logger
}

func NewConsoleMailer(log logger.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: log}
}

func (m *ConsoleMailer) Provider() string { return "console" }

func (m *ConsoleMailer) Send(_ context.Context, msg *Message) error {
	m.logger.WithFields(map[string]interface{}{
		"to":      strings.Join(msg.To, ", "),
		"subject": msg.Subject,
		"text":    msg.plainText(),
	}).Info("Email would be sent")
	return nil
}
