package mailer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunMailer delivers through the Mailgun messages API
type MailgunMailer struct {
	mg     *mailgun.MailgunImpl
	sender Sender
}

// NewMailgunMailer builds a Mailgun mailer. region "EU" selects the EU API
// base; httpClient may be nil.
func NewMailgunMailer(domain, apiKey, region string, sender Sender, httpClient *http.Client) *MailgunMailer {
	mg := mailgun.NewMailgun(domain, apiKey)
	if strings.EqualFold(region, "EU") {
		mg.SetAPIBase(mailgun.APIBaseEU)
	}
	if httpClient != nil {
		mg.SetClient(httpClient)
	}
	return &MailgunMailer{mg: mg, sender: sender}
}

// WithAPIBase points the mailer at another API base
func (m *MailgunMailer) WithAPIBase(base string) *MailgunMailer {
	m.mg.SetAPIBase(base)
	return m
}

func (m *MailgunMailer) Provider() string { return "mailgun" }

func (m *MailgunMailer) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	sender := msg.resolveSender(m.sender)
	from := sender.Email
	if sender.Name != "" {
		from = fmt.Sprintf("%s <%s>", sender.Name, sender.Email)
	}

	message := m.mg.NewMessage(from, msg.Subject, msg.plainText())
	for _, to := range msg.To {
		if err := message.AddRecipient(to); err != nil {
			return fmt.Errorf("invalid recipient %s: %w", to, err)
		}
	}
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}

	if _, _, err := m.mg.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to call mailgun: %w", err)
	}
	return nil
}
