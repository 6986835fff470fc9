package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridHost = "https://api.sendgrid.com"

// SendGridMailer delivers through the SendGrid v3 mail/send API
type SendGridMailer struct {
	apiKey string
	host   string
	sender Sender
	client *rest.Client
}

// NewSendGridMailer builds a SendGrid mailer. httpClient may be nil.
func NewSendGridMailer(apiKey string, sender Sender, httpClient *http.Client) *SendGridMailer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SendGridMailer{
		apiKey: apiKey,
		host:   sendGridHost,
		sender: sender,
		client: &rest.Client{HTTPClient: httpClient},
	}
}

// WithHost points the mailer at another API host
func (m *SendGridMailer) WithHost(host string) *SendGridMailer {
	m.host = host
	return m
}

func (m *SendGridMailer) Provider() string { return "sendgrid" }

func (m *SendGridMailer) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	sender := msg.resolveSender(m.sender)

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(sgmail.NewEmail(sender.Name, sender.Email))
	v3.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail("", to))
	}
	v3.AddPersonalizations(p)

	// text/plain must precede text/html
	if text := msg.plainText(); text != "" {
		v3.AddContent(sgmail.NewContent("text/plain", text))
	}
	if msg.HTML != "" {
		v3.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}

	request := sendgrid.GetRequest(m.apiKey, "/v3/mail/send", m.host)
	request.Method = rest.Post
	request.Body = sgmail.GetRequestBody(v3)

	response, err := m.client.SendWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to call sendgrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
