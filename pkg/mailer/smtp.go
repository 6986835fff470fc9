package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the relay settings for SMTPMailer
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// UseTLS requires STARTTLS; otherwise TLS is opportunistic
	UseTLS bool
}

// SMTPMailer delivers through an SMTP relay
type SMTPMailer struct {
	config SMTPConfig
	sender Sender
	// tlsPolicy is NoTLS only in tests against a plain local server
	tlsPolicy mail.TLSPolicy
}

func NewSMTPMailer(cfg SMTPConfig, sender Sender) *SMTPMailer {
	policy := mail.TLSOpportunistic
	if cfg.UseTLS {
		policy = mail.TLSMandatory
	}
	return &SMTPMailer{config: cfg, sender: sender, tlsPolicy: policy}
}

func (m *SMTPMailer) Provider() string { return "smtp" }

func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	sender := msg.resolveSender(m.sender)

	message := mail.NewMsg(mail.WithNoDefaultUserAgent())
	if err := message.FromFormat(sender.Name, sender.Email); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}
	if err := message.To(msg.To...); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}
	message.Subject(msg.Subject)

	text := msg.plainText()
	if msg.HTML != "" {
		message.SetBodyString(mail.TypeTextHTML, msg.HTML)
		if text != "" {
			message.AddAlternativeString(mail.TypeTextPlain, text)
		}
	} else {
		message.SetBodyString(mail.TypeTextPlain, text)
	}

	client, err := m.client()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) client() (*mail.Client, error) {
	options := []mail.Option{
		mail.WithPort(m.config.Port),
		mail.WithTLSPolicy(m.tlsPolicy),
		mail.WithTimeout(10 * time.Second),
	}

	// unauthenticated relays (local, port 25) are allowed
	if m.config.Username != "" && m.config.Password != "" {
		options = append(options,
			mail.WithUsername(m.config.Username),
			mail.WithPassword(m.config.Password),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}
