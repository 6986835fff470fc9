package mailer

import (
	"net/http"

	"github.com/sagestone/sagestone/config"
	"github.com/sagestone/sagestone/pkg/logger"
)

// NewFromConfig selects the provider named by cfg.Provider. A provider
// without its credentials, or an unknown/empty name, yields the console
// mailer. Selection never fails.
func NewFromConfig(cfg config.EmailConfig, httpClient *http.Client, log logger.Logger) Mailer {
	sender := Sender{Email: cfg.FromEmail, Name: cfg.FromName}

	switch cfg.Provider {
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			log.Warn("SENDGRID_API_KEY not set, using console mailer")
			return NewConsoleMailer(log)
		}
		return NewSendGridMailer(cfg.SendGridAPIKey, sender, httpClient)

	case "mailgun":
		if cfg.MailgunAPIKey == "" || cfg.MailgunDomain == "" {
			log.Warn("Mailgun credentials not set, using console mailer")
			return NewConsoleMailer(log)
		}
		return NewMailgunMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunRegion, sender, httpClient)

	case "ses":
		if cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" {
			log.Warn("AWS credentials not set, using console mailer")
			return NewConsoleMailer(log)
		}
		m, err := NewSESMailer(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.AWSRegion, sender)
		if err != nil {
			log.WithField("error", err.Error()).Warn("SES unavailable, using console mailer")
			return NewConsoleMailer(log)
		}
		return m

	case "smtp":
		if cfg.SMTP.Host == "" {
			log.Warn("SMTP_HOST not set, using console mailer")
			return NewConsoleMailer(log)
		}
		return NewSMTPMailer(SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			UseTLS:   cfg.SMTP.UseTLS,
		}, sender)

	default:
		log.Info("No email service configured, using console mailer")
		return NewConsoleMailer(log)
	}
}
