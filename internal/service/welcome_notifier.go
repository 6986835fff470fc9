package service

import (
	"context"
	"fmt"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/emailerror"
	"github.com/sagestone/sagestone/pkg/logger"
	"github.com/sagestone/sagestone/pkg/mailer"
	"github.com/sagestone/sagestone/pkg/templates"
	"github.com/sagestone/sagestone/pkg/tracing"
)

// WelcomeNotifier renders the onboarding email and hands it to the configured mailer
type WelcomeNotifier struct {
	mailer       mailer.Mailer
	template     *templates.WelcomeTemplate
	appURL       string
	marketingURL string
	classifier   *emailerror.Classifier
	logger       logger.Logger
}

func NewWelcomeNotifier(m mailer.Mailer, appURL, marketingURL string, log logger.Logger) *WelcomeNotifier {
	return &WelcomeNotifier{
		mailer:       m,
		template:     templates.NewWelcomeTemplate(),
		appURL:       appURL,
		marketingURL: marketingURL,
		classifier:   emailerror.NewClassifier(),
		logger:       log,
	}
}

var _ domain.WelcomeNotifier = (*WelcomeNotifier)(nil)

// SendWelcome does not retry. Provider failures are returned as *emailerror.ClassifiedError
// and are left to the caller to log.
func (n *WelcomeNotifier) SendWelcome(ctx context.Context, email, firstName string) error {
	ctx, span := tracing.StartServiceSpan(ctx, "WelcomeNotifier", "SendWelcome")
	err := n.send(ctx, email, firstName)
	tracing.EndSpan(span, err)
	return err
}

func (n *WelcomeNotifier) send(ctx context.Context, email, firstName string) error {
	rendered, err := n.template.Render(ctx, templates.WelcomeData{
		FirstName:    firstName,
		AppURL:       n.appURL,
		MarketingURL: n.marketingURL,
	})
	if err != nil {
		return err
	}

	msg := &mailer.Message{
		To:      []string{email},
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	}
	if err := n.mailer.Send(ctx, msg); err != nil {
		classified := n.classifier.Classify(err, n.mailer.Provider())
		classified.Provider = n.mailer.Provider()
		return fmt.Errorf("failed to send welcome email via %s: %w", n.mailer.Provider(), classified)
	}

	n.logger.WithField("email", email).WithField("provider", n.mailer.Provider()).Info("Welcome email sent")
	return nil
}
