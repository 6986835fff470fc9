package templates

import (
	"context"
	"fmt"
	"sync"
	"time"

	mjmlgo "github.com/Boostport/mjml-go"
	"github.com/osteele/liquid"
)

// WelcomeSubject is the subject line of the onboarding email
const WelcomeSubject = "Welcome to Sagestone!"

// welcomeMJML is compiled to HTML once; the liquid placeholders survive
// compilation and are filled per recipient
const welcomeMJML = `<mjml>
  <mj-head>
    <mj-title>Welcome to Sagestone</mj-title>
    <mj-attributes>
      <mj-all font-family="-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif" />
      <mj-text font-size="16px" line-height="1.6" color="#333333" />
    </mj-attributes>
  </mj-head>
  <mj-body width="600px">
    <mj-section background-color="#f8f9fa" border-radius="10px" padding="30px">
      <mj-column>
        <mj-text font-size="28px" color="#2563eb">Welcome to Sagestone!</mj-text>
      </mj-column>
    </mj-section>
    <mj-section>
      <mj-column>
        <mj-text>Hi {{ first_name | escape }},</mj-text>
        <mj-text>Thank you for signing up for Sagestone! We're excited to have you on board.</mj-text>
        <mj-text>You now have access to powerful marketing automation and CRM tools to help grow your business:</mj-text>
        <mj-text line-height="1.8">
          <ul>
            <li>Contact Management &amp; CRM</li>
            <li>Email &amp; SMS Campaigns</li>
            <li>Marketing Automation</li>
            <li>Landing Pages &amp; Funnels</li>
            <li>Custom Forms</li>
            <li>Sales Pipelines</li>
          </ul>
        </mj-text>
        <mj-button href="{{ app_url }}/dashboard" background-color="#2563eb" color="#ffffff" font-weight="600" border-radius="6px" inner-padding="14px 28px">Go to Dashboard</mj-button>
        <mj-text>If you have any questions or need help getting started, feel free to reach out to our support team.</mj-text>
        <mj-text>Best regards,<br /><strong>The Sagestone Team</strong></mj-text>
      </mj-column>
    </mj-section>
    <mj-section border-top="1px solid #e5e7eb">
      <mj-column>
        <mj-text align="center" font-size="14px" color="#6b7280">&copy; {{ year }} Sagestone. All rights reserved.</mj-text>
        <mj-text align="center" font-size="14px"><a href="{{ marketing_url }}" style="color: #2563eb; text-decoration: none;">Visit our website</a></mj-text>
      </mj-column>
    </mj-section>
  </mj-body>
</mjml>`

const welcomeText = `Welcome to Sagestone!

Hi {{ first_name }},

Thank you for signing up for Sagestone! We're excited to have you on board.

You now have access to powerful marketing automation and CRM tools to help grow your business:

- Contact Management & CRM
- Email & SMS Campaigns
- Marketing Automation
- Landing Pages & Funnels
- Custom Forms
- Sales Pipelines

Get started: {{ app_url }}/dashboard

If you have any questions or need help getting started, feel free to reach out to our support team.

Best regards,
The Sagestone Team

(c) {{ year }} Sagestone. All rights reserved.
{{ marketing_url }}
`

// WelcomeData are the per-recipient template variables
type WelcomeData struct {
	FirstName    string
	AppURL       string
	MarketingURL string
	Now          time.Time
}

func (d WelcomeData) bindings() map[string]interface{} {
	now := d.Now
	if now.IsZero() {
		now = time.Now()
	}
	return map[string]interface{}{
		"first_name":    d.FirstName,
		"app_url":       d.AppURL,
		"marketing_url": d.MarketingURL,
		"year":          now.Year(),
	}
}

// RenderedEmail is a subject with both bodies
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// WelcomeTemplate renders the onboarding email. The MJML layout is compiled on
// first successful use and reused afterwards; a failed compile is retried on the next call.
type WelcomeTemplate struct {
	engine  *liquid.Engine
	compile func(ctx context.Context, mjml string) (string, error)

	mu   sync.Mutex
	html string
}

func NewWelcomeTemplate() *WelcomeTemplate {
	return &WelcomeTemplate{
		engine: liquid.NewEngine(),
		compile: func(ctx context.Context, mjml string) (string, error) {
			return mjmlgo.ToHTML(ctx, mjml)
		},
	}
}

func (t *WelcomeTemplate) compiled(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.html != "" {
		return t.html, nil
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("failed to compile welcome MJML: %w", err)
	}
	html, err := t.compile(ctx, welcomeMJML)
	if err != nil {
		return "", fmt.Errorf("failed to compile welcome MJML: %w", err)
	}
	t.html = html
	return html, nil
}

// Render fills the template for one recipient
func (t *WelcomeTemplate) Render(ctx context.Context, data WelcomeData) (*RenderedEmail, error) {
	layout, err := t.compiled(ctx)
	if err != nil {
		return nil, err
	}

	bindings := data.bindings()
	html, err := t.engine.ParseAndRenderString(layout, bindings)
	if err != nil {
		return nil, fmt.Errorf("failed to render welcome html: %w", err)
	}
	text, err := t.engine.ParseAndRenderString(welcomeText, bindings)
	if err != nil {
		return nil, fmt.Errorf("failed to render welcome text: %w", err)
	}

	return &RenderedEmail{Subject: WelcomeSubject, HTML: html, Text: text}, nil
}
