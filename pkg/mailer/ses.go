package mailer

import (
	"context"
	"fmt"
	"mime"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
)

// SESMailer delivers through Amazon SES SendEmail
type SESMailer struct {
	client sesiface.SESAPI
	sender Sender
}

// NewSESMailer opens an AWS session with static credentials
func NewSESMailer(accessKeyID, secretAccessKey, region string, sender Sender) (*SESMailer, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return NewSESMailerWithClient(ses.New(sess), sender), nil
}

func NewSESMailerWithClient(client sesiface.SESAPI, sender Sender) *SESMailer {
	return &SESMailer{client: client, sender: sender}
}

func (m *SESMailer) Provider() string { return "ses" }

func (m *SESMailer) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	sender := msg.resolveSender(m.sender)
	source := sender.Email
	if sender.Name != "" {
		source = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", sender.Name), sender.Email)
	}

	body := &ses.Body{}
	if msg.HTML != "" {
		body.Html = &ses.Content{Charset: aws.String("UTF-8"), Data: aws.String(msg.HTML)}
	}
	if text := msg.plainText(); text != "" {
		body.Text = &ses.Content{Charset: aws.String("UTF-8"), Data: aws.String(text)}
	}

	input := &ses.SendEmailInput{
		Destination: &ses.Destination{ToAddresses: aws.StringSlice(msg.To)},
		Message: &ses.Message{
			Body: body,
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(msg.Subject),
			},
		},
		Source: aws.String(source),
	}

	if _, err := m.client.SendEmailWithContext(ctx, input); err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			return fmt.Errorf("SES error: %s", aerr.Error())
		}
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
