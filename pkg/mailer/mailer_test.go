package mailer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr string
	}{
		{"valid html", Message{To: []string{"ann@example.com"}, Subject: "Hi", HTML: "<p>Hi</p>"}, ""},
		{"valid text", Message{To: []string{"ann@example.com"}, Subject: "Hi", Text: "Hi"}, ""},
		{"no recipients", Message{Subject: "Hi", Text: "Hi"}, "at least one recipient is required"},
		{"bad recipient", Message{To: []string{"nope"}, Subject: "Hi", Text: "Hi"}, "invalid recipient email: nope"},
		{"no subject", Message{To: []string{"ann@example.com"}, Text: "Hi"}, "subject is required"},
		{"no content", Message{To: []string{"ann@example.com"}, Subject: "Hi"}, "html or text content is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestResultFromError(t *testing.T) {
	assert.Equal(t, Result{Success: true}, ResultFromError(nil))
	assert.Equal(t, Result{Success: false, Error: "Failed to send email"}, ResultFromError(errors.New("smtp: 550 mailbox unavailable")))
}

func TestMessage_ResolveSender(t *testing.T) {
	def := Sender{Email: "noreply@sagestone.app", Name: "Sagestone"}

	msg := &Message{}
	assert.Equal(t, def, msg.resolveSender(def))

	msg = &Message{From: "team@sagestone.app", FromName: "Team"}
	assert.Equal(t, Sender{Email: "team@sagestone.app", Name: "Team"}, msg.resolveSender(def))
}

func TestMessage_PlainText(t *testing.T) {
	msg := &Message{Text: "explicit", HTML: "<p>ignored</p>"}
	assert.Equal(t, "explicit", msg.plainText())

	msg = &Message{HTML: "<p>Hello <b>Ann</b></p>"}
	assert.Equal(t, "Hello Ann", msg.plainText())
}
