package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/pkg/logger"
)

func TestConsoleMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	m := NewConsoleMailer(logger.NewLoggerWithWriter(&buf, "info"))
	assert.Equal(t, "console", m.Provider())

	err := m.Send(context.Background(), &Message{
		To:      []string{"ann@example.com"},
		Subject: "Welcome",
		HTML:    "<p>Hello</p>",
	})
	require.NoError(t, err)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Email would be sent", entry["message"])
	assert.Equal(t, "ann@example.com", entry["to"])
	assert.Equal(t, "Welcome", entry["subject"])
	assert.Equal(t, "Hello", entry["text"])
}
