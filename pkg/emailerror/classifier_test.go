package emailerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name      string
		provider  string
		err       string
		wantType  ErrorType
		retryable bool
		status    int
	}{
		{"sendgrid invalid address", "sendgrid", "status code: 400, The to array does not contain a valid address", ErrorTypeRecipient, false, 400},
		{"sendgrid bad key", "sendgrid", "sendgrid returned status 401: Unauthorized", ErrorTypeProvider, false, 0},
		{"sendgrid rate limited", "sendgrid", "status code: 429 too many requests", ErrorTypeProvider, true, 429},
		{"mailgun unknown user", "mailgun", "550 5.1.1 user unknown", ErrorTypeRecipient, false, 0},
		{"mailgun outage", "mailgun", "UnexpectedResponseError status=503 service unavailable", ErrorTypeProvider, true, 0},
		{"ses throttled", "ses", "Throttling: Maximum sending rate exceeded", ErrorTypeProvider, true, 0},
		{"ses bad credentials", "ses", "InvalidClientTokenId: The security token included in the request is invalid", ErrorTypeProvider, false, 0},
		{"ses rejected recipient", "ses", "MessageRejected: Email address is not verified. recipient@example.com", ErrorTypeRecipient, false, 0},
		{"ses unverified sender", "ses", "MessageRejected: Email address is not verified. The following identities failed the check: sender noreply@example.com", ErrorTypeProvider, false, 0},
		{"smtp mailbox full", "smtp", "552 5.2.2 mailbox full", ErrorTypeRecipient, false, 0},
		{"smtp greylisted", "smtp", "451 4.7.1 greylisted, try again later", ErrorTypeProvider, true, 0},
		{"smtp refused", "smtp", "dial tcp 127.0.0.1:25: connect: connection refused", ErrorTypeProvider, true, 0},
		{"smtp unclassified", "smtp", "something odd happened", ErrorTypeUnknown, true, 0},
		{"unknown provider uses status", "console", "HTTP 503", ErrorTypeProvider, true, 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(errors.New(tt.err), tt.provider)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.retryable, got.Retryable)
			if tt.status != 0 {
				assert.Equal(t, tt.status, got.HTTPStatus)
			}
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, NewClassifier().Classify(nil, "smtp"))
}

func TestClassify_UnknownProvider(t *testing.T) {
	got := NewClassifier().Classify(errors.New("boom"), "carrier-pigeon")
	assert.Equal(t, "unknown", got.Provider)
	assert.Equal(t, ErrorTypeUnknown, got.Type)
	assert.True(t, got.IsProviderError())
	assert.False(t, got.IsRecipientError())
}

func TestClassifiedError_Unwrap(t *testing.T) {
	base := errors.New("550 no such user")
	classified := NewClassifier().Classify(fmt.Errorf("send: %w", base), "smtp")

	assert.True(t, errors.Is(classified, base))
	assert.True(t, classified.IsRecipientError())
	assert.Equal(t, "send: 550 no such user", classified.Error())
	assert.Equal(t, "", (&ClassifiedError{}).Error())
}

func TestExtractHTTPStatus(t *testing.T) {
	assert.Equal(t, 429, extractHTTPStatus("status_code 429"))
	assert.Equal(t, 500, extractHTTPStatus("HTTP/1.1 500 Internal Server Error"))
	assert.Equal(t, 404, extractHTTPStatus("request failed (404)"))
	assert.Equal(t, 0, extractHTTPStatus("no status here"))
}
