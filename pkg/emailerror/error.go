package emailerror

// ErrorType says whether a send failed because of the recipient or the provider
type ErrorType string

const (
	// ErrorTypeRecipient is a problem with the address itself (unknown user, mailbox full)
	ErrorTypeRecipient ErrorType = "recipient"

	// ErrorTypeProvider is an account or infrastructure problem (auth, rate limit, outage)
	ErrorTypeProvider ErrorType = "provider"

	// ErrorTypeUnknown could not be classified and is handled like a provider error
	ErrorTypeUnknown ErrorType = "unknown"
)

// ClassifiedError wraps a send error with classification metadata
type ClassifiedError struct {
	Original   error
	Type       ErrorType
	Provider   string
	HTTPStatus int
	Retryable  bool
}

func (e *ClassifiedError) Error() string {
	if e.Original == nil {
		return ""
	}
	return e.Original.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Original
}

func (e *ClassifiedError) IsRecipientError() bool {
	return e.Type == ErrorTypeRecipient
}

// IsProviderError includes unknown errors
func (e *ClassifiedError) IsProviderError() bool {
	return e.Type == ErrorTypeProvider || e.Type == ErrorTypeUnknown
}
