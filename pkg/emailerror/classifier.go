package emailerror

import (
	"regexp"
	"strconv"
	"strings"
)

// Classifier classifies mailer errors using per-provider message patterns
type Classifier struct {
	rules map[string]providerRules
}

type providerRules struct {
	recipient []string
	provider  []string
	// retryable provider errors; the rest need operator action
	transient []string
}

// NewClassifier creates a classifier that knows the built-in mailer providers
func NewClassifier() *Classifier {
	return &Classifier{rules: map[string]providerRules{
		"sendgrid": sendgridRules,
		"mailgun":  mailgunRules,
		"ses":      sesRules,
		"smtp":     smtpRules,
	}}
}

// Classify analyzes err for the named provider. It returns nil for a nil error.
func (c *Classifier) Classify(err error, provider string) *ClassifiedError {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	httpStatus := extractHTTPStatus(errStr)

	result := &ClassifiedError{
		Original:   err,
		Provider:   provider,
		HTTPStatus: httpStatus,
		Retryable:  true,
	}

	rules, known := c.rules[provider]
	if !known {
		result.Provider = "unknown"
	}

	switch {
	case known && containsAny(errStr, rules.recipient):
		// an unverified sender is an account problem even when worded like a rejection
		if containsAny(errStr, []string{"sender", "from address"}) && containsAny(errStr, []string{"not verified"}) {
			result.Type = ErrorTypeProvider
			result.Retryable = false
			return result
		}
		result.Type = ErrorTypeRecipient
		result.Retryable = false
	case known && containsAny(errStr, rules.provider):
		result.Type = ErrorTypeProvider
		result.Retryable = httpStatus >= 500 || httpStatus == 429 || containsAny(errStr, rules.transient)
	case httpStatus > 0:
		result.Type = classifyByHTTPStatus(httpStatus)
		result.Retryable = httpStatus >= 500 || httpStatus == 429
	default:
		result.Type = ErrorTypeUnknown
	}
	return result
}

var (
	// "status code: 429", "status_code 500"
	httpStatusRegex = regexp.MustCompile(`(?i)status[_\s]code[:\s]*(\d{3})`)

	// "HTTP 429", "http/1.1 500"
	httpPrefixRegex = regexp.MustCompile(`(?i)http[/\d.]*\s*(\d{3})`)

	// "(429)", "[500]"
	bracketStatusRegex = regexp.MustCompile(`[\[(](\d{3})[\])]`)
)

func extractHTTPStatus(errStr string) int {
	for _, re := range []*regexp.Regexp{httpStatusRegex, httpPrefixRegex, bracketStatusRegex} {
		if matches := re.FindStringSubmatch(errStr); len(matches) >= 2 {
			if status, err := strconv.Atoi(matches[1]); err == nil {
				return status
			}
		}
	}
	return 0
}

func classifyByHTTPStatus(status int) ErrorType {
	switch {
	case status == 429, status >= 500:
		return ErrorTypeProvider
	case status == 401, status == 403:
		return ErrorTypeProvider
	default:
		return ErrorTypeUnknown
	}
}

func containsAny(errStr string, patterns []string) bool {
	errLower := strings.ToLower(errStr)
	for _, pattern := range patterns {
		if strings.Contains(errLower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
