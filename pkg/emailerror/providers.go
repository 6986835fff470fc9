package emailerror

// smtpMailboxPatterns are the permanent 55x replies that providers relay verbatim
var smtpMailboxPatterns = []string{
	"550 ", "550:", "551 ", "551:", "552 ", "552:", "553 ", "553:",
	"mailbox unavailable",
	"mailbox not found",
	"mailbox full",
	"user unknown",
	"no such user",
	"recipient rejected",
	"does not exist",
}

var sendgridRules = providerRules{
	recipient: append([]string{
		"does not contain a valid address",
		"invalid email",
		"bounced address",
	}, smtpMailboxPatterns...),
	provider: []string{
		"unauthorized",
		"forbidden",
		"authorization grant",
		"maximum credits exceeded",
		"too many requests",
		"service unavailable",
		"internal server error",
	},
	transient: []string{"too many requests", "service unavailable"},
}

var mailgunRules = providerRules{
	recipient: append([]string{
		"554 ", "554:",
		"user not found",
		"invalid recipient",
		"storage exceeded",
	}, smtpMailboxPatterns...),
	provider: []string{
		"421 ", "421:",
		"unauthorized",
		"forbidden",
		"rate limit",
		"too many requests",
		"service unavailable",
		"internal server error",
		"bad gateway",
		"invalid api key",
		"domain not found",
	},
	transient: []string{"421", "rate limit", "too many", "service unavailable"},
}

var sesRules = providerRules{
	recipient: []string{
		"messagerejected",
		"email address is not verified",
		"invalid recipient",
		"mailbox unavailable",
		"address rejected",
		"no recipients",
		"recipient rejected",
	},
	provider: []string{
		"throttling",
		"limitexceeded",
		"quota exceeded",
		"daily message quota",
		"serviceunavailable",
		"service unavailable",
		"accessdenied",
		"invalidclienttokenid",
		"signaturedoesnotmatch",
		"expiredtoken",
		"account is paused",
		"sending paused",
	},
	transient: []string{"throttl", "quota", "serviceunavailable", "service unavailable"},
}

var smtpRules = providerRules{
	recipient: append([]string{
		"5.1.1", "5.1.2", "5.1.3", "5.2.1", "5.2.2", "5.7.1",
		"over quota",
	}, smtpMailboxPatterns...),
	provider: []string{
		"421 ", "421:", "450 ", "450:", "451 ", "451:", "452 ", "452:",
		"4.7.1",
		"connection refused",
		"connection reset",
		"timed out",
		"timeout",
		"tls handshake",
		"authentication failed",
		"auth failed",
		"service unavailable",
		"try again later",
		"temporary failure",
		"greylist",
	},
	transient: []string{
		"421", "450", "451", "452", "4.7.1",
		"connection", "timeout", "timed out", "try again later", "temporary failure", "greylist",
		"service unavailable",
	},
}
