package botcheck

import (
	"regexp"
	"strings"
)

// result of validating a submitted email address
type EmailResult struct {
	Valid        bool
	IsDisposable bool
	Reason       string
}

// standard-shape check (local@domain.tld), deliberately not RFC-5322-complete
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// domains known to hand out throwaway mailboxes
var disposableDomains = map[string]bool{
	"tempmail.com":       true,
	"temp-mail.org":      true,
	"10minutemail.com":   true,
	"guerrillamail.com":  true,
	"guerrillamail.info": true,
	"mailinator.com":     true,
	"yopmail.com":        true,
	"throwaway.email":    true,
	"trashmail.com":      true,
	"sharklasers.com":    true,
	"getnada.com":        true,
	"dispostable.com":    true,
	"maildrop.cc":        true,
	"mintemail.com":      true,
	"fakeinbox.com":      true,
	"mohmal.com":         true,
	"mailnesia.com":      true,
	"spamgourmet.com":    true,
	"getairmail.com":     true,
	"emailondeck.com":    true,
}

// format-checks an email address and flags disposable-provider domains;
// invalid format short-circuits without evaluating disposability
func ValidateEmail(email string) EmailResult {
	email = strings.TrimSpace(email)

	if !emailRegex.MatchString(email) {
		return EmailResult{Valid: false, Reason: "invalid email format"}
	}

	at := strings.LastIndex(email, "@")
	domain := strings.ToLower(email[at+1:])

	if disposableDomains[domain] {
		return EmailResult{Valid: true, IsDisposable: true, Reason: "disposable email domain"}
	}

	return EmailResult{Valid: true}
}
