package botcheck

import "strings"

// validates the hidden honeypot form field; humans never see the field,
// so any non-empty value is a strong automation signal
func ValidateHoneypot(value string) bool {
	return strings.TrimSpace(value) == ""
}
