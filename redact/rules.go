// Package redact scrubs secrets and PII from the textual representations of
// a MIME bundle before it is rendered.
package redact

import (
	"fmt"
	"regexp"
)

// Rule replaces every match of Pattern with "[REDACTED:<Name>]".
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

func (r Rule) replacement() string {
	return fmt.Sprintf("[REDACTED:%s]", r.Name)
}

// SecretRules returns the built-in credential rules.
func SecretRules() []Rule {
	return []Rule{
		{Name: "aws_key", Pattern: regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
		{Name: "api_key", Pattern: regexp.MustCompile(`(?:sk-[a-zA-Z0-9]{32,}|ghp_[a-zA-Z0-9]{36,}|gho_[a-zA-Z0-9]{36,}|glpat-[a-zA-Z0-9\-]{20,})`)},
		{Name: "private_key", Pattern: regexp.MustCompile(`-----BEGIN [A-Z ]+PRIVATE KEY-----`)},
		{Name: "connection_string", Pattern: regexp.MustCompile(`(?:postgres|postgresql|mongodb|mysql|redis)://[^\s"'` + "`" + `<]+`)},
		{Name: "jwt", Pattern: regexp.MustCompile(`eyJ[A-Za-z0-9\-_]+\.eyJ[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_.+/=]+`)},
		{Name: "bearer_token", Pattern: regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.~+/]{20,}=*`)},
	}
}

// PIIRules returns the built-in personal data rules.
func PIIRules() []Rule {
	return []Rule{
		{Name: "email", Pattern: regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
		{Name: "ipv4", Pattern: regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)},
		// Phone numbers need a separator or a bracketed area code; bare
		// digit runs are left alone.
		{Name: "phone", Pattern: regexp.MustCompile(`(?:\+\d{1,3}[\s\-]?)?(?:\(\d{3}\)\s?|\b\d{3}[\s\-])\d{3}[\s\-]\d{4}\b`)},
	}
}
