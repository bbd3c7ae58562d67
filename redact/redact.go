package redact

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sonnes/transformime/core"
)

// Config selects the rules a Redactor applies.
type Config struct {
	Secrets   bool
	PII       bool
	Extra     []Rule
	Allowlist []string // regexes; matching values are left alone
}

// Redactor rewrites bundle payloads with sensitive values replaced.
type Redactor struct {
	rules     []Rule
	allowlist []*regexp.Regexp
}

// New builds a Redactor. An allowlist entry that does not compile is an
// error.
func New(cfg Config) (*Redactor, error) {
	var rules []Rule
	if cfg.Secrets {
		rules = append(rules, SecretRules()...)
	}
	if cfg.PII {
		rules = append(rules, PIIRules()...)
	}
	rules = append(rules, cfg.Extra...)

	allow := make([]*regexp.Regexp, 0, len(cfg.Allowlist))
	for _, pattern := range cfg.Allowlist {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("allowlist pattern %q: %w", pattern, err)
		}
		allow = append(allow, re)
	}

	return &Redactor{rules: rules, allowlist: allow}, nil
}

// Textual reports whether payloads of mimetype are scanned. Binary
// representations such as base64 images are not.
func Textual(mimetype string) bool {
	return strings.HasPrefix(mimetype, "text/") ||
		mimetype == "application/json" ||
		strings.HasSuffix(mimetype, "+json")
}

// Bundle returns a redacted copy of b. b itself is not modified.
func (r *Redactor) Bundle(b core.Bundle) core.Bundle {
	if b == nil {
		return nil
	}
	out := make(core.Bundle, len(b))
	for mt, data := range b {
		if Textual(mt) {
			out[mt] = walk(data, r.String, 0)
		} else {
			out[mt] = data
		}
	}
	return out
}

// String applies every rule to s. Overlapping matches resolve to the
// earliest start, then the longest match.
func (r *Redactor) String(s string) string {
	if s == "" {
		return s
	}

	type span struct {
		start, end int
		text       string
	}

	var spans []span
	for _, rule := range r.rules {
		for _, loc := range rule.Pattern.FindAllStringIndex(s, -1) {
			if r.allowed(s[loc[0]:loc[1]]) {
				continue
			}
			spans = append(spans, span{start: loc[0], end: loc[1], text: rule.replacement()})
		}
	}
	if len(spans) == 0 {
		return s
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.start < pos {
			continue
		}
		b.WriteString(s[pos:sp.start])
		b.WriteString(sp.text)
		pos = sp.end
	}
	b.WriteString(s[pos:])
	return b.String()
}

func (r *Redactor) allowed(value string) bool {
	for _, re := range r.allowlist {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}
