package sanitize

import (
	"regexp"
	"strings"
)

// Best-effort cleanup of untrusted string content. Sanitization never
// rejects a value; it only narrows character content. Every function here
// is pure and idempotent.

var (
	angleBrackets    = regexp.MustCompile(`[<>]`)
	dangerousSchemes = regexp.MustCompile(`(?i)(?:javascript|data|vbscript):`)
	nonPhoneChars    = regexp.MustCompile(`[^\d+]`)
)

// urlBlockedSchemes are rejected outright by URL; the remainder of the
// dangerous schemes are handled by prefixing https://.
var urlBlockedSchemes = []string{"javascript:", "data:", "vbscript:", "file:", "ftp:"}

// Text strips angle brackets and the javascript:, data: and vbscript:
// schemes from anywhere in the string, then trims surrounding whitespace.
// Scheme removal repeats until a fixpoint so that nested fragments like
// "javajavascript:script:" cannot reassemble into a dangerous scheme.
func Text(s string) string {
	s = angleBrackets.ReplaceAllString(s, "")
	for {
		stripped := dangerousSchemes.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}
	return strings.TrimSpace(s)
}

// URL returns "" for blank input and for any input carrying a blocked
// scheme. Anything else is guaranteed to come back starting with http://
// or https://; schemeless input gets https:// prepended.
func URL(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, scheme := range urlBlockedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return ""
		}
	}

	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "https://" + trimmed
	}
	return trimmed
}

// Email applies Text, then lowercases.
func Email(s string) string {
	return strings.ToLower(Text(s))
}

// Phone keeps digits and at most one leading +. A + anywhere past the
// first character is dropped.
func Phone(s string) string {
	cleaned := nonPhoneChars.ReplaceAllString(s, "")
	if strings.HasPrefix(cleaned, "+") {
		return "+" + strings.ReplaceAll(cleaned[1:], "+", "")
	}
	return strings.ReplaceAll(cleaned, "+", "")
}

// StringArray sanitizes each element with Text and drops any that come
// back empty.
func StringArray(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if cleaned := Text(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
