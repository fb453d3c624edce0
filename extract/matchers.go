package extract

import (
	"regexp"
	"strings"
)

// Matcher reports whether a line satisfies a structured field's pattern.
// On success it returns the extracted value, which may be a substring of
// the line (e.g. the email token) rather than the whole line.
type Matcher func(line string) (value string, ok bool)

var (
	emailRE  = regexp.MustCompile(`[^@\s]+@[^@\s]+\.[A-Za-z]{2,}`)
	postalRE = regexp.MustCompile(`^\d{4,6}$`)
	phoneRE  = regexp.MustCompile(`\+\d[\d\s\-()]+`)
)

// MatchEmail matches the first well-formed email address in the line.
func MatchEmail(line string) (string, bool) {
	if m := emailRE.FindString(line); m != "" {
		return m, true
	}
	return "", false
}

// MatchPostalCode matches a whitespace-delimited token of 4-6 digits.
// German postal codes are 5 digits; the wider range tolerates OCR
// dropping or duplicating a digit.
func MatchPostalCode(line string) (string, bool) {
	for _, tok := range strings.Fields(line) {
		if postalRE.MatchString(tok) {
			return tok, true
		}
	}
	return "", false
}

// MatchPhone matches an international phone number: a leading "+" and
// digit followed by digits, spaces, dashes, or parentheses.
func MatchPhone(line string) (string, bool) {
	if m := phoneRE.FindString(line); m != "" {
		return strings.TrimSpace(m), true
	}
	return "", false
}

// builtinMatchers maps canonical structured field names to their matchers.
// Any field name not present here is treated as free-text.
var builtinMatchers = map[string]Matcher{
	"email":      MatchEmail,
	"phone":      MatchPhone,
	"postalcode": MatchPostalCode,
}

// MatcherFor returns the built-in matcher for a field name, or nil when
// the name designates a free-text field. Lookup is case-insensitive.
func MatcherFor(name string) Matcher {
	return builtinMatchers[strings.ToLower(name)]
}
