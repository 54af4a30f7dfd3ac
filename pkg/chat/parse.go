package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Extraction helpers used by the category handlers. Each returns the
// extracted value and whether one was found, keeping parsing separate
// from the state transitions that consume the results.

var (
	intPattern  = regexp.MustCompile(`(\d+)%?`)
	timePattern = regexp.MustCompile(`(?i)\d{1,2}(?::\d{2})?\s*(?:am|pm)?`)
)

// colors is the fixed color vocabulary; the first color present in
// the message wins, in this order.
var colors = []string{"red", "blue", "green", "yellow", "purple", "white"}

// extractInt returns the first integer (with optional trailing %)
// found anywhere in the message.
func extractInt(message string) (int, bool) {
	m := intPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractDigitToken returns the first whitespace-delimited token of
// the message consisting only of digits. Tokens like "68," or "68%"
// do not qualify; the token must be digits and nothing else.
func extractDigitToken(message string) (int, bool) {
	for _, token := range strings.Fields(message) {
		if !digitsOnly(token) {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// extractTime returns the first time-of-day expression in the message,
// e.g. "7pm", "10:30 am" or a bare hour.
func extractTime(message string) (string, bool) {
	m := timePattern.FindString(message)
	if m == "" {
		return "", false
	}
	return m, true
}

// extractColor returns the first supported color named in the message.
func extractColor(message string) (string, bool) {
	for _, c := range colors {
		if strings.Contains(message, c) {
			return c, true
		}
	}
	return "", false
}

// containsAny reports whether the message contains any of the words.
func containsAny(message string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(message, w) {
			return true
		}
	}
	return false
}
