package swap

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonAmountChars = regexp.MustCompile(`[^0-9.]`)
	leadingZeros   = regexp.MustCompile(`^0+\d`)
	onlyZeros      = regexp.MustCompile(`^0+$`)
)

// Sanitize turns a raw keystroke buffer into the canonical amount text.
// An edit that would leave more than one decimal point is rejected and previous is returned.
func Sanitize(raw, previous string) string {
	clean := nonAmountChars.ReplaceAllString(raw, "")

	if strings.Count(clean, ".") > 1 {
		return previous
	}

	processed := clean
	if leadingZeros.MatchString(processed) {
		processed = strings.TrimLeft(processed, "0")
	}

	if clean == "" {
		return ""
	}
	if onlyZeros.MatchString(clean) {
		return "0"
	}

	return processed
}

// ParseAmount interprets amount text the way the form does.
// ok is false for blank, malformed or non-finite values.
func ParseAmount(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}
