package swap

import (
	"net/url"
	"strings"
)

// DefaultIconBaseURL hosts one SVG per token symbol.
const DefaultIconBaseURL = "https://raw.githubusercontent.com/Switcheo/token-icons/main/tokens/"

// IconURL builds the icon location for symbol. Existence is not checked.
func IconURL(baseURL, symbol string) string {
	if baseURL == "" {
		baseURL = DefaultIconBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + url.PathEscape(strings.ToUpper(symbol)) + ".svg"
}
