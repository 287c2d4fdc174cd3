package common

import (
	"net/url"
	"strings"
)

func IsValidURL(input string) bool {
	u, err := url.ParseRequestURI(input)

	return err == nil && u.Scheme != "" && u.Host != ""
}

// StripWhitespace removes every whitespace character from s
func StripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
