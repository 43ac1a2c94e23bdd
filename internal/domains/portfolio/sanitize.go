package portfolio

import "html"

// Sanitize HTML-escapes untrusted text so it is safe to embed in the
// rendered page and in persisted artifacts. Every externally supplied
// string passes through here before it reaches a template or a file.
func Sanitize(value string) string {
	return html.EscapeString(value)
}
