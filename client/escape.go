package client

import "strings"

// Server-supplied text is escaped before it reaches any rendering surface.
// The five HTML-significant characters map to their entity forms, so the
// escaped output unescapes back to the original string.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
