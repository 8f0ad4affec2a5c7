package corpus

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	tagRegex  = regexp.MustCompile(`<[^>]+>`)
	wordRegex = regexp.MustCompile(`[a-záéíóúüñ0-9]+`)
)

// CleanText normalizes raw document text before tokenization: HTML entities
// are unescaped, tags stripped, unicode NFKC-normalized, control characters
// (other than newline, tab and space) replaced by spaces, and the result
// lowercased.
func CleanText(s string) string {
	s = html.UnescapeString(s)
	s = tagRegex.ReplaceAllString(s, " ")
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.C, r) && r != '\n' && r != '\t' && r != ' ' {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// Tokenize extracts word tokens (letters and digits, including Spanish
// accented letters). Punctuation acts as a separator.
func Tokenize(s string) []string {
	return wordRegex.FindAllString(strings.ToLower(s), -1)
}
