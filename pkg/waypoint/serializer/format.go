package serializer

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var urlReplace = regexp.MustCompile(`\s+|[?!$,.+"'*^|/\\\[\]#%><;:@&=` + "`" + `]`)

// FormatURLPart turns a human title into a URL-safe path part:
// "My Settings" and "mySettings" both become "my-settings".
func FormatURLPart(title string) string {
	s := urlReplace.ReplaceAllString(title, "-")

	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	s = cases.Lower(language.Und).String(b.String())

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSuffix(s, "-")

	return url.PathEscape(s)
}
