package formatter

import "strings"

// htmlEscaper implements the fixed five-entry escaping table spec §4.4
// mandates (&, <, >, " and ', the last rewritten to &#39;), written out
// locally so the exact substitutions the formatter applies are visible in
// one place.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
