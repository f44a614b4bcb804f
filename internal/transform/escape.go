package transform

import "strings"

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

var attrUnescaper = strings.NewReplacer(
	"&quot;", `"`,
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func unescapeAttr(s string) string {
	return attrUnescaper.Replace(s)
}
