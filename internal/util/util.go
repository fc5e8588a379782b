package util

import "strings"

// Placeholder tokens recognised in page templates.
const (
	TOKEN_POSTS   = "{{posts}}"
	TOKEN_TITLE   = "{{title}}"
	TOKEN_AUTHOR  = "{{author}}"
	TOKEN_DATE    = "{{date}}"
	TOKEN_CONTENT = "{{content}}"
)

const LINE_BREAK = "<br>"

// Substitute replaces each token in values with its text. Replacement is a
// single left-to-right pass, so substituted text is never scanned again.
// Nothing is escaped.
func Substitute(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for token, text := range values {
		pairs = append(pairs, token, text)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// EnrichPost turns a post body into HTML lines. The text itself is left raw.
func EnrichPost(body string) string {
	return strings.ReplaceAll(body, "\n", LINE_BREAK)
}
