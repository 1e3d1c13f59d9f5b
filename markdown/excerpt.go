package markdown

import "strings"

// Default excerpt lengths, in characters.
const (
	PageExcerptLength = 150
	FeedExcerptLength = 200
)

// Ellipsis is appended to truncated excerpts.
const Ellipsis = "..."

var markupStripper = strings.NewReplacer(
	"#", "", "*", "", "`", "", ">", "",
	"[", "", "]", "", "(", "", ")", "",
)

// Excerpt returns a plain-text summary of the raw markdown body, at most
// length characters plus Ellipsis.
func Excerpt(body string, length int) string {
	text := strings.TrimSpace(markupStripper.Replace(body))
	runes := []rune(text)
	if length >= 0 && len(runes) > length {
		return string(runes[:length]) + Ellipsis
	}
	return text
}
