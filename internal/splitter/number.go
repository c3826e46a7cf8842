package splitter

import (
	"regexp"
	"strconv"
)

var numberRe = regexp.MustCompile(`(?i)(?:Статья|Стаття|Article)\s+№?\s*(\d+)`)

// ArticleNumber extracts the article number from a span header, e.g.
// "Статья № 5." yields "5". Headers without a recognizable number fall
// back to ordinal, the 1-based position of the span within its document.
func ArticleNumber(header string, ordinal int) string {
	if m := numberRe.FindStringSubmatch(header); m != nil {
		return m[1]
	}
	return strconv.Itoa(ordinal)
}
