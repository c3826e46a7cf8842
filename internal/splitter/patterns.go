package splitter

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPatterns match article headings in Cyrillic/English legal
// documents: "Статья 1.", "Стаття 12 —", "Article 3:", "Ст. 4.",
// "Статья №5". Anchored to line start, matched case-insensitively.
var DefaultPatterns = []string{
	`^(Статья|Стаття|Article)\s+№?\s*\d+[\s.\-–—:]`,
	`^Ст\.?\s*\d+[\s.\-–—:]`,
	`^Статья\s+№?\s*\d+\b`,
}

// PatternSet is the ordered, compiled set of boundary patterns for one
// run. Custom patterns come before the defaults in the alternation.
type PatternSet struct {
	combined *regexp.Regexp
}

// NewPatternSet compiles custom patterns followed by DefaultPatterns
// into one case-insensitive multiline alternation. A malformed pattern
// is reported here, before any document is processed.
func NewPatternSet(custom []string) (*PatternSet, error) {
	patterns := make([]string, 0, len(custom)+len(DefaultPatterns))
	patterns = append(patterns, custom...)
	patterns = append(patterns, DefaultPatterns...)

	alts := make([]string, len(patterns))
	for i, p := range patterns {
		if _, err := regexp.Compile(p); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		alts[i] = "(?:" + p + ")"
	}
	combined, err := regexp.Compile("(?im)" + strings.Join(alts, "|"))
	if err != nil {
		return nil, fmt.Errorf("combine patterns: %w", err)
	}
	return &PatternSet{combined: combined}, nil
}
