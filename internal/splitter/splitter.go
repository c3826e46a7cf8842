package splitter

import (
	"regexp"
	"strings"

	"github.com/lexatra/artsplit/internal/document"
)

// FallbackHeader is the header of the single span emitted when no
// boundary is detected by any tier.
const FallbackHeader = "(full document)"

var (
	// Keyword anywhere in a heading-styled paragraph.
	keywordRe = regexp.MustCompile(`(?i)статья|стаття|article`)
	// Stricter anchored form required for bold paragraphs.
	boldHeadingRe = regexp.MustCompile(`(?i)^\s*(Статья|Стаття|Article)\s+№?\s*\d+`)
)

// Split runs the detection tiers in order and returns the article spans
// for one document. Tiers never mix: the first tier that finds at least
// one boundary wins, and a document where nothing matches still yields
// exactly one fallback span, so content is never dropped.
func (s *PatternSet) Split(paras []document.Paragraph) []document.ArticleSpan {
	if spans := s.splitByParagraphMarkers(paras); spans != nil {
		return spans
	}
	full := FlattenText(paras)
	if spans := s.splitByTextRegex(full); spans != nil {
		return spans
	}
	return []document.ArticleSpan{{
		Header: FallbackHeader,
		Text:   full,
		Start:  0,
		End:    len(full),
		Tier:   document.TierFallback,
	}}
}

// splitByParagraphMarkers finds boundaries at paragraph granularity:
// heading style plus keyword, bold plus anchored heading, or any
// configured pattern inside the paragraph text.
func (s *PatternSet) splitByParagraphMarkers(paras []document.Paragraph) []document.ArticleSpan {
	var boundaries []int
	for idx, p := range paras {
		switch {
		case strings.Contains(strings.ToLower(p.StyleName), "heading") && keywordRe.MatchString(p.Text):
			boundaries = append(boundaries, idx)
		case p.IsBold && boldHeadingRe.MatchString(p.Text):
			boundaries = append(boundaries, idx)
		case s.combined.MatchString(p.Text):
			boundaries = append(boundaries, idx)
		}
	}
	if len(boundaries) == 0 {
		return nil
	}

	spans := make([]document.ArticleSpan, 0, len(boundaries))
	for i, start := range boundaries {
		end := len(paras)
		if i+1 < len(boundaries) {
			end = boundaries[i+1]
		}
		texts := make([]string, 0, end-start)
		for _, p := range paras[start:end] {
			texts = append(texts, p.Text)
		}
		text := strings.TrimSpace(strings.Join(texts, "\n"))
		header, _, _ := strings.Cut(text, "\n")
		spans = append(spans, document.ArticleSpan{
			Header: header,
			Text:   text,
			Start:  start,
			End:    end,
			Tier:   document.TierParagraph,
		})
	}
	return spans
}

// splitByTextRegex finds boundaries as character offsets of pattern
// matches in the flattened document text.
func (s *PatternSet) splitByTextRegex(full string) []document.ArticleSpan {
	matches := s.combined.FindAllStringIndex(full, -1)
	if len(matches) == 0 {
		return nil
	}

	spans := make([]document.ArticleSpan, 0, len(matches))
	for i, m := range matches {
		start := m[0]
		end := len(full)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		chunk := strings.TrimSpace(full[start:end])
		header, _, _ := strings.Cut(chunk, "\n")
		spans = append(spans, document.ArticleSpan{
			Header: header,
			Text:   chunk,
			Start:  start,
			End:    end,
			Tier:   document.TierFlattened,
		})
	}
	return spans
}

// FlattenText joins paragraph texts with newlines. This is the input
// for the flattened-text tier and the fallback span.
func FlattenText(paras []document.Paragraph) string {
	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n")
}
