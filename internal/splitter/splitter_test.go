package splitter

import (
	"strings"
	"testing"

	"github.com/lexatra/artsplit/internal/document"
)

func mustPatterns(t *testing.T, custom ...string) *PatternSet {
	t.Helper()
	ps, err := NewPatternSet(custom)
	if err != nil {
		t.Fatalf("compile patterns: %v", err)
	}
	return ps
}

func TestSplit_BoldHeadings(t *testing.T) {
	paras := []document.Paragraph{
		{Text: "Статья 1. Title A", IsBold: true},
		{Text: "Body of the first article."},
		{Text: "Статья 2. Title B", IsBold: true},
		{Text: "Body of the second article."},
		{Text: "Статья 3. Title C", IsBold: true},
		{Text: "Body of the third article."},
	}

	spans := mustPatterns(t).Split(paras)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}

	wantHeaders := []string{"Статья 1. Title A", "Статья 2. Title B", "Статья 3. Title C"}
	for i, sp := range spans {
		if sp.Header != wantHeaders[i] {
			t.Errorf("span[%d] header: expected %q, got %q", i, wantHeaders[i], sp.Header)
		}
		if sp.Tier != document.TierParagraph {
			t.Errorf("span[%d] tier: expected %v, got %v", i, document.TierParagraph, sp.Tier)
		}
		if !strings.Contains(sp.Text, "Body of") {
			t.Errorf("span[%d] text missing body: %q", i, sp.Text)
		}
	}

	if spans[0].Start != 0 || spans[len(spans)-1].End != len(paras) {
		t.Errorf("spans do not cover the document: first start %d, last end %d",
			spans[0].Start, spans[len(spans)-1].End)
	}
}

func TestSplit_HeadingStyleWithKeyword(t *testing.T) {
	// Style-based boundaries need only the keyword, not a number.
	paras := []document.Paragraph{
		{Text: "Преамбула"},
		{Text: "Стаття перша", StyleName: "Heading 1"},
		{Text: "Текст першої статті."},
		{Text: "Стаття друга", StyleName: "heading 2"},
		{Text: "Текст другої статті."},
	}

	spans := mustPatterns(t).Split(paras)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Header != "Стаття перша" {
		t.Errorf("expected header %q, got %q", "Стаття перша", spans[0].Header)
	}
	// The preamble before the first boundary is not part of any span.
	if spans[0].Start != 1 {
		t.Errorf("expected first span to start at 1, got %d", spans[0].Start)
	}
}

func TestSplit_HeadingStyleWithoutKeywordIsNotBoundary(t *testing.T) {
	paras := []document.Paragraph{
		{Text: "General Provisions", StyleName: "Heading 1"},
		{Text: "Some introductory text."},
	}
	spans := mustPatterns(t).Split(paras)
	if len(spans) != 1 || spans[0].Tier != document.TierFallback {
		t.Fatalf("expected a single fallback span, got %+v", spans)
	}
}

func TestSplit_BoldWithoutNumberIsNotBoundary(t *testing.T) {
	// Bold paragraphs need the stricter anchored form with a number.
	paras := []document.Paragraph{
		{Text: "Общие положения", IsBold: true},
		{Text: "Статья без номера", IsBold: true},
		{Text: "Article 4. Definitions", IsBold: true},
		{Text: "Body text."},
	}
	spans := mustPatterns(t).Split(paras)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Header != "Article 4. Definitions" {
		t.Errorf("unexpected header %q", spans[0].Header)
	}
}

func TestSplit_PlainParagraphMatchingPattern(t *testing.T) {
	// No style, no bold: the configured patterns alone mark the boundary.
	paras := []document.Paragraph{
		{Text: "Вступление."},
		{Text: "Статья 1. Определения"},
		{Text: "Термины и понятия."},
		{Text: "Ст. 2: Сфера применения"},
		{Text: "Область действия."},
	}

	spans := mustPatterns(t).Split(paras)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Start != 1 || spans[0].End != 3 {
		t.Errorf("span[0]: expected [1,3), got [%d,%d)", spans[0].Start, spans[0].End)
	}
	if spans[1].Start != 3 || spans[1].End != 5 {
		t.Errorf("span[1]: expected [3,5), got [%d,%d)", spans[1].Start, spans[1].End)
	}
}

func TestSplit_CustomPattern(t *testing.T) {
	paras := []document.Paragraph{
		{Text: "Introduction."},
		{Text: "Section 1 — Scope"},
		{Text: "This act applies to everyone."},
		{Text: "Section 2 — Terms"},
		{Text: "Definitions follow."},
	}

	spans := mustPatterns(t, `^Section\s+\d+`).Split(paras)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Header != "Section 1 — Scope" {
		t.Errorf("unexpected header %q", spans[0].Header)
	}
}

func TestSplit_FlattenedTextTier(t *testing.T) {
	// A pattern spanning a paragraph break can never match a single
	// paragraph, so detection falls through to the flattened text.
	paras := []document.Paragraph{
		{Text: "Preamble."},
		{Text: "Article"},
		{Text: "1. Scope"},
		{Text: "It applies broadly."},
		{Text: "Article"},
		{Text: "2. Terms"},
		{Text: "Terms are defined here."},
	}

	spans := mustPatterns(t, `Article\n\d+`).Split(paras)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	for i, sp := range spans {
		if sp.Tier != document.TierFlattened {
			t.Errorf("span[%d] tier: expected %v, got %v", i, document.TierFlattened, sp.Tier)
		}
		if sp.Header != "Article" {
			t.Errorf("span[%d] header: expected %q, got %q", i, "Article", sp.Header)
		}
	}
	// Character spans are contiguous and run to the end of the text.
	if spans[0].End != spans[1].Start {
		t.Errorf("spans not contiguous: [%d,%d) then [%d,%d)",
			spans[0].Start, spans[0].End, spans[1].Start, spans[1].End)
	}
	full := FlattenText(paras)
	if spans[1].End != len(full) {
		t.Errorf("last span end %d, want %d", spans[1].End, len(full))
	}
	if !strings.Contains(spans[1].Text, "Terms are defined here.") {
		t.Errorf("last span text missing tail: %q", spans[1].Text)
	}
}

func TestSplit_Fallback(t *testing.T) {
	paras := []document.Paragraph{
		{Text: "Chapter One"},
		{Text: "Nothing here looks like a numbered article."},
	}

	spans := mustPatterns(t).Split(paras)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	sp := spans[0]
	if sp.Header != FallbackHeader {
		t.Errorf("expected header %q, got %q", FallbackHeader, sp.Header)
	}
	if sp.Tier != document.TierFallback {
		t.Errorf("expected fallback tier, got %v", sp.Tier)
	}
	want := "Chapter One\nNothing here looks like a numbered article."
	if sp.Text != want {
		t.Errorf("expected text %q, got %q", want, sp.Text)
	}
}

func TestSplit_EmptyDocument(t *testing.T) {
	spans := mustPatterns(t).Split(nil)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Header != FallbackHeader || spans[0].Text != "" {
		t.Errorf("unexpected fallback span: %+v", spans[0])
	}
}

func TestSplit_SpanContiguity(t *testing.T) {
	paras := []document.Paragraph{
		{Text: "Статья 1. A", IsBold: true},
		{Text: "body"},
		{Text: "body"},
		{Text: "Статья 2. B", IsBold: true},
		{Text: "Статья 3. C", IsBold: true},
		{Text: "body"},
	}
	spans := mustPatterns(t).Split(paras)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	for i := 1; i < len(spans); i++ {
		if spans[i-1].End != spans[i].Start {
			t.Errorf("span[%d].End = %d, span[%d].Start = %d", i-1, spans[i-1].End, i, spans[i].Start)
		}
	}
}

func TestSplit_CaseInsensitive(t *testing.T) {
	paras := []document.Paragraph{
		{Text: "СТАТЬЯ 1. ВВОДНАЯ"},
		{Text: "текст"},
		{Text: "article 2: scope"},
		{Text: "text"},
	}
	spans := mustPatterns(t).Split(paras)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
}

func TestNewPatternSet_Malformed(t *testing.T) {
	if _, err := NewPatternSet([]string{`[unclosed`}); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
	if _, err := NewPatternSet(nil); err != nil {
		t.Fatalf("defaults must compile: %v", err)
	}
}
