package document

// Paragraph is one non-empty paragraph of a source document, in document
// order. StyleName is the resolved paragraph style name ("Heading1",
// "Normal", ...), empty when the paragraph carries no style.
type Paragraph struct {
	Text      string
	StyleName string
	IsBold    bool
}

// Tier identifies which detection strategy produced a span.
type Tier int

const (
	// TierParagraph means the span was found by paragraph-level markers
	// (heading style, bold heading, or a pattern inside one paragraph).
	TierParagraph Tier = iota + 1
	// TierFlattened means the span was found by running the patterns
	// over the whole document text.
	TierFlattened
	// TierFallback means no boundary was found and the whole document
	// became a single span.
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierParagraph:
		return "paragraph"
	case TierFlattened:
		return "flattened"
	case TierFallback:
		return "fallback"
	}
	return "unknown"
}

// ArticleSpan is one contiguous region of the source document attributed
// to one article. Start and End are paragraph indices for TierParagraph
// and character offsets for TierFlattened; End is exclusive. Spans within
// a document are contiguous, non-overlapping and ordered by Start.
type ArticleSpan struct {
	Header string
	Text   string
	Start  int
	End    int
	Tier   Tier
}

// ArticleRecord is the output unit: one JSON object per line in the
// per-document .jsonl file. Meta carries the span attributes beyond
// header and text (indices, fallback flag).
type ArticleRecord struct {
	ID            string         `json:"id"`
	ArticleNumber string         `json:"article_number"`
	Title         string         `json:"title"`
	Text          string         `json:"text"`
	SourceFile    string         `json:"source_file"`
	Meta          map[string]any `json:"meta"`
}
