package jsonl

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lexatra/artsplit/internal/document"
	"github.com/lexatra/artsplit/internal/splitter"
)

// Stem returns the source file name without directory or extension,
// used for record IDs and output file names.
func Stem(sourcePath string) string {
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// BuildRecords converts one document's spans into output records.
// Record IDs are unique within a document; two source files sharing a
// stem and article numbers produce colliding IDs, which is left as is.
func BuildRecords(spans []document.ArticleSpan, sourcePath string) []document.ArticleRecord {
	stem := Stem(sourcePath)
	records := make([]document.ArticleRecord, 0, len(spans))
	for i, sp := range spans {
		num := splitter.ArticleNumber(sp.Header, i+1)
		records = append(records, document.ArticleRecord{
			ID:            fmt.Sprintf("%s_article_%s", stem, num),
			ArticleNumber: num,
			Title:         sp.Header,
			Text:          sp.Text,
			SourceFile:    sourcePath,
			Meta:          spanMeta(sp),
		})
	}
	return records
}

func spanMeta(sp document.ArticleSpan) map[string]any {
	switch sp.Tier {
	case document.TierParagraph:
		return map[string]any{"start_para": sp.Start, "end_para": sp.End}
	case document.TierFlattened:
		return map[string]any{"start_char": sp.Start, "end_char": sp.End}
	default:
		return map[string]any{"fallback": true}
	}
}
