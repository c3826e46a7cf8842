package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/lexatra/artsplit/internal/document"
)

// DOCXLoader handles .docx files.
type DOCXLoader struct{}

func (l *DOCXLoader) Load(r io.Reader, filename string) ([]document.Paragraph, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "artsplit-docx-*.docx")
	if err != nil {
		return nil, &LoadError{Path: filename, Err: fmt.Errorf("create temp file: %w", err)}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, &LoadError{Path: filename, Err: fmt.Errorf("write temp file: %w", err)}
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, &LoadError{Path: filename, Err: fmt.Errorf("seek temp file: %w", err)}
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, &LoadError{Path: filename, Err: fmt.Errorf("parse docx: %w", err)}
	}

	var paras []document.Paragraph
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		paras = append(paras, document.Paragraph{
			Text:      text,
			StyleName: paragraphStyle(para),
			IsBold:    hasBoldRun(para),
		})
	}
	return paras, nil
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// hasBoldRun reports whether at least one run with non-empty text is
// marked bold. A paragraph with no runs is never bold.
func hasBoldRun(para *docx.Paragraph) bool {
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		if run.RunProperties == nil || run.RunProperties.Bold == nil {
			continue
		}
		var buf strings.Builder
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
		if strings.TrimSpace(buf.String()) != "" {
			return true
		}
	}
	return false
}
