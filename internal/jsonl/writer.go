package jsonl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexatra/artsplit/internal/document"
)

// Writer emits one newline-delimited JSON file per source document
// into Dir. By default a rerun replaces the previous output for the
// same stem; Append restores accumulate-on-rerun for callers that
// want the old behavior.
type Writer struct {
	Dir    string
	Append bool
}

// WriteFile writes records to <Dir>/<stem>.jsonl, one compact JSON
// object per line, creating Dir as needed. Returns the output path.
func (w *Writer) WriteFile(records []document.ArticleRecord, stem string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", &WriteError{Path: w.Dir, Err: err}
	}

	path := filepath.Join(w.Dir, stem+".jsonl")
	flags := os.O_CREATE | os.O_WRONLY
	if w.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			f.Close()
			return "", &WriteError{Path: path, Err: err}
		}
	}
	if err := f.Close(); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}

// WriteError reports an output directory or file that could not be
// created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
