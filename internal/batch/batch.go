package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lexatra/artsplit/internal/jsonl"
	"github.com/lexatra/artsplit/internal/parser"
	"github.com/lexatra/artsplit/internal/splitter"
)

// Processor runs the load -> detect -> serialize pipeline over a
// directory of documents, one document at a time.
type Processor struct {
	Patterns *splitter.PatternSet
	Writer   *jsonl.Writer
	Log      *slog.Logger
}

// Result summarizes one batch run.
type Result struct {
	Files   int // documents processed successfully
	Records int // records written across all documents
	Failed  int // documents skipped after an error
}

// Run processes every supported document directly inside inputDir
// (non-recursive). A failing document is logged and skipped; the batch
// always continues with the next file, so Run returns an error only
// when the input directory itself cannot be read or the context is
// canceled between files.
func (p *Processor) Run(ctx context.Context, inputDir string) (Result, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return Result{}, fmt.Errorf("read input dir: %w", err)
	}

	// ReadDir returns entries sorted by name.
	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		p.Log.Info("no .docx files in input directory", "dir", inputDir)
		return Result{}, nil
	}

	var res Result
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		path := filepath.Join(inputDir, name)
		p.Log.Info("processing", "file", name)

		n, out, err := p.processFile(path)
		if err != nil {
			p.Log.Error("processing failed", "file", name, "error", err)
			res.Failed++
			continue
		}
		p.Log.Info("saved", "file", name, "records", n, "output", out)
		res.Files++
		res.Records += n
	}
	return res, nil
}

func (p *Processor) processFile(path string) (int, string, error) {
	paras, err := parser.LoadFile(path)
	if err != nil {
		return 0, "", err
	}
	spans := p.Patterns.Split(paras)
	records := jsonl.BuildRecords(spans, path)
	out, err := p.Writer.WriteFile(records, jsonl.Stem(path))
	if err != nil {
		return 0, "", err
	}
	return len(records), out, nil
}
