package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/lexatra/artsplit/internal/document"
	"github.com/lexatra/artsplit/internal/jsonl"
	"github.com/lexatra/artsplit/internal/parser"
	"github.com/lexatra/artsplit/internal/splitter"
)

// splitResponse is the body returned by POST /api/split.
type splitResponse struct {
	SourceFile string                   `json:"source_file"`
	Count      int                      `json:"count"`
	Records    []document.ArticleRecord `json:"records"`
}

// handleSplit runs the split pipeline on an uploaded document and
// returns the records without writing any output file. The multipart
// form takes one "file" part and zero or more "pattern" values, which
// are prepended to the default patterns.
func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	patterns := s.defaults
	if custom := r.MultipartForm.Value["pattern"]; len(custom) > 0 {
		patterns, err = splitter.NewPatternSet(custom)
		if err != nil {
			jsonError(w, "invalid pattern: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	loader, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	paras, err := loader.Load(bytes.NewReader(data), filename)
	if err != nil {
		var loadErr *parser.LoadError
		if errors.As(err, &loadErr) {
			jsonError(w, "parse failed: "+loadErr.Err.Error(), http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, "parse failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	spans := patterns.Split(paras)
	records := jsonl.BuildRecords(spans, filename)

	s.log.Info("split", "file", filename, "records", len(records))
	writeJSON(w, http.StatusOK, splitResponse{
		SourceFile: filename,
		Count:      len(records),
		Records:    records,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// sanitizeFilename strips any path components from a client-supplied
// file name.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." {
		name = "upload.docx"
	}
	return name
}
