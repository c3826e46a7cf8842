package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexatra/artsplit/internal/document"
)

// Loader converts raw document bytes into the ordered paragraph sequence.
type Loader interface {
	Load(r io.Reader, filename string) ([]document.Paragraph, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".docx": true,
}

// ForFile returns the appropriate loader for a filename.
func ForFile(filename string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DOCXLoader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// LoadFile opens path and loads it with the loader for its extension.
func LoadFile(path string) ([]document.Paragraph, error) {
	l, err := ForFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return l.Load(f, filepath.Base(path))
}

// LoadError reports a document that could not be opened or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
