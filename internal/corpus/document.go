// Package corpus loads batches of résumés and job descriptions: directories
// of documents or parsed JSON records, and tabular job sheets.
package corpus

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/docread"
)

// Document is one raw or pre-parsed record waiting to be loaded.
type Document struct {
	ID     string
	Source string
	// Text is the document text, or the JSON record when Parsed is set.
	Text   string
	Parsed bool
}

// DocumentID derives a stable ID from a source name.
func DocumentID(source string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(source)).String()
}

// IsParsedRecord reports whether path names a parsed JSON record.
func IsParsedRecord(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// ReadDir reads every supported file directly inside dir, in name order.
// Hidden files, subdirectories and unsupported types are skipped; unreadable
// documents are skipped with a warning.
func ReadDir(dir string, logger *slog.Logger) ([]Document, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "failed to read directory", Cause: err}
	}

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		if IsSheet(path) {
			logger.Debug("skipping sheet inside document directory", slog.String("path", path))
			continue
		}

		doc, err := ReadDocument(path)
		if err != nil {
			logger.Warn("skipping unreadable document", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ReadDocument reads a single document or parsed record.
func ReadDocument(path string) (Document, error) {
	doc := Document{ID: DocumentID(path), Source: path}
	if IsParsedRecord(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return doc, &LoadError{Path: path, Message: "failed to read record", Cause: err}
		}
		doc.Text, doc.Parsed = string(data), true
		return doc, nil
	}
	if !docread.Supported(path) {
		return doc, &LoadError{Path: path, Message: "unsupported file type"}
	}
	text, err := docread.ReadFile(path)
	if err != nil {
		return doc, &LoadError{Path: path, Message: "failed to read document", Cause: err}
	}
	doc.Text = text
	return doc, nil
}
