// Package docread turns résumé and job-posting files into raw text for the
// parsers. Plain text, Markdown, HTML, PDF and DOCX are supported.
package docread

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies a document encoding.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

var utf8BOM = []byte("\xef\xbb\xbf")

var extensions = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	"":          FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".pdf":      FormatPDF,
	".docx":     FormatDOCX,
}

// DetectFormat maps a file extension to a format.
func DetectFormat(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Supported reports whether path has a readable extension.
func Supported(path string) bool {
	_, ok := DetectFormat(path)
	return ok
}

// ReadFile reads path and returns its text.
func ReadFile(path string) (string, error) {
	format, ok := DetectFormat(path)
	if !ok {
		return "", &ReadError{Path: path, Message: "unsupported file type " + filepath.Ext(path)}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Message: "failed to read file", Cause: err}
	}
	text, err := Read(data, format)
	if err != nil {
		if re, ok := err.(*ReadError); ok {
			re.Path = path
		}
		return "", err
	}
	return text, nil
}

// Read converts data in the given format to text.
func Read(data []byte, format Format) (string, error) {
	switch format {
	case FormatText:
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	case FormatMarkdown:
		return StripMarkdown(string(data)), nil
	case FormatHTML:
		text, err := ExtractHTMLText(string(data))
		if err != nil {
			return "", &ReadError{Path: "(html)", Message: "failed to parse HTML", Cause: err}
		}
		return text, nil
	case FormatPDF:
		return extractPDFText(data)
	case FormatDOCX:
		return extractDocxText(data)
	default:
		return "", &ReadError{Path: "(data)", Message: "unsupported format " + string(format)}
	}
}

var (
	markdownHeading  = regexp.MustCompile(`(?m)^[ \t]{0,3}#{1,6}[ \t]+`)
	markdownEmphasis = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	markdownLink     = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	markdownRule     = regexp.MustCompile(`(?m)^[ \t]*(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)
)

// StripMarkdown removes heading markers, bold markers, link targets and
// horizontal rules so section headers sit alone on their lines.
func StripMarkdown(s string) string {
	s = markdownRule.ReplaceAllString(s, "")
	s = markdownHeading.ReplaceAllString(s, "")
	s = markdownEmphasis.ReplaceAllString(s, "$2")
	return markdownLink.ReplaceAllString(s, "$1")
}
