package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Error describes a failure extracting text from an uploaded file.
type Error struct {
	Filename string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error for %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error for %s: %s", e.Filename, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExtractFileText extracts cleaned plain text from an uploaded resume
// file. The format is picked by content type first, then filename
// extension; unknown formats fall back to a plain-text read.
func ExtractFileText(filename, contentType string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct := strings.ToLower(contentType)

	switch {
	case strings.Contains(ct, "pdf") || ext == ".pdf":
		return extractPDF(filename, data)
	case strings.Contains(ct, "word") || ext == ".docx":
		return extractDocx(filename, data)
	default:
		return extractPlain(filename, data)
	}
}

func extractPDF(filename string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Filename: filename, Message: "invalid or corrupted PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// skip unreadable pages, keep the rest
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return CleanText(sb.String()), nil
}

func extractDocx(filename string, data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Filename: filename, Message: "invalid or corrupted DOCX", Cause: err}
	}
	defer doc.Close()

	return CleanText(stripXMLTags(doc.Editable().GetContent())), nil
}

func extractPlain(filename string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return CleanText(string(data)), nil
	}
	// latin-1 fallback for legacy exports
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return CleanText(string(runes)), nil
}

// stripXMLTags removes the WordprocessingML markup the docx library
// leaves in the editable content, keeping paragraph breaks.
func stripXMLTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
