// Package extraction turns raw document bytes into plain text plus
// layout metadata. It has no resume-domain knowledge: the parsing core
// consumes its output through the DocumentStructure contract only.
package extraction

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Result is the extractor output: plain text with page-break markers
// between pages, and the structural metadata the structure-aware parser
// consumes.
type Result struct {
	Text      string                   `json:"text"`
	Structure *types.DocumentStructure `json:"structure"`
}

// Supported MIME types
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeHTML = "text/html"
	MimeText = "text/plain"
)

// ExtractionError wraps a failure inside a specific extractor backend
type ExtractionError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Extract dispatches on MIME type. Unknown types are a contract error;
// callers that only have a filename can map it with MimeFromPath first.
func Extract(fileBytes []byte, mimeType string) (*Result, error) {
	switch normalizeMime(mimeType) {
	case MimePDF:
		return ExtractPDF(fileBytes)
	case MimeDOCX:
		return ExtractDOCX(fileBytes)
	case MimeHTML:
		return ExtractHTML(fileBytes)
	case MimeText:
		return ExtractText(fileBytes), nil
	default:
		return nil, &ExtractionError{Format: mimeType, Message: "unsupported MIME type"}
	}
}

// MimeFromPath maps a file extension to a supported MIME type
func MimeFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".html", ".htm":
		return MimeHTML
	case ".txt", ".md", "":
		return MimeText
	default:
		return ""
	}
}

func normalizeMime(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}

// ExtractText wraps already-plain text in the extractor contract
func ExtractText(fileBytes []byte) *Result {
	text := CleanText(string(fileBytes))
	return &Result{
		Text: text,
		Structure: &types.DocumentStructure{
			Format:             "text",
			OriginalPageCount:  1,
			EstimatedPageCount: estimatePages(text),
		},
	}
}

// estimatePages guesses a page count from line volume for formats that
// carry no page concept of their own.
func estimatePages(text string) int {
	const linesPerPage = 50
	lines := strings.Count(text, "\n") + 1
	pages := (lines + linesPerPage - 1) / linesPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}
