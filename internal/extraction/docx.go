package extraction

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// ExtractDOCX pulls text out of the word/document.xml part of a DOCX
// archive. Paragraph and page-break elements become newlines and page
// markers before the remaining tags are stripped.
func ExtractDOCX(fileBytes []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return nil, &ExtractionError{Format: "docx", Message: "not a valid archive", Cause: err}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return nil, &ExtractionError{Format: "docx", Message: "failed to open document.xml", Cause: err}
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return nil, &ExtractionError{Format: "docx", Message: "failed to read document.xml", Cause: err}
			}
			break
		}
	}
	if len(docXML) == 0 {
		return nil, &ExtractionError{Format: "docx", Message: "no document.xml found"}
	}

	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = strings.ReplaceAll(xml, `<w:br w:type="page"/>`, "\n"+types.PageBreakMarker+"\n")
	xml = strings.ReplaceAll(xml, `<w:lastRenderedPageBreak/>`, "\n"+types.PageBreakMarker+"\n")
	text := xmlTagRe.ReplaceAllString(xml, "")

	pageCount := strings.Count(text, types.PageBreakMarker) + 1
	text = CleanText(text)

	return &Result{
		Text: text,
		Structure: &types.DocumentStructure{
			Format:             "docx",
			OriginalPageCount:  pageCount,
			EstimatedPageCount: estimatePages(text),
		},
	}, nil
}
