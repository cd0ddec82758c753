package extraction

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-parser/internal/types"
)

// noiseSelector removes chrome that web resume builders wrap around the
// actual document.
const noiseSelector = "nav, footer, header.site-header, script, style, noscript, .sidebar, .cookie-banner, .popup"

// contentSelectors are tried in order; the first match wins, body is the
// fallback.
var contentSelectors = []string{
	"main",
	"article",
	".resume",
	"#resume",
	".cv",
	".content",
	"#content",
}

// ExtractHTML extracts readable text from an HTML-rendered resume,
// approximating block structure with line breaks so the segmenter still
// sees one heading or bullet per line.
func ExtractHTML(fileBytes []byte) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, &ExtractionError{Format: "html", Message: "failed to parse document", Cause: err}
	}

	doc.Find(noiseSelector).Remove()

	var root *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			root = sel.First()
			break
		}
	}
	if root == nil {
		root = doc.Find("body")
	}

	var sb strings.Builder
	root.Find("h1, h2, h3, h4, h5, h6, p, li, div, br, tr").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish blocks contribute text; containers would repeat
		// their children's content.
		if s.Children().Filter("h1, h2, h3, h4, h5, h6, p, li, div").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			sb.WriteString("- ")
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text = root.Text()
	}
	text = CleanText(text)

	return &Result{
		Text: text,
		Structure: &types.DocumentStructure{
			Format:             "html",
			OriginalPageCount:  1,
			EstimatedPageCount: estimatePages(text),
		},
	}, nil
}
