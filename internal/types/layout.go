package types

// PageBreakMarker is inserted between pages by the structural text
// extractor so downstream parsers can recover page boundaries from
// plain text.
const PageBreakMarker = "\f"

// DocumentStructure carries layout metadata produced by the structural
// text extractor alongside the plain text. It has no resume-domain
// knowledge; parsers that are structure-aware consume it as-is.
type DocumentStructure struct {
	Format             string `json:"format"`
	OriginalPageCount  int    `json:"original_page_count"`
	EstimatedPageCount int    `json:"estimated_page_count,omitempty"`
	// ColumnsDetected holds the detected column count per page, in page
	// order. Empty when the source format has no column concept.
	ColumnsDetected []int `json:"columns_detected,omitempty"`
}

// PageCount returns the best available page count, defaulting to 1
func (s *DocumentStructure) PageCount() int {
	if s == nil {
		return 1
	}
	if s.OriginalPageCount > 0 {
		return s.OriginalPageCount
	}
	if s.EstimatedPageCount > 0 {
		return s.EstimatedPageCount
	}
	return 1
}
