// Package strategies implements the independent parser strategies that
// turn raw resume text into CanonicalResume candidates. Every strategy
// is pure, shares the same input contract, and never returns nil: on
// malformed input it returns the best partial record built so far so the
// scorer can always rank it.
package strategies

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Strategy is one parsing approach over the same immutable input. A
// strategy holds no state between calls; invocations are safe to run
// concurrently.
type Strategy interface {
	// Name identifies the strategy in traces and scoring summaries
	Name() string
	// Parse produces a fresh candidate. layout may be nil; strategies
	// that are not structure-aware ignore it.
	Parse(text string, layout *types.DocumentStructure) *types.CanonicalResume
}

// Registry returns the strategies in escalation priority order: cheapest
// and most conservative first. The pipeline runs them lazily in this
// order, stopping once a candidate clears the sparsity classifier.
func Registry() []Strategy {
	return []Strategy{
		NewZeroMerge(),
		NewSectionRegex(),
		NewStructureAware(),
		NewDynamicSection(),
	}
}

// SplitLines normalizes line endings and splits text for segmentation
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	// Page-break markers from the extractor act as blank lines here
	text = strings.ReplaceAll(text, types.PageBreakMarker, "\n")
	return strings.Split(text, "\n")
}

func applyLayout(resume *types.CanonicalResume, layout *types.DocumentStructure) {
	resume.FormatInfo.OriginalPageCount = layout.PageCount()
}
