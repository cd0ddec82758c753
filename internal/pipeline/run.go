// Package pipeline provides the high-level orchestration for parsing a
// document into a canonical resume: segment, run parser strategies,
// score, classify sparsity, reconcile.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/merge"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/strategies"
	"github.com/jonathan/resume-parser/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for a single parse request
type Options struct {
	// Parallel fans out all strategies at once instead of escalating
	// lazily. Strategies are pure, so both modes give identical output;
	// parallel trades extra work for latency.
	Parallel bool
	// Verbose adds per-strategy detail to trace notes
	Verbose bool
	// OnProgress receives step events when set
	OnProgress ProgressCallback
}

// CandidateReport records how one strategy fared, for the trace
type CandidateReport struct {
	Strategy string        `json:"strategy"`
	Score    int           `json:"score"`
	Sparse   bool          `json:"sparse"`
	Stats    scoring.Stats `json:"stats"`
}

// Result is the outcome of one parse request. Sparse is a soft signal:
// the resume is still the best-effort reconciliation even when every
// candidate was judged thin, and callers choose the escalation policy
// (binary extraction, the enhancement oracle, or a retry).
type Result struct {
	RunID      string                 `json:"run_id"`
	Resume     *types.CanonicalResume `json:"resume"`
	Score      int                    `json:"score"`
	Sparse     bool                   `json:"sparse"`
	Stats      scoring.Stats          `json:"stats"`
	Candidates []CandidateReport      `json:"candidates"`
	// Notes carries diagnostics (for example the summary truncation
	// warning) that never alter control flow.
	Notes []string `json:"notes,omitempty"`
}

// ParseDocument runs the full extraction-and-reconciliation pipeline
// over already-extracted text and its layout metadata. Blank input
// yields an empty resume, not an error; the only error condition is a
// contract violation (nil structure).
func ParseDocument(ctx context.Context, text string, structure *types.DocumentStructure, opts Options) (*Result, error) {
	if structure == nil {
		return nil, &ContractError{Message: "document structure is required (pass an empty DocumentStructure for plain text)"}
	}

	result := &Result{RunID: uuid.NewString()}
	pageCount := structure.PageCount()

	if strings.TrimSpace(text) == "" {
		empty := types.NewCanonicalResume()
		empty.FormatInfo.OriginalPageCount = pageCount
		result.Resume = empty
		result.Sparse = true
		result.Stats = scoring.Collect(empty)
		emit(opts, result.RunID, "parse", "empty input, returning empty resume", nil)
		return result, nil
	}

	registry := strategies.Registry()

	var candidates []*types.CanonicalResume
	if opts.Parallel {
		candidates = runAll(ctx, registry, text, structure)
		for i, c := range candidates {
			result.Candidates = append(result.Candidates, report(registry[i].Name(), c, pageCount))
		}
	} else {
		// Lazy escalation: stop at the first candidate the sparsity
		// classifier accepts. Later strategies are more speculative.
		for _, strategy := range registry {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			candidate := strategy.Parse(text, structure)
			candidates = append(candidates, candidate)
			rep := report(strategy.Name(), candidate, pageCount)
			result.Candidates = append(result.Candidates, rep)
			emit(opts, result.RunID, "strategy",
				fmt.Sprintf("%s scored %d (sparse=%t)", strategy.Name(), rep.Score, rep.Sparse), rep.Stats)
			if !rep.Sparse {
				break
			}
		}
	}

	best, bestScore := scoring.PickRichest(candidates)
	rest := make([]*types.CanonicalResume, 0, len(candidates))
	for _, c := range candidates {
		if c != best {
			rest = append(rest, c)
		}
	}
	merged := merge.Merge(best, rest...)
	merged.FormatInfo.OriginalPageCount = pageCount

	result.Resume = merged
	result.Score = scoring.Score(merged)
	result.Sparse, result.Stats = scoring.IsSparse(merged, pageCount)

	if strategies.SummaryLooksTruncated(merged.Summary) {
		result.Notes = append(result.Notes, "summary ends in a connective; extraction may have truncated it")
	}
	if opts.Verbose {
		result.Notes = append(result.Notes,
			fmt.Sprintf("ran %d of %d strategies, best pre-merge score %d", len(candidates), len(registry), bestScore))
	}

	emit(opts, result.RunID, "reconcile",
		fmt.Sprintf("merged %d candidates, final score %d (sparse=%t)", len(candidates), result.Score, result.Sparse), result.Stats)

	return result, nil
}

// runAll fans every strategy out concurrently. Strategies share no
// mutable state, so only the slot assignment needs the mutex.
func runAll(ctx context.Context, registry []strategies.Strategy, text string, structure *types.DocumentStructure) []*types.CanonicalResume {
	candidates := make([]*types.CanonicalResume, len(registry))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for i, strategy := range registry {
		i, strategy := i, strategy
		g.Go(func() error {
			candidate := strategy.Parse(text, structure)
			mu.Lock()
			candidates[i] = candidate
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return candidates
}

func report(name string, candidate *types.CanonicalResume, pageCount int) CandidateReport {
	sparse, stats := scoring.IsSparse(candidate, pageCount)
	return CandidateReport{
		Strategy: name,
		Score:    scoring.Score(candidate),
		Sparse:   sparse,
		Stats:    stats,
	}
}

func emit(opts Options, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}
