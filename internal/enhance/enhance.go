// Package enhance calls the external AI enhancement oracle on a
// reconciled resume. The oracle is untrusted by contract: its output is
// merged back through the reconciliation engine against the pre-AI
// record, so a hallucinated empty field can never erase an extracted
// fact.
package enhance

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/merge"
	"github.com/jonathan/resume-parser/internal/prompts"
	"github.com/jonathan/resume-parser/internal/types"
)

// Enhance sends the candidate to the oracle and returns the already
// reconciled result: oracle output merged into the pre-AI record under
// the standard no-data-loss rules. The input is never mutated.
func Enhance(ctx context.Context, candidate *types.CanonicalResume, targetRole string, apiKey string) (*types.CanonicalResume, error) {
	if candidate == nil {
		return nil, &APICallError{Message: "candidate is required"}
	}
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, &APICallError{Message: "failed to create LLM client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	return enhanceWith(ctx, client, candidate, targetRole)
}

// enhanceWith is split out so tests can inject a fake client
func enhanceWith(ctx context.Context, client llm.Client, candidate *types.CanonicalResume, targetRole string) (*types.CanonicalResume, error) {
	candidateJSON, err := json.Marshal(candidate)
	if err != nil {
		return nil, &ParseError{Message: "failed to marshal candidate", Cause: err}
	}

	// The template ships inside the binary; a missing one is a build
	// defect, not a runtime condition.
	template := prompts.MustGet("enhancement.json", "enhance_resume")
	prompt := prompts.Format(template, map[string]string{
		"TargetRole": targetRole,
		"ResumeJSON": string(candidateJSON),
	})

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "enhancement request failed", Cause: err}
	}

	oracle, err := parseOracleResponse(responseText)
	if err != nil {
		return nil, err
	}

	// The pre-AI record stays primary; the oracle only fills gaps.
	return merge.Merge(candidate, oracle), nil
}

// parseOracleResponse decodes the oracle reply, salvaging an embedded
// JSON object when the model wrapped it in prose.
func parseOracleResponse(text string) (*types.CanonicalResume, error) {
	text = llm.CleanJSONBlock(text)

	var oracle types.CanonicalResume
	if err := json.Unmarshal([]byte(text), &oracle); err != nil {
		start := -1
		depth := 0
		for i, r := range text {
			if r == '{' {
				if start < 0 {
					start = i
				}
				depth++
			}
			if r == '}' {
				depth--
				if depth == 0 && start >= 0 {
					if inner := text[start : i+1]; json.Unmarshal([]byte(inner), &oracle) == nil {
						return &oracle, nil
					}
					break
				}
			}
		}
		return nil, &ParseError{Message: "oracle reply is not valid resume JSON", Cause: err}
	}
	return &oracle, nil
}
