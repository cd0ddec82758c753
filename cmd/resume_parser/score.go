package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a canonical resume JSON file",
	Long:  "Compute the richness score, per-section statistics, and sparsity verdict for an already-parsed canonical resume JSON file.",
	RunE:  runScore,
}

var (
	scoreInputFile string
	scorePageCount int
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to canonical resume JSON file (required)")
	scoreCmd.Flags().IntVar(&scorePageCount, "pages", 0, "Page count override for the sparsity check (default: from the file)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreInputFile == "" {
		return fmt.Errorf("input file is required (use --in)")
	}

	data, err := os.ReadFile(scoreInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var resume types.CanonicalResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	pageCount := scorePageCount
	if pageCount <= 0 {
		pageCount = resume.FormatInfo.OriginalPageCount
	}
	if pageCount <= 0 {
		pageCount = 1
	}

	sparse, stats := scoring.IsSparse(&resume, pageCount)

	out := struct {
		Score  int           `json:"score"`
		Sparse bool          `json:"sparse"`
		Pages  int           `json:"pages"`
		Stats  scoring.Stats `json:"stats"`
	}{
		Score:  scoring.Score(&resume),
		Sparse: sparse,
		Pages:  pageCount,
		Stats:  stats,
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
