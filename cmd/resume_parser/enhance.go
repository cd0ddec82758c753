package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/enhance"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Enhance a canonical resume JSON file with AI",
	Long:  "Send an already-parsed canonical resume through the AI enhancement pass. The enhanced output is reconciled against the input, so existing data is never lost.",
	RunE:  runEnhance,
}

var (
	enhanceInputFile  string
	enhanceOutputFile string
	enhanceTargetRole string
	enhanceAPIKey     string
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceInputFile, "in", "i", "", "Path to canonical resume JSON file (required)")
	enhanceCmd.Flags().StringVarP(&enhanceOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	enhanceCmd.Flags().StringVar(&enhanceTargetRole, "target-role", "", "Role to tailor the resume toward")
	enhanceCmd.Flags().StringVar(&enhanceAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, _ []string) error {
	if enhanceInputFile == "" {
		return fmt.Errorf("input file is required (use --in)")
	}

	apiKey := enhanceAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	data, err := os.ReadFile(enhanceInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var resume types.CanonicalResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	enhanced, err := enhance.Enhance(context.Background(), &resume, enhanceTargetRole, apiKey)
	if err != nil {
		return fmt.Errorf("failed to enhance resume: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(enhanced, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if enhanceOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(enhanceOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", enhanceOutputFile)
	return nil
}
