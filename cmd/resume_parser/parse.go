package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/enhance"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume document into canonical JSON",
	Long:  "Parse a PDF, DOCX, HTML, or plain-text resume into the canonical JSON record, reconciling all extraction strategies.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseMime       string
	parseConfigFile string
	parseTargetRole string
	parseAPIKey     string
	parseVerbose    bool
	parseParallel   bool
	parseEnhance    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the resume document (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseMime, "mime", "", "MIME type override (default: detected from file extension)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseTargetRole, "target-role", "", "Role to tailor toward when enhancing")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed extraction diagnostics")
	parseCmd.Flags().BoolVar(&parseParallel, "parallel", false, "Run all strategies concurrently instead of escalating lazily")
	parseCmd.Flags().BoolVar(&parseEnhance, "enhance", false, "Run the AI enhancement pass after parsing")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Input:      parseInputFile,
		Output:     parseOutputFile,
		Mime:       parseMime,
		TargetRole: parseTargetRole,
		APIKey:     parseAPIKey,
		Verbose:    parseVerbose,
		Parallel:   parseParallel,
		Enhance:    parseEnhance,
	}

	if parseConfigFile != "" {
		fileCfg, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.Input == "" {
		return fmt.Errorf("input file is required (use --in)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Enhance && apiKey == "" {
		return fmt.Errorf("API key is required for --enhance (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	fileBytes, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	mimeType := cfg.Mime
	if mimeType == "" {
		mimeType = extraction.MimeFromPath(cfg.Input)
	}

	extracted, err := extraction.Extract(fileBytes, mimeType)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	printer := observability.NewPrinter(os.Stderr)

	opts := pipeline.Options{
		Parallel: cfg.Parallel,
		Verbose:  cfg.Verbose,
	}
	if cfg.Verbose {
		opts.OnProgress = printer.PrintProgress
	}

	ctx := context.Background()

	result, err := pipeline.ParseDocument(ctx, extracted.Text, extracted.Structure, opts)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if cfg.Verbose {
		printer.PrintCandidates(result.Candidates)
		printer.PrintScore(result)
	}

	resume := result.Resume
	if cfg.Enhance {
		enhanced, err := enhance.Enhance(ctx, resume, cfg.TargetRole, apiKey)
		if err != nil {
			return fmt.Errorf("failed to enhance resume: %w", err)
		}
		resume = enhanced
	}

	if cfg.Verbose {
		printer.PrintResume(resume)
	}

	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := validateOutput(jsonBytes); err != nil {
		return err
	}

	if cfg.Output == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(cfg.Output, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", cfg.Output)
	return nil
}

// validateOutput checks the marshaled resume against the canonical
// schema. A missing or unloadable schema only warns; a genuine
// mismatch fails the run.
func validateOutput(jsonBytes []byte) error {
	if err := schemas.ValidateResume(string(jsonBytes)); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}

	return nil
}
