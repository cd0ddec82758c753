package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a canonical resume JSON file against the schema",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to canonical resume JSON file (required)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateInputFile == "" {
		return fmt.Errorf("input file is required (use --in)")
	}

	schemaPath := schemas.ResolveSchemaPath(schemas.CanonicalResumeSchema)
	if schemaPath == "" {
		return fmt.Errorf("schema file not found: %s", schemas.CanonicalResumeSchema)
	}

	if err := schemas.ValidateJSON(schemaPath, validateInputFile); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", validateInputFile)
	return nil
}
