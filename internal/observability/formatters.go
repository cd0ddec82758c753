// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResume(resume *types.CanonicalResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.PersonalInfo.Email))
	if resume.PersonalInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", resume.PersonalInfo.Location))
	}
	sb.WriteString("\n")

	if resume.Summary != "" {
		summary := resume.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Summary:  %s\n\n", summary))
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.Title))
			if entry.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", entry.Company))
			}
			if entry.Dates != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Dates))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(resume.Education), 3)
		for i := 0; i < count; i++ {
			entry := resume.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.Degree))
			if entry.Institution != "" {
				sb.WriteString(fmt.Sprintf(", %s", entry.Institution))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		skills := strings.Join(resume.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidates outputs each strategy's richness score and sparsity verdict.
func (p *Printer) PrintCandidates(candidates []pipeline.CandidateReport) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strategies run: %d\n\n", len(candidates)))

	for i, c := range candidates {
		verdict := "ok"
		if c.Sparse {
			verdict = "sparse"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, c.Strategy))
		sb.WriteString(fmt.Sprintf("    Score: %d  (%s)\n", c.Score, verdict))
		sb.WriteString(fmt.Sprintf("    Exp: %d  Bullets: %d  Edu: %d  Skills: %d\n",
			c.Stats.ExperienceCount, c.Stats.BulletCount, c.Stats.EducationCount, c.Stats.SkillsCount))
		if i < len(candidates)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STRATEGY CANDIDATES", sb.String())
}

// PrintScore outputs the final richness stats for the merged resume.
func (p *Printer) PrintScore(result *pipeline.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run ID:   %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Score:    %d\n", result.Score))
	sb.WriteString(fmt.Sprintf("Sparse:   %t\n\n", result.Sparse))
	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", result.Stats.ExperienceCount))
	sb.WriteString(fmt.Sprintf("Bullet points:       %d\n", result.Stats.BulletCount))
	sb.WriteString(fmt.Sprintf("Education entries:   %d\n", result.Stats.EducationCount))
	sb.WriteString(fmt.Sprintf("Projects:            %d\n", result.Stats.ProjectsCount))
	sb.WriteString(fmt.Sprintf("Certifications:      %d\n", result.Stats.CertificationsCount))
	sb.WriteString(fmt.Sprintf("Skills:              %d\n", result.Stats.SkillsCount))
	sb.WriteString(fmt.Sprintf("Summary length:      %d", result.Stats.SummaryLength))

	for _, note := range result.Notes {
		sb.WriteString(fmt.Sprintf("\n\nNote: %s", note))
	}

	p.printBox("EXTRACTION RESULT", sb.String())
}

// PrintProgress writes a single progress line for one pipeline step.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(event pipeline.ProgressEvent) {
	fmt.Fprintf(p.out, "[%s] %s\n", event.Step, event.Message)
}
