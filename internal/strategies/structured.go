package strategies

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/segment"
	"github.com/jonathan/resume-parser/internal/types"
)

// StructureAware consumes layout metadata in addition to text. Per
// section it runs ordered fallback extractors (standard dash format,
// company-first format, pipe-separated format, then a naive line-based
// heuristic), stopping at the first one that yields at least one entry.
type StructureAware struct{}

// NewStructureAware returns the structure-aware strategy
func NewStructureAware() *StructureAware { return &StructureAware{} }

// Name identifies the strategy in traces
func (s *StructureAware) Name() string { return "structure-aware" }

// sectionExtractor is one fallback in the per-section priority list
type sectionExtractor struct {
	name    string
	extract func(lines []string) []types.ExperienceEntry
}

var (
	dashHeaderRe      = regexp.MustCompile(`^(.{2,80}?)\s+[-–—]\s+(.{2,100}?)(?:\s*\((.+)\))?$`)
	companyFirstRe    = regexp.MustCompile(`^(.{2,100}?),\s*(.{2,80}?)\s*\((.+)\)$`)
	pipeSeparatedRe   = regexp.MustCompile(`^(.{2,100}?)\s*\|\s*(.{2,80}?)(?:\s*\|\s*(.+))?$`)
	naiveTitleShapeRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9 /&.,'()-]{4,80}$`)
)

// experienceFallbacks is the fixed fallback order for the experience
// section.
var experienceFallbacks = []sectionExtractor{
	{name: "standard-dash", extract: extractDashFormat},
	{name: "company-first", extract: extractCompanyFirst},
	{name: "pipe-separated", extract: extractPipeSeparated},
	{name: "naive-lines", extract: extractNaiveLines},
}

// Parse implements Strategy
func (s *StructureAware) Parse(text string, layout *types.DocumentStructure) (resume *types.CanonicalResume) {
	resume = types.NewCanonicalResume()
	defer func() { _ = recover() }()

	applyLayout(resume, layout)
	if strings.TrimSpace(text) == "" {
		return resume
	}

	sections := segment.Segment(SplitLines(text))

	resume.PersonalInfo = ExtractContactInfo(sections[segment.SectionHeader])
	resume.Summary = JoinSummary(sections["summary"])
	resume.Skills = SplitSkills(sections["skills"])

	for _, fallback := range experienceFallbacks {
		if entries := fallback.extract(sections["experience"]); len(entries) > 0 {
			resume.Experience = entries
			break
		}
	}

	resume.Education = ParseEducationLines(sections["education"])
	resume.Projects = ParseProjectLines(sections["projects"])
	resume.Certifications = ParseCertificationLines(sections["certifications"])

	return resume
}

// extractDashFormat handles "Title - Company (Dates)" and the dateless
// "Title - Company" variant.
func extractDashFormat(lines []string) []types.ExperienceEntry {
	return collectEntries(lines, func(line string) *types.ExperienceEntry {
		m := dashHeaderRe.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		if m[3] == "" && (IsDateFragment(m[1]) || IsDateFragment(m[2])) {
			return nil
		}
		if m[3] != "" && !dateTokenRe.MatchString(m[3]) {
			return nil
		}
		return buildEntry(m[1], m[2], "", m[3])
	})
}

// extractCompanyFirst handles "Company, Title (Dates)" resumes that put
// the employer before the role.
func extractCompanyFirst(lines []string) []types.ExperienceEntry {
	return collectEntries(lines, func(line string) *types.ExperienceEntry {
		m := companyFirstRe.FindStringSubmatch(line)
		if m == nil || !dateTokenRe.MatchString(m[3]) {
			return nil
		}
		// Company-first only makes sense when the first segment passes
		// the identity validator; otherwise the dash family owns it.
		if !ValidCompany(CollapseSpaces(m[1])) {
			return nil
		}
		return buildEntry(m[2], m[1], "", m[3])
	})
}

// extractPipeSeparated handles "Company | Title | Dates" rows
func extractPipeSeparated(lines []string) []types.ExperienceEntry {
	return collectEntries(lines, func(line string) *types.ExperienceEntry {
		m := pipeSeparatedRe.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		if m[3] != "" && !dateTokenRe.MatchString(m[3]) {
			return nil
		}
		return buildEntry(m[2], m[1], "", m[3])
	})
}

// extractNaiveLines is the last resort: short title-shaped lines open
// entries, everything else becomes bullets. It always produces at most
// a rough sketch, but a sketch still outranks nothing.
func extractNaiveLines(lines []string) []types.ExperienceEntry {
	return collectEntries(lines, func(line string) *types.ExperienceEntry {
		if len(strings.Fields(line)) > 8 || !naiveTitleShapeRe.MatchString(line) {
			return nil
		}
		if IsDateFragment(line) || IsHeadingLike(line) {
			return nil
		}
		// Bulleted lines are content, not headers
		if StripBullet(line) != line {
			return nil
		}
		return &types.ExperienceEntry{Title: line}
	})
}

// collectEntries runs a header matcher over the lines, attaching
// non-header lines to the open entry as bullets.
func collectEntries(lines []string, match func(string) *types.ExperienceEntry) []types.ExperienceEntry {
	var out []types.ExperienceEntry
	var current *types.ExperienceEntry

	flush := func() {
		if current != nil {
			out = append(out, *current)
		}
		current = nil
	}

	for _, raw := range lines {
		line := CollapseSpaces(raw)
		if line == "" {
			continue
		}
		if entry := match(line); entry != nil {
			flush()
			current = entry
			continue
		}
		if current == nil {
			continue
		}
		bullet := CollapseSpaces(StripBullet(raw))
		if bullet != "" && !IsHeadingLike(bullet) {
			current.Description = append(current.Description, bullet)
		}
	}
	flush()
	return out
}
