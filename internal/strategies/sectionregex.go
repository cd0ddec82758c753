package strategies

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/segment"
	"github.com/jonathan/resume-parser/internal/types"
)

// headerTemplate is one (pattern, extractor) pair. Templates are tried
// top-to-bottom and the first match wins, keeping the fallback order an
// explicit data structure instead of nested conditionals.
type headerTemplate struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) *types.ExperienceEntry
}

// experienceTemplates covers the common "Title - Company (Dates)" family
// of job header shapes, most specific first.
var experienceTemplates = []headerTemplate{
	{
		name: "title-dash-company-dates",
		re:   regexp.MustCompile(`^(.{2,80}?)\s+[-–—]\s+(.{2,100}?)\s*\((.+)\)$`),
		extract: func(m []string) *types.ExperienceEntry {
			if !dateTokenRe.MatchString(m[3]) {
				return nil
			}
			return buildEntry(m[1], m[2], "", m[3])
		},
	},
	{
		name: "company-pipe-title-pipe-dates",
		re:   regexp.MustCompile(`^(.{2,100}?)\s*\|\s*(.{2,80}?)\s*\|\s*(.+)$`),
		extract: func(m []string) *types.ExperienceEntry {
			if !dateTokenRe.MatchString(m[3]) {
				return nil
			}
			return buildEntry(m[2], m[1], "", m[3])
		},
	},
	{
		name: "title-at-company-dates",
		re:   regexp.MustCompile(`^(.{2,80}?)\s+at\s+(.{2,100}?)\s*\((.+)\)$`),
		extract: func(m []string) *types.ExperienceEntry {
			return buildEntry(m[1], m[2], "", m[3])
		},
	},
	{
		name: "title-dash-company",
		re:   regexp.MustCompile(`^(.{2,80}?)\s+[-–—]\s+(.{2,100})$`),
		extract: func(m []string) *types.ExperienceEntry {
			// Without dates on the line both sides must look like
			// identity text, not date material.
			if IsDateFragment(m[1]) || IsDateFragment(m[2]) {
				return nil
			}
			return buildEntry(m[1], m[2], "", "")
		},
	},
	{
		name: "comma-head-with-dates",
		re:   regexp.MustCompile(`^(.{2,120}?),?\s*\(?((?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4}\s*(?:-|–|—|to)\s*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4}|present|current|now))\)?$`),
		extract: func(m []string) *types.ExperienceEntry {
			entry := splitJobHead(strings.TrimRight(CollapseSpaces(m[1]), " ,"))
			entry.Dates = CollapseSpaces(m[2])
			return entry
		},
	},
}

// buildEntry applies the shared identity validator; a failing company
// candidate leaves the entry unattributed rather than polluted.
func buildEntry(title, company, location, dates string) *types.ExperienceEntry {
	entry := &types.ExperienceEntry{
		Title:    CollapseSpaces(title),
		Location: CollapseSpaces(location),
		Dates:    CollapseSpaces(dates),
	}
	if c := CollapseSpaces(company); ValidCompany(c) {
		entry.Company = c
	}
	if IsDateFragment(entry.Title) {
		entry.Title = ""
	}
	return entry
}

// matchExperienceTemplates tries every template in order on one line
func matchExperienceTemplates(line string) *types.ExperienceEntry {
	line = CollapseSpaces(line)
	for _, tpl := range experienceTemplates {
		m := tpl.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if entry := tpl.extract(m); entry != nil {
			return entry
		}
	}
	return nil
}

// SectionRegex parses each section through ordered regex templates.
// Compared to zero-merge it recognizes more header shapes (pipes,
// "at"-phrasing, dash separators without dates) at the cost of being
// more willing to guess.
type SectionRegex struct{}

// NewSectionRegex returns the section-regex strategy
func NewSectionRegex() *SectionRegex { return &SectionRegex{} }

// Name identifies the strategy in traces
func (s *SectionRegex) Name() string { return "section-regex" }

// Parse implements Strategy
func (s *SectionRegex) Parse(text string, layout *types.DocumentStructure) (resume *types.CanonicalResume) {
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
	resume.Experience = parseExperienceByTemplates(sections["experience"])
	resume.Education = ParseEducationLines(sections["education"])
	resume.Projects = ParseProjectLines(sections["projects"])
	resume.Certifications = ParseCertificationLines(sections["certifications"])

	return resume
}

// parseExperienceByTemplates collects bullets following a matched header
// until the next header-matching line or end of section.
func parseExperienceByTemplates(lines []string) []types.ExperienceEntry {
	var out []types.ExperienceEntry
	var current *types.ExperienceEntry

	flush := func() {
		if current != nil {
			out = append(out, *current)
		}
		current = nil
	}

	for i := 0; i < len(lines); i++ {
		line := CollapseSpaces(lines[i])
		if line == "" {
			continue
		}

		if entry := matchExperienceTemplates(line); entry != nil {
			flush()
			current = entry
			// A dateless header may carry its dates on the next line
			// ("Title - Company\nJan 2020 - Present").
			if current.Dates == "" && i+1 < len(lines) {
				next := CollapseSpaces(lines[i+1])
				if next != "" && IsDateFragment(next) {
					current.Dates = next
					i++
				}
			}
			continue
		}

		if current == nil {
			continue
		}
		bullet := CollapseSpaces(StripBullet(lines[i]))
		if bullet != "" && !IsHeadingLike(bullet) {
			current.Description = append(current.Description, bullet)
		}
	}
	flush()
	return out
}
