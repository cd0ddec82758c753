package strategies

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/segment"
	"github.com/jonathan/resume-parser/internal/types"
)

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DynamicSection carries no fixed alias table. Section boundaries are
// discovered from heading shape alone (short ALL-CAPS lines with no
// digits or '@'), then strategy-agnostic sub-parsers run per discovered
// section with synonyms mapped back to canonical field names. The only
// strategy with a chance on documents whose headings match nothing the
// static table knows.
type DynamicSection struct{}

// NewDynamicSection returns the dynamic-section strategy
func NewDynamicSection() *DynamicSection { return &DynamicSection{} }

// Name identifies the strategy in traces
func (d *DynamicSection) Name() string { return "dynamic-section" }

// Parse implements Strategy
func (d *DynamicSection) Parse(text string, layout *types.DocumentStructure) (resume *types.CanonicalResume) {
	resume = types.NewCanonicalResume()
	defer func() { _ = recover() }()

	applyLayout(resume, layout)
	if strings.TrimSpace(text) == "" {
		return resume
	}

	sections := segment.SegmentDynamic(SplitLines(text))

	resume.PersonalInfo = ExtractContactInfo(sections[segment.SectionHeader])

	// Canonical sections first in fixed order, discovered extras after,
	// sorted: map iteration order must never leak into the output.
	names := append([]string(nil), segment.CanonicalSections()...)
	var extras []string
	for name := range sections {
		if name == segment.SectionHeader || containsString(names, name) {
			continue
		}
		extras = append(extras, name)
	}
	sort.Strings(extras)
	names = append(names, extras...)

	for _, name := range names {
		lines := sections[name]
		if len(lines) == 0 {
			continue
		}
		switch name {
		case "summary":
			if resume.Summary == "" {
				resume.Summary = JoinSummary(lines)
			}
		case "skills":
			resume.Skills = append(resume.Skills, SplitSkills(lines)...)
		case "experience":
			resume.Experience = append(resume.Experience, parseExperienceByTemplates(lines)...)
		case "education":
			resume.Education = append(resume.Education, ParseEducationLines(lines)...)
		case "projects":
			resume.Projects = append(resume.Projects, ParseProjectLines(lines)...)
		case "certifications", "awards", "publications", "languages", "community":
			resume.Certifications = append(resume.Certifications, ParseCertificationLines(lines)...)
		default:
			// Discovered sections with no canonical mapping still feed
			// the candidate: date-bearing content reads like experience,
			// anything else augments the summary so no text is lost.
			if sectionLooksLikeExperience(lines) {
				resume.Experience = append(resume.Experience, parseExperienceByTemplates(lines)...)
			} else if resume.Summary == "" {
				resume.Summary = JoinSummary(lines)
			}
		}
	}

	resume.Skills = dedupeSkills(resume.Skills)
	return resume
}

// sectionLooksLikeExperience reports whether enough lines carry date
// ranges for the section to read as a work history.
func sectionLooksLikeExperience(lines []string) bool {
	ranges := 0
	for _, line := range lines {
		if dateRangeRe.MatchString(line) {
			ranges++
		}
	}
	return ranges >= 1
}

func dedupeSkills(skills []string) []string {
	seen := map[string]bool{}
	out := skills[:0]
	for _, s := range skills {
		key := strings.ToLower(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
