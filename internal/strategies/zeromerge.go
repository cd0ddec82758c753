package strategies

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/segment"
	"github.com/jonathan/resume-parser/internal/types"
)

// ZeroMerge is the most conservative strategy: one output item per input
// line, lines are never concatenated. Bullets survive verbatim, so a
// document with no recognizable job headers still yields every line as a
// separate description bullet.
type ZeroMerge struct{}

// NewZeroMerge returns the zero-merge strategy
func NewZeroMerge() *ZeroMerge { return &ZeroMerge{} }

// Name identifies the strategy in traces
func (z *ZeroMerge) Name() string { return "zero-merge" }

// Parse implements Strategy
func (z *ZeroMerge) Parse(text string, layout *types.DocumentStructure) (resume *types.CanonicalResume) {
	resume = types.NewCanonicalResume()
	defer func() {
		// Malformed input never aborts a strategy; the partial record
		// built so far is still rankable.
		_ = recover()
	}()

	applyLayout(resume, layout)
	if strings.TrimSpace(text) == "" {
		return resume
	}

	sections := segment.Segment(SplitLines(text))

	resume.PersonalInfo = ExtractContactInfo(sections[segment.SectionHeader])
	resume.Summary = JoinSummary(sections["summary"])
	resume.Skills = SplitSkills(sections["skills"])
	resume.Experience = z.parseExperience(sections["experience"])
	resume.Education = ParseEducationLines(sections["education"])
	resume.Projects = ParseProjectLines(sections["projects"])
	resume.Certifications = ParseCertificationLines(sections["certifications"])
	for _, extra := range []string{"awards", "publications", "languages", "community"} {
		resume.Certifications = append(resume.Certifications, ParseCertificationLines(sections[extra])...)
	}

	return resume
}

// parseExperience classifies each line as a job header or a bullet.
// Non-header lines under an open job become bullets verbatim; they are
// never merged with neighbors or folded into identity slots.
func (z *ZeroMerge) parseExperience(lines []string) []types.ExperienceEntry {
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

		if entry := parseJobHeader(line); entry != nil {
			flush()
			current = entry
			continue
		}

		bullet := CollapseSpaces(StripBullet(raw))
		if bullet == "" || IsHeadingLike(bullet) {
			continue
		}
		if current == nil {
			// No recognizable header yet: open an unattributed entry so
			// bullets still count one-per-line.
			current = &types.ExperienceEntry{}
		}
		current.Description = append(current.Description, bullet)
	}
	flush()
	return out
}

// parseJobHeader tries the three header shapes in order:
//
//	Title, Company, Location (Dates)
//	Company (Dates)
//	Company, Jan 2020 – Present
//
// Candidate company values that are themselves date fragments are
// rejected; the entry then falls back to an unattributed one instead of
// storing garbage in the company slot.
func parseJobHeader(line string) *types.ExperienceEntry {
	// Shape 1 and 2: trailing parenthetical dates
	if open := strings.LastIndex(line, "("); open > 0 && strings.HasSuffix(line, ")") {
		inner := strings.TrimSpace(line[open+1 : len(line)-1])
		if dateRangeRe.MatchString(inner) || dateTokenRe.MatchString(inner) {
			head := strings.TrimRight(CollapseSpaces(line[:open]), " ,")
			entry := splitJobHead(head)
			entry.Dates = inner
			return entry
		}
	}

	// Shape 3: embedded date range after a comma
	if m := dateRangeRe.FindStringIndex(line); m != nil {
		head := strings.TrimRight(CollapseSpaces(line[:m[0]]), " ,-–|")
		if head != "" {
			entry := splitJobHead(head)
			entry.Dates = CollapseSpaces(line[m[0]:m[1]])
			return entry
		}
	}

	return nil
}

// splitJobHead distributes "Title, Company, Location" style heads into
// the identity slots, validating each company candidate.
func splitJobHead(head string) *types.ExperienceEntry {
	entry := &types.ExperienceEntry{}
	parts := strings.Split(head, ",")
	for i := range parts {
		parts[i] = CollapseSpaces(parts[i])
	}

	switch len(parts) {
	case 1:
		// Single segment: prefer the company slot unless it fails the
		// identity validator, in which case treat it as the title.
		if ValidCompany(parts[0]) {
			entry.Company = parts[0]
		} else if !IsDateFragment(parts[0]) {
			entry.Title = parts[0]
		}
	case 2:
		entry.Title = parts[0]
		if ValidCompany(parts[1]) {
			entry.Company = parts[1]
		}
	default:
		entry.Title = parts[0]
		if ValidCompany(parts[1]) {
			entry.Company = parts[1]
		}
		loc := CollapseSpaces(strings.Join(parts[2:], ", "))
		if !IsDateFragment(loc) {
			entry.Location = loc
		}
	}
	return entry
}
