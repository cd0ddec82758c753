package strategies

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	maxSkillWords  = 4
	maxSkillLength = 50
)

// actionVerbs mark imperative phrases that belong in bullets, not in the
// skills list. Lower-cased first tokens are compared against this set.
var actionVerbs = map[string]bool{
	"design": true, "designed": true, "develop": true, "developed": true,
	"manage": true, "managed": true, "lead": true, "led": true,
	"create": true, "created": true, "build": true, "built": true,
	"implement": true, "implemented": true, "improve": true, "improved": true,
	"increase": true, "increased": true, "reduce": true, "reduced": true,
	"deliver": true, "delivered": true, "maintain": true, "maintained": true,
	"collaborate": true, "collaborated": true, "coordinate": true, "coordinated": true,
}

var articles = map[string]bool{"the": true, "a": true, "an": true}

// trailingConnectives flag a summary that probably got cut mid-sentence
// by the text extractor.
var trailingConnectives = map[string]bool{
	"of": true, "to": true, "in": true, "for": true, "with": true,
	"and": true, "or": true, "but": true, "the": true, "a": true,
	"an": true, "at": true, "on": true, "by": true, "from": true, "as": true,
}

// JoinSummary joins non-blank summary lines into the final summary
// string. Lines stay separate elements until this final join.
func JoinSummary(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = CollapseSpaces(StripBullet(line))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// SummaryLooksTruncated reports whether a summary ends in a preposition
// or conjunction. Diagnostic only: the pipeline surfaces it through the
// trace and never changes behavior on it.
func SummaryLooksTruncated(summary string) bool {
	summary = strings.TrimSpace(summary)
	summary = strings.TrimRight(summary, ".,;:")
	fields := strings.Fields(summary)
	if len(fields) == 0 {
		return false
	}
	return trailingConnectives[strings.ToLower(fields[len(fields)-1])]
}

// SplitSkills splits skill lines on commas, semicolons, and pipes. When
// splitting yields a single many-word item the line is re-split on
// whitespace, unless it reads like a sentence. Candidates that read
// like prose are rejected: more than four words, an imperative opening
// verb, or an article anywhere.
func SplitSkills(lines []string) []string {
	var out []string
	seen := map[string]bool{}

	for _, line := range lines {
		line = StripBullet(line)
		if line == "" {
			continue
		}
		// Drop "Skills:"-style lead-ins kept by permissive segmenters
		if idx := strings.Index(line, ":"); idx >= 0 && idx < 30 {
			line = line[idx+1:]
		}

		candidates := splitOnDelimiters(line)
		if len(candidates) == 1 {
			// Space-separated skill rows re-split; sentences stay whole
			// so validSkill rejects them.
			if fields := strings.Fields(candidates[0]); len(fields) > maxSkillWords && !proseLike(fields) {
				candidates = fields
			}
		}

		for _, c := range candidates {
			c = CollapseSpaces(c)
			if !validSkill(c) {
				continue
			}
			key := strings.ToLower(c)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}

// proseLike reports whether a run of whitespace-separated tokens reads
// like a sentence rather than a skills row: an imperative opening verb
// or any connective word anywhere.
func proseLike(fields []string) bool {
	if actionVerbs[strings.ToLower(fields[0])] {
		return true
	}
	for _, f := range fields {
		if trailingConnectives[strings.ToLower(f)] {
			return true
		}
	}
	return false
}

func splitOnDelimiters(line string) []string {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validSkill(s string) bool {
	if s == "" || len(s) > maxSkillLength {
		return false
	}
	words := strings.Fields(s)
	if len(words) == 0 || len(words) > maxSkillWords {
		return false
	}
	if actionVerbs[strings.ToLower(words[0])] {
		return false
	}
	for _, w := range words {
		if articles[strings.ToLower(w)] {
			return false
		}
	}
	return true
}

// ParseEducationLines parses "Degree, Institution (Year)" shaped lines
// with a permissive fallback for free-form education text.
func ParseEducationLines(lines []string) []types.EducationEntry {
	var out []types.EducationEntry
	for _, line := range lines {
		line = CollapseSpaces(StripBullet(line))
		if line == "" {
			continue
		}
		entry := parseEducationLine(line)
		if entry != nil {
			out = append(out, *entry)
			continue
		}
		// Free-form continuation lines attach location/GPA detail to the
		// previous entry rather than fabricating a new one.
		if len(out) > 0 {
			last := &out[len(out)-1]
			if m := gpaRe.FindStringSubmatch(line); m != nil && last.GPA == "" {
				last.GPA = m[1]
			} else if last.Location == "" && locationRe.MatchString(line) {
				last.Location = line
			}
		}
	}
	return out
}

func parseEducationLine(line string) *types.EducationEntry {
	entry := types.EducationEntry{}

	if m := gpaRe.FindStringSubmatch(line); m != nil {
		entry.GPA = m[1]
		line = CollapseSpaces(gpaRe.ReplaceAllString(line, ""))
		line = strings.Trim(line, " ,-|")
	}

	// "Degree, Institution (Year)"
	if open := strings.LastIndex(line, "("); open > 0 && strings.HasSuffix(line, ")") {
		inner := line[open+1 : len(line)-1]
		if yearRe.MatchString(inner) {
			entry.Year = yearRe.FindString(inner)
			head := CollapseSpaces(line[:open])
			head = strings.TrimRight(head, " ,")
			if comma := strings.LastIndex(head, ","); comma > 0 {
				entry.Degree = CollapseSpaces(head[:comma])
				entry.Institution = CollapseSpaces(head[comma+1:])
			} else {
				entry.Institution = head
			}
			if entry.Institution != "" && !ValidCompany(entry.Institution) {
				entry.Institution = ""
			}
			return &entry
		}
	}

	// "Degree, Institution, Year" or "Institution - Degree - Year"
	if year := yearRe.FindString(line); year != "" && hasDegreeKeyword(line) {
		entry.Year = year
		head := strings.Replace(line, year, "", 1)
		head = strings.Trim(CollapseSpaces(head), " ,-|")
		parts := splitOnSeparators(head)
		if len(parts) >= 2 {
			if hasDegreeKeyword(parts[0]) {
				entry.Degree = parts[0]
				entry.Institution = parts[1]
			} else {
				entry.Institution = parts[0]
				entry.Degree = parts[1]
			}
		} else {
			entry.Degree = head
		}
		if entry.Institution != "" && !ValidCompany(entry.Institution) {
			entry.Institution = ""
		}
		return &entry
	}

	if hasDegreeKeyword(line) {
		parts := splitOnSeparators(line)
		entry.Degree = parts[0]
		if len(parts) > 1 {
			if ValidCompany(parts[1]) {
				entry.Institution = parts[1]
			}
		}
		return &entry
	}

	return nil
}

var degreeKeywords = []string{
	"bachelor", "master", "phd", "ph.d", "doctorate", "associate", "diploma",
	"b.s", "b.a", "m.s", "m.a", "mba", "bs ", "ba ", "ms ", "ma ", "bsc", "msc", "b.sc", "m.sc", "b.e", "m.e",
}

func hasDegreeKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, k := range degreeKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func splitOnSeparators(s string) []string {
	for _, sep := range []string{" - ", " – ", " | ", ", "} {
		if strings.Contains(s, sep) {
			parts := strings.SplitN(s, sep, 2)
			return []string{CollapseSpaces(parts[0]), CollapseSpaces(parts[1])}
		}
	}
	return []string{CollapseSpaces(s)}
}

// ParseProjectLines treats short unbulleted lines as project names and
// following bullets as the project description. "Tech:"-prefixed lines
// populate technologies; bare URLs become the project link.
func ParseProjectLines(lines []string) []types.ProjectEntry {
	var out []types.ProjectEntry
	var current *types.ProjectEntry

	flush := func() {
		if current != nil && (current.Name != "" || current.Description != "") {
			out = append(out, *current)
		}
		current = nil
	}

	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		stripped := StripBullet(raw)
		isBullet := stripped != trimmed
		line := CollapseSpaces(stripped)

		lower := strings.ToLower(line)
		switch {
		case current != nil && (strings.HasPrefix(lower, "tech:") || strings.HasPrefix(lower, "technologies:") || strings.HasPrefix(lower, "stack:")):
			idx := strings.Index(line, ":")
			current.Technologies = append(current.Technologies, splitOnDelimiters(line[idx+1:])...)
		case current != nil && urlRe.MatchString(line) && len(strings.Fields(line)) == 1:
			current.Link = strings.TrimRight(line, ".,;")
		case !isBullet && projectHeaderShaped(line) && !IsDateFragment(line):
			flush()
			name := line
			// "Name - short blurb" headers carry both slots
			if parts := strings.SplitN(line, " - ", 2); len(parts) == 2 {
				name = CollapseSpaces(parts[0])
				current = &types.ProjectEntry{Name: name, Description: CollapseSpaces(parts[1])}
				continue
			}
			current = &types.ProjectEntry{Name: name}
		case current != nil:
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += " " + line
			}
		default:
			current = &types.ProjectEntry{Description: line}
		}
	}
	flush()
	return out
}

// projectHeaderShaped accepts short lines, or "Name - blurb" lines whose
// name side is short; the blurb may run long.
func projectHeaderShaped(line string) bool {
	head := line
	if parts := strings.SplitN(line, " - ", 2); len(parts) == 2 {
		head = parts[0]
	}
	return len(strings.Fields(head)) <= 6
}

// ParseCertificationLines maps each non-blank line to one certification.
// "Name - Issuer (Date)" shapes populate the structured fields; anything
// else stays a bare name.
func ParseCertificationLines(lines []string) []types.Certification {
	var out []types.Certification
	for _, raw := range lines {
		line := CollapseSpaces(StripBullet(raw))
		if line == "" {
			continue
		}
		cert := types.Certification{Name: line}
		if open := strings.LastIndex(line, "("); open > 0 && strings.HasSuffix(line, ")") {
			inner := line[open+1 : len(line)-1]
			if dateTokenRe.MatchString(inner) {
				cert.Date = inner
				cert.Name = CollapseSpaces(line[:open])
			}
		}
		if parts := strings.SplitN(cert.Name, " - ", 2); len(parts) == 2 && ValidCompany(parts[1]) {
			cert.Name = CollapseSpaces(parts[0])
			cert.Issuer = CollapseSpaces(parts[1])
		}
		out = append(out, cert)
	}
	return out
}

// IsHeadingLike reports whether text is a literal section name rather
// than real content. The merge engine excludes such entries from its
// meaningful-entry counts.
func IsHeadingLike(text string) bool {
	normalized := strings.ToLower(CollapseSpaces(text))
	normalized = strings.TrimSuffix(normalized, ":")
	switch normalized {
	case "summary", "experience", "work experience", "professional experience",
		"skills", "technical skills", "education", "projects",
		"certifications", "awards", "publications", "languages", "community":
		return true
	}
	return false
}
