// Package segment splits normalized resume text into named line groups
// before any field-level parsing happens. Two policies exist: a static
// alias-table segmenter and a dynamic ALL-CAPS discovery segmenter;
// parser strategies choose per their own bias.
package segment

import (
	"regexp"
	"strings"
)

// SectionHeader is the implicit section open before any heading matches.
// Contact details usually live here.
const SectionHeader = "header"

const (
	// maxHeaderLength rejects sentence-like lines that merely contain a keyword
	maxHeaderLength = 60
	// maxHeaderWords rejects prose lines from being treated as headings
	maxHeaderWords = 5
)

// sectionAliases maps canonical section names to the heading spellings
// seen in the wild. Comparison is against the normalized, upper-cased line.
var sectionAliases = map[string][]string{
	"summary":        {"SUMMARY", "PROFESSIONAL SUMMARY", "CAREER SUMMARY", "PROFILE", "OBJECTIVE", "ABOUT", "ABOUT ME"},
	"experience":     {"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE", "EMPLOYMENT", "EMPLOYMENT HISTORY", "WORK HISTORY", "CAREER HISTORY", "RELEVANT EXPERIENCE"},
	"skills":         {"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES", "COMPETENCIES", "TECHNOLOGIES", "TOOLS", "AREAS OF EXPERTISE"},
	"education":      {"EDUCATION", "ACADEMIC BACKGROUND", "QUALIFICATIONS", "DEGREES", "EDUCATION & TRAINING"},
	"projects":       {"PROJECTS", "PERSONAL PROJECTS", "SELECTED PROJECTS", "PORTFOLIO", "KEY PROJECTS"},
	"certifications": {"CERTIFICATIONS", "CERTIFICATES", "LICENSES", "LICENSES & CERTIFICATIONS", "CERTIFICATIONS & LICENSES"},
	"awards":         {"AWARDS", "HONORS", "HONORS & AWARDS", "ACHIEVEMENTS", "RECOGNITION"},
	"publications":   {"PUBLICATIONS", "PAPERS", "RESEARCH"},
	"languages":      {"LANGUAGES"},
	"community":      {"COMMUNITY", "VOLUNTEERING", "VOLUNTEER EXPERIENCE", "COMMUNITY INVOLVEMENT", "LEADERSHIP"},
}

// bulletMarkers are stripped before a line is tested against the alias table
var bulletMarkers = []string{"•", "·", "▪", "◦", "-", "*", "#"}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Segment splits lines into a mapping of canonical section name to the
// lines that belong to it. Blank lines are preserved as empty strings so
// later bullet grouping stays reversible. Lines before the first
// recognized heading accumulate under "header".
func Segment(lines []string) map[string][]string {
	sections := make(map[string][]string)
	current := SectionHeader

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			sections[current] = append(sections[current], "")
			continue
		}

		if name, ok := matchAlias(line); ok {
			current = name
			if _, seen := sections[current]; !seen {
				sections[current] = []string{}
			}
			continue
		}

		sections[current] = append(sections[current], line)
	}

	return sections
}

// NormalizeHeading strips bullet and markdown markers, collapses
// whitespace, and upper-cases the line for alias comparison.
func NormalizeHeading(line string) string {
	s := strings.TrimSpace(line)
	for _, m := range bulletMarkers {
		s = strings.TrimPrefix(s, m)
	}
	// Markdown headings may stack markers ("## ", "**bold**")
	s = strings.TrimLeft(s, "#*")
	s = strings.TrimRight(s, "*")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ":")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.ToUpper(s)
}

// matchAlias reports the canonical section a line opens, if any. A line
// is accepted as a heading only when it is short enough, has few enough
// words, and matches an alias exactly or as a prefix.
func matchAlias(line string) (string, bool) {
	normalized := NormalizeHeading(line)
	if !isHeaderShaped(normalized) {
		return "", false
	}

	for name, aliases := range sectionAliases {
		for _, alias := range aliases {
			if normalized == alias || strings.HasPrefix(normalized, alias+" ") || strings.HasPrefix(normalized, alias+":") {
				return name, true
			}
		}
	}
	return "", false
}

// isHeaderShaped applies the length and word-count gates
func isHeaderShaped(normalized string) bool {
	if normalized == "" || len(normalized) > maxHeaderLength {
		return false
	}
	return len(strings.Fields(normalized)) <= maxHeaderWords
}

// CanonicalSections returns the section names the static alias table
// knows about, for callers that iterate known sections in a fixed order.
func CanonicalSections() []string {
	return []string{"summary", "experience", "skills", "education", "projects", "certifications", "awards", "publications", "languages", "community"}
}
