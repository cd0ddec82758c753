package segment

import (
	"regexp"
	"strings"
)

// Patterns that disqualify a short ALL-CAPS line from being a discovered
// heading: dates and contact lines shout too.
var (
	dynamicDateRe  = regexp.MustCompile(`(?i)\b(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)[A-Z]*\b|\b(19|20)\d{2}\b`)
	dynamicDigitRe = regexp.MustCompile(`\d`)
)

// sectionSynonyms maps discovered heading words back to canonical field
// names so sub-parsers can be reused across naming conventions.
var sectionSynonyms = map[string]string{
	"work":            "experience",
	"employment":      "experience",
	"career":          "experience",
	"history":         "experience",
	"expertise":       "skills",
	"competencies":    "skills",
	"technologies":    "skills",
	"stack":           "skills",
	"academics":       "education",
	"studies":         "education",
	"portfolio":       "projects",
	"licenses":        "certifications",
	"credentials":     "certifications",
	"honors":          "awards",
	"volunteering":    "community",
	"volunteer":       "community",
	"objective":       "summary",
	"profile":         "summary",
	"about":           "summary",
}

// SegmentDynamic discovers section boundaries without a fixed alias list:
// any short ALL-CAPS line containing no digits or '@' opens a new section
// named from the line text. Documents with unconventional headings that
// the static table misses still get segmented.
func SegmentDynamic(lines []string) map[string][]string {
	sections := make(map[string][]string)
	current := SectionHeader

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			sections[current] = append(sections[current], "")
			continue
		}

		if name, ok := discoverHeading(line); ok {
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

// discoverHeading applies the ALL-CAPS heuristic and maps the heading
// text to a canonical name where a synonym is known. Unknown headings
// keep their own (lower-cased) name so no text is lost.
func discoverHeading(line string) (string, bool) {
	normalized := NormalizeHeading(line)
	if !isHeaderShaped(normalized) {
		return "", false
	}
	trimmed := strings.TrimSpace(line)
	if strings.Contains(trimmed, "@") || dynamicDigitRe.MatchString(trimmed) {
		return "", false
	}
	// The raw line must already shout; NormalizeHeading upper-cases
	// everything, so compare against the original text.
	letters := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, trimmed)
	if letters != "" {
		return "", false
	}
	if !strings.ContainsAny(trimmed, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return "", false
	}
	if dynamicDateRe.MatchString(normalized) {
		return "", false
	}

	return CanonicalSectionName(normalized), true
}

// CanonicalSectionName maps a discovered heading to a canonical section
// name via the static alias table first, then word synonyms.
func CanonicalSectionName(heading string) string {
	normalized := NormalizeHeading(heading)
	for name, aliases := range sectionAliases {
		for _, alias := range aliases {
			if normalized == alias {
				return name
			}
		}
	}
	for _, word := range strings.Fields(strings.ToLower(normalized)) {
		if canonical, ok := sectionSynonyms[word]; ok {
			return canonical
		}
		// A synonym table can't list every spelling; direct canonical
		// words still map to themselves.
		for name := range sectionAliases {
			if word == name {
				return name
			}
		}
	}
	return strings.ToLower(normalized)
}
