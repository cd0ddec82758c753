package strategies

import (
	"regexp"
	"strings"
)

// Shared regular expressions used across parser strategies. All are
// anchored or bounded; none backtrack unboundedly, so parse time stays
// proportional to input length.
var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9_/.-]+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_/.-]+`)
	urlRe      = regexp.MustCompile(`(?i)\bhttps?://[^\s)>\]]+`)

	// monthRe matches a month token, optionally abbreviated
	monthRe = regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?$`)

	// dateRangeRe matches "Jan 2020 - Present", "2018 – 2022", "03/2019 - 11/2021"
	dateRangeRe = regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4})\s*(?:-|–|—|to)\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}|present|current|now)`)

	// dateTokenRe matches any standalone date-ish token
	dateTokenRe = regexp.MustCompile(`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|(?:19|20)\d{2}|present|current|now)\b`)

	// yearRe matches a bare four-digit year
	yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// gpaRe captures a GPA value from education lines
	gpaRe = regexp.MustCompile(`(?i)\bgpa[:\s]+([0-4](?:\.\d{1,2})?(?:\s*/\s*[0-4](?:\.\d)?)?)`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

const (
	minCompanyLength = 2
	maxCompanyLength = 100
)

// IsDateFragment reports whether a string is itself date material (a
// bare month token, year, date range, or "present") and therefore can
// never name a company or institution.
func IsDateFragment(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if monthRe.MatchString(s) {
		return true
	}
	lower := strings.ToLower(s)
	if lower == "present" || lower == "current" || lower == "now" {
		return true
	}
	// A string whose every token is date material is a date fragment,
	// e.g. "Oct 2022" or "Jan 2020 - Present".
	return looksAllDate(s)
}

// looksAllDate is true when removing all date tokens and punctuation from
// the string leaves nothing behind.
func looksAllDate(s string) bool {
	remainder := dateTokenRe.ReplaceAllString(s, "")
	remainder = strings.Map(func(r rune) rune {
		switch r {
		case '-', '–', '—', '(', ')', ',', '.', '/', ' ', '\t':
			return -1
		}
		return r
	}, remainder)
	// Parenthetical qualifiers like "(Contract)" still disqualify the
	// string when a date token is present alongside them.
	if remainder == "" && dateTokenRe.MatchString(s) {
		return true
	}
	if dateTokenRe.MatchString(s) && len(remainder) <= len("contract") {
		lower := strings.ToLower(remainder)
		switch lower {
		case "contract", "intern", "parttime", "fulltime", "remote":
			return true
		}
	}
	return false
}

// ValidCompany is the shared identity validator: a parsed company value
// shorter than 2 runes, longer than 100, or matching a bare date/month
// pattern is rejected. Entries whose company fails validation fall back
// to an unattributed entry rather than polluting the company field.
func ValidCompany(s string) bool {
	s = strings.TrimSpace(s)
	if len([]rune(s)) < minCompanyLength || len([]rune(s)) > maxCompanyLength {
		return false
	}
	return !IsDateFragment(s)
}

// StripBullet removes a leading bullet or list marker from a line
func StripBullet(line string) string {
	s := strings.TrimSpace(line)
	for _, marker := range []string{"•", "·", "▪", "◦", "●", "-", "*", "+"} {
		if strings.HasPrefix(s, marker) {
			s = strings.TrimSpace(strings.TrimPrefix(s, marker))
			break
		}
	}
	return s
}

// CollapseSpaces normalizes internal whitespace to single spaces
func CollapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
