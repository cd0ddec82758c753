package strategies

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-parser/internal/types"
)

// validate is shared across calls; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

var nameWordRe = regexp.MustCompile(`^[A-Za-z'.-]+$`)

const maxNameSearchLines = 5

// ExtractContactInfo scans header-section lines for contact details.
// Extracted emails and URLs are admitted only when they pass field
// validation, so garbage near an '@' never lands in personal_info.
func ExtractContactInfo(lines []string) types.PersonalInfo {
	info := types.PersonalInfo{}
	joined := strings.Join(lines, "\n")

	if email := emailRe.FindString(joined); email != "" {
		if err := validate.Var(email, "email"); err == nil {
			info.Email = email
		}
	}
	if phone := phoneRe.FindString(joined); phone != "" {
		info.Phone = normalizePhone(phone)
	}
	if m := linkedinRe.FindString(joined); m != "" {
		info.LinkedIn = m
	}
	if m := githubRe.FindString(joined); m != "" {
		info.GitHub = m
	}

	// Remaining URLs: first non-profile URL becomes the website, the
	// rest are collected as extra links.
	seen := map[string]bool{}
	for _, raw := range urlRe.FindAllString(joined, -1) {
		u := strings.TrimRight(raw, ".,;")
		lower := strings.ToLower(u)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		if err := validate.Var(u, "url"); err != nil {
			continue
		}
		if seen[lower] {
			continue
		}
		seen[lower] = true
		if info.Website == "" {
			info.Website = u
		} else {
			info.Links = append(info.Links, u)
		}
	}

	info.Name = extractName(lines)
	info.Location = extractLocation(lines)
	return info
}

// extractName looks for a name-shaped line near the top of the document
func extractName(lines []string) string {
	for i, line := range lines {
		if i >= maxNameSearchLines {
			break
		}
		line = CollapseSpaces(line)
		if line == "" || strings.Contains(line, "@") || phoneRe.MatchString(line) || urlRe.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		isName := true
		for _, w := range words {
			if len(w) < 2 || !nameWordRe.MatchString(w) {
				isName = false
				break
			}
		}
		if isName {
			return line
		}
	}
	return ""
}

var locationRe = regexp.MustCompile(`^([A-Z][A-Za-z .'-]+,\s*[A-Z]{2}(?:\s+\d{5})?|[A-Z][A-Za-z .'-]+,\s*[A-Z][A-Za-z .'-]+)$`)

// extractLocation accepts "City, ST", "City, ST 12345", or "City, Country"
// shaped lines from the header.
func extractLocation(lines []string) string {
	for i, line := range lines {
		if i >= maxNameSearchLines {
			break
		}
		line = CollapseSpaces(line)
		if line == "" || strings.Contains(line, "@") || IsDateFragment(line) {
			continue
		}
		if locationRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// normalizePhone standardizes US-style numbers to (XXX) XXX-XXXX
func normalizePhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	}
	return phone
}
