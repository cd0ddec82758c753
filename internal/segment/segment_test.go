package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_BasicSections(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"jane@example.com",
		"",
		"SUMMARY",
		"Backend engineer.",
		"",
		"EXPERIENCE",
		"Software Engineer, Acme Corp (2020 - Present)",
		"- Built the billing pipeline",
		"",
		"SKILLS",
		"Go, SQL, Docker",
	}

	sections := Segment(lines)

	assert.Equal(t, []string{"Jane Doe", "jane@example.com", ""}, sections[SectionHeader])
	assert.Equal(t, []string{"Backend engineer.", ""}, sections["summary"])
	assert.Equal(t, []string{"Software Engineer, Acme Corp (2020 - Present)", "- Built the billing pipeline", ""}, sections["experience"])
	assert.Equal(t, []string{"Go, SQL, Docker"}, sections["skills"])
}

func TestSegment_HeadingAliases(t *testing.T) {
	tests := []struct {
		heading string
		section string
	}{
		{"WORK EXPERIENCE", "experience"},
		{"Professional Experience", "experience"},
		{"EMPLOYMENT HISTORY", "experience"},
		{"Technical Skills", "skills"},
		{"CORE COMPETENCIES", "skills"},
		{"PROFESSIONAL SUMMARY", "summary"},
		{"Objective", "summary"},
		{"ACADEMIC BACKGROUND", "education"},
		{"Licenses & Certifications", "certifications"},
		{"HONORS & AWARDS", "awards"},
		{"VOLUNTEER EXPERIENCE", "community"},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			sections := Segment([]string{tt.heading, "content line"})
			assert.Equal(t, []string{"content line"}, sections[tt.section])
		})
	}
}

func TestSegment_DecoratedHeadings(t *testing.T) {
	tests := []struct {
		name    string
		heading string
	}{
		{"markdown", "## Experience"},
		{"bullet", "• EXPERIENCE"},
		{"trailing colon", "Experience:"},
		{"extra whitespace", "  WORK   EXPERIENCE  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Segment([]string{tt.heading, "content line"})
			assert.Equal(t, []string{"content line"}, sections["experience"])
		})
	}
}

func TestSegment_ProseWithKeywordIsNotHeading(t *testing.T) {
	lines := []string{
		"SUMMARY",
		"I have ten years of professional experience building distributed systems at scale.",
	}

	sections := Segment(lines)

	require.Contains(t, sections, "summary")
	assert.Len(t, sections["summary"], 1)
	assert.NotContains(t, sections, "experience")
}

func TestSegment_ContentBeforeFirstHeadingIsHeader(t *testing.T) {
	sections := Segment([]string{"Jane Doe", "Portland, OR"})

	assert.Equal(t, []string{"Jane Doe", "Portland, OR"}, sections[SectionHeader])
}

func TestSegment_BlankLinesPreserved(t *testing.T) {
	sections := Segment([]string{"EXPERIENCE", "Engineer", "", "Another"})

	assert.Equal(t, []string{"Engineer", "", "Another"}, sections["experience"])
}

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Experience:", "EXPERIENCE"},
		{"## Skills", "SKILLS"},
		{"• education", "EDUCATION"},
		{"  Work   History ", "WORK HISTORY"},
		{"**Projects**", "PROJECTS"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHeading(tt.in))
		})
	}
}

func TestCanonicalSections_StableOrder(t *testing.T) {
	first := CanonicalSections()
	second := CanonicalSections()

	assert.Equal(t, first, second)
	assert.Contains(t, first, "experience")
	assert.Contains(t, first, "certifications")
}
