package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchExperienceTemplates(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		title   string
		company string
		dates   string
	}{
		{
			name:    "title dash company dates",
			line:    "Software Engineer - Acme Corp (Jan 2020 - Present)",
			title:   "Software Engineer",
			company: "Acme Corp",
			dates:   "Jan 2020 - Present",
		},
		{
			name:    "company pipe title pipe dates",
			line:    "Acme Corp | Software Engineer | Jan 2020 - Present",
			title:   "Software Engineer",
			company: "Acme Corp",
			dates:   "Jan 2020 - Present",
		},
		{
			name:    "title at company dates",
			line:    "Software Engineer at Acme Corp (2019 - 2021)",
			title:   "Software Engineer",
			company: "Acme Corp",
			dates:   "2019 - 2021",
		},
		{
			name:    "dateless title dash company",
			line:    "Software Engineer - Acme Corp",
			title:   "Software Engineer",
			company: "Acme Corp",
		},
		{
			name:    "comma head with dates",
			line:    "Software Engineer, Acme Corp, Jan 2020 - Present",
			title:   "Software Engineer",
			company: "Acme Corp",
			dates:   "Jan 2020 - Present",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := matchExperienceTemplates(tt.line)
			require.NotNil(t, entry)
			assert.Equal(t, tt.title, entry.Title)
			assert.Equal(t, tt.company, entry.Company)
			assert.Equal(t, tt.dates, entry.Dates)
		})
	}
}

func TestMatchExperienceTemplates_Rejections(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"dash but both sides dates", "Jan 2020 - Present"},
		{"plain bullet text", "Built the billing pipeline end to end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, matchExperienceTemplates(tt.line))
		})
	}
}

func TestSectionRegex_DatesOnFollowingLine(t *testing.T) {
	text := "EXPERIENCE\n" +
		"Software Engineer - Acme Corp\n" +
		"Jan 2020 - Present\n" +
		"- Built the pipeline\n"

	resume := NewSectionRegex().Parse(text, nil)
	require.Len(t, resume.Experience, 1)

	entry := resume.Experience[0]
	assert.Equal(t, "Software Engineer", entry.Title)
	assert.Equal(t, "Acme Corp", entry.Company)
	assert.Equal(t, "Jan 2020 - Present", entry.Dates)
	assert.Equal(t, []string{"Built the pipeline"}, entry.Description)
}

func TestSectionRegex_BulletsBeforeFirstHeaderDropped(t *testing.T) {
	text := "EXPERIENCE\n" +
		"stray line with no header\n" +
		"Software Engineer - Acme Corp (2020 - 2022)\n" +
		"- real bullet\n"

	resume := NewSectionRegex().Parse(text, nil)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, []string{"real bullet"}, resume.Experience[0].Description)
}

func TestSectionRegex_EmptyInput(t *testing.T) {
	resume := NewSectionRegex().Parse("   \n  ", nil)
	require.NotNil(t, resume)
	assert.True(t, resume.IsEmpty())
}

func TestBuildEntry_Validation(t *testing.T) {
	// Invalid company stays empty; a date-fragment title is cleared.
	entry := buildEntry("Jan 2020", "Oct 2022 (Contract)", "", "2020 - 2022")
	assert.Empty(t, entry.Title)
	assert.Empty(t, entry.Company)
	assert.Equal(t, "2020 - 2022", entry.Dates)
}
