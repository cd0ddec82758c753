package strategies

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureAware_DashFormat(t *testing.T) {
	text := "EXPERIENCE\n" +
		"Software Engineer - Acme Corp (Jan 2020 - Present)\n" +
		"- Built the pipeline\n"

	resume := NewStructureAware().Parse(text, nil)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Software Engineer", resume.Experience[0].Title)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
}

func TestStructureAware_CompanyFirstFallback(t *testing.T) {
	// No dash headers anywhere, so the company-first extractor runs.
	text := "EXPERIENCE\n" +
		"Acme Corp, Software Engineer (Jan 2020 - Present)\n" +
		"- Built the pipeline\n" +
		"Beta Inc, Junior Engineer (2017 - 2019)\n"

	resume := NewStructureAware().Parse(text, nil)
	require.Len(t, resume.Experience, 2)

	assert.Equal(t, "Software Engineer", resume.Experience[0].Title)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
	assert.Equal(t, []string{"Built the pipeline"}, resume.Experience[0].Description)
	assert.Equal(t, "Beta Inc", resume.Experience[1].Company)
}

func TestStructureAware_PipeFallback(t *testing.T) {
	text := "EXPERIENCE\n" +
		"Acme Corp | Software Engineer | Jan 2020 - Present\n" +
		"- Built the pipeline\n"

	resume := NewStructureAware().Parse(text, nil)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Software Engineer", resume.Experience[0].Title)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
	assert.Equal(t, "Jan 2020 - Present", resume.Experience[0].Dates)
}

func TestStructureAware_NaiveLastResort(t *testing.T) {
	text := "EXPERIENCE\n" +
		"Senior Platform Engineer\n" +
		"worked on the core scheduling system for three years\n"

	resume := NewStructureAware().Parse(text, nil)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Senior Platform Engineer", resume.Experience[0].Title)
	assert.Equal(t, []string{"worked on the core scheduling system for three years"}, resume.Experience[0].Description)
}

func TestStructureAware_FirstYieldingFallbackWins(t *testing.T) {
	// Dash headers exist, so later fallbacks never run even though the
	// pipe row would also match.
	text := "EXPERIENCE\n" +
		"Software Engineer - Acme Corp (2020 - 2022)\n" +
		"Beta Inc | Junior Engineer | 2017 - 2019\n"

	resume := NewStructureAware().Parse(text, nil)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
}

func TestStructureAware_UsesLayoutPageCount(t *testing.T) {
	layout := &types.DocumentStructure{Format: "pdf", OriginalPageCount: 3}

	resume := NewStructureAware().Parse("EXPERIENCE\nEngineer - Acme Corp (2020 - 2021)\n", layout)
	assert.Equal(t, 3, resume.FormatInfo.OriginalPageCount)
}

func TestStructureAware_EmptyInput(t *testing.T) {
	resume := NewStructureAware().Parse("", nil)
	require.NotNil(t, resume)
	assert.True(t, resume.IsEmpty())
}
