package scoring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

func TestScore_EmptyResume(t *testing.T) {
	assert.Equal(t, 0, scoring.Score(types.NewCanonicalResume()))
	assert.Equal(t, 0, scoring.Score(nil))
}

func TestScore_Weights(t *testing.T) {
	tests := []struct {
		name     string
		resume   *types.CanonicalResume
		expected int
	}{
		{
			name: "single experience entry",
			resume: &types.CanonicalResume{
				Experience: []types.ExperienceEntry{{Title: "Engineer"}},
			},
			expected: 6,
		},
		{
			name: "experience with bullets",
			resume: &types.CanonicalResume{
				Experience: []types.ExperienceEntry{
					{Title: "Engineer", Description: []string{"a", "b", "c"}},
				},
			},
			expected: 6 + 3,
		},
		{
			name: "bullets capped at twelve",
			resume: &types.CanonicalResume{
				Experience: []types.ExperienceEntry{
					{Title: "Engineer", Description: make([]string, 20)},
				},
			},
			expected: 6 + 12,
		},
		{
			name: "education entry",
			resume: &types.CanonicalResume{
				Education: []types.EducationEntry{{Institution: "MIT"}},
			},
			expected: 3,
		},
		{
			name: "project entry",
			resume: &types.CanonicalResume{
				Projects: []types.ProjectEntry{{Name: "Tracker"}},
			},
			expected: 3,
		},
		{
			name: "certification entry",
			resume: &types.CanonicalResume{
				Certifications: []types.Certification{{Name: "CKA"}},
			},
			expected: 2,
		},
		{
			name: "empty certifications do not count",
			resume: &types.CanonicalResume{
				Certifications: []types.Certification{{}, {}},
			},
			expected: 0,
		},
		{
			name: "skills at half weight",
			resume: &types.CanonicalResume{
				Skills: []string{"Go", "Python", "SQL", "Docker"},
			},
			expected: 2,
		},
		{
			name: "skills capped at twelve",
			resume: &types.CanonicalResume{
				Skills: make([]string, 30),
			},
			expected: 6,
		},
		{
			name: "summary rewards each eighty characters",
			resume: &types.CanonicalResume{
				Summary: strings.Repeat("x", 160),
			},
			expected: 2,
		},
		{
			name: "summary points capped",
			resume: &types.CanonicalResume{
				Summary: strings.Repeat("x", 2000),
			},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoring.Score(tt.resume))
		})
	}
}

func TestScore_Combined(t *testing.T) {
	resume := &types.CanonicalResume{
		Summary: strings.Repeat("s", 85),
		Skills:  []string{"Go", "SQL"},
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Description: []string{"a", "b"}},
			{Title: "Developer", Description: []string{"c"}},
		},
		Education:      []types.EducationEntry{{Institution: "MIT"}},
		Projects:       []types.ProjectEntry{{Name: "Tracker"}},
		Certifications: []types.Certification{{Name: "CKA"}},
	}
	// 2*6 + 3 bullets + 3 + 3 + 2 + 2/2 + 1 summary point
	assert.Equal(t, 25, scoring.Score(resume))
}

func TestScore_MonotonicUnderAddedContent(t *testing.T) {
	resume := &types.CanonicalResume{
		Experience: []types.ExperienceEntry{{Title: "Engineer"}},
	}
	before := scoring.Score(resume)

	resume.Experience[0].Description = append(resume.Experience[0].Description, "shipped a thing")
	resume.Skills = append(resume.Skills, "Go")
	after := scoring.Score(resume)

	assert.Greater(t, after, before)
}

func TestCollect(t *testing.T) {
	resume := &types.CanonicalResume{
		Summary: "  padded summary  ",
		Skills:  []string{"Go", "SQL", "Docker"},
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Description: []string{"a", "b"}},
			{Title: "Developer", Description: []string{"c"}},
		},
		Education:      []types.EducationEntry{{Institution: "MIT"}},
		Certifications: []types.Certification{{Name: "CKA"}, {}},
	}

	stats := scoring.Collect(resume)

	assert.Equal(t, 2, stats.ExperienceCount)
	assert.Equal(t, 3, stats.BulletCount)
	assert.Equal(t, 1, stats.EducationCount)
	assert.Equal(t, 0, stats.ProjectsCount)
	assert.Equal(t, 1, stats.CertificationsCount)
	assert.Equal(t, 3, stats.SkillsCount)
	assert.Equal(t, len("padded summary"), stats.SummaryLength)
}

func TestCollect_Nil(t *testing.T) {
	assert.Equal(t, scoring.Stats{}, scoring.Collect(nil))
}

func TestPickRichest(t *testing.T) {
	thin := &types.CanonicalResume{
		Skills: []string{"Go", "SQL"},
	}
	rich := &types.CanonicalResume{
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Description: []string{"a", "b", "c"}},
		},
		Education: []types.EducationEntry{{Institution: "MIT"}},
	}

	best, score := scoring.PickRichest([]*types.CanonicalResume{thin, rich})

	require.NotNil(t, best)
	assert.Same(t, rich, best)
	assert.Equal(t, scoring.Score(rich), score)
}

func TestPickRichest_TieKeepsEarliest(t *testing.T) {
	first := &types.CanonicalResume{
		Experience: []types.ExperienceEntry{{Title: "Engineer"}},
	}
	second := &types.CanonicalResume{
		Experience: []types.ExperienceEntry{{Title: "Developer"}},
	}
	require.Equal(t, scoring.Score(first), scoring.Score(second))

	best, _ := scoring.PickRichest([]*types.CanonicalResume{first, second})
	assert.Same(t, first, best)
}

func TestPickRichest_SkipsNil(t *testing.T) {
	resume := types.NewCanonicalResume()
	best, score := scoring.PickRichest([]*types.CanonicalResume{nil, resume, nil})
	assert.Same(t, resume, best)
	assert.Equal(t, 0, score)
}

func TestPickRichest_Empty(t *testing.T) {
	best, score := scoring.PickRichest(nil)
	assert.Nil(t, best)
	assert.Equal(t, 0, score)

	best, score = scoring.PickRichest([]*types.CanonicalResume{nil, nil})
	assert.Nil(t, best)
	assert.Equal(t, 0, score)
}
