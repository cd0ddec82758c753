package enhance

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func baseResume() *types.CanonicalResume {
	resume := types.NewCanonicalResume()
	resume.PersonalInfo.Name = "Jane Doe"
	resume.PersonalInfo.Email = "jane@example.com"
	resume.Skills = []string{"Go", "SQL"}
	resume.Experience = []types.ExperienceEntry{
		{
			Title:       "Software Engineer",
			Company:     "Acme Corp",
			Dates:       "Jan 2020 - Present",
			Description: []string{"Built the billing pipeline"},
		},
	}
	return resume
}

func TestEnhanceWith_FillsGapsOnly(t *testing.T) {
	client := &fakeClient{
		response: `{
			"summary": "Backend engineer with five years of Go experience.",
			"skills": ["Go", "SQL", "Kubernetes"]
		}`,
	}

	original := baseResume()
	enhanced, err := enhanceWith(context.Background(), client, original, "Backend Engineer")
	require.NoError(t, err)
	require.NotNil(t, enhanced)

	// Oracle filled the empty summary.
	assert.Equal(t, "Backend engineer with five years of Go experience.", enhanced.Summary)

	// Existing data survives untouched.
	assert.Equal(t, "Jane Doe", enhanced.PersonalInfo.Name)
	assert.Len(t, enhanced.Experience, 1)
	assert.Equal(t, "Acme Corp", enhanced.Experience[0].Company)

	// The prompt carried the role and the candidate data.
	assert.Contains(t, client.prompt, "Backend Engineer")
	assert.Contains(t, client.prompt, "Jane Doe")
}

func TestEnhanceWith_OracleCannotEraseData(t *testing.T) {
	// A hallucinated near-empty reply must not wipe extracted fields.
	client := &fakeClient{
		response: `{"personal_info": {"name": ""}, "experience": []}`,
	}

	original := baseResume()
	original.Summary = "Engineer focused on payment systems."

	enhanced, err := enhanceWith(context.Background(), client, original, "")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", enhanced.PersonalInfo.Name)
	assert.Equal(t, "Engineer focused on payment systems.", enhanced.Summary)
	assert.Len(t, enhanced.Experience, 1)
	assert.Equal(t, []string{"Go", "SQL"}, enhanced.Skills)
}

func TestEnhanceWith_InputNotMutated(t *testing.T) {
	client := &fakeClient{
		response: `{"summary": "New summary text for the record."}`,
	}

	original := baseResume()
	_, err := enhanceWith(context.Background(), client, original, "")
	require.NoError(t, err)

	assert.Empty(t, original.Summary)
}

func TestEnhanceWith_MarkdownFencedReply(t *testing.T) {
	client := &fakeClient{
		response: "```json\n{\"summary\": \"Fenced but valid.\"}\n```",
	}

	enhanced, err := enhanceWith(context.Background(), client, baseResume(), "")
	require.NoError(t, err)
	assert.Equal(t, "Fenced but valid.", enhanced.Summary)
}

func TestEnhanceWith_ProseWrappedReply(t *testing.T) {
	client := &fakeClient{
		response: `Here is the improved resume: {"summary": "Wrapped in prose."} Hope this helps!`,
	}

	enhanced, err := enhanceWith(context.Background(), client, baseResume(), "")
	require.NoError(t, err)
	assert.Equal(t, "Wrapped in prose.", enhanced.Summary)
}

func TestEnhanceWith_APIError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}

	_, err := enhanceWith(context.Background(), client, baseResume(), "")
	require.Error(t, err)

	var apiErr *APICallError
	assert.True(t, errors.As(err, &apiErr))
}

func TestEnhanceWith_UnparseableReply(t *testing.T) {
	client := &fakeClient{response: "I cannot help with that."}

	_, err := enhanceWith(context.Background(), client, baseResume(), "")
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestEnhance_RequiresAPIKey(t *testing.T) {
	_, err := Enhance(context.Background(), baseResume(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestEnhance_RequiresCandidate(t *testing.T) {
	_, err := Enhance(context.Background(), nil, "", "key")
	require.Error(t, err)
}
