package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo_FullHeader(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"Portland, OR",
		"jane.doe@example.com | (555) 123-4567",
		"https://linkedin.com/in/janedoe",
		"https://github.com/janedoe",
	}

	info := ExtractContactInfo(lines)

	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "Portland, OR", info.Location)
	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Contains(t, info.LinkedIn, "linkedin.com/in/janedoe")
	assert.Contains(t, info.GitHub, "github.com/janedoe")
}

func TestExtractContactInfo_WebsiteAndLinks(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"https://janedoe.dev",
		"https://blog.janedoe.dev/posts",
		"https://github.com/janedoe",
	}

	info := ExtractContactInfo(lines)

	assert.Equal(t, "https://janedoe.dev", info.Website)
	assert.Equal(t, []string{"https://blog.janedoe.dev/posts"}, info.Links)
	assert.Contains(t, info.GitHub, "github.com")
}

func TestExtractContactInfo_Empty(t *testing.T) {
	info := ExtractContactInfo(nil)

	assert.Empty(t, info.Name)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"simple name", []string{"Jane Doe"}, "Jane Doe"},
		{"name after blank", []string{"", "Jane Doe"}, "Jane Doe"},
		{"skips email line", []string{"jane@example.com", "Jane Doe"}, "Jane Doe"},
		{"hyphenated surname", []string{"Jane Smith-Jones"}, "Jane Smith-Jones"},
		{"three part name", []string{"Jane Marie Doe"}, "Jane Marie Doe"},
		{"single word is not a name", []string{"Resume"}, ""},
		{"long sentence is not a name", []string{"Senior engineer with ten years of experience"}, ""},
		{"too deep in document", []string{"a", "b", "c", "d", "e", "Jane Doe"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.lines))
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"city state", []string{"Jane Doe", "Portland, OR"}, "Portland, OR"},
		{"city state zip", []string{"Austin, TX 78701"}, "Austin, TX 78701"},
		{"city country", []string{"Toronto, Canada"}, "Toronto, Canada"},
		{"no location", []string{"Jane Doe", "jane@example.com"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractLocation(tt.lines))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"555-123-4567", "(555) 123-4567"},
		{"555.123.4567", "(555) 123-4567"},
		{"(555) 123-4567", "(555) 123-4567"},
		{"1-555-123-4567", "+1 (555) 123-4567"},
		{"+1 555 123 4567", "+1 (555) 123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePhone(tt.in))
		})
	}
}
