package strategies

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDateFragment(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Jan", true},
		{"January", true},
		{"Sept.", true},
		{"2020", true},
		{"Present", true},
		{"current", true},
		{"Jan 2020", true},
		{"Jan 2020 - Present", true},
		{"03/2019 - 11/2021", true},
		{"Oct 2022 (Contract)", true},
		{"May 2021 (Intern)", true},
		{"2018 – 2022", true},
		{"Acme Corp", false},
		{"Acme Corp (Jan 2020)", false},
		{"March Networks", false},
		{"May Clinic", false},
		{"Software Engineer", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateFragment(tt.in))
		})
	}
}

func TestValidCompany(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"normal company", "Acme Corp", true},
		{"two runes", "GE", true},
		{"single rune", "X", false},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 101), false},
		{"exactly 100 runes", strings.Repeat("a", 100), true},
		{"bare month", "Oct", false},
		{"bare year", "2022", false},
		{"date range", "Jan 2020 - Present", false},
		{"date with qualifier", "Oct 2022 (Contract)", false},
		{"month-named company", "May Clinic", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCompany(tt.in))
		})
	}
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"• Built the pipeline", "Built the pipeline"},
		{"- Built the pipeline", "Built the pipeline"},
		{"* Built the pipeline", "Built the pipeline"},
		{"  ◦ Nested item ", "Nested item"},
		{"No marker here", "No marker here"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBullet(tt.in))
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpaces("  a\t b   c "))
	assert.Equal(t, "", CollapseSpaces("   "))
}

func TestDateRangeRe(t *testing.T) {
	matches := []string{
		"Jan 2020 - Present",
		"January 2020 – December 2022",
		"2018 - 2022",
		"03/2019 - 11/2021",
		"Sep 2019 to May 2020",
	}
	for _, s := range matches {
		assert.True(t, dateRangeRe.MatchString(s), s)
	}

	nonMatches := []string{
		"Acme Corp",
		"Software Engineer",
		"Built 20 services",
	}
	for _, s := range nonMatches {
		assert.False(t, dateRangeRe.MatchString(s), s)
	}
}
