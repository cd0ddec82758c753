// Package scoring estimates how complete a parsed candidate is and
// decides when a candidate is too sparse to trust. Both functions are
// pure: repeated calls on the same candidate give identical results.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Score weights. Each term is monotonic: adding content never lowers
// the score, and capped terms stop rewarding padding.
const (
	experienceWeight     = 6
	educationWeight      = 3
	projectsWeight       = 3
	certificationsWeight = 2
	bulletCap            = 12
	skillsCap            = 12
	summaryLengthUnit    = 80
	summaryPointsCap     = 4
)

// Stats holds the per-candidate counts the score and sparsity decisions
// derive from. Exposed so callers outside the core can inspect why a
// candidate was judged thin.
type Stats struct {
	ExperienceCount     int `json:"experience_count"`
	BulletCount         int `json:"bullet_count"`
	EducationCount      int `json:"education_count"`
	ProjectsCount       int `json:"projects_count"`
	CertificationsCount int `json:"certifications_count"`
	SkillsCount         int `json:"skills_count"`
	SummaryLength       int `json:"summary_length"`
}

// Collect computes the raw statistics for a candidate
func Collect(candidate *types.CanonicalResume) Stats {
	if candidate == nil {
		return Stats{}
	}
	stats := Stats{
		ExperienceCount: len(candidate.Experience),
		EducationCount:  len(candidate.Education),
		ProjectsCount:   len(candidate.Projects),
		SkillsCount:     len(candidate.Skills),
		SummaryLength:   len(strings.TrimSpace(candidate.Summary)),
	}
	for _, entry := range candidate.Experience {
		stats.BulletCount += len(entry.Description)
	}
	for _, cert := range candidate.Certifications {
		if !cert.IsEmpty() {
			stats.CertificationsCount++
		}
	}
	return stats
}

// Score computes the richness score:
//
//	6×experience + min(bullets,12) + 3×education + 3×projects +
//	2×certifications + min(skills,12)/2 + min(summary/80, 4)
func Score(candidate *types.CanonicalResume) int {
	return scoreStats(Collect(candidate))
}

func scoreStats(s Stats) int {
	score := experienceWeight * s.ExperienceCount
	score += minInt(s.BulletCount, bulletCap)
	score += educationWeight * s.EducationCount
	score += projectsWeight * s.ProjectsCount
	score += certificationsWeight * s.CertificationsCount
	score += minInt(s.SkillsCount, skillsCap) / 2
	score += minInt(s.SummaryLength/summaryLengthUnit, summaryPointsCap)
	return score
}

// PickRichest returns the highest-scoring candidate with its score.
// Comparison is strict, so ties keep the earliest candidate and the
// result is stable in input order.
func PickRichest(candidates []*types.CanonicalResume) (*types.CanonicalResume, int) {
	var best *types.CanonicalResume
	bestScore := -1
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if s := Score(c); s > bestScore {
			best = c
			bestScore = s
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestScore
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
