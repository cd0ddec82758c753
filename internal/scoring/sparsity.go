package scoring

import "github.com/jonathan/resume-parser/internal/types"

// Sparsity thresholds. Multi-page documents carry higher expectations:
// a two-page resume with zero experience entries almost certainly lost
// content somewhere in extraction or parsing.
const (
	minSkillsAlone         = 4
	minSummaryAlone        = 150
	sufficientBullets      = 3
	multiPageMinBullets    = 4
	multiPageMinSignals    = 4
	multiPageShortSummary  = 120
	singlePageMinSignals   = 3
	singlePageShortSummary = 80
	totalSignalsSkillsCap  = 10
)

// IsSparse decides whether a candidate is unacceptably thin for a
// document of the given page count, returning the underlying stats so
// callers can escalate (another strategy, binary extraction, the
// enhancement oracle) with full context. Pure: repeated calls on the
// same candidate give identical answers.
func IsSparse(candidate *types.CanonicalResume, pageCount int) (bool, Stats) {
	stats := Collect(candidate)
	return isSparseStats(stats, pageCount), stats
}

func isSparseStats(s Stats, pageCount int) bool {
	noSections := s.ExperienceCount == 0 && s.EducationCount == 0 &&
		s.ProjectsCount == 0 && s.CertificationsCount == 0

	// Rule 1: nothing anywhere
	if noSections && s.SkillsCount < minSkillsAlone && s.SummaryLength < minSummaryAlone {
		return true
	}

	// Rule 2: one well-populated job is sufficient signal
	if s.BulletCount >= sufficientBullets && s.ExperienceCount >= 1 {
		return false
	}

	totalSignals := s.ExperienceCount + s.EducationCount + s.ProjectsCount +
		s.CertificationsCount + minInt(s.SkillsCount, totalSignalsSkillsCap)

	// Rule 3: multi-page expectations
	if pageCount > 1 {
		if s.ExperienceCount == 0 {
			return true
		}
		if s.ExperienceCount < 2 && s.BulletCount < multiPageMinBullets &&
			s.EducationCount == 0 && s.ProjectsCount == 0 {
			return true
		}
		return totalSignals < multiPageMinSignals && s.SummaryLength < multiPageShortSummary
	}

	// Rule 4: single page
	return totalSignals < singlePageMinSignals && s.SummaryLength < singlePageShortSummary
}
