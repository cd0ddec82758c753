// Package merge reconciles multiple CanonicalResume candidates into one
// record under conservative, no-data-loss rules: a known fact is never
// overwritten with an emptier value, and the richer of two lists wins
// wholesale instead of being diluted.
package merge

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/strategies"
	"github.com/jonathan/resume-parser/internal/types"
)

// summaryRescueLength is the cutoff below which a primary summary is
// considered possibly truncated and may be replaced by a strictly
// longer one. A concise human summary at or above this length is never
// discarded in favor of noise.
const summaryRescueLength = 80

// Merge combines candidates into one resume. primary is the seed; when
// it is nil or empty, the first non-empty other takes its place. The
// operation is deterministic and idempotent:
// Merge(Merge(a,b), b) == Merge(a,b). Inputs are never mutated.
func Merge(primary *types.CanonicalResume, others ...*types.CanonicalResume) *types.CanonicalResume {
	if primary == nil || primary.IsEmpty() {
		for i, other := range others {
			if other != nil && !other.IsEmpty() {
				primary = other
				others = others[i+1:]
				break
			}
		}
	}
	if primary == nil {
		return types.NewCanonicalResume()
	}

	out := primary.Clone()
	for _, other := range others {
		if other == nil {
			continue
		}
		mergeInto(out, other)
	}
	return out
}

// MergeBest is the common entry: the highest-scoring candidate seeds the
// merge and every other candidate fills its gaps.
func MergeBest(candidates []*types.CanonicalResume) *types.CanonicalResume {
	best, _ := scoring.PickRichest(candidates)
	if best == nil {
		return types.NewCanonicalResume()
	}
	rest := make([]*types.CanonicalResume, 0, len(candidates)-1)
	for _, c := range candidates {
		if c != best {
			rest = append(rest, c)
		}
	}
	return Merge(best, rest...)
}

func mergeInto(dst, src *types.CanonicalResume) {
	mergePersonalInfo(&dst.PersonalInfo, &src.PersonalInfo)
	dst.Summary = mergeSummary(dst.Summary, src.Summary)
	dst.Skills = unionStrings(dst.Skills, src.Skills)

	dst.Experience = mergeExperience(dst.Experience, src.Experience)
	dst.Education = mergeEducation(dst.Education, src.Education)
	dst.Projects = mergeProjects(dst.Projects, src.Projects)
	dst.Certifications = mergeCertifications(dst.Certifications, src.Certifications)

	if dst.FormatInfo.OriginalPageCount <= 1 && src.FormatInfo.OriginalPageCount > 1 {
		dst.FormatInfo.OriginalPageCount = src.FormatInfo.OriginalPageCount
	}
}

// mergePersonalInfo adopts each contact field independently: email may
// come from one candidate, phone from another.
func mergePersonalInfo(dst, src *types.PersonalInfo) {
	adopt(&dst.Name, src.Name)
	adopt(&dst.Email, src.Email)
	adopt(&dst.Phone, src.Phone)
	adopt(&dst.Location, src.Location)
	adopt(&dst.LinkedIn, src.LinkedIn)
	adopt(&dst.GitHub, src.GitHub)
	adopt(&dst.Website, src.Website)
	dst.Links = unionStrings(dst.Links, src.Links)
}

// adopt fills dst only when it is empty; a known value is never
// overwritten.
func adopt(dst *string, src string) {
	if strings.TrimSpace(*dst) == "" && strings.TrimSpace(src) != "" {
		*dst = src
	}
}

// mergeSummary keeps the primary summary unless it is both short enough
// to look truncated and the other is strictly longer.
func mergeSummary(primary, other string) string {
	if strings.TrimSpace(primary) == "" {
		return other
	}
	if strings.TrimSpace(other) == "" {
		return primary
	}
	if len(primary) < summaryRescueLength && len(other) > len(primary) {
		return other
	}
	return primary
}

// unionStrings unions two lists preserving first-seen order with
// case-insensitive dedupe.
func unionStrings(a, b []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			key := strings.ToLower(strings.TrimSpace(s))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// List merges follow one policy, instantiated per entry type below:
// skip an empty other; adopt wholesale over an empty primary; when the
// other is strictly richer, replace with a deduplicated union (primary
// entries first); otherwise leave the primary untouched. The richer
// source wins wholesale rather than being diluted by a weaker one.

func mergeExperience(primary, other []types.ExperienceEntry) []types.ExperienceEntry {
	pc, oc := meaningfulExperience(primary), meaningfulExperience(other)
	switch {
	case oc == 0:
		return primary
	case pc == 0:
		return append([]types.ExperienceEntry(nil), other...)
	case oc > pc:
		seen := map[string]bool{}
		out := append([]types.ExperienceEntry(nil), primary...)
		for _, e := range primary {
			if k := e.IdentityKey(); k != "" {
				seen[k] = true
			}
		}
		for _, e := range other {
			k := e.IdentityKey()
			if k != "" && seen[k] {
				continue
			}
			if k != "" {
				seen[k] = true
			}
			out = append(out, e)
		}
		return out
	default:
		return primary
	}
}

func mergeEducation(primary, other []types.EducationEntry) []types.EducationEntry {
	pc, oc := meaningfulEducation(primary), meaningfulEducation(other)
	switch {
	case oc == 0:
		return primary
	case pc == 0:
		return append([]types.EducationEntry(nil), other...)
	case oc > pc:
		seen := map[string]bool{}
		out := append([]types.EducationEntry(nil), primary...)
		for _, e := range primary {
			if k := e.IdentityKey(); k != "" {
				seen[k] = true
			}
		}
		for _, e := range other {
			k := e.IdentityKey()
			if k != "" && seen[k] {
				continue
			}
			if k != "" {
				seen[k] = true
			}
			out = append(out, e)
		}
		return out
	default:
		return primary
	}
}

func mergeProjects(primary, other []types.ProjectEntry) []types.ProjectEntry {
	pc, oc := meaningfulProjects(primary), meaningfulProjects(other)
	switch {
	case oc == 0:
		return primary
	case pc == 0:
		return append([]types.ProjectEntry(nil), other...)
	case oc > pc:
		seen := map[string]bool{}
		out := append([]types.ProjectEntry(nil), primary...)
		for _, e := range primary {
			if k := e.IdentityKey(); k != "" {
				seen[k] = true
			}
		}
		for _, e := range other {
			k := e.IdentityKey()
			if k != "" && seen[k] {
				continue
			}
			if k != "" {
				seen[k] = true
			}
			out = append(out, e)
		}
		return out
	default:
		return primary
	}
}

func mergeCertifications(primary, other []types.Certification) []types.Certification {
	pc, oc := meaningfulCertifications(primary), meaningfulCertifications(other)
	switch {
	case oc == 0:
		return primary
	case pc == 0:
		return append([]types.Certification(nil), other...)
	case oc > pc:
		seen := map[string]bool{}
		out := append([]types.Certification(nil), primary...)
		for _, e := range primary {
			if k := e.IdentityKey(); k != "" {
				seen[k] = true
			}
		}
		for _, e := range other {
			k := e.IdentityKey()
			if k != "" && seen[k] {
				continue
			}
			if k != "" {
				seen[k] = true
			}
			out = append(out, e)
		}
		return out
	default:
		return primary
	}
}

// Meaningful-entry counts: an entry counts only when at least one field
// carries non-trivial content, and heading-like text (a literal section
// name parsed as data) is excluded.

func meaningfulExperience(entries []types.ExperienceEntry) int {
	n := 0
	for _, e := range entries {
		if strategies.IsHeadingLike(e.Title) || strategies.IsHeadingLike(e.Company) {
			continue
		}
		if nonTrivial(e.Title) || nonTrivial(e.Company) || nonTrivial(e.Dates) || len(e.Description) > 0 {
			n++
		}
	}
	return n
}

func meaningfulEducation(entries []types.EducationEntry) int {
	n := 0
	for _, e := range entries {
		if strategies.IsHeadingLike(e.Institution) || strategies.IsHeadingLike(e.Degree) {
			continue
		}
		if nonTrivial(e.Institution) || nonTrivial(e.Degree) || nonTrivial(e.Year) {
			n++
		}
	}
	return n
}

func meaningfulProjects(entries []types.ProjectEntry) int {
	n := 0
	for _, e := range entries {
		if strategies.IsHeadingLike(e.Name) {
			continue
		}
		if nonTrivial(e.Name) || nonTrivial(e.Description) || len(e.Technologies) > 0 {
			n++
		}
	}
	return n
}

func meaningfulCertifications(entries []types.Certification) int {
	n := 0
	for _, e := range entries {
		if strategies.IsHeadingLike(e.Name) {
			continue
		}
		if !e.IsEmpty() {
			n++
		}
	}
	return n
}

func nonTrivial(s string) bool {
	return len(strings.TrimSpace(s)) > 1
}
