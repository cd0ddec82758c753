// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
)

// PersonalInfo holds contact details extracted from the document header.
// Links carries extra URLs that are neither the LinkedIn nor GitHub profile.
type PersonalInfo struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	LinkedIn string   `json:"linkedin,omitempty"`
	GitHub   string   `json:"github,omitempty"`
	Website  string   `json:"website,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// ExperienceEntry represents one work experience item. Description holds
// individual bullets which are never concatenated into the identity slots
// (Title/Company/Dates) or into each other.
type ExperienceEntry struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Description []string `json:"description,omitempty"`
}

// EducationEntry represents one education item
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
	Location    string `json:"location,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// ProjectEntry represents one project item
type ProjectEntry struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Certification represents a certification in either of the two shapes
// strategies produce: a bare string or a {name, issuer, date} record.
// Both marshal/unmarshal transparently; counting treats any non-empty
// shape as one item.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// UnmarshalJSON accepts both the bare-string and the object form
func (c *Certification) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Name = s
		c.Issuer = ""
		c.Date = ""
		return nil
	}

	type alias Certification
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = Certification(a)
	return nil
}

// MarshalJSON emits the bare-string form when only Name is set
func (c Certification) MarshalJSON() ([]byte, error) {
	if c.Issuer == "" && c.Date == "" {
		return json.Marshal(c.Name)
	}
	type alias Certification
	return json.Marshal(alias(c))
}

// IsEmpty reports whether the certification carries no content
func (c Certification) IsEmpty() bool {
	return strings.TrimSpace(c.Name) == "" &&
		strings.TrimSpace(c.Issuer) == "" &&
		strings.TrimSpace(c.Date) == ""
}

// FormatInfo records layout facts about the original document
type FormatInfo struct {
	OriginalPageCount int `json:"original_page_count"`
}

// CanonicalResume is the common output shape produced by every parser
// strategy and consumed by the reconciliation engine. Candidates are
// created fresh per strategy invocation; no shared mutable state.
type CanonicalResume struct {
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Projects       []ProjectEntry    `json:"projects,omitempty"`
	Certifications []Certification   `json:"certifications,omitempty"`
	FormatInfo     FormatInfo        `json:"format_info"`
}

// NewCanonicalResume returns an empty resume with a sane page count
func NewCanonicalResume() *CanonicalResume {
	return &CanonicalResume{
		FormatInfo: FormatInfo{OriginalPageCount: 1},
	}
}

// IsEmpty reports whether no field of the resume carries any content
func (r *CanonicalResume) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Summary == "" &&
		len(r.Skills) == 0 &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Projects) == 0 &&
		len(r.Certifications) == 0 &&
		r.PersonalInfo.Name == "" &&
		r.PersonalInfo.Email == "" &&
		r.PersonalInfo.Phone == "" &&
		r.PersonalInfo.Location == "" &&
		r.PersonalInfo.LinkedIn == "" &&
		r.PersonalInfo.GitHub == "" &&
		r.PersonalInfo.Website == "" &&
		len(r.PersonalInfo.Links) == 0
}

// Clone returns a deep copy. The merge engine mutates its working copy,
// never its inputs.
func (r *CanonicalResume) Clone() *CanonicalResume {
	if r == nil {
		return nil
	}
	out := *r
	out.PersonalInfo.Links = append([]string(nil), r.PersonalInfo.Links...)
	out.Skills = append([]string(nil), r.Skills...)
	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, e := range r.Experience {
		e.Description = append([]string(nil), e.Description...)
		out.Experience[i] = e
	}
	out.Education = append([]EducationEntry(nil), r.Education...)
	out.Projects = make([]ProjectEntry, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}
	out.Certifications = append([]Certification(nil), r.Certifications...)
	return &out
}

// IdentityKey returns the normalized key used to detect duplicate entries
// during merge: the first non-empty of title then company, lower-cased.
func (e ExperienceEntry) IdentityKey() string {
	return identityKey(e.Title, e.Company)
}

// IdentityKey returns the normalized dedupe key for an education entry
func (e EducationEntry) IdentityKey() string {
	return identityKey(e.Institution, e.Degree)
}

// IdentityKey returns the normalized dedupe key for a project entry
func (p ProjectEntry) IdentityKey() string {
	return identityKey(p.Name)
}

// IdentityKey returns the normalized dedupe key for a certification
func (c Certification) IdentityKey() string {
	return identityKey(c.Name)
}

func identityKey(fields ...string) string {
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			return strings.ToLower(f)
		}
	}
	return ""
}

// ToJSON marshals the resume to pretty-printed JSON
func (r *CanonicalResume) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
