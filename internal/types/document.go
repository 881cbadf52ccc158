// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// ExperienceEntry is one role recovered from an experience section.
type ExperienceEntry struct {
	JobTitle    *string `json:"job_title"`
	Company     *string `json:"company"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	Description string  `json:"description"`
}

// HasDateRange reports whether both ends of the role parsed.
func (e ExperienceEntry) HasDateRange() bool {
	return e.StartDate != nil && e.EndDate != nil
}

// EducationEntry is one education line that carried a degree or institution.
type EducationEntry struct {
	DegreeMention      *string `json:"degree_mention"`
	InstitutionMention *string `json:"institution_mention"`
	DateMention        *string `json:"date_mention"`
	Text               string  `json:"text"`
}

// ContactInfo holds contact details. Empty fields are omitted when serialized.
type ContactInfo struct {
	Emails []string `json:"emails,omitempty"`
	Phones []string `json:"phones,omitempty"`
}

// IsEmpty reports whether no contact details were found.
func (c ContactInfo) IsEmpty() bool {
	return len(c.Emails) == 0 && len(c.Phones) == 0
}

// ParsedDocument holds the fields shared by parsed résumés and job descriptions.
// When Error is set no other field carries data.
type ParsedDocument struct {
	ID                   string            `json:"id,omitempty"`
	Source               string            `json:"source,omitempty"`
	Error                string            `json:"error,omitempty"`
	Summary              string            `json:"summary,omitempty"`
	Skills               []string          `json:"skills"`
	Education            []EducationEntry  `json:"education"`
	EducationLevel       int               `json:"education_level" validate:"min=-1,max=5"`
	Experience           []ExperienceEntry `json:"experience"`
	TotalYearsExperience float64           `json:"total_years_experience" validate:"min=0"`
	Companies            []string          `json:"companies"`
	ContactInfo          *ContactInfo      `json:"contact_info,omitempty"`
	RawTextSnippet       string            `json:"raw_text_snippet,omitempty"`
}

// Failed reports whether the document carries only an error.
func (d *ParsedDocument) Failed() bool {
	return d.Error != ""
}

// ExperienceTitles returns the non-empty job titles in document order.
func (d *ParsedDocument) ExperienceTitles() []string {
	var titles []string
	for _, e := range d.Experience {
		if e.JobTitle != nil && *e.JobTitle != "" {
			titles = append(titles, *e.JobTitle)
		}
	}
	return titles
}

// ParsedResume is a parsed résumé.
type ParsedResume struct {
	ParsedDocument
	RawEntities map[string][]string `json:"raw_entities,omitempty"`
}

// Validate validates the résumé using the validator.
func (r *ParsedResume) Validate() error {
	return validator.New().Struct(r)
}

// ParsedJob is a parsed job description. It extends ParsedDocument with the
// fields only postings carry.
type ParsedJob struct {
	ParsedDocument
	JobTitle                *string  `json:"job_title"`
	CompanyName             *string  `json:"company_name"`
	Location                *string  `json:"location"`
	About                   string   `json:"about,omitempty"`
	Responsibilities        []string `json:"responsibilities,omitempty"`
	Qualifications          []string `json:"qualifications,omitempty"`
	PreferredQualifications []string `json:"preferred_qualifications,omitempty"`
	EducationRequirements   []string `json:"education_requirements,omitempty"`
	Compensation            []string `json:"compensation,omitempty"`
	MinimumYearsExperience  *int     `json:"minimum_years_experience" validate:"omitempty,min=0"`
	RequiredEducationLevel  *int     `json:"required_education_level" validate:"omitempty,min=0,max=5"`
	Description             string   `json:"description,omitempty"`
}

// Validate validates the job using the validator.
func (j *ParsedJob) Validate() error {
	return validator.New().Struct(j)
}

// Title returns the job title or "" when none was found.
func (j *ParsedJob) Title() string {
	if j.JobTitle == nil {
		return ""
	}
	return *j.JobTitle
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}
