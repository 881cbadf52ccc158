package lexicon

import (
	"encoding/json"
	"os"
)

// SectionHeader names a section and the line pattern that opens it.
// Patterns are Go regular expressions matched against a single trimmed line.
type SectionHeader struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// Section names produced by the default tables.
const (
	SectionHead             = "header"
	SectionSummary          = "summary"
	SectionSkills           = "skills"
	SectionExperience       = "experience"
	SectionEducation        = "education"
	SectionProjects         = "projects"
	SectionResponsibilities = "responsibilities"
	SectionQualifications   = "qualifications"
	SectionPreferred        = "preferred"
	SectionAbout            = "about"
	SectionLocation         = "location"
	SectionCompensation     = "compensation"
)

func resumeHeader(name, alternatives string) SectionHeader {
	return SectionHeader{Name: name, Pattern: `(?i)^\s*(` + alternatives + `)([:\s]|\s*$)`}
}

func jobHeader(name, alternatives string) SectionHeader {
	return SectionHeader{Name: name, Pattern: `(?i)^\s*(` + alternatives + `)\s*:?\s*$`}
}

func jobHeaderPrefix(name, alternatives string) SectionHeader {
	return SectionHeader{Name: name, Pattern: `(?i)^\s*(` + alternatives + `)`}
}

// DefaultResumeHeaders returns the résumé header table in match order.
func DefaultResumeHeaders() []SectionHeader {
	return []SectionHeader{
		resumeHeader(SectionSummary, `summary|profile|objective|about\s*me`),
		resumeHeader(SectionSkills, `skills|technical\s*skills|technical\s*proficiency|core\s*competencies|technologies`),
		resumeHeader(SectionExperience, `experience|work\s*experience|employment\s*history|professional\s*experience`),
		resumeHeader(SectionEducation, `education|academic\s*background|academic\s*qualifications`),
		resumeHeader(SectionProjects, `projects|personal\s*projects`),
	}
}

// DefaultJobHeaders returns the job-description header table in match order.
func DefaultJobHeaders() []SectionHeader {
	return []SectionHeader{
		jobHeader(SectionResponsibilities, `responsibilities|what\s+you'?ll\s+do|duties|the\s+role|job\s+responsibilities|key\s+responsibilities|day[\s-]to[\s-]day|your\s+impact`),
		jobHeader(SectionQualifications, `qualifications|requirements|minimum\s+qualifications|basic\s+qualifications|required\s+skills|what\s+we'?re\s+looking\s+for|who\s+you\s+are|ideal\s+candidate|your\s+profile`),
		jobHeaderPrefix(SectionPreferred, `preferred\s+qualifications|nice[\s-]to[\s-]have|bonus\s+points|desired\s+skills|additional\s+qualifications`),
		jobHeader(SectionSkills, `skills|technical\s+skills|technical\s+proficiency|tools|technologies`),
		jobHeader(SectionExperience, `experience|required\s+experience`),
		jobHeader(SectionEducation, `education|educational\s+requirements|education\s+requirements`),
		jobHeader(SectionAbout, `about\s+us|about\s+the\s+company|who\s+we\s+are`),
		jobHeaderPrefix(SectionLocation, `location|where\s+you'?ll\s+work`),
		jobHeader(SectionCompensation, `compensation|salary|pay|benefits|perks`),
	}
}

// LoadHeaders reads a JSON array of {name, pattern} objects. An empty path
// returns fallback unchanged.
func LoadHeaders(path string, fallback []SectionHeader) ([]SectionHeader, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Message: "failed to read section headers", Path: path, Cause: err}
	}
	var headers []SectionHeader
	if err := json.Unmarshal(data, &headers); err != nil {
		return nil, &ResourceError{Message: "failed to parse section headers", Path: path, Cause: err}
	}
	return headers, nil
}
