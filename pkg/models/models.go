package models

import (
	"strings"
	"time"
)

// Project represents a single project entry on a resume
type Project struct {
	Title string `json:"title"`
	Tech  string `json:"tech"`
	Desc  string `json:"desc"`
}

// Experience represents a single work experience entry on a resume
type Experience struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Desc     string `json:"desc"`
}

// ResumeRecord holds everything the resume form collects. The JSON shape is
// the request body of the /generate endpoint.
type ResumeRecord struct {
	// Personal
	FullName string `json:"fullName" validate:"nonblank"`
	Email    string `json:"email" validate:"nonblank"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`

	// Education
	Degree     string `json:"degree" validate:"nonblank"`
	Field      string `json:"field"`
	University string `json:"university" validate:"nonblank"`
	StartYear  string `json:"startYear"`
	EndYear    string `json:"endYear"`

	// Skills
	Skills string `json:"skills" validate:"nonblank"`
	Tools  string `json:"tools"`

	Projects         []Project    `json:"projects"`
	Experience       []Experience `json:"experience"`
	Certifications   []string     `json:"certifications"`
	Extracurriculars []string     `json:"extracurriculars"`
}

// NewResumeRecord returns the empty form: blank scalars and one empty
// template entry per repeatable collection.
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Projects:         []Project{{}},
		Experience:       []Experience{{}},
		Certifications:   []string{""},
		Extracurriculars: []string{""},
	}
}

// Clone returns a deep copy, safe to hand to another goroutine while the
// original keeps being edited
func (r *ResumeRecord) Clone() *ResumeRecord {
	c := *r
	c.Projects = cloneSlice(r.Projects)
	c.Experience = cloneSlice(r.Experience)
	c.Certifications = cloneSlice(r.Certifications)
	c.Extracurriculars = cloneSlice(r.Extracurriculars)
	return &c
}

// cloneSlice keeps empty collections non-nil so they encode as [] not null
func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// CoverLetterRecord is the request body of /generate-cover-letter
type CoverLetterRecord struct {
	JobTitle       string `json:"jobTitle" validate:"nonblank"`
	CompanyName    string `json:"companyName" validate:"nonblank"`
	JobDescription string `json:"jobDescription" validate:"nonblank"`
}

// PortfolioRecord holds the portfolio form. Projects is free text with one
// project per line; see Payload.
type PortfolioRecord struct {
	Name     string `json:"name" validate:"nonblank"`
	Bio      string `json:"bio" validate:"nonblank"`
	Skills   string `json:"skills" validate:"nonblank"`
	Projects string `json:"projects"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// PortfolioPayload is the request body of /generate-portfolio
type PortfolioPayload struct {
	Name     string   `json:"name"`
	Bio      string   `json:"bio"`
	Skills   string   `json:"skills"`
	Projects []string `json:"projects"`
	GitHub   string   `json:"github"`
	LinkedIn string   `json:"linkedin"`
}

// Payload converts the record into its wire shape, splitting Projects into
// trimmed, non-empty lines.
func (p *PortfolioRecord) Payload() PortfolioPayload {
	projects := []string{}
	for _, line := range strings.Split(p.Projects, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			projects = append(projects, line)
		}
	}
	return PortfolioPayload{
		Name:     p.Name,
		Bio:      p.Bio,
		Skills:   p.Skills,
		Projects: projects,
		GitHub:   p.GitHub,
		LinkedIn: p.LinkedIn,
	}
}

// DocumentKind identifies which generator produced a result
type DocumentKind string

const (
	KindResume      DocumentKind = "resume"
	KindCoverLetter DocumentKind = "cover_letter"
	KindPortfolio   DocumentKind = "portfolio"
)

// Title returns a human readable name for the kind
func (k DocumentKind) Title() string {
	switch k {
	case KindResume:
		return "Resume"
	case KindCoverLetter:
		return "Cover Letter"
	case KindPortfolio:
		return "Portfolio"
	default:
		return string(k)
	}
}

// GenerationResult is the text returned by the generation service.
// The zero value means nothing has been generated yet.
type GenerationResult struct {
	Kind        DocumentKind `json:"kind"`
	Text        string       `json:"text"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// Empty reports whether no text has been generated
func (r GenerationResult) Empty() bool {
	return r.Text == ""
}
