package form

import "github.com/khrees2412/autodoc/pkg/models"

// ResumeField names a scalar field of models.ResumeRecord
type ResumeField int

const (
	FieldFullName ResumeField = iota
	FieldEmail
	FieldPhone
	FieldLocation
	FieldLinkedIn
	FieldGitHub
	FieldDegree
	FieldField
	FieldUniversity
	FieldStartYear
	FieldEndYear
	FieldSkills
	FieldTools
)

type resumeFieldInfo struct {
	label string
	step  Step
	ptr   func(*models.ResumeRecord) *string
}

var resumeFields = []resumeFieldInfo{
	FieldFullName:   {"Full Name", StepPersonal, func(r *models.ResumeRecord) *string { return &r.FullName }},
	FieldEmail:      {"Email", StepPersonal, func(r *models.ResumeRecord) *string { return &r.Email }},
	FieldPhone:      {"Phone", StepPersonal, func(r *models.ResumeRecord) *string { return &r.Phone }},
	FieldLocation:   {"Location", StepPersonal, func(r *models.ResumeRecord) *string { return &r.Location }},
	FieldLinkedIn:   {"LinkedIn URL", StepPersonal, func(r *models.ResumeRecord) *string { return &r.LinkedIn }},
	FieldGitHub:     {"GitHub URL", StepPersonal, func(r *models.ResumeRecord) *string { return &r.GitHub }},
	FieldDegree:     {"Degree", StepEducation, func(r *models.ResumeRecord) *string { return &r.Degree }},
	FieldField:      {"Field of Study", StepEducation, func(r *models.ResumeRecord) *string { return &r.Field }},
	FieldUniversity: {"University", StepEducation, func(r *models.ResumeRecord) *string { return &r.University }},
	FieldStartYear:  {"Start Year", StepEducation, func(r *models.ResumeRecord) *string { return &r.StartYear }},
	FieldEndYear:    {"End Year", StepEducation, func(r *models.ResumeRecord) *string { return &r.EndYear }},
	FieldSkills:     {"Skills (comma separated)", StepSkills, func(r *models.ResumeRecord) *string { return &r.Skills }},
	FieldTools:      {"Tools & Frameworks", StepSkills, func(r *models.ResumeRecord) *string { return &r.Tools }},
}

// Label is the input placeholder for the field
func (f ResumeField) Label() string { return resumeFields[f].label }

// Step is the wizard page the field lives on
func (f ResumeField) Step() Step { return resumeFields[f].step }

// FieldsForStep returns the scalar fields shown on step, in display order.
// List steps return nil.
func FieldsForStep(step Step) []ResumeField {
	var fields []ResumeField
	for i, info := range resumeFields {
		if info.step == step {
			fields = append(fields, ResumeField(i))
		}
	}
	return fields
}

// CoverLetterField names a field of models.CoverLetterRecord
type CoverLetterField int

const (
	CoverJobTitle CoverLetterField = iota
	CoverCompanyName
	CoverJobDescription
)

var coverLetterFields = []struct {
	label string
	ptr   func(*models.CoverLetterRecord) *string
}{
	CoverJobTitle:       {"Job Title", func(r *models.CoverLetterRecord) *string { return &r.JobTitle }},
	CoverCompanyName:    {"Company Name", func(r *models.CoverLetterRecord) *string { return &r.CompanyName }},
	CoverJobDescription: {"Job Description", func(r *models.CoverLetterRecord) *string { return &r.JobDescription }},
}

func (f CoverLetterField) Label() string { return coverLetterFields[f].label }

// CoverLetterFields returns every cover letter field in display order
func CoverLetterFields() []CoverLetterField {
	return []CoverLetterField{CoverJobTitle, CoverCompanyName, CoverJobDescription}
}

// PortfolioField names a field of models.PortfolioRecord
type PortfolioField int

const (
	PortfolioName PortfolioField = iota
	PortfolioBio
	PortfolioSkills
	PortfolioProjects
	PortfolioGitHub
	PortfolioLinkedIn
)

var portfolioFields = []struct {
	label string
	ptr   func(*models.PortfolioRecord) *string
}{
	PortfolioName:     {"Your Name", func(r *models.PortfolioRecord) *string { return &r.Name }},
	PortfolioBio:      {"Short Bio", func(r *models.PortfolioRecord) *string { return &r.Bio }},
	PortfolioSkills:   {"Skills (comma separated)", func(r *models.PortfolioRecord) *string { return &r.Skills }},
	PortfolioProjects: {"Projects (one per line)", func(r *models.PortfolioRecord) *string { return &r.Projects }},
	PortfolioGitHub:   {"GitHub URL", func(r *models.PortfolioRecord) *string { return &r.GitHub }},
	PortfolioLinkedIn: {"LinkedIn URL", func(r *models.PortfolioRecord) *string { return &r.LinkedIn }},
}

func (f PortfolioField) Label() string { return portfolioFields[f].label }

// Multiline reports whether the field holds one entry per line
func (f PortfolioField) Multiline() bool { return f == PortfolioProjects }

// PortfolioFields returns every portfolio field in display order
func PortfolioFields() []PortfolioField {
	return []PortfolioField{PortfolioName, PortfolioBio, PortfolioSkills, PortfolioProjects, PortfolioGitHub, PortfolioLinkedIn}
}
