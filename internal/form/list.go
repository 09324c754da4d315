package form

import (
	"fmt"

	"github.com/khrees2412/autodoc/pkg/models"
)

// Section names a repeatable collection of models.ResumeRecord
type Section int

const (
	SectionProjects Section = iota
	SectionExperience
	SectionCertifications
	SectionExtracurriculars
)

func (s Section) String() string {
	switch s {
	case SectionProjects:
		return "projects"
	case SectionExperience:
		return "experience"
	case SectionCertifications:
		return "certifications"
	case SectionExtracurriculars:
		return "extracurriculars"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// Noun names n entries of the section, e.g. "1 project" or "2 activities"
func (s Section) Noun(n int) string {
	one, many := "entry", "entries"
	switch s {
	case SectionProjects:
		one, many = "project", "projects"
	case SectionExperience:
		one, many = "experience entry", "experience entries"
	case SectionCertifications:
		one, many = "certification", "certifications"
	case SectionExtracurriculars:
		one, many = "activity", "activities"
	}
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// ItemField names an attribute of a structured list entry. Plain text
// sections use ItemText.
type ItemField int

const (
	ItemText ItemField = iota
	ItemTitle
	ItemTech
	ItemDesc
	ItemRole
	ItemCompany
	ItemDuration
)

var itemLabels = map[ItemField]string{
	ItemTitle:    "Project Title",
	ItemTech:     "Tech Stack",
	ItemDesc:     "Description",
	ItemRole:     "Role",
	ItemCompany:  "Company",
	ItemDuration: "Duration",
}

// Label returns the placeholder for the attribute within section
func (f ItemField) Label(section Section) string {
	if f == ItemText {
		switch section {
		case SectionCertifications:
			return "Certification"
		case SectionExtracurriculars:
			return "Activity"
		}
	}
	return itemLabels[f]
}

// Fields returns the attributes of one entry of the section
func (s Section) Fields() []ItemField {
	switch s {
	case SectionProjects:
		return []ItemField{ItemTitle, ItemTech, ItemDesc}
	case SectionExperience:
		return []ItemField{ItemRole, ItemCompany, ItemDuration, ItemDesc}
	default:
		return []ItemField{ItemText}
	}
}

// AddLabel is the caption of the add-entry action
func (s Section) AddLabel() string {
	switch s {
	case SectionProjects:
		return "+ Add Project"
	case SectionExperience:
		return "+ Add Experience"
	case SectionCertifications:
		return "+ Add Certification"
	default:
		return "+ Add Activity"
	}
}

// SectionForStep returns the collection edited on step, if any
func SectionForStep(step Step) (Section, bool) {
	switch step {
	case StepProjects:
		return SectionProjects, true
	case StepExperience:
		return SectionExperience, true
	case StepCertifications:
		return SectionCertifications, true
	case StepActivities:
		return SectionExtracurriculars, true
	}
	return 0, false
}

// SectionPolicy configures the size constraints of a collection
type SectionPolicy struct {
	MinItems int
}

// DefaultPolicies keeps at least one project. The other collections may be
// emptied.
func DefaultPolicies() map[Section]SectionPolicy {
	return map[Section]SectionPolicy{
		SectionProjects:         {MinItems: 1},
		SectionExperience:       {MinItems: 0},
		SectionCertifications:   {MinItems: 0},
		SectionExtracurriculars: {MinItems: 0},
	}
}

// ListEditor edits the repeatable collections of a resume in place
type ListEditor struct {
	rec      *models.ResumeRecord
	policies map[Section]SectionPolicy
}

// NewListEditor edits rec under policies; nil means DefaultPolicies
func NewListEditor(rec *models.ResumeRecord, policies map[Section]SectionPolicy) *ListEditor {
	if policies == nil {
		policies = DefaultPolicies()
	}
	return &ListEditor{rec: rec, policies: policies}
}

// Policy returns the configured constraints for section
func (e *ListEditor) Policy(section Section) SectionPolicy {
	return e.policies[section]
}

// Len returns the number of entries in section
func (e *ListEditor) Len(section Section) int {
	switch section {
	case SectionProjects:
		return len(e.rec.Projects)
	case SectionExperience:
		return len(e.rec.Experience)
	case SectionCertifications:
		return len(e.rec.Certifications)
	case SectionExtracurriculars:
		return len(e.rec.Extracurriculars)
	}
	return 0
}

// Normalize replaces null collections with empty ones and pads each section
// with template entries up to its minimum. Records decoded from JSON may
// carry either.
func (e *ListEditor) Normalize() {
	if e.rec.Projects == nil {
		e.rec.Projects = []models.Project{}
	}
	if e.rec.Experience == nil {
		e.rec.Experience = []models.Experience{}
	}
	if e.rec.Certifications == nil {
		e.rec.Certifications = []string{}
	}
	if e.rec.Extracurriculars == nil {
		e.rec.Extracurriculars = []string{}
	}
	for section, policy := range e.policies {
		for e.Len(section) < policy.MinItems {
			if err := e.AddItem(section); err != nil {
				break
			}
		}
	}
}

// CanRemove reports whether RemoveItem would be allowed on section
func (e *ListEditor) CanRemove(section Section) bool {
	return e.Len(section) > e.policies[section].MinItems
}

// Item reads one attribute of an entry. For text sections field is ignored.
func (e *ListEditor) Item(section Section, index int, field ItemField) (string, error) {
	ptr, err := e.itemPtr(section, index, field)
	if err != nil {
		return "", err
	}
	return *ptr, nil
}

// EditItem replaces one attribute of an entry, or the whole entry for text
// sections.
func (e *ListEditor) EditItem(section Section, index int, field ItemField, value string) error {
	ptr, err := e.itemPtr(section, index, field)
	if err != nil {
		return err
	}
	*ptr = value
	return nil
}

// AddItem appends the section's empty template entry
func (e *ListEditor) AddItem(section Section) error {
	switch section {
	case SectionProjects:
		e.rec.Projects = append(e.rec.Projects, models.Project{})
	case SectionExperience:
		e.rec.Experience = append(e.rec.Experience, models.Experience{})
	case SectionCertifications:
		e.rec.Certifications = append(e.rec.Certifications, "")
	case SectionExtracurriculars:
		e.rec.Extracurriculars = append(e.rec.Extracurriculars, "")
	default:
		return fmt.Errorf("add to %s: %w", section, ErrInvalidField)
	}
	return nil
}

// RemoveItem deletes the entry at index unless that would take the section
// below its minimum size.
func (e *ListEditor) RemoveItem(section Section, index int) error {
	n := e.Len(section)
	if index < 0 || index >= n {
		return fmt.Errorf("remove %s[%d]: %w", section, index, ErrIndexOutOfRange)
	}
	if n-1 < e.policies[section].MinItems {
		return fmt.Errorf("remove %s[%d]: %w", section, index, ErrMinimumItems)
	}
	switch section {
	case SectionProjects:
		e.rec.Projects = removeAt(e.rec.Projects, index)
	case SectionExperience:
		e.rec.Experience = removeAt(e.rec.Experience, index)
	case SectionCertifications:
		e.rec.Certifications = removeAt(e.rec.Certifications, index)
	case SectionExtracurriculars:
		e.rec.Extracurriculars = removeAt(e.rec.Extracurriculars, index)
	}
	return nil
}

func (e *ListEditor) itemPtr(section Section, index int, field ItemField) (*string, error) {
	if index < 0 || index >= e.Len(section) {
		return nil, fmt.Errorf("%s[%d]: %w", section, index, ErrIndexOutOfRange)
	}
	switch section {
	case SectionProjects:
		p := &e.rec.Projects[index]
		switch field {
		case ItemTitle:
			return &p.Title, nil
		case ItemTech:
			return &p.Tech, nil
		case ItemDesc:
			return &p.Desc, nil
		}
	case SectionExperience:
		x := &e.rec.Experience[index]
		switch field {
		case ItemRole:
			return &x.Role, nil
		case ItemCompany:
			return &x.Company, nil
		case ItemDuration:
			return &x.Duration, nil
		case ItemDesc:
			return &x.Desc, nil
		}
	case SectionCertifications:
		return &e.rec.Certifications[index], nil
	case SectionExtracurriculars:
		return &e.rec.Extracurriculars[index], nil
	}
	return nil, fmt.Errorf("%s[%d]: %w", section, index, ErrInvalidField)
}

// removeAt copies so the caller's backing array is never shifted in place
func removeAt[T any](items []T, index int) []T {
	return append(items[:index:index], items[index+1:]...)
}
