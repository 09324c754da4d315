package form

import "fmt"

// Step is a page of the resume wizard, numbered from 1
type Step int

const (
	StepPersonal Step = iota + 1
	StepEducation
	StepSkills
	StepProjects
	StepExperience
	StepCertifications
	StepActivities
)

// StepCount is the number of pages in the resume wizard
const StepCount = StepActivities

var stepLabels = map[Step]string{
	StepPersonal:       "Personal",
	StepEducation:      "Education",
	StepSkills:         "Skills",
	StepProjects:       "Projects",
	StepExperience:     "Experience",
	StepCertifications: "Certifications",
	StepActivities:     "Activities",
}

var stepHeadings = map[Step]string{
	StepPersonal:       "Personal Information",
	StepEducation:      "Education",
	StepSkills:         "Skills",
	StepProjects:       "Projects",
	StepExperience:     "Experience",
	StepCertifications: "Certifications",
	StepActivities:     "Extracurricular Activities",
}

// Label is the short tab title of the step
func (s Step) Label() string { return stepLabels[s] }

// Heading is the page title of the step
func (s Step) Heading() string { return stepHeadings[s] }

// Valid reports whether s is one of the wizard's steps
func (s Step) Valid() bool { return s >= StepPersonal && s <= StepCount }

// Steps returns every step in order
func Steps() []Step {
	steps := make([]Step, 0, int(StepCount))
	for s := StepPersonal; s <= StepCount; s++ {
		steps = append(steps, s)
	}
	return steps
}

// Navigator tracks the current step and the shared validation message.
type Navigator struct {
	step  Step
	err   string
	valid func(Step) bool
}

// NewNavigator starts at step 1. valid decides whether Next may leave a step.
func NewNavigator(valid func(Step) bool) *Navigator {
	return &Navigator{step: StepPersonal, valid: valid}
}

// Step returns the current step
func (n *Navigator) Step() Step { return n.step }

// Error returns the current validation message, empty when there is none
func (n *Navigator) Error() string { return n.err }

// ClearError drops the validation message
func (n *Navigator) ClearError() { n.err = "" }

// IsFirst reports whether Back is a no-op
func (n *Navigator) IsFirst() bool { return n.step == StepPersonal }

// IsLast reports whether the current step is the submission step
func (n *Navigator) IsLast() bool { return n.step == StepCount }

// Next moves forward one step if the current step validates.
func (n *Navigator) Next() error {
	if n.valid != nil && !n.valid(n.step) {
		n.err = MandatoryFieldsMessage
		return fmt.Errorf("step %d: %w", n.step, ErrMandatoryFields)
	}
	n.err = ""
	if n.step < StepCount {
		n.step++
	}
	return nil
}

// Back moves to the previous step without validating
func (n *Navigator) Back() {
	if n.step > StepPersonal {
		n.step--
	}
}

// Jump moves straight to step, skipping validation
func (n *Navigator) Jump(step Step) error {
	if !step.Valid() {
		return fmt.Errorf("jump to %d: %w", step, ErrInvalidStep)
	}
	n.step = step
	return nil
}

// Reset returns to the first step and clears the message
func (n *Navigator) Reset() {
	n.step = StepPersonal
	n.err = ""
}
