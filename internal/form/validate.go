package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/khrees2412/autodoc/pkg/models"
)

var validate = newValidator()

// newValidator registers the "nonblank" rule used by the record structs.
// Whitespace-only input counts as empty.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// stepRequired lists the ResumeRecord fields each step gates on. Steps not
// listed have no required fields.
var stepRequired = map[Step][]string{
	StepPersonal:  {"FullName", "Email"},
	StepEducation: {"Degree", "University"},
	StepSkills:    {"Skills"},
}

// StepValid reports whether the required fields of step are filled in
func StepValid(rec *models.ResumeRecord, step Step) bool {
	fields, ok := stepRequired[step]
	if !ok {
		return true
	}
	return validate.StructPartial(rec, fields...) == nil
}

// ValidateResume checks every gated step at once. The CLI uses it since it
// has no wizard to walk through.
func ValidateResume(rec *models.ResumeRecord) error {
	for step := StepPersonal; step <= StepCount; step++ {
		fields, ok := stepRequired[step]
		if !ok {
			continue
		}
		if err := validate.StructPartial(rec, fields...); err != nil {
			return mandatoryError(err)
		}
	}
	return nil
}

// ValidateCoverLetter checks the fields the generation service requires
func ValidateCoverLetter(rec *models.CoverLetterRecord) error {
	if err := validate.Struct(rec); err != nil {
		return mandatoryError(err)
	}
	return nil
}

// ValidatePortfolio checks the fields the generation service requires
func ValidatePortfolio(rec *models.PortfolioRecord) error {
	if err := validate.Struct(rec); err != nil {
		return mandatoryError(err)
	}
	return nil
}

func mandatoryError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return fmt.Errorf("%w: %s", ErrMandatoryFields, strings.Join(names, ", "))
}
