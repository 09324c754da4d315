package form

import "errors"

// MandatoryFieldsMessage is the inline notice shown when a step fails validation
const MandatoryFieldsMessage = "Please fill mandatory fields"

// Sentinel errors for form operations
var (
	ErrMandatoryFields    = errors.New("mandatory fields missing")
	ErrInvalidStep        = errors.New("invalid step")
	ErrIndexOutOfRange    = errors.New("item index out of range")
	ErrInvalidField       = errors.New("field does not belong to section")
	ErrMinimumItems       = errors.New("section is at its minimum size")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrStaleSubmission    = errors.New("submission no longer belongs to this session")
)
