package form

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khrees2412/autodoc/pkg/models"
)

// Ticket identifies one submission. A result is applied only while its
// ticket is still the session's current one.
type Ticket struct {
	Session uuid.UUID
	Seq     uint64
}

// submission tracks the in-flight request and the last result of a session
type submission struct {
	mu     sync.Mutex
	id     uuid.UUID
	kind   models.DocumentKind
	seq    uint64
	cancel context.CancelFunc
	result models.GenerationResult
}

func (s *submission) init(kind models.DocumentKind) {
	s.id = uuid.New()
	s.kind = kind
}

// ID returns the session identity
func (s *submission) ID() uuid.UUID {
	return s.id
}

// Generating reports whether a request is outstanding
func (s *submission) Generating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Result returns the last applied generation result
func (s *submission) Result() models.GenerationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// BeginSubmit starts a submission. The returned context is cancelled when
// the session is reset or closed before CompleteSubmit.
func (s *submission) BeginSubmit(parent context.Context) (Ticket, context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return Ticket{}, nil, ErrSubmissionInFlight
	}
	s.seq++
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	return Ticket{Session: s.id, Seq: s.seq}, ctx, nil
}

// CompleteSubmit finishes the submission named by t. On success text
// becomes the session's result. A failed submission leaves the previous
// result untouched and returns genErr. A ticket that is no longer current
// is dropped with ErrStaleSubmission.
func (s *submission) CompleteSubmit(t Ticket, text string, genErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Session != s.id || t.Seq != s.seq || s.cancel == nil {
		return ErrStaleSubmission
	}
	s.cancel()
	s.cancel = nil
	if genErr != nil {
		return genErr
	}
	s.result = models.GenerationResult{
		Kind:        s.kind,
		Text:        text,
		GeneratedAt: time.Now(),
	}
	return nil
}

// Submit runs generate synchronously between BeginSubmit and CompleteSubmit
func (s *submission) Submit(ctx context.Context, generate func(context.Context) (string, error)) error {
	ticket, subCtx, err := s.BeginSubmit(ctx)
	if err != nil {
		return err
	}
	text, genErr := generate(subCtx)
	return s.CompleteSubmit(ticket, text, genErr)
}

// abandon cancels any in-flight request and invalidates its ticket
func (s *submission) abandon(clearResult bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	if clearResult {
		s.result = models.GenerationResult{}
	}
}

// Close abandons any in-flight submission. Call it when leaving the form.
func (s *submission) Close() {
	s.abandon(false)
}

// ResumeSession owns one resume record for the lifetime of a wizard run
type ResumeSession struct {
	submission
	record *models.ResumeRecord
	nav    *Navigator
	lists  *ListEditor
}

// NewResumeSession starts an empty resume at step 1
func NewResumeSession() *ResumeSession {
	return NewResumeSessionWithPolicies(nil)
}

// NewResumeSessionWithPolicies is NewResumeSession with custom list policies
func NewResumeSessionWithPolicies(policies map[Section]SectionPolicy) *ResumeSession {
	s := &ResumeSession{record: models.NewResumeRecord()}
	s.init(models.KindResume)
	s.nav = NewNavigator(func(step Step) bool { return StepValid(s.record, step) })
	s.lists = NewListEditor(s.record, policies)
	return s
}

// LoadResumeSession wraps an existing record, e.g. one read from disk.
// The record's collections are normalized in place.
func LoadResumeSession(rec *models.ResumeRecord) *ResumeSession {
	s := NewResumeSession()
	s.record = rec
	s.lists = NewListEditor(rec, s.lists.policies)
	s.lists.Normalize()
	return s
}

// Record returns the record being edited
func (s *ResumeSession) Record() *models.ResumeRecord { return s.record }

// Lists returns the list editor bound to the record
func (s *ResumeSession) Lists() *ListEditor { return s.lists }

// Step returns the current wizard step
func (s *ResumeSession) Step() Step { return s.nav.Step() }

// Error returns the inline validation message
func (s *ResumeSession) Error() string { return s.nav.Error() }

// Next advances when the current step validates
func (s *ResumeSession) Next() error { return s.nav.Next() }

// Back returns to the previous step
func (s *ResumeSession) Back() { s.nav.Back() }

// Jump moves to any step without validation
func (s *ResumeSession) Jump(step Step) error { return s.nav.Jump(step) }

// IsFirst reports whether the wizard is on step 1
func (s *ResumeSession) IsFirst() bool { return s.nav.IsFirst() }

// IsLast reports whether the wizard is on the submission step
func (s *ResumeSession) IsLast() bool { return s.nav.IsLast() }

// Field reads a scalar field
func (s *ResumeSession) Field(f ResumeField) string {
	return *resumeFields[f].ptr(s.record)
}

// SetField replaces a scalar field and clears the validation message
func (s *ResumeSession) SetField(f ResumeField, value string) {
	*resumeFields[f].ptr(s.record) = value
	s.nav.ClearError()
}

// EditItem edits a list entry and clears the validation message
func (s *ResumeSession) EditItem(section Section, index int, field ItemField, value string) error {
	if err := s.lists.EditItem(section, index, field, value); err != nil {
		return err
	}
	s.nav.ClearError()
	return nil
}

// AddItem appends an empty entry to section
func (s *ResumeSession) AddItem(section Section) error {
	if err := s.lists.AddItem(section); err != nil {
		return err
	}
	s.nav.ClearError()
	return nil
}

// RemoveItem deletes the entry at index of section
func (s *ResumeSession) RemoveItem(section Section, index int) error {
	if err := s.lists.RemoveItem(section, index); err != nil {
		return err
	}
	s.nav.ClearError()
	return nil
}

// Edit drops the generated result and returns to step 1, keeping the record
func (s *ResumeSession) Edit() {
	s.abandon(true)
	s.nav.Reset()
}

// GenerateNew drops the result and restores the empty record at step 1
func (s *ResumeSession) GenerateNew() {
	s.abandon(true)
	*s.record = *models.NewResumeRecord()
	s.nav.Reset()
}

// CoverLetterSession owns one cover letter record
type CoverLetterSession struct {
	submission
	record *models.CoverLetterRecord
}

// NewCoverLetterSession starts an empty cover letter
func NewCoverLetterSession() *CoverLetterSession {
	s := &CoverLetterSession{record: &models.CoverLetterRecord{}}
	s.init(models.KindCoverLetter)
	return s
}

// Record returns the record being edited
func (s *CoverLetterSession) Record() *models.CoverLetterRecord { return s.record }

// Field reads a field
func (s *CoverLetterSession) Field(f CoverLetterField) string {
	return *coverLetterFields[f].ptr(s.record)
}

// SetField replaces a field
func (s *CoverLetterSession) SetField(f CoverLetterField, value string) {
	*coverLetterFields[f].ptr(s.record) = value
}

// Validate checks the record before submission
func (s *CoverLetterSession) Validate() error {
	if err := ValidateCoverLetter(s.record); err != nil {
		return fmt.Errorf("cover letter: %w", err)
	}
	return nil
}

// PortfolioSession owns one portfolio record
type PortfolioSession struct {
	submission
	record *models.PortfolioRecord
}

// NewPortfolioSession starts an empty portfolio
func NewPortfolioSession() *PortfolioSession {
	s := &PortfolioSession{record: &models.PortfolioRecord{}}
	s.init(models.KindPortfolio)
	return s
}

// Record returns the record being edited
func (s *PortfolioSession) Record() *models.PortfolioRecord { return s.record }

// Field reads a field
func (s *PortfolioSession) Field(f PortfolioField) string {
	return *portfolioFields[f].ptr(s.record)
}

// SetField replaces a field
func (s *PortfolioSession) SetField(f PortfolioField, value string) {
	*portfolioFields[f].ptr(s.record) = value
}

// Validate checks the record before submission
func (s *PortfolioSession) Validate() error {
	if err := ValidatePortfolio(s.record); err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}
	return nil
}
