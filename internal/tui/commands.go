package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/khrees2412/autodoc/internal/form"
	"github.com/khrees2412/autodoc/internal/preview"
	"github.com/khrees2412/autodoc/pkg/models"
)

// Generator is the generation service as seen by the UI
type Generator interface {
	GenerateResume(ctx context.Context, rec *models.ResumeRecord) (string, error)
	GenerateCoverLetter(ctx context.Context, rec *models.CoverLetterRecord) (string, error)
	GeneratePortfolio(ctx context.Context, rec *models.PortfolioRecord) (string, error)
}

// Printer hands a preview page to the host's print capability
type Printer interface {
	PrintPDF(ctx context.Context, html, outPath string) error
}

// Deps are the collaborators the UI needs
type Deps struct {
	Generator    Generator
	Printer      Printer
	Logger       *slog.Logger
	OutputDir    string
	DefaultStyle preview.Style
}

// submitter is the submission half of a form session
type submitter interface {
	BeginSubmit(parent context.Context) (form.Ticket, context.Context, error)
	CompleteSubmit(t form.Ticket, text string, genErr error) error
	Result() models.GenerationResult
	Generating() bool
	Close()
}

// generatedMsg carries the outcome of one submission
type generatedMsg struct {
	kind   models.DocumentKind
	ticket form.Ticket
	text   string
	err    error
}

// printedMsg carries the outcome of a print job
type printedMsg struct {
	kind models.DocumentKind
	path string
	err  error
}

// backToMenuMsg asks the app to close the active form
type backToMenuMsg struct{}

func backToMenu() tea.Msg { return backToMenuMsg{} }

// startSubmission begins a submission on s and returns the command that
// performs it. The snapshot is taken before the command leaves the UI
// goroutine.
func startSubmission(parent context.Context, kind models.DocumentKind, s submitter, run func(context.Context) (string, error)) (tea.Cmd, error) {
	ticket, ctx, err := s.BeginSubmit(parent)
	if err != nil {
		return nil, err
	}
	return func() tea.Msg {
		text, err := run(ctx)
		return generatedMsg{kind: kind, ticket: ticket, text: text, err: err}
	}, nil
}

// finishSubmission applies msg to s and returns the notice to show, if any
func finishSubmission(s submitter, msg generatedMsg, failure string, logger *slog.Logger) (applied bool, notice string) {
	err := s.CompleteSubmit(msg.ticket, msg.text, msg.err)
	switch {
	case errors.Is(err, form.ErrStaleSubmission):
		logger.Debug("dropped stale generation result", "kind", msg.kind, "seq", msg.ticket.Seq)
		return false, ""
	case errors.Is(err, form.ErrMandatoryFields):
		return false, form.MandatoryFieldsMessage
	case err != nil:
		logger.Error("generation failed", "kind", msg.kind, "err", err)
		return false, failure
	}
	logger.Info("generation finished", "kind", msg.kind, "chars", len(msg.text))
	return !s.Result().Empty(), ""
}
