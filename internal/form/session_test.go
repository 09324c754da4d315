package form

import (
	"context"
	"errors"
	"testing"

	"github.com/khrees2412/autodoc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("connection refused")

func TestGenerateNewRestoresEmptyRecord(t *testing.T) {
	s := NewResumeSession()
	s.SetField(FieldFullName, "Jane Doe")
	s.SetField(FieldEmail, "jane@x.com")
	require.NoError(t, s.AddItem(SectionProjects))
	require.NoError(t, s.RemoveItem(SectionExperience, 0))
	require.NoError(t, s.Jump(StepActivities))
	require.NoError(t, s.Submit(context.Background(), func(context.Context) (string, error) {
		return "RESUME", nil
	}))
	require.False(t, s.Result().Empty())

	s.GenerateNew()

	assert.Equal(t, *models.NewResumeRecord(), *s.Record())
	assert.Equal(t, StepPersonal, s.Step())
	assert.True(t, s.Result().Empty())
}

func TestEditKeepsRecord(t *testing.T) {
	s := NewResumeSession()
	s.SetField(FieldFullName, "Jane Doe")
	require.NoError(t, s.Jump(StepActivities))
	require.NoError(t, s.Submit(context.Background(), func(context.Context) (string, error) {
		return "RESUME", nil
	}))

	s.Edit()

	assert.Equal(t, "Jane Doe", s.Field(FieldFullName))
	assert.Equal(t, StepPersonal, s.Step())
	assert.True(t, s.Result().Empty())
}

func TestSubmitStoresTextUnmodified(t *testing.T) {
	s := NewResumeSession()
	text := "  JANE DOE\n\n- Go\n"
	require.NoError(t, s.Submit(context.Background(), func(context.Context) (string, error) {
		return text, nil
	}))

	res := s.Result()
	assert.Equal(t, text, res.Text)
	assert.Equal(t, models.KindResume, res.Kind)
	assert.False(t, s.Generating())
}

func TestFailedSubmitLeavesResultAndAllowsRetry(t *testing.T) {
	s := NewResumeSession()
	err := s.Submit(context.Background(), func(context.Context) (string, error) {
		return "", errBackend
	})
	assert.ErrorIs(t, err, errBackend)
	assert.True(t, s.Result().Empty())
	assert.False(t, s.Generating())

	s.SetField(FieldFullName, "Jane")
	require.NoError(t, s.Submit(context.Background(), func(context.Context) (string, error) {
		return "second try", nil
	}))
	assert.Equal(t, "second try", s.Result().Text)
}

func TestFailedSubmitKeepsPreviousResult(t *testing.T) {
	s := NewCoverLetterSession()
	require.NoError(t, s.Submit(context.Background(), func(context.Context) (string, error) {
		return "first", nil
	}))
	require.Error(t, s.Submit(context.Background(), func(context.Context) (string, error) {
		return "", errBackend
	}))
	assert.Equal(t, "first", s.Result().Text)
}

func TestSecondSubmissionRefusedWhileBusy(t *testing.T) {
	s := NewPortfolioSession()
	ticket, ctx, err := s.BeginSubmit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ctx)
	assert.True(t, s.Generating())
	assert.Equal(t, s.ID(), ticket.Session)

	_, _, err = s.BeginSubmit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	require.NoError(t, s.CompleteSubmit(ticket, "done", nil))
	assert.False(t, s.Generating())
	assert.Equal(t, models.KindPortfolio, s.Result().Kind)
}

func TestResetDiscardsInFlightResult(t *testing.T) {
	s := NewResumeSession()
	ticket, ctx, err := s.BeginSubmit(context.Background())
	require.NoError(t, err)

	s.GenerateNew()

	assert.ErrorIs(t, ctx.Err(), context.Canceled, "reset cancels the request")
	assert.ErrorIs(t, s.CompleteSubmit(ticket, "late", nil), ErrStaleSubmission)
	assert.True(t, s.Result().Empty())
	assert.False(t, s.Generating())
}

func TestCloseDiscardsInFlightResult(t *testing.T) {
	s := NewCoverLetterSession()
	ticket, ctx, err := s.BeginSubmit(context.Background())
	require.NoError(t, err)

	s.Close()

	assert.Error(t, ctx.Err())
	assert.ErrorIs(t, s.CompleteSubmit(ticket, "late", nil), ErrStaleSubmission)
	assert.True(t, s.Result().Empty())
}

func TestTicketFromAnotherSessionIsStale(t *testing.T) {
	a := NewResumeSession()
	b := NewResumeSession()
	ticket, _, err := a.BeginSubmit(context.Background())
	require.NoError(t, err)
	_, _, err = b.BeginSubmit(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, b.CompleteSubmit(ticket, "wrong session", nil), ErrStaleSubmission)
	assert.True(t, b.Generating())
}

func TestCoverLetterAndPortfolioFields(t *testing.T) {
	cl := NewCoverLetterSession()
	assert.ErrorIs(t, cl.Validate(), ErrMandatoryFields)
	cl.SetField(CoverJobTitle, "SRE")
	cl.SetField(CoverCompanyName, "Acme")
	cl.SetField(CoverJobDescription, "Run things")
	assert.NoError(t, cl.Validate())
	assert.Equal(t, "Acme", cl.Record().CompanyName)
	assert.Equal(t, "SRE", cl.Field(CoverJobTitle))

	pf := NewPortfolioSession()
	pf.SetField(PortfolioName, "Jane")
	pf.SetField(PortfolioBio, "Engineer")
	assert.ErrorIs(t, pf.Validate(), ErrMandatoryFields)
	pf.SetField(PortfolioSkills, "Go")
	pf.SetField(PortfolioProjects, "Line A\n\nLine B\n")
	assert.NoError(t, pf.Validate())
	assert.Equal(t, []string{"Line A", "Line B"}, pf.Record().Payload().Projects)
	assert.True(t, PortfolioProjects.Multiline())
}

func TestLoadResumeSessionValidatesLoadedRecord(t *testing.T) {
	rec := models.NewResumeRecord()
	rec.FullName = "Jane"
	rec.Email = "jane@x.com"
	s := LoadResumeSession(rec)

	require.NoError(t, s.Next())
	assert.Same(t, rec, s.Record())
	require.NoError(t, s.AddItem(SectionProjects))
	assert.Len(t, rec.Projects, 2)
}
