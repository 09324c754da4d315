package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/khrees2412/autodoc/internal/app"
	"github.com/khrees2412/autodoc/internal/form"
	"github.com/khrees2412/autodoc/internal/generator"
	"github.com/khrees2412/autodoc/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService answers every generation path with a fixed status and body
type fakeService struct {
	calls atomic.Int32
	paths []string
	body  []byte
}

func newFakeService(t *testing.T, status int, response string) (*fakeService, *httptest.Server) {
	t.Helper()
	svc := &fakeService{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		svc.calls.Add(1)
		svc.paths = append(svc.paths, r.URL.Path)
		svc.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return svc, srv
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command with args against an isolated home dir
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIIn(t, t.TempDir(), args...)
}

func runCLIIn(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("AUTODOC_LOG_FILE", filepath.Join(home, "autodoc.log"))
	t.Setenv("AUTODOC_OUTPUT_DIR", home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())

	if application != nil {
		_ = application.Close()
		application = nil
	}
	resetFlags(rootCmd)
	rootCmd.SetArgs(nil)
	return out.String(), err
}

func TestGenerateCoverLetter(t *testing.T) {
	svc, srv := newFakeService(t, http.StatusOK, `{"cover_letter_text":"Dear Acme team"}`)

	out, err := runCLI(t, "generate", "cover-letter", "--service-url", srv.URL,
		"--job-title", "Backend Engineer", "--company", "Acme", "--description", "Go services")

	require.NoError(t, err)
	assert.Contains(t, out, "Generated Cover Letter")
	assert.Contains(t, out, "Dear Acme team")
	assert.Equal(t, []string{"/generate-cover-letter"}, svc.paths)
	assert.JSONEq(t, `{"jobTitle":"Backend Engineer","companyName":"Acme","jobDescription":"Go services"}`, string(svc.body))
}

func TestGenerateCoverLetterMissingField(t *testing.T) {
	svc, srv := newFakeService(t, http.StatusOK, `{"cover_letter_text":"x"}`)

	_, err := runCLI(t, "generate", "cover-letter", "--service-url", srv.URL,
		"--job-title", "Backend Engineer", "--description", "Go services")

	assert.ErrorIs(t, err, form.ErrMandatoryFields)
	assert.Zero(t, svc.calls.Load())
}

func TestGeneratePortfolioSplitsProjects(t *testing.T) {
	svc, srv := newFakeService(t, http.StatusOK, `{"portfolio_text":"PORTFOLIO"}`)

	out, err := runCLI(t, "generate", "portfolio", "--service-url", srv.URL,
		"--name", "Jane", "--bio", "Engineer", "--skills", "Go",
		"--projects", "Line A\n\nLine B\n")

	require.NoError(t, err)
	assert.Contains(t, out, "PORTFOLIO")
	var payload struct {
		Projects []string `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(svc.body, &payload))
	assert.Equal(t, []string{"Line A", "Line B"}, payload.Projects)
}

func TestGenerateResumeFromFile(t *testing.T) {
	svc, srv := newFakeService(t, http.StatusOK, `{"resume_text":"JANE DOE\nEngineer"}`)
	path := filepath.Join(t.TempDir(), "me.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"fullName": "Jane Doe",
		"email": "jane@x.com",
		"degree": "BSc",
		"university": "MIT",
		"skills": "Go"
	}`), 0o600))

	out, err := runCLI(t, "generate", "resume", "--service-url", srv.URL, "--file", path, "--style", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "JANE DOE\nEngineer")
	assert.Equal(t, []string{"/generate"}, svc.paths)

	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(svc.body, &sent))
	assert.JSONEq(t, `[{"title":"","tech":"","desc":""}]`, string(sent["projects"]))
	assert.JSONEq(t, `[""]`, string(sent["certifications"]))
}

func TestGenerateResumeSendsEmptyListsNotNull(t *testing.T) {
	svc, srv := newFakeService(t, http.StatusOK, `{"resume_text":"ok"}`)
	path := filepath.Join(t.TempDir(), "me.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"fullName": "Jane Doe",
		"email": "jane@x.com",
		"degree": "BSc",
		"university": "MIT",
		"skills": "Go",
		"projects": [],
		"certifications": null
	}`), 0o600))

	_, err := runCLI(t, "generate", "resume", "--service-url", srv.URL, "--file", path)

	require.NoError(t, err)
	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(svc.body, &sent))
	assert.JSONEq(t, `[{"title":"","tech":"","desc":""}]`, string(sent["projects"]))
	assert.JSONEq(t, `[]`, string(sent["certifications"]))
}

func TestGenerateResumeMissingFieldSkipsService(t *testing.T) {
	svc, srv := newFakeService(t, http.StatusOK, `{"resume_text":"ok"}`)
	path := filepath.Join(t.TempDir(), "me.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fullName":"Jane","email":"j@x.com"}`), 0o600))

	_, err := runCLI(t, "generate", "resume", "--service-url", srv.URL, "--file", path)

	assert.ErrorIs(t, err, form.ErrMandatoryFields)
	assert.Empty(t, svc.paths)
}

func TestGenerateResumeServiceFailure(t *testing.T) {
	svc, srv := newFakeService(t, http.StatusInternalServerError, `{"detail":"boom"}`)
	path := filepath.Join(t.TempDir(), "me.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fullName":"Jane","email":"j@x.com","degree":"BSc","university":"MIT","skills":"Go"}`), 0o600))

	_, err := runCLI(t, "generate", "resume", "--service-url", srv.URL, "--file", path)

	assert.ErrorIs(t, err, generator.ErrGenerationFailed)
	assert.ErrorContains(t, err, "generate resume")
	assert.EqualValues(t, 1, svc.calls.Load())
}

func TestGenerateResumeRejectsBadStyle(t *testing.T) {
	_, err := runCLI(t, "generate", "resume", "--file", "me.json", "--style", "4")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	_, err := runCLI(t, "config", "set", "--key", "openai_key", "--value", "sk")
	assert.ErrorIs(t, err, app.ErrInvalidKey)
}

func TestConfigSetAndShow(t *testing.T) {
	home := t.TempDir()

	_, err := runCLIIn(t, home, "config", "set", "--key", "default_style", "--value", "5")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)

	_, err = runCLIIn(t, home, "config", "set", "--key", "default_style", "--value", "3")
	require.NoError(t, err)

	out, err := runCLIIn(t, home, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Template 3")
	assert.Contains(t, out, filepath.Join(home, ".autodoc", "config.yaml"))
}

func TestLoadResumeRecordFillsMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fullName":"Jane","projects":[],"certifications":null,"experience":[]}`), 0o600))

	rec, err := loadResumeRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", rec.FullName)
	assert.Equal(t, []models.Project{{}}, rec.Projects)
	assert.Equal(t, []models.Experience{}, rec.Experience)
	assert.Equal(t, []string{}, rec.Certifications)
	assert.Len(t, rec.Extracurriculars, 1)

	_, err = loadResumeRecord("")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestResumeTemplateAndCheck(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "records", "me.json")

	out, err := runCLIIn(t, home, "resume", "template", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Resume record written")

	_, err = runCLIIn(t, home, "resume", "template", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = runCLIIn(t, home, "resume", "check", path)
	assert.ErrorIs(t, err, form.ErrMandatoryFields)
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "Extracurricular Activities")

	rec, err := loadResumeRecord(path)
	require.NoError(t, err)
	assert.Len(t, rec.Projects, 1)
}
