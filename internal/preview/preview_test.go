package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/khrees2412/autodoc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      int
		want    Style
		wantErr bool
	}{
		{in: 1, want: StyleRelaxed},
		{in: 2, want: StyleLoose},
		{in: 3, want: StyleNormal},
		{in: 0, wantErr: true},
		{in: 4, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseStyle(%d)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.in, got.Number())
	}
}

func TestDefaultStyle(t *testing.T) {
	assert.Equal(t, StyleRelaxed, DefaultStyle(models.KindResume))
	assert.Equal(t, StyleFixed, DefaultStyle(models.KindCoverLetter))
	assert.Equal(t, StyleFixed, DefaultStyle(models.KindPortfolio))
}

func TestRenderHTMLEscapesButKeepsText(t *testing.T) {
	text := "Jane <Doe> & Co\n\n  - Built \"things\""

	for _, style := range append([]Style{StyleFixed}, ResumeStyles...) {
		page, err := RenderHTML(models.KindResume, text, style)
		require.NoError(t, err)

		assert.Contains(t, page, "Jane &lt;Doe&gt; &amp; Co\n\n  - Built &#34;things&#34;")
		assert.Contains(t, page, "white-space: pre-wrap")
		assert.Contains(t, page, `<div id="preview">`)
	}
}

func TestRenderHTMLStyleTreatments(t *testing.T) {
	loose, err := RenderHTML(models.KindResume, "x", StyleLoose)
	require.NoError(t, err)
	assert.Contains(t, loose, "line-height: 2;")
	assert.Contains(t, loose, "letter-spacing: 0.025em;")

	relaxed, err := RenderHTML(models.KindResume, "x", StyleRelaxed)
	require.NoError(t, err)
	assert.Contains(t, relaxed, "line-height: 1.625;")

	letter, err := RenderHTML(models.KindCoverLetter, "x", StyleFixed)
	require.NoError(t, err)
	assert.Contains(t, letter, "<title>Cover Letter</title>")
}

func TestRenderTerminalKeepsEveryLine(t *testing.T) {
	text := "JANE DOE\nEngineer\nGo, SQL"

	for _, style := range ResumeStyles {
		out := RenderTerminal(text, style, 0)
		for _, line := range strings.Split(text, "\n") {
			assert.Contains(t, out, line)
		}
	}
}

func TestRenderTerminalLooseDoublesSpacing(t *testing.T) {
	normal := RenderTerminal("a\nb", StyleNormal, 0)
	loose := RenderTerminal("a\nb", StyleLoose, 0)
	assert.Greater(t, strings.Count(loose, "\n"), strings.Count(normal, "\n"))
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "out/resume-20260304-050607.pdf", OutputPath("out", "resume", now))
	assert.Equal(t, "portfolio-20260304-050607.pdf", OutputPath("", "portfolio", now))
}
