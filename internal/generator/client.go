package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/khrees2412/autodoc/internal/form"
	"github.com/khrees2412/autodoc/pkg/models"
)

// ErrGenerationFailed wraps every failure of a generation request. Callers
// show one generic notice regardless of the cause.
var ErrGenerationFailed = errors.New("generation failed")

const (
	resumePath      = "/generate"
	coverLetterPath = "/generate-cover-letter"
	portfolioPath   = "/generate-portfolio"
)

// Client talks to the external generation service
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateResume posts the whole record to /generate and returns resume_text.
// The record is sent as is; step gating belongs to the caller.
func (c *Client) GenerateResume(ctx context.Context, rec *models.ResumeRecord) (string, error) {
	var resp struct {
		Text *string `json:"resume_text"`
	}
	if err := c.post(ctx, resumePath, rec, &resp); err != nil {
		return "", err
	}
	return textOrError(resp.Text, "resume_text")
}

// GenerateCoverLetter posts the record to /generate-cover-letter and returns
// cover_letter_text
func (c *Client) GenerateCoverLetter(ctx context.Context, rec *models.CoverLetterRecord) (string, error) {
	if err := form.ValidateCoverLetter(rec); err != nil {
		return "", err
	}
	var resp struct {
		Text *string `json:"cover_letter_text"`
	}
	if err := c.post(ctx, coverLetterPath, rec, &resp); err != nil {
		return "", err
	}
	return textOrError(resp.Text, "cover_letter_text")
}

// GeneratePortfolio converts the record to its wire shape, posts it to
// /generate-portfolio and returns portfolio_text
func (c *Client) GeneratePortfolio(ctx context.Context, rec *models.PortfolioRecord) (string, error) {
	if err := form.ValidatePortfolio(rec); err != nil {
		return "", err
	}
	var resp struct {
		Text *string `json:"portfolio_text"`
	}
	if err := c.post(ctx, portfolioPath, rec.Payload(), &resp); err != nil {
		return "", err
	}
	return textOrError(resp.Text, "portfolio_text")
}

// post issues exactly one request. There is no retry.
func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("generation request failed", "path", path, "err", err)
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrGenerationFailed, err)
	}
	c.logger.Info("generation request finished",
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: service returned %d: %s", ErrGenerationFailed, resp.StatusCode, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrGenerationFailed, err)
	}
	return nil
}

func textOrError(text *string, field string) (string, error) {
	if text == nil {
		return "", fmt.Errorf("%w: response has no %s", ErrGenerationFailed, field)
	}
	return *text, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
