package preview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Printer turns a preview page into a PDF using headless Chrome
type Printer struct {
	ChromePath string
	Timeout    time.Duration
	Logger     *slog.Logger
}

// NewPrinter creates a printer. An empty chromePath lets chromedp find
// Chrome on its own.
func NewPrinter(chromePath string, timeout time.Duration, logger *slog.Logger) *Printer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Printer{ChromePath: chromePath, Timeout: timeout, Logger: logger}
}

// createBrowserContext starts a headless Chrome for a single print job
func (p *Printer) createBrowserContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)
	if p.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancel2 := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		msg := fmt.Sprintf(format, v...)
		if strings.Contains(msg, "could not unmarshal event") {
			return
		}
		p.Logger.Warn("chromedp", "msg", msg)
	}))

	return ctx, func() {
		cancel2()
		cancel()
	}
}

// PrintPDF renders html and writes the PDF to outPath
func (p *Printer) PrintPDF(ctx context.Context, html, outPath string) error {
	tmpDir, err := os.MkdirTemp("", "autodoc-print-")
	if err != nil {
		return fmt.Errorf("create print dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write print page: %w", err)
	}

	browserCtx, cancel := p.createBrowserContext(ctx)
	defer cancel()
	runCtx, cancelRun := context.WithTimeout(browserCtx, p.Timeout)
	defer cancelRun()

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("#preview", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27 x 11.69 inches
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("print to pdf: %w", err)
	}

	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	p.Logger.Info("printed preview", "path", outPath, "bytes", len(pdf))
	return nil
}

// OutputPath builds a timestamped PDF file name in dir for kind
func OutputPath(dir, kind string, now time.Time) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.pdf", kind, now.Format("20060102-150405")))
}
