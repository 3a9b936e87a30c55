package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"restock/logger"
)

// DocumentRendererInterface turns rendered HTML into downloadable documents
type DocumentRendererInterface interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
	RenderPNG(ctx context.Context, html string) ([]byte, error)
}

// A4 in inches and the matching viewport at 96 DPI
const (
	paperWidthIn   = 8.27
	paperHeightIn  = 11.69
	viewportWidth  = 794
	viewportHeight = 1123
)

// ChromeRenderer renders documents with a headless Chrome/Chromium
type ChromeRenderer struct {
	chromePath string
	timeout    time.Duration
}

// Ensure ChromeRenderer implements DocumentRendererInterface
var _ DocumentRendererInterface = (*ChromeRenderer)(nil)

// NewChromeRenderer creates a renderer. An empty chromePath triggers detection.
func NewChromeRenderer(chromePath string, timeout time.Duration) *ChromeRenderer {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeRenderer{chromePath: chromePath, timeout: timeout}
}

// detectChromePath checks CHROME_PATH first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// browser starts a browser tab bound to ctx. The returned cancel releases both
// the tab and the allocator.
func (r *ChromeRenderer) browser(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	return tabCtx, func() {
		tabCancel()
		allocCancel()
	}
}

// loadHTML replaces the blank page's document with html
func loadHTML(html string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("failed to get frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	}
}

// RenderPDF prints html on A4 paper
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tabCtx, release := r.browser(ctx)
	defer release()

	var pdfBuf []byte
	err := chromedp.Run(tabCtx,
		loadHTML(html),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	logger.L().Debugf("RenderPDF: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}

// RenderPNG captures the first page of html as a PNG screenshot
func (r *ChromeRenderer) RenderPNG(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tabCtx, release := r.browser(ctx)
	defer release()

	var buf []byte
	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight),
		loadHTML(html),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	logger.L().Debugf("RenderPNG: %d bytes", len(buf))
	return buf, nil
}
