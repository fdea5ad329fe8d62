package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Headless-Chrome geometry: A4 in inches for PrintToPDF, the content
// viewport in CSS pixels (210mm at 96dpi), and the supersampling factor.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	viewportPx    = 794 // 210mm * 96 / 25.4
	deviceScale   = 2.0
	mmPerCSSPx    = 25.4 / 96.0

	// best-effort settle time for embedded images before rasterizing
	imageSettle = 500 * time.Millisecond

	renderTimeout = 60 * time.Second
)

// ChromedpRenderer prints rendered HTML to PDF with headless Chrome.
type ChromedpRenderer struct{}

func NewChromedpRenderer() *ChromedpRenderer { return &ChromedpRenderer{} }

func (r *ChromedpRenderer) RenderPDF(ctx context.Context, html string) ([]byte, float64, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, renderTimeout)
	defer cancelRun()

	// serve the page from a temp file so relative asset references resolve
	tmpDir, err := os.MkdirTemp("", "resumecraft-")
	if err != nil {
		return nil, 0, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, 0, err
	}

	var pdfBuf []byte
	var heightPx float64
	err = chromedp.Run(runCtx,
		emulation.SetDeviceMetricsOverride(viewportPx, 0, deviceScale, false),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(imageSettle),
		chromedp.Evaluate(`document.documentElement.scrollHeight`, &heightPx),
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
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, 0, err
	}
	return pdfBuf, heightPx * mmPerCSSPx, nil
}
