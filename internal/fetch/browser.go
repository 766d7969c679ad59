// Package fetch - browser.go provides headless browser rendering for
// pages that build their content with JavaScript.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the visible text length below which a fetched page
// is assumed to be script-rendered rather than genuinely empty.
const MinContentLength = 500

// ShouldRender reports whether a page's visible text is too short to
// extract from, indicating a client-rendered page. Grants.gov detail
// pages are the main case.
func ShouldRender(visibleText string) bool {
	return len(strings.TrimSpace(visibleText)) < MinContentLength
}

// Render loads the page in a headless browser and returns the rendered
// HTML. Requires Chrome or Chromium on the system.
func Render(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering time to settle before snapshotting.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}
