package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"sync"

	"github.com/chromedp/chromedp"
	"github.com/disintegration/imaging"

	"github.com/khoahotran/portfolio-crafter/internal/application/service"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

// ChromeRasterizer drives a headless Chromium through chromedp. The
// browser allocator is heavyweight, so it is created lazily on the first
// export and reused for the rest of the process lifetime. Each render gets
// its own tab, torn down on every exit path.
type ChromeRasterizer struct {
	mu          sync.Mutex
	allocCtx    context.Context
	allocCancel context.CancelFunc
	logger      logger.Logger
}

var _ service.Rasterizer = (*ChromeRasterizer)(nil)

func NewChromeRasterizer(log logger.Logger) *ChromeRasterizer {
	return &ChromeRasterizer{logger: log}
}

func (r *ChromeRasterizer) allocator() (context.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.allocCtx != nil {
		return r.allocCtx, nil
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("hide-scrollbars", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	// Probe the browser once so a missing Chromium binary surfaces here
	// instead of as an opaque render failure.
	probeCtx, probeCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(probeCtx); err != nil {
		probeCancel()
		cancel()
		return nil, fmt.Errorf("launch headless browser: %w", err)
	}
	probeCancel()

	r.allocCtx = allocCtx
	r.allocCancel = cancel
	r.logger.Info("headless browser allocator initialized")
	return allocCtx, nil
}

func (r *ChromeRasterizer) Render(ctx context.Context, html string, widthPx int, scale float64) (image.Image, error) {
	allocCtx, err := r.allocator()
	if err != nil {
		return nil, err
	}

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		tabCtx, cancelDeadline = context.WithDeadline(tabCtx, deadline)
		defer cancelDeadline()
	}

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var shot []byte
	err = chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(widthPx), 1, chromedp.EmulateScale(scale)),
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("rasterize document: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	return img, nil
}

// Close releases the browser allocator if one was ever created.
func (r *ChromeRasterizer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.allocCancel != nil {
		r.allocCancel()
		r.allocCtx = nil
		r.allocCancel = nil
	}
}
