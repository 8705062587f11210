package export

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-crafter/internal/application/service"
	"github.com/khoahotran/portfolio-crafter/internal/document"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type PagedExportConfig struct {
	StylesheetURL string
	PageWidthPx   int
	Scale         float64
	Timeout       time.Duration
}

// PagedExportUseCase rasterizes the portfolio document through the
// headless rendering collaborator and tiles the raster across A4 pages.
// One export runs per session at a time; cancellation is not supported,
// the caller waits or gives up on the response.
type PagedExportUseCase struct {
	registry   *store.Registry
	rasterizer service.Rasterizer
	cfg        PagedExportConfig
	logger     logger.Logger
}

func NewPagedExportUseCase(registry *store.Registry, rasterizer service.Rasterizer, cfg PagedExportConfig, log logger.Logger) *PagedExportUseCase {
	return &PagedExportUseCase{
		registry:   registry,
		rasterizer: rasterizer,
		cfg:        cfg,
		logger:     log,
	}
}

type PagedExportInput struct {
	SessionID string
}

type PagedExportOutput struct {
	// Filename carries no extension; the transport layer appends ".pdf".
	Filename string
	PDF      []byte
	Pages    int
}

func (uc *PagedExportUseCase) Execute(ctx context.Context, input PagedExportInput) (*PagedExportOutput, error) {
	st, ok := uc.registry.Get(input.SessionID)
	if !ok {
		return nil, apperror.NewNotFound("session", input.SessionID)
	}
	if !st.TryBeginExport() {
		return nil, apperror.NewExportBusy()
	}
	defer st.EndExport()

	snap := st.Snapshot()

	// Paged path renders explicit placeholders for empty sections instead
	// of omitting them.
	html, err := document.RenderHTML(snap.Portfolio, snap.Settings, document.HTMLOptions{
		StylesheetURL:     uc.cfg.StylesheetURL,
		EmptyPlaceholders: true,
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to serialize portfolio document", err)
	}

	renderCtx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	started := time.Now()
	raster, err := uc.rasterizer.Render(renderCtx, html, uc.cfg.PageWidthPx, uc.cfg.Scale)
	if err != nil {
		uc.logger.Error("rasterization failed", err, zap.String("session_id", input.SessionID))
		return nil, apperror.NewRendererUnavailable(err)
	}

	pages := document.PaginateA4(raster)
	if len(pages) == 0 {
		return nil, apperror.NewInternal("rasterizer produced an empty image", nil)
	}

	var buf bytes.Buffer
	if err := document.WritePDF(&buf, pages); err != nil {
		return nil, apperror.NewInternal("failed to assemble paged document", err)
	}

	filename := document.Filename(snap.Portfolio.Name)
	uc.logger.Info("portfolio exported as paged document",
		zap.String("session_id", input.SessionID),
		zap.String("filename", filename),
		zap.Int("pages", len(pages)),
		zap.Duration("render_time", time.Since(started)),
	)
	return &PagedExportOutput{Filename: filename, PDF: buf.Bytes(), Pages: len(pages)}, nil
}
