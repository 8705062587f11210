package export

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-crafter/internal/document"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type HTMLExportUseCase struct {
	registry      *store.Registry
	stylesheetURL string
	logger        logger.Logger
}

func NewHTMLExportUseCase(registry *store.Registry, stylesheetURL string, log logger.Logger) *HTMLExportUseCase {
	return &HTMLExportUseCase{
		registry:      registry,
		stylesheetURL: stylesheetURL,
		logger:        log,
	}
}

type HTMLExportInput struct {
	SessionID string
}

type HTMLExportOutput struct {
	// Filename carries no extension; the transport layer appends ".html".
	Filename string
	Content  string
}

// Execute reads the current snapshot and serializes it to a standalone
// document. It never mutates the store. Empty sections are omitted, not
// replaced with placeholders - that is the plain-document contract.
func (uc *HTMLExportUseCase) Execute(_ context.Context, input HTMLExportInput) (*HTMLExportOutput, error) {
	st, ok := uc.registry.Get(input.SessionID)
	if !ok {
		return nil, apperror.NewNotFound("session", input.SessionID)
	}
	snap := st.Snapshot()

	html, err := document.RenderHTML(snap.Portfolio, snap.Settings, document.HTMLOptions{
		StylesheetURL: uc.stylesheetURL,
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to serialize portfolio document", err)
	}

	filename := document.Filename(snap.Portfolio.Name)
	uc.logger.Info("portfolio exported as html",
		zap.String("session_id", input.SessionID),
		zap.String("filename", filename),
		zap.Uint64("revision", snap.Revision),
	)
	return &HTMLExportOutput{Filename: filename, Content: html}, nil
}
