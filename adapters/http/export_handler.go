package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	exportUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/export"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type ExportHandler struct {
	htmlExportUC  *exportUC.HTMLExportUseCase
	pagedExportUC *exportUC.PagedExportUseCase
	logger        logger.Logger
}

func NewExportHandler(htmlUC *exportUC.HTMLExportUseCase, pagedUC *exportUC.PagedExportUseCase, log logger.Logger) *ExportHandler {
	return &ExportHandler{
		htmlExportUC:  htmlUC,
		pagedExportUC: pagedUC,
		logger:        log,
	}
}

// ExportHTML streams the standalone document as a download.
func (h *ExportHandler) ExportHTML(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	output, err := h.htmlExportUC.Execute(c.Request.Context(), exportUC.HTMLExportInput{SessionID: sessionID})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename+".html"))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(output.Content))
}

// ExportPDF runs the rasterized, paged export. Re-entrant calls for the
// same session come back 409 while one is running.
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	output, err := h.pagedExportUC.Execute(c.Request.Context(), exportUC.PagedExportInput{SessionID: sessionID})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename+".pdf"))
	c.Data(http.StatusOK, "application/pdf", output.PDF)
}
