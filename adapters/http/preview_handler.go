package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	previewUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/preview"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type PreviewHandler struct {
	previewUseCase *previewUC.PreviewUseCase
	logger         logger.Logger
}

func NewPreviewHandler(uc *previewUC.PreviewUseCase, log logger.Logger) *PreviewHandler {
	return &PreviewHandler{
		previewUseCase: uc,
		logger:         log,
	}
}

// GetPreview returns the read-only projection of the current state.
func (h *PreviewHandler) GetPreview(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	projection, err := h.previewUseCase.ExecuteGet(previewUC.GetPreviewInput{SessionID: sessionID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPreviewDTO(projection))
}

// StreamPreview pushes one SSE event per store mutation so the preview
// re-renders live. The stream closes when the client goes away.
func (h *PreviewHandler) StreamPreview(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	projections, cancel, err := h.previewUseCase.ExecuteWatch(previewUC.WatchInput{SessionID: sessionID})
	if err != nil {
		c.Error(err)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case projection, ok := <-projections:
			if !ok {
				return false
			}
			c.SSEvent("preview", ToPreviewDTO(projection))
			return true
		}
	})
}
