package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-crafter/internal/application/service"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

// MediaHandler uploads avatar and project images to the configured media
// host and hands the public URL back; the client then writes that URL into
// the portfolio like any other field. When no uploader is configured the
// endpoint reports unavailable.
type MediaHandler struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewMediaHandler(uploader service.Uploader, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		uploader: uploader,
		logger:   log,
	}
}

func (h *MediaHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		c.Error(apperror.NewAppError(apperror.ErrUnavailable, "Media uploads disabled",
			"no media storage is configured; paste an image URL instead", nil))
		return
	}

	sessionID, _ := GetSessionIDFromGinContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	folder := fmt.Sprintf("sessions/%s/images", sessionID)
	url, err := h.uploader.Upload(c.Request.Context(), file, folder, uuid.NewString())
	if err != nil {
		c.Error(apperror.NewInternal("failed to upload image", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
