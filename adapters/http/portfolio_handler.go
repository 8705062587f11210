package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type PortfolioHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewPortfolioHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *PortfolioHandler) UpdateProfile(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	snap, err := h.profileUseCase.ExecuteUpdateProfile(profileUC.UpdateProfileInput{
		SessionID: sessionID,
		Patch:     req.ToPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *PortfolioHandler) UpdateSettings(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for settings update", err))
		return
	}

	snap, err := h.profileUseCase.ExecuteUpdateSettings(profileUC.UpdateSettingsInput{
		SessionID: sessionID,
		Patch:     req.ToPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

// SetSocialLink is the find-or-append field used by the fixed
// GitHub/LinkedIn/Twitter inputs.
func (h *PortfolioHandler) SetSocialLink(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for social link", err))
		return
	}

	snap, err := h.profileUseCase.ExecuteSetSocialLink(profileUC.SetSocialLinkInput{
		SessionID: sessionID,
		Platform:  req.Platform,
		URL:       req.URL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *PortfolioHandler) AddSocialLink(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for social link", err))
		return
	}

	snap, err := h.profileUseCase.ExecuteAddSocialLink(profileUC.SocialLinkIndexInput{
		SessionID: sessionID,
		Link:      portfolio.SocialLink{Platform: req.Platform, URL: req.URL},
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *PortfolioHandler) UpdateSocialLink(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("index must be an integer", err))
		return
	}

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for social link", err))
		return
	}

	snap, err := h.profileUseCase.ExecuteUpdateSocialLink(profileUC.SocialLinkIndexInput{
		SessionID: sessionID,
		Index:     index,
		Link:      portfolio.SocialLink{Platform: req.Platform, URL: req.URL},
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *PortfolioHandler) RemoveSocialLink(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("index must be an integer", err))
		return
	}

	snap, err := h.profileUseCase.ExecuteRemoveSocialLink(profileUC.SocialLinkIndexInput{
		SessionID: sessionID,
		Index:     index,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

// Reset restores portfolio and settings to the defaults.
func (h *PortfolioHandler) Reset(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	snap, err := h.profileUseCase.ExecuteReset(profileUC.ResetInput{SessionID: sessionID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

// ListThemes returns the selectable theme catalog.
func (h *PortfolioHandler) ListThemes(c *gin.Context) {
	themes := portfolio.Themes()
	out := make([]ThemeDTO, len(themes))
	for i, t := range themes {
		out[i] = ThemeDTO{
			ID:          string(t.ID),
			Name:        t.Name,
			Description: t.Description,
			Background:  t.Background,
		}
	}
	c.JSON(http.StatusOK, gin.H{"themes": out})
}
