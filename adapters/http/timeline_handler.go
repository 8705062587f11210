package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	timelineUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/timeline"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type TimelineHandler struct {
	timelineUseCase *timelineUC.TimelineUseCase
	logger          logger.Logger
}

func NewTimelineHandler(uc *timelineUC.TimelineUseCase, log logger.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineUseCase: uc,
		logger:          log,
	}
}

func (h *TimelineHandler) AddExperience(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}

	output, err := h.timelineUseCase.ExecuteAddExperience(timelineUC.AddExperienceInput{
		SessionID: sessionID,
		Draft:     req.ToDraft(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"experience": output.Experience,
		"snapshot":   ToSnapshotDTO(output.Snapshot),
	})
}

func (h *TimelineHandler) UpdateExperience(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience update", err))
		return
	}

	snap, err := h.timelineUseCase.ExecuteUpdateExperience(timelineUC.UpdateExperienceInput{
		SessionID:    sessionID,
		ExperienceID: c.Param("id"),
		Patch:        req.ToPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *TimelineHandler) RemoveExperience(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	snap, err := h.timelineUseCase.ExecuteRemoveExperience(timelineUC.RemoveExperienceInput{
		SessionID:    sessionID,
		ExperienceID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *TimelineHandler) AddEducation(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education", err))
		return
	}

	output, err := h.timelineUseCase.ExecuteAddEducation(timelineUC.AddEducationInput{
		SessionID: sessionID,
		Draft:     req.ToDraft(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"education": output.Education,
		"snapshot":  ToSnapshotDTO(output.Snapshot),
	})
}

func (h *TimelineHandler) UpdateEducation(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education update", err))
		return
	}

	snap, err := h.timelineUseCase.ExecuteUpdateEducation(timelineUC.UpdateEducationInput{
		SessionID:   sessionID,
		EducationID: c.Param("id"),
		Patch:       req.ToPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *TimelineHandler) RemoveEducation(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	snap, err := h.timelineUseCase.ExecuteRemoveEducation(timelineUC.RemoveEducationInput{
		SessionID:   sessionID,
		EducationID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}
