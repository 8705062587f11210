package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	skillUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{
		skillUseCase: uc,
		logger:       log,
	}
}

func (h *SkillHandler) AddSkill(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	snap, err := h.skillUseCase.ExecuteAdd(skillUC.AddSkillInput{
		SessionID: sessionID,
		Name:      req.Name,
		Level:     req.Level,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("index must be an integer", err))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	snap, err := h.skillUseCase.ExecuteUpdate(skillUC.UpdateSkillInput{
		SessionID: sessionID,
		Index:     index,
		Skill:     portfolio.Skill{Name: req.Name, Level: req.Level},
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *SkillHandler) RemoveSkill(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("index must be an integer", err))
		return
	}

	snap, err := h.skillUseCase.ExecuteRemove(skillUC.RemoveSkillInput{
		SessionID: sessionID,
		Index:     index,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}
