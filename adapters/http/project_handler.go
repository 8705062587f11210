package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/project"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type ProjectHandler struct {
	projectUseCase *projectUC.ProjectUseCase
	logger         logger.Logger
}

func NewProjectHandler(uc *projectUC.ProjectUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: uc,
		logger:         log,
	}
}

func (h *ProjectHandler) AddProject(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req AddProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}

	output, err := h.projectUseCase.ExecuteAdd(projectUC.AddProjectInput{
		SessionID:   sessionID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Tags:        req.Tags,
		Link:        req.Link,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"project":  output.Project,
		"snapshot": ToSnapshotDTO(output.Snapshot),
	})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project update", err))
		return
	}

	snap, err := h.projectUseCase.ExecuteUpdate(projectUC.UpdateProjectInput{
		SessionID: sessionID,
		ProjectID: c.Param("id"),
		Patch:     req.ToPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *ProjectHandler) RemoveProject(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	snap, err := h.projectUseCase.ExecuteRemove(projectUC.RemoveProjectInput{
		SessionID: sessionID,
		ProjectID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *ProjectHandler) AddTag(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for tag", err))
		return
	}

	snap, err := h.projectUseCase.ExecuteAddTag(projectUC.TagInput{
		SessionID: sessionID,
		ProjectID: c.Param("id"),
		Tag:       req.Tag,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}

func (h *ProjectHandler) RemoveTag(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)

	snap, err := h.projectUseCase.ExecuteRemoveTag(projectUC.TagInput{
		SessionID: sessionID,
		ProjectID: c.Param("id"),
		Tag:       c.Param("tag"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSnapshotDTO(snap))
}
