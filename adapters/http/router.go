package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

type RouterDeps struct {
	SessionHandler   *SessionHandler
	PortfolioHandler *PortfolioHandler
	SkillHandler     *SkillHandler
	ProjectHandler   *ProjectHandler
	TimelineHandler  *TimelineHandler
	PreviewHandler   *PreviewHandler
	ExportHandler    *ExportHandler
	MediaHandler     *MediaHandler
	Logger           logger.Logger
}

// NewRouter wires every endpoint. Everything under /api/portfolio,
// /api/preview, /api/export and /api/media is session-scoped.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(deps.Logger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/themes", deps.PortfolioHandler.ListThemes)
		api.POST("/sessions", deps.SessionHandler.CreateSession)

		scoped := api.Group("/")
		scoped.Use(SessionMiddleware())
		{
			p := scoped.Group("/portfolio")
			{
				p.PUT("/profile", deps.PortfolioHandler.UpdateProfile)
				p.PUT("/settings", deps.PortfolioHandler.UpdateSettings)
				p.POST("/reset", deps.PortfolioHandler.Reset)

				p.POST("/skills", deps.SkillHandler.AddSkill)
				p.PUT("/skills/:index", deps.SkillHandler.UpdateSkill)
				p.DELETE("/skills/:index", deps.SkillHandler.RemoveSkill)

				// The fixed per-platform form fields use the find-or-append
				// endpoint; the index routes are the raw list operations.
				p.PUT("/social", deps.PortfolioHandler.SetSocialLink)
				p.POST("/social-links", deps.PortfolioHandler.AddSocialLink)
				p.PUT("/social-links/:index", deps.PortfolioHandler.UpdateSocialLink)
				p.DELETE("/social-links/:index", deps.PortfolioHandler.RemoveSocialLink)

				p.POST("/projects", deps.ProjectHandler.AddProject)
				p.PUT("/projects/:id", deps.ProjectHandler.UpdateProject)
				p.DELETE("/projects/:id", deps.ProjectHandler.RemoveProject)
				p.POST("/projects/:id/tags", deps.ProjectHandler.AddTag)
				p.DELETE("/projects/:id/tags/:tag", deps.ProjectHandler.RemoveTag)

				p.POST("/experiences", deps.TimelineHandler.AddExperience)
				p.PUT("/experiences/:id", deps.TimelineHandler.UpdateExperience)
				p.DELETE("/experiences/:id", deps.TimelineHandler.RemoveExperience)

				p.POST("/education", deps.TimelineHandler.AddEducation)
				p.PUT("/education/:id", deps.TimelineHandler.UpdateEducation)
				p.DELETE("/education/:id", deps.TimelineHandler.RemoveEducation)
			}

			scoped.GET("/preview", deps.PreviewHandler.GetPreview)
			scoped.GET("/preview/events", deps.PreviewHandler.StreamPreview)

			scoped.GET("/export/html", deps.ExportHandler.ExportHTML)
			scoped.GET("/export/pdf", deps.ExportHandler.ExportPDF)

			scoped.POST("/media", deps.MediaHandler.UploadImage)
		}
	}

	return router
}
