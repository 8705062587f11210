package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpAdapter "github.com/khoahotran/portfolio-crafter/adapters/http"
	"github.com/khoahotran/portfolio-crafter/adapters/media_storage"
	"github.com/khoahotran/portfolio-crafter/adapters/render"
	"github.com/khoahotran/portfolio-crafter/internal/application/service"
	exportUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/export"
	previewUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/preview"
	profileUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/skill"
	timelineUC "github.com/khoahotran/portfolio-crafter/internal/application/usecase/timeline"
	"github.com/khoahotran/portfolio-crafter/internal/config"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

func main() {
	fmt.Println("Start Portfolio Crafter API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Session registry holds every in-memory editing session
	registry := store.NewRegistry(cfg.Session.TTL, appLogger)
	registry.StartSweeper(context.Background(), cfg.Session.SweepInterval)

	// Rendering collaborator for the paged export; the browser itself is
	// launched lazily on the first export
	rasterizer := render.NewChromeRasterizer(appLogger)
	defer rasterizer.Close()

	// Media uploads are optional; the handler degrades to 503 without them
	var uploader service.Uploader
	if up, err := media_storage.NewCloudinaryAdapter(cfg, appLogger); err != nil {
		appLogger.Warn("media uploads disabled", zap.Error(err))
	} else {
		uploader = up
	}

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(registry)
	skillUseCase := skillUC.NewSkillUseCase(registry)
	projectUseCase := projectUC.NewProjectUseCase(registry)
	timelineUseCase := timelineUC.NewTimelineUseCase(registry)
	previewUseCase := previewUC.NewPreviewUseCase(registry)
	htmlExportUseCase := exportUC.NewHTMLExportUseCase(registry, cfg.Export.StylesheetURL, appLogger)
	pagedExportUseCase := exportUC.NewPagedExportUseCase(registry, rasterizer, exportUC.PagedExportConfig{
		StylesheetURL: cfg.Export.StylesheetURL,
		PageWidthPx:   cfg.Export.PageWidthPx,
		Scale:         cfg.Export.Scale,
		Timeout:       cfg.Export.Timeout,
	}, appLogger)

	// HTTP Handlers
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		SessionHandler:   httpAdapter.NewSessionHandler(registry),
		PortfolioHandler: httpAdapter.NewPortfolioHandler(profileUseCase, appLogger),
		SkillHandler:     httpAdapter.NewSkillHandler(skillUseCase, appLogger),
		ProjectHandler:   httpAdapter.NewProjectHandler(projectUseCase, appLogger),
		TimelineHandler:  httpAdapter.NewTimelineHandler(timelineUseCase, appLogger),
		PreviewHandler:   httpAdapter.NewPreviewHandler(previewUseCase, appLogger),
		ExportHandler:    httpAdapter.NewExportHandler(htmlExportUseCase, pagedExportUseCase, appLogger),
		MediaHandler:     httpAdapter.NewMediaHandler(uploader, appLogger),
		Logger:           appLogger,
	})

	appLogger.Info("server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
