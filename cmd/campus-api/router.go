package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-reports-api/internal/handler"
	"github.com/noah-isme/campus-reports-api/internal/middleware"
	"github.com/noah-isme/campus-reports-api/internal/service"
	"github.com/noah-isme/campus-reports-api/pkg/config"
	"github.com/noah-isme/campus-reports-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-reports-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-reports-api/pkg/middleware/requestid"
)

type routerDeps struct {
	cfg        *config.Config
	logger     *zap.Logger
	verifier   middleware.TokenVerifier
	metrics    *service.MetricsService
	reports    *handler.ReportHandler
	categories *handler.CategoryHandler
	probes     *handler.MetricsHandler
}

func newRouter(deps routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.logger))
	r.Use(corsmiddleware.New(deps.cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.metrics, "/metrics", "/health", "/ready"))

	r.GET("/health", deps.probes.Health)
	r.GET("/ready", deps.probes.Ready)
	r.GET("/metrics", deps.probes.Prometheus)

	if deps.cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(deps.cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())
	api.Use(middleware.JWT(deps.verifier))

	api.GET("/event-categories", deps.categories.List)

	if deps.cfg.Reports.Enabled {
		reports := api.Group("/colleges/:college_id/reports")
		reports.Use(middleware.CollegeScope("college_id"))
		reports.GET("/event-popularity", deps.reports.EventPopularity)
		reports.GET("/student-participation", deps.reports.StudentParticipation)
		reports.GET("/top-active-students", deps.reports.TopActiveStudents)
		reports.GET("/dashboard", deps.reports.Dashboard)
		if deps.cfg.Reports.ExportsEnabled {
			reports.GET("/:report/export", deps.reports.Export)
		}
	}
	return r
}
