package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/campus-reports-api/api/swagger"
	"github.com/noah-isme/campus-reports-api/internal/handler"
	"github.com/noah-isme/campus-reports-api/internal/repository"
	"github.com/noah-isme/campus-reports-api/internal/service"
	"github.com/noah-isme/campus-reports-api/pkg/cache"
	"github.com/noah-isme/campus-reports-api/pkg/config"
	"github.com/noah-isme/campus-reports-api/pkg/database"
	"github.com/noah-isme/campus-reports-api/pkg/logger"
)

// @title Campus Reports API
// @version 1.0.0
// @description Reporting and analytics over campus events, registrations, attendance and feedback.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Categories.CacheEnabled {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = cache.NewRedis(pingCtx, cfg.Redis)
		cancel()
		if err != nil {
			logr.Warn("redis unavailable, category cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	metrics := service.NewMetricsService()
	validate := validator.New()

	var cacheRepo service.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Categories.CacheTTL, logr, redisClient != nil)

	reportSvc := service.NewReportService(service.ReportServiceParams{
		Store:     repository.NewReportRepository(db),
		Validator: validate,
		Metrics:   metrics,
		Logger:    logr,
		Config: service.ReportServiceConfig{
			QueryTimeout: cfg.Reports.QueryTimeout,
			MaxLimit:     cfg.Reports.MaxLimit,
		},
	})
	categorySvc := service.NewCategoryService(repository.NewCategoryRepository(db), cacheSvc, metrics, cfg.Categories.CacheTTL, logr)

	var reportHandler *handler.ReportHandler
	if cfg.Reports.ExportsEnabled {
		reportHandler = handler.NewReportHandler(reportSvc, service.NewExportService(reportSvc, logr, nil, nil))
	} else {
		reportHandler = handler.NewReportHandler(reportSvc, nil)
	}

	router := newRouter(routerDeps{
		cfg:        cfg,
		logger:     logr,
		verifier:   service.NewTokenVerifier(cfg.JWT.Secret, cfg.JWT.Issuer),
		metrics:    metrics,
		reports:    reportHandler,
		categories: handler.NewCategoryHandler(categorySvc),
		probes:     handler.NewMetricsHandler(metrics, db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
