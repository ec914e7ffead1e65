package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/shule-labs/shule-api/api/swagger"
	"github.com/shule-labs/shule-api/internal/handler"
	"github.com/shule-labs/shule-api/internal/middleware"
	"github.com/shule-labs/shule-api/internal/service"
	"github.com/shule-labs/shule-api/internal/store"
	memorystore "github.com/shule-labs/shule-api/internal/store/memory"
	postgresstore "github.com/shule-labs/shule-api/internal/store/postgres"
	"github.com/shule-labs/shule-api/pkg/cache"
	"github.com/shule-labs/shule-api/pkg/config"
	"github.com/shule-labs/shule-api/pkg/database"
	"github.com/shule-labs/shule-api/pkg/logger"
	corsmiddleware "github.com/shule-labs/shule-api/pkg/middleware/cors"
	reqidmiddleware "github.com/shule-labs/shule-api/pkg/middleware/requestid"
)

// @title Shule API
// @version 0.1.0
// @description School management API for a nursery & primary school
// @BasePath /
// @schemes http

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

	st, err := buildStore(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init store", "driver", cfg.StoreDriver, "error", err)
	}

	var dashCache service.SummaryCache
	if redisClient, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
	} else {
		dashCache = cache.NewStore(redisClient)
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	students := service.NewStudentService(st, validate, logr)
	parents := service.NewParentService(st, validate, logr)
	finance := service.NewFinanceService(st, st, st, validate, logr)
	attendance := service.NewAttendanceService(st, st, validate, logr)
	academics := service.NewAcademicService(st, st, st, validate, logr)
	notices := service.NewNoticeService(st, validate, logr)
	dashboard := service.NewDashboardService(st, dashCache, cfg.Dashboard.CacheTTL, logr)
	reports := service.NewReportService(st, st, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	metricsHandler := handler.NewMetricsHandler(metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Handlers{
		Students:       handler.NewStudentHandler(students),
		Parents:        handler.NewParentHandler(parents),
		Finance:        handler.NewFinanceHandler(finance),
		Attendance:     handler.NewAttendanceHandler(attendance),
		Academics:      handler.NewAcademicHandler(academics),
		Notices:        handler.NewNoticeHandler(notices),
		Dashboard:      handler.NewDashboardHandler(dashboard, metrics),
		Reports:        handler.NewReportHandler(reports),
		ReportsEnabled: cfg.Reports.Enabled,
	}.RegisterRoutes(r, cfg.APIPrefix)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.StoreDriver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildStore selects the persistence backend. The memory store is seeded
// with demo rows on every start; the postgres store is never seeded here.
func buildStore(cfg *config.Config, logr *zap.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return postgresstore.New(db), nil
	case config.StoreDriverMemory:
		st := memorystore.New()
		if cfg.SeedDemo {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := st.Seed(ctx); err != nil {
				return nil, err
			}
			logr.Sugar().Infow("memory store seeded with demo data")
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
