package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mri-backend/internal/reports"
	"mri-backend/internal/scoring"
	"mri-backend/internal/scoring/content"
	"mri-backend/internal/sessions"
	"mri-backend/internal/shared/config"
	"mri-backend/internal/shared/metrics"
	"mri-backend/internal/shared/server/middleware"
	"mri-backend/internal/shared/server/respond"
	"mri-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"SCORE": {Rate: 0.5, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/score") {
					return "SCORE"
				}
				return ""
			},
		}),
	)

	// Dependencies
	engine, err := scoring.NewEngine(content.Default())
	if err != nil {
		return nil, err
	}

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var sessionRepo sessions.Repo
	if sqlDB != nil {
		sessionRepo = &sessions.PGRepo{DB: sqlDB}
	} else {
		sessionRepo = sessions.NewMemoryRepo()
	}
	sessionSvc := &sessions.Service{Repo: sessionRepo}
	sessionHandler := sessions.NewHandler(sessionSvc)

	var reportRepo reports.Repo
	if sqlDB != nil {
		reportRepo = &reports.PGRepo{DB: sqlDB}
	} else {
		reportRepo = reports.NewMemoryRepo()
	}
	reportSvc := &reports.Service{Repo: reportRepo, Sessions: sessionSvc, Engine: engine}
	reportHandler := reports.NewHandler(reportSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	registerMeRoutes(api)
	sessionHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)

	return r, nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
