package httpserver

import (
	"context"
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shiftwise/timeclock/internal/config"
	"github.com/shiftwise/timeclock/internal/handlers"
	"github.com/shiftwise/timeclock/internal/report"
	"github.com/shiftwise/timeclock/internal/store"
)

// indexHTML is the embedded landing page served at /. It is a thin view;
// everything real lives under /api.
//
//go:embed index.html
var indexHTML []byte

// NewRouter wires the landing page, health endpoints, and the /api surface.
//
// Public: /, /health, /ready
// API: /api/employees, /api/attendance, /api/report/...
func NewRouter(cfg config.Config, st *store.PostgresStore) *gin.Engine {
	if cfg.Mode == config.ModeRelease {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	// CORS is only needed while a frontend dev server runs on another port.
	if cfg.Mode == config.ModeDev {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
		}))
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	api := r.Group("/api")
	handlers.RegisterEmployeeRoutes(api, st)
	handlers.RegisterAttendanceRoutes(api, st)
	handlers.RegisterReportRoutes(api, report.NewBuilder(st))

	return r
}
