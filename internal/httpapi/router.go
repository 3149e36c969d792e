package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewRouter wires the REST surface for the companion web UI. The engine
// is returned unstarted; callers run it or hand it to a test server.
func NewRouter(h *Handler, logger *zap.SugaredLogger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(requestLogger(logger))

	r.GET("/ping", h.ping)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/state", h.state)
		v1.GET("/progress", h.progress)
		v1.GET("/badges", h.badges)
		v1.GET("/templates", h.templates)
		v1.GET("/library", h.library)
		v1.GET("/export", h.export)

		v1.POST("/tasks/toggle", h.toggleTask)

		v1.POST("/basics", h.addBasic)
		v1.DELETE("/basics/:id", h.deleteBasic)
		v1.POST("/basics/reorder", h.reorderBasics)

		v1.POST("/focus", h.addFocus)
		v1.DELETE("/focus/:id", h.deleteFocus)

		v1.POST("/wins", h.addWin)
		v1.DELETE("/wins/:id", h.deleteWin)

		v1.POST("/parts", h.addPart)
		v1.DELETE("/parts/:id", h.deletePart)
		v1.POST("/checkins", h.addCheckIn)

		v1.POST("/health-logs", h.recordHealthLog)

		v1.POST("/habit-stacks", h.addHabitStack)
		v1.DELETE("/habit-stacks/:id", h.deleteHabitStack)

		v1.POST("/template", h.applyTemplate)
		v1.POST("/prestige", h.prestige)
		v1.POST("/reset", h.reset)

		v1.POST("/settings/survival", h.setSurvival)
		v1.POST("/settings/name", h.setName)
		v1.POST("/settings/theme", h.setTheme)

		v1.GET("/ai/compassion", h.aiCompassion)
		v1.POST("/ai/tasks", h.aiTasks)
		v1.POST("/ai/habit-stack", h.aiHabitStack)
	}

	return r
}

// requestLogger tags each request with an id and logs the outcome.
func requestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Set("requestID", requestID)

		c.Next()

		logger.Infow("request",
			"requestID", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"clientIP", c.ClientIP(),
			"latency", time.Since(start).String(),
		)
	}
}
