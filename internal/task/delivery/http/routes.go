package http

import (
	"task-board/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// is rate limited and bound to the caller's session board.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit(), mw.Session())
	{
		tasks.POST("", h.Add)
		tasks.GET("", h.List)
		tasks.GET("/meta", h.Meta)
		tasks.POST("/reorder", h.Reorder)
		tasks.GET("/:id", h.Detail)
		tasks.DELETE("/:id", h.Delete)
	}
}
